package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/yabe/ir"
)

func encodeJSON(node *ir.Node, es *EncState) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := writeJSON(buf, node); err != nil {
		return nil, err
	}
	if es.flow || es.indent <= 0 {
		return buf.Bytes(), nil
	}
	out := bytes.NewBuffer(nil)
	if err := json.Indent(out, buf.Bytes(), "", strings.Repeat(" ", es.indent)); err != nil {
		return nil, fmt.Errorf("could not indent json: %w", err)
	}
	return out.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, node *ir.Node) error {
	if node == nil {
		buf.WriteString("null")
		return nil
	}
	switch node.Type {
	case ir.NullType:
		buf.WriteString("null")
	case ir.BoolType:
		buf.WriteString(strconv.FormatBool(node.Bool))
	case ir.IntType:
		buf.WriteString(strconv.FormatInt(node.Int64, 10))
	case ir.RealType:
		if isJSONNumber(node.Number) {
			buf.WriteString(node.Number)
			return nil
		}
		// .inf, .nan and other YAML only spellings
		writeJSONString(buf, node.Number)
	case ir.StringType:
		writeJSONString(buf, node.String)
	case ir.SequenceType:
		buf.WriteByte('[')
		for i, v := range node.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, v); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case ir.MappingType:
		buf.WriteByte('{')
		for i := range node.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeJSONString(buf, jsonKey(node.Fields[i]))
			buf.WriteByte(':')
			if err := writeJSON(buf, node.Values[i]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("unknown node type %d", node.Type)
	}
	return nil
}

// jsonKey renders a mapping key as a JSON object member name. Non string
// keys use their single line YAML text.
func jsonKey(key *ir.Node) string {
	if key.Type == ir.StringType {
		return key.String
	}
	return MustString(key, EncodeFlow(true))
}

func isJSONNumber(text string) bool {
	var n json.Number
	if err := json.Unmarshal([]byte(text), &n); err != nil {
		return false
	}
	return string(n) == text
}

func writeJSONString(buf *bytes.Buffer, s string) {
	d, _ := json.Marshal(s)
	buf.Write(d)
}
