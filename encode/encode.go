package encode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/lexer"
	"github.com/goccy/go-yaml/printer"
	"github.com/goccy/go-yaml/token"
	"github.com/signadot/yabe/format"
	"github.com/signadot/yabe/ir"
)

var ErrEncode = errors.New("encode error")

type EncState struct {
	indent int
	flow   bool
	format format.Format
	colors *Colors
}

// Encode writes node as a single document to w, terminated by a newline.
// A nil node is written as null.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	var (
		d   []byte
		err error
	)
	if es.format.IsJSON() {
		d, err = encodeJSON(node, es)
	} else {
		d, err = encodeYAML(node, es)
	}
	if err != nil {
		return err
	}
	if !bytes.HasSuffix(d, []byte{'\n'}) {
		d = append(d, '\n')
	}
	_, err = w.Write(d)
	return err
}

func encodeYAML(node *ir.Node, es *EncState) ([]byte, error) {
	yOpts := []yaml.EncodeOption{
		yaml.Indent(es.indent),
		yaml.IndentSequence(true),
		yaml.Flow(es.flow),
	}
	if !es.flow {
		yOpts = append(yOpts, yaml.UseLiteralStyleIfMultiline(true))
	}
	yNode, err := toYAMLNode(node, yOpts...)
	if err != nil {
		return nil, fmt.Errorf("could not encode yaml: %w", err)
	}
	var p printer.Printer
	d := p.PrintNode(yNode)
	if es.colors != nil && len(d) != 0 {
		cp := es.colors.printer()
		d = []byte(cp.PrintTokens(lexer.Tokenize(string(d))))
	}
	return d, nil
}

// toYAMLNode builds the goccy AST of node. yaml.MapSlice only takes string
// keys, so other keys go in as placeholders and are swapped for nodes of
// their own type afterwards.
func toYAMLNode(node *ir.Node, opts ...yaml.EncodeOption) (ast.Node, error) {
	yNode, err := yaml.ValueToNode(toYAML(node), opts...)
	if err != nil {
		return nil, err
	}
	if err := setKeys(yNode, node); err != nil {
		return nil, err
	}
	return yNode, nil
}

func setKeys(yNode ast.Node, node *ir.Node) error {
	if node == nil {
		return nil
	}
	switch node.Type {
	case ir.SequenceType:
		seq, ok := yNode.(*ast.SequenceNode)
		if !ok || len(seq.Values) != len(node.Values) {
			return fmt.Errorf("%w: sequence encoded as %s", ErrEncode, yNode.Type())
		}
		for i, v := range node.Values {
			if err := setKeys(seq.Values[i], v); err != nil {
				return err
			}
		}
	case ir.MappingType:
		m, ok := yNode.(*ast.MappingNode)
		if !ok || len(m.Values) != len(node.Fields) {
			return fmt.Errorf("%w: mapping encoded as %s", ErrEncode, yNode.Type())
		}
		for i, mv := range m.Values {
			if field := node.Fields[i]; field.Type != ir.StringType {
				key, err := keyNode(field, mv.Key.GetToken().Position)
				if err != nil {
					return err
				}
				mv.Key = key
			}
			if err := setKeys(mv.Value, node.Values[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

// keyNode makes the plain scalar node for a non-string key, so that it
// reads back with its type. Sequence and mapping keys are written in flow
// style behind their type tag.
func keyNode(key *ir.Node, pos *token.Position) (ast.MapKeyNode, error) {
	tk := func(s string) *token.Token {
		return token.New(s, s, pos)
	}
	switch key.Type {
	case ir.NullType:
		return ast.Null(tk("null")), nil
	case ir.BoolType:
		return ast.Bool(tk(strconv.FormatBool(key.Bool))), nil
	case ir.IntType:
		return ast.Integer(tk(strconv.FormatInt(key.Int64, 10))), nil
	case ir.RealType:
		return ast.Float(tk(key.Number)), nil
	case ir.SequenceType, ir.MappingType:
		flow, err := toYAMLNode(key, yaml.Flow(true))
		if err != nil {
			return nil, err
		}
		tag := "!!seq"
		if key.Type == ir.MappingType {
			tag = "!!map"
		}
		res := ast.Tag(tk(tag))
		res.Value = flow
		return res, nil
	default:
		return nil, fmt.Errorf("%w: key of type %s", ErrEncode, key.Type)
	}
}

// rawText is written verbatim as a scalar.
type rawText string

func (r rawText) MarshalYAML() ([]byte, error) {
	return []byte(r), nil
}

func toYAML(node *ir.Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case ir.NullType:
		return nil
	case ir.BoolType:
		return node.Bool
	case ir.IntType:
		return node.Int64
	case ir.RealType:
		return rawText(node.Number)
	case ir.StringType:
		return node.String
	case ir.SequenceType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = toYAML(v)
		}
		return res
	case ir.MappingType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i := range node.Fields {
			// non-string keys are replaced in setKeys
			key := ""
			if node.Fields[i].Type == ir.StringType {
				key = node.Fields[i].String
			}
			res[i] = yaml.MapItem{
				Key:   key,
				Value: toYAML(node.Values[i]),
			}
		}
		return res
	default:
		panic(fmt.Sprintf("unknown node type %d", node.Type))
	}
}
