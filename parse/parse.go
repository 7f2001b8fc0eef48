package parse

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/signadot/yabe/debug"
	"github.com/signadot/yabe/ir"
)

// Parse parses one document of d, by default the first.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := newParseOpts(opts)
	docs, err := parseDocs(d)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 && pOpts.doc == 0 {
		return ir.Null(), nil
	}
	if pOpts.doc < 0 || pOpts.doc >= len(docs) {
		return nil, fmt.Errorf("%w: %d of %d", ErrNoDoc, pOpts.doc, len(docs))
	}
	return convertDoc(docs[pOpts.doc], pOpts)
}

// ParseAll parses every document of d.
func ParseAll(d []byte, opts ...ParseOption) ([]*ir.Node, error) {
	pOpts := newParseOpts(opts)
	docs, err := parseDocs(d)
	if err != nil {
		return nil, err
	}
	res := make([]*ir.Node, 0, len(docs))
	for _, doc := range docs {
		node, err := convertDoc(doc, pOpts)
		if err != nil {
			return nil, err
		}
		res = append(res, node)
	}
	return res, nil
}

func parseDocs(d []byte) ([]*ast.DocumentNode, error) {
	f, err := parser.ParseBytes(d, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return f.Docs, nil
}

func convertDoc(doc *ast.DocumentNode, opts *parseOpts) (*ir.Node, error) {
	c := &converter{
		maxDepth: opts.maxDepth,
		anchors:  map[string]*ir.Node{},
	}
	if doc == nil || doc.Body == nil {
		return ir.Null(), nil
	}
	res, err := c.convert(doc.Body, 0)
	if err != nil {
		return nil, err
	}
	if res == nil {
		res = ir.Null()
	}
	if debug.Parse() {
		debug.Logf("parsed %s\n", res)
	}
	return res, nil
}

type converter struct {
	maxDepth int
	anchors  map[string]*ir.Node
}

// convert returns nil only for comment nodes.
func (c *converter) convert(n ast.Node, depth int) (*ir.Node, error) {
	switch x := n.(type) {
	case *ast.CommentGroupNode, *ast.CommentNode:
		return nil, nil
	case *ast.NullNode:
		return ir.Null(), nil
	case *ast.BoolNode:
		return ir.FromBool(x.Value), nil
	case *ast.IntegerNode:
		switch v := x.Value.(type) {
		case int64:
			return ir.FromInt(v), nil
		case int:
			return ir.FromInt(int64(v)), nil
		case uint64:
			if v <= 1<<63-1 {
				return ir.FromInt(int64(v)), nil
			}
			return ir.FromReal(strconv.FormatUint(v, 10)), nil
		default:
			return ir.FromReal(x.GetToken().Value), nil
		}
	case *ast.FloatNode, *ast.InfinityNode, *ast.NanNode:
		return ir.FromReal(x.GetToken().Value), nil
	case *ast.StringNode:
		return ir.FromString(x.Value), nil
	case *ast.LiteralNode:
		if x.Value == nil {
			return ir.FromString(""), nil
		}
		return ir.FromString(x.Value.Value), nil
	case *ast.MergeKeyNode:
		return ir.FromString("<<"), nil
	case *ast.TagNode:
		return c.convertTag(x, depth)
	case *ast.AnchorNode:
		res, err := c.convertValue(x.Value, depth)
		if err != nil {
			return nil, err
		}
		c.anchors[x.Name.GetToken().Value] = res
		return res, nil
	case *ast.AliasNode:
		name := x.Value.GetToken().Value
		res, ok := c.anchors[name]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrAlias, name)
		}
		if depth+ir.Depth(res) > c.maxDepth {
			return nil, fmt.Errorf("%w: alias %q", ErrTooDeep, name)
		}
		return res, nil
	case *ast.MappingKeyNode:
		return c.convert(x.Value, depth)
	case *ast.SequenceNode:
		if depth >= c.maxDepth && len(x.Values) != 0 {
			return nil, fmt.Errorf("%w: more than %d levels", ErrTooDeep, c.maxDepth)
		}
		elts := make([]*ir.Node, 0, len(x.Values))
		for _, v := range x.Values {
			elt, err := c.convertValue(v, depth+1)
			if err != nil {
				return nil, err
			}
			elts = append(elts, elt)
		}
		return ir.FromSlice(elts), nil
	case *ast.MappingNode:
		return c.convertMapping(x.Values, depth)
	case *ast.MappingValueNode:
		return c.convertMapping([]*ast.MappingValueNode{x}, depth)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, n.Type())
	}
}

// convertValue converts a node in value position, where an absent value
// means null.
func (c *converter) convertValue(n ast.Node, depth int) (*ir.Node, error) {
	if n == nil {
		return ir.Null(), nil
	}
	res, err := c.convert(n, depth)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return ir.Null(), nil
	}
	return res, nil
}

func (c *converter) convertMapping(mvs []*ast.MappingValueNode, depth int) (*ir.Node, error) {
	if depth >= c.maxDepth && len(mvs) != 0 {
		return nil, fmt.Errorf("%w: more than %d levels", ErrTooDeep, c.maxDepth)
	}
	kvs := make([]ir.KeyVal, 0, len(mvs))
	for _, mv := range mvs {
		key, err := c.convertValue(mv.Key, depth+1)
		if err != nil {
			return nil, err
		}
		val, err := c.convertValue(mv.Value, depth+1)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
	}
	return ir.FromKeyVals(kvs), nil
}

func (c *converter) convertTag(x *ast.TagNode, depth int) (*ir.Node, error) {
	if x.Start == nil || x.Start.Value != "!!str" || x.Value == nil {
		return c.convertValue(x.Value, depth)
	}
	switch v := x.Value.(type) {
	case *ast.StringNode:
		return ir.FromString(v.Value), nil
	case *ast.LiteralNode:
		return c.convertValue(v, depth)
	case *ast.NullNode, *ast.BoolNode, *ast.IntegerNode,
		*ast.FloatNode, *ast.InfinityNode, *ast.NanNode:
		return ir.FromString(v.GetToken().Value), nil
	}
	return c.convertValue(x.Value, depth)
}
