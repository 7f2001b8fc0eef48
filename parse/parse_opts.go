package parse

import "github.com/signadot/yabe/ir"

type parseOpts struct {
	doc      int
	maxDepth int
}

type ParseOption func(*parseOpts)

// ParseDoc selects document i of a multi-document stream. The default is
// the first document.
func ParseDoc(i int) ParseOption {
	return func(o *parseOpts) { o.doc = i }
}

// MaxDepth bounds the nesting of parsed values. Non-positive values select
// ir.DefaultMaxDepth.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

func newParseOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.maxDepth <= 0 {
		pOpts.maxDepth = ir.DefaultMaxDepth
	}
	return pOpts
}
