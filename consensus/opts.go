package consensus

import "github.com/signadot/yabe/ir"

type config struct {
	maxDepth int
}

type Opt func(*config)

// MaxDepth bounds how deep mappings are reconciled key by key. Mappings
// nested deeper are compared as whole values. The default is
// ir.DefaultMaxDepth.
func MaxDepth(n int) Opt {
	return func(c *config) { c.maxDepth = n }
}

func newConfig(opts []Opt) *config {
	cfg := &config{maxDepth: ir.DefaultMaxDepth}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
