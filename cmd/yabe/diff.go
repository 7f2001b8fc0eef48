package main

import (
	"fmt"
	"io"

	"github.com/signadot/yabe"
	"github.com/signadot/yabe/encode"
	"github.com/signadot/yabe/ir"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	differs, err := runDiff(cfg.MainConfig, cc.Out, cc.In, args[0], args[1])
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// runDiff writes the diff of candidate against reference to w and reports
// whether there is one. An empty file counts as null.
func runDiff(cfg *MainConfig, w io.Writer, stdin io.Reader, candidate, reference string) (bool, error) {
	if err := checkStdin(candidate, reference); err != nil {
		return false, err
	}
	c, err := readDoc(cfg.Fs, stdin, candidate)
	if err != nil {
		return false, err
	}
	r, err := readDoc(cfg.Fs, stdin, reference)
	if err != nil {
		return false, err
	}
	d := yabe.Diff(orNull(c), orNull(r))
	if d == nil {
		return false, nil
	}
	if err := encode.Encode(d, w, cfg.encOpts(w)...); err != nil {
		return false, err
	}
	return true, nil
}

func orNull(node *ir.Node) *ir.Node {
	if node == nil {
		return ir.Null()
	}
	return node
}
