package main

import (
	"fmt"
	"io"

	"github.com/signadot/yabe"
	"github.com/signadot/yabe/encode"
	"github.com/signadot/yabe/ir"

	"github.com/scott-cotton/cli"
	"go.uber.org/zap"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: merge requires a base and at least one override, got %v", cli.ErrUsage, args)
	}
	return runMerge(cfg, cc.Out, cc.In, args)
}

func runMerge(cfg *MergeConfig, w io.Writer, stdin io.Reader, files []string) error {
	sortCfg, err := loadSortConfig(cfg.Fs, cfg.SortFile)
	if err != nil {
		return err
	}
	inputs, err := loadInputs(cfg.Fs, stdin, files)
	if err != nil {
		return err
	}
	var res *ir.Node
	for _, in := range inputs {
		if in.empty() {
			cfg.logger().Debug("empty, nothing to merge", zap.String("file", in.Path))
			continue
		}
		res = yabe.Merge(res, in.Doc)
	}
	res = yabe.Sort(orNull(res), sortCfg)
	return encode.Encode(res, w, cfg.encOpts(w)...)
}
