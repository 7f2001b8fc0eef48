package main

import (
	"fmt"
	"io"

	"github.com/signadot/yabe"
	"github.com/signadot/yabe/encode"

	"github.com/scott-cotton/cli"
	"go.uber.org/zap"
)

func sortDocs(cfg *SortConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Sort.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Config == "" {
		return fmt.Errorf("%w: sort requires -c config", cli.ErrUsage)
	}
	return runSort(cfg, cc.Out, cc.In, args)
}

func runSort(cfg *SortConfig, w io.Writer, stdin io.Reader, files []string) error {
	sortCfg, err := cfg.sortConfig()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		files = []string{"-"}
	}
	inputs, err := loadInputs(cfg.Fs, stdin, files)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(w)
	n := 0
	for _, in := range inputs {
		if in.empty() {
			cfg.logger().Warn("no document, skipping", zap.String("file", in.Path))
			continue
		}
		if n > 0 {
			if _, err := w.Write([]byte("---\n")); err != nil {
				return fmt.Errorf("error writing separator: %w", err)
			}
		}
		if err := encode.Encode(yabe.Sort(in.Doc, sortCfg), w, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", in.Path, err)
		}
		n++
	}
	return nil
}
