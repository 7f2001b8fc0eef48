package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/yabe"
	"github.com/signadot/yabe/encode"
	"github.com/signadot/yabe/ir"
	"github.com/signadot/yabe/libdiff"

	"github.com/scott-cotton/cli"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.BaseFile == "" {
		return fmt.Errorf("%w: check requires -base", cli.ErrUsage)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: check requires at least one input:diff pair", cli.ErrUsage)
	}
	ok, err := runCheck(cfg, cc.Out, args)
	if err != nil {
		return err
	}
	if !ok {
		return cli.ExitCodeErr(1)
	}
	return nil
}

type checkPair struct {
	input, diff string
}

func parsePairs(args []string) ([]checkPair, error) {
	res := make([]checkPair, 0, len(args))
	for _, arg := range args {
		in, d, ok := strings.Cut(arg, ":")
		if !ok || in == "" || d == "" {
			return nil, fmt.Errorf("%w: %q is not of the form input:diff", cli.ErrUsage, arg)
		}
		res = append(res, checkPair{input: in, diff: d})
	}
	return res, nil
}

// readOptional is readDoc where a missing file holds no document.
func readOptional(fs afero.Fs, path string) (*ir.Node, error) {
	ok, err := afero.Exists(fs, path)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return readDoc(fs, nil, path)
}

// runCheck reports whether every input is reconstructed by merging its
// diff onto the base. Mismatches are written to w as line diffs.
func runCheck(cfg *CheckConfig, w io.Writer, args []string) (bool, error) {
	pairs, err := parsePairs(args)
	if err != nil {
		return false, err
	}
	log := cfg.logger()
	baseDoc, err := readOptional(cfg.Fs, cfg.BaseFile)
	if err != nil {
		return false, err
	}
	var ref *ir.Node
	if cfg.Ref != "" {
		ref, err = readDoc(cfg.Fs, nil, cfg.Ref)
		if err != nil {
			return false, err
		}
	}
	colors := cfg.colors(w)
	res := true
	for _, pair := range pairs {
		in, err := readDoc(cfg.Fs, nil, pair.input)
		if err != nil {
			return false, err
		}
		d, err := readOptional(cfg.Fs, pair.diff)
		if err != nil {
			return false, err
		}
		want := orNull(in)
		if ref != nil {
			want = orNull(yabe.Diff(want, ref))
		}
		got := orNull(yabe.Merge(baseDoc, d))
		if ir.Equal(want, got) {
			log.Debug("reconstructed", zap.String("file", pair.input))
			continue
		}
		res = false
		if err := writeMismatch(w, colors, pair, want, got); err != nil {
			return false, err
		}
	}
	return res, nil
}

func writeMismatch(w io.Writer, colors *encode.Colors, pair checkPair, want, got *ir.Node) error {
	wantText := encode.MustString(want)
	gotText := encode.MustString(got)
	buf := bytes.NewBuffer(nil)
	fmt.Fprintf(buf, "--- %s\n+++ merge(base, %s)\n", pair.input, pair.diff)
	for _, ln := range libdiff.Text(wantText, gotText) {
		var (
			prefix = " "
			attr   = encode.ContextColor
		)
		switch ln.Op {
		case libdiff.LineDelete:
			prefix, attr = "-", encode.DeleteColor
		case libdiff.LineInsert:
			prefix, attr = "+", encode.InsertColor
		}
		text := prefix + ln.Text
		if colors != nil {
			text = colors.Line(attr, text)
		}
		buf.WriteString(text)
		buf.WriteByte('\n')
	}
	_, err := w.Write(buf.Bytes())
	return err
}
