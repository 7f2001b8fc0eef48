package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

const defaultDiffName = `stem + "_diff" + suffix`

// differ names the file holding an input's diff by evaluating an expression
// over the input path.
type differ struct {
	src  string
	prog *vm.Program
}

func nameEnv(path, suffix string, index int) map[string]any {
	file := filepath.Base(path)
	ext := filepath.Ext(file)
	stem := strings.TrimSuffix(file, ext)
	switch {
	case path == "-":
		stem = "stdin"
	case stem == "":
		stem = "diff"
	}
	return map[string]any{
		"stem":   stem,
		"ext":    ext,
		"dir":    filepath.Dir(path),
		"file":   file,
		"index":  index,
		"suffix": suffix,
	}
}

func nameOpts() []expr.Option {
	return []expr.Option{
		expr.Env(nameEnv("x.yaml", ".yaml", 0)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
		expr.Function("join", func(params ...any) (any, error) {
			parts := make([]string, len(params))
			for i, p := range params {
				parts[i] = p.(string)
			}
			return filepath.Join(parts...), nil
		},
			new(func(string, string) string)),
	}
}

func newDiffer(src string) (*differ, error) {
	prog, err := expr.Compile(src, nameOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error compiling name expression %q: %w", src, err)
	}
	return &differ{src: src, prog: prog}, nil
}

func (d *differ) name(path, suffix string, index int) (string, error) {
	res, err := expr.Run(d.prog, nameEnv(path, suffix, index))
	if err != nil {
		return "", fmt.Errorf("error evaluating name expression %q: %w", d.src, err)
	}
	name, ok := res.(string)
	if !ok {
		return "", fmt.Errorf("name expression %q returned %T, not a string", d.src, res)
	}
	if name == "" {
		return "", fmt.Errorf("name expression %q gave an empty name for %q", d.src, path)
	}
	return name, nil
}
