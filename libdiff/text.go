package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type LineOp int

const (
	LineEqual LineOp = iota
	LineDelete
	LineInsert
)

// Line is one line of a line diff.
type Line struct {
	Op   LineOp
	Text string
}

// Text computes a line diff turning from into to. Each returned line has no
// trailing newline, and a missing final newline does not count as a change.
func Text(from, to string) []Line {
	from, to = terminate(from), terminate(to)
	diffCfg := diffpatch.New()
	fromChars, toChars, lines := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffMain(fromChars, toChars, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	var res []Line
	for i := range diffs {
		diff := &diffs[i]
		var op LineOp
		switch diff.Type {
		case diffpatch.DiffDelete:
			op = LineDelete
		case diffpatch.DiffInsert:
			op = LineInsert
		case diffpatch.DiffEqual:
			op = LineEqual
		}
		for _, ln := range strings.SplitAfter(diff.Text, "\n") {
			if ln == "" {
				continue
			}
			res = append(res, Line{Op: op, Text: strings.TrimSuffix(ln, "\n")})
		}
	}
	return res
}

func terminate(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
