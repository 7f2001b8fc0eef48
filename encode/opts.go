package encode

import "github.com/signadot/yabe/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// EncodeFlow writes YAML in single line flow style.
func EncodeFlow(v bool) EncodeOption {
	return func(es *EncState) { es.flow = v }
}

func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EncodeColors highlights YAML output with terminal escape sequences.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}
