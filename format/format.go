package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format is a document format yabe reads and writes. Both formats parse
// with the YAML parser since JSON documents are YAML.
type Format int

const (
	YAMLFormat Format = iota
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

// names lists the accepted spellings of each format, the canonical one
// first.
var names = map[Format][]string{
	YAMLFormat: {"yaml", "y", "yml"},
	JSONFormat: {"json", "j"},
}

func ParseFormat(v string) (Format, error) {
	for f, ns := range names {
		for _, n := range ns {
			if strings.EqualFold(n, v) {
				return f, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// FromPath gives the format named by the extension of path, if any.
func FromPath(path string) (Format, bool) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return 0, false
	}
	f, err := ParseFormat(ext)
	if err != nil {
		return 0, false
	}
	return f, true
}

func (f Format) String() string {
	ns, ok := names[f]
	if !ok {
		return fmt.Sprintf("<format %d>", int(f))
	}
	return ns[0]
}

func (f Format) MarshalText() ([]byte, error) {
	if _, ok := names[f]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
	}
	return []byte(f.String()), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat }

// Suffix returns the file extension for this format, including the dot.
func (f Format) Suffix() string {
	if _, ok := names[f]; !ok {
		return ""
	}
	return "." + f.String()
}
