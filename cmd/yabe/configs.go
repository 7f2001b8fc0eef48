package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/yabe"
	"github.com/signadot/yabe/encode"
	"github.com/signadot/yabe/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`
	Debug bool `cli:"name=debug desc='log debug messages'"`

	J bool `cli:"name=j aliases=json desc='output json'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command

	Fs  afero.Fs
	Log *zap.Logger
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// explicitFormat is the format given by -j, -y or -O, if any.
func (cfg *MainConfig) explicitFormat() (format.Format, bool) {
	switch {
	case cfg.OutFormat != nil:
		return *cfg.OutFormat, true
	case cfg.Y:
		return format.YAMLFormat, true
	case cfg.J:
		return format.JSONFormat, true
	}
	return 0, false
}

// pathFormat is the format for writing path: the explicit one, or else the
// one named by its extension, or else yaml.
func (cfg *MainConfig) pathFormat(path string) format.Format {
	if f, ok := cfg.explicitFormat(); ok {
		return f
	}
	if f, ok := format.FromPath(path); ok {
		return f
	}
	return format.YAMLFormat
}

func (cfg *MainConfig) outFormat() format.Format {
	return cfg.pathFormat(cfg.Out)
}

// fileEncOpts are the encoding options for writing path, which is never
// colored.
func (cfg *MainConfig) fileEncOpts(path string) []encode.EncodeOption {
	return []encode.EncodeOption{
		encode.EncodeFormat(cfg.pathFormat(path)),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := cfg.fileEncOpts(cfg.Out)
	if colors := cfg.colors(w); colors != nil {
		res = append(res, encode.EncodeColors(colors))
	}
	return res
}

// colors returns the colors to use writing to w, or nil.
func (cfg *MainConfig) colors(w io.Writer) *encode.Colors {
	if cfg.Color {
		return encode.NewColors()
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name == "color" && opt.Value != nil {
				return nil
			}
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return encode.NewColors()
	}
	return nil
}

func (cfg *MainConfig) logger() *zap.Logger {
	if cfg.Log == nil {
		return zap.NewNop()
	}
	return cfg.Log
}

type BaseConfig struct {
	*MainConfig

	Ref      string `cli:"name=ref aliases=helm desc='reference document each input is first diffed against'"`
	Quorum   int    `cli:"name=q aliases=quorum desc='percentage of inputs (0-100) which must agree on a value'"`
	SortFile string `cli:"name=sort desc='sort configuration applied to the outputs'"`
	BaseOut  string `cli:"name=base desc='path of the base output'"`
	InPlace  bool   `cli:"name=i aliases=inplace desc='overwrite the inputs with their diffs'"`
	Name     string `cli:"name=name desc='expression naming diff outputs'"`

	Base *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type MergeConfig struct {
	*MainConfig
	SortFile string `cli:"name=sort desc='sort configuration applied to the result'"`

	Merge *cli.Command
}

type SortConfig struct {
	*MainConfig
	Config string `cli:"name=c aliases=config desc='sort configuration file'"`

	Sort *cli.Command
}

func (cfg *SortConfig) sortConfig() (*yabe.SortConfig, error) {
	return loadSortConfig(cfg.Fs, cfg.Config)
}

type CheckConfig struct {
	*MainConfig
	BaseFile string `cli:"name=base desc='base document'"`
	Ref      string `cli:"name=ref aliases=helm desc='reference document the inputs were diffed against'"`

	Check *cli.Command
}
