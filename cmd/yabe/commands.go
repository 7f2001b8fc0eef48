package main

import (
	"github.com/scott-cotton/cli"
	"github.com/spf13/afero"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Fs: afero.NewOsFs()}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "yabe").
		WithSynopsis("yabe [opts] command [opts]").
		WithDescription("yabe extracts the base shared by a set of yaml documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return yabeMain(cfg, cc, args)
		}).
		WithSubs(
			BaseCommand(cfg),
			DiffCommand(cfg),
			MergeCommand(cfg),
			SortCommand(cfg),
			CheckCommand(cfg))
}

func BaseCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BaseConfig{
		MainConfig: mainCfg,
		Quorum:     50,
		BaseOut:    "./base.yaml",
		Name:       defaultDiffName,
	}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Base, "base").
		WithAliases("b").
		WithSynopsis("base [-ref file] [-q percent] [-sort file] [-base path] [-i] files...").
		WithDescription(baseDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return base(cfg, cc, args)
		})
}

const baseDescription = `base extracts the common base of the input files.

Each input is first reduced to its difference from the -ref document, when
given. A value belongs to the base when at least -q percent of the inputs
agree on it. Mappings are compared key by key, every other value as a whole.

The base is written to -base. Each input's remaining difference is written
to a file named by the -name expression, evaluated with the variables stem,
ext, dir, file, index and suffix. With -i the inputs are overwritten with
their differences instead, and emptied when they have none.`

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff candidate reference").
		WithDescription("print what candidate adds to reference; exits 1 when they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Merge, "merge").
		WithAliases("m").
		WithSynopsis("merge [-sort file] base override...").
		WithDescription("merge overrides onto base, left to right").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return merge(cfg, cc, args)
		})
}

func SortCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SortConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Sort, "sort").
		WithAliases("s").
		WithSynopsis("sort -c config [files]").
		WithDescription("sort keys and sequences of documents, from stdin when no files are given").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sortDocs(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check -base file [-ref file] input:diff...").
		WithDescription("check that merging each diff onto the base gives back its input; exits 1 otherwise").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}
