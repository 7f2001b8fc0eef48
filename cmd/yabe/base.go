package main

import (
	"fmt"
	"io"

	"github.com/signadot/yabe"
	"github.com/signadot/yabe/consensus"
	"github.com/signadot/yabe/ir"

	"github.com/scott-cotton/cli"
	"go.uber.org/zap"
)

func base(cfg *BaseConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Base.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: base requires at least one input file", cli.ErrUsage)
	}
	if cfg.Quorum < 0 || cfg.Quorum > 100 {
		return fmt.Errorf("%w: quorum %d is not a percentage", cli.ErrUsage, cfg.Quorum)
	}
	return runBase(cfg, cc.In, args)
}

func runBase(cfg *BaseConfig, stdin io.Reader, files []string) error {
	if err := checkStdin(append([]string{cfg.Ref}, files...)...); err != nil {
		return err
	}
	log := cfg.logger()
	namer, err := newDiffer(cfg.Name)
	if err != nil {
		return err
	}
	sortCfg, err := loadSortConfig(cfg.Fs, cfg.SortFile)
	if err != nil {
		return err
	}
	var ref *ir.Node
	if cfg.Ref != "" {
		log.Info("reading reference", zap.String("file", cfg.Ref))
		ref, err = readDoc(cfg.Fs, stdin, cfg.Ref)
		if err != nil {
			return err
		}
		if ref == nil {
			log.Warn("no document in reference", zap.String("file", cfg.Ref))
		}
	}
	inputs, err := loadInputs(cfg.Fs, stdin, files)
	if err != nil {
		return err
	}

	var (
		used   []int
		values []*ir.Node
	)
	for i, in := range inputs {
		if in.empty() {
			log.Warn("no document, skipping", zap.String("file", in.Path))
			continue
		}
		v := in.Doc
		if ref != nil {
			v = yabe.Diff(v, ref)
			if v == nil {
				v = ir.Null()
			}
			log.Debug("reduced to reference diff", zap.String("file", in.Path))
		}
		used = append(used, i)
		values = append(values, v)
	}
	if len(values) == 0 {
		log.Warn("no documents to compare")
		return nil
	}

	quorum := float64(cfg.Quorum) / 100
	log.Info("computing base",
		zap.Int("documents", len(values)),
		zap.Int("quorum", cfg.Quorum),
		zap.Int("required", consensus.Required(quorum, len(values))))
	baseDoc, diffs := consensus.Common(values, quorum)

	if baseDoc != nil {
		if err := cfg.writeDoc(cfg.BaseOut, yabe.Sort(baseDoc, sortCfg)); err != nil {
			return err
		}
		log.Info("wrote base", zap.String("file", cfg.BaseOut))
	} else {
		log.Info("no base")
	}

	suffix := cfg.outFormat().Suffix()
	for j, i := range used {
		in := inputs[i]
		d := yabe.Sort(diffs[j], sortCfg)
		if cfg.InPlace {
			if in.Path == "-" {
				log.Warn("cannot write stdin in place, skipping")
				continue
			}
			if err := cfg.writeDoc(in.Path, d); err != nil {
				return err
			}
			if d == nil {
				log.Info("no diff, emptied", zap.String("file", in.Path))
			} else {
				log.Info("wrote diff in place", zap.String("file", in.Path))
			}
			continue
		}
		if d == nil {
			log.Info("no diff", zap.String("file", in.Path))
			continue
		}
		name, err := namer.name(in.Path, suffix, i)
		if err != nil {
			return err
		}
		if err := cfg.writeDoc(name, d); err != nil {
			return err
		}
		log.Info("wrote diff", zap.String("file", in.Path), zap.String("diff", name))
	}
	return nil
}
