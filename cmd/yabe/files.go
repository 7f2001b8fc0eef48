package main

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"

	"github.com/signadot/yabe"
	"github.com/signadot/yabe/encode"
	"github.com/signadot/yabe/ir"
	"github.com/signadot/yabe/parse"

	"github.com/scott-cotton/cli"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// loadLimit bounds the number of files read and parsed at once.
const loadLimit = 8

// input is a document read from a file.
type input struct {
	Path string
	// Doc is nil when the file holds no document.
	Doc *ir.Node
}

func (in *input) empty() bool {
	return in.Doc == nil
}

// readDoc reads the first document of path, or of stdin when path is
// "-". A file with no document yields a nil node.
func readDoc(fs afero.Fs, stdin io.Reader, path string) (*ir.Node, error) {
	var (
		d   []byte
		err error
	)
	switch {
	case path == "-" && stdin == nil:
		return nil, fmt.Errorf("%w: stdin (-) is not accepted here", cli.ErrUsage)
	case path == "-":
		d, err = io.ReadAll(stdin)
	default:
		d, err = afero.ReadFile(fs, path)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	if len(bytes.TrimSpace(d)) == 0 {
		return nil, nil
	}
	docs, err := parse.ParseAll(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %q: %w", path, err)
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return docs[0], nil
}

// checkStdin rejects naming stdin ("-") more than once, as only the first
// read would see its contents.
func checkStdin(paths ...string) error {
	n := 0
	for _, path := range paths {
		if path == "-" {
			n++
		}
	}
	if n > 1 {
		return fmt.Errorf("%w: stdin (-) given %d times", cli.ErrUsage, n)
	}
	return nil
}

// loadInputs reads and parses paths concurrently. The result is in the
// order of paths.
func loadInputs(fs afero.Fs, stdin io.Reader, paths []string) ([]*input, error) {
	if err := checkStdin(paths...); err != nil {
		return nil, err
	}
	res := make([]*input, len(paths))
	for i, path := range paths {
		if path != "-" {
			continue
		}
		doc, err := readDoc(fs, stdin, path)
		if err != nil {
			return nil, err
		}
		res[i] = &input{Path: path, Doc: doc}
	}
	var eg errgroup.Group
	eg.SetLimit(loadLimit)
	for i, path := range paths {
		if path == "-" {
			continue
		}
		eg.Go(func() error {
			doc, err := readDoc(fs, stdin, path)
			if err != nil {
				return err
			}
			res[i] = &input{Path: path, Doc: doc}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// writeDoc writes node to path. A nil node empties the file.
func (cfg *MainConfig) writeDoc(path string, node *ir.Node) error {
	buf := bytes.NewBuffer(nil)
	if node != nil {
		if err := encode.Encode(node, buf, cfg.fileEncOpts(path)...); err != nil {
			return fmt.Errorf("error encoding %q: %w", path, err)
		}
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := cfg.Fs.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	if err := afero.WriteFile(cfg.Fs, path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("error writing %q: %w", path, err)
	}
	return nil
}

// loadSortConfig reads a sort configuration, or returns nil when path is
// empty.
func loadSortConfig(fs afero.Fs, path string) (*yabe.SortConfig, error) {
	if path == "" {
		return nil, nil
	}
	d, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("error reading sort config: %w", err)
	}
	node, err := parse.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding sort config %q: %w", path, err)
	}
	return yabe.SortConfigFromNode(node), nil
}
