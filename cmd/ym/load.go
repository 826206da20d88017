package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matform/yamlmat/gomap"
	"github.com/matform/yamlmat/parse"

	"github.com/scott-cotton/cli"
)

func load(cfg *LoadConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Load.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return loadReader(cfg, cc.Out, cc.In)
	}
	return loadFiles(cfg, cc.Out, args)
}

func loadFiles(cfg *LoadConfig, w io.Writer, files []string) error {
	for _, file := range files {
		if err := loadFile(cfg, w, file); err != nil {
			return err
		}
	}
	return nil
}

func loadFile(cfg *LoadConfig, w io.Writer, file string) error {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	if err := loadReader(cfg, w, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func loadReader(cfg *LoadConfig, w io.Writer, r io.Reader) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	var pOpts []parse.ParseOption
	if !cfg.Dense {
		pOpts = append(pOpts, parse.NoReconcile())
	}
	docs := bytes.Split(in, []byte("\n---\n"))
	for i, doc := range docs {
		v, err := parse.Parse(doc, pOpts...)
		if err != nil {
			return fmt.Errorf("error decoding document %d: %w", i, err)
		}
		d, err := json.MarshalIndent(gomap.ToAny(v), "", "  ")
		if err != nil {
			return fmt.Errorf("internal error: %w", err)
		}
		w.Write(d)
		w.Write([]byte("\n"))
	}
	return nil
}
