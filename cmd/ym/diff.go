package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/matform/yamlmat/libdiff"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff takes exactly two files", cli.ErrUsage)
	}
	from, err := getObjFile(cc, args[0])
	if err != nil {
		return fmt.Errorf("error processing %s: %w", args[0], err)
	}
	to, err := getObjFile(cc, args[1])
	if err != nil {
		return fmt.Errorf("error processing %s: %w", args[1], err)
	}
	text, err := libdiff.Documents(from, to)
	if err != nil {
		return err
	}
	if text == "" {
		return nil
	}
	return writeDiff(cfg, cc.Out, text)
}

func writeDiff(cfg *DiffConfig, w io.Writer, text string) error {
	if !cfg.useColor(w) {
		_, err := io.WriteString(w, text)
		return err
	}
	for _, ln := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		var err error
		switch {
		case strings.HasPrefix(ln, "- "):
			_, err = color.New(color.FgRed).Fprintln(w, ln)
		case strings.HasPrefix(ln, "+ "):
			_, err = color.New(color.FgGreen).Fprintln(w, ln)
		default:
			_, err = fmt.Fprintln(w, ln)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
