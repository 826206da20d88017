package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/matform/yamlmat/encode"

	"github.com/goccy/go-yaml/lexer"
	"github.com/goccy/go-yaml/printer"
	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		v, err := getObjFile(cc, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		var buf bytes.Buffer
		if err := encode.Encode(v, &buf, cfg.encOpts()...); err != nil {
			return err
		}
		if err := writeColored(cfg, cc.Out, buf.String()); err != nil {
			return err
		}
	}
	return nil
}

// writeColored repaints the emitted document token by token. Plain
// output when not writing to a terminal.
func writeColored(cfg *ViewConfig, w io.Writer, doc string) error {
	if !cfg.useColor(w) {
		_, err := io.WriteString(w, doc)
		return err
	}
	tokens := lexer.Tokenize(doc)
	var p printer.Printer
	p.Bool = colorProp(colorCyan)
	p.Number = colorProp(colorMagenta)
	p.MapKey = colorProp(colorBlue)
	p.String = colorProp(colorGreen)
	p.Anchor = colorProp(colorYellow)
	p.Alias = colorProp(colorYellow)
	_, err := io.WriteString(w, p.PrintTokens(tokens)+"\n")
	return err
}

const (
	colorBlue    = 94
	colorGreen   = 92
	colorCyan    = 96
	colorMagenta = 95
	colorYellow  = 93
)

func colorProp(code int) func() *printer.Property {
	return func() *printer.Property {
		return &printer.Property{
			Prefix: fmt.Sprintf("\x1b[%dm", code),
			Suffix: "\x1b[0m",
		}
	}
}
