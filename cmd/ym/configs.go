package main

import (
	"fmt"
	"os"

	"github.com/matform/yamlmat/encode"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colored output'"`

	Style encode.Style

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) styleOpt(_ *cli.Context, a string) (any, error) {
	s, err := encode.ParseStyle(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Style = s
	return s, nil
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) encOpts() []encode.EncodeOption {
	return []encode.EncodeOption{encode.EncodeStyle(cfg.Style)}
}

// useColor reports whether output should be colored: forced by the
// -color flag, otherwise on when writing to a terminal.
func (cfg *MainConfig) useColor(w any) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type DumpConfig struct {
	*MainConfig

	Dump *cli.Command
}

type LoadConfig struct {
	*MainConfig

	Dense bool `cli:"name=dense desc='reconcile numeric nests into dense arrays'"`

	Load *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
