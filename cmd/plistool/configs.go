package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/plistfmt/go-plist"
	"github.com/plistfmt/go-plist/encode"
	"github.com/plistfmt/go-plist/format"
	"github.com/plistfmt/go-plist/ir"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	X bool `cli:"name=x aliases=xml desc='output xml'"`
	B bool `cli:"name=b aliases=binary desc='output binary'"`
	J bool `cli:"name=j aliases=json desc='output json'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`

	Color bool `cli:"name=color desc='force colored output'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
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

func (cfg *MainConfig) outputFormat() format.Format {
	fmat := format.XMLFormat
	switch {
	case cfg.X:
		fmat = format.XMLFormat
	case cfg.B:
		fmat = format.BinaryFormat
	case cfg.J:
		fmat = format.JSONFormat
	case cfg.Y:
		fmat = format.YAMLFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	return fmat
}

func (cfg *MainConfig) useColors(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if cfg.useColors(w) {
		return []encode.EncodeOption{encode.WithColors(encode.NewColors())}
	}
	return nil
}

// readArg parses a plist from a file path, or from stdin when arg is "-".
func readArg(arg string) (*ir.Node, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	node, err := plist.ReadBytes(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return node, nil
}

func (cfg *MainConfig) writeNode(w io.Writer, node *ir.Node) error {
	return plist.Write(w, node, plist.WithFormat(cfg.outputFormat()))
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}

type PrintConfig struct {
	*MainConfig

	Indent string `cli:"name=indent desc='indentation string'"`

	Print *cli.Command
}

type ExtractConfig struct {
	*MainConfig

	Extract *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Bool bool `cli:"name=t desc='exit 0/1 on truthy/falsy result, no output'"`

	Query *cli.Command
}

type PatchConfig struct {
	*MainConfig

	File  bool `cli:"name=f desc='patch arg is a file path'"`
	Merge bool `cli:"name=m desc='apply as a json merge patch'"`

	Patch *cli.Command
}

type LintConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='suppress per-file output'"`

	Lint *cli.Command
}
