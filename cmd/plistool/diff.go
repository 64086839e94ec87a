package main

import (
	"fmt"

	"github.com/plistfmt/go-plist/libdiff"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	from, err := readArg(args[0])
	if err != nil {
		return err
	}
	to, err := readArg(args[1])
	if err != nil {
		return err
	}
	if cfg.Reverse {
		from, to = to, from
	}
	colors := libdiff.PlainColors()
	if cfg.useColors(cc.Out) {
		colors = libdiff.NewColors()
	}
	different, err := libdiff.Fprint(cc.Out, from, to, colors)
	if err != nil {
		return err
	}
	if different {
		return cli.ExitCodeErr(1)
	}
	return nil
}
