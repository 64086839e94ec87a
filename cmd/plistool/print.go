package main

import (
	"fmt"

	"github.com/plistfmt/go-plist/encode"
	"github.com/scott-cotton/cli"
)

func printCmd(cfg *PrintConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Print.Parse(cc, args)
	if err != nil {
		cfg.Print.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	opts := append(cfg.encOpts(cc.Out), encode.WithIndent(cfg.Indent))
	for _, arg := range args {
		node, err := readArg(arg)
		if err != nil {
			return err
		}
		if err := encode.Encode(node, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}
