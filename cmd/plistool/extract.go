package main

import (
	"fmt"

	"github.com/plistfmt/go-plist"
	"github.com/scott-cotton/cli"
)

func extract(cfg *ExtractConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Extract.Parse(cc, args)
	if err != nil {
		cfg.Extract.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: extract requires one argument, a key path", cli.ErrUsage)
	}
	path := args[0]
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		node, err := readArg(arg)
		if err != nil {
			return err
		}
		res, err := plist.Extract(node, path)
		if err != nil {
			return fmt.Errorf("error extracting %q from %s: %w", path, arg, err)
		}
		if err := cfg.writeNode(cc.Out, res); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}
