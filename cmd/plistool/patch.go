package main

import (
	"fmt"
	"os"

	"github.com/plistfmt/go-plist/eval"
	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires one argument, a json patch", cli.ErrUsage)
	}
	patchData := []byte(args[0])
	if cfg.File {
		patchData, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("error reading patch %s: %w", args[0], err)
		}
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		node, err := readArg(arg)
		if err != nil {
			return err
		}
		var res = node
		if cfg.Merge {
			res, err = eval.MergePatch(node, patchData)
		} else {
			res, err = eval.Patch(node, patchData)
		}
		if err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		if err := cfg.writeNode(cc.Out, res); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}
