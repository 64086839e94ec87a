package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func lint(cfg *LintConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Lint.Parse(cc, args)
	if err != nil {
		cfg.Lint.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	bad := 0
	for _, arg := range args {
		_, err := readArg(arg)
		if err != nil {
			bad++
			fmt.Fprintf(os.Stderr, "%v\n", err)
			continue
		}
		if !cfg.Quiet {
			fmt.Fprintf(cc.Out, "%s: OK\n", arg)
		}
	}
	if bad > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
