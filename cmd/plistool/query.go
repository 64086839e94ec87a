package main

import (
	"fmt"

	"github.com/plistfmt/go-plist/eval"
	"github.com/plistfmt/go-plist/gomap"
	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires one argument, an expression", cli.ErrUsage)
	}
	q, err := eval.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
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
		res, err := q.Run(node)
		if err != nil {
			return fmt.Errorf("error querying %s: %w", arg, err)
		}
		if cfg.Bool {
			if truthy(res) {
				continue
			}
			return cli.ExitCodeErr(1)
		}
		resNode, err := gomap.FromGo(res)
		if err != nil {
			return fmt.Errorf("error representing result %v: %w", res, err)
		}
		if err := cfg.writeNode(cc.Out, resNode); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case int:
		return t != 0
	case int64:
		return t != 0
	case float64:
		return t != 0
	case string:
		return t != ""
	default:
		return true
	}
}
