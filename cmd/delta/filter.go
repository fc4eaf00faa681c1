package main

import (
	"fmt"

	"github.com/signadot/delta/encode"
	"github.com/signadot/delta/eval"

	"github.com/scott-cotton/cli"
)

func filter(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Filter.Parse(cc, args)
	if err != nil {
		cfg.Filter.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: filter requires -e expr", cli.ErrUsage)
	}
	p, err := eval.Compile(cfg.Expr)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		d, err := getDeltaFile(cfg.MainConfig, cc, arg)
		if err != nil {
			return err
		}
		res, err := eval.Filter(d, p)
		if err != nil {
			return fmt.Errorf("error filtering %s: %w", arg, err)
		}
		cfg.logf("filtered", "path", arg, "kept", len(res), "of", len(d))
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}
