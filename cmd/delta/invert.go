package main

import (
	"fmt"

	"github.com/signadot/delta"
	"github.com/signadot/delta/encode"
	"github.com/signadot/delta/parse"

	"github.com/scott-cotton/cli"
)

func invert(cfg *InvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Invert.Parse(cc, args)
	if err != nil {
		cfg.Invert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: invert requires a change and a base document, got %v", cli.ErrUsage, args)
	}
	change, err := getDeltaFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	base, err := getDeltaFile(cfg.MainConfig, cc, args[1], parse.ParseDocument())
	if err != nil {
		return err
	}
	if n, baseLen := change.BaseLength(), base.Length(); n > baseLen {
		return fmt.Errorf("%w: %s covers %d past base length %d", delta.ErrBadOp, args[0], n, baseLen)
	}
	return encode.Encode(delta.Invert(change, base), cc.Out, cfg.encOpts(cc.Out)...)
}
