package main

import (
	"fmt"

	"github.com/signadot/delta"
	"github.com/signadot/delta/encode"
	"github.com/signadot/delta/parse"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getDeltaFile(cfg.MainConfig, cc, args[0], parse.ParseDocument())
	if err != nil {
		return err
	}
	b, err := getDeltaFile(cfg.MainConfig, cc, args[1], parse.ParseDocument())
	if err != nil {
		return err
	}
	d, err := delta.Diff(a, b, cfg.diffOpts()...)
	if err != nil {
		return err
	}
	if len(d) == 0 {
		return nil
	}
	cfg.logf("documents differ", "ops", len(d), "change", d.ChangeLength())
	if err := encode.Encode(d, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func (cfg *DiffConfig) diffOpts() []delta.DiffOption {
	res := []delta.DiffOption{delta.DiffAttributes(cfg.Attrs)}
	if cfg.Cursor >= 0 {
		res = append(res, delta.DiffCursor(cfg.Cursor))
	}
	return res
}
