package main

import (
	"fmt"
	"strconv"

	"github.com/signadot/delta"
	"github.com/signadot/delta/encode"

	"github.com/scott-cotton/cli"
)

func transform(cfg *TransformConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Transform.Parse(cc, args)
	if err != nil {
		cfg.Transform.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: transform requires 2 args, got %v", cli.ErrUsage, args)
	}
	ds, err := getDeltaFiles(cfg.MainConfig, cc, args)
	if err != nil {
		return err
	}
	res := delta.Transform(ds[0], ds[1], cfg.Priority)
	return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
}

func position(cfg *PositionConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Position.Parse(cc, args)
	if err != nil {
		cfg.Position.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: position requires 2 args, got %v", cli.ErrUsage, args)
	}
	index, err := strconv.Atoi(args[1])
	if err != nil || index < 0 {
		return fmt.Errorf("%w: invalid index %q", cli.ErrUsage, args[1])
	}
	d, err := getDeltaFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cc.Out, delta.TransformPosition(d, index, cfg.Priority))
	return err
}
