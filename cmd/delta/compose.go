package main

import (
	"fmt"

	"github.com/signadot/delta"
	"github.com/signadot/delta/encode"
	"github.com/signadot/delta/parse"

	"github.com/scott-cotton/cli"
)

func compose(cfg *ComposeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Compose.Parse(cc, args)
	if err != nil {
		cfg.Compose.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: compose requires at least 2 args, got %v", cli.ErrUsage, args)
	}
	ds, err := getDeltaFiles(cfg.MainConfig, cc, args)
	if err != nil {
		return err
	}
	return encode.Encode(composeAll(ds), cc.Out, cfg.encOpts(cc.Out)...)
}

func composeAll(ds []delta.Delta) delta.Delta {
	var res delta.Delta
	for i, d := range ds {
		if i == 0 {
			res = d
			continue
		}
		res = delta.Compose(res, d)
	}
	return res
}

func apply(cfg *ApplyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Apply.Parse(cc, args)
	if err != nil {
		cfg.Apply.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: apply requires a document and at least one change, got %v", cli.ErrUsage, args)
	}
	doc, err := getDeltaFile(cfg.MainConfig, cc, args[0], parse.ParseDocument())
	if err != nil {
		return err
	}
	changes, err := getDeltaFiles(cfg.MainConfig, cc, args[1:])
	if err != nil {
		return err
	}
	res, err := applyAll(doc, changes)
	if err != nil {
		return err
	}
	return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
}

// applyAll composes changes onto doc, failing if a change leaves
// something other than a document.
func applyAll(doc delta.Delta, changes []delta.Delta) (delta.Delta, error) {
	for i, change := range changes {
		doc = delta.Compose(doc, change)
		if !doc.IsDocument() {
			return nil, fmt.Errorf("%w: result of applying change %d", delta.ErrNotADocument, i)
		}
	}
	return doc, nil
}
