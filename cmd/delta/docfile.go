package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/delta"
	"github.com/signadot/delta/parse"

	"github.com/scott-cotton/cli"
)

func getDeltaFile(cfg *MainConfig, cc *cli.Context, path string, opts ...parse.ParseOption) (delta.Delta, error) {
	var (
		r io.Reader
	)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	return readDelta(cfg, r, path, opts...)
}

func readDelta(cfg *MainConfig, r io.Reader, path string, opts ...parse.ParseOption) (delta.Delta, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	res, err := parse.Parse(d, append(cfg.parseOpts(path), opts...)...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	cfg.logf("read", "path", path, "ops", len(res), "length", res.Length())
	return res, nil
}

func getDeltaFiles(cfg *MainConfig, cc *cli.Context, paths []string) ([]delta.Delta, error) {
	res := make([]delta.Delta, 0, len(paths))
	for _, path := range paths {
		d, err := getDeltaFile(cfg, cc, path)
		if err != nil {
			return nil, err
		}
		res = append(res, d)
	}
	return res, nil
}
