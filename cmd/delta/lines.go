package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/signadot/delta"
	"github.com/signadot/delta/attr"
	"github.com/signadot/delta/parse"

	"github.com/scott-cotton/cli"
)

type lineRecord struct {
	Index      int         `json:"index"`
	Ops        delta.Delta `json:"ops"`
	Attributes attr.Map    `json:"attributes,omitempty"`
}

func lines(cfg *LinesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Lines.Parse(cc, args)
	if err != nil {
		cfg.Lines.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: lines requires 1 document, got %v", cli.ErrUsage, args)
	}
	d, err := getDeltaFile(cfg.MainConfig, cc, args[0], parse.ParseDocument())
	if err != nil {
		return err
	}
	return writeLines(cc.Out, docLines(d, cfg.Newline))
}

func docLines(d delta.Delta, newline string) []lineRecord {
	var res []lineRecord
	d.EachLine(func(line delta.Delta, attrs attr.Map, i int) bool {
		res = append(res, lineRecord{Index: i, Ops: line, Attributes: attrs})
		return true
	}, newline)
	return res
}

// writeLines writes one JSON object per line.
func writeLines(w io.Writer, recs []lineRecord) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for i := range recs {
		if err := enc.Encode(&recs[i]); err != nil {
			return err
		}
	}
	return nil
}
