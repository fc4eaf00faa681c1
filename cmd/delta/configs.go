package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/delta/encode"
	"github.com/signadot/delta/format"
	"github.com/signadot/delta/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`
	Verbose bool `cli:"name=v desc='log progress to stderr'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// inFormat picks the format for reading path: -I, then -j/-y, then the
// path suffix, then JSON.
func (cfg *MainConfig) inFormat(path string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	switch {
	case cfg.Y:
		return format.YAMLFormat
	case cfg.J:
		return format.JSONFormat
	}
	if f, ok := format.FromPath(path); ok {
		return f
	}
	return format.JSONFormat
}

func (cfg *MainConfig) parseOpts(path string) []parse.ParseOption {
	return []parse.ParseOption{parse.ParseFormat(cfg.inFormat(path))}
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if cfg.Y {
		return format.YAMLFormat
	}
	return format.JSONFormat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			colorsSet = opt.Value != nil
			break
		}
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ComposeConfig struct {
	*MainConfig

	Compose *cli.Command
}

type TransformConfig struct {
	*MainConfig
	Priority bool `cli:"name=p desc='the first delta happened first'"`

	Transform *cli.Command
}

type PositionConfig struct {
	*MainConfig
	Priority bool `cli:"name=p desc='keep the index before inserts at the same place'"`

	Position *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Cursor int  `cli:"name=cursor desc='offset in the old document where the edit is expected'"`
	Attrs  bool `cli:"name=attrs desc='also diff attributes of unchanged text'"`

	Diff *cli.Command
}

type InvertConfig struct {
	*MainConfig

	Invert *cli.Command
}

type ApplyConfig struct {
	*MainConfig

	Apply *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type FilterConfig struct {
	*MainConfig
	Expr string `cli:"name=e desc='expression selecting ops to keep'"`

	Filter *cli.Command
}

type LinesConfig struct {
	*MainConfig
	Newline string `cli:"name=nl desc='line separator (default newline)'"`

	Lines *cli.Command
}
