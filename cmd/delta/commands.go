package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "delta").
		WithSynopsis("delta [opts] command [opts]").
		WithDescription("delta is a tool for working with rich text deltas.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return deltaMain(cfg, cc, args)
		}).
		WithSubs(
			ComposeCommand(cfg),
			TransformCommand(cfg),
			PositionCommand(cfg),
			DiffCommand(cfg),
			InvertCommand(cfg),
			ApplyCommand(cfg),
			ViewCommand(cfg),
			FilterCommand(cfg),
			LinesCommand(cfg))
}

func ComposeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ComposeConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Compose, "compose").
		WithAliases("c").
		WithSynopsis("compose a b [c...]").
		WithDescription("compose deltas left to right").
		WithRun(func(cc *cli.Context, args []string) error {
			return compose(cfg, cc, args)
		})
}

func TransformCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TransformConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Transform, "transform").
		WithAliases("t").
		WithSynopsis("transform [-p] a b").
		WithDescription("rewrite b to apply after a").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return transform(cfg, cc, args)
		})
}

func PositionCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PositionConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Position, "position").
		WithAliases("pos").
		WithSynopsis("position [-p] a index").
		WithDescription("map a document index through a").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return position(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg, Cursor: -1}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff [-cursor n] [-attrs] a b").
		WithDescription("diff two documents; exits 1 when they differ").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func InvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &InvertConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Invert, "invert").
		WithAliases("i", "inv").
		WithSynopsis("invert change base").
		WithDescription("produce the change undoing change on base").
		WithRun(func(cc *cli.Context, args []string) error {
			return invert(cfg, cc, args)
		})
}

func ApplyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ApplyConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Apply, "apply").
		WithAliases("a", "ap").
		WithSynopsis("apply doc change [change...]").
		WithDescription("apply changes to a document").
		WithRun(func(cc *cli.Context, args []string) error {
			return apply(cfg, cc, args)
		})
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view deltas one op per line, in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func FilterCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FilterConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Filter, "filter").
		WithAliases("f").
		WithSynopsis("filter -e expr [files]").
		WithDescription(filterDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return filter(cfg, cc, args)
		})
}

const filterDescription = `filter keeps the ops of each delta for which expr holds.

expr is an expr-lang expression over the fields

  kind        "insert", "retain" or "delete"
  text        inserted text
  embed       inserted embed value, or nil
  isEmbed     whether the op inserts an embed
  length      op length in UTF-16 code units
  attributes  op attributes
  index       op position in the delta
  offset      sum of the lengths of the preceding ops

for example

  delta filter -e 'kind == "insert" && "bold" in attributes' doc.json`

func LinesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LinesConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Lines, "lines").
		WithAliases("l").
		WithSynopsis("lines [-nl s] doc").
		WithDescription("list the lines of a document with their attributes").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return lines(cfg, cc, args)
		})
}
