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

	return cli.NewCommandAt(&cfg.Main, "flowdoc").
		WithSynopsis("flowdoc [opts] command [opts]").
		WithDescription("flowdoc puts route documents in catalog order.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return flowdocMain(cfg, cc, args)
		}).
		WithSubs(
			SortCommand(cfg),
			TreeCommand(cfg),
			ClassifyCommand(cfg),
			PatchCommand(cfg))
}

func SortCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SortConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Sort, "sort").
		WithAliases("s", "fmt").
		WithSynopsis("sort [-check] [-diff] [-w] [-at path [-as name]] [files]").
		WithDescription("sort the keys of route documents in catalog order").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sortDocs(cfg, cc, args)
		})
}

func TreeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TreeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Tree, "tree").
		WithAliases("t").
		WithSynopsis("tree [-where expr] [-components] [files]").
		WithDescription("print the classified node tree of route documents.\n" +
			"-where takes a boolean expression over name, type, path, depth,\n" +
			"array, children, hasEntry and title, for example\n" +
			"    -where 'type == \"language\" || depth < 2'").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return printTrees(cfg, cc, args)
		})
}

func ClassifyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ClassifyConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Classify, "classify").
		WithAliases("c").
		WithSynopsis("classify names...").
		WithDescription("print the node type of each name and whether the catalog knows it").
		WithRun(func(cc *cli.Context, args []string) error {
			return classify(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p").
		WithSynopsis("patch [-w] <json-patch-file> [files]").
		WithDescription("apply an RFC 6902 JSON patch and sort the result").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}
