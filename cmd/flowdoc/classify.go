package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/scott-cotton/cli"
)

func classify(cfg *ClassifyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Classify.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: classify requires at least one name", cli.ErrUsage)
	}
	tool, err := cfg.tool()
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(cc.Out, 0, 4, 2, ' ', 0)
	for _, name := range args {
		typ := tool.Resolver.NodeType(name, nil)
		known := "unknown"
		if e, ok := tool.Resolver.CatalogEntry(name, typ); ok {
			known = "known"
			if e.Title != "" {
				known += ": " + e.Title
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", name, typ, known)
	}
	return tw.Flush()
}
