package main

import (
	"fmt"
	"os"

	"github.com/signadot/flowdoc/ir"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a json patch file", cli.ErrUsage)
	}
	ops, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	tool, err := cfg.tool()
	if err != nil {
		return err
	}
	for _, path := range inputs(args[1:]) {
		if cfg.Write && path == "-" {
			return fmt.Errorf("%w: cannot write back to stdin", cli.ErrUsage)
		}
		docs, err := getDocs(cfg.MainConfig, cc, path)
		if err != nil {
			return err
		}
		res := make([]*ir.Node, len(docs))
		for i, doc := range docs {
			res[i], err = tool.Edit(doc, ops)
			if err != nil {
				return fmt.Errorf("%s document %d: %w", path, i, err)
			}
		}
		if cfg.Write {
			if err := writeBack(cfg.MainConfig, path, res); err != nil {
				return err
			}
			theLog.Info("patched", "file", path)
			continue
		}
		if err := encodeDocs(cc.Out, res, cfg.encOpts(cc.Out, path)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", path, err)
		}
	}
	return nil
}
