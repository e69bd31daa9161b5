package main

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/signadot/flowdoc/camel"
	"github.com/signadot/flowdoc/encode"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"
)

func printTrees(cfg *TreeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tree.Parse(cc, args)
	if err != nil {
		return err
	}
	var where *vm.Program
	if cfg.Where != "" {
		where, err = expr.Compile(cfg.Where, expr.Env(nodeEnv(nil)), expr.AsBool())
		if err != nil {
			return fmt.Errorf("%w: -where: %w", cli.ErrUsage, err)
		}
	}
	tool, err := cfg.tool()
	if err != nil {
		return err
	}
	var colors *encode.Colors
	if cfg.useColor(cc.Out) {
		colors = encode.NewColors()
	}
	for _, path := range inputs(args) {
		docs, err := getDocs(cfg.MainConfig, cc, path)
		if err != nil {
			return err
		}
		components := map[string]bool{}
		for _, doc := range docs {
			for _, root := range tool.Trees(doc) {
				if err := printTree(cc.Out, root, where, colors); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
			}
			for _, c := range camel.Components(doc) {
				components[c] = true
			}
		}
		if cfg.Components {
			names := slices.Sorted(maps.Keys(components))
			fmt.Fprintf(cc.Out, "# %s components: %s\n", path, strings.Join(names, ", "))
		}
	}
	return nil
}

func printTree(w io.Writer, root *camel.Node, where *vm.Program, colors *encode.Colors) error {
	var err error
	root.Walk(func(n *camel.Node) bool {
		if err != nil {
			return false
		}
		if where != nil {
			out, rErr := expr.Run(where, nodeEnv(n))
			if rErr != nil {
				err = fmt.Errorf("-where at %s: %w", n.Path(), rErr)
				return false
			}
			if !out.(bool) {
				return true
			}
		}
		name, typ := n.Name(), n.Type().String()
		if colors != nil {
			name = colors.Field.Sprint(name)
			typ = colors.String.Sprint(typ)
		}
		line := fmt.Sprintf("%s%s %s %s", strings.Repeat("  ", n.Depth()), name, typ, n.Path())
		if e, ok := n.CatalogEntry(); ok && e.Title != "" {
			line += fmt.Sprintf(" (%s)", e.Title)
		}
		fmt.Fprintln(w, line)
		return true
	})
	return err
}

// nodeEnv is the environment of -where expressions. A nil node gives the
// zero environment used to type check them.
func nodeEnv(n *camel.Node) map[string]any {
	if n == nil {
		return map[string]any{
			"name":     "",
			"type":     "",
			"path":     "",
			"depth":    0,
			"array":    false,
			"children": 0,
			"hasEntry": false,
			"title":    "",
		}
	}
	e, ok := n.CatalogEntry()
	title := ""
	if ok {
		title = e.Title
	}
	return map[string]any{
		"name":     n.Name(),
		"type":     n.Type().String(),
		"path":     n.Path(),
		"depth":    n.Depth(),
		"array":    n.IsArrayElement(),
		"children": len(n.Children()),
		"hasEntry": ok,
		"title":    title,
	}
}
