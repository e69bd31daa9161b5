package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/flowdoc"
	"github.com/signadot/flowdoc/encode"
	"github.com/signadot/flowdoc/ir"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func sortDocs(cfg *SortConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Sort.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Write && (cfg.Check || cfg.Diff) {
		return fmt.Errorf("%w: -w cannot be combined with -check or -diff", cli.ErrUsage)
	}
	if cfg.As != "" && cfg.At == "" {
		return fmt.Errorf("%w: -as requires -at", cli.ErrUsage)
	}
	tool, err := cfg.tool()
	if err != nil {
		return err
	}
	unsorted := 0
	for _, path := range inputs(args) {
		if cfg.Write && path == "-" {
			return fmt.Errorf("%w: cannot write back to stdin", cli.ErrUsage)
		}
		docs, err := getDocs(cfg.MainConfig, cc, path)
		if err != nil {
			return err
		}
		sorted := make([]*ir.Node, len(docs))
		changed := false
		for i, doc := range docs {
			res, err := cfg.sortDoc(tool, doc)
			if err != nil {
				return fmt.Errorf("%s document %d: %w", path, i, err)
			}
			sorted[i] = res
			if !ir.EqualOrdered(doc, res) {
				changed = true
			}
		}
		switch {
		case cfg.Check:
			if changed {
				unsorted++
				theLog.Warn("not canonical", "file", path)
			}
		case cfg.Diff:
			if !changed {
				continue
			}
			if err := cfg.diff(cc.Out, path, docs, sorted); err != nil {
				return err
			}
		case cfg.Write:
			if !changed {
				theLog.Debug("already canonical", "file", path)
				continue
			}
			if err := writeBack(cfg.MainConfig, path, sorted); err != nil {
				return err
			}
			theLog.Info("sorted", "file", path)
		default:
			if err := encodeDocs(cc.Out, sorted, cfg.encOpts(cc.Out, path)...); err != nil {
				return fmt.Errorf("error encoding %s: %w", path, err)
			}
		}
	}
	if unsorted > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func (cfg *SortConfig) sortDoc(tool *flowdoc.Tool, doc *ir.Node) (*ir.Node, error) {
	if cfg.At == "" {
		return tool.Sort(doc)
	}
	res, err := tool.CanonicalizeAt(doc, cfg.At, cfg.As)
	if err != nil {
		return nil, err
	}
	if err := flowdoc.Lossless(doc, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (cfg *SortConfig) diff(w io.Writer, path string, before, after []*ir.Node) error {
	from, err := docsString(cfg.MainConfig, path, before)
	if err != nil {
		return err
	}
	to, err := docsString(cfg.MainConfig, path, after)
	if err != nil {
		return err
	}
	useColor := cfg.useColor(w)
	del, ins := color.New(color.FgRed), color.New(color.FgGreen)
	if useColor {
		del.EnableColor()
		ins.EnableColor()
	} else {
		del.DisableColor()
		ins.DisableColor()
	}
	fmt.Fprintf(w, "--- %s\n+++ %s (sorted)\n", path, path)
	for _, line := range lineDiff(from, to) {
		switch line[0] {
		case '-':
			del.Fprintln(w, line)
		case '+':
			ins.Fprintln(w, line)
		default:
			fmt.Fprintln(w, line)
		}
	}
	return nil
}

func docsString(cfg *MainConfig, path string, docs []*ir.Node) (string, error) {
	buf := &strings.Builder{}
	if err := encodeDocs(buf, docs, encode.EncodeFormat(cfg.outFormat(path))); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// lineDiff returns the lines of from and to prefixed with "-", "+" or " ".
func lineDiff(from, to string) []string {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	var res []string
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
		case diffpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			res = append(res, prefix+strings.TrimSuffix(line, "\n"))
		}
	}
	return res
}
