package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/signadot/flowdoc/encode"
	"github.com/signadot/flowdoc/format"
	"github.com/signadot/flowdoc/ir"
	"github.com/signadot/flowdoc/parse"

	"github.com/scott-cotton/cli"
)

func getDocs(cfg *MainConfig, cc *cli.Context, path string) ([]*ir.Node, error) {
	var r io.Reader
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

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	docs, err := parse.ParseMulti(d, cfg.parseOpts(path)...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return docs, nil
}

// encodeDocs encodes docs as a stream, separating yaml documents with
// "---".
func encodeDocs(w io.Writer, docs []*ir.Node, opts ...encode.EncodeOption) error {
	yaml := encode.FormatFromOpts(opts...) == format.YAMLFormat
	for i, doc := range docs {
		if yaml && i > 0 {
			if _, err := io.WriteString(w, "---\n"); err != nil {
				return err
			}
		}
		if err := encode.Encode(doc, w, opts...); err != nil {
			return err
		}
	}
	return nil
}

// writeBack replaces the contents of path with docs.
func writeBack(cfg *MainConfig, path string, docs []*ir.Node) error {
	buf := bytes.NewBuffer(nil)
	if err := encodeDocs(buf, docs, encode.EncodeFormat(cfg.outFormat(path))); err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), info.Mode().Perm())
}

func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
