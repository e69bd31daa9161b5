package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/flowdoc"
	"github.com/signadot/flowdoc/catalog"
	"github.com/signadot/flowdoc/encode"
	"github.com/signadot/flowdoc/format"
	"github.com/signadot/flowdoc/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

const catalogEnv = "FLOWDOC_CATALOG"

type MainConfig struct {
	Catalog string `cli:"name=catalog desc='catalog directory (default $FLOWDOC_CATALOG)'"`
	Color   bool   `cli:"name=color desc='encode with color'"`
	Verbose bool   `cli:"name=v desc='log debug messages'"`

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

// inFormat returns the format of the input read from path.
func (cfg *MainConfig) inFormat(path string) format.Format {
	switch {
	case cfg.InFormat != nil:
		return *cfg.InFormat
	case cfg.J:
		return format.JSONFormat
	case cfg.Y:
		return format.YAMLFormat
	case path == "-":
		return format.YAMLFormat
	default:
		return format.FromPath(path)
	}
}

func (cfg *MainConfig) parseOpts(path string) []parse.ParseOption {
	return []parse.ParseOption{parse.ParseFormat(cfg.inFormat(path))}
}

// outFormat returns the output format for documents read from path.
func (cfg *MainConfig) outFormat(path string) format.Format {
	switch {
	case cfg.OutFormat != nil:
		return *cfg.OutFormat
	case cfg.J:
		return format.JSONFormat
	case cfg.Y:
		return format.YAMLFormat
	default:
		return cfg.inFormat(path)
	}
}

func (cfg *MainConfig) encOpts(w io.Writer, path string) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat(path)),
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// useColor honours an explicit -color and otherwise colours terminals.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// tool loads the catalog and returns a Tool over it. Without a catalog
// every object is sorted alphabetically.
func (cfg *MainConfig) tool() (*flowdoc.Tool, error) {
	dir := cfg.Catalog
	if dir == "" {
		dir = os.Getenv(catalogEnv)
	}
	if dir == "" {
		theLog.Warn("no catalog, sorting alphabetically")
		return flowdoc.NewTool(nil), nil
	}
	reg, err := catalog.LoadDir(dir)
	if err != nil {
		return nil, err
	}
	theLog.Debug("loaded catalog", "dir", dir, "entries", reg.Len())
	return flowdoc.NewTool(reg), nil
}

type SortConfig struct {
	*MainConfig

	Check bool   `cli:"name=check desc='exit 1 if any input is not canonical'"`
	Diff  bool   `cli:"name=diff desc='print what sorting would change'"`
	Write bool   `cli:"name=w desc='write the result back to the input files'"`
	At    string `cli:"name=at desc='only sort the construct at this document path'"`
	As    string `cli:"name=as desc='construct name of the -at path (default last path field)'"`

	Sort *cli.Command
}

type TreeConfig struct {
	*MainConfig

	Where      string `cli:"name=where desc='only print nodes matching this expression'"`
	Components bool   `cli:"name=components desc='list the components used'"`

	Tree *cli.Command
}

type ClassifyConfig struct {
	*MainConfig

	Classify *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Write bool `cli:"name=w desc='write the result back to the input files'"`

	Patch *cli.Command
}
