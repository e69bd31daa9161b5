package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/flowdoc/format"
	"github.com/signadot/flowdoc/ir"

	"github.com/goccy/go-yaml"
)

// Encode writes node to w, keeping object keys in node order.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{format: format.YAMLFormat, indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	d, err := encodeBytes(node, es)
	if err != nil {
		return err
	}
	if es.colors != nil {
		d = es.colors.colorize(d)
	}
	_, err = w.Write(d)
	return err
}

func encodeBytes(node *ir.Node, es *EncState) ([]byte, error) {
	switch es.format {
	case format.JSONFormat:
		d, err := node.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf := bytes.NewBuffer(nil)
		if es.indent <= 0 {
			buf.Write(d)
		} else if err := json.Indent(buf, d, "", strings.Repeat(" ", es.indent)); err != nil {
			return nil, err
		}
		buf.WriteByte('\n')
		return buf.Bytes(), nil
	case format.YAMLFormat:
		indent := es.indent
		if indent <= 0 {
			indent = 2
		}
		d, err := yaml.MarshalWithOptions(ToValue(node),
			yaml.Indent(indent),
			yaml.IndentSequence(true),
			yaml.UseLiteralStyleIfMultiline(true))
		if err != nil {
			return nil, fmt.Errorf("error encoding yaml: %w", err)
		}
		return d, nil
	default:
		return nil, fmt.Errorf("%w: %s", format.ErrBadFormat, es.format)
	}
}

// ToValue converts node into a value goccy/go-yaml encodes in node order.
func ToValue(node *ir.Node) any {
	switch node.Type {
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i, f := range node.Fields {
			res[i] = yaml.MapItem{Key: f.String, Value: ToValue(node.Values[i])}
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = ToValue(v)
		}
		return res
	case ir.NumberType:
		if node.Int64 == nil && node.Float64 == nil {
			if u, err := strconv.ParseUint(node.Number, 10, 64); err == nil {
				return u
			}
		}
		return node.Scalar()
	default:
		return node.Scalar()
	}
}
