package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/signadot/flowdoc/format"
	"github.com/signadot/flowdoc/ir"

	"github.com/goccy/go-yaml"
)

// Parse decodes the first document in d. It returns nil if d holds no
// document.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	docs, err := parseDocs(d, 1, opts...)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return docs[0], nil
}

// ParseMulti decodes every document in d. YAML documents are separated
// by "---".
func ParseMulti(d []byte, opts ...ParseOption) ([]*ir.Node, error) {
	return parseDocs(d, -1, opts...)
}

func parseDocs(d []byte, limit int, opts ...ParseOption) ([]*ir.Node, error) {
	pOpts := &parseOpts{format: format.YAMLFormat}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.format == format.JSONFormat {
		if err := checkJSON(d); err != nil {
			return nil, err
		}
	}
	decOpts := []yaml.DecodeOption{yaml.UseOrderedMap()}
	if pOpts.strict {
		decOpts = append(decOpts, yaml.Strict())
	}
	dec := yaml.NewDecoder(bytes.NewReader(d), decOpts...)
	var res []*ir.Node
	for i := 0; limit < 0 || i < limit; i++ {
		var v any
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: document %d: %w", ErrParse, i, err)
		}
		node, err := FromValue(v)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		res = append(res, node)
	}
	return res, nil
}

func checkJSON(d []byte) error {
	dec := json.NewDecoder(bytes.NewReader(d))
	for {
		var raw json.RawMessage
		err := dec.Decode(&raw)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrParse, err)
		}
	}
}
