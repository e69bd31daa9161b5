package parse

import (
	"github.com/signadot/flowdoc/format"
)

type parseOpts struct {
	format format.Format
	strict bool
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// Strict rejects duplicate keys and other input goccy/go-yaml would
// otherwise accept.
func Strict(v bool) ParseOption {
	return func(o *parseOpts) { o.strict = v }
}
