package encode

import "github.com/signadot/flowdoc/format"

type EncodeOption func(*EncState)

type EncState struct {
	format format.Format
	indent int
	colors *Colors
}

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// EncodeIndent sets the number of spaces per nesting level, 2 by default.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EncodeColors colours the output. nil turns colours off.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}
