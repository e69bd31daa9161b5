package encode

import (
	"strings"

	"github.com/signadot/flowdoc/ir"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml/lexer"
	"github.com/goccy/go-yaml/printer"
)

// Colors holds the colours used for each kind of token.
type Colors struct {
	Field  *color.Color
	String *color.Color
	Number *color.Color
	Bool   *color.Color
	Null   *color.Color
}

func NewColors() *Colors {
	c := &Colors{
		Field:  color.RGB(128, 168, 196),
		String: color.RGB(8, 196, 16),
		Number: color.RGB(128, 216, 236),
		Bool:   color.New(color.FgCyan),
		Null:   color.RGB(168, 0, 196),
	}
	// the caller decides whether the output is a terminal
	for _, cc := range []*color.Color{c.Field, c.String, c.Number, c.Bool, c.Null} {
		cc.EnableColor()
	}
	return c
}

// Type returns the colour of values of type t.
func (c *Colors) Type(t ir.Type) *color.Color {
	switch t {
	case ir.StringType:
		return c.String
	case ir.NumberType:
		return c.Number
	case ir.BoolType:
		return c.Bool
	case ir.NullType:
		return c.Null
	default:
		return c.Field
	}
}

func (c *Colors) colorize(d []byte) []byte {
	p := &printer.Printer{
		MapKey: property(c.Field),
		String: property(c.String),
		Number: property(c.Number),
		Bool:   property(c.Bool),
	}
	res := p.PrintTokens(lexer.Tokenize(string(d)))
	if !strings.HasSuffix(res, "\n") {
		res += "\n"
	}
	return []byte(res)
}

func property(c *color.Color) printer.PrintFunc {
	prefix, suffix, _ := strings.Cut(c.Sprint("\x00"), "\x00")
	return func() *printer.Property {
		return &printer.Property{Prefix: prefix, Suffix: suffix}
	}
}
