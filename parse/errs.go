package parse

import (
	"fmt"

	"github.com/signadot/flowdoc/ir"
)

var (
	ErrParse       = ir.ErrParse
	ErrUnsupported = fmt.Errorf("%w: unsupported value", ErrParse)
)
