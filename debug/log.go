package debug

import (
	"fmt"
	"os"

	"github.com/signadot/flowdoc/ir"
)

// Logf writes to stderr. *ir.Node arguments are rendered as compact JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		x, ok := args[i].(*ir.Node)
		if !ok || x == nil {
			continue
		}
		d, err := x.MarshalJSON()
		if err != nil {
			args[i] = fmt.Sprintf("[raw *ir.Node] %v", x.Scalar())
			continue
		}
		args[i] = string(d)
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
