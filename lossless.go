package flowdoc

import (
	"fmt"

	"github.com/signadot/flowdoc/ir"
	"github.com/signadot/flowdoc/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

// Lossless returns nil if before and after hold the same data, ignoring
// the order of object keys. Otherwise the error wraps ErrLossy and
// carries the merge patch taking before to after.
func Lossless(before, after *ir.Node) error {
	a, err := before.MarshalJSON()
	if err != nil {
		return err
	}
	b, err := after.MarshalJSON()
	if err != nil {
		return err
	}
	if jsonpatch.Equal(a, b) {
		return nil
	}
	patch, err := jsonpatch.CreateMergePatch(a, b)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLossy, err)
	}
	return fmt.Errorf("%w: merge patch %s", ErrLossy, patch)
}

// Edit applies an RFC 6902 JSON patch to doc and returns the canonical
// result. Keys the catalog does not order come out alphabetically.
func (t *Tool) Edit(doc *ir.Node, patch []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	d, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	res, err := parse.Parse(out, parse.ParseJSON())
	if err != nil {
		return nil, err
	}
	return t.Canonicalize(res), nil
}
