package parse

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/signadot/flowdoc/ir"

	"github.com/goccy/go-yaml"
)

// FromValue converts a decoded YAML value into an ir.Node. yaml.MapSlice
// keeps key order; plain maps are taken in sorted key order.
func FromValue(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case string:
		return ir.FromString(x), nil
	case bool:
		return ir.FromBool(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return &ir.Node{Type: ir.NumberType, Number: strconv.FormatUint(x, 10)}, nil
		}
		return ir.FromInt(int64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case time.Time:
		return ir.FromString(x.Format(time.RFC3339Nano)), nil
	case []byte:
		return ir.FromString(string(x)), nil
	case yaml.MapSlice:
		kvs := make([]ir.KeyVal, 0, len(x))
		for _, item := range x {
			val, err := FromValue(item.Value)
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, ir.KeyVal{Key: keyString(item.Key), Val: val})
		}
		return ir.FromKeyVals(kvs), nil
	case map[string]any:
		m := make(map[string]*ir.Node, len(x))
		for k, item := range x {
			val, err := FromValue(item)
			if err != nil {
				return nil, err
			}
			m[k] = val
		}
		return ir.FromMap(m), nil
	case []any:
		vals := make([]*ir.Node, len(x))
		for i, item := range x {
			val, err := FromValue(item)
			if err != nil {
				return nil, err
			}
			vals[i] = val
		}
		return ir.FromSlice(vals), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
	}
}

func keyString(k any) string {
	switch x := k.(type) {
	case string:
		return x
	case nil:
		return "null"
	default:
		return fmt.Sprint(x)
	}
}
