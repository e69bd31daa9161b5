package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// MarshalJSON encodes the node as plain JSON, keeping object keys in
// document order.
func (y *Node) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := y.writeJSON(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (y *Node) writeJSON(buf *bytes.Buffer) error {
	switch y.Type {
	case NullType:
		buf.WriteString("null")
	case BoolType:
		buf.WriteString(strconv.FormatBool(y.Bool))
	case NumberType:
		switch {
		case y.Int64 != nil:
			buf.WriteString(strconv.FormatInt(*y.Int64, 10))
		case y.Float64 != nil:
			d, err := json.Marshal(*y.Float64)
			if err != nil {
				return err
			}
			buf.Write(d)
		default:
			if !json.Valid([]byte(y.Number)) {
				return fmt.Errorf("invalid number %q at %s", y.Number, y.Path())
			}
			buf.WriteString(y.Number)
		}
	case StringType:
		d, err := json.Marshal(y.String)
		if err != nil {
			return err
		}
		buf.Write(d)
	case ArrayType:
		buf.WriteByte('[')
		for i, v := range y.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := v.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case ObjectType:
		buf.WriteByte('{')
		for i, f := range y.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			d, err := json.Marshal(f.String)
			if err != nil {
				return err
			}
			buf.Write(d)
			buf.WriteByte(':')
			if err := y.Values[i].writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("%w: cannot encode %s as json", errInternal, y.Type)
	}
	return nil
}
