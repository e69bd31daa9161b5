package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path returns the position of y in its document, "$" for the root,
// "$.a.b[0]" below it.
func (y *Node) Path() string {
	if y.Parent == nil {
		return "$"
	}
	switch y.Parent.Type {
	case ObjectType:
		return FieldPath(y.Parent.Path(), y.ParentField)
	case ArrayType:
		return IndexPath(y.Parent.Path(), y.ParentIndex)
	default:
		panic("parent but not in container")
	}
}

// FieldPath extends the path p by the object field f.
func FieldPath(p, f string) string {
	return p + "." + pathField(f)
}

// IndexPath extends the path p by the array index i.
func IndexPath(p string, i int) string {
	return p + "[" + strconv.Itoa(i) + "]"
}

func pathField(f string) string {
	if f != "" && strings.IndexAny(f, "'.$[]") == -1 {
		return f
	}
	return "'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}

// Path is a parsed document path, one segment per link.
type Path struct {
	Index *int
	Field *string
	Next  *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Field != nil:
			buf.WriteString("." + pathField(*x.Field))
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("path %q should start with '$'", p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	if err := parseFrag(p[1:], root); err != nil {
		return nil, fmt.Errorf("path %q: %w", p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	var rest string
	switch frag[0] {
	case '.':
		field, r, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		rest = r
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		u64, err := strconv.ParseUint(frag[1:i+1], 10, 32)
		if err != nil {
			return err
		}
		index := int(u64)
		parent.Index = &index
		rest = frag[i+2:]
	default:
		return fmt.Errorf("expected '.' or '['")
	}
	if len(rest) == 0 {
		return nil
	}
	next := &Path{}
	if err := parseFrag(rest, next); err != nil {
		return err
	}
	parent.Next = next
	return nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch c {
		case '\\':
			escaped = true
		case '\'':
			if !escaped {
				return string(res), frag[i+1:], nil
			}
			fallthrough
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

// GetPath returns the node at yPath, or nil if no such node exists.
// The result shares structure with y.
func (y *Node) GetPath(yPath string) (*Node, error) {
	yp, err := ParsePath(yPath)
	if err != nil {
		return nil, err
	}
	res := y
	for ; yp != nil; yp = yp.Next {
		switch {
		case yp.Index != nil:
			if res.Type != ArrayType {
				return nil, fmt.Errorf("expected array at %s, got %s", res.Path(), res.Type)
			}
			index := *yp.Index
			if index >= len(res.Values) {
				return nil, nil
			}
			res = res.Values[index]
		case yp.Field != nil:
			if res.Type != ObjectType {
				return nil, fmt.Errorf("expected object at %s, got %s", res.Path(), res.Type)
			}
			res = Get(res, *yp.Field)
			if res == nil {
				return nil, nil
			}
		}
	}
	return res, nil
}
