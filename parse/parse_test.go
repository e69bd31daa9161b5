package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/flowdoc/ir"
)

func TestParseKeepsKeyOrder(t *testing.T) {
	in := `
- route:
    id: r1
    from:
      uri: timer:foo
      parameters:
        period: 1000
        delay: -1
      steps:
        - to:
            uri: log:bar
        - setBody:
            simple: hello
`
	doc, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	from, err := doc.GetPath("$[0].route.from")
	if err != nil || from == nil {
		t.Fatalf("no from: %v", err)
	}
	if diff := cmp.Diff([]string{"uri", "parameters", "steps"}, from.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	params := ir.Get(from, "parameters")
	if diff := cmp.Diff([]string{"period", "delay"}, params.Keys()); diff != "" {
		t.Errorf("parameter keys (-want +got):\n%s", diff)
	}
	if got := ir.Get(params, "delay").Scalar(); got != int64(-1) {
		t.Errorf("delay = %v (%T)", got, got)
	}
	if got := ir.Get(params, "period").Scalar(); got != int64(1000) {
		t.Errorf("period = %v (%T)", got, got)
	}
}

func TestParseScalars(t *testing.T) {
	tests := []struct {
		in   string
		want *ir.Node
	}{
		{"null", ir.Null()},
		{"true", ir.FromBool(true)},
		{"22", ir.FromInt(22)},
		{"1.5", ir.FromFloat(1.5)},
		{`"hello"`, ir.FromString("hello")},
		{"hello", ir.FromString("hello")},
	}
	for _, tt := range tests {
		got, err := Parse([]byte(tt.in))
		if err != nil {
			t.Errorf("%s: %v", tt.in, err)
			continue
		}
		if !ir.EqualOrdered(got, tt.want) {
			t.Errorf("%s: got %v", tt.in, got.Scalar())
		}
	}
}

func TestParseJSON(t *testing.T) {
	doc, err := Parse([]byte(`{"b": 1, "a": [true, null]}`), ParseJSON())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"b", "a"}, doc.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if _, err := Parse([]byte(`{"b": 1,}`), ParseJSON()); !errors.Is(err, ErrParse) {
		t.Errorf("expected ErrParse, got %v", err)
	}
}

func TestParseMulti(t *testing.T) {
	docs, err := ParseMulti([]byte("a: 1\n---\nb: 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 {
		t.Fatalf("got %d docs", len(docs))
	}
	if ir.Get(docs[1], "b") == nil {
		t.Error("second document lost")
	}
}

func TestParseEmpty(t *testing.T) {
	doc, err := Parse(nil)
	if err != nil || doc != nil {
		t.Errorf("Parse(nil) = %v, %v", doc, err)
	}
}
