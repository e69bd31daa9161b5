package camel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/flowdoc/catalog"
	"github.com/signadot/flowdoc/encode"
	"github.com/signadot/flowdoc/ir"
	"github.com/signadot/flowdoc/tree"
)

const routeDoc = `
- route:
    from:
      steps:
        - choice:
            otherwise:
              steps:
                - log:
                    message: other
            when:
              - steps:
                  - log:
                      loggingLevel: INFO
                      message: small
                expression:
                  simple:
                    resultType: boolean
                    expression: "${body} < 10"
        - marshal:
            json:
              prettyPrint: true
              library: Jackson
        - to:
            uri: log:bar
            parameters:
              showHeaders: true
              level: DEBUG
        - setBody:
            zeta: 1
            alpha:
              z: [{b: 1, a: 2}]
              a: 2
      parameters:
        period: 1000
        delay: 5
        timerName: t
      uri: timer:foo
    id: r1
`

const routeDocCanonical = `
- route:
    id: r1
    from:
      uri: timer:foo
      parameters:
        timerName: t
        period: 1000
        delay: 5
      steps:
        - choice:
            when:
              - expression:
                  simple:
                    expression: "${body} < 10"
                    resultType: boolean
                steps:
                  - log:
                      message: small
                      loggingLevel: INFO
            otherwise:
              steps:
                - log:
                    message: other
        - marshal:
            json:
              library: Jackson
              prettyPrint: true
        - to:
            uri: log:bar
            parameters:
              level: DEBUG
              showHeaders: true
        - setBody:
            alpha:
              a: 2
              z: [{a: 2, b: 1}]
            zeta: 1
`

func TestCanonicalizeDocument(t *testing.T) {
	s := NewSorter(testCatalog())
	in := mustParse(t, routeDoc)
	want := mustParse(t, routeDocCanonical)
	got := s.CanonicalizeDocument(in)
	if !ir.EqualOrdered(want, got) {
		t.Errorf("got\n%s\nwant\n%s", encode.MustString(got), encode.MustString(want))
	}
	if !ir.Equal(in, got) {
		t.Error("canonicalization changed data")
	}
}

func TestIdempotent(t *testing.T) {
	for name, cat := range map[string]catalog.Cache{
		"catalog":    testCatalog(),
		"no catalog": nil,
	} {
		t.Run(name, func(t *testing.T) {
			s := NewSorter(cat)
			once := s.CanonicalizeDocument(mustParse(t, routeDoc))
			twice := s.CanonicalizeDocument(once)
			if !ir.EqualOrdered(once, twice) {
				t.Errorf("second pass changed\n%s\ninto\n%s", encode.MustString(once), encode.MustString(twice))
			}
		})
	}
}

func TestCanonicalizePure(t *testing.T) {
	s := NewSorter(testCatalog())
	in := mustParse(t, routeDoc)
	before, err := in.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	out := s.CanonicalizeDocument(in)
	after, err := in.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(string(before), string(after)); diff != "" {
		t.Errorf("input modified:\n%s", diff)
	}
	if out.Values[0].Parent != out {
		t.Error("output not linked")
	}
}

func TestSortOrder(t *testing.T) {
	cat := catalog.NewRegistry().MustRegister(&catalog.Entry{
		Name: "p",
		Kind: catalog.PatternKind,
		Properties: map[string]catalog.Property{
			"a": {Index: 1},
			"b": {Index: 0},
		},
	})
	got := NewSorter(cat).Canonicalize("p", mustParse(t, `{a: 1, b: 2, c: 3}`))
	if diff := cmp.Diff([]string{"b", "a", "c"}, got.Keys()); diff != "" {
		t.Error(diff)
	}
}

func TestSortFallback(t *testing.T) {
	cat := catalog.NewRegistry().MustRegister(&catalog.Entry{Name: "bare", Kind: catalog.PatternKind})
	s := NewSorter(cat)
	for _, name := range []string{"unknown", "bare"} {
		got := s.Canonicalize(name, mustParse(t, `{z: 1, a: 2}`))
		if diff := cmp.Diff([]string{"a", "z"}, got.Keys()); diff != "" {
			t.Errorf("%s: %s", name, diff)
		}
	}
}

func TestSortKeys(t *testing.T) {
	tests := []struct {
		keys  []string
		index map[string]int
		want  []string
	}{
		{[]string{"c", "b", "a"}, nil, []string{"a", "b", "c"}},
		{[]string{"c", "b", "a"}, map[string]int{}, []string{"a", "b", "c"}},
		{[]string{"x", "c", "b", "a"}, map[string]int{"c": 0, "a": 5}, []string{"c", "a", "b", "x"}},
		{[]string{"y", "x"}, map[string]int{"x": 1, "y": 1}, []string{"x", "y"}},
		{nil, nil, nil},
	}
	for _, test := range tests {
		if diff := cmp.Diff(test.want, SortKeys(test.keys, test.index)); diff != "" {
			t.Errorf("%v: %s", test.keys, diff)
		}
	}
}

func TestParametersSorted(t *testing.T) {
	s := NewSorter(testCatalog())
	tests := []struct {
		in   string
		want []string
	}{
		{`{uri: "timer:tick", parameters: {delay: 1, period: 2, timerName: t, other: 0}}`, []string{"timerName", "period", "delay", "other"}},
		{`{uri: timer, parameters: {delay: 1, timerName: t}}`, []string{"timerName", "delay"}},
		{`{uri: "kafka:topic", parameters: {z: 1, a: 2}}`, []string{"a", "z"}},
		{`{parameters: {z: 1, a: 2}}`, []string{"a", "z"}},
	}
	for _, test := range tests {
		got := s.Canonicalize("to", mustParse(t, test.in))
		if diff := cmp.Diff(test.want, keysAt(t, got, "$.parameters")); diff != "" {
			t.Errorf("%s: %s", test.in, diff)
		}
	}
}

func TestParametersFromAncestor(t *testing.T) {
	s := NewSorter(testCatalog())
	r := NewResolver(testCatalog())
	doc := mustParse(t, `{uri: "timer:x", steps: [{to: {parameters: {delay: 1, timerName: t}}}]}`)
	root := r.NewTree("from", doc)
	to := root.Children()[0]

	got := tree.Accept[NodeType, *catalog.Entry, *ir.Node](to, s)
	if diff := cmp.Diff([]string{"timerName", "delay"}, keysAt(t, got, "$.parameters")); diff != "" {
		t.Error(diff)
	}
	got = s.Canonicalize("to", to.Data())
	if diff := cmp.Diff([]string{"delay", "timerName"}, keysAt(t, got, "$.parameters")); diff != "" {
		t.Error(diff)
	}
	got = s.CanonicalizeWithURI("to", to.Data(), "timer:y")
	if diff := cmp.Diff([]string{"timerName", "delay"}, keysAt(t, got, "$.parameters")); diff != "" {
		t.Error(diff)
	}

	// nested steps see the uri of the enclosing from
	got = s.Canonicalize("from", doc)
	if diff := cmp.Diff([]string{"timerName", "delay"}, keysAt(t, got, "$.steps[0].to.parameters")); diff != "" {
		t.Error(diff)
	}
}

func TestParameterValuesKept(t *testing.T) {
	s := NewSorter(testCatalog())
	got := s.Canonicalize("to", mustParse(t, `{uri: "x:y", parameters: {b: {z: 1, a: 2}, a: 1}}`))
	if diff := cmp.Diff([]string{"z", "a"}, keysAt(t, got, "$.parameters.b")); diff != "" {
		t.Error(diff)
	}
}

func TestEmbeddedWrapper(t *testing.T) {
	s := NewSorter(testCatalog())
	got := s.Canonicalize("filter", mustParse(t, `
steps: []
expression:
  zz: 1
  simple: {trim: true, expression: x}
  aa: 2
id: f
`))
	if diff := cmp.Diff([]string{"id", "expression", "steps"}, got.Keys()); diff != "" {
		t.Error(diff)
	}
	// the wrapper keeps its own key order
	if diff := cmp.Diff([]string{"zz", "simple", "aa"}, keysAt(t, got, "$.expression")); diff != "" {
		t.Error(diff)
	}
	if diff := cmp.Diff([]string{"expression", "trim"}, keysAt(t, got, "$.expression.simple")); diff != "" {
		t.Error(diff)
	}
}

func TestTwoEmbeddedKeysIsGeneric(t *testing.T) {
	s := NewSorter(testCatalog())
	got := s.Canonicalize("filter", mustParse(t, `
expression:
  zz: 1
  simple: {trim: true, expression: x}
  json: {prettyPrint: true, library: l}
`))
	if diff := cmp.Diff([]string{"json", "simple", "zz"}, keysAt(t, got, "$.expression")); diff != "" {
		t.Error(diff)
	}
	// generic objects are sorted alphabetically all the way down
	if diff := cmp.Diff([]string{"library", "prettyPrint"}, keysAt(t, got, "$.expression.json")); diff != "" {
		t.Error(diff)
	}
}

func TestMultiKeyStepWrapper(t *testing.T) {
	// only the first key of a step wrapper is treated as the step
	s := NewSorter(testCatalog())
	got := s.Canonicalize("from", mustParse(t, `
steps:
  - log: {message: hi, id: l}
    extra: {z: 1, a: 2}
  - {}
  - plain
`))
	want := mustParse(t, `
steps:
  - log: {id: l, message: hi}
    extra: {z: 1, a: 2}
  - {}
  - plain
`)
	if !ir.EqualOrdered(want, got) {
		t.Errorf("got\n%s", encode.MustString(got))
	}
}

func TestCanonicalizeScalars(t *testing.T) {
	s := NewSorter(testCatalog())
	for _, in := range []*ir.Node{ir.FromString("x"), ir.Null(), ir.FromInt(1), nil} {
		got := s.Canonicalize("log", in)
		if in == nil {
			if got.Type != ir.NullType {
				t.Errorf("nil gave %s", got.Type)
			}
			continue
		}
		if !ir.EqualOrdered(in, got) || got == in {
			t.Errorf("%v not copied", in.Scalar())
		}
	}
}

func TestComponents(t *testing.T) {
	got := Components(mustParse(t, routeDoc))
	if diff := cmp.Diff([]string{"log", "timer"}, got); diff != "" {
		t.Error(diff)
	}
	if Components(nil) != nil {
		t.Error("nil doc")
	}
}

func TestScheme(t *testing.T) {
	for uri, want := range map[string]string{
		"timer:foo":        "timer",
		"timer":            "timer",
		"kamelet:source?a": "kamelet",
		"":                 "",
	} {
		if got := Scheme(uri); got != want {
			t.Errorf("%q: got %q", uri, got)
		}
	}
}

func TestEmbeddedConstructSortedAlphabetically(t *testing.T) {
	// only entity and pattern entries order keys; a language entry does not
	cat := catalog.NewRegistry().MustRegister(
		&catalog.Entry{Name: "filter", Kind: catalog.PatternKind, Properties: props("expression", "steps")},
		&catalog.Entry{Name: "simple", Kind: catalog.LanguageKind, Properties: props("trim", "expression")},
		&catalog.Entry{Name: "json", Kind: catalog.DataFormatKind, Properties: props("prettyPrint", "library")},
	)
	s := NewSorter(cat)
	got := s.Canonicalize("filter", mustParse(t, `{simple: {expression: x, trim: true}, steps: []}`))
	if diff := cmp.Diff([]string{"expression", "trim"}, keysAt(t, got, "$.simple")); diff != "" {
		t.Error(diff)
	}
	got = s.Canonicalize("marshal", mustParse(t, `{json: {prettyPrint: true, library: l}}`))
	if diff := cmp.Diff([]string{"library", "prettyPrint"}, keysAt(t, got, "$.json")); diff != "" {
		t.Error(diff)
	}
}
