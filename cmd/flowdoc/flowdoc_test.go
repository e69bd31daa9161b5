package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/signadot/flowdoc"
	"github.com/signadot/flowdoc/catalog"
	"github.com/signadot/flowdoc/parse"

	"github.com/expr-lang/expr"
	"github.com/google/go-cmp/cmp"
)

func TestLineDiff(t *testing.T) {
	from := "a\nb\nc\n"
	to := "a\nc\nb\n"
	got := lineDiff(from, to)
	var ins, del int
	for _, line := range got {
		switch line[0] {
		case '+':
			ins++
		case '-':
			del++
		}
	}
	if ins != 1 || del != 1 || len(got) != 4 {
		t.Errorf("got %q", got)
	}
	if diff := cmp.Diff([]string{" a", " b", " c"}, lineDiff(from, from)); diff != "" {
		t.Error(diff)
	}
}

func TestWhere(t *testing.T) {
	reg := catalog.NewRegistry().MustRegister(
		&catalog.Entry{Name: "from", Kind: catalog.PatternKind, Title: "From"},
		&catalog.Entry{Name: "simple", Kind: catalog.LanguageKind},
	)
	doc, err := parse.Parse([]byte(`
- route:
    from:
      uri: timer:x
      steps:
        - filter:
            expression:
              simple: {expression: x}
`))
	if err != nil {
		t.Fatal(err)
	}
	prog, err := expr.Compile(`type == "language" || hasEntry`, expr.Env(nodeEnv(nil)), expr.AsBool())
	if err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	for _, root := range flowdoc.NewTool(reg).Trees(doc) {
		if err := printTree(buf, root, prog, nil); err != nil {
			t.Fatal(err)
		}
	}
	want := []string{
		"  from pattern route.from (From)",
		"      simple language route.from.steps[0].filter.expression.simple",
	}
	got := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	if _, err := expr.Compile(`depth + "x"`, expr.Env(nodeEnv(nil)), expr.AsBool()); err == nil {
		t.Error("expected a type error")
	}
}
