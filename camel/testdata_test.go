package camel

import (
	"testing"

	"github.com/signadot/flowdoc/catalog"
	"github.com/signadot/flowdoc/ir"
	"github.com/signadot/flowdoc/parse"
)

func props(names ...string) map[string]catalog.Property {
	res := make(map[string]catalog.Property, len(names))
	for i, name := range names {
		res[name] = catalog.Property{Index: i}
	}
	return res
}

func testCatalog() *catalog.Registry {
	return catalog.NewRegistry().MustRegister(
		&catalog.Entry{Name: "route", Kind: catalog.EntityKind, Properties: props("id", "from")},
		&catalog.Entry{Name: "from", Kind: catalog.PatternKind, Properties: props("id", "uri", "parameters", "steps")},
		&catalog.Entry{Name: "to", Kind: catalog.PatternKind, Properties: props("id", "uri", "parameters")},
		&catalog.Entry{Name: "log", Kind: catalog.PatternKind, Properties: props("id", "message", "loggingLevel")},
		&catalog.Entry{Name: "choice", Kind: catalog.PatternKind, Properties: props("when", "otherwise")},
		&catalog.Entry{Name: "when", Kind: catalog.PatternKind, Properties: props("expression", "steps")},
		&catalog.Entry{Name: "otherwise", Kind: catalog.PatternKind, Properties: props("steps")},
		&catalog.Entry{Name: "filter", Kind: catalog.PatternKind, Properties: props("id", "expression", "steps")},
		&catalog.Entry{Name: "marshal", Kind: catalog.PatternKind, Properties: props("id", "json")},
		&catalog.Entry{Name: "loadBalance", Kind: catalog.PatternKind, Properties: props("id", "roundRobin", "steps")},
		&catalog.Entry{Name: "simple", Kind: catalog.LanguageKind, Properties: props("expression", "resultType", "trim")},
		&catalog.Entry{Name: "json", Kind: catalog.DataFormatKind, Properties: props("library", "prettyPrint")},
		&catalog.Entry{Name: "roundRobin", Kind: catalog.LoadBalancerKind},
		&catalog.Entry{Name: "timer", Kind: catalog.ComponentKind, Properties: props("timerName", "period", "delay")},
	)
}

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	node, err := parse.Parse([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return node
}

func keysAt(t *testing.T, doc *ir.Node, path string) []string {
	t.Helper()
	node, err := doc.GetPath(path)
	if err != nil {
		t.Fatal(err)
	}
	if node == nil {
		t.Fatalf("nothing at %s", path)
	}
	return node.Keys()
}
