package flowdoc

import (
	"testing"

	"github.com/signadot/flowdoc/camel"
	"github.com/signadot/flowdoc/catalog"
	"github.com/signadot/flowdoc/encode"
	"github.com/signadot/flowdoc/ir"
	"github.com/signadot/flowdoc/parse"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func props(names ...string) map[string]catalog.Property {
	res := map[string]catalog.Property{}
	for i, name := range names {
		res[name] = catalog.Property{Index: i}
	}
	return res
}

func testTool() *Tool {
	return NewTool(catalog.NewRegistry().MustRegister(
		&catalog.Entry{Name: "route", Kind: catalog.EntityKind, Properties: props("id", "from")},
		&catalog.Entry{Name: "from", Kind: catalog.PatternKind, Properties: props("id", "uri", "parameters", "steps")},
		&catalog.Entry{Name: "to", Kind: catalog.PatternKind, Properties: props("id", "uri", "parameters")},
		&catalog.Entry{Name: "log", Kind: catalog.PatternKind, Properties: props("id", "message")},
		&catalog.Entry{Name: "timer", Kind: catalog.ComponentKind, Properties: props("timerName", "period")},
	))
}

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	node, err := parse.Parse([]byte(s))
	require.NoError(t, err)
	return node
}

const doc = `
- route:
    from:
      steps:
        - log:
            message: hi
            id: l1
        - to:
            parameters: {period: 1, timerName: t}
            uri: log:out
      uri: timer:tick
    id: r1
- rest:
    path: /x
    get: []
`

const canonical = `
- route:
    id: r1
    from:
      uri: timer:tick
      steps:
        - log:
            id: l1
            message: hi
        - to:
            uri: log:out
            parameters: {period: 1, timerName: t}
- rest:
    get: []
    path: /x
`

func TestSort(t *testing.T) {
	tool := testTool()
	in := mustParse(t, doc)
	require.False(t, tool.IsCanonical(in))

	out, err := tool.Sort(in)
	require.NoError(t, err)
	want := mustParse(t, canonical)
	assert.True(t, ir.EqualOrdered(want, out), "got\n%s", encode.MustString(out))
	assert.True(t, tool.IsCanonical(out))
}

func TestNilCache(t *testing.T) {
	tool := NewTool(nil)
	out, err := tool.Sort(mustParse(t, `{route: {id: x, from: {uri: "a:b"}}}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"from", "id"}, ir.Get(out, "route").Keys())
}

func TestTrees(t *testing.T) {
	tool := testTool()
	trees := tool.Trees(mustParse(t, doc))
	require.Len(t, trees, 2)
	assert.Equal(t, "route", trees[0].Path())
	assert.Equal(t, "rest", trees[1].Path())

	var paths []string
	trees[0].Walk(func(n *camel.Node) bool {
		paths = append(paths, n.Path())
		return true
	})
	assert.Equal(t, []string{"route", "route.from", "route.from.steps[0].log", "route.from.steps[1].to"}, paths)

	trees = tool.Trees(mustParse(t, `{route: {}, beans: [], x: 1}`))
	require.Len(t, trees, 3)
	assert.False(t, trees[2].HasChildren())

	assert.Empty(t, tool.Trees(mustParse(t, `hello`)))
}

func TestLossless(t *testing.T) {
	a := mustParse(t, `{a: 1, b: [1, 2], c: {d: x}}`)
	b := mustParse(t, `{c: {d: x}, b: [1, 2], a: 1}`)
	require.NoError(t, Lossless(a, b))

	c := mustParse(t, `{c: {d: y}, b: [1, 2], a: 1}`)
	err := Lossless(a, c)
	require.ErrorIs(t, err, ErrLossy)
	assert.Contains(t, err.Error(), `"d":"y"`)

	d := mustParse(t, `{b: [2, 1], a: 1, c: {d: x}}`)
	require.ErrorIs(t, Lossless(a, d), ErrLossy)
}

func TestCanonicalizeAt(t *testing.T) {
	tool := testTool()
	in := mustParse(t, doc)

	out, err := tool.CanonicalizeAt(in, "$[0].route.from.steps[1].to", "")
	require.NoError(t, err)
	to, err := out.GetPath("$[0].route.from.steps[1].to")
	require.NoError(t, err)
	assert.Equal(t, []string{"uri", "parameters"}, to.Keys())
	// parameters ordered by the component of to's own uri, unknown here
	assert.Equal(t, []string{"period", "timerName"}, ir.Get(to, "parameters").Keys())

	// everything else untouched
	route, err := out.GetPath("$[0].route")
	require.NoError(t, err)
	assert.Equal(t, []string{"from", "id"}, route.Keys())
	require.NoError(t, Lossless(in, out))

	// the input is not modified
	to, err = in.GetPath("$[0].route.from.steps[1].to")
	require.NoError(t, err)
	assert.Equal(t, []string{"parameters", "uri"}, to.Keys())
}

func TestCanonicalizeAtEnclosingURI(t *testing.T) {
	tool := testTool()
	in := mustParse(t, `{from: {uri: "timer:x", steps: [{log: {parameters: {period: 1, timerName: t}}}]}}`)
	out, err := tool.CanonicalizeAt(in, "$.from.steps[0].log", "")
	require.NoError(t, err)
	params, err := out.GetPath("$.from.steps[0].log.parameters")
	require.NoError(t, err)
	assert.Equal(t, []string{"timerName", "period"}, params.Keys())
}

func TestCanonicalizeAtErrors(t *testing.T) {
	tool := testTool()
	in := mustParse(t, doc)
	_, err := tool.CanonicalizeAt(in, "$[7]", "")
	require.ErrorIs(t, err, ErrPath)
	_, err = tool.CanonicalizeAt(in, "nope", "")
	require.ErrorIs(t, err, ErrPath)
	_, err = tool.CanonicalizeAt(in, "$[0]", "")
	require.ErrorIs(t, err, ErrPath)

	out, err := tool.CanonicalizeAt(in, "$", "")
	require.ErrorIs(t, err, ErrPath)
	assert.Nil(t, out)

	out, err = tool.CanonicalizeAt(mustParse(t, `{message: m, id: x}`), "$", "log")
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "message"}, out.Keys())
}

func TestEdit(t *testing.T) {
	tool := testTool()
	in := mustParse(t, doc)
	out, err := tool.Edit(in, []byte(`[{"op": "replace", "path": "/0/route/from/steps/0/log/message", "value": "bye"}]`))
	require.NoError(t, err)
	msg, err := out.GetPath("$[0].route.from.steps[0].log.message")
	require.NoError(t, err)
	assert.Equal(t, "bye", msg.String)
	assert.True(t, tool.IsCanonical(out))

	_, err = tool.Edit(in, []byte(`{`))
	require.ErrorIs(t, err, ErrPatch)
	_, err = tool.Edit(in, []byte(`[{"op": "remove", "path": "/0/nothing/here"}]`))
	require.ErrorIs(t, err, ErrPatch)
}
