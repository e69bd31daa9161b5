package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Tree    bool
	Sort    bool
	Catalog bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tree = boolEnv("FLOWDOC_DEBUG_TREE")
	d.Sort = boolEnv("FLOWDOC_DEBUG_SORT")
	d.Catalog = boolEnv("FLOWDOC_DEBUG_CATALOG")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Tree reports whether lazy child construction is traced.
func Tree() bool {
	return d.Tree
}

// Sort reports whether canonicalization decisions are traced.
func Sort() bool {
	return d.Sort
}

// Catalog reports whether catalog loading is traced.
func Catalog() bool {
	return d.Catalog
}
