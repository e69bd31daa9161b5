package catalog

import (
	"fmt"
	"slices"
	"sync"
)

// Cache answers catalog lookups from already loaded data. A miss is
// reported as (nil, false), never as an error, and a lookup never
// triggers loading.
type Cache interface {
	GetEntity(kind Kind, name string) (*Entry, bool)
}

// Registry is an in-memory Cache.
type Registry struct {
	mu      sync.RWMutex
	entries map[Kind]map[string]*Entry
}

func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[Kind]map[string]*Entry),
	}
}

// Register adds e under its Kind and Name.
func (r *Registry) Register(e *Entry) error {
	if e == nil {
		return fmt.Errorf("%w: cannot register nil entry", ErrCatalog)
	}
	if e.Name == "" {
		return fmt.Errorf("%w: %s entry must have a name", ErrCatalog, e.Kind)
	}
	if _, ok := kindNames[e.Kind]; !ok {
		return fmt.Errorf("%w: entry %q has unknown kind %d", ErrCatalog, e.Name, int(e.Kind))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	byName := r.entries[e.Kind]
	if byName == nil {
		byName = make(map[string]*Entry)
		r.entries[e.Kind] = byName
	}
	if _, exists := byName[e.Name]; exists {
		return fmt.Errorf("%w: %s %q already registered", ErrCatalog, e.Kind, e.Name)
	}
	byName[e.Name] = e
	return nil
}

// MustRegister is Register for statically known entries.
func (r *Registry) MustRegister(entries ...*Entry) *Registry {
	for _, e := range entries {
		if err := r.Register(e); err != nil {
			panic(err)
		}
	}
	return r
}

func (r *Registry) GetEntity(kind Kind, name string) (*Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[kind][name]
	return e, ok
}

// Names returns the sorted names registered under kind.
func (r *Registry) Names(kind Kind) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]string, 0, len(r.entries[kind]))
	for name := range r.entries[kind] {
		res = append(res, name)
	}
	slices.Sort(res)
	return res
}

// Len returns the number of entries of all kinds.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, byName := range r.entries {
		n += len(byName)
	}
	return n
}

// Empty is a Cache that knows nothing.
var Empty Cache = emptyCache{}

type emptyCache struct{}

func (emptyCache) GetEntity(Kind, string) (*Entry, bool) { return nil, false }
