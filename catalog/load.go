package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/signadot/flowdoc/debug"

	"github.com/goccy/go-yaml"
)

// header is the descriptive block of a catalog file entry. Which key
// carries it depends on the catalog: "component", "model", "language",
// "dataformat" or "entity".
type header struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Label       string `json:"label"`
}

type fileEntry struct {
	Component  *header `json:"component"`
	Model      *header `json:"model"`
	Language   *header `json:"language"`
	DataFormat *header `json:"dataformat"`
	Entity     *header `json:"entity"`

	Properties map[string]Property `json:"properties"`
}

func (fe *fileEntry) header() *header {
	for _, h := range []*header{fe.Component, fe.Model, fe.Language, fe.DataFormat, fe.Entity} {
		if h != nil {
			return h
		}
	}
	return &header{}
}

// Load decodes a catalog file, a YAML or JSON object mapping entry names
// to entries, and registers every entry under kind.
func Load(r *Registry, kind Kind, d []byte) error {
	var entries map[string]*fileEntry
	if err := yaml.Unmarshal(d, &entries); err != nil {
		return fmt.Errorf("%w: decoding %s catalog: %w", ErrCatalog, kind, err)
	}
	for _, name := range slices.Sorted(maps.Keys(entries)) {
		fe := entries[name]
		if fe == nil {
			fe = &fileEntry{}
		}
		h := fe.header()
		e := &Entry{
			Name:        name,
			Kind:        kind,
			Title:       h.Title,
			Description: h.Description,
			Label:       h.Label,
			Properties:  fe.Properties,
		}
		if err := r.Register(e); err != nil {
			return err
		}
	}
	if debug.Catalog() {
		debug.Logf("loaded %d %s entries\n", len(entries), kind)
	}
	return nil
}

func LoadFile(r *Registry, kind Kind, path string) error {
	d, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCatalog, err)
	}
	if err := Load(r, kind, d); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

var fileBases = map[Kind]string{
	EntityKind:       "entities",
	PatternKind:      "patterns",
	ComponentKind:    "components",
	LanguageKind:     "languages",
	DataFormatKind:   "dataformats",
	LoadBalancerKind: "loadbalancers",
}

var fileExts = []string{".json", ".yaml", ".yml"}

// LoadDir reads the catalog files in dir, one per kind, named after the
// kind ("patterns.json", "components.yaml", ...). Missing files are
// skipped.
func LoadDir(dir string) (*Registry, error) {
	r := NewRegistry()
	for _, kind := range Kinds() {
		path, err := findFile(dir, fileBases[kind])
		if err != nil {
			return nil, err
		}
		if path == "" {
			if debug.Catalog() {
				debug.Logf("no %s catalog in %s\n", kind, dir)
			}
			continue
		}
		if err := LoadFile(r, kind, path); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func findFile(dir, base string) (string, error) {
	for _, ext := range fileExts {
		path := filepath.Join(dir, base+ext)
		_, err := os.Stat(path)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %w", ErrCatalog, err)
		}
	}
	return "", nil
}
