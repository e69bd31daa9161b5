package catalog

import "fmt"

// Kind names one of the catalogs a flow document is checked against.
type Kind int

const (
	// EntityKind holds the top-level constructs of a document: routes,
	// interceptors, error handlers, rest definitions.
	EntityKind Kind = iota
	// PatternKind holds processors and the other models steps are made of.
	PatternKind
	// ComponentKind holds endpoint components, keyed by uri scheme.
	ComponentKind
	LanguageKind
	DataFormatKind
	LoadBalancerKind
)

var kindNames = map[Kind]string{
	EntityKind:       "entity",
	PatternKind:      "pattern",
	ComponentKind:    "component",
	LanguageKind:     "language",
	DataFormatKind:   "dataformat",
	LoadBalancerKind: "loadbalancer",
}

func Kinds() []Kind {
	return []Kind{
		EntityKind,
		PatternKind,
		ComponentKind,
		LanguageKind,
		DataFormatKind,
		LoadBalancerKind,
	}
}

func ParseKind(v string) (Kind, error) {
	for k, name := range kindNames {
		if name == v {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown kind %q", ErrCatalog, v)
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("<kind %d>", int(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	s, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("%w: %d is not a kind", ErrCatalog, int(k))
	}
	return []byte(s), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	pk, err := ParseKind(string(d))
	if err != nil {
		return err
	}
	*k = pk
	return nil
}
