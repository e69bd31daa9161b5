package catalog

// Entry describes one named construct, step, component, language, data
// format or load balancer.
type Entry struct {
	Name        string `json:"name"`
	Kind        Kind   `json:"-"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Label       string `json:"label,omitempty"`

	// Properties is nil when the catalog carries no property metadata
	// for the entry.
	Properties map[string]Property `json:"properties,omitempty"`
}

type Property struct {
	Index       int    `json:"index"`
	Kind        string `json:"kind,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Type        string `json:"type,omitempty"`
	Required    bool   `json:"required,omitempty"`
	Description string `json:"description,omitempty"`
	Default     any    `json:"defaultValue,omitempty"`
}

// PropertyIndex maps property names to their catalog index, or returns
// nil when the entry has no properties map.
func (e *Entry) PropertyIndex() map[string]int {
	if e == nil || e.Properties == nil {
		return nil
	}
	res := make(map[string]int, len(e.Properties))
	for name, p := range e.Properties {
		res[name] = p.Index
	}
	return res
}
