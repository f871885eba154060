package style

import (
	"fmt"
	"strings"
	"sync"
)

// NamedStyle is a reusable style definition with optional inheritance.
type NamedStyle struct {
	Name    string
	Extends string
	Attrs   map[string]any
}

// CycleError reports a circular extends chain. Path lists the names visited
// in order, ending with the name that closed the cycle.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("circular style inheritance: %s", strings.Join(e.Path, " -> "))
}

// UndefinedStyleError reports a reference to a style name that does not
// exist in the registry. ReferencedBy is empty for top-level lookups and
// names the extending style for broken extends chains.
type UndefinedStyleError struct {
	Name         string
	ReferencedBy string
}

func (e *UndefinedStyleError) Error() string {
	if e.ReferencedBy != "" {
		return fmt.Sprintf("style %q extends undefined style %q", e.ReferencedBy, e.Name)
	}
	return fmt.Sprintf("undefined style %q", e.Name)
}

// Registry holds named styles. Reads are safe for concurrent use; writes
// (Define, LoadFile) take the write lock. During a build pass the registry
// is treated as read-only.
type Registry struct {
	mu     sync.RWMutex
	styles map[string]NamedStyle
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{styles: make(map[string]NamedStyle)}
}

// Define adds or replaces a named style. The attribute map is validated
// eagerly so that theme typos fail at definition time, not mid-build.
func (r *Registry) Define(n NamedStyle) error {
	if n.Name == "" {
		return fmt.Errorf("named style must have a name")
	}
	if _, err := FromAttrs(n.Attrs); err != nil {
		return fmt.Errorf("style %q: %w", n.Name, err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.styles[n.Name] = n
	return nil
}

// Lookup returns the raw named style definition.
func (r *Registry) Lookup(name string) (NamedStyle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.styles[name]
	return n, ok
}

// Names returns the defined style names, unordered.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.styles))
	for name := range r.styles {
		out = append(out, name)
	}
	return out
}

// Resolve computes the concrete Style for a named style, walking its extends
// chain ancestor-first and finally merging the inline overrides so they
// always win. Cycles fail with *CycleError; a missing name or extends target
// fails with *UndefinedStyleError.
//
// Resolution results are memoized per call, which makes repeated references
// within one build pass cheap without caching across registry mutations.
func (r *Registry) Resolve(name string, overrides map[string]any) (Style, error) {
	res := &resolution{registry: r, memo: make(map[string]Style)}
	base, err := res.resolve(name, nil)
	if err != nil {
		return Style{}, err
	}
	if len(overrides) == 0 {
		return base, nil
	}
	over, err := FromAttrs(overrides)
	if err != nil {
		return Style{}, err
	}
	return Merge(base, over), nil
}

type resolution struct {
	registry *Registry
	memo     map[string]Style
}

func (res *resolution) resolve(name string, path []string) (Style, error) {
	if cached, ok := res.memo[name]; ok {
		return cached, nil
	}
	for _, visited := range path {
		if visited == name {
			return Style{}, &CycleError{Path: append(append([]string{}, path...), name)}
		}
	}

	named, ok := res.registry.Lookup(name)
	if !ok {
		referencedBy := ""
		if len(path) > 0 {
			referencedBy = path[len(path)-1]
		}
		return Style{}, &UndefinedStyleError{Name: name, ReferencedBy: referencedBy}
	}

	var parent Style
	if named.Extends != "" {
		var err error
		parent, err = res.resolve(named.Extends, append(path, name))
		if err != nil {
			return Style{}, err
		}
	}

	own, err := FromAttrs(named.Attrs)
	if err != nil {
		return Style{}, fmt.Errorf("style %q: %w", name, err)
	}

	resolved := Merge(parent, own)
	res.memo[name] = resolved
	return resolved, nil
}

// ResolveRef resolves the loosely-typed style reference shapes the builder
// accepts on entities:
//
//   - nil: no style (nil result, nil error)
//   - string: named-style reference
//   - map[string]any: pure inline style
//   - []any{name, overrideMap...}: named style plus inline overrides
func (r *Registry) ResolveRef(ref any) (*Style, error) {
	switch v := ref.(type) {
	case nil:
		return nil, nil
	case string:
		s, err := r.Resolve(v, nil)
		if err != nil {
			return nil, err
		}
		return &s, nil
	case map[string]any:
		s, err := FromAttrs(v)
		if err != nil {
			return nil, err
		}
		return &s, nil
	case []any:
		if len(v) == 0 {
			return nil, nil
		}
		name, ok := v[0].(string)
		if !ok {
			return nil, fmt.Errorf("style reference list must start with a style name, got %T", v[0])
		}
		overrides := make(map[string]any)
		for _, e := range v[1:] {
			m, ok := e.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("style override must be an attribute map, got %T", e)
			}
			for k, val := range m {
				overrides[k] = val
			}
		}
		s, err := r.Resolve(name, overrides)
		if err != nil {
			return nil, err
		}
		return &s, nil
	default:
		return nil, fmt.Errorf("unsupported style reference %v (%T)", ref, ref)
	}
}
