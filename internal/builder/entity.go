package builder

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Entity is one declarative descriptor node: the contract between the DSL
// layer and the builder.
type Entity struct {
	Kind     string
	Attrs    map[string]any
	Children []*Entity
}

// NewEntity is a convenience constructor for programmatic trees.
func NewEntity(kind string, attrs map[string]any, children ...*Entity) *Entity {
	if attrs == nil {
		attrs = map[string]any{}
	}
	return &Entity{Kind: kind, Attrs: attrs, Children: children}
}

// ParseEntityJSON decodes a JSON entity descriptor tree of the shape
//
//	{"kind": "vbox", "attrs": {...}, "children": [...]}
//
// into an Entity tree.
func ParseEntityJSON(data []byte) (*Entity, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid entity JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("entity JSON root must be an object, got %s", root.Type)
	}
	return entityFromResult(root)
}

func entityFromResult(r gjson.Result) (*Entity, error) {
	kind := r.Get("kind").String()
	if kind == "" {
		return nil, fmt.Errorf("entity missing kind")
	}

	entity := &Entity{Kind: kind, Attrs: map[string]any{}}

	if attrs := r.Get("attrs"); attrs.Exists() {
		if !attrs.IsObject() {
			return nil, fmt.Errorf("entity %q attrs must be an object", kind)
		}
		m, ok := attrs.Value().(map[string]any)
		if !ok {
			return nil, fmt.Errorf("entity %q attrs must be an object", kind)
		}
		entity.Attrs = m
	}

	if children := r.Get("children"); children.Exists() {
		if !children.IsArray() {
			return nil, fmt.Errorf("entity %q children must be an array", kind)
		}
		for _, childResult := range children.Array() {
			child, err := entityFromResult(childResult)
			if err != nil {
				return nil, err
			}
			entity.Children = append(entity.Children, child)
		}
	}

	return entity, nil
}
