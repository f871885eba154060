package iur

import (
	"fmt"
	"regexp"

	"github.com/pcharbon70/unified-ui-sub001/internal/signal"
)

// ErrorKind classifies build- and definition-time validation failures.
type ErrorKind string

const (
	ErrMissingLabel     ErrorKind = "missing_label"
	ErrMissingContent   ErrorKind = "missing_content"
	ErrDuplicateID      ErrorKind = "duplicate_id"
	ErrDanglingLabelRef ErrorKind = "dangling_label_reference"
	ErrInvalidHandler   ErrorKind = "invalid_signal_handler"
	ErrInvalidStyleAttr ErrorKind = "invalid_style_attribute"
	ErrInvalidStateKey  ErrorKind = "invalid_state_key"
	ErrInvalidInputType ErrorKind = "invalid_input_type"
)

// ValidationError is a definition-time tree validation failure. These are
// fatal: a definition that fails validation must not be rendered.
type ValidationError struct {
	Kind   ErrorKind
	NodeID string
	Detail string
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("validation failed: %s", e.Kind)
	if e.NodeID != "" {
		msg += fmt.Sprintf(" (node %q)", e.NodeID)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// ValidateStructure checks per-node required fields: a Button must have a
// label, a Text must have content. Containers validate children depth-first,
// left-to-right, short-circuiting on the first error, which propagates
// upward unchanged.
func ValidateStructure(n Node) error {
	if n == nil {
		return nil
	}
	switch node := n.(type) {
	case *Button:
		if node.Label == "" {
			return &ValidationError{Kind: ErrMissingLabel, NodeID: node.Meta().ID}
		}
	case *Text:
		if node.Content == "" {
			return &ValidationError{Kind: ErrMissingContent, NodeID: node.Meta().ID}
		}
	}
	return ValidateChildren(n.Children())
}

// ValidateChildren validates a child list in order; an empty list is valid
// and the first failing child's error wins.
func ValidateChildren(children []Node) error {
	for _, child := range children {
		if err := ValidateStructure(child); err != nil {
			return err
		}
	}
	return nil
}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate runs the full definition-time verifier over a tree. Passes run
// in a fixed order and the first failing pass reports:
//
//  1. id uniqueness
//  2. structural references (label `for` must name an existing input id)
//  3. signal-handler shape
//  4. widget attribute domains (input types, column alignment)
//  5. handler payload state keys (identifier-shaped)
//
// Per-node structural checks (required labels/content) run first of all,
// since a structurally broken tree makes the later passes meaningless.
func Validate(root Node) error {
	if root == nil {
		return nil
	}
	if err := ValidateStructure(root); err != nil {
		return err
	}

	// Pass 1: duplicate ids.
	seen := make(map[string]bool)
	var dup *ValidationError
	Walk(root, func(n Node) bool {
		id := n.Meta().ID
		if id == "" {
			return true
		}
		if seen[id] {
			dup = &ValidationError{Kind: ErrDuplicateID, NodeID: id}
			return false
		}
		seen[id] = true
		return true
	})
	if dup != nil {
		return dup
	}

	// Pass 2: label references. A Label's For must point at an input that
	// exists in this tree.
	inputIDs := make(map[string]bool)
	Walk(root, func(n Node) bool {
		if input, ok := n.(*TextInput); ok && input.Meta().ID != "" {
			inputIDs[input.Meta().ID] = true
		}
		return true
	})
	var dangling *ValidationError
	Walk(root, func(n Node) bool {
		label, ok := n.(*Label)
		if !ok || label.For == "" {
			return true
		}
		if !inputIDs[label.For] {
			dangling = &ValidationError{
				Kind:   ErrDanglingLabelRef,
				NodeID: label.Meta().ID,
				Detail: fmt.Sprintf("for=%q does not name an input", label.For),
			}
			return false
		}
		return true
	})
	if dangling != nil {
		return dangling
	}

	// Pass 3: signal-handler shape.
	var badHandler *ValidationError
	Walk(root, func(n Node) bool {
		for _, h := range nodeHandlers(n) {
			if h == nil {
				continue
			}
			if !h.Valid() {
				badHandler = &ValidationError{
					Kind:   ErrInvalidHandler,
					NodeID: n.Meta().ID,
					Detail: fmt.Sprintf("handler kind %q", h.Kind),
				}
				return false
			}
		}
		return true
	})
	if badHandler != nil {
		return badHandler
	}

	// Pass 4: widget attribute domains.
	var badAttr *ValidationError
	Walk(root, func(n Node) bool {
		switch node := n.(type) {
		case *TextInput:
			if !ValidInputType(node.InputType) {
				badAttr = &ValidationError{
					Kind:   ErrInvalidInputType,
					NodeID: node.Meta().ID,
					Detail: fmt.Sprintf("type %q", node.InputType),
				}
				return false
			}
		case *Column:
			switch node.Align {
			case "", "left", "center", "right":
			default:
				badAttr = &ValidationError{
					Kind:   ErrInvalidStyleAttr,
					NodeID: node.Meta().ID,
					Detail: fmt.Sprintf("column alignment %q", node.Align),
				}
				return false
			}
		}
		return true
	})
	if badAttr != nil {
		return badAttr
	}

	// Pass 5: handler payload keys must be identifier-shaped so they can be
	// merged into component state safely.
	var badKey *ValidationError
	Walk(root, func(n Node) bool {
		for _, h := range nodeHandlers(n) {
			if h == nil {
				continue
			}
			for key := range h.Payload {
				if !identRe.MatchString(key) {
					badKey = &ValidationError{
						Kind:   ErrInvalidStateKey,
						NodeID: n.Meta().ID,
						Detail: fmt.Sprintf("payload key %q", key),
					}
					return false
				}
			}
		}
		return true
	})
	if badKey != nil {
		return badKey
	}

	return nil
}

func nodeHandlers(n Node) []*signal.Handler {
	switch node := n.(type) {
	case *Button:
		return []*signal.Handler{node.OnClick}
	case *TextInput:
		return []*signal.Handler{node.OnChange}
	case *MenuItem:
		return []*signal.Handler{node.OnSelect}
	case *TreeNode:
		return []*signal.Handler{node.OnSelect}
	case *VBox:
		return []*signal.Handler{node.OnSubmit}
	case *HBox:
		return []*signal.Handler{node.OnSubmit}
	default:
		return nil
	}
}
