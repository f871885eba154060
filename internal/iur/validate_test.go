package iur

import (
	"errors"
	"testing"

	"github.com/pcharbon70/unified-ui-sub001/internal/signal"
)

func validationKind(t *testing.T, err error) ErrorKind {
	t.Helper()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	return verr.Kind
}

func button(id, label string) *Button {
	b := &Button{Label: label}
	meta := NewMeta()
	meta.ID = id
	b.SetMeta(meta)
	return b
}

func text(content string) *Text {
	n := &Text{Content: content}
	n.SetMeta(NewMeta())
	return n
}

func vbox(children ...Node) *VBox {
	v := EmptyVBox()
	v.Kids = children
	return v
}

func TestValidateChildrenShortCircuit(t *testing.T) {
	err := ValidateChildren([]Node{
		button("", "valid"),
		button("", ""), // first failure
		text(""),       // would also fail, must not be reached
	})
	if kind := validationKind(t, err); kind != ErrMissingLabel {
		t.Errorf("ValidateChildren() kind = %v, want exactly the first child's MissingLabel", kind)
	}
}

func TestValidateChildrenEmpty(t *testing.T) {
	if err := ValidateChildren(nil); err != nil {
		t.Errorf("ValidateChildren(nil) = %v, want ok", err)
	}
	if err := ValidateChildren([]Node{}); err != nil {
		t.Errorf("ValidateChildren([]) = %v, want ok", err)
	}
}

func TestValidateStructurePropagatesUnchanged(t *testing.T) {
	// The error from a deeply nested failing node must surface unchanged.
	inner := vbox(text(""))
	outer := vbox(button("", "ok"), inner)

	err := ValidateStructure(outer)
	if kind := validationKind(t, err); kind != ErrMissingContent {
		t.Errorf("ValidateStructure() kind = %v, want nested MissingContent", kind)
	}
}

func TestValidateDuplicateIDs(t *testing.T) {
	tree := vbox(button("save", "A"), button("save", "B"))

	err := Validate(tree)
	if kind := validationKind(t, err); kind != ErrDuplicateID {
		t.Errorf("Validate() kind = %v, want DuplicateID", kind)
	}
}

func TestValidateDuplicateIDBeatsDanglingLabel(t *testing.T) {
	// Fixed verifier ordering: id uniqueness runs before reference checks,
	// so a tree with both defects reports the duplicate id.
	label := &Label{For: "ghost", Text: "Email"}
	label.SetMeta(NewMeta())
	tree := vbox(button("dup", "A"), button("dup", "B"), label)

	err := Validate(tree)
	if kind := validationKind(t, err); kind != ErrDuplicateID {
		t.Errorf("Validate() kind = %v, want DuplicateID to win over DanglingLabelRef", kind)
	}
}

func TestValidateDanglingLabel(t *testing.T) {
	label := &Label{For: "missing-input", Text: "Email"}
	label.SetMeta(NewMeta())
	tree := vbox(label)

	err := Validate(tree)
	if kind := validationKind(t, err); kind != ErrDanglingLabelRef {
		t.Errorf("Validate() kind = %v, want DanglingLabelRef", kind)
	}
}

func TestValidateLabelResolvesToInput(t *testing.T) {
	input := &TextInput{InputType: InputText, Name: "email"}
	meta := NewMeta()
	meta.ID = "email"
	input.SetMeta(meta)

	label := &Label{For: "email", Text: "Email"}
	label.SetMeta(NewMeta())

	if err := Validate(vbox(label, input)); err != nil {
		t.Errorf("Validate() = %v, want ok", err)
	}
}

func TestValidateHandlerShape(t *testing.T) {
	b := button("", "Save")
	b.OnClick = &signal.Handler{Kind: signal.HandlerKind("bogus")}

	err := Validate(vbox(b))
	if kind := validationKind(t, err); kind != ErrInvalidHandler {
		t.Errorf("Validate() kind = %v, want InvalidHandler", kind)
	}
}

func TestValidateInputType(t *testing.T) {
	input := &TextInput{InputType: InputType("checkbox")}
	input.SetMeta(NewMeta())

	err := Validate(vbox(input))
	if kind := validationKind(t, err); kind != ErrInvalidInputType {
		t.Errorf("Validate() kind = %v, want InvalidInputType", kind)
	}
}

func TestValidateStateKeys(t *testing.T) {
	b := button("", "Save")
	b.OnClick = &signal.Handler{
		Kind:    signal.HandlerWithPayload,
		Action:  "save",
		Payload: map[string]any{"not a key!": 1},
	}

	err := Validate(vbox(b))
	if kind := validationKind(t, err); kind != ErrInvalidStateKey {
		t.Errorf("Validate() kind = %v, want InvalidStateKey", kind)
	}
}

func TestValidateOkTree(t *testing.T) {
	b := button("save", "Save")
	b.OnClick = &signal.Handler{
		Kind:    signal.HandlerWithPayload,
		Action:  "save",
		Payload: map[string]any{"formId": "login"},
	}
	if err := Validate(vbox(text("hello"), b)); err != nil {
		t.Errorf("Validate() = %v, want ok", err)
	}
}

func TestWalkOrder(t *testing.T) {
	tree := vbox(
		text("a"),
		vbox(text("b"), text("c")),
		text("d"),
	)

	var visited []string
	Walk(tree, func(n Node) bool {
		if txt, ok := n.(*Text); ok {
			visited = append(visited, txt.Content)
		}
		return true
	})

	want := []string{"a", "b", "c", "d"}
	if len(visited) != len(want) {
		t.Fatalf("Walk visited %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("Walk order[%d] = %q, want %q", i, visited[i], want[i])
		}
	}
}

func TestCount(t *testing.T) {
	tree := vbox(text("a"), vbox(text("b")))
	if got := Count(tree); got != 4 {
		t.Errorf("Count() = %d, want 4", got)
	}
}
