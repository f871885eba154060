package style

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func mustDefine(t *testing.T, r *Registry, n NamedStyle) {
	t.Helper()
	if err := r.Define(n); err != nil {
		t.Fatalf("Define(%q) error = %v", n.Name, err)
	}
}

func TestResolveExtendsChain(t *testing.T) {
	r := NewRegistry()
	mustDefine(t, r, NamedStyle{Name: "base", Attrs: map[string]any{
		"foreground":      "white",
		"padding":         2,
		"text_attributes": []any{"bold"},
	}})
	mustDefine(t, r, NamedStyle{Name: "primary", Extends: "base", Attrs: map[string]any{
		"foreground":      "#7D56F4",
		"text_attributes": []any{"underline"},
	}})

	got, err := r.Resolve("primary", nil)
	if err != nil {
		t.Fatalf("Resolve(primary) error = %v", err)
	}
	if got.Foreground != Hex("#7D56F4") {
		t.Errorf("Foreground = %v, want child override", got.Foreground)
	}
	if got.Padding == nil || *got.Padding != 2 {
		t.Errorf("Padding = %v, want inherited 2", got.Padding)
	}
	if len(got.Attrs) != 2 || got.Attrs[0] != AttrBold || got.Attrs[1] != AttrUnderline {
		t.Errorf("Attrs = %v, want union [bold underline]", got.Attrs)
	}
}

func TestResolveOverridesWin(t *testing.T) {
	r := NewRegistry()
	mustDefine(t, r, NamedStyle{Name: "base", Attrs: map[string]any{"foreground": "white"}})

	got, err := r.Resolve("base", map[string]any{"foreground": "red", "margin": 3})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got.Foreground != Named("red") {
		t.Errorf("Foreground = %v, want inline override red", got.Foreground)
	}
	if got.Margin == nil || *got.Margin != 3 {
		t.Errorf("Margin = %v, want 3", got.Margin)
	}
}

func TestResolveCycle(t *testing.T) {
	r := NewRegistry()
	mustDefine(t, r, NamedStyle{Name: "a", Extends: "b"})
	mustDefine(t, r, NamedStyle{Name: "b", Extends: "a"})

	_, err := r.Resolve("a", nil)
	var cycleErr *CycleError
	if !errors.As(err, &cycleErr) {
		t.Fatalf("Resolve(a) error = %v, want *CycleError", err)
	}
	if len(cycleErr.Path) < 3 {
		t.Errorf("CycleError.Path = %v, want the full cycle named", cycleErr.Path)
	}
}

func TestResolveSelfCycle(t *testing.T) {
	r := NewRegistry()
	mustDefine(t, r, NamedStyle{Name: "a", Extends: "a"})

	var cycleErr *CycleError
	if _, err := r.Resolve("a", nil); !errors.As(err, &cycleErr) {
		t.Fatalf("Resolve(self-extending) error = %v, want *CycleError", err)
	}
}

func TestResolveUndefinedExtends(t *testing.T) {
	r := NewRegistry()
	mustDefine(t, r, NamedStyle{Name: "child", Extends: "ghost"})

	_, err := r.Resolve("child", nil)
	var undef *UndefinedStyleError
	if !errors.As(err, &undef) {
		t.Fatalf("Resolve(child) error = %v, want *UndefinedStyleError", err)
	}
	if undef.Name != "ghost" || undef.ReferencedBy != "child" {
		t.Errorf("UndefinedStyleError = %+v, want ghost referenced by child", undef)
	}
}

func TestResolveUndefinedName(t *testing.T) {
	r := NewRegistry()

	var undef *UndefinedStyleError
	if _, err := r.Resolve("nope", nil); !errors.As(err, &undef) {
		t.Fatalf("Resolve(nope) error = %v, want *UndefinedStyleError", err)
	}
}

func TestResolveRef(t *testing.T) {
	r := NewRegistry()
	mustDefine(t, r, NamedStyle{Name: "accent", Attrs: map[string]any{"foreground": "cyan"}})

	t.Run("nil", func(t *testing.T) {
		got, err := r.ResolveRef(nil)
		if err != nil || got != nil {
			t.Errorf("ResolveRef(nil) = %v, %v, want nil, nil", got, err)
		}
	})

	t.Run("name", func(t *testing.T) {
		got, err := r.ResolveRef("accent")
		if err != nil {
			t.Fatalf("ResolveRef(name) error = %v", err)
		}
		if got.Foreground != Named("cyan") {
			t.Errorf("Foreground = %v", got.Foreground)
		}
	})

	t.Run("inline map", func(t *testing.T) {
		got, err := r.ResolveRef(map[string]any{"padding": 1})
		if err != nil {
			t.Fatalf("ResolveRef(map) error = %v", err)
		}
		if got.Padding == nil || *got.Padding != 1 {
			t.Errorf("Padding = %v", got.Padding)
		}
	})

	t.Run("name with overrides", func(t *testing.T) {
		got, err := r.ResolveRef([]any{"accent", map[string]any{"foreground": "magenta"}})
		if err != nil {
			t.Fatalf("ResolveRef(list) error = %v", err)
		}
		if got.Foreground != Named("magenta") {
			t.Errorf("Foreground = %v, want override magenta", got.Foreground)
		}
	})

	t.Run("bad shape", func(t *testing.T) {
		if _, err := r.ResolveRef(42); err == nil {
			t.Error("ResolveRef(42) expected error")
		}
	})
}

func TestLoadTheme(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	doc := `styles:
  base:
    attributes:
      foreground: white
  primary:
    extends: base
    attributes:
      foreground: "#7D56F4"
      text_attributes: [bold]
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme() error = %v", err)
	}

	got, err := r.Resolve("primary", nil)
	if err != nil {
		t.Fatalf("Resolve(primary) error = %v", err)
	}
	if got.Foreground != Hex("#7D56F4") || !got.HasAttr(AttrBold) {
		t.Errorf("resolved primary = %+v", got)
	}
}

func TestLoadFileBadThemeKeepsRegistry(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	if err := os.WriteFile(path, []byte("styles:\n  bad:\n    attributes:\n      bogus_key: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewRegistry()
	mustDefine(t, r, NamedStyle{Name: "keep", Attrs: map[string]any{"foreground": "red"}})

	if err := r.LoadFile(path); err == nil {
		t.Fatal("LoadFile() with unknown attribute expected error")
	}
	if _, ok := r.Lookup("keep"); !ok {
		t.Error("registry lost existing styles after failed load")
	}
}
