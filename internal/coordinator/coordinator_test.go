package coordinator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/pcharbon70/unified-ui-sub001/internal/iur"
	"github.com/pcharbon70/unified-ui-sub001/internal/render"
)

// stubRenderer is a minimal backend for fan-out tests. A non-nil err makes
// every render fail; a non-zero delay simulates a slow platform.
type stubRenderer struct {
	platform render.Platform
	err      error
	delay    time.Duration
}

func (s *stubRenderer) Platform() render.Platform { return s.platform }

func (s *stubRenderer) Render(root iur.Node, opts render.Options) (*render.State, error) {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	if s.err != nil {
		return nil, s.err
	}
	state := render.NewState(s.platform, opts)
	state.Root = "ok"
	return state, nil
}

func (s *stubRenderer) Update(root iur.Node, prev *render.State, opts render.Options) (*render.State, error) {
	return s.Render(root, opts)
}

func (s *stubRenderer) Destroy(state *render.State) error { return nil }

func testRoot() iur.Node {
	txt := &iur.Text{Content: "hello"}
	txt.SetMeta(iur.NewMeta())
	return txt
}

func TestRenderUnregisteredPlatform(t *testing.T) {
	c := New()
	_, err := c.Render(render.PlatformWeb, testRoot(), render.Options{})
	if !errors.Is(err, ErrInvalidPlatform) {
		t.Errorf("err = %v, want ErrInvalidPlatform", err)
	}
}

func TestRenderAllIsolatesFailures(t *testing.T) {
	c := New()
	c.Register(&stubRenderer{platform: render.PlatformTerminal})
	c.Register(&stubRenderer{platform: render.PlatformWeb, err: errors.New("boom")})

	results, err := c.RenderAll(testRoot(), render.Options{})
	if err != nil {
		t.Fatalf("RenderAll() error = %v, want nil with partial failure", err)
	}
	if results[render.PlatformTerminal].State == nil {
		t.Error("terminal result missing state")
	}
	if results[render.PlatformWeb].Err == nil {
		t.Error("web result missing captured error")
	}
}

func TestRenderAllAllFailed(t *testing.T) {
	c := New()
	c.Register(&stubRenderer{platform: render.PlatformTerminal, err: errors.New("boom")})
	c.Register(&stubRenderer{platform: render.PlatformDesktop, err: errors.New("boom")})

	_, err := c.RenderAll(testRoot(), render.Options{})
	if !errors.Is(err, ErrAllRenderersFailed) {
		t.Errorf("err = %v, want ErrAllRenderersFailed", err)
	}
}

func TestConcurrentRenderTimesOutSlowPlatform(t *testing.T) {
	c := New()
	c.Register(&stubRenderer{platform: render.PlatformTerminal})
	c.Register(&stubRenderer{platform: render.PlatformDesktop, delay: 500 * time.Millisecond})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	platforms := []render.Platform{render.PlatformTerminal, render.PlatformDesktop}
	results, err := c.ConcurrentRender(ctx, testRoot(), platforms, render.Options{})
	if err != nil {
		t.Fatalf("ConcurrentRender() error = %v, want nil with partial timeout", err)
	}
	if results[render.PlatformTerminal].Err != nil {
		t.Errorf("fast platform failed: %v", results[render.PlatformTerminal].Err)
	}
	if !errors.Is(results[render.PlatformDesktop].Err, context.DeadlineExceeded) {
		t.Errorf("slow platform err = %v, want deadline exceeded", results[render.PlatformDesktop].Err)
	}
}

func TestConcurrentRenderAllTimedOut(t *testing.T) {
	c := New()
	c.Register(&stubRenderer{platform: render.PlatformTerminal, delay: 500 * time.Millisecond})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.ConcurrentRender(ctx, testRoot(), []render.Platform{render.PlatformTerminal}, render.Options{})
	if !errors.Is(err, ErrAllRenderersTimedOut) {
		t.Errorf("err = %v, want ErrAllRenderersTimedOut", err)
	}
}

func TestDetectPlatformOverride(t *testing.T) {
	t.Setenv(PlatformEnvVar, "web")
	if got := DetectPlatform(); got != render.PlatformWeb {
		t.Errorf("DetectPlatform() = %q, want web", got)
	}

	t.Setenv(PlatformEnvVar, "toaster")
	t.Setenv(WebEnvVar, "")
	t.Setenv("DISPLAY", ":0")
	if got := DetectPlatform(); got != render.PlatformDesktop {
		t.Errorf("DetectPlatform() with invalid override = %q, want desktop heuristic", got)
	}
}

func TestMergeStates(t *testing.T) {
	got := MergeStates([]map[string]any{
		{"a": 1, "nested": map[string]any{"x": 1, "y": 2}},
		{"b": 2, "nested": map[string]any{"y": 3}},
	})
	want := map[string]any{
		"a":      1,
		"b":      2,
		"nested": map[string]any{"x": 1, "y": 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MergeStates() mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeStatesDoesNotAliasInput(t *testing.T) {
	src := map[string]any{"nested": map[string]any{"x": 1}}
	out := MergeStates([]map[string]any{src})
	out["nested"].(map[string]any)["x"] = 99
	if src["nested"].(map[string]any)["x"] != 1 {
		t.Error("merge output aliases input map")
	}
}
