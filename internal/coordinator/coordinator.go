package coordinator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/pcharbon70/unified-ui-sub001/internal/iur"
	"github.com/pcharbon70/unified-ui-sub001/internal/logging"
	"github.com/pcharbon70/unified-ui-sub001/internal/render"
)

// PlatformEnvVar overrides platform detection when set to a valid platform
// name. Explicit overrides always win over heuristics.
const PlatformEnvVar = "UNIFIED_UI_PLATFORM"

// WebEnvVar marks a web/server execution context for platform detection.
const WebEnvVar = "UNIFIED_UI_WEB"

// DefaultRenderTimeout bounds each platform's render in ConcurrentRender
// when the caller's context carries no deadline of its own.
const DefaultRenderTimeout = 5 * time.Second

var (
	// ErrInvalidPlatform is returned for platforms with no registered
	// renderer.
	ErrInvalidPlatform = errors.New("no renderer registered for platform")

	// ErrAllRenderersFailed is returned by RenderAll when not a single
	// platform produced a state.
	ErrAllRenderersFailed = errors.New("all renderers failed")

	// ErrAllRenderersTimedOut is returned by ConcurrentRender when every
	// platform failed or ran out of time.
	ErrAllRenderersTimedOut = errors.New("all renderers failed or timed out")
)

// Result is one platform's outcome in a fan-out render. Exactly one of
// State and Err is set.
type Result struct {
	Platform render.Platform
	State    *render.State
	Err      error
}

// Coordinator fans IUR trees out to registered platform backends.
type Coordinator struct {
	mu        sync.RWMutex
	renderers map[render.Platform]render.Renderer
}

// New returns a coordinator with no renderers registered.
func New() *Coordinator {
	return &Coordinator{renderers: make(map[render.Platform]render.Renderer)}
}

// Register adds or replaces the renderer for its platform.
func (c *Coordinator) Register(r render.Renderer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.renderers[r.Platform()] = r
}

// Renderer returns the renderer registered for a platform.
func (c *Coordinator) Renderer(platform render.Platform) (render.Renderer, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.renderers[platform]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPlatform, platform)
	}
	return r, nil
}

// Platforms returns the registered platforms in detection-preference order.
func (c *Coordinator) Platforms() []render.Platform {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]render.Platform, 0, len(c.renderers))
	for _, p := range render.Platforms() {
		if _, ok := c.renderers[p]; ok {
			out = append(out, p)
		}
	}
	return out
}

// DetectPlatform picks the platform for the current environment. The
// PlatformEnvVar override wins; otherwise a web execution context selects
// web, a graphical session selects desktop, and a tty selects terminal.
// The heuristic never fails: terminal is the fallback.
func DetectPlatform() render.Platform {
	if override := os.Getenv(PlatformEnvVar); override != "" {
		switch p := render.Platform(override); p {
		case render.PlatformTerminal, render.PlatformDesktop, render.PlatformWeb:
			return p
		default:
			logging.Warn("Ignoring invalid platform override",
				zap.String("env", PlatformEnvVar),
				zap.String("value", override),
			)
		}
	}
	if os.Getenv(WebEnvVar) != "" {
		return render.PlatformWeb
	}
	if os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != "" {
		return render.PlatformDesktop
	}
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return render.PlatformTerminal
	}
	return render.PlatformTerminal
}

// Render renders on a single platform.
func (c *Coordinator) Render(platform render.Platform, root iur.Node, opts render.Options) (*render.State, error) {
	r, err := c.Renderer(platform)
	if err != nil {
		return nil, err
	}
	return r.Render(root, opts)
}

// RenderAll renders the tree on every registered platform sequentially.
// Per-platform failures are captured in the result map; the error is
// non-nil only when every platform failed.
func (c *Coordinator) RenderAll(root iur.Node, opts render.Options) (map[render.Platform]Result, error) {
	platforms := c.Platforms()
	results := make(map[render.Platform]Result, len(platforms))
	failed := 0

	for _, platform := range platforms {
		state, err := c.Render(platform, root, opts)
		if err != nil {
			logging.Error("Platform render failed",
				zap.String("platform", string(platform)),
				zap.Error(err),
			)
			results[platform] = Result{Platform: platform, Err: err}
			failed++
			continue
		}
		results[platform] = Result{Platform: platform, State: state}
	}

	if len(platforms) > 0 && failed == len(platforms) {
		return results, ErrAllRenderersFailed
	}
	return results, nil
}

// ConcurrentRender renders the tree on the given platforms in parallel, one
// goroutine per platform, each bounded by the context deadline (or
// DefaultRenderTimeout when the context has none). A platform that times
// out is recorded as failed; there are no retries.
func (c *Coordinator) ConcurrentRender(ctx context.Context, root iur.Node, platforms []render.Platform, opts render.Options) (map[render.Platform]Result, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultRenderTimeout)
		defer cancel()
	}

	type indexed struct {
		platform render.Platform
		result   Result
	}
	resultChan := make(chan indexed, len(platforms))
	var wg sync.WaitGroup

	for _, platform := range platforms {
		wg.Add(1)
		go func(platform render.Platform) {
			defer wg.Done()

			done := make(chan Result, 1)
			go func() {
				state, err := c.Render(platform, root, opts)
				done <- Result{Platform: platform, State: state, Err: err}
			}()

			select {
			case <-ctx.Done():
				resultChan <- indexed{platform, Result{
					Platform: platform,
					Err:      fmt.Errorf("render on %s: %w", platform, ctx.Err()),
				}}
			case result := <-done:
				resultChan <- indexed{platform, result}
			}
		}(platform)
	}

	wg.Wait()
	close(resultChan)

	results := make(map[render.Platform]Result, len(platforms))
	failed := 0
	for entry := range resultChan {
		results[entry.platform] = entry.result
		if entry.result.Err != nil {
			failed++
		}
	}

	if len(platforms) > 0 && failed == len(results) {
		return results, ErrAllRenderersTimedOut
	}
	return results, nil
}

// MergeStates deep-merges configuration maps left to right, the rightmost
// value winning on conflicts. Nested maps merge recursively; any other
// conflicting pair is replaced wholesale.
func MergeStates(states []map[string]any) map[string]any {
	out := make(map[string]any)
	for _, state := range states {
		mergeInto(out, state)
	}
	return out
}

func mergeInto(dst, src map[string]any) {
	for k, v := range src {
		if nested, ok := v.(map[string]any); ok {
			if existing, ok := dst[k].(map[string]any); ok {
				mergeInto(existing, nested)
				continue
			}
			copied := make(map[string]any, len(nested))
			mergeInto(copied, nested)
			dst[k] = copied
			continue
		}
		dst[k] = v
	}
}
