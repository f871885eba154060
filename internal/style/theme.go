package style

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/pcharbon70/unified-ui-sub001/internal/logging"
)

// themeDocument is the on-disk YAML shape of a theme.
type themeDocument struct {
	Styles map[string]themeStyle `yaml:"styles"`
}

type themeStyle struct {
	Extends    string         `yaml:"extends"`
	Attributes map[string]any `yaml:"attributes"`
}

// LoadTheme reads a YAML theme document into a fresh registry.
func LoadTheme(path string) (*Registry, error) {
	r := NewRegistry()
	if err := r.LoadFile(path); err != nil {
		return nil, err
	}
	return r, nil
}

// LoadFile replaces the registry contents with the styles from a YAML theme
// document. On any error the registry is left unchanged.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read theme %s: %w", path, err)
	}

	var doc themeDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse theme %s: %w", path, err)
	}

	// Validate every definition before touching the registry so a bad theme
	// never half-applies.
	staged := make(map[string]NamedStyle, len(doc.Styles))
	for name, ts := range doc.Styles {
		n := NamedStyle{Name: name, Extends: ts.Extends, Attrs: ts.Attributes}
		if _, err := FromAttrs(n.Attrs); err != nil {
			return fmt.Errorf("theme %s: style %q: %w", path, name, err)
		}
		staged[name] = n
	}

	r.mu.Lock()
	r.styles = staged
	r.mu.Unlock()

	logging.Debug("Theme loaded",
		zap.String("path", path),
		zap.Int("styles", len(staged)),
	)
	return nil
}

// Watch re-loads the theme file whenever it changes, until ctx is cancelled.
// Parse failures are logged and the previous styles stay active. Watching
// the parent directory (not the file itself) survives editors that replace
// the file on save.
func (r *Registry) Watch(ctx context.Context, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create theme watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	target := filepath.Clean(path)
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if err := r.LoadFile(path); err != nil {
					logging.Warn("Theme reload failed, keeping previous styles",
						zap.String("path", path),
						zap.Error(err),
					)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logging.Warn("Theme watcher error", zap.Error(err))
			}
		}
	}()

	return nil
}
