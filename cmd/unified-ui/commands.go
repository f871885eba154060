package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pcharbon70/unified-ui-sub001/internal/builder"
	"github.com/pcharbon70/unified-ui-sub001/internal/component"
	"github.com/pcharbon70/unified-ui-sub001/internal/coordinator"
	"github.com/pcharbon70/unified-ui-sub001/internal/iur"
	"github.com/pcharbon70/unified-ui-sub001/internal/render"
	"github.com/pcharbon70/unified-ui-sub001/internal/render/desktop"
	"github.com/pcharbon70/unified-ui-sub001/internal/render/terminal"
	"github.com/pcharbon70/unified-ui-sub001/internal/render/web"
	sig "github.com/pcharbon70/unified-ui-sub001/internal/signal"
	"github.com/pcharbon70/unified-ui-sub001/internal/style"
)

// Command flags
var (
	platformFlag   string
	themePath      string
	serveHost      string
	servePort      int
	serveAdvertise bool
)

func init() {
	renderCmd.Flags().StringVar(&platformFlag, "platform", "", "Target platform (terminal, desktop, web); auto-detected when unset")
	renderCmd.Flags().StringVar(&themePath, "theme", "", "YAML theme file with named style definitions")

	serveCmd.Flags().StringVar(&serveHost, "host", "127.0.0.1", "Listen address")
	serveCmd.Flags().IntVar(&servePort, "port", 8420, "Listen port")
	serveCmd.Flags().StringVar(&themePath, "theme", "", "YAML theme file with named style definitions")
	serveCmd.Flags().BoolVar(&serveAdvertise, "advertise", false, "Advertise the server over mDNS")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(demoCmd)
}

// loadStyles builds a style registry, loading the theme file when one was
// given.
func loadStyles() (*style.Registry, error) {
	registry := style.NewRegistry()
	if themePath == "" {
		return registry, nil
	}
	if err := registry.LoadFile(themePath); err != nil {
		return nil, fmt.Errorf("failed to load theme: %w", err)
	}
	return registry, nil
}

// loadTree parses and builds an entity JSON document into an IUR tree.
func loadTree(path string) (iur.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	entity, err := builder.ParseEntityJSON(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	styles, err := loadStyles()
	if err != nil {
		return nil, err
	}
	root, err := builder.New(styles).Build(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to build tree: %w", err)
	}
	if root == nil {
		root = iur.EmptyVBox()
	}
	if err := iur.Validate(root); err != nil {
		return nil, err
	}
	return root, nil
}

// renderCmd renders an entity JSON file once and prints the result
var renderCmd = &cobra.Command{
	Use:   "render <file.json>",
	Short: "Render an entity JSON document once",
	Long: `Parse an entity JSON document, build it into a widget tree, and render
it on one platform.

Terminal output is the styled text view, web output is the HTML markup, and
desktop output is the widget tree as JSON.`,
	Example: `  # Render for the auto-detected platform
  unified-ui render dashboard.json

  # Render the HTML a browser would receive
  unified-ui render dashboard.json --platform web

  # Apply named styles from a theme
  unified-ui render dashboard.json --theme dark.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	root, err := loadTree(args[0])
	if err != nil {
		return err
	}

	platform := render.Platform(platformFlag)
	if platformFlag == "" {
		platform = coordinator.DetectPlatform()
	}

	coord := coordinator.New()
	coord.Register(terminal.New())
	coord.Register(desktop.New())
	coord.Register(web.New())

	state, err := coord.Render(platform, root, render.Options{Width: terminal.GetTerminalWidth()})
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	switch platform {
	case render.PlatformTerminal:
		fmt.Println(terminal.View(state))
	case render.PlatformWeb:
		fmt.Println(web.HTML(state))
	case render.PlatformDesktop:
		encoded, err := json.MarshalIndent(state.Root, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode widget tree: %w", err)
		}
		fmt.Println(string(encoded))
	}
	return nil
}

// serveCmd hosts an entity document (or the demo component) over HTTP
var serveCmd = &cobra.Command{
	Use:   "serve [file.json]",
	Short: "Serve a component over HTTP with live events",
	Long: `Start a web server hosting a component: the page at / connects back
over a websocket, browser events are dispatched as signals, and every state
change pushes re-rendered HTML.

With a file argument the served view is the entity document; without one
the built-in demo component is served.`,
	Example: `  # Serve the demo component
  unified-ui serve

  # Serve a document on all interfaces
  unified-ui serve dashboard.json --host 0.0.0.0 --port 8080

  # Announce the server on the local network
  unified-ui serve --advertise`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	styles, err := loadStyles()
	if err != nil {
		return err
	}
	b := builder.New(styles)

	var def component.Definition
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		entity, err := builder.ParseEntityJSON(data)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", args[0], err)
		}
		def = component.Definition{
			Name: "document",
			View: func(map[string]any) *builder.Entity { return entity },
		}
	} else {
		def = demoDefinition()
	}

	instance := component.NewInstance(component.NewCycle(def, b), nil)
	defer instance.Close()

	server := web.NewServer(web.ServerConfig{
		Host:      serveHost,
		Port:      servePort,
		Advertise: serveAdvertise,
	}, instance, render.Options{Source: "web"})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Serving on http://%s:%d (Ctrl-C to stop)\n", serveHost, servePort)
	return server.Start(ctx)
}

// demoCmd runs the interactive terminal demo
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the interactive terminal demo",
	Long: `Launch the built-in counter component in the terminal: a live view of
the full cycle where key presses become signals, signals update state, and
the new state re-renders in place.`,
	RunE: runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	instance := component.NewInstance(component.NewCycle(demoDefinition(), nil), nil)
	defer instance.Close()
	return terminal.RunProgram(instance, render.Options{Source: "terminal"})
}

// demoDefinition is a small counter component exercising text, button,
// gauge, and layout widgets.
func demoDefinition() component.Definition {
	return component.Definition{
		Name: "counter",
		Init: func(config map[string]any) map[string]any {
			return map[string]any{"count": 0}
		},
		OnClick: func(state map[string]any, s *sig.Signal) map[string]any {
			count, _ := state["count"].(int)
			return map[string]any{"count": count + 1}
		},
		View: func(state map[string]any) *builder.Entity {
			count, _ := state["count"].(int)
			return builder.NewEntity(builder.KindVBox, map[string]any{"spacing": 1},
				builder.NewEntity(builder.KindText, map[string]any{
					"content": fmt.Sprintf("Clicks: %d", count),
				}),
				builder.NewEntity(builder.KindGauge, map[string]any{
					"label": "progress",
					"value": float64(count%10) / 10,
				}),
				builder.NewEntity(builder.KindButton, map[string]any{
					"id":      "increment",
					"label":   "Click me",
					"onClick": "increment",
				}),
			)
		},
	}
}
