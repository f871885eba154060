// Unified-ui renders declarative entity trees across terminal, desktop,
// and web platforms.
//
// It provides one-shot rendering of entity JSON documents, a web server
// that hosts a component over a websocket event bridge, and an interactive
// terminal demo of the full update cycle.
//
// Usage:
//
//	unified-ui [command] [flags]
//
// Running without arguments launches the interactive demo.
// See 'unified-ui --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pcharbon70/unified-ui-sub001/internal/logging"
	"github.com/pcharbon70/unified-ui-sub001/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "unified-ui",
	Short: "Cross-platform declarative UI renderer",
	Long: `Render declarative entity trees across terminal, desktop, and web.

Entity JSON documents are built into a platform-neutral widget tree, styled
through named style lookups, and rendered by the backend that fits the
current environment.

If no command is specified, the interactive demo will launch automatically.`,
	Version: version.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Initialize(logLevel)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd, args)
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); silent when unset")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("unified-ui %s\n", version.Full())
	},
}
