// Package terminal renders IUR trees into styled text using Lipgloss, with
// Gauge and Table widgets delegated to Bubbles components. The platform
// tree is a plain node tree whose Flatten joins children vertically or
// horizontally per the owning layout.
//
// Event capture translates Bubble Tea messages (keys, mouse, resize) into
// the canonical signal shape; the interactive Program drives a component
// instance through the full event -> signal -> update -> view -> render
// cycle.
package terminal
