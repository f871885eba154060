// Package web renders IUR trees into HTML strings: spans for text, buttons
// with ui-click action attributes, labeled inputs with ui-change, and
// flexbox divs for layout. Resolved styles become inline style attributes
// and every identified node carries data-widget-id for event routing.
//
// CaptureEvent decodes browser-side event JSON into canonical signals. The
// Server ties it together: an HTTP page plus a websocket endpoint that
// receives events as signals and pushes re-rendered HTML back.
package web
