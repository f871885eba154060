// Package logging provides structured logging for the unified-ui framework.
//
// Logging is built on zap and is controlled by the UNIFIED_UI_LOG_LEVEL
// environment variable. When unset, logging is silent so that rendered UI
// output (terminal trees, HTML dumps) is never interleaved with log lines.
// Set UNIFIED_UI_LOG_LEVEL to "debug", "info", "warn", or "error" to enable
// output on stderr.
//
// Beyond the generic level helpers, the package exposes a few domain helpers
// (LogBuild, LogSignal, LogRender) so build passes, signal dispatch, and
// renderer passes log with consistent field names across packages.
package logging
