// Package coordinator owns multi-platform rendering: it detects the best
// platform for the current environment, fans one IUR tree out to every
// registered backend, and runs bounded concurrent renders where each
// platform succeeds or fails on its own.
package coordinator
