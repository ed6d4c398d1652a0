// Package logging wraps github.com/op/go-logging into the small surface
// the CLI driver needs: a per-module leveled logger and a helper to
// render a search's wall-clock time for the CLI's debug-level timing line.
package logging
