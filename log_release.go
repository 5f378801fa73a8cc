//go:build !debug

package voronoi

// logDebugf is a no-op outside the debug build; see log_debug.go.
func logDebugf(format string, v ...interface{}) {}
