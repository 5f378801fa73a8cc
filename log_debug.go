//go:build debug

package voronoi

import (
	"log"
	"os"
)

// Debug logger instance; only wired up under the debug build tag so a
// normal build pays nothing for it.
var logger = log.New(os.Stderr, "[voronoi DEBUG] ", log.LstdFlags)

// logDebugf logs a trace message: sweep event dispatch, circle-event
// scheduling, event-queue push/invalidate, and duplicate sites. Arc
// insertion and removal are not traced.
func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
