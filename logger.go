package matshow

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[zap.Logger]

func init() {
	loggerPtr.Store(zap.NewNop())
}

// SetLogger configures the logger for matshow and its sub-packages.
// By default, matshow produces no log output.
//
// Pass nil to disable logging again.
//
// Log levels used by matshow:
//   - Debug: load and raster details (sizes, ranges)
//   - Info: lifecycle events (window opened, file reloaded)
//   - Warn: skipped updates (reload failed to parse, ragged reload)
//
// Example:
//
//	logger, _ := zap.NewProduction()
//	matshow.SetLogger(logger)
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by matshow.
// Sub-packages (internal/watch, integration/gogpuview) call this to share
// the same logger configuration.
func Logger() *zap.Logger {
	return loggerPtr.Load()
}
