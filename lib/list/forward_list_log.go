package list

import (
	"sync"

	"github.com/benz9527/fwdlist/lib/xlog"
)

var (
	debugLogOnce sync.Once
	debugLog     xlog.XLogger
)

// SetDebugLogger replaces the logger that reports iterator misuse in
// fwdlistdebug builds. A nil logger is ignored.
func SetDebugLogger(logger xlog.XLogger) {
	if logger == nil {
		return
	}
	debugLogOnce.Do(func() {})
	debugLog = logger
}

func debugLogger() xlog.XLogger {
	debugLogOnce.Do(func() {
		debugLog = xlog.NewXLogger(
			xlog.WithXLoggerWriter(xlog.StdErr),
			xlog.WithXLoggerName("forward-list"),
			xlog.WithXLoggerLevel(xlog.LogLevelError),
		)
	})
	return debugLog
}
