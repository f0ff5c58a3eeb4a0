package editorui

import (
	"log/slog"
	"os"
	"sync/atomic"
)

// logLevel controls the verbosity of the package logger.
// Default is LevelWarn; SetVerbose(true) switches to LevelDebug.
var logLevel = func() *slog.LevelVar {
	v := new(slog.LevelVar)
	v.Set(slog.LevelWarn)
	return v
}()

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newDefaultLogger())
}

func newDefaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// SetVerbose enables or disables debug logging for docking, layout and property code.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelWarn)
	}
}

// IsVerbose reports whether debug logging is enabled.
func IsVerbose() bool {
	return logLevel.Level() <= slog.LevelDebug
}

// SetLogger replaces the package logger. Pass nil to restore the stderr text logger.
// Safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newDefaultLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current package logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

func logger() *slog.Logger {
	return loggerPtr.Load()
}
