package winwin

import (
	"sync"

	"github.com/rs/zerolog"
)

var (
	loggerMu sync.Mutex
	logger   = zerolog.Nop()
)

// SetLogger installs a logger for lifecycle events: class registrations,
// window creation and destruction, and window-procedure binding and release.
// Dispatch of individual messages is not logged.
//
// The default logger discards everything. Pass zerolog.Nop() to restore it.
func SetLogger(l zerolog.Logger) {
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
}

func tracer() *zerolog.Logger {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	l := logger
	return &l
}
