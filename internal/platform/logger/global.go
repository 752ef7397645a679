package logger

import (
	"errors"
	"sync"

	"github.com/acdsyn/acdsyn/internal/config"
)

// ErrAlreadyInitialized reports a second Initialize call. The pipeline is
// wired once per process; there is no reconfiguration path.
var ErrAlreadyInitialized = errors.New("logger already initialized")

var (
	globalMu sync.Mutex
	global   *Logger
)

// Initialize builds the process-wide facade from the configuration
// snapshot and installs it as the Default. Calling Initialize more than
// once is an explicit error rather than a silent reconfiguration.
func Initialize(cfg config.LoggingConfig, opts ...Option) (*Logger, error) {
	globalMu.Lock()
	defer globalMu.Unlock()

	if global != nil {
		return nil, ErrAlreadyInitialized
	}

	l, err := Setup(cfg, opts...)
	if err != nil {
		return nil, err
	}
	global = l
	return l, nil
}

// Default returns the facade installed by Initialize. Before Initialize
// runs it returns a console facade at INFO, so early log calls are never
// lost.
func Default() *Logger {
	globalMu.Lock()
	defer globalMu.Unlock()

	if global == nil {
		l, _ := Setup(config.LoggingConfig{Level: "INFO", Format: "console"})
		return l
	}
	return global
}

// resetGlobal clears the installed facade so tests can exercise
// initialization repeatedly.
func resetGlobal() {
	globalMu.Lock()
	global = nil
	globalMu.Unlock()
}
