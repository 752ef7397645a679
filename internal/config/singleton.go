package config

import "sync"

var (
	globalMu sync.Mutex
	global   *Config
)

// Get returns the process-wide configuration snapshot, constructing it from
// the environment on first use. The first successful construction wins and
// is shared by every later caller for the remainder of the process; the
// environment is never re-read after that point. A failed construction is
// not cached, so a later caller (for example after the environment has been
// fixed) triggers a fresh attempt.
func Get() (*Config, error) {
	globalMu.Lock()
	defer globalMu.Unlock()

	if global != nil {
		return global, nil
	}

	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	global = cfg
	return global, nil
}

// reset clears the cached snapshot so tests can exercise first-call
// behavior repeatedly.
func reset() {
	globalMu.Lock()
	global = nil
	globalMu.Unlock()
}
