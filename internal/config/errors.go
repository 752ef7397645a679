package config

import (
	"errors"
	"fmt"
)

// ErrOverlayNotFound reports that a requested overlay file does not exist.
// It never invalidates an already-constructed configuration snapshot.
var ErrOverlayNotFound = errors.New("overlay file not found")

// LoadError is the fatal configuration failure surfaced by Load and Get.
// There is no degraded-configuration mode: callers that receive a LoadError
// must not proceed.
type LoadError struct {
	// Stage names the phase that failed: "overlay", "domains",
	// "unmarshal", or "validate".
	Stage string
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load configuration: %s: %v", e.Stage, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
