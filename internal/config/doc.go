// Package config handles configuration loading, parsing, and validation
// from the environment and optional YAML overlays. It provides type-safe
// access to the settings every subsystem of the synthesis network reads
// while keeping configuration details separate from synthesis logic.
//
// Configuration is constructed exactly once per process: the first
// successful Load (usually through Get) produces a frozen snapshot that is
// shared by every later caller. There is no reload path; a changed
// environment requires a process restart.
package config
