//go:build !windows || !(amd64 || arm64)

package bindings

// Stub implementations for platforms without the native windowing subsystem.
// The package compiles everywhere so that portable code (and the in-process
// test host) can build; only loading is reachable here.

// IsLoaded returns false; the native libraries never load on this platform.
func IsLoaded() bool {
	return false
}

// Load reports that the native windowing subsystem is unavailable.
func Load() error {
	return ErrNotSupported
}
