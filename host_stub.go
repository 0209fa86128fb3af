//go:build !windows || !(amd64 || arm64)

package winwin

// Init reports that the native windowing subsystem is unavailable on this
// platform. The wintest host works everywhere.
func Init() error {
	return ErrNotSupported
}

// IsLoaded returns false; there are no native libraries to load here.
func IsLoaded() bool {
	return false
}

// Native returns ErrNotSupported on this platform.
func Native() (Host, error) {
	return nil, ErrNotSupported
}
