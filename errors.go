package winwin

import "errors"

// Common errors. Operations wrap these, so callers can classify a failure
// with errors.Is while still seeing which class or window it came from.
var (
	// ErrNotSupported indicates the native windowing subsystem does not
	// exist on this platform. The wintest host works everywhere.
	ErrNotSupported = errors.New("winwin: native windowing is not supported on this platform")

	// ErrClassRegistration indicates the host rejected a window class
	// registration (duplicate name, invalid configuration). No window
	// procedure is retained when registration fails.
	ErrClassRegistration = errors.New("winwin: window class registration failed")

	// ErrWindowCreation indicates window creation failed. The window
	// procedure passed to CreateWindow has been released by the time the
	// error is returned.
	ErrWindowCreation = errors.New("winwin: window creation failed")
)
