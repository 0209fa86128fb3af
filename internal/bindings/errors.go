package bindings

import "errors"

// ErrNotSupported is returned by Load on platforms without the native
// windowing subsystem.
var ErrNotSupported = errors.New("winwin: native windowing requires windows on amd64 or arm64")

// ErrLibraryNotFound is returned when a required system library cannot be loaded.
var ErrLibraryNotFound = errors.New("winwin: native library not found")
