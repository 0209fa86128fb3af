package bindings

import (
	"errors"
	"runtime"
	"testing"
)

func TestLoadAvailability(t *testing.T) {
	native := runtime.GOOS == "windows" &&
		(runtime.GOARCH == "amd64" || runtime.GOARCH == "arm64")

	err := Load()

	if !native {
		if !errors.Is(err, ErrNotSupported) {
			t.Errorf("Load on %s/%s = %v, want ErrNotSupported",
				runtime.GOOS, runtime.GOARCH, err)
		}
		if IsLoaded() {
			t.Error("IsLoaded should be false when loading is unsupported")
		}
		return
	}

	// user32 and gdi32 ship with the OS, so loading should not fail on a
	// real Windows system.
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !IsLoaded() {
		t.Error("IsLoaded should be true after successful Load")
	}
}

func TestLoadIsIdempotent(t *testing.T) {
	first := Load()
	second := Load()
	if !errors.Is(second, first) && second != first {
		t.Errorf("repeated Load returned a different result: %v then %v", first, second)
	}
}
