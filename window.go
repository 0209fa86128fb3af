package winwin

import (
	"fmt"

	"github.com/raphlinus/win-win/internal/handles"
	"github.com/raphlinus/win-win/win32"
)

// WindowConfig describes a window to create. The zero value is usable: an
// unnamed, unstyled window with system-chosen position and size.
type WindowConfig struct {
	// Title is the window name.
	Title string

	// Style is the bitwise OR of win32.WS_ window styles, ExStyle of the
	// win32.WS_EX_ extended styles.
	Style   uint32
	ExStyle uint32

	// X, Y, Width, and Height position the window in raw pixels. Zero
	// selects win32.CW_USEDEFAULT for that field, letting the system
	// choose.
	X      int32
	Y      int32
	Width  int32
	Height int32

	// Parent makes the window a child or owned window.
	Parent win32.HWND

	// Menu is the window menu, or for a child window its control id.
	Menu win32.HMENU

	// Instance is the owning module. Zero means the executable's module.
	Instance win32.HINSTANCE
}

func (cfg WindowConfig) geometry() (x, y, width, height int32) {
	x, y, width, height = cfg.X, cfg.Y, cfg.Width, cfg.Height
	if x == 0 {
		x = win32.CW_USEDEFAULT
	}
	if y == 0 {
		y = win32.CW_USEDEFAULT
	}
	if width == 0 {
		width = win32.CW_USEDEFAULT
	}
	if height == 0 {
		height = win32.CW_USEDEFAULT
	}
	return x, y, width, height
}

// CreateWindow creates a window of class c, owned by proc.
//
// Ownership of proc transfers to the window: the creation messages bind it
// to the window's data slot, every message the window receives is dispatched
// to it, and the final teardown message releases it. On failure the
// reference is released before the error is returned, so a proc implementing
// io.Closer is closed exactly once either way.
//
// The returned handle is not otherwise managed. Destroying the window
// (winwin.Destroy, the default WM_CLOSE handling, a parent's destruction)
// is what ends proc's life.
func (c *Class) CreateWindow(proc WindowProc, cfg WindowConfig) (win32.HWND, error) {
	if proc == nil {
		return 0, fmt.Errorf("%w: nil window procedure", ErrWindowCreation)
	}
	cfg.X, cfg.Y, cfg.Width, cfg.Height = cfg.geometry()
	id := handles.Register(proc)
	hwnd, err := c.host.CreateWindow(c.name, cfg, id)
	if err != nil {
		// No-op if a creation-time teardown already consumed the
		// transferred reference.
		releaseProc(id)
		tracer().Error().Str("class", c.name).Err(err).Msg("window creation failed")
		return 0, fmt.Errorf("%w: class %q: %w", ErrWindowCreation, c.name, err)
	}
	tracer().Debug().
		Str("class", c.name).
		Uint64("hwnd", uint64(hwnd)).
		Str("title", cfg.Title).
		Msg("window created")
	return hwnd, nil
}

// Destroy destroys hwnd, delivering its teardown messages (and releasing its
// WindowProc) before returning. It must be called from the window's
// goroutine; from any other, post a message and destroy from the procedure.
func Destroy(h Host, hwnd win32.HWND) error {
	return h.DestroyWindow(hwnd)
}
