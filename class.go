package winwin

import (
	"fmt"

	"github.com/raphlinus/win-win/win32"
)

// ClassConfig describes a window class to register. Name is required and
// must be unique on the host; everything else is optional. Resource handles
// are passed through to the host untouched.
type ClassConfig struct {
	// Name identifies the class to the host and to CreateWindow.
	Name string

	// Style is the bitwise OR of win32.CS_ class styles.
	Style uint32

	// Icon, IconSmall, Cursor, and Background decorate windows of the
	// class. The default WM_SETCURSOR handling applies Cursor; an
	// application drawing its own cursor per WM_MOUSEMOVE should leave it
	// zero to avoid the two handlers competing.
	Icon       win32.HICON
	IconSmall  win32.HICON
	Cursor     win32.HCURSOR
	Background win32.HBRUSH

	// MenuName is the resource name of the class menu, if any.
	MenuName string

	// WndExtra allocates extra bytes in each window of the class; dialogs
	// need win32.DLGWINDOWEXTRA.
	WndExtra int32

	// Instance namespaces the class. Zero means the executable's module.
	Instance win32.HINSTANCE
}

// Class identifies a window class on a particular host.
type Class struct {
	host Host
	name string
	atom uint16
}

// RegisterClass registers a window class with the host. Messages for every
// window created from the class are routed through this package's window
// procedure and on to the WindowProc given at window creation.
//
// The class stays registered for the life of the process. Its lifetime is
// most commonly that of the application, so no unregister call is offered.
func RegisterClass(h Host, cfg ClassConfig) (*Class, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("%w: empty class name", ErrClassRegistration)
	}
	atom, err := h.RegisterClass(cfg, rawProcFor(h))
	if err != nil {
		return nil, fmt.Errorf("%w: class %q: %w", ErrClassRegistration, cfg.Name, err)
	}
	tracer().Debug().Str("class", cfg.Name).Uint16("atom", atom).Msg("window class registered")
	return &Class{host: h, name: cfg.Name, atom: atom}, nil
}

// ClassFromName refers to a class registered elsewhere: a system class or
// one registered by other code. Windows created from such a class are
// driven by that class's own procedure, not by this package, so a
// WindowProc passed to CreateWindow is never called and stays retained for
// the life of the process. Create such windows through the Host directly
// unless the class was registered by this package on the same host.
func ClassFromName(h Host, name string) *Class {
	return &Class{host: h, name: name}
}

// Name returns the class name.
func (c *Class) Name() string {
	return c.name
}

// Atom returns the atom from registration, or zero for a ClassFromName
// reference.
func (c *Class) Atom() uint16 {
	return c.atom
}
