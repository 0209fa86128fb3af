// Package win32 holds the vocabulary of the native windowing subsystem:
// handle types, the message structure, and the message, style, and resource
// constants window procedures switch on.
//
// The values match the Win32 headers. The package itself is portable; it is
// shared by the user32-backed host and by the in-process host in wintest, so
// window procedures and tests written against it build on any platform.
package win32

// HWND is an opaque native window handle.
type HWND uintptr

// Handle types for the resources a window class or window can reference.
// They are opaque here; the bridge only passes them through.
type (
	HINSTANCE uintptr
	HICON     uintptr
	HCURSOR   uintptr
	HBRUSH    uintptr
	HMENU     uintptr
	HACCEL    uintptr
)

// Point is a position in screen coordinates.
type Point struct {
	X int32
	Y int32
}

// Message is a retrieved queue message, laid out like the native MSG
// structure so it can be passed to the native retrieval and dispatch calls
// directly.
type Message struct {
	HWnd    HWND
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      Point
}

// CreateStruct is the creation payload carried by the lparam of WM_NCCREATE
// and WM_CREATE, laid out like the native CREATESTRUCTW structure.
// CreateParams is the pointer-sized value given to the window-creation call.
type CreateStruct struct {
	CreateParams uintptr
	Instance     HINSTANCE
	Menu         HMENU
	Parent       HWND
	CY           int32
	CX           int32
	Y            int32
	X            int32
	Style        int32
	Name         *uint16
	Class        *uint16
	ExStyle      uint32
}
