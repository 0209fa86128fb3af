package winwin

import (
	"github.com/raphlinus/win-win/win32"
)

// RawWindowProc is the fixed-signature procedure a Host routes window
// messages through. It is supplied by this package when a class is
// registered; applications implement WindowProc instead.
type RawWindowProc func(hwnd win32.HWND, msg uint32, wparam, lparam uintptr) uintptr

// Host is the native windowing surface the bridge drives. Two
// implementations exist: the user32-backed host returned by Native on
// Windows, and the in-process wintest.Host, which works everywhere and is
// what this module's own tests run against.
//
// Message delivery is synchronous and on the calling goroutine: creating,
// destroying, or sending to a window runs the class's registered procedure
// (including nested, reentrant runs) before the call returns. A Host must
// honor the native contract the bridge depends on:
//
//   - Window creation delivers WM_NCCREATE and then WM_CREATE before
//     CreateWindow returns. Both carry a win32.CreateStruct through lparam
//     whose CreateParams field is the createParam given to CreateWindow.
//     A zero result from WM_NCCREATE aborts creation with no further
//     messages; a -1 result from WM_CREATE aborts it after delivering
//     WM_NCDESTROY (without WM_DESTROY).
//   - DestroyWindow delivers WM_DESTROY and then WM_NCDESTROY before it
//     returns. WM_NCDESTROY is the last message the window receives; the
//     handle is dead afterwards.
//   - SendMessage to an unknown or destroyed handle delivers nothing and
//     returns 0.
//   - WindowData and SetWindowData access a pointer-sized per-window slot
//     that reads zero until first written and disappears with the window.
//   - GetMessage blocks until a message or a quit is available. After
//     PostQuitMessage it returns 0 once the queue has drained, with the
//     exit code in the message's WParam.
//
// The Host methods themselves are safe for concurrent use, but windows
// belong to the goroutine (thread) that created them: create, send, and
// pump from one goroutine per window, as the native subsystem requires.
type Host interface {
	// RegisterClass registers a window class whose messages are routed to
	// wndProc and returns its atom. The bridge passes the same logical
	// procedure for every class it registers, so a host may materialize it
	// natively once and share it.
	RegisterClass(cfg ClassConfig, wndProc RawWindowProc) (uint16, error)

	// CreateWindow creates a window of a registered class, delivering the
	// creation messages before returning. createParam rides the
	// CreateStruct into those messages. Geometry is taken as given;
	// CW_USEDEFAULT substitution happens a layer up, in
	// (*Class).CreateWindow.
	CreateWindow(className string, cfg WindowConfig, createParam uintptr) (win32.HWND, error)

	// DestroyWindow destroys a window, delivering the teardown messages
	// before returning.
	DestroyWindow(hwnd win32.HWND) error

	// DefWindowProc runs the subsystem's default handling for a message.
	DefWindowProc(hwnd win32.HWND, msg uint32, wparam, lparam uintptr) uintptr

	// WindowData reads the per-window data slot.
	WindowData(hwnd win32.HWND) uintptr

	// SetWindowData writes the per-window data slot.
	SetWindowData(hwnd win32.HWND, data uintptr)

	// SendMessage delivers a message synchronously and returns its result.
	SendMessage(hwnd win32.HWND, msg uint32, wparam, lparam uintptr) uintptr

	// PostMessage queues a message for later retrieval by GetMessage.
	// hwnd zero posts a thread message with no window.
	PostMessage(hwnd win32.HWND, msg uint32, wparam, lparam uintptr) error

	// GetMessage blocks for the next queued message. Returns 1 when msg
	// holds a message, 0 on quit, -1 never (errors are returned).
	GetMessage(msg *win32.Message) (int32, error)

	// TranslateMessage performs keyboard translation on a retrieved
	// message; reports whether a character message was generated.
	TranslateMessage(msg *win32.Message) bool

	// TranslateAccelerator consults an accelerator table for a retrieved
	// message; reports whether the message was consumed.
	TranslateAccelerator(hwnd win32.HWND, accel win32.HACCEL, msg *win32.Message) bool

	// DispatchMessage routes a retrieved message to its window's
	// procedure and returns the procedure's result.
	DispatchMessage(msg *win32.Message) uintptr

	// PostQuitMessage makes GetMessage return 0 once the queue drains.
	PostQuitMessage(exitCode int32)

	// ShowWindow sets the window's show state; reports whether the window
	// was previously visible.
	ShowWindow(hwnd win32.HWND, cmd int32) bool
}
