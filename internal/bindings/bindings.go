//go:build windows && (amd64 || arm64)

// Package bindings loads the native windowing libraries (user32, gdi32) and
// registers function bindings using purego. No cgo is involved: libraries are
// loaded from the system directory at runtime and symbols are bound by name.
package bindings

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"golang.org/x/sys/windows"

	"github.com/raphlinus/win-win/win32"
)

// Library handles
var (
	libUser32 uintptr
	libGDI32  uintptr

	loaded   bool
	loadOnce sync.Once
	loadErr  error
)

// Function bindings. The window-long functions exist only in 64-bit user32,
// which is why the package is constrained to amd64 and arm64.
var (
	registerClassEx      func(wc *WndClassEx) uint16
	createWindowEx       func(exStyle uint32, className, windowName *uint16, style uint32, x, y, width, height int32, parent, menu, instance, param uintptr) uintptr
	defWindowProc        func(hwnd uintptr, msg uint32, wparam, lparam uintptr) uintptr
	destroyWindow        func(hwnd uintptr) int32
	getWindowLongPtr     func(hwnd uintptr, index int32) uintptr
	setWindowLongPtr     func(hwnd uintptr, index int32, value uintptr) uintptr
	getMessage           func(msg *win32.Message, hwnd uintptr, msgMin, msgMax uint32) int32
	translateMessage     func(msg *win32.Message) int32
	translateAccelerator func(hwnd, accel uintptr, msg *win32.Message) int32
	dispatchMessage      func(msg *win32.Message) uintptr
	postQuitMessage      func(exitCode int32)
	postMessage          func(hwnd uintptr, msg uint32, wparam, lparam uintptr) int32
	sendMessage          func(hwnd uintptr, msg uint32, wparam, lparam uintptr) uintptr
	showWindow           func(hwnd uintptr, cmd int32) int32
	loadCursor           func(instance uintptr, name uintptr) uintptr
	loadIcon             func(instance uintptr, name uintptr) uintptr
	createSolidBrush     func(color uint32) uintptr
)

// WndClassEx is the native WNDCLASSEXW structure. Size is filled in by
// RegisterClassEx.
type WndClassEx struct {
	Size       uint32
	Style      uint32
	WndProc    uintptr
	ClsExtra   int32
	WndExtra   int32
	Instance   uintptr
	Icon       uintptr
	Cursor     uintptr
	Background uintptr
	MenuName   *uint16
	ClassName  *uint16
	IconSm     uintptr
}

// IsLoaded returns true if the native libraries have been successfully loaded.
func IsLoaded() bool {
	return loaded
}

// Load loads the native libraries and registers all function bindings.
// It is safe to call multiple times; subsequent calls are no-ops.
func Load() error {
	loadOnce.Do(func() {
		loadErr = doLoad()
		if loadErr == nil {
			loaded = true
		}
	})
	return loadErr
}

func doLoad() error {
	var err error

	libUser32, err = loadSystemLibrary("user32.dll")
	if err != nil {
		return fmt.Errorf("loading user32: %w", err)
	}

	libGDI32, err = loadSystemLibrary("gdi32.dll")
	if err != nil {
		return fmt.Errorf("loading gdi32: %w", err)
	}

	purego.RegisterLibFunc(&registerClassEx, libUser32, "RegisterClassExW")
	purego.RegisterLibFunc(&createWindowEx, libUser32, "CreateWindowExW")
	purego.RegisterLibFunc(&defWindowProc, libUser32, "DefWindowProcW")
	purego.RegisterLibFunc(&destroyWindow, libUser32, "DestroyWindow")
	purego.RegisterLibFunc(&getWindowLongPtr, libUser32, "GetWindowLongPtrW")
	purego.RegisterLibFunc(&setWindowLongPtr, libUser32, "SetWindowLongPtrW")
	purego.RegisterLibFunc(&getMessage, libUser32, "GetMessageW")
	purego.RegisterLibFunc(&translateMessage, libUser32, "TranslateMessage")
	purego.RegisterLibFunc(&translateAccelerator, libUser32, "TranslateAcceleratorW")
	purego.RegisterLibFunc(&dispatchMessage, libUser32, "DispatchMessageW")
	purego.RegisterLibFunc(&postQuitMessage, libUser32, "PostQuitMessage")
	purego.RegisterLibFunc(&postMessage, libUser32, "PostMessageW")
	purego.RegisterLibFunc(&sendMessage, libUser32, "SendMessageW")
	purego.RegisterLibFunc(&showWindow, libUser32, "ShowWindow")
	purego.RegisterLibFunc(&loadCursor, libUser32, "LoadCursorW")
	purego.RegisterLibFunc(&loadIcon, libUser32, "LoadIconW")
	purego.RegisterLibFunc(&createSolidBrush, libGDI32, "CreateSolidBrush")

	return nil
}

// loadSystemLibrary loads a library from the system directory only, so the
// lookup cannot be shadowed by a DLL planted next to the executable.
func loadSystemLibrary(name string) (uintptr, error) {
	h, err := windows.LoadLibraryEx(name, 0, windows.LOAD_LIBRARY_SEARCH_SYSTEM32)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrLibraryNotFound, name, err)
	}
	return uintptr(h), nil
}

// RegisterClassEx registers a window class. Fills in wc.Size. Returns the
// class atom, or 0 on failure.
func RegisterClassEx(wc *WndClassEx) uint16 {
	wc.Size = uint32(unsafe.Sizeof(*wc))
	return registerClassEx(wc)
}

// CreateWindowEx creates a window. Returns the window handle, or 0 on
// failure. param is delivered back through the CreateStruct of WM_NCCREATE
// and WM_CREATE.
func CreateWindowEx(exStyle uint32, className, windowName *uint16, style uint32, x, y, width, height int32, parent, menu, instance, param uintptr) uintptr {
	return createWindowEx(exStyle, className, windowName, style, x, y, width, height, parent, menu, instance, param)
}

// DefWindowProc runs the default handling for a message.
func DefWindowProc(hwnd uintptr, msg uint32, wparam, lparam uintptr) uintptr {
	return defWindowProc(hwnd, msg, wparam, lparam)
}

// DestroyWindow destroys a window, delivering its teardown messages before
// returning. Returns false on failure.
func DestroyWindow(hwnd uintptr) bool {
	return destroyWindow(hwnd) != 0
}

// GetWindowLongPtr reads one of the window's data slots.
func GetWindowLongPtr(hwnd uintptr, index int32) uintptr {
	return getWindowLongPtr(hwnd, index)
}

// SetWindowLongPtr writes one of the window's data slots and returns the
// previous value.
func SetWindowLongPtr(hwnd uintptr, index int32, value uintptr) uintptr {
	return setWindowLongPtr(hwnd, index, value)
}

// GetMessage blocks until the next queue message. Returns 1 for a message,
// 0 for quit, -1 for an error.
func GetMessage(msg *win32.Message, hwnd uintptr, msgMin, msgMax uint32) int32 {
	return getMessage(msg, hwnd, msgMin, msgMax)
}

// TranslateMessage generates character messages from key messages.
func TranslateMessage(msg *win32.Message) bool {
	return translateMessage(msg) != 0
}

// TranslateAccelerator processes accelerator keys for menu commands.
// Returns true if the message was translated.
func TranslateAccelerator(hwnd, accel uintptr, msg *win32.Message) bool {
	return translateAccelerator(hwnd, accel, msg) != 0
}

// DispatchMessage routes a retrieved message to its window procedure.
func DispatchMessage(msg *win32.Message) uintptr {
	return dispatchMessage(msg)
}

// PostQuitMessage posts the quit indication that makes GetMessage return 0.
func PostQuitMessage(exitCode int32) {
	postQuitMessage(exitCode)
}

// PostMessage places a message on the queue without waiting. Returns false
// on failure.
func PostMessage(hwnd uintptr, msg uint32, wparam, lparam uintptr) bool {
	return postMessage(hwnd, msg, wparam, lparam) != 0
}

// SendMessage delivers a message synchronously and returns its result.
func SendMessage(hwnd uintptr, msg uint32, wparam, lparam uintptr) uintptr {
	return sendMessage(hwnd, msg, wparam, lparam)
}

// ShowWindow sets the window's show state; reports whether the window was
// previously visible.
func ShowWindow(hwnd uintptr, cmd int32) bool {
	return showWindow(hwnd, cmd) != 0
}

// LoadCursor loads a cursor resource; name may be a stock IDC_ id.
func LoadCursor(instance uintptr, name uintptr) uintptr {
	return loadCursor(instance, name)
}

// LoadIcon loads an icon resource; name may be a stock IDI_ id.
func LoadIcon(instance uintptr, name uintptr) uintptr {
	return loadIcon(instance, name)
}

// CreateSolidBrush creates a solid brush of the given 0x00BBGGRR color.
func CreateSolidBrush(color uint32) uintptr {
	return createSolidBrush(color)
}
