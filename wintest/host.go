// Package wintest provides an in-process winwin.Host that works on every
// platform. It simulates the slice of the native windowing subsystem the
// bridge depends on: synchronous message delivery, the creation and
// teardown sequences, the per-window data slot, and a posted-message queue.
// This module's own tests run against it, and applications can use it to
// exercise WindowProc implementations without a display.
//
// The simulation follows the native contract documented on winwin.Host,
// including the asymmetric abort rules: a window procedure returning 0 from
// WM_NCCREATE aborts creation with no further messages, and returning -1
// from WM_CREATE aborts it after WM_NCDESTROY alone.
package wintest

import (
	"fmt"
	"sync"
	"unsafe"

	winwin "github.com/raphlinus/win-win"
	"github.com/raphlinus/win-win/win32"
)

type class struct {
	cfg     winwin.ClassConfig
	wndProc winwin.RawWindowProc
	atom    uint16
}

type window struct {
	class      *class
	title      string
	x, y       int32
	width      int32
	height     int32
	style      uint32
	exStyle    uint32
	data       uintptr
	visible    bool
	destroying bool

	// cs pins the creation parameters for the duration of the creation
	// messages, whose lparam points into it.
	cs *win32.CreateStruct
}

// Host is an in-process implementation of winwin.Host. The zero value is
// not usable; call NewHost.
//
// Like the native subsystem, delivery is synchronous: CreateWindow,
// DestroyWindow, and SendMessage run the class's window procedure before
// returning, including nested runs when the procedure itself sends or
// destroys. Host methods are safe for concurrent use.
type Host struct {
	mu       sync.Mutex
	cond     *sync.Cond
	classes  map[string]*class
	windows  map[win32.HWND]*window
	nextAtom uint16
	nextHWND win32.HWND
	queue    []win32.Message
	quit     bool
	quitCode int32
	defCalls int
}

var _ winwin.Host = (*Host)(nil)

// NewHost returns an empty simulated windowing subsystem.
func NewHost() *Host {
	h := &Host{
		classes:  make(map[string]*class),
		windows:  make(map[win32.HWND]*window),
		nextAtom: 0xc000,
		nextHWND: 1,
	}
	h.cond = sync.NewCond(&h.mu)
	return h
}

// route delivers one message to hwnd's window procedure, outside the host
// lock so the procedure can call back in. Unknown handles deliver nothing
// and return 0.
func (h *Host) route(hwnd win32.HWND, msg uint32, wparam, lparam uintptr) uintptr {
	h.mu.Lock()
	w, ok := h.windows[hwnd]
	if !ok {
		h.mu.Unlock()
		return 0
	}
	proc := w.class.wndProc
	h.mu.Unlock()
	return proc(hwnd, msg, wparam, lparam)
}

func (h *Host) RegisterClass(cfg winwin.ClassConfig, wndProc winwin.RawWindowProc) (uint16, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.classes[cfg.Name]; ok {
		return 0, fmt.Errorf("wintest: class %q already registered", cfg.Name)
	}
	atom := h.nextAtom
	h.nextAtom++
	h.classes[cfg.Name] = &class{cfg: cfg, wndProc: wndProc, atom: atom}
	return atom, nil
}

func (h *Host) CreateWindow(className string, cfg winwin.WindowConfig, createParam uintptr) (win32.HWND, error) {
	h.mu.Lock()
	cls, ok := h.classes[className]
	if !ok {
		h.mu.Unlock()
		return 0, fmt.Errorf("wintest: class %q not registered", className)
	}
	hwnd := h.nextHWND
	h.nextHWND++
	cs := &win32.CreateStruct{
		CreateParams: createParam,
		Instance:     cfg.Instance,
		Menu:         cfg.Menu,
		Parent:       cfg.Parent,
		CY:           cfg.Height,
		CX:           cfg.Width,
		Y:            cfg.Y,
		X:            cfg.X,
		Style:        int32(cfg.Style),
		ExStyle:      cfg.ExStyle,
	}
	h.windows[hwnd] = &window{
		class:   cls,
		title:   cfg.Title,
		x:       cfg.X,
		y:       cfg.Y,
		width:   cfg.Width,
		height:  cfg.Height,
		style:   cfg.Style,
		exStyle: cfg.ExStyle,
		cs:      cs,
	}
	h.mu.Unlock()

	lparam := uintptr(unsafe.Pointer(cs))
	if h.route(hwnd, win32.WM_NCCREATE, 0, lparam) == 0 {
		h.remove(hwnd)
		return 0, fmt.Errorf("wintest: WM_NCCREATE aborted creation of class %q window", className)
	}
	if h.route(hwnd, win32.WM_CREATE, 0, lparam) == ^uintptr(0) {
		h.route(hwnd, win32.WM_NCDESTROY, 0, 0)
		h.remove(hwnd)
		return 0, fmt.Errorf("wintest: WM_CREATE aborted creation of class %q window", className)
	}

	h.mu.Lock()
	w, alive := h.windows[hwnd]
	if alive {
		w.cs = nil
	}
	h.mu.Unlock()
	if !alive {
		// The procedure destroyed its own window before creation
		// finished.
		return 0, fmt.Errorf("wintest: class %q window destroyed during creation", className)
	}
	return hwnd, nil
}

func (h *Host) remove(hwnd win32.HWND) {
	h.mu.Lock()
	delete(h.windows, hwnd)
	h.mu.Unlock()
}

func (h *Host) DestroyWindow(hwnd win32.HWND) error {
	h.mu.Lock()
	w, ok := h.windows[hwnd]
	if !ok {
		h.mu.Unlock()
		return fmt.Errorf("wintest: no window %#x", uintptr(hwnd))
	}
	if w.destroying {
		h.mu.Unlock()
		return fmt.Errorf("wintest: window %#x is already being destroyed", uintptr(hwnd))
	}
	w.destroying = true
	h.mu.Unlock()

	h.route(hwnd, win32.WM_DESTROY, 0, 0)
	h.route(hwnd, win32.WM_NCDESTROY, 0, 0)
	h.remove(hwnd)
	return nil
}

// DefWindowProc mimics the default handling the bridge relies on: WM_NCCREATE
// approves creation and WM_CLOSE destroys the window. Everything else
// returns 0.
func (h *Host) DefWindowProc(hwnd win32.HWND, msg uint32, wparam, lparam uintptr) uintptr {
	h.mu.Lock()
	h.defCalls++
	h.mu.Unlock()
	switch msg {
	case win32.WM_NCCREATE:
		return 1
	case win32.WM_CLOSE:
		// Matches the native default: closing destroys. The window may
		// already be tearing down, in which case this is a no-op.
		_ = h.DestroyWindow(hwnd)
		return 0
	default:
		return 0
	}
}

func (h *Host) WindowData(hwnd win32.HWND) uintptr {
	h.mu.Lock()
	defer h.mu.Unlock()
	w, ok := h.windows[hwnd]
	if !ok {
		return 0
	}
	return w.data
}

func (h *Host) SetWindowData(hwnd win32.HWND, data uintptr) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if w, ok := h.windows[hwnd]; ok {
		w.data = data
	}
}

func (h *Host) SendMessage(hwnd win32.HWND, msg uint32, wparam, lparam uintptr) uintptr {
	return h.route(hwnd, msg, wparam, lparam)
}

func (h *Host) PostMessage(hwnd win32.HWND, msg uint32, wparam, lparam uintptr) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.queue = append(h.queue, win32.Message{
		HWnd:    hwnd,
		Message: msg,
		WParam:  wparam,
		LParam:  lparam,
	})
	h.cond.Signal()
	return nil
}

func (h *Host) GetMessage(msg *win32.Message) (int32, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for len(h.queue) == 0 && !h.quit {
		h.cond.Wait()
	}
	if len(h.queue) > 0 {
		*msg = h.queue[0]
		h.queue = h.queue[1:]
		return 1, nil
	}
	// The quit request is consumed, as natively: a later GetMessage call
	// blocks again.
	h.quit = false
	*msg = win32.Message{Message: win32.WM_QUIT, WParam: uintptr(h.quitCode)}
	return 0, nil
}

// TranslateMessage is a no-op; the simulation has no keyboard state.
func (h *Host) TranslateMessage(msg *win32.Message) bool {
	return false
}

// TranslateAccelerator is a no-op; the simulation has no accelerator
// tables.
func (h *Host) TranslateAccelerator(hwnd win32.HWND, accel win32.HACCEL, msg *win32.Message) bool {
	return false
}

func (h *Host) DispatchMessage(msg *win32.Message) uintptr {
	return h.route(msg.HWnd, msg.Message, msg.WParam, msg.LParam)
}

func (h *Host) PostQuitMessage(exitCode int32) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.quit = true
	h.quitCode = exitCode
	h.cond.Broadcast()
}

func (h *Host) ShowWindow(hwnd win32.HWND, cmd int32) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	w, ok := h.windows[hwnd]
	if !ok {
		return false
	}
	prev := w.visible
	w.visible = cmd != win32.SW_HIDE
	return prev
}

// WindowInfo is a snapshot of a live simulated window, for assertions.
type WindowInfo struct {
	Title   string
	X       int32
	Y       int32
	Width   int32
	Height  int32
	Style   uint32
	ExStyle uint32
	Visible bool
}

// Info returns a snapshot of hwnd, or false if no such window is live.
func (h *Host) Info(hwnd win32.HWND) (WindowInfo, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	w, ok := h.windows[hwnd]
	if !ok {
		return WindowInfo{}, false
	}
	return WindowInfo{
		Title:   w.title,
		X:       w.x,
		Y:       w.y,
		Width:   w.width,
		Height:  w.height,
		Style:   w.style,
		ExStyle: w.exStyle,
		Visible: w.visible,
	}, true
}

// WindowCount returns the number of live windows.
func (h *Host) WindowCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.windows)
}

// DefWindowProcCalls returns how many messages have fallen through to
// DefWindowProc.
func (h *Host) DefWindowProcCalls() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.defCalls
}
