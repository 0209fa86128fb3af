package winwin

import (
	"io"
	"unsafe"

	"github.com/raphlinus/win-win/internal/handles"
	"github.com/raphlinus/win-win/win32"
)

// WindowProc receives a window's messages.
//
// HandleMessage returns the message result and true when it handles a
// message. Returning false hands the message to the host's default
// procedure, whose result is returned to the sender instead.
//
// A procedure is only called from the goroutine pumping its window's
// messages, so no synchronization is required for state it alone touches.
// Calls can be reentrant, however: handling a message may synchronously
// produce more messages for the same window (SendMessage, DestroyWindow, a
// modal dialog), and HandleMessage runs again, nested, before the outer call
// returns. The receiver is kept alive for the duration of every call,
// including outer frames still on the stack when the window is destroyed
// from inside one of them.
//
// A WindowProc that also implements io.Closer is closed exactly once, after
// the last message (and every nested dispatch) has completed. The Close
// error is logged, not returned; there is no caller left to receive it.
type WindowProc interface {
	HandleMessage(hwnd win32.HWND, msg uint32, wparam, lparam uintptr) (result uintptr, handled bool)
}

// WindowProcFunc adapts a function to the WindowProc interface.
type WindowProcFunc func(hwnd win32.HWND, msg uint32, wparam, lparam uintptr) (uintptr, bool)

// HandleMessage calls f.
func (f WindowProcFunc) HandleMessage(hwnd win32.HWND, msg uint32, wparam, lparam uintptr) (uintptr, bool) {
	return f(hwnd, msg, wparam, lparam)
}

// rawProcFor returns the raw procedure registered for every class on h.
// All classes share one dispatch; the per-window slot tells windows apart.
func rawProcFor(h Host) RawWindowProc {
	return func(hwnd win32.HWND, msg uint32, wparam, lparam uintptr) uintptr {
		return dispatch(h, hwnd, msg, wparam, lparam)
	}
}

// dispatch is the window procedure behind every class registered through
// this package. It binds the per-window slot on WM_CREATE, routes messages
// to the WindowProc named by the slot, clears the slot and drops its
// reference on WM_NCDESTROY, and falls back to the host's default handling
// for anything unbound or unhandled.
func dispatch(h Host, hwnd win32.HWND, msg uint32, wparam, lparam uintptr) uintptr {
	if msg == win32.WM_CREATE {
		cs := (*win32.CreateStruct)(unsafe.Pointer(lparam))
		if cs.CreateParams != 0 {
			h.SetWindowData(hwnd, cs.CreateParams)
			tracer().Trace().
				Uint64("hwnd", uint64(hwnd)).
				Uint64("proc", uint64(cs.CreateParams)).
				Msg("window procedure bound")
		}
	}
	id := h.WindowData(hwnd)

	var result uintptr
	var handled bool
	if id != 0 {
		if v := handles.Retain(id); v != nil {
			// The extra reference covers a reentrant WM_NCDESTROY, as
			// happens when the procedure itself calls DestroyWindow.
			result, handled = v.(WindowProc).HandleMessage(hwnd, msg, wparam, lparam)
			releaseProc(id)
		}
	}

	if msg == win32.WM_NCDESTROY && id != 0 {
		h.SetWindowData(hwnd, 0)
		tracer().Trace().
			Uint64("hwnd", uint64(hwnd)).
			Uint64("proc", uint64(id)).
			Msg("window procedure unbound")
		releaseProc(id)
	}

	if !handled {
		return h.DefWindowProc(hwnd, msg, wparam, lparam)
	}
	return result
}

// releaseProc drops one reference to the window procedure behind id. The
// final release removes it from the registry and, if it implements
// io.Closer, closes it.
func releaseProc(id uintptr) {
	v, removed := handles.Release(id)
	if !removed {
		return
	}
	tracer().Trace().Uint64("proc", uint64(id)).Msg("window procedure released")
	if c, ok := v.(io.Closer); ok {
		if err := c.Close(); err != nil {
			tracer().Warn().Err(err).Uint64("proc", uint64(id)).Msg("window procedure close")
		}
	}
}
