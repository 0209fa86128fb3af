package winwin

import (
	"github.com/raphlinus/win-win/win32"
)

// Run drives the message loop: retrieve, translate, dispatch, until the host
// reports quit. It returns the exit code passed to PostQuitMessage.
//
// accel, when nonzero, is an accelerator table consulted before translation;
// messages it consumes are not dispatched.
//
// Run must be called on the goroutine (locked to its OS thread) that created
// the windows it serves. It is deliberately plain: when a window is being
// resized or a modal dialog is open, the subsystem's own loop takes over, so
// waiting on anything besides the message queue here would be unreliable.
// To wake the loop from another goroutine, post a message.
func Run(h Host, accel win32.HACCEL) (int32, error) {
	var msg win32.Message
	for {
		res, err := h.GetMessage(&msg)
		if err != nil {
			return 0, err
		}
		if res == 0 {
			return int32(msg.WParam), nil
		}
		if accel != 0 && h.TranslateAccelerator(msg.HWnd, accel, &msg) {
			continue
		}
		h.TranslateMessage(&msg)
		h.DispatchMessage(&msg)
	}
}
