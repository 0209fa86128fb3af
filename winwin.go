// Package winwin wires native windows to Go window procedures.
//
// The native windowing subsystem identifies windows by opaque handles and
// routes their messages through a single procedure registered per window
// class. This package owns that procedure. It keeps each window's WindowProc
// alive from the creation message to the final teardown message, holds an
// extra reference around every call so reentrant destruction cannot free the
// procedure mid-call, and falls back to the host's default handling for
// whatever a procedure leaves unhandled.
//
// On Windows the subsystem is user32, loaded at runtime without cgo; obtain
// it with Native. Portable programs and tests drive the same protocol
// against the in-process host in the wintest package.
//
// The win32 package carries the message and style vocabulary; the common
// names are re-exported here for convenience.
package winwin

import (
	"github.com/raphlinus/win-win/win32"
)

// Re-export common types for convenience
type (
	// HWND is an opaque native window handle.
	HWND = win32.HWND

	// Message is a retrieved queue message.
	Message = win32.Message
)

// Re-export common constants
const (
	// Lifecycle messages
	WM_NCCREATE  = win32.WM_NCCREATE
	WM_CREATE    = win32.WM_CREATE
	WM_CLOSE     = win32.WM_CLOSE
	WM_DESTROY   = win32.WM_DESTROY
	WM_NCDESTROY = win32.WM_NCDESTROY
	WM_QUIT      = win32.WM_QUIT

	// Common messages
	WM_PAINT     = win32.WM_PAINT
	WM_SIZE      = win32.WM_SIZE
	WM_KEYDOWN   = win32.WM_KEYDOWN
	WM_KEYUP     = win32.WM_KEYUP
	WM_CHAR      = win32.WM_CHAR
	WM_MOUSEMOVE = win32.WM_MOUSEMOVE
	WM_COMMAND   = win32.WM_COMMAND
	WM_USER      = win32.WM_USER
	WM_APP       = win32.WM_APP

	// Common styles
	WS_OVERLAPPEDWINDOW = win32.WS_OVERLAPPEDWINDOW
	WS_VISIBLE          = win32.WS_VISIBLE
	WS_CHILD            = win32.WS_CHILD

	// Show commands
	SW_SHOWNORMAL = win32.SW_SHOWNORMAL
	SW_SHOW       = win32.SW_SHOW
	SW_HIDE       = win32.SW_HIDE

	// CW_USEDEFAULT lets the system choose window geometry.
	CW_USEDEFAULT = win32.CW_USEDEFAULT
)
