package wintest

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	winwin "github.com/raphlinus/win-win"
	"github.com/raphlinus/win-win/win32"
)

// recorder is a raw window procedure that logs every message it receives
// and defers to the host's DefWindowProc unless handle claims the message.
type recorder struct {
	h      *Host
	msgs   []uint32
	handle func(hwnd win32.HWND, msg uint32, wparam, lparam uintptr) (uintptr, bool)
}

func (r *recorder) proc(hwnd win32.HWND, msg uint32, wparam, lparam uintptr) uintptr {
	r.msgs = append(r.msgs, msg)
	if r.handle != nil {
		if res, ok := r.handle(hwnd, msg, wparam, lparam); ok {
			return res
		}
	}
	return r.h.DefWindowProc(hwnd, msg, wparam, lparam)
}

func newRecorder(h *Host, name string, t *testing.T) *recorder {
	t.Helper()
	r := &recorder{h: h}
	_, err := h.RegisterClass(winwin.ClassConfig{Name: name}, r.proc)
	require.NoError(t, err)
	return r
}

func TestRegisterClassDuplicate(t *testing.T) {
	h := NewHost()
	r := &recorder{h: h}
	atom, err := h.RegisterClass(winwin.ClassConfig{Name: "dup"}, r.proc)
	require.NoError(t, err)
	require.NotZero(t, atom)
	_, err = h.RegisterClass(winwin.ClassConfig{Name: "dup"}, r.proc)
	require.Error(t, err)
}

func TestCreateUnregisteredClass(t *testing.T) {
	h := NewHost()
	_, err := h.CreateWindow("ghost", winwin.WindowConfig{}, 0)
	require.Error(t, err)
}

func TestCreationSequence(t *testing.T) {
	h := NewHost()
	r := newRecorder(h, "main", t)

	hwnd, err := h.CreateWindow("main", winwin.WindowConfig{
		Title: "demo", X: 10, Y: 20, Width: 300, Height: 200,
		Style: win32.WS_OVERLAPPEDWINDOW,
	}, 0)
	require.NoError(t, err)
	require.NotZero(t, hwnd)
	require.Equal(t, []uint32{win32.WM_NCCREATE, win32.WM_CREATE}, r.msgs)
	require.Equal(t, 1, h.WindowCount())

	info, ok := h.Info(hwnd)
	require.True(t, ok)
	require.Equal(t, "demo", info.Title)
	require.Equal(t, int32(300), info.Width)
	require.Equal(t, uint32(win32.WS_OVERLAPPEDWINDOW), info.Style)
}

func TestCreateStructCarriesParam(t *testing.T) {
	h := NewHost()
	r := newRecorder(h, "cs", t)

	var seen []uintptr
	r.handle = func(hwnd win32.HWND, msg uint32, wparam, lparam uintptr) (uintptr, bool) {
		switch msg {
		case win32.WM_NCCREATE, win32.WM_CREATE:
			cs := (*win32.CreateStruct)(unsafe.Pointer(lparam))
			seen = append(seen, cs.CreateParams)
		}
		return 0, false
	}

	_, err := h.CreateWindow("cs", winwin.WindowConfig{X: 5}, 42)
	require.NoError(t, err)
	require.Equal(t, []uintptr{42, 42}, seen)
}

func TestCreationAbortAtNCCreate(t *testing.T) {
	h := NewHost()
	r := newRecorder(h, "abortnc", t)
	r.handle = func(hwnd win32.HWND, msg uint32, wparam, lparam uintptr) (uintptr, bool) {
		if msg == win32.WM_NCCREATE {
			return 0, true
		}
		return 0, false
	}

	_, err := h.CreateWindow("abortnc", winwin.WindowConfig{}, 0)
	require.Error(t, err)
	// Nothing after the refused WM_NCCREATE, not even WM_NCDESTROY.
	require.Equal(t, []uint32{win32.WM_NCCREATE}, r.msgs)
	require.Zero(t, h.WindowCount())
}

func TestCreationAbortAtCreate(t *testing.T) {
	h := NewHost()
	r := newRecorder(h, "abortcr", t)
	r.handle = func(hwnd win32.HWND, msg uint32, wparam, lparam uintptr) (uintptr, bool) {
		if msg == win32.WM_CREATE {
			return ^uintptr(0), true
		}
		return 0, false
	}

	_, err := h.CreateWindow("abortcr", winwin.WindowConfig{}, 0)
	require.Error(t, err)
	// WM_NCDESTROY without WM_DESTROY.
	require.Equal(t, []uint32{win32.WM_NCCREATE, win32.WM_CREATE, win32.WM_NCDESTROY}, r.msgs)
	require.Zero(t, h.WindowCount())
}

func TestDestroySequence(t *testing.T) {
	h := NewHost()
	r := newRecorder(h, "gone", t)

	hwnd, err := h.CreateWindow("gone", winwin.WindowConfig{}, 0)
	require.NoError(t, err)
	require.NoError(t, h.DestroyWindow(hwnd))
	require.Equal(t, []uint32{
		win32.WM_NCCREATE, win32.WM_CREATE, win32.WM_DESTROY, win32.WM_NCDESTROY,
	}, r.msgs)
	require.Zero(t, h.WindowCount())

	// The handle is dead: sends deliver nothing and destroy fails.
	require.Zero(t, h.SendMessage(hwnd, win32.WM_USER, 0, 0))
	require.Error(t, h.DestroyWindow(hwnd))
}

func TestReentrantDestroyErrors(t *testing.T) {
	h := NewHost()
	r := newRecorder(h, "reent", t)

	var inner error
	innerCalled := false
	r.handle = func(hwnd win32.HWND, msg uint32, wparam, lparam uintptr) (uintptr, bool) {
		if msg == win32.WM_DESTROY {
			inner = h.DestroyWindow(hwnd)
			innerCalled = true
		}
		return 0, false
	}

	hwnd, err := h.CreateWindow("reent", winwin.WindowConfig{}, 0)
	require.NoError(t, err)
	require.NoError(t, h.DestroyWindow(hwnd))
	require.True(t, innerCalled)
	require.Error(t, inner)
	require.Zero(t, h.WindowCount())
}

func TestWindowDataRoundTrip(t *testing.T) {
	h := NewHost()
	newRecorder(h, "data", t)

	hwnd, err := h.CreateWindow("data", winwin.WindowConfig{}, 0)
	require.NoError(t, err)

	require.Zero(t, h.WindowData(hwnd))
	h.SetWindowData(hwnd, 0xbeef)
	require.Equal(t, uintptr(0xbeef), h.WindowData(hwnd))

	require.NoError(t, h.DestroyWindow(hwnd))
	require.Zero(t, h.WindowData(hwnd))

	// Writes to dead handles are dropped.
	h.SetWindowData(hwnd, 1)
	require.Zero(t, h.WindowData(hwnd))
}

func TestQueueOrderAndQuit(t *testing.T) {
	h := NewHost()
	r := newRecorder(h, "pump", t)

	hwnd, err := h.CreateWindow("pump", winwin.WindowConfig{}, 0)
	require.NoError(t, err)
	for i := uintptr(0); i < 3; i++ {
		require.NoError(t, h.PostMessage(hwnd, win32.WM_USER, i, 0))
	}
	h.PostQuitMessage(7)

	// Posted messages drain in order before the quit is reported.
	var msg win32.Message
	for i := uintptr(0); i < 3; i++ {
		res, err := h.GetMessage(&msg)
		require.NoError(t, err)
		require.Equal(t, int32(1), res)
		require.Equal(t, uint32(win32.WM_USER), msg.Message)
		require.Equal(t, i, msg.WParam)
		h.DispatchMessage(&msg)
	}
	res, err := h.GetMessage(&msg)
	require.NoError(t, err)
	require.Zero(t, res)
	require.Equal(t, uint32(win32.WM_QUIT), msg.Message)
	require.Equal(t, uintptr(7), msg.WParam)

	// Three WM_USER dispatches on top of the creation messages.
	require.Equal(t, []uint32{
		win32.WM_NCCREATE, win32.WM_CREATE,
		win32.WM_USER, win32.WM_USER, win32.WM_USER,
	}, r.msgs)
}

func TestGetMessageBlocksUntilPost(t *testing.T) {
	h := NewHost()
	done := make(chan struct{})
	go func() {
		defer close(done)
		var msg win32.Message
		res, err := h.GetMessage(&msg)
		if err != nil || res != 1 || msg.WParam != 9 {
			t.Errorf("GetMessage = (%d, %v), WParam %d", res, err, msg.WParam)
		}
	}()
	require.NoError(t, h.PostMessage(0, win32.WM_APP, 9, 0))
	<-done
}

func TestDefWindowProcClose(t *testing.T) {
	h := NewHost()
	r := newRecorder(h, "closing", t)

	hwnd, err := h.CreateWindow("closing", winwin.WindowConfig{}, 0)
	require.NoError(t, err)

	// Unhandled WM_CLOSE falls through to DefWindowProc, which destroys.
	h.SendMessage(hwnd, win32.WM_CLOSE, 0, 0)
	require.Zero(t, h.WindowCount())
	require.Equal(t, []uint32{
		win32.WM_NCCREATE, win32.WM_CREATE, win32.WM_CLOSE,
		win32.WM_DESTROY, win32.WM_NCDESTROY,
	}, r.msgs)
}

func TestShowWindowTracksVisibility(t *testing.T) {
	h := NewHost()
	newRecorder(h, "vis", t)

	hwnd, err := h.CreateWindow("vis", winwin.WindowConfig{}, 0)
	require.NoError(t, err)

	require.False(t, h.ShowWindow(hwnd, win32.SW_SHOWNORMAL))
	info, ok := h.Info(hwnd)
	require.True(t, ok)
	require.True(t, info.Visible)

	require.True(t, h.ShowWindow(hwnd, win32.SW_HIDE))
	info, _ = h.Info(hwnd)
	require.False(t, info.Visible)

	require.False(t, h.ShowWindow(win32.HWND(0x9999), win32.SW_SHOWNORMAL))
}

func TestDestroyDuringCreateFailsCreation(t *testing.T) {
	h := NewHost()
	r := newRecorder(h, "suicide", t)
	r.handle = func(hwnd win32.HWND, msg uint32, wparam, lparam uintptr) (uintptr, bool) {
		if msg == win32.WM_CREATE {
			require.NoError(t, h.DestroyWindow(hwnd))
			return 0, true
		}
		return 0, false
	}

	_, err := h.CreateWindow("suicide", winwin.WindowConfig{}, 0)
	require.Error(t, err)
	require.Zero(t, h.WindowCount())
	require.Equal(t, []uint32{
		win32.WM_NCCREATE, win32.WM_CREATE, win32.WM_DESTROY, win32.WM_NCDESTROY,
	}, r.msgs)
}
