package winwin_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	winwin "github.com/raphlinus/win-win"
	"github.com/raphlinus/win-win/wintest"
)

func TestRunReturnsExitCode(t *testing.T) {
	h := wintest.NewHost()
	cls := mustRegister(t, h, "looped")
	proc := &recordingProc{}
	proc.onMessage = func(hwnd winwin.HWND, msg uint32, wparam, lparam uintptr) (uintptr, bool) {
		if msg == winwin.WM_APP {
			h.PostQuitMessage(42)
			return 0, true
		}
		return 0, false
	}
	hwnd, err := cls.CreateWindow(proc, winwin.WindowConfig{})
	require.NoError(t, err)
	require.NoError(t, h.PostMessage(hwnd, winwin.WM_APP, 0, 0))

	code, err := winwin.Run(h, 0)
	require.NoError(t, err)
	require.Equal(t, int32(42), code)
	require.Contains(t, proc.events, uint32(winwin.WM_APP))
}

func TestRunDrainsQueueBeforeQuit(t *testing.T) {
	h := wintest.NewHost()
	cls := mustRegister(t, h, "drain")
	var got []uintptr
	proc := &recordingProc{}
	proc.onMessage = func(hwnd winwin.HWND, msg uint32, wparam, lparam uintptr) (uintptr, bool) {
		if msg == winwin.WM_USER {
			got = append(got, wparam)
			return 0, true
		}
		return 0, false
	}
	hwnd, err := cls.CreateWindow(proc, winwin.WindowConfig{})
	require.NoError(t, err)
	require.NoError(t, h.PostMessage(hwnd, winwin.WM_USER, 1, 0))
	require.NoError(t, h.PostMessage(hwnd, winwin.WM_USER, 2, 0))
	h.PostQuitMessage(5)

	code, err := winwin.Run(h, 0)
	require.NoError(t, err)
	require.Equal(t, int32(5), code)
	require.Equal(t, []uintptr{1, 2}, got)
}
