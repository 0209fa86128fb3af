package winwin_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	winwin "github.com/raphlinus/win-win"
	"github.com/raphlinus/win-win/internal/handles"
	"github.com/raphlinus/win-win/wintest"
)

func TestCreateWindowNilProc(t *testing.T) {
	h := wintest.NewHost()
	cls := mustRegister(t, h, "nilproc")
	_, err := cls.CreateWindow(nil, winwin.WindowConfig{})
	require.ErrorIs(t, err, winwin.ErrWindowCreation)
}

func TestCreateWindowUnknownClass(t *testing.T) {
	h := wintest.NewHost()
	cls := winwin.ClassFromName(h, "never-registered")
	proc := &recordingProc{}

	before := handles.Count()
	_, err := cls.CreateWindow(proc, winwin.WindowConfig{})
	require.ErrorIs(t, err, winwin.ErrWindowCreation)

	// The host failed before any message was delivered; the failure path
	// releases the never-bound procedure.
	require.Empty(t, proc.events)
	require.Equal(t, 1, proc.closed)
	require.Equal(t, before, handles.Count())
}

func TestGeometryDefaults(t *testing.T) {
	h := wintest.NewHost()
	cls := mustRegister(t, h, "geom")
	hwnd, err := cls.CreateWindow(&recordingProc{}, winwin.WindowConfig{})
	require.NoError(t, err)

	info, ok := h.Info(hwnd)
	require.True(t, ok)
	require.Equal(t, winwin.CW_USEDEFAULT, info.X)
	require.Equal(t, winwin.CW_USEDEFAULT, info.Y)
	require.Equal(t, winwin.CW_USEDEFAULT, info.Width)
	require.Equal(t, winwin.CW_USEDEFAULT, info.Height)
}

func TestExplicitGeometryPreserved(t *testing.T) {
	h := wintest.NewHost()
	cls := mustRegister(t, h, "sized")
	hwnd, err := cls.CreateWindow(&recordingProc{}, winwin.WindowConfig{
		Title: "sized", X: 1, Y: 2, Width: 640, Height: 480,
	})
	require.NoError(t, err)

	info, ok := h.Info(hwnd)
	require.True(t, ok)
	require.Equal(t, "sized", info.Title)
	require.Equal(t, int32(1), info.X)
	require.Equal(t, int32(2), info.Y)
	require.Equal(t, int32(640), info.Width)
	require.Equal(t, int32(480), info.Height)
}

func TestDestroyTwice(t *testing.T) {
	h := wintest.NewHost()
	cls := mustRegister(t, h, "twodeaths")
	proc := &recordingProc{}
	hwnd, err := cls.CreateWindow(proc, winwin.WindowConfig{})
	require.NoError(t, err)

	require.NoError(t, winwin.Destroy(h, hwnd))
	require.Error(t, winwin.Destroy(h, hwnd))
	require.Equal(t, 1, proc.closed)
}
