//go:build windows && (amd64 || arm64)

package winwin

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ebitengine/purego"
	"golang.org/x/sys/windows"

	"github.com/raphlinus/win-win/internal/bindings"
	"github.com/raphlinus/win-win/win32"
)

// Init loads the native windowing libraries. Native calls it automatically;
// calling it explicitly is a way to check for errors up front. Safe to call
// multiple times.
func Init() error {
	return bindings.Load()
}

// IsLoaded returns true if the native windowing libraries have been
// successfully loaded.
func IsLoaded() bool {
	return bindings.IsLoaded()
}

var native = &user32Host{}

// Native returns the Host backed by user32, loading the native libraries on
// first use. Every call returns the same Host.
func Native() (Host, error) {
	if err := bindings.Load(); err != nil {
		return nil, err
	}
	return native, nil
}

// user32Host drives the real windowing subsystem. The raw window procedure
// is materialized into a native callback exactly once: native callbacks are
// a finite process-wide resource and never released, and one entry point is
// all the slot protocol needs.
type user32Host struct {
	procOnce   sync.Once
	raw        RawWindowProc
	wndProcPtr uintptr
}

func (h *user32Host) wndProc(raw RawWindowProc) uintptr {
	h.procOnce.Do(func() {
		h.raw = raw
		h.wndProcPtr = purego.NewCallback(func(hwnd, msg, wparam, lparam uintptr) uintptr {
			return h.raw(win32.HWND(hwnd), uint32(msg), wparam, lparam)
		})
	})
	return h.wndProcPtr
}

func (h *user32Host) RegisterClass(cfg ClassConfig, wndProc RawWindowProc) (uint16, error) {
	className, err := windows.UTF16PtrFromString(cfg.Name)
	if err != nil {
		return 0, fmt.Errorf("class name: %w", err)
	}
	var menuName *uint16
	if cfg.MenuName != "" {
		menuName, err = windows.UTF16PtrFromString(cfg.MenuName)
		if err != nil {
			return 0, fmt.Errorf("menu name: %w", err)
		}
	}
	instance := uintptr(cfg.Instance)
	if instance == 0 {
		instance = exeInstance()
	}

	wc := bindings.WndClassEx{
		Style:      cfg.Style,
		WndProc:    h.wndProc(wndProc),
		WndExtra:   cfg.WndExtra,
		Instance:   instance,
		Icon:       uintptr(cfg.Icon),
		Cursor:     uintptr(cfg.Cursor),
		Background: uintptr(cfg.Background),
		MenuName:   menuName,
		ClassName:  className,
		IconSm:     uintptr(cfg.IconSmall),
	}
	atom := bindings.RegisterClassEx(&wc)
	if atom == 0 {
		return 0, errors.New("RegisterClassExW failed")
	}
	return atom, nil
}

func (h *user32Host) CreateWindow(className string, cfg WindowConfig, createParam uintptr) (win32.HWND, error) {
	cls, err := windows.UTF16PtrFromString(className)
	if err != nil {
		return 0, fmt.Errorf("class name: %w", err)
	}
	var title *uint16
	if cfg.Title != "" {
		title, err = windows.UTF16PtrFromString(cfg.Title)
		if err != nil {
			return 0, fmt.Errorf("title: %w", err)
		}
	}
	instance := uintptr(cfg.Instance)
	if instance == 0 {
		instance = exeInstance()
	}
	hwnd := bindings.CreateWindowEx(cfg.ExStyle, cls, title, cfg.Style,
		cfg.X, cfg.Y, cfg.Width, cfg.Height,
		uintptr(cfg.Parent), uintptr(cfg.Menu), instance, createParam)
	if hwnd == 0 {
		return 0, errors.New("CreateWindowExW failed")
	}
	return win32.HWND(hwnd), nil
}

func (h *user32Host) DestroyWindow(hwnd win32.HWND) error {
	if !bindings.DestroyWindow(uintptr(hwnd)) {
		return fmt.Errorf("DestroyWindow failed for %#x", uintptr(hwnd))
	}
	return nil
}

func (h *user32Host) DefWindowProc(hwnd win32.HWND, msg uint32, wparam, lparam uintptr) uintptr {
	return bindings.DefWindowProc(uintptr(hwnd), msg, wparam, lparam)
}

func (h *user32Host) WindowData(hwnd win32.HWND) uintptr {
	return bindings.GetWindowLongPtr(uintptr(hwnd), win32.GWLP_USERDATA)
}

func (h *user32Host) SetWindowData(hwnd win32.HWND, data uintptr) {
	bindings.SetWindowLongPtr(uintptr(hwnd), win32.GWLP_USERDATA, data)
}

func (h *user32Host) SendMessage(hwnd win32.HWND, msg uint32, wparam, lparam uintptr) uintptr {
	return bindings.SendMessage(uintptr(hwnd), msg, wparam, lparam)
}

func (h *user32Host) PostMessage(hwnd win32.HWND, msg uint32, wparam, lparam uintptr) error {
	if !bindings.PostMessage(uintptr(hwnd), msg, wparam, lparam) {
		return fmt.Errorf("PostMessageW failed for %#x", uintptr(hwnd))
	}
	return nil
}

func (h *user32Host) GetMessage(msg *win32.Message) (int32, error) {
	res := bindings.GetMessage(msg, 0, 0, 0)
	if res == -1 {
		return 0, errors.New("GetMessageW failed")
	}
	return res, nil
}

func (h *user32Host) TranslateMessage(msg *win32.Message) bool {
	return bindings.TranslateMessage(msg)
}

func (h *user32Host) TranslateAccelerator(hwnd win32.HWND, accel win32.HACCEL, msg *win32.Message) bool {
	return bindings.TranslateAccelerator(uintptr(hwnd), uintptr(accel), msg)
}

func (h *user32Host) DispatchMessage(msg *win32.Message) uintptr {
	return bindings.DispatchMessage(msg)
}

func (h *user32Host) PostQuitMessage(exitCode int32) {
	bindings.PostQuitMessage(exitCode)
}

func (h *user32Host) ShowWindow(hwnd win32.HWND, cmd int32) bool {
	return bindings.ShowWindow(uintptr(hwnd), cmd)
}

// exeInstance returns the executable's module handle, the instance used
// when a config leaves Instance zero.
func exeInstance() uintptr {
	var m windows.Handle
	err := windows.GetModuleHandleEx(windows.GET_MODULE_HANDLE_EX_FLAG_UNCHANGED_REFCOUNT, nil, &m)
	if err != nil {
		return 0
	}
	return uintptr(m)
}

// LoadIcon loads an icon resource; name may be a stock id such as
// win32.IDI_APPLICATION (with instance zero).
func LoadIcon(instance win32.HINSTANCE, name uintptr) (win32.HICON, error) {
	if err := bindings.Load(); err != nil {
		return 0, err
	}
	icon := bindings.LoadIcon(uintptr(instance), name)
	if icon == 0 {
		return 0, fmt.Errorf("LoadIconW failed for %#x", name)
	}
	return win32.HICON(icon), nil
}

// LoadCursor loads a cursor resource; name may be a stock id such as
// win32.IDC_ARROW (with instance zero).
func LoadCursor(instance win32.HINSTANCE, name uintptr) (win32.HCURSOR, error) {
	if err := bindings.Load(); err != nil {
		return 0, err
	}
	cursor := bindings.LoadCursor(uintptr(instance), name)
	if cursor == 0 {
		return 0, fmt.Errorf("LoadCursorW failed for %#x", name)
	}
	return win32.HCURSOR(cursor), nil
}

// CreateSolidBrush creates a solid brush of the given 0x00BBGGRR color, for
// use as a class background.
func CreateSolidBrush(color uint32) (win32.HBRUSH, error) {
	if err := bindings.Load(); err != nil {
		return 0, err
	}
	brush := bindings.CreateSolidBrush(color)
	if brush == 0 {
		return 0, errors.New("CreateSolidBrush failed")
	}
	return win32.HBRUSH(brush), nil
}
