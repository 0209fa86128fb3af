// winprobe reports whether the native windowing subsystem is available on
// this machine and runs the window procedure protocol end to end against
// the in-process test host.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	winwin "github.com/raphlinus/win-win"
	"github.com/raphlinus/win-win/wintest"
)

var verbose = flag.Bool("v", false, "log lifecycle events to stderr")

const probeAck = 0xac4

type probeProc struct {
	closed int
}

func (p *probeProc) HandleMessage(hwnd winwin.HWND, msg uint32, wparam, lparam uintptr) (uintptr, bool) {
	if msg == winwin.WM_USER {
		return probeAck, true
	}
	return 0, false
}

func (p *probeProc) Close() error {
	p.closed++
	return nil
}

func main() {
	flag.Parse()

	if *verbose {
		winwin.SetLogger(zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.Out = os.Stderr
		})).Level(zerolog.TraceLevel))
	}

	if err := winwin.Init(); err != nil {
		fmt.Printf("native host: unavailable (%v)\n", err)
	} else {
		fmt.Println("native host: available")
	}

	if err := selfCheck(); err != nil {
		fmt.Printf("bridge self-check: FAIL (%v)\n", err)
		os.Exit(1)
	}
	fmt.Println("bridge self-check: ok")
}

// selfCheck runs a window through its whole life on the simulated host and
// verifies the procedure was dispatched to and released exactly once.
func selfCheck() error {
	h := wintest.NewHost()
	cls, err := winwin.RegisterClass(h, winwin.ClassConfig{Name: "winprobe"})
	if err != nil {
		return err
	}
	probe := &probeProc{}
	hwnd, err := cls.CreateWindow(probe, winwin.WindowConfig{Title: "probe"})
	if err != nil {
		return err
	}
	if res := h.SendMessage(hwnd, winwin.WM_USER, 0, 0); res != probeAck {
		return fmt.Errorf("WM_USER result %#x, want %#x", res, probeAck)
	}
	if err := winwin.Destroy(h, hwnd); err != nil {
		return err
	}
	if probe.closed != 1 {
		return fmt.Errorf("procedure closed %d times, want 1", probe.closed)
	}
	if n := h.WindowCount(); n != 0 {
		return fmt.Errorf("%d windows left after destroy", n)
	}
	return nil
}
