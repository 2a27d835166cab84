package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/gtlib/config"
	"github.com/lixenwraith/gtlib/network"
	"github.com/lixenwraith/gtlib/terminal"
	"github.com/lixenwraith/gtlib/terminal/tui"
)

var (
	configFlag   = flag.String("config", "", "Path to TOML config file")
	remoteFlag   = flag.Bool("remote", false, "Draw into a window-manager window instead of the local terminal")
	windowIDFlag = flag.Uint("window", 1, "Window-manager window id (with -remote)")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the demo crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mGTDEMO CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *remoteFlag {
		cfg.Remote.Enabled = true
	}

	log, closer, err := config.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	sess := terminal.NewSession(terminal.WithLogger(log))

	var canvas tui.Canvas = sess
	if cfg.Remote.Enabled {
		rc, cleanup, err := dialRemote(cfg, uint32(*windowIDFlag), log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "window manager: %v\n", err)
			os.Exit(1)
		}
		defer cleanup()
		canvas = rc
	}

	err = terminal.Scoped(sess, func(s *terminal.Session) error {
		return run(s, canvas, cfg, log)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "gtdemo: %v\n", err)
		os.Exit(1)
	}
}

// dialRemote connects to the window manager and returns a canvas bound to windowID
func dialRemote(cfg config.Config, windowID uint32, log *slog.Logger) (*network.RemoteCanvas, func(), error) {
	nc := cfg.Network()
	tr, err := network.DialNATS(nc)
	if err != nil {
		return nil, nil, err
	}

	client := network.NewClient(tr,
		network.WithService(nc.Service),
		network.WithClientLogger(log),
	)
	if err := client.Connect(context.Background()); err != nil {
		tr.Close()
		return nil, nil, err
	}

	cleanup := func() {
		client.Disconnect()
		if err := tr.Close(); err != nil {
			log.Warn("close transport", "error", err)
		}
	}
	return network.NewRemoteCanvas(client, windowID, nc), cleanup, nil
}

// refresher is implemented by canvases that batch output until told to present
type refresher interface {
	Refresh()
}

func run(s *terminal.Session, canvas tui.Canvas, cfg config.Config, log *slog.Logger) error {
	win, err := tui.NewWindow(5, 3, 60, 15, "GTlib Demo")
	if err != nil {
		return err
	}
	defer win.Destroy()
	win.Show()

	r := tui.NewRenderer(canvas)
	present := func() {
		if p, ok := canvas.(refresher); ok {
			p.Refresh()
		}
	}

	win.NewLabel(2, 2, "Welcome to GTlib!", terminal.ColorGreen, terminal.ColorDefault, terminal.AttrBold)
	win.NewLabel(2, 4, "This is a TUI library demo", terminal.ColorWhite, terminal.ColorDefault, terminal.AttrNone)
	status := win.NewLabel(2, 13, "Arrows/Tab move, Enter clicks, Esc exits", terminal.ColorWhite, terminal.ColorDefault, terminal.AttrNone)

	clicks := 0
	win.NewButton(10, 7, 15, 3, "Click Me", func(w *tui.Widget, _ any) {
		clicks++
		status.SetText(fmt.Sprintf("Button clicked %d time(s)", clicks))
		log.Info("button activated", "text", w.Text(), "clicks", clicks)
	}, nil)
	win.NewTextbox(10, 11, 30, 3, "Type here...", 50)

	decorate := func(r *tui.Renderer, win *tui.Window) {
		r.DrawBorder(win, terminal.ColorCyan, terminal.ColorDefault, terminal.AttrBold)
		r.DrawTitle(win, terminal.ColorYellow, terminal.ColorDefault, terminal.AttrBold)
	}

	r.Refresh(win, decorate)
	present()

	for {
		ev, err := s.WaitEvent(cfg.Event.Timeout)
		if errors.Is(err, terminal.ErrTimeout) {
			continue
		}
		if err != nil {
			// Poll or read failed, or input hit EOF
			log.Error("wait event", "error", err)
			return err
		}

		if ev.Key == terminal.KeyEscape {
			return nil
		}

		if tui.Dispatch(win, ev) {
			// Text can shrink, so clear stale cells before redrawing
			r.Refresh(win, decorate)
			present()
		}
	}
}
