package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pikin-cock/xdeco/deco"
	"github.com/pikin-cock/xdeco/internal/config"
	"github.com/pikin-cock/xdeco/x11"
)

func runHighlight(args []string) int {
	fs := flag.NewFlagSet("highlight", flag.ExitOnError)
	configPath := fs.String("config", "", "config file (default ~/.config/xdeco/config.yaml)")
	text := fs.String("text", "", "banner text (default: focused window title)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: xdeco highlight [--config FILE] [--text TEXT]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flashes a labeled banner over the focused window, then exits.")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	conn, err := x11.NewConnection()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to connect to X11: %v\n", err)
		return 1
	}
	defer conn.Close()

	if err := flashHighlight(conn, x11.NewClientSet(conn), cfg, *text); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// flashHighlight paints a labeled banner along the top edge of the focused
// window, keeps it up for the configured duration, and tears it down.
// An empty label means "use the focused window's title".
func flashHighlight(conn *x11.Connection, clients *x11.ClientSet, cfg *config.Config, label string) error {
	focused, ok := clients.Focused()
	if !ok {
		return fmt.Errorf("no focused window to highlight")
	}
	geom, err := conn.WindowGeometry(focused)
	if err != nil {
		return err
	}

	if label == "" {
		if name, err := clients.FocusedName(); err == nil {
			label = name
		}
	}

	font, err := deco.OpenFont(conn, cfg.Highlight.Font)
	if err != nil {
		return err
	}
	defer font.Close()

	align, err := cfg.AlignValue()
	if err != nil {
		return err
	}

	banner := x11.Rect{
		X:      geom.X,
		Y:      geom.Y,
		Width:  geom.Width,
		Height: font.Height() + 2*cfg.Highlight.BorderWidth + 4,
	}
	win, err := deco.CreateWindow(conn, banner, 0, cfg.Highlight.Border)
	if err != nil {
		return err
	}
	defer win.Destroy()

	win.Show()
	win.Raise()
	err = win.PaintAndWrite(font, banner.Width, banner.Height, cfg.Highlight.BorderWidth,
		cfg.Highlight.Background, cfg.Highlight.Border,
		cfg.Highlight.Text, cfg.Highlight.TextBackground,
		align, label)
	if err != nil {
		return err
	}

	time.Sleep(cfg.Highlight.Duration)
	return nil
}
