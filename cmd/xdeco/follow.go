package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/pikin-cock/xdeco/internal/config"
	"github.com/pikin-cock/xdeco/pointer"
	"github.com/pikin-cock/xdeco/x11"
)

func runFollow(args []string) int {
	fs := flag.NewFlagSet("follow", flag.ExitOnError)
	configPath := fs.String("config", "", "config file (default ~/.config/xdeco/config.yaml)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: xdeco follow [--config FILE]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Watches _NET_ACTIVE_WINDOW and warps the pointer to each newly")
		fmt.Fprintln(os.Stderr, "focused window. Also binds the highlight hotkey.")
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
	logger := newLogger(cfg.Log.Level)

	conn, err := x11.NewConnection()
	if err != nil {
		logger.Error("failed to connect to X11", "error", err)
		return 1
	}
	defer conn.Close()

	clients := x11.NewClientSet(conn)
	mode := cfg.PointerPosition()

	// Focus changes surface as _NET_ACTIVE_WINDOW property changes on the
	// root window.
	activeAtom, err := xprop.Atm(conn.XUtil, "_NET_ACTIVE_WINDOW")
	if err != nil {
		logger.Error("failed to intern _NET_ACTIVE_WINDOW", "error", err)
		return 1
	}
	if err := xwindow.New(conn.XUtil, conn.Root).Listen(xproto.EventMaskPropertyChange); err != nil {
		logger.Error("failed to listen on root window", "error", err)
		return 1
	}

	xevent.PropertyNotifyFun(func(xu *xgbutil.XUtil, ev xevent.PropertyNotifyEvent) {
		if ev.Atom != activeAtom {
			return
		}
		if err := pointer.Update(conn, clients, mode); err != nil {
			logger.Warn("pointer update failed", "error", err)
			return
		}
		logger.Debug("focus change handled")
	}).Connect(conn.XUtil, conn.Root)

	if cfg.Highlight.Hotkey != "" {
		err := keybind.KeyPressFun(func(xu *xgbutil.XUtil, ev xevent.KeyPressEvent) {
			// The flash sleeps for the configured duration; keep the
			// event loop responsive while it does.
			go func() {
				if err := flashHighlight(conn, clients, cfg, ""); err != nil {
					logger.Warn("highlight failed", "error", err)
				}
			}()
		}).Connect(conn.XUtil, conn.Root, cfg.Highlight.Hotkey, true)
		if err != nil {
			logger.Error("failed to bind highlight hotkey", "hotkey", cfg.Highlight.Hotkey, "error", err)
			return 1
		}
		logger.Info("highlight hotkey bound", "hotkey", cfg.Highlight.Hotkey)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("shutting down")
		xevent.Quit(conn.XUtil)
	}()

	logger.Info("focus-follow daemon started", "mode", cfg.Pointer.Mode)
	conn.EventLoop()
	return 0
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}
