package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/1broseidon/paneldock/internal/x11"
)

func runDemo(args []string) int {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: paneldock demo [--path PATH] [--hold SECONDS]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Open every configured dialog preset as a real X11 window, print the")
		fmt.Fprintln(os.Stderr, "position chosen for each, then keep them up until interrupted (or the")
		fmt.Fprintln(os.Stderr, "hold duration elapses).")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	path := fs.String("path", "", "Config file path (default: ~/.config/paneldock/config.yaml)")
	hold := fs.Int("hold", 0, "Close the dialogs after this many seconds (0 = wait for Ctrl+C)")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "demo takes no arguments")
		fs.Usage()
		return 2
	}

	cfg, err := loadConfig(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	names := cfg.DialogNames()
	if len(names) == 0 {
		fmt.Fprintln(os.Stderr, "no dialog presets configured")
		return 1
	}

	conn, registry, cleanup, err := buildRuntime(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer cleanup()

	display := x11.NewHost(conn).DisplaySize()
	log.Printf("Connected to display (work area %dx%d)", display.Width, display.Height)

	for _, name := range names {
		preset := cfg.Dialogs[name]
		win, err := x11.NewDialogWindow(conn, preset.Title, preset.Width, preset.Height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to create dialog %q: %v\n", name, err)
			registry.Clear()
			return 1
		}
		registry.Open(name, win)
		x, y := win.Pos()
		fmt.Printf("%-12s %4dx%-4d at (%d,%d)\n", name, preset.Width, preset.Height, x, y)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	if *hold > 0 {
		select {
		case <-sigCh:
		case <-time.After(time.Duration(*hold) * time.Second):
		}
	} else {
		fmt.Println("Press Ctrl+C to close the dialogs.")
		<-sigCh
	}

	registry.Clear()
	return 0
}
