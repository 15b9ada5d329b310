package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/1broseidon/paneldock/internal/tui"
)

func runTUI(args []string) int {
	fs := flag.NewFlagSet("tui", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := fs.String("path", "", "Config file path (default: ~/.config/paneldock/config.yaml)")

	if len(args) > 0 && (args[0] == "help" || args[0] == "-h" || args[0] == "--help") {
		fmt.Fprintln(os.Stderr, "Usage: paneldock tui [--path PATH]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Interactive placement inspector. Opens dialogs against a simulated")
		fmt.Fprintln(os.Stderr, "display and draws a live map of where each one lands. No X server")
		fmt.Fprintln(os.Stderr, "required.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Keybindings:")
		fmt.Fprintln(os.Stderr, "  o         Open the next dialog preset")
		fmt.Fprintln(os.Stderr, "  x         Close the most recently opened dialog")
		fmt.Fprintln(os.Stderr, "  r         Refresh the most recently opened dialog")
		fmt.Fprintln(os.Stderr, "  C         Close all dialogs")
		fmt.Fprintln(os.Stderr, "  q, Ctrl+C Quit")
		return 0
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "tui requires an interactive terminal")
		return 1
	}

	cfg, err := loadConfig(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := tui.Run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
