package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/1broseidon/paneldock/internal/config"
	"github.com/1broseidon/paneldock/internal/dialog"
	"github.com/1broseidon/paneldock/internal/eventlog"
	"github.com/1broseidon/paneldock/internal/mcp"
	"github.com/1broseidon/paneldock/internal/x11"
)

func printMCPUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: paneldock mcp <command>")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  serve    Start the MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'paneldock mcp <command> --help' for command-specific options.")
}

func runMCP(args []string) int {
	if len(args) == 0 {
		printMCPUsage(os.Stderr)
		return 2
	}

	switch args[0] {
	case "serve":
		return runMCPServe(args[1:])
	case "help", "-h", "--help":
		printMCPUsage(os.Stdout)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown mcp command: %s\n\n", args[0])
		printMCPUsage(os.Stderr)
		return 2
	}
}

func runMCPServe(args []string) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: paneldock mcp serve [--path PATH]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Start the MCP server on stdio. Designed to be invoked by MCP clients")
		fmt.Fprintln(os.Stderr, "such as Claude Code or Claude Desktop. Dialogs open as real X11")
		fmt.Fprintln(os.Stderr, "windows on the configured display.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Example (Claude Code):")
		fmt.Fprintln(os.Stderr, "  claude mcp add paneldock -- paneldock mcp serve")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	path := fs.String("path", "", "Config file path (default: ~/.config/paneldock/config.yaml)")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	cfg, err := loadConfig(*path)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	conn, registry, cleanup, err := buildRuntime(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	defer cleanup()

	newDialog := func(key, title string, width, height int) (dialog.Handle, error) {
		if title == "" {
			title = key
		}
		return x11.NewDialogWindow(conn, title, width, height)
	}

	server := mcp.NewServer(cfg, registry, newDialog)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if err := server.Run(ctx); err != nil {
		log.Fatalf("MCP server error: %v", err)
	}
	return 0
}

// loadConfig loads the config from an explicit path, or from the
// default location when path is empty.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFrom(path)
}

// buildRuntime connects to the X display and assembles the event
// logger and dialog registry on top of it.
func buildRuntime(cfg *config.Config) (*x11.Connection, *dialog.Registry, func(), error) {
	if cfg.XAuthority != "" {
		os.Setenv("XAUTHORITY", cfg.XAuthority)
	}

	conn, err := x11.NewConnection(cfg.Display)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to connect to display: %w", err)
	}

	logCfg := cfg.GetLoggingConfig()
	events, err := eventlog.NewLogger(eventlog.Config{
		Enabled:   logCfg.Enabled,
		Level:     eventlog.ParseLevel(logCfg.Level),
		FilePath:  logCfg.File,
		MaxSizeMB: logCfg.MaxSizeMB,
		MaxFiles:  logCfg.MaxFiles,
	})
	if err != nil {
		conn.Close()
		return nil, nil, nil, fmt.Errorf("failed to open event log: %w", err)
	}

	host := x11.NewHost(conn)
	registry := dialog.NewRegistry(host, cfg.PlacementParams(), events)

	cleanup := func() {
		events.Close()
		conn.Close()
	}
	return conn, registry, cleanup, nil
}
