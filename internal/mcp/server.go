package mcp

import (
	"context"
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/paneldock/internal/config"
	"github.com/1broseidon/paneldock/internal/dialog"
)

const (
	ServerName    = "paneldock"
	ServerVersion = "0.1.0"
)

// NewDialogFunc builds a concrete dialog handle for open_dialog.
// Production wires this to the X11 window factory; tests supply fakes.
type NewDialogFunc func(key, title string, width, height int) (dialog.Handle, error)

// Server is the MCP server exposing the dialog registry to agent clients.
type Server struct {
	mcpServer *mcpsdk.Server
	config    *config.Config
	newDialog NewDialogFunc

	// The registry is single-threaded by contract, so every tool
	// handler funnels through mu.
	mu       sync.Mutex
	registry *dialog.Registry
}

// NewServer creates a new MCP server over an existing registry.
func NewServer(cfg *config.Config, registry *dialog.Registry, newDialog NewDialogFunc) *Server {
	s := &Server{
		config:    cfg,
		registry:  registry,
		newDialog: newDialog,
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "open_dialog",
		Description: "Open a dialog panel under a unique key. The panel is placed automatically at the free position closest to the top-left corner, avoiding every open dialog. Size comes from width/height or a configured preset. Opening an existing key is a no-op that returns the current position.",
	}, s.handleOpenDialog)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_dialog",
		Description: "Look up an open dialog by key and return its geometry.",
	}, s.handleGetDialog)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_dialogs",
		Description: "List all open dialogs with their positions and sizes, sorted by key.",
	}, s.handleListDialogs)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "close_dialog",
		Description: "Close an open dialog: its window is torn down and the key becomes free. No-op when the key is not open.",
	}, s.handleCloseDialog)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "remove_dialog",
		Description: "Forget a dialog without closing its window. Use when the window was already torn down externally (e.g. the user closed it via the window manager).",
	}, s.handleRemoveDialog)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "refresh_dialog",
		Description: "Ask an open dialog to recompute its layout in place. The dialog keeps its position.",
	}, s.handleRefreshDialog)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "clear_dialogs",
		Description: "Close every open dialog, leaving the registry empty.",
	}, s.handleClearDialogs)
}
