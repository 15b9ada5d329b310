package mcp

import (
	"context"
	"fmt"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) handleOpenDialog(_ context.Context, _ *mcpsdk.CallToolRequest, args OpenDialogInput) (*mcpsdk.CallToolResult, OpenDialogOutput, error) {
	key := strings.TrimSpace(args.Key)
	if key == "" {
		return nil, OpenDialogOutput{}, fmt.Errorf("key is required")
	}

	width, height, title := args.Width, args.Height, args.Title
	if args.Preset != "" {
		preset, err := s.config.GetDialog(args.Preset)
		if err != nil {
			return nil, OpenDialogOutput{}, err
		}
		if width == 0 {
			width = preset.Width
		}
		if height == 0 {
			height = preset.Height
		}
		if title == "" {
			title = preset.Title
		}
	}
	if width <= 0 || height <= 0 {
		return nil, OpenDialogOutput{}, fmt.Errorf("width and height must be positive, got %dx%d", width, height)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if h, open := s.registry.Get(key); open {
		x, y := h.Pos()
		w, hgt := h.Size()
		return nil, OpenDialogOutput{Key: key, X: x, Y: y, Width: w, Height: hgt, AlreadyOpen: true}, nil
	}

	h, err := s.newDialog(key, title, width, height)
	if err != nil {
		return nil, OpenDialogOutput{}, fmt.Errorf("failed to create dialog %q: %w", key, err)
	}

	s.registry.Open(key, h)
	x, y := h.Pos()
	return nil, OpenDialogOutput{Key: key, X: x, Y: y, Width: width, Height: height}, nil
}

func (s *Server) handleGetDialog(_ context.Context, _ *mcpsdk.CallToolRequest, args GetDialogInput) (*mcpsdk.CallToolResult, GetDialogOutput, error) {
	key := strings.TrimSpace(args.Key)
	if key == "" {
		return nil, GetDialogOutput{}, fmt.Errorf("key is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	h, open := s.registry.Get(key)
	if !open {
		return nil, GetDialogOutput{Key: key, Found: false}, nil
	}
	x, y := h.Pos()
	w, hgt := h.Size()
	return nil, GetDialogOutput{Key: key, Found: true, X: x, Y: y, Width: w, Height: hgt}, nil
}

func (s *Server) handleListDialogs(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListDialogsInput) (*mcpsdk.CallToolResult, ListDialogsOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := s.registry.Keys()
	out := ListDialogsOutput{Dialogs: make([]DialogInfo, 0, len(keys))}
	for _, key := range keys {
		h, open := s.registry.Get(key)
		if !open {
			continue
		}
		x, y := h.Pos()
		w, hgt := h.Size()
		out.Dialogs = append(out.Dialogs, DialogInfo{Key: key, X: x, Y: y, Width: w, Height: hgt})
	}
	return nil, out, nil
}

func (s *Server) handleCloseDialog(_ context.Context, _ *mcpsdk.CallToolRequest, args CloseDialogInput) (*mcpsdk.CallToolResult, CloseDialogOutput, error) {
	key := strings.TrimSpace(args.Key)
	if key == "" {
		return nil, CloseDialogOutput{}, fmt.Errorf("key is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, open := s.registry.Get(key)
	s.registry.Close(key)
	return nil, CloseDialogOutput{Closed: open}, nil
}

func (s *Server) handleRemoveDialog(_ context.Context, _ *mcpsdk.CallToolRequest, args RemoveDialogInput) (*mcpsdk.CallToolResult, RemoveDialogOutput, error) {
	key := strings.TrimSpace(args.Key)
	if key == "" {
		return nil, RemoveDialogOutput{}, fmt.Errorf("key is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, open := s.registry.Get(key)
	s.registry.Remove(key)
	return nil, RemoveDialogOutput{Removed: open}, nil
}

func (s *Server) handleRefreshDialog(_ context.Context, _ *mcpsdk.CallToolRequest, args RefreshDialogInput) (*mcpsdk.CallToolResult, RefreshDialogOutput, error) {
	key := strings.TrimSpace(args.Key)
	if key == "" {
		return nil, RefreshDialogOutput{}, fmt.Errorf("key is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, open := s.registry.Get(key)
	s.registry.Refresh(key)
	return nil, RefreshDialogOutput{Refreshed: open}, nil
}

func (s *Server) handleClearDialogs(_ context.Context, _ *mcpsdk.CallToolRequest, _ ClearDialogsInput) (*mcpsdk.CallToolResult, ClearDialogsOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := s.registry.Len()
	s.registry.Clear()
	return nil, ClearDialogsOutput{Closed: count}, nil
}
