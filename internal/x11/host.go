package x11

import (
	"log"

	"github.com/1broseidon/paneldock/internal/dialog"
	"github.com/1broseidon/paneldock/internal/placement"
)

// Host attaches dialog windows to the X display and reports its usable
// size. It implements dialog.Host.
type Host struct {
	conn *Connection
}

// NewHost creates a host container over an established X11 connection.
func NewHost(conn *Connection) *Host {
	return &Host{conn: conn}
}

// Attach maps the dialog window onto the display. Handles that are not
// X11 windows are ignored.
func (h *Host) Attach(handle dialog.Handle) {
	d, ok := handle.(*DialogWindow)
	if !ok {
		return
	}
	d.mapWindow()
}

// DisplaySize returns the current work area for the placement fallback
// scan. An unknown size disables the scan rather than failing the open.
func (h *Host) DisplaySize() placement.Size {
	width, height, err := h.conn.WorkArea()
	if err != nil {
		log.Printf("Failed to query work area: %v", err)
		return placement.Size{}
	}
	return placement.Size{Width: width, Height: height}
}
