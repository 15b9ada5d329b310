package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// DialogWindow is a plain top-level X11 window managed as a dialog
// panel. The registry owns its position; whatever client draws into it
// owns the content.
type DialogWindow struct {
	conn   *Connection
	win    *xwindow.Window
	x      int
	y      int
	width  int
	height int
}

// NewDialogWindow creates an unmapped dialog window of fixed size.
func NewDialogWindow(conn *Connection, title string, width, height int) (*DialogWindow, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("dialog size must be positive, got %dx%d", width, height)
	}

	win, err := xwindow.Generate(conn.XUtil)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate window id: %w", err)
	}
	if err := win.CreateChecked(conn.Root, 0, 0, width, height, xproto.CwBackPixel, 0xffffff); err != nil {
		return nil, fmt.Errorf("failed to create dialog window: %w", err)
	}

	if title != "" {
		// Best effort - a nameless dialog still works.
		ewmh.WmNameSet(conn.XUtil, win.Id, title)
	}
	ewmh.WmWindowTypeSet(conn.XUtil, win.Id, []string{"_NET_WM_WINDOW_TYPE_DIALOG"})

	return &DialogWindow{
		conn:   conn,
		win:    win,
		width:  width,
		height: height,
	}, nil
}

// Pos returns the last position assigned to the dialog.
func (d *DialogWindow) Pos() (x, y int) {
	return d.x, d.y
}

// SetPos moves the dialog to the given screen coordinates.
func (d *DialogWindow) SetPos(x, y int) {
	d.x, d.y = x, y

	// Use EWMH MoveResize for better WM compatibility, falling back to
	// direct window manipulation when the WM does not support it.
	if err := ewmh.MoveresizeWindow(d.conn.XUtil, d.win.Id, x, y, d.width, d.height); err != nil {
		d.win.Move(x, y)
	}
}

// Size returns the fixed dialog dimensions.
func (d *DialogWindow) Size() (width, height int) {
	return d.width, d.height
}

// Close destroys the dialog window.
func (d *DialogWindow) Close() {
	d.win.Destroy()
}

// Refresh clears the window with exposures so the owning client
// repaints its content. The window does not move.
func (d *DialogWindow) Refresh() {
	xproto.ClearArea(d.conn.XUtil.Conn(), true, d.win.Id, 0, 0, 0, 0)
}

// ID returns the X11 window identifier.
func (d *DialogWindow) ID() xproto.Window {
	return d.win.Id
}

func (d *DialogWindow) mapWindow() {
	d.win.Map()
}
