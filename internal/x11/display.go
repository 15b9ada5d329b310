package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
)

// WorkArea returns the usable display size in pixels, excluding panels
// and docks when the window manager publishes _NET_WORKAREA. Falls back
// to the root window geometry.
func (c *Connection) WorkArea() (width, height int, err error) {
	if workArea, err := ewmh.WorkareaGet(c.XUtil); err == nil && len(workArea) > 0 {
		desktopIndex := 0
		if currentDesktop, err := ewmh.CurrentDesktopGet(c.XUtil); err == nil {
			if int(currentDesktop) >= 0 && int(currentDesktop) < len(workArea) {
				desktopIndex = int(currentDesktop)
			}
		}

		wa := workArea[desktopIndex]
		if wa.Width > 0 && wa.Height > 0 {
			return int(wa.Width), int(wa.Height), nil
		}
	}

	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(c.Root)).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get root geometry: %w", err)
	}

	return int(geom.Width), int(geom.Height), nil
}
