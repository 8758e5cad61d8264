package x11

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xwindow"
)

func (c *Connection) GetActiveWindow() (xproto.Window, error) {
	win, err := ewmh.ActiveWindowGet(c.XUtil)
	if err != nil {
		return 0, fmt.Errorf("failed to get active window: %w", err)
	}
	if win == 0 {
		return 0, fmt.Errorf("no active window")
	}
	return win, nil
}

// FindWindowByTitle returns the first managed window whose _NET_WM_NAME
// contains substring, case-insensitively.
func (c *Connection) FindWindowByTitle(substring string) (xproto.Window, error) {
	clients, err := ewmh.ClientListGet(c.XUtil)
	if err != nil {
		return 0, fmt.Errorf("failed to get client list: %w", err)
	}
	needle := strings.ToLower(substring)
	for _, win := range clients {
		name, err := ewmh.WmNameGet(c.XUtil, win)
		if err != nil {
			continue
		}
		if strings.Contains(strings.ToLower(name), needle) {
			return win, nil
		}
	}
	return 0, fmt.Errorf("no window with title containing %q", substring)
}

// ContentSize returns the size of the window's client area. Decorations
// drawn by the window manager are not included.
func (c *Connection) ContentSize(windowID xproto.Window) (width, height int, err error) {
	geom, err := xwindow.New(c.XUtil, windowID).Geometry()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get geometry of window 0x%x: %w", uint32(windowID), err)
	}
	return geom.Width(), geom.Height(), nil
}
