package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xevent"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// Connection manages the X11 connection and core X resources
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window
}

// NewConnection connects to display, or to $DISPLAY when display is empty.
func NewConnection(display string) (*Connection, error) {
	xu, err := xgbutil.NewConnDisplay(display)
	if err != nil {
		return nil, err
	}

	return &Connection{
		XUtil: xu,
		Root:  xu.RootWin(),
	}, nil
}

// EventLoop starts the main X11 event loop (blocking)
func (c *Connection) EventLoop() {
	xevent.Main(c.XUtil)
}

// Quit makes a running EventLoop return. Safe to call from any goroutine.
func (c *Connection) Quit() {
	xevent.Quit(c.XUtil)
	c.wake()
}

// wake unblocks an event loop waiting for input by creating and destroying
// a private window, which delivers a DestroyNotify to this client.
func (c *Connection) wake() {
	win, err := xwindow.Generate(c.XUtil)
	if err != nil {
		return
	}
	err = win.CreateChecked(c.Root, -1, -1, 1, 1, xproto.CwEventMask, xproto.EventMaskStructureNotify)
	if err != nil {
		return
	}
	win.Destroy()
}

// Close cleanly disconnects from the X11 server
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}
