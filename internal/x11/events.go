package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xevent"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// sizeTracker drops ConfigureNotify events that only move a window.
type sizeTracker struct {
	width, height int
}

func (s *sizeTracker) changed(width, height int) bool {
	if width == s.width && height == s.height {
		return false
	}
	s.width, s.height = width, height
	return true
}

// WatchResize calls onResize whenever the window's content size changes and
// onDestroy once when the window goes away. Callbacks run on the event loop
// goroutine; EventLoop must be running for them to fire.
func (c *Connection) WatchResize(windowID xproto.Window, onResize func(width, height int), onDestroy func()) error {
	win := xwindow.New(c.XUtil, windowID)
	if err := win.Listen(xproto.EventMaskStructureNotify); err != nil {
		return fmt.Errorf("failed to listen on window 0x%x: %w", uint32(windowID), err)
	}

	tracker := &sizeTracker{}
	if w, h, err := c.ContentSize(windowID); err == nil {
		tracker.changed(w, h)
	}

	xevent.ConfigureNotifyFun(func(_ *xgbutil.XUtil, ev xevent.ConfigureNotifyEvent) {
		w, h := int(ev.Width), int(ev.Height)
		if tracker.changed(w, h) {
			onResize(w, h)
		}
	}).Connect(c.XUtil, windowID)

	xevent.DestroyNotifyFun(func(xu *xgbutil.XUtil, _ xevent.DestroyNotifyEvent) {
		xevent.Detach(xu, windowID)
		if onDestroy != nil {
			onDestroy()
		}
	}).Connect(c.XUtil, windowID)

	return nil
}
