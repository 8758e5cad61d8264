//go:build linux

package platform

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/dragzone/internal/geom"
	"github.com/1broseidon/dragzone/internal/x11"
)

// LinuxBackend wraps an X11 connection behind the platform Backend interface.
type LinuxBackend struct {
	conn *x11.Connection
	prop string
}

var _ Backend = (*LinuxBackend)(nil)

// NewLinuxBackend creates a Linux platform backend from an existing X11
// connection. Drag zones are published on the window property prop.
func NewLinuxBackend(conn *x11.Connection, prop string) *LinuxBackend {
	return &LinuxBackend{conn: conn, prop: prop}
}

// NewDisplayBackend opens a fresh X11 connection to display ("" = $DISPLAY).
func NewDisplayBackend(display, prop string) (Backend, error) {
	conn, err := x11.NewConnection(display)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return NewLinuxBackend(conn, prop), nil
}

func (b *LinuxBackend) connection() (*x11.Connection, error) {
	if b == nil || b.conn == nil {
		return nil, fmt.Errorf("linux backend is not connected")
	}
	return b.conn, nil
}

// Close closes the underlying X11 connection.
func (b *LinuxBackend) Close() {
	if b != nil && b.conn != nil {
		b.conn.Close()
	}
}

// EventLoop starts the X11 event loop (blocking).
func (b *LinuxBackend) EventLoop() {
	if b != nil && b.conn != nil {
		b.conn.EventLoop()
	}
}

func (b *LinuxBackend) Quit() {
	if b != nil && b.conn != nil {
		b.conn.Quit()
	}
}

// ActiveWindow returns the currently active/focused window ID.
func (b *LinuxBackend) ActiveWindow() (WindowID, error) {
	conn, err := b.connection()
	if err != nil {
		return 0, err
	}
	wid, err := conn.GetActiveWindow()
	if err != nil {
		return 0, err
	}
	return WindowID(wid), nil
}

func (b *LinuxBackend) FindWindow(title string) (WindowID, error) {
	conn, err := b.connection()
	if err != nil {
		return 0, err
	}
	wid, err := conn.FindWindowByTitle(title)
	if err != nil {
		return 0, err
	}
	return WindowID(wid), nil
}

func (b *LinuxBackend) ContentWidth(windowID WindowID) (int, error) {
	conn, err := b.connection()
	if err != nil {
		return 0, err
	}
	width, _, err := conn.ContentSize(xproto.Window(windowID))
	return width, err
}

func (b *LinuxBackend) ScaleFactor(windowID WindowID) (float64, error) {
	conn, err := b.connection()
	if err != nil {
		return 1, err
	}
	return conn.ScaleFactor(xproto.Window(windowID))
}

func (b *LinuxBackend) ApplyDragZones(windowID WindowID, zones []geom.Rect) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	return conn.SetDragRegions(xproto.Window(windowID), b.prop, zones)
}

func (b *LinuxBackend) WatchResize(windowID WindowID, onResize func(width int), onClosed func()) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	return conn.WatchResize(xproto.Window(windowID), func(width, _ int) {
		onResize(width)
	}, onClosed)
}
