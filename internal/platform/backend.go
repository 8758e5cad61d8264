package platform

import "github.com/1broseidon/dragzone/internal/geom"

// WindowID is a platform-neutral window identifier.
type WindowID uint32

// Backend abstracts the window-system operations dragzone needs: finding
// a window, measuring it, and publishing its drag regions.
type Backend interface {
	ActiveWindow() (WindowID, error)
	FindWindow(title string) (WindowID, error)
	// ContentWidth returns the width of the window's client area in
	// unscaled pixels.
	ContentWidth(windowID WindowID) (int, error)
	ScaleFactor(windowID WindowID) (float64, error)
	// ApplyDragZones replaces the window's drag regions. Zones are in
	// physical (scaled) pixels.
	ApplyDragZones(windowID WindowID, zones []geom.Rect) error
	// WatchResize registers callbacks that run from EventLoop.
	WatchResize(windowID WindowID, onResize func(width int), onClosed func()) error
	// EventLoop blocks dispatching window-system events until Quit.
	EventLoop()
	Quit()
	Close()
}
