package daemon

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/1broseidon/dragzone/internal/config"
	"github.com/1broseidon/dragzone/internal/dragzone"
	"github.com/1broseidon/dragzone/internal/geom"
	"github.com/1broseidon/dragzone/internal/platform"
)

// ApplierConfig holds configuration for the applier.
type ApplierConfig struct {
	Name     string // titlebar profile name, for logging
	Titlebar config.Titlebar
	Logger   *slog.Logger
}

// Applier computes a window's drag zones from a titlebar profile and
// publishes them through a platform backend.
type Applier struct {
	backend  platform.Backend
	name     string
	titlebar config.Titlebar
	logger   *slog.Logger
}

// Result describes one application of drag zones to a window.
type Result struct {
	Window platform.WindowID
	Width  int
	Scale  float64
	Zones  []geom.Rect // window-content pixels
	Scaled []geom.Rect // physical pixels, as applied
}

// NewApplier creates an applier for the given backend and profile.
func NewApplier(backend platform.Backend, cfg ApplierConfig) *Applier {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Applier{
		backend:  backend,
		name:     cfg.Name,
		titlebar: cfg.Titlebar,
		logger:   logger,
	}
}

// Apply measures the window and replaces its drag zones once.
func (a *Applier) Apply(windowID platform.WindowID) (Result, error) {
	width, err := a.backend.ContentWidth(windowID)
	if err != nil {
		return Result{}, err
	}
	return a.applyWidth(windowID, width)
}

func (a *Applier) applyWidth(windowID platform.WindowID, width int) (Result, error) {
	tb := a.titlebar
	zones, err := dragzone.GetDragZones(tb.Height, tb.LeftIndent, width, tb.Rects())
	if err != nil {
		return Result{}, fmt.Errorf("titlebar %q: %w", a.name, err)
	}

	scale := a.scaleFor(windowID)
	res := Result{
		Window: windowID,
		Width:  width,
		Scale:  scale,
		Zones:  zones,
		Scaled: dragzone.Scale(zones, scale),
	}
	if err := a.backend.ApplyDragZones(windowID, res.Scaled); err != nil {
		return Result{}, err
	}

	a.logger.Debug("drag zones applied",
		"titlebar", a.name,
		"window_id", uint32(windowID),
		"width", width,
		"scale", scale,
		"zones", len(zones))
	return res, nil
}

func (a *Applier) scaleFor(windowID platform.WindowID) float64 {
	if a.titlebar.Scale > 0 {
		return a.titlebar.Scale
	}
	scale, err := a.backend.ScaleFactor(windowID)
	if err != nil || scale <= 0 {
		a.logger.Warn("scale detection failed, using 1", "window_id", uint32(windowID), "error", err)
		return 1
	}
	return scale
}

// Watch starts listening for resizes, applies drag zones, then reapplies
// them every time the window's width changes. Blocks until ctx is cancelled
// or the window is closed. Listening starts before the first measurement so
// a resize in between is still delivered.
func (a *Applier) Watch(ctx context.Context, windowID platform.WindowID) error {
	closed := make(chan struct{})
	var closeOnce sync.Once

	err := a.backend.WatchResize(windowID,
		func(width int) {
			if _, err := a.applyWidth(windowID, width); err != nil {
				a.logger.Error("reapply failed", "window_id", uint32(windowID), "width", width, "error", err)
			}
		},
		func() {
			closeOnce.Do(func() { close(closed) })
			a.backend.Quit()
		},
	)
	if err != nil {
		return err
	}
	if _, err := a.Apply(windowID); err != nil {
		return err
	}

	go func() {
		select {
		case <-ctx.Done():
			a.backend.Quit()
		case <-closed:
		}
	}()

	a.logger.Info("watching window", "titlebar", a.name, "window_id", uint32(windowID))
	a.backend.EventLoop()

	select {
	case <-closed:
		a.logger.Info("window closed", "window_id", uint32(windowID))
	default:
		a.logger.Info("watch stopped", "window_id", uint32(windowID))
	}
	return nil
}
