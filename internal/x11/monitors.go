package x11

import (
	"fmt"
	"math"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
)

// Monitor represents a physical display
type Monitor struct {
	ID       int
	Name     string
	X        int
	Y        int
	Width    int
	Height   int
	MmWidth  int
	MmHeight int
}

const (
	baseDPI  = 96.0
	minScale = 1.0
	maxScale = 4.0
)

// GetMonitors retrieves all active monitors using XRandR
func (c *Connection) GetMonitors() ([]Monitor, error) {
	if err := randr.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var monitors []Monitor
	for i, crtc := range resources.Crtcs {
		crtcInfo, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}

		// Skip disabled CRTCs
		if crtcInfo.Width == 0 || crtcInfo.Height == 0 || len(crtcInfo.Outputs) == 0 {
			continue
		}

		mon := Monitor{
			ID:     i,
			Name:   fmt.Sprintf("Monitor%d", i),
			X:      int(crtcInfo.X),
			Y:      int(crtcInfo.Y),
			Width:  int(crtcInfo.Width),
			Height: int(crtcInfo.Height),
		}
		outputInfo, err := randr.GetOutputInfo(c.XUtil.Conn(), crtcInfo.Outputs[0], resources.ConfigTimestamp).Reply()
		if err == nil {
			mon.Name = string(outputInfo.Name)
			mon.MmWidth = int(outputInfo.MmWidth)
			mon.MmHeight = int(outputInfo.MmHeight)
		}
		monitors = append(monitors, mon)
	}

	return monitors, nil
}

// MonitorForWindow returns the monitor containing the centre of the window.
func (c *Connection) MonitorForWindow(windowID xproto.Window) (*Monitor, error) {
	monitors, err := c.GetMonitors()
	if err != nil {
		return nil, err
	}
	if len(monitors) == 0 {
		return nil, fmt.Errorf("no monitors found")
	}

	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(windowID)).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get geometry: %w", err)
	}
	translate, err := xproto.TranslateCoordinates(c.XUtil.Conn(), windowID, c.Root, 0, 0).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to translate coordinates: %w", err)
	}

	cx := int(translate.DstX) + int(geom.Width)/2
	cy := int(translate.DstY) + int(geom.Height)/2
	if mon := monitorAt(monitors, cx, cy); mon != nil {
		return mon, nil
	}
	return &monitors[0], nil
}

// ScaleFactor returns the DPI scale of the monitor showing the window.
func (c *Connection) ScaleFactor(windowID xproto.Window) (float64, error) {
	mon, err := c.MonitorForWindow(windowID)
	if err != nil {
		return minScale, err
	}
	return mon.Scale(), nil
}

// Scale derives a scale factor from the monitor's physical width, relative
// to 96 DPI and rounded to a quarter step. Monitors that report no or
// implausible physical size get 1.
func (m Monitor) Scale() float64 {
	if m.MmWidth <= 0 || m.Width <= 0 {
		return minScale
	}
	dpi := float64(m.Width) / (float64(m.MmWidth) / 25.4)
	scale := math.Round(dpi/baseDPI*4) / 4
	if scale < minScale || scale > maxScale {
		return minScale
	}
	return scale
}

func monitorAt(monitors []Monitor, x, y int) *Monitor {
	for i := range monitors {
		mon := &monitors[i]
		if x >= mon.X && x < mon.X+mon.Width && y >= mon.Y && y < mon.Y+mon.Height {
			return mon
		}
	}
	return nil
}
