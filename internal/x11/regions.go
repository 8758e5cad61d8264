package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xprop"

	"github.com/1broseidon/dragzone/internal/geom"
)

// SetDragRegions publishes rects on the window as a CARDINAL[4n] property
// holding x, y, width, height for each region. Client-side decoration
// helpers read it to decide which pointer presses start a window move.
func (c *Connection) SetDragRegions(windowID xproto.Window, prop string, rects []geom.Rect) error {
	if len(rects) == 0 {
		return c.ClearDragRegions(windowID, prop)
	}
	if err := xprop.ChangeProp32(c.XUtil, windowID, prop, "CARDINAL", encodeRegions(rects)...); err != nil {
		return fmt.Errorf("failed to set %s on window 0x%x: %w", prop, uint32(windowID), err)
	}
	return nil
}

// DragRegions reads back the regions published by SetDragRegions.
func (c *Connection) DragRegions(windowID xproto.Window, prop string) ([]geom.Rect, error) {
	nums, err := xprop.PropValNums(xprop.GetProperty(c.XUtil, windowID, prop))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s on window 0x%x: %w", prop, uint32(windowID), err)
	}
	return decodeRegions(nums)
}

// ClearDragRegions removes the property, leaving the whole title bar to
// the client.
func (c *Connection) ClearDragRegions(windowID xproto.Window, prop string) error {
	atom, err := xprop.Atm(c.XUtil, prop)
	if err != nil {
		return fmt.Errorf("failed to intern %s: %w", prop, err)
	}
	return xproto.DeletePropertyChecked(c.XUtil.Conn(), windowID, atom).Check()
}

func encodeRegions(rects []geom.Rect) []uint {
	data := make([]uint, 0, len(rects)*4)
	for _, r := range rects {
		data = append(data, uint(max(r.X, 0)), uint(max(r.Y, 0)), uint(max(r.Width, 0)), uint(max(r.Height, 0)))
	}
	return data
}

func decodeRegions(nums []uint) ([]geom.Rect, error) {
	if len(nums)%4 != 0 {
		return nil, fmt.Errorf("malformed region list: %d values is not a multiple of 4", len(nums))
	}
	rects := make([]geom.Rect, 0, len(nums)/4)
	for i := 0; i < len(nums); i += 4 {
		rects = append(rects, geom.Rect{
			X:      int(nums[i]),
			Y:      int(nums[i+1]),
			Width:  int(nums[i+2]),
			Height: int(nums[i+3]),
		})
	}
	return rects, nil
}
