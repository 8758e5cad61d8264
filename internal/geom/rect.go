package geom

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle in window-content pixels.
type Rect struct {
	X      int `json:"x" yaml:"x"`
	Y      int `json:"y" yaml:"y"`
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Right returns the x-coordinate of the right edge (exclusive), saturating
// at math.MaxInt.
func (r Rect) Right() int {
	return saturatingAdd(r.X, r.Width)
}

// Bottom returns the y-coordinate of the bottom edge (exclusive), saturating
// at math.MaxInt.
func (r Rect) Bottom() int {
	return saturatingAdd(r.Y, r.Height)
}

// Overflows reports whether an edge of r lies beyond math.MaxInt.
func (r Rect) Overflows() bool {
	return addOverflows(r.X, r.Width) || addOverflows(r.Y, r.Height)
}

func addOverflows(pos, size int) bool {
	return size > 0 && pos > math.MaxInt-size
}

func saturatingAdd(pos, size int) int {
	if addOverflows(pos, size) {
		return math.MaxInt
	}
	return pos + size
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.Width * r.Height
}

// XRange returns the horizontal extent of r.
func (r Rect) XRange() Range {
	return Range{Lower: r.X, Upper: r.Right()}
}

// YRange returns the vertical extent of r.
func (r Rect) YRange() Range {
	return Range{Lower: r.Y, Upper: r.Bottom()}
}

// Intersect returns the overlap of r and o, or the zero Rect when they do
// not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x1 := max(r.X, o.X)
	y1 := max(r.Y, o.Y)
	x2 := min(r.Right(), o.Right())
	y2 := min(r.Bottom(), o.Bottom())
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Overlaps reports whether r and o share at least one pixel.
func (r Rect) Overlaps(o Rect) bool {
	return !r.Intersect(o).Empty()
}

// Scale multiplies every coordinate by factor, rounding to the nearest pixel.
// Edges are scaled rather than sizes so that rectangles which touch before
// scaling still touch afterwards.
func (r Rect) Scale(factor float64) Rect {
	x1 := int(math.Round(float64(r.X) * factor))
	y1 := int(math.Round(float64(r.Y) * factor))
	x2 := int(math.Round(float64(r.Right()) * factor))
	y2 := int(math.Round(float64(r.Bottom()) * factor))
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}
