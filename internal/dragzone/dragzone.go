// Package dragzone computes the draggable regions of a custom window title
// bar: the title-bar strip minus the rectangles of the interactive controls
// drawn inside it.
package dragzone

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/1broseidon/dragzone/internal/geom"
)

// ErrInvalidArgument is wrapped by every input validation error.
var ErrInvalidArgument = errors.New("invalid argument")

// cell is one column of the partition: an X-range and the Y-ranges that are
// still draggable inside it.
type cell struct {
	x  geom.Range
	ys []geom.Range
}

// Validate checks the strip parameters accepted by GetDragZones.
func Validate(zoneHeight, zoneLeftIndent, windowWidth int) error {
	if zoneHeight < 0 {
		return fmt.Errorf("%w: zone height must be >= 0, got %d", ErrInvalidArgument, zoneHeight)
	}
	if zoneLeftIndent < 0 {
		return fmt.Errorf("%w: zone left indent must be >= 0, got %d", ErrInvalidArgument, zoneLeftIndent)
	}
	if windowWidth < 0 {
		return fmt.Errorf("%w: window width must be >= 0, got %d", ErrInvalidArgument, windowWidth)
	}
	return nil
}

// ValidateExclusions rejects exclusions whose right or bottom edge does not
// fit in an int.
func ValidateExclusions(exclusions []geom.Rect) error {
	for i, ex := range exclusions {
		if ex.Overflows() {
			return fmt.Errorf("%w: exclusion %d (%s) extends past the coordinate range", ErrInvalidArgument, i, ex)
		}
	}
	return nil
}

// GetDragZones returns the draggable rectangles of a title-bar strip that is
// zoneHeight pixels tall, starts at x=zoneLeftIndent and runs to
// windowWidth, with every exclusion cut out of it.
//
// The result is sorted by Y then X, and horizontally adjacent rectangles in
// the same row with equal height are merged. Exclusions with no area are
// ignored. Coordinates are unscaled; see Scale.
func GetDragZones(zoneHeight, zoneLeftIndent, windowWidth int, exclusions []geom.Rect) ([]geom.Rect, error) {
	if err := Validate(zoneHeight, zoneLeftIndent, windowWidth); err != nil {
		return nil, err
	}
	if err := ValidateExclusions(exclusions); err != nil {
		return nil, err
	}
	if zoneLeftIndent >= windowWidth {
		return nil, nil
	}
	zone := geom.Rect{
		X:      zoneLeftIndent,
		Y:      0,
		Width:  windowWidth - zoneLeftIndent,
		Height: zoneHeight,
	}
	return Compute(zone, exclusions), nil
}

// Compute subtracts exclusions from zone and returns what remains, in the
// same sorted and merged form as GetDragZones. Edges past math.MaxInt are
// treated as reaching math.MaxInt.
func Compute(zone geom.Rect, exclusions []geom.Rect) []geom.Rect {
	if zone.Empty() {
		return nil
	}

	cells := []cell{{
		x:  zone.XRange(),
		ys: []geom.Range{zone.YRange()},
	}}
	for _, ex := range exclusions {
		if ex.Empty() {
			continue
		}
		cells = subtract(cells, ex)
	}

	rects := flatten(cells)
	slices.SortFunc(rects, func(a, b geom.Rect) int {
		return cmp.Or(cmp.Compare(a.Y, b.Y), cmp.Compare(a.X, b.X))
	})
	return merge(rects)
}

// subtract cuts ex out of every cell it overlaps in X. A cell is split at
// the exclusion's X edges; the piece under the exclusion loses the
// exclusion's Y-span, the pieces beside it keep their Y-ranges. The
// left-to-right order of cells is preserved.
//
// An exclusion that overlaps a cell in X but not in Y still splits it; the
// pieces end up with identical Y-ranges and are joined again by merge.
func subtract(cells []cell, ex geom.Rect) []cell {
	xSub := ex.XRange()
	ySub := ex.YRange()

	for i := 0; i < len(cells); i++ {
		c := cells[i]
		xResult := geom.Subtract(c.x, xSub)
		if len(xResult) == 1 && xResult[0] == c.x {
			continue
		}

		yResult := geom.SubtractFromAll(c.ys, ySub)
		covered := cell{x: geom.Clip(c.x, xSub), ys: yResult}

		switch len(xResult) {
		case 0:
			cells[i].ys = yResult
		case 1:
			rest := cell{x: xResult[0], ys: c.ys}
			if rest.x.Lower == c.x.Lower {
				cells = slices.Replace(cells, i, i+1, rest, covered)
			} else {
				cells = slices.Replace(cells, i, i+1, covered, rest)
			}
			i++
		case 2:
			left := cell{x: xResult[0], ys: c.ys}
			right := cell{x: xResult[1], ys: c.ys}
			cells = slices.Replace(cells, i, i+1, left, covered, right)
			i += 2
		}
	}
	return cells
}

func flatten(cells []cell) []geom.Rect {
	var rects []geom.Rect
	for _, c := range cells {
		for _, y := range c.ys {
			rects = append(rects, geom.Rect{
				X:      c.x.Lower,
				Y:      y.Lower,
				Width:  c.x.Distance(),
				Height: y.Distance(),
			})
		}
	}
	return rects
}

// merge joins neighbours in a (Y, X)-sorted slice that share a row and a
// height and touch horizontally. After a join the same position is checked
// again so runs of three or more collapse into one.
func merge(rects []geom.Rect) []geom.Rect {
	for i := 0; i+1 < len(rects); {
		cur, next := rects[i], rects[i+1]
		if cur.Y == next.Y && cur.Height == next.Height && cur.Right() == next.X {
			rects[i].Width += next.Width
			rects = slices.Delete(rects, i+1, i+2)
			continue
		}
		i++
	}
	return rects
}

// Scale applies a DPI scale factor to each rectangle, as required before
// handing them to a window system that works in physical pixels.
func Scale(rects []geom.Rect, factor float64) []geom.Rect {
	if rects == nil {
		return nil
	}
	out := make([]geom.Rect, len(rects))
	for i, r := range rects {
		out[i] = r.Scale(factor)
	}
	return out
}
