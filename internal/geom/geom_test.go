package geom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRangeDistance(t *testing.T) {
	if got := (Range{Lower: 10, Upper: 25}).Distance(); got != 15 {
		t.Fatalf("Distance = %d, want 15", got)
	}
	if got := (Range{Lower: 7, Upper: 7}).Distance(); got != 0 {
		t.Fatalf("Distance of empty range = %d, want 0", got)
	}
}

func TestIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Range
		want bool
	}{
		{"disjoint left", Range{10, 20}, Range{0, 5}, false},
		{"disjoint right", Range{10, 20}, Range{25, 30}, false},
		{"touching left edge", Range{10, 20}, Range{0, 10}, false},
		{"touching right edge", Range{10, 20}, Range{20, 30}, false},
		{"overlap left", Range{10, 20}, Range{5, 11}, true},
		{"overlap right", Range{10, 20}, Range{19, 40}, true},
		{"inside", Range{10, 20}, Range{12, 18}, true},
		{"covering", Range{10, 20}, Range{0, 40}, true},
		{"identical", Range{10, 20}, Range{10, 20}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intersects(tt.a, tt.b); got != tt.want {
				t.Errorf("Intersects(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := Intersects(tt.b, tt.a); got != tt.want {
				t.Errorf("Intersects(%v, %v) = %v, want %v (symmetry)", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestSubtract(t *testing.T) {
	tests := []struct {
		name       string
		minuend    Range
		subtrahend Range
		want       []Range
	}{
		{"no intersection keeps minuend", Range{0, 100}, Range{150, 200}, []Range{{0, 100}}},
		{"touching keeps minuend", Range{0, 100}, Range{100, 120}, []Range{{0, 100}}},
		{"hole in middle", Range{0, 100}, Range{40, 60}, []Range{{0, 40}, {60, 100}}},
		{"clip left end", Range{0, 100}, Range{-10, 30}, []Range{{30, 100}}},
		{"clip right end", Range{0, 100}, Range{70, 130}, []Range{{0, 70}}},
		{"shared lower edge", Range{0, 100}, Range{0, 30}, []Range{{30, 100}}},
		{"shared upper edge", Range{0, 100}, Range{70, 100}, []Range{{0, 70}}},
		{"exact cover", Range{0, 100}, Range{0, 100}, nil},
		{"over cover", Range{10, 20}, Range{0, 100}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Subtract(tt.minuend, tt.subtrahend)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Subtract(%v, %v) mismatch (-want +got):\n%s", tt.minuend, tt.subtrahend, diff)
			}
		})
	}
}

func TestSubtractFromAll(t *testing.T) {
	minuends := []Range{{0, 10}, {20, 40}, {50, 60}}
	got := SubtractFromAll(minuends, Range{Lower: 5, Upper: 25})
	want := []Range{{0, 5}, {25, 40}, {50, 60}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("SubtractFromAll mismatch (-want +got):\n%s", diff)
	}

	if got := SubtractFromAll(nil, Range{0, 10}); len(got) != 0 {
		t.Fatalf("SubtractFromAll(nil) = %v, want empty", got)
	}
}

func TestClip(t *testing.T) {
	if got := Clip(Range{0, 100}, Range{-20, 30}); got != (Range{0, 30}) {
		t.Fatalf("Clip = %v, want {0 30}", got)
	}
	if got := Clip(Range{0, 100}, Range{120, 130}); got.Distance() != 0 {
		t.Fatalf("Clip of disjoint ranges = %v, want empty", got)
	}
}

func TestRectIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 100, Height: 50}
	b := Rect{X: 80, Y: 40, Width: 40, Height: 40}
	want := Rect{X: 80, Y: 40, Width: 20, Height: 10}
	if got := a.Intersect(b); got != want {
		t.Fatalf("Intersect = %v, want %v", got, want)
	}
	if !a.Overlaps(b) {
		t.Fatalf("expected overlap")
	}

	c := Rect{X: 100, Y: 0, Width: 10, Height: 10}
	if a.Overlaps(c) {
		t.Fatalf("touching rectangles must not overlap")
	}
	if got := a.Intersect(c); got != (Rect{}) {
		t.Fatalf("Intersect of touching rectangles = %v, want zero", got)
	}
}

func TestRectAreaAndEmpty(t *testing.T) {
	tests := []struct {
		r     Rect
		area  int
		empty bool
	}{
		{Rect{Width: 10, Height: 5}, 50, false},
		{Rect{Width: 0, Height: 5}, 0, true},
		{Rect{Width: 10, Height: -1}, 0, true},
		{Rect{Width: -3, Height: -3}, 0, true},
	}
	for _, tt := range tests {
		if got := tt.r.Area(); got != tt.area {
			t.Errorf("%v.Area() = %d, want %d", tt.r, got, tt.area)
		}
		if got := tt.r.Empty(); got != tt.empty {
			t.Errorf("%v.Empty() = %v, want %v", tt.r, got, tt.empty)
		}
	}
}

func TestRectScaleKeepsNeighboursTouching(t *testing.T) {
	left := Rect{X: 0, Y: 0, Width: 33, Height: 31}
	right := Rect{X: 33, Y: 0, Width: 34, Height: 31}

	sl := left.Scale(1.25)
	sr := right.Scale(1.25)
	if sl.Right() != sr.X {
		t.Fatalf("scaled rectangles drifted apart: %v then %v", sl, sr)
	}
	if want := (Rect{X: 0, Y: 0, Width: 41, Height: 39}); sl != want {
		t.Fatalf("left.Scale(1.25) = %v, want %v", sl, want)
	}
}

func TestRectEdgesSaturate(t *testing.T) {
	huge := Rect{X: 10, Y: 5, Width: math.MaxInt, Height: math.MaxInt}
	if !huge.Overflows() {
		t.Fatalf("expected %v to overflow", huge)
	}
	if huge.Right() != math.MaxInt || huge.Bottom() != math.MaxInt {
		t.Fatalf("edges did not saturate: right %d bottom %d", huge.Right(), huge.Bottom())
	}
	if r := huge.XRange(); r.Lower > r.Upper {
		t.Fatalf("reversed range %v", r)
	}
	if !huge.Overlaps(Rect{X: 100, Y: 100, Width: 1, Height: 1}) {
		t.Fatalf("expected huge rect to overlap a point inside it")
	}

	fits := Rect{X: 10, Y: 0, Width: math.MaxInt - 10, Height: 1}
	if fits.Overflows() || fits.Right() != math.MaxInt {
		t.Fatalf("%v: Overflows=%v Right=%d", fits, fits.Overflows(), fits.Right())
	}
	if (Rect{X: -5, Y: 0, Width: -10, Height: 3}).Overflows() {
		t.Fatalf("negative sizes never overflow")
	}
}

func TestRectString(t *testing.T) {
	if got := (Rect{X: 4, Y: 2, Width: 30, Height: 10}).String(); got != "30x10+4+2" {
		t.Fatalf("String() = %q", got)
	}
}
