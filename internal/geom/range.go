package geom

// Range is an interval [Lower, Upper) along one axis. Callers must ensure
// Lower <= Upper; a reversed range is a construction bug and is not
// defended against here.
type Range struct {
	Lower int
	Upper int
}

// Distance returns the length of the range.
func (r Range) Distance() int {
	return r.Upper - r.Lower
}

// Intersects reports whether a and b share at least one pixel.
func Intersects(a, b Range) bool {
	return b.Lower < a.Upper && b.Upper > a.Lower
}

// Subtract removes subtrahend from minuend. The result holds zero ranges
// when subtrahend covers minuend, one when it only clips an end or misses
// entirely (minuend is returned unchanged), and two when it punches a hole
// in the middle.
func Subtract(minuend, subtrahend Range) []Range {
	if !Intersects(minuend, subtrahend) {
		return []Range{minuend}
	}
	var out []Range
	if minuend.Lower < subtrahend.Lower {
		out = append(out, Range{Lower: minuend.Lower, Upper: subtrahend.Lower})
	}
	if minuend.Upper > subtrahend.Upper {
		out = append(out, Range{Lower: subtrahend.Upper, Upper: minuend.Upper})
	}
	return out
}

// SubtractFromAll applies Subtract to each minuend in order and
// concatenates the results.
func SubtractFromAll(minuends []Range, subtrahend Range) []Range {
	out := make([]Range, 0, len(minuends)+1)
	for _, m := range minuends {
		out = append(out, Subtract(m, subtrahend)...)
	}
	return out
}

// Clip returns the part of a that lies inside b. The result is empty
// (Lower == Upper) when they do not intersect.
func Clip(a, b Range) Range {
	lo := max(a.Lower, b.Lower)
	hi := min(a.Upper, b.Upper)
	if hi < lo {
		hi = lo
	}
	return Range{Lower: lo, Upper: hi}
}
