package picker

// Rect is the absolute cell bounds of an interactive surface
type Rect struct {
	X, Y int
	W, H int
}

// Empty reports whether the rect has no area
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the cell (x, y) lies inside the rect
func (r Rect) Contains(x, y int) bool {
	return !r.Empty() && x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Normalize maps an absolute cell coordinate to [0,1]x[0,1] relative to the rect,
// first column/row at 0 and last at 1. Points outside yield values outside [0,1];
// callers clamp.
func (r Rect) Normalize(x, y int) (nx, ny float64) {
	return normalizeAxis(x-r.X, r.W), normalizeAxis(y-r.Y, r.H)
}

func normalizeAxis(offset, size int) float64 {
	if size <= 1 {
		return 0
	}
	return float64(offset) / float64(size-1)
}

// cell maps a normalized fraction back to an absolute cell within [origin, origin+span]
func cell(origin, span int, frac float64) int {
	if span <= 0 {
		return origin
	}
	off := int(frac*float64(span) + 0.5)
	return origin + clampInt(off, 0, span)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
