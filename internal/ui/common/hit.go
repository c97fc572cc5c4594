package common

// HitRegion represents a rectangular hit target in view-local coordinates.
type HitRegion struct {
	ID     string
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the point is within the hit region bounds.
func (h HitRegion) Contains(x, y int) bool {
	return x >= h.X && x < h.X+h.Width && y >= h.Y && y < h.Y+h.Height
}

// Offset returns the region shifted by dx, dy.
func (h HitRegion) Offset(dx, dy int) HitRegion {
	h.X += dx
	h.Y += dy
	return h
}

// HitTest returns the last region containing the point, so regions appended
// later (drawn on top) win.
func HitTest(regions []HitRegion, x, y int) (HitRegion, bool) {
	for i := len(regions) - 1; i >= 0; i-- {
		if regions[i].Contains(x, y) {
			return regions[i], true
		}
	}
	return HitRegion{}, false
}
