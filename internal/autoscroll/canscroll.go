package autoscroll

import "github.com/andyrewlee/dragscroll/internal/geom"

// ScrollState is the current and maximum scroll offset of a container.
type ScrollState struct {
	Current geom.Position
	Max     geom.Position
}

// Viewport is the window: the outermost scroll container.
type Viewport struct {
	Frame  geom.Rect
	Scroll ScrollState
}

// Scrollable is an in-page scroll container, such as a board column.
type Scrollable struct {
	ID     string
	Frame  geom.Rect
	Scroll ScrollState
}

// Overlap reports the part of change that scrolling cannot absorb because
// current+change leaves [0, max] on an axis. Each axis is handled on its own:
// below zero the remainder is the (negative) target, above max it is
// target-max. ok is false when the change fits entirely.
func Overlap(scroll ScrollState, change geom.Position) (geom.Position, bool) {
	target := geom.Add(scroll.Current, change)

	overlap := geom.Position{
		X: axisOverlap(target.X, scroll.Max.X),
		Y: axisOverlap(target.Y, scroll.Max.Y),
	}
	if geom.IsEqual(overlap, geom.Origin) {
		return geom.Origin, false
	}
	return overlap, true
}

func axisOverlap(target, max float64) float64 {
	if target < 0 {
		return target
	}
	if target > max {
		return target - max
	}
	return 0
}

// CanPartiallyScroll reports whether any progress in the direction of
// change is possible, even if the full change is not.
//
// The reported max can lag behind current when a cross-axis scrollbar
// changes the container geometry, so max is raised to at least current.
// Otherwise moving back from an already exceeded bound would be refused.
func CanPartiallyScroll(scroll ScrollState, change geom.Position) bool {
	adjusted := ScrollState{
		Current: scroll.Current,
		Max:     geom.Max(scroll.Current, scroll.Max),
	}

	// Only the smallest step in the requested direction matters here.
	smallest := geom.Sign(change)

	overlap, ok := Overlap(adjusted, smallest)
	if !ok {
		return true
	}
	if smallest.X != 0 && overlap.X == 0 {
		return true
	}
	if smallest.Y != 0 && overlap.Y == 0 {
		return true
	}
	return false
}

// CanScrollWindow reports whether the window can move at all toward change.
func CanScrollWindow(v Viewport, change geom.Position) bool {
	return CanPartiallyScroll(v.Scroll, change)
}

// CanScrollScrollable reports whether s can move at all toward change.
func CanScrollScrollable(s Scrollable, change geom.Position) bool {
	return CanPartiallyScroll(s.Scroll, change)
}

// WindowOverlap returns the part of change the window cannot absorb.
// It reports nothing when the window cannot scroll toward change at all.
func WindowOverlap(v Viewport, change geom.Position) (geom.Position, bool) {
	if !CanScrollWindow(v, change) {
		return geom.Origin, false
	}
	return Overlap(v.Scroll, change)
}

// ScrollableOverlap returns the part of change s cannot absorb.
// It reports nothing when s cannot scroll toward change at all.
func ScrollableOverlap(s Scrollable, change geom.Position) (geom.Position, bool) {
	if !CanScrollScrollable(s, change) {
		return geom.Origin, false
	}
	return Overlap(s.Scroll, change)
}
