package autoscroll

import "github.com/andyrewlee/dragscroll/internal/geom"

// JumpHost applies a jump request: it scrolls containers and, for whatever
// scrolling cannot absorb, moves the dragged item itself.
type JumpHost interface {
	ScrollHost
	Move(offset geom.Position)
}

// JumpScroll spends request on the destination container first, then on
// the window, and moves the item by whatever is left. It returns the
// remainder handed to Move, if any.
func JumpScroll(state DragState, request geom.Position, windowAllowed bool, host JumpHost) (geom.Position, bool) {
	remainder := request
	if sc, ok := state.Scrollable(state.DestinationID); ok {
		remainder, ok = scrollScrollableAsMuchAsItCan(sc, remainder, host)
		if !ok {
			return geom.Origin, false
		}
	}

	remainder, ok := scrollWindowAsMuchAsItCan(state.Viewport, remainder, windowAllowed, host)
	if !ok {
		return geom.Origin, false
	}

	host.Move(remainder)
	return remainder, true
}

func scrollScrollableAsMuchAsItCan(sc Scrollable, change geom.Position, host ScrollHost) (geom.Position, bool) {
	if !CanScrollScrollable(sc, change) {
		return change, true
	}
	overlap, ok := ScrollableOverlap(sc, change)
	if !ok {
		host.ScrollScrollable(sc.ID, change)
		return geom.Origin, false
	}
	canScroll := geom.Subtract(change, overlap)
	host.ScrollScrollable(sc.ID, canScroll)
	return geom.Subtract(change, canScroll), true
}

func scrollWindowAsMuchAsItCan(v Viewport, change geom.Position, allowed bool, host ScrollHost) (geom.Position, bool) {
	if !allowed || !CanScrollWindow(v, change) {
		return change, true
	}
	overlap, ok := WindowOverlap(v, change)
	if !ok {
		host.ScrollWindow(change)
		return geom.Origin, false
	}
	canScroll := geom.Subtract(change, overlap)
	host.ScrollWindow(canScroll)
	return geom.Subtract(change, canScroll), true
}
