package autoscroll

import (
	"time"

	"github.com/andyrewlee/dragscroll/internal/geom"
	"github.com/andyrewlee/dragscroll/internal/logging"
)

// DragState is a snapshot of an in-progress drag, as seen by the scrollers.
type DragState struct {
	// Center is the center of the dragged item, in screen cells.
	Center geom.Position
	// Subject is the box of the dragged item.
	Subject geom.Rect
	// Viewport is the window.
	Viewport Viewport
	// Scrollables are the scroll containers the item can be dropped in.
	Scrollables []Scrollable
	// DestinationID names the scrollable currently dragged over, if any.
	DestinationID string
}

// Scrollable returns the scrollable with the given id.
func (s DragState) Scrollable(id string) (Scrollable, bool) {
	for _, sc := range s.Scrollables {
		if sc.ID == id {
			return sc, true
		}
	}
	return Scrollable{}, false
}

// ScrollHost applies scroll changes decided by the scrollers.
type ScrollHost interface {
	ScrollWindow(change geom.Position)
	ScrollScrollable(id string, change geom.Position)
}

// FluidScroller scrolls the window or a scroll container while the dragged
// item sits near one of its edges. Call Scroll once per tick.
type FluidScroller struct {
	cfg Config
	now func() time.Time

	dragging  bool
	startedAt time.Time
	dampen    bool
}

// NewFluidScroller creates a scroller with the given tuning.
func NewFluidScroller(cfg Config) *FluidScroller {
	return &FluidScroller{cfg: cfg, now: time.Now}
}

// SetConfig swaps the tuning; it takes effect on the next tick.
func (f *FluidScroller) SetConfig(cfg Config) { f.cfg = cfg }

// Config returns the current tuning.
func (f *FluidScroller) Config() Config { return f.cfg }

// SetClock overrides the time source.
func (f *FluidScroller) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	f.now = now
}

// Dragging reports whether Start was called without a matching Stop.
func (f *FluidScroller) Dragging() bool { return f.dragging }

// Start begins a drag. Speed only ramps up over time when the item was
// already inside a scroll zone at the start, so that lifting an item near
// an edge does not immediately scroll at full speed. It reports whether
// scrolling is needed right away.
func (f *FluidScroller) Start(state DragState) bool {
	probe := &probeHost{}
	f.dragging = true
	f.dampen = false
	f.startedAt = time.Time{}
	f.scroll(state, probe, Dampening{})

	f.startedAt = f.now()
	f.dampen = probe.needed
	logging.Debug("autoscroll: drag started (dampen=%v)", f.dampen)
	return probe.needed
}

// Stop ends the drag.
func (f *FluidScroller) Stop() {
	f.dragging = false
	f.dampen = false
	f.startedAt = time.Time{}
}

// Scroll applies at most one scroll change to host for the current state.
// The window is preferred over scroll containers. It reports whether
// anything was scrolled.
func (f *FluidScroller) Scroll(state DragState, host ScrollHost) bool {
	if !f.dragging {
		return false
	}
	d := Dampening{Enabled: f.dampen, RunTime: f.now().Sub(f.startedAt)}
	return f.scroll(state, host, d)
}

func (f *FluidScroller) scroll(state DragState, host ScrollHost, d Dampening) bool {
	if f.cfg.WindowScrollAllowed {
		if change, ok := f.windowChange(state, d); ok {
			host.ScrollWindow(change)
			return true
		}
	}

	sc, ok := bestScrollable(state)
	if !ok {
		return false
	}
	change, ok := f.cfg.Speed(sc.Frame, state.Subject, state.Center, d)
	if !ok || !CanScrollScrollable(sc, change) {
		return false
	}
	host.ScrollScrollable(sc.ID, change)
	return true
}

func (f *FluidScroller) windowChange(state DragState, d Dampening) (geom.Position, bool) {
	change, ok := f.cfg.Speed(state.Viewport.Frame, state.Subject, state.Center, d)
	if !ok || !CanScrollWindow(state.Viewport, change) {
		return geom.Origin, false
	}
	return change, true
}

// bestScrollable picks the container being dragged over; without a
// destination it falls back to the first container under the center.
func bestScrollable(state DragState) (Scrollable, bool) {
	if state.DestinationID != "" {
		return state.Scrollable(state.DestinationID)
	}
	for _, sc := range state.Scrollables {
		if sc.Frame.Contains(state.Center) {
			return sc, true
		}
	}
	return Scrollable{}, false
}

type probeHost struct {
	needed bool
}

func (p *probeHost) ScrollWindow(geom.Position) { p.needed = true }
func (p *probeHost) ScrollScrollable(string, geom.Position) { p.needed = true }
