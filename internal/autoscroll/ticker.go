package autoscroll

// TickState is the generation-counted tick loop that drives fluid
// auto-scrolling while an item is dragged. The UI schedules one tick at a
// time and passes the generation back in; a bumped generation invalidates
// any tick still in flight.
type TickState struct {
	// Gen is a generation counter used to invalidate stale tick loops.
	Gen uint64
	// Active is true when a tick loop is currently running.
	Active bool
}

// NeedsTick returns (true, gen) when a new tick loop should be started.
// It bumps the generation counter and marks the state active. If a loop is
// already running it returns (false, 0).
func (s *TickState) NeedsTick() (bool, uint64) {
	if s.Active {
		return false, 0
	}
	s.Active = true
	s.Gen++
	return true, s.Gen
}

// HandleTick reports whether an incoming tick with the given generation
// should run. A stale or inactive tick stops the loop.
func (s *TickState) HandleTick(gen uint64) bool {
	return s.Gen == gen && s.Active
}

// Idle stops the current loop without invalidating the generation; the
// next NeedsTick starts a fresh one.
func (s *TickState) Idle() {
	s.Active = false
}

// Reset stops the loop and bumps the generation so in-flight ticks are
// dropped. Call on drop, cancel, or anything that ends the drag.
func (s *TickState) Reset() {
	s.Active = false
	s.Gen++
}
