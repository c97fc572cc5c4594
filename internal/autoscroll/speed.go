package autoscroll

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/andyrewlee/dragscroll/internal/geom"
)

// minScroll is the smallest non-zero speed; any active scroll moves at least
// one cell per tick.
const minScroll = 1

// ErrInvalidConfig is wrapped by Config.Validate failures.
var ErrInvalidConfig = errors.New("invalid autoscroll config")

// Config tunes fluid auto-scrolling.
type Config struct {
	// StartFromPercentage is the share of the container length, measured
	// from an edge, inside which scrolling begins.
	StartFromPercentage float64
	// MaxSpeedAtPercentage is the share of the container length, measured
	// from an edge, inside which the maximum speed applies.
	MaxSpeedAtPercentage float64
	// MaxSpeed is the largest scroll step per tick, in cells.
	MaxSpeed float64
	// AccelerateAt is how long after drag start the speed begins ramping up
	// when the drag started inside a scroll zone.
	AccelerateAt time.Duration
	// StopDampeningAt is when the full speed becomes available.
	StopDampeningAt time.Duration
	// TickInterval is the delay between scroll ticks while dragging.
	TickInterval time.Duration
	// WindowScrollAllowed enables scrolling the window, not just columns.
	WindowScrollAllowed bool
}

// DefaultConfig returns tuning suited to a terminal grid.
func DefaultConfig() Config {
	return Config{
		StartFromPercentage:  0.25,
		MaxSpeedAtPercentage: 0.05,
		MaxSpeed:             3,
		AccelerateAt:         360 * time.Millisecond,
		StopDampeningAt:      1200 * time.Millisecond,
		TickInterval:         50 * time.Millisecond,
		WindowScrollAllowed:  true,
	}
}

// Validate checks the config for values the speed curve cannot use.
func (c Config) Validate() error {
	if c.StartFromPercentage <= 0 || c.StartFromPercentage > 1 {
		return fmt.Errorf("%w: start_from_percentage %v not in (0, 1]", ErrInvalidConfig, c.StartFromPercentage)
	}
	if c.MaxSpeedAtPercentage < 0 || c.MaxSpeedAtPercentage >= c.StartFromPercentage {
		return fmt.Errorf("%w: max_speed_at_percentage %v must be in [0, %v)", ErrInvalidConfig, c.MaxSpeedAtPercentage, c.StartFromPercentage)
	}
	if c.MaxSpeed < minScroll {
		return fmt.Errorf("%w: max_speed %v below %d", ErrInvalidConfig, c.MaxSpeed, minScroll)
	}
	if c.AccelerateAt < 0 || c.StopDampeningAt < c.AccelerateAt {
		return fmt.Errorf("%w: accelerate_at %v must not exceed stop_dampening_at %v", ErrInvalidConfig, c.AccelerateAt, c.StopDampeningAt)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick_interval must be positive", ErrInvalidConfig)
	}
	return nil
}

func ease(p float64) float64 { return p * p }

// percentage locates current within [start, end] as 0..1.
func percentage(start, end, current float64) float64 {
	span := end - start
	if span == 0 {
		return 0
	}
	return (current - start) / span
}

type thresholds struct {
	startScrollingFrom float64
	maxScrollValueAt   float64
}

func (c Config) thresholds(container geom.Rect, axis geom.Axis) thresholds {
	length := container.Size(axis)
	return thresholds{
		startScrollingFrom: length * c.StartFromPercentage,
		maxScrollValueAt:   length * c.MaxSpeedAtPercentage,
	}
}

func (c Config) valueFromDistance(distance float64, t thresholds) float64 {
	if distance > t.startScrollingFrom {
		return 0
	}
	if distance <= t.maxScrollValueAt {
		return c.MaxSpeed
	}
	if distance == t.startScrollingFrom {
		return minScroll
	}
	fromMax := percentage(t.maxScrollValueAt, t.startScrollingFrom, distance)
	return math.Ceil(c.MaxSpeed * ease(1-fromMax))
}

func (c Config) dampenByTime(proposed float64, runTime time.Duration) float64 {
	if runTime >= c.StopDampeningAt {
		return proposed
	}
	if runTime < c.AccelerateAt {
		return minScroll
	}
	pct := percentage(float64(c.AccelerateAt), float64(c.StopDampeningAt), float64(runTime))
	return math.Ceil(proposed * ease(pct))
}

// Dampening describes how long a drag has been running and whether the
// speed should ramp up over time.
type Dampening struct {
	Enabled bool
	RunTime time.Duration
}

func (c Config) value(distance float64, t thresholds, d Dampening) float64 {
	speed := c.valueFromDistance(distance, t)
	if speed == 0 {
		return 0
	}
	if !d.Enabled {
		return speed
	}
	return math.Max(c.dampenByTime(speed, d.RunTime), minScroll)
}

func (c Config) scrollOnAxis(container geom.Rect, center geom.Position, axis geom.Axis, d Dampening) float64 {
	t := c.thresholds(container, axis)
	start, end := container.EdgeDistances(center, axis)
	if end < start {
		return c.value(end, t, d)
	}
	return -c.value(start, t, d)
}

// Speed computes the fluid scroll change for a subject centered on center
// inside container. ok is false when no scroll is needed.
func (c Config) Speed(container, subject geom.Rect, center geom.Position, d Dampening) (geom.Position, bool) {
	required := geom.Clean(geom.Position{
		X: c.scrollOnAxis(container, center, geom.Horizontal, d),
		Y: c.scrollOnAxis(container, center, geom.Vertical, d),
	})
	if geom.IsEqual(required, geom.Origin) {
		return geom.Origin, false
	}

	limited, ok := adjustForSizeLimits(container, subject, required)
	if !ok || geom.IsEqual(limited, geom.Origin) {
		return geom.Origin, false
	}
	return limited, true
}

// adjustForSizeLimits stops scrolling on any axis where the subject is
// larger than the container; the edge would be reached immediately.
func adjustForSizeLimits(container, subject geom.Rect, proposed geom.Position) (geom.Position, bool) {
	tooTall := subject.Height() > container.Height()
	tooWide := subject.Width() > container.Width()

	switch {
	case !tooTall && !tooWide:
		return proposed, true
	case tooTall && tooWide:
		return geom.Origin, false
	}
	if tooWide {
		proposed.X = 0
	}
	if tooTall {
		proposed.Y = 0
	}
	return proposed, true
}
