package autoscroll

import (
	"sync"
	"testing"

	"github.com/andyrewlee/dragscroll/internal/geom"
)

func pos(x, y float64) geom.Position { return geom.Position{X: x, Y: y} }

func state(cx, cy, mx, my float64) ScrollState {
	return ScrollState{Current: pos(cx, cy), Max: pos(mx, my)}
}

func TestOverlap(t *testing.T) {
	tests := []struct {
		name   string
		scroll ScrollState
		change geom.Position
		want   geom.Position
		wantOK bool
	}{
		{"fits", state(5, 5, 10, 10), pos(3, 0), geom.Origin, false},
		{"lands on max", state(5, 5, 10, 10), pos(5, 5), geom.Origin, false},
		{"lands on zero", state(5, 5, 10, 10), pos(-5, -5), geom.Origin, false},
		{"past max on x", state(10, 10, 10, 10), pos(5, 0), pos(5, 0), true},
		{"below zero on y", state(0, 2, 10, 10), pos(0, -6), pos(0, -4), true},
		{"x past max, y fits", state(8, 1, 10, 10), pos(4, 3), pos(2, 0), true},
		{"both axes out", state(1, 9, 10, 10), pos(-3, 4), pos(-2, 3), true},
		{"current above max", state(12, 0, 10, 10), pos(-1, 0), pos(1, 0), true},
		{"zero change", state(3, 3, 10, 10), geom.Origin, geom.Origin, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Overlap(tt.scroll, tt.change)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Overlap(%+v, %+v) = %+v, %v; want %+v, %v",
					tt.scroll, tt.change, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestOverlapPerAxisProperty(t *testing.T) {
	scroll := state(4, 6, 10, 8)
	for dx := -15.0; dx <= 15; dx++ {
		for dy := -15.0; dy <= 15; dy++ {
			change := pos(dx, dy)
			got, ok := Overlap(scroll, change)
			target := geom.Add(scroll.Current, change)

			inside := target.X >= 0 && target.X <= scroll.Max.X &&
				target.Y >= 0 && target.Y <= scroll.Max.Y
			if ok == inside {
				t.Fatalf("change %+v: ok=%v but inside=%v", change, ok, inside)
			}
			if !ok {
				continue
			}
			if want := axisOverlap(target.X, scroll.Max.X); got.X != want {
				t.Fatalf("change %+v: x overlap %v, want %v", change, got.X, want)
			}
			if want := axisOverlap(target.Y, scroll.Max.Y); got.Y != want {
				t.Fatalf("change %+v: y overlap %v, want %v", change, got.Y, want)
			}
		}
	}
}

func TestCanPartiallyScroll(t *testing.T) {
	tests := []struct {
		name   string
		scroll ScrollState
		change geom.Position
		want   bool
	}{
		{"room to move", state(5, 5, 10, 10), pos(3, 0), true},
		{"blocked on the only requested axis", state(10, 10, 10, 10), pos(5, 0), false},
		{"x blocked but y clear", state(10, 5, 10, 10), pos(5, 5), true},
		{"y blocked but x clear", state(5, 10, 10, 10), pos(5, 5), true},
		{"both blocked", state(10, 10, 10, 10), pos(1, 1), false},
		{"backward from beyond max", state(12, 0, 10, 10), pos(-1, 0), true},
		{"forward from beyond max", state(12, 0, 10, 10), pos(1, 0), false},
		{"backward at zero", state(0, 0, 10, 10), pos(0, -3), false},
		{"large change partially possible", state(9, 0, 10, 10), pos(40, 0), true},
		{"no change inside bounds", state(3, 3, 10, 10), geom.Origin, true},
		{"nothing scrollable", state(0, 0, 0, 0), pos(0, 2), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanPartiallyScroll(tt.scroll, tt.change); got != tt.want {
				t.Errorf("CanPartiallyScroll(%+v, %+v) = %v, want %v",
					tt.scroll, tt.change, got, tt.want)
			}
		})
	}
}

func TestFullChangeOverlapWhenBlocked(t *testing.T) {
	scroll := state(10, 10, 10, 10)
	change := pos(5, 0)

	overlap, ok := Overlap(scroll, change)
	if !ok || overlap != pos(5, 0) {
		t.Fatalf("Overlap = %+v, %v; want {5 0}, true", overlap, ok)
	}
	if CanPartiallyScroll(scroll, change) {
		t.Fatalf("expected CanPartiallyScroll to be false")
	}
}

func TestAdaptersUseRawMaxForOverlap(t *testing.T) {
	// current exceeds max: the can-scroll check inflates max, the overlap
	// keeps the reported one.
	scroll := state(12, 0, 10, 10)
	change := pos(-1, 0)

	v := Viewport{Scroll: scroll}
	if !CanScrollWindow(v, change) {
		t.Fatalf("expected window to scroll backward")
	}
	overlap, ok := WindowOverlap(v, change)
	if !ok || overlap != pos(1, 0) {
		t.Fatalf("WindowOverlap = %+v, %v; want {1 0}, true", overlap, ok)
	}

	s := Scrollable{ID: "col", Scroll: scroll}
	if !CanScrollScrollable(s, change) {
		t.Fatalf("expected scrollable to scroll backward")
	}
	overlap, ok = ScrollableOverlap(s, change)
	if !ok || overlap != pos(1, 0) {
		t.Fatalf("ScrollableOverlap = %+v, %v; want {1 0}, true", overlap, ok)
	}
}

func TestAdaptersReportNothingWhenBlocked(t *testing.T) {
	scroll := state(10, 10, 10, 10)
	change := pos(5, 0)

	// Raw Overlap would report {5 0} here.
	if _, ok := Overlap(scroll, change); !ok {
		t.Fatalf("expected raw overlap")
	}
	if got, ok := WindowOverlap(Viewport{Scroll: scroll}, change); ok {
		t.Fatalf("WindowOverlap = %+v, want none", got)
	}
	if got, ok := ScrollableOverlap(Scrollable{Scroll: scroll}, change); ok {
		t.Fatalf("ScrollableOverlap = %+v, want none", got)
	}
}

func TestAdaptersMatchPartialScroll(t *testing.T) {
	scroll := state(8, 3, 10, 10)
	change := pos(6, -1)

	if got, want := CanScrollWindow(Viewport{Scroll: scroll}, change), CanPartiallyScroll(scroll, change); got != want {
		t.Fatalf("CanScrollWindow = %v, CanPartiallyScroll = %v", got, want)
	}
	got, ok := ScrollableOverlap(Scrollable{Scroll: scroll}, change)
	if !ok || got != pos(4, 0) {
		t.Fatalf("ScrollableOverlap = %+v, %v; want {4 0}, true", got, ok)
	}
}

func TestCalculatorIsRepeatableAcrossGoroutines(t *testing.T) {
	scroll := state(10, 5, 10, 10)
	change := pos(5, 5)
	wantOverlap, wantOK := Overlap(scroll, change)
	wantCan := CanPartiallyScroll(scroll, change)

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				got, ok := Overlap(scroll, change)
				if got != wantOverlap || ok != wantOK {
					errs <- "overlap changed between calls"
					return
				}
				if CanPartiallyScroll(scroll, change) != wantCan {
					errs <- "can-scroll changed between calls"
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}
