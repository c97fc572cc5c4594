package geom

import "testing"

func TestRectDimensions(t *testing.T) {
	r := FromSize(2, 4, 10, 6)
	if r.Width() != 10 || r.Height() != 6 {
		t.Fatalf("size = %vx%v", r.Width(), r.Height())
	}
	if r.Size(Horizontal) != 10 || r.Size(Vertical) != 6 {
		t.Fatalf("axis size mismatch")
	}
	if c := r.Center(); c != (Position{X: 7, Y: 7}) {
		t.Fatalf("center = %+v", c)
	}
}

func TestRectContains(t *testing.T) {
	r := FromSize(0, 0, 4, 2)
	tests := []struct {
		p    Position
		want bool
	}{
		{Position{X: 0, Y: 0}, true},
		{Position{X: 3, Y: 1}, true},
		{Position{X: 4, Y: 1}, false},
		{Position{X: 1, Y: 2}, false},
		{Position{X: -1, Y: 0}, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%+v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestRectEdgeDistances(t *testing.T) {
	r := Rect{Top: 10, Right: 50, Bottom: 30, Left: 20}
	start, end := r.EdgeDistances(Position{X: 25, Y: 28}, Vertical)
	if start != 18 || end != 2 {
		t.Fatalf("vertical distances = %v, %v", start, end)
	}
	start, end = r.EdgeDistances(Position{X: 25, Y: 28}, Horizontal)
	if start != 5 || end != 25 {
		t.Fatalf("horizontal distances = %v, %v", start, end)
	}
	moved := r.Offset(Position{X: -20, Y: 5})
	if moved != (Rect{Top: 15, Right: 30, Bottom: 35, Left: 0}) {
		t.Fatalf("offset = %+v", moved)
	}
}
