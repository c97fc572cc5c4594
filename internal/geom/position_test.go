package geom

import (
	"math"
	"testing"
)

func TestArithmetic(t *testing.T) {
	a := Position{X: 3, Y: -2}
	b := Position{X: 1, Y: 5}

	if got := Add(a, b); got != (Position{X: 4, Y: 3}) {
		t.Fatalf("Add = %+v", got)
	}
	if got := Subtract(a, b); got != (Position{X: 2, Y: -7}) {
		t.Fatalf("Subtract = %+v", got)
	}
	if got := Negate(a); got != (Position{X: -3, Y: 2}) {
		t.Fatalf("Negate = %+v", got)
	}
	if got := Max(a, b); got != (Position{X: 3, Y: 5}) {
		t.Fatalf("Max = %+v", got)
	}
	if !IsEqual(Add(a, Negate(a)), Origin) {
		t.Fatalf("a + -a should be origin")
	}
}

func TestSign(t *testing.T) {
	tests := []struct {
		name string
		in   Position
		want Position
	}{
		{"zero", Origin, Origin},
		{"positive", Position{X: 12, Y: 0.5}, Position{X: 1, Y: 1}},
		{"negative", Position{X: -0.1, Y: -40}, Position{X: -1, Y: -1}},
		{"mixed", Position{X: 7, Y: -3}, Position{X: 1, Y: -1}},
		{"single axis", Position{X: 0, Y: 9}, Position{X: 0, Y: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sign(tt.in); got != tt.want {
				t.Errorf("Sign(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanDropsNegativeZero(t *testing.T) {
	p := Clean(Position{X: math.Copysign(0, -1), Y: -1})
	if math.Signbit(p.X) {
		t.Fatalf("expected positive zero, got %v", p.X)
	}
	if p.Y != -1 {
		t.Fatalf("expected -1 to be kept, got %v", p.Y)
	}
}

func TestPatchAndOn(t *testing.T) {
	h := Patch(Horizontal, 4, 1)
	if h != (Position{X: 4, Y: 1}) || h.On(Horizontal) != 4 {
		t.Fatalf("horizontal patch = %+v", h)
	}
	v := Patch(Vertical, 4, 1)
	if v != (Position{X: 1, Y: 4}) || v.On(Vertical) != 4 {
		t.Fatalf("vertical patch = %+v", v)
	}
}
