package geom

// Axis selects the vertical or horizontal direction.
type Axis int

const (
	Vertical Axis = iota
	Horizontal
)

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Rect is an edge box in cell coordinates. Right and Bottom are exclusive.
type Rect struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// FromSize builds a Rect from its top-left corner and dimensions.
func FromSize(x, y, width, height float64) Rect {
	return Rect{Top: y, Right: x + width, Bottom: y + height, Left: x}
}

// Width of the box.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height of the box.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Size returns the box length along axis.
func (r Rect) Size(axis Axis) float64 {
	if axis == Horizontal {
		return r.Width()
	}
	return r.Height()
}

// Center is the midpoint of the box.
func (r Rect) Center() Position {
	return Position{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// Contains reports whether p lies inside the box.
func (r Rect) Contains(p Position) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Offset shifts the box by p.
func (r Rect) Offset(p Position) Rect {
	return Rect{
		Top:    r.Top + p.Y,
		Right:  r.Right + p.X,
		Bottom: r.Bottom + p.Y,
		Left:   r.Left + p.X,
	}
}

// EdgeDistances returns how far p is from the start and end edges of the
// box along axis. Distances are negative once p is outside that edge.
func (r Rect) EdgeDistances(p Position, axis Axis) (start, end float64) {
	if axis == Horizontal {
		return p.X - r.Left, r.Right - p.X
	}
	return p.Y - r.Top, r.Bottom - p.Y
}
