package core

// Point is a cell-grid coordinate
type Point struct {
	X, Y int
}

// Rect represents a rectangular screen region
type Rect struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions in cells
}

// Right returns the exclusive right edge
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the exclusive bottom edge
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// CenterX returns the horizontal center
func (r Rect) CenterX() int {
	return r.X + r.Width/2
}

// CenterY returns the vertical center
func (r Rect) CenterY() int {
	return r.Y + r.Height/2
}

// Contains checks if point is within rect
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Offset returns the rect translated by dx, dy
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Empty reports whether the rect covers no cells
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// VerticalDistance returns the Y-axis distance from y to the rect's
// vertical band. Zero when y falls within [Y, Bottom), regardless of X
func (r Rect) VerticalDistance(y int) int {
	if y < r.Y {
		return r.Y - y
	}
	if y >= r.Bottom() {
		return y - r.Bottom() + 1
	}
	return 0
}

// Abs returns the absolute value of v
func Abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
