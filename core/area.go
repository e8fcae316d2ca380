package core

// Area represents a rectangular target region
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions, zero area means absent
}

// Empty reports whether the area covers no cells
func (a Area) Empty() bool {
	return a.Width <= 0 || a.Height <= 0
}

// Contains reports whether (x, y) lies inside the area
func (a Area) Contains(x, y int) bool {
	return x >= a.X && x < a.X+a.Width && y >= a.Y && y < a.Y+a.Height
}

// Center returns the middle cell, rounding toward the top-left
func (a Area) Center() (int, int) {
	return a.X + (a.Width-1)/2, a.Y + (a.Height-1)/2
}

// Inset shrinks the area by n on every side
func (a Area) Inset(n int) Area {
	out := Area{X: a.X + n, Y: a.Y + n, Width: a.Width - 2*n, Height: a.Height - 2*n}
	if out.Width < 0 {
		out.Width = 0
	}
	if out.Height < 0 {
		out.Height = 0
	}
	return out
}

// Right returns the first column past the area
func (a Area) Right() int {
	return a.X + a.Width
}

// Bottom returns the first row past the area
func (a Area) Bottom() int {
	return a.Y + a.Height
}
