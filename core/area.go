package core

// Area is an axis-aligned rectangle in logical play-field units
// X, Y is the top-left corner, Y grows downward
type Area struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the x coordinate of the right edge
func (a Area) Right() float64 {
	return a.X + a.Width
}

// Bottom returns the y coordinate of the bottom edge
func (a Area) Bottom() float64 {
	return a.Y + a.Height
}

// Overlaps reports strict overlap; touching edges do not count
func (a Area) Overlaps(b Area) bool {
	return a.X < b.X+b.Width &&
		a.X+a.Width > b.X &&
		a.Y < b.Y+b.Height &&
		a.Y+a.Height > b.Y
}

// Inset shrinks the area by d on every side
// Dimensions never go negative; an over-inset area collapses to its center
func (a Area) Inset(d float64) Area {
	if d <= 0 {
		return a
	}
	w := a.Width - 2*d
	h := a.Height - 2*d
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Area{
		X:      a.X + (a.Width-w)/2,
		Y:      a.Y + (a.Height-h)/2,
		Width:  w,
		Height: h,
	}
}
