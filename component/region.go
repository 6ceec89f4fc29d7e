package component

import "github.com/lixenwraith/facefall/core"

// Region is one detected body rectangle for a single tick, never retained
type Region struct {
	X, Y          float64
	Width, Height float64
}

// Area converts the region to a geometry value
func (r Region) Area() core.Area {
	return core.Area{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}
