package galaxy

import (
	"github.com/lixenwraith/galaxy-drift/vmath"
)

// ColorF holds normalized color channels in [0,1], converted to 8-bit only
// at composite time
type ColorF struct {
	R, G, B float64
}

// PointSet is one renderable particle group: parallel, index-aligned
// position and color arrays, fixed after construction
type PointSet struct {
	Positions []vmath.Vec3
	Colors    []ColorF
}

// Len returns the number of particles in the set
func (p PointSet) Len() int {
	return len(p.Positions)
}

func newPointSet(count int) PointSet {
	return PointSet{
		Positions: make([]vmath.Vec3, count),
		Colors:    make([]ColorF, count),
	}
}
