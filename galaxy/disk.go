package galaxy

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/lixenwraith/galaxy-drift/vmath"
)

const diskThickness = 0.2

// GenerateDisk is the simpler single-region variant: uniform radius and
// angle, thin vertical spread, radial blue-to-white color gradient.
func GenerateDisk(rng *rand.Rand, count int, radius float64) (PointSet, error) {
	if count <= 0 {
		return PointSet{}, fmt.Errorf("disk: count must be positive, got %d", count)
	}
	if radius <= 0 {
		return PointSet{}, fmt.Errorf("disk: radius must be positive, got %g", radius)
	}

	ps := newPointSet(count)
	for i := 0; i < count; i++ {
		r := rng.Float64() * radius
		angle := rng.Float64() * vmath.TwoPi

		ps.Positions[i] = vmath.Vec3{
			X: math.Cos(angle) * r,
			Y: (rng.Float64() - 0.5) * diskThickness,
			Z: math.Sin(angle) * r,
		}

		t := r / radius
		ps.Colors[i] = ColorF{R: t, G: t, B: 1}
	}
	return ps, nil
}
