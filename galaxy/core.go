package galaxy

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/lixenwraith/galaxy-drift/vmath"
)

const (
	// coreConcentration < 1 pulls the radial distribution toward the center
	coreConcentration = 0.3

	// coreFlatten biases the bulge toward an oblate shape
	coreFlatten = 0.6
)

// GenerateCore fills the central bulge by uniform-on-sphere direction
// sampling (phi = acos(2U-1)) with radius*U^0.3 radial concentration,
// then flattens y for an oblate profile.
func GenerateCore(rng *rand.Rand, count int, radius float64) (PointSet, error) {
	if count <= 0 {
		return PointSet{}, fmt.Errorf("core: count must be positive, got %d", count)
	}
	if radius <= 0 {
		return PointSet{}, fmt.Errorf("core: radius must be positive, got %g", radius)
	}

	ps := newPointSet(count)
	for i := 0; i < count; i++ {
		theta := rng.Float64() * vmath.TwoPi
		phi := math.Acos(2*rng.Float64() - 1)
		r := radius * math.Pow(rng.Float64(), coreConcentration)

		sinPhi := math.Sin(phi)
		ps.Positions[i] = vmath.Vec3{
			X: r * sinPhi * math.Cos(theta),
			Y: r * math.Cos(phi) * coreFlatten,
			Z: r * sinPhi * math.Sin(theta),
		}
		ps.Colors[i] = coreWhite(rng)
	}
	return ps, nil
}
