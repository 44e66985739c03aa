package galaxy

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/lixenwraith/galaxy-drift/vmath"
)

const (
	barHalfHeight = 0.1
	barTaperPow   = 1.2
)

// BarTaper returns the cross-section falloff at offset x along a bar of the
// given half-length: 1 at the center, exactly 0 at the ends
func BarTaper(x, length float64) float64 {
	t := 1 - math.Abs(x)/length
	if t <= 0 {
		return 0
	}
	return math.Pow(t, barTaperPow)
}

// GenerateBar fills the central bar: x uniform over [-length, length],
// y and z uniform over the base cross-section and tapered toward the ends
// so the bar narrows to a point instead of a rectangular silhouette.
func GenerateBar(rng *rand.Rand, count int, length, width float64) (PointSet, error) {
	if count <= 0 {
		return PointSet{}, fmt.Errorf("bar: count must be positive, got %d", count)
	}
	if length <= 0 {
		return PointSet{}, fmt.Errorf("bar: length must be positive, got %g", length)
	}
	if width <= 0 {
		return PointSet{}, fmt.Errorf("bar: width must be positive, got %g", width)
	}

	ps := newPointSet(count)
	for i := 0; i < count; i++ {
		x := (rng.Float64()*2 - 1) * length
		y := (rng.Float64() - 0.5) * 2 * barHalfHeight
		z := (rng.Float64() - 0.5) * width

		taper := BarTaper(x, length)

		ps.Positions[i] = vmath.Vec3{
			X: x,
			Y: y * taper,
			Z: z * taper,
		}
		ps.Colors[i] = golden(rng)
	}
	return ps, nil
}
