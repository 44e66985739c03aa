package galaxy

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/lixenwraith/galaxy-drift/vmath"
)

// Arm vertical profile: thick near the center, thinning toward the rim
const (
	armSpreadBase  = 0.12
	armSpreadFloor = 0.02
	armSpreadPow   = 1.5

	// armJitterMax is the angular jitter at the disk rim; jitter scales
	// linearly with radius so arms widen outward
	armJitterMax = 0.6
)

// GenerateArms distributes count samples across armCount spiral arms of a
// disk with the given radius. Radii are drawn as diskRadius*sqrt(U), which
// biases density toward the center; each sample's arm is i % armCount and
// its angle is the arm base angle plus a logarithmic-spiral approximation
// radius*spiralStrength plus radius-scaled jitter.
func GenerateArms(rng *rand.Rand, count, armCount int, spiralStrength, diskRadius float64) (PointSet, error) {
	if count <= 0 {
		return PointSet{}, fmt.Errorf("arms: count must be positive, got %d", count)
	}
	if armCount <= 0 {
		return PointSet{}, fmt.Errorf("arms: arm count must be positive, got %d", armCount)
	}
	if diskRadius <= 0 {
		return PointSet{}, fmt.Errorf("arms: disk radius must be positive, got %g", diskRadius)
	}

	ps := newPointSet(count)
	for i := 0; i < count; i++ {
		radius := diskRadius * math.Sqrt(rng.Float64())
		rt := radius / diskRadius

		arm := i % armCount
		base := vmath.TwoPi * float64(arm) / float64(armCount)
		jitter := (rng.Float64() - 0.5) * armJitterMax * rt
		angle := base + radius*spiralStrength + jitter

		spread := armSpreadBase*math.Pow(1-rt, armSpreadPow) + armSpreadFloor

		ps.Positions[i] = vmath.Vec3{
			X: math.Cos(angle) * radius,
			Y: (rng.Float64() - 0.5) * spread,
			Z: math.Sin(angle) * radius,
		}
		ps.Colors[i] = armColor(rng, radius)
	}
	return ps, nil
}

// armColor picks the radius band tint, with a rare hot-star override
// outside the core band
func armColor(rng *rand.Rand, radius float64) ColorF {
	var c ColorF
	switch {
	case radius < armInnerRadius:
		c = warmWhite(rng)
	case radius < armMidRadius:
		if rng.Float64() < armBlueFraction {
			c = blueWhite(rng)
		} else {
			c = warmYellow(rng)
		}
	default:
		c = redShifted(rng)
	}

	if radius > armInnerRadius && rng.Float64() < hotStarChance {
		c = hotBlue(rng)
	}
	return c
}
