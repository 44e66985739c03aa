package vmath

import (
	"math"
)

const TwoPi = 2 * math.Pi

// WrapAngle normalizes an angle to [0, 2π)
func WrapAngle(a float64) float64 {
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	return a
}

// Spherical converts yaw/pitch/distance to a Cartesian offset.
// Yaw 0 looks down +Z, pitch positive raises above the XZ plane.
func Spherical(yaw, pitch, dist float64) Vec3 {
	cp := math.Cos(pitch)
	return Vec3{
		X: dist * cp * math.Sin(yaw),
		Y: dist * math.Sin(pitch),
		Z: dist * cp * math.Cos(yaw),
	}
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
