package vmath

import (
	"math"
	"testing"
)

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"Zero", 0, 0},
		{"InRange", 1.5, 1.5},
		{"FullTurn", TwoPi, 0},
		{"OverTurn", TwoPi + 0.25, 0.25},
		{"Negative", -0.25, TwoPi - 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WrapAngle(tt.in); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("WrapAngle(%g) = %g, want %g", tt.in, got, tt.want)
			}
		})
	}
}

func TestRotateYPreservesRadius(t *testing.T) {
	v := Vec3{X: 3, Y: 2, Z: 4}
	sin, cos := math.Sincos(0.7)

	r := RotateY(v, sin, cos)

	if r.Y != v.Y {
		t.Errorf("rotation changed Y: %g", r.Y)
	}
	before := math.Hypot(v.X, v.Z)
	after := math.Hypot(r.X, r.Z)
	if math.Abs(before-after) > 1e-12 {
		t.Errorf("planar radius changed: %g -> %g", before, after)
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	if got := Normalize(Vec3{}); got != (Vec3{}) {
		t.Errorf("Normalize(zero) = %v, want zero", got)
	}
}

func TestSphericalDistance(t *testing.T) {
	v := Spherical(0.4, 0.3, 12)
	if math.Abs(Mag(v)-12) > 1e-9 {
		t.Errorf("spherical offset magnitude %g, want 12", Mag(v))
	}

	// Yaw 0 / pitch 0 sits on +Z
	v = Spherical(0, 0, 5)
	if math.Abs(v.Z-5) > 1e-12 || math.Abs(v.X) > 1e-12 || math.Abs(v.Y) > 1e-12 {
		t.Errorf("Spherical(0,0,5) = %v, want (0,0,5)", v)
	}
}

func TestCrossOrthogonal(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: -2, Y: 0.5, Z: 1}
	c := Cross(a, b)

	if d := Dot(a, c); math.Abs(d) > 1e-12 {
		t.Errorf("cross not orthogonal to a: dot %g", d)
	}
	if d := Dot(b, c); math.Abs(d) > 1e-12 {
		t.Errorf("cross not orthogonal to b: dot %g", d)
	}
}
