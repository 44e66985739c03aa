package scene

import (
	"math"

	"github.com/lixenwraith/galaxy-drift/parameter"
	"github.com/lixenwraith/galaxy-drift/vmath"
)

// Camera is an orbiting perspective camera looking at Target.
// Yaw 0 / pitch 0 places it on the +Z axis.
type Camera struct {
	Target   vmath.Vec3
	Yaw      float64
	Pitch    float64
	Distance float64
	FOVDeg   float64
}

// NewCamera derives orbit parameters from a world position looking at the
// origin, matching the scene presets
func NewCamera(pos vmath.Vec3, fovDeg float64) Camera {
	dist := vmath.Mag(pos)
	if dist == 0 {
		dist = 1
	}
	return Camera{
		Yaw:      math.Atan2(pos.X, pos.Z),
		Pitch:    math.Asin(pos.Y / dist),
		Distance: dist,
		FOVDeg:   fovDeg,
	}
}

// Position returns the camera's world position
func (c *Camera) Position() vmath.Vec3 {
	return vmath.Add(c.Target, vmath.Spherical(c.Yaw, c.Pitch, c.Distance))
}

// Orbit applies a drag delta in cells to yaw and pitch
func (c *Camera) Orbit(dx, dy int) {
	c.Yaw = vmath.WrapAngle(c.Yaw - float64(dx)*parameter.OrbitDragSensitivity)
	c.Pitch = vmath.Clamp(
		c.Pitch+float64(dy)*parameter.OrbitDragSensitivity,
		-parameter.OrbitPitchLimit, parameter.OrbitPitchLimit)
}

// Zoom scales the orbit distance, clamped to the configured range
func (c *Camera) Zoom(in bool) {
	if in {
		c.Distance /= parameter.ZoomStep
	} else {
		c.Distance *= parameter.ZoomStep
	}
	c.Distance = vmath.Clamp(c.Distance, parameter.ZoomMinDistance, parameter.ZoomMaxDistance)
}

// Pan shifts the orbit target in the camera's screen plane
func (c *Camera) Pan(dx, dy int) {
	right, up, _ := c.basis()
	c.Target = vmath.Add(c.Target, vmath.Scale(right, -float64(dx)*parameter.PanStep))
	c.Target = vmath.Add(c.Target, vmath.Scale(up, float64(dy)*parameter.PanStep))
}

// basis returns the camera's right/up/forward unit vectors.
// Pitch is clamped short of the poles so the cross with world-up is safe.
func (c *Camera) basis() (right, up, forward vmath.Vec3) {
	forward = vmath.Normalize(vmath.Sub(c.Target, c.Position()))
	right = vmath.Normalize(vmath.Cross(forward, vmath.Vec3{Y: 1}))
	up = vmath.Cross(right, forward)
	return right, up, forward
}

// Project maps a world point to fractional cell coordinates.
// ok is false when the point is behind the near clip. Depth is the view-space
// distance along the camera forward axis.
func (c *Camera) Project(p vmath.Vec3, width, height int) (cx, cy, depth float64, ok bool) {
	right, up, forward := c.basis()
	rel := vmath.Sub(p, c.Position())

	z := vmath.Dot(rel, forward)
	if z < parameter.SplatNearClip {
		return 0, 0, 0, false
	}

	focal := float64(height) / 2 / math.Tan(c.FOVDeg*math.Pi/360)
	invZ := focal / z

	cx = float64(width)/2 + vmath.Dot(rel, right)*invZ*parameter.CellAspect
	cy = float64(height)/2 - vmath.Dot(rel, up)*invZ
	return cx, cy, z, true
}
