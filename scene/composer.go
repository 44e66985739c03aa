package scene

import (
	"math"

	"github.com/lixenwraith/galaxy-drift/asset"
	"github.com/lixenwraith/galaxy-drift/galaxy"
	"github.com/lixenwraith/galaxy-drift/parameter"
	"github.com/lixenwraith/galaxy-drift/render"
	"github.com/lixenwraith/galaxy-drift/vmath"
)

// State is the composer lifecycle: nothing renders until the shared sprite
// is ready, then the scene rotates indefinitely until unmount
type State int

const (
	StateLoading State = iota
	StateReady
)

// Advance returns angle advanced by step, wrapped to [0, 2π).
// Pure so rotation accumulation is testable without a live scene.
func Advance(angle, step float64) float64 {
	return vmath.WrapAngle(angle + step)
}

// Region is one renderable point-cloud primitive: an immutable point set,
// its 8-bit colors converted once, and a rotation angle owned here and
// advanced by the per-frame update
type Region struct {
	Name      string
	Points    galaxy.PointSet
	PointSize float64

	colors []render.RGB
	angle  float64
	step   float64
}

// Rotation returns the region's current angle
func (r *Region) Rotation() float64 {
	return r.angle
}

// Composer assembles generated point sets into renderable regions sharing
// one sprite kernel, and drives the per-frame rotation
type Composer struct {
	regions []*Region
	sprite  *asset.Sprite
	camera  Camera
	mounted bool
	paused  bool
}

// NewComposer creates a composer around a camera and a shared sprite
func NewComposer(camera Camera, sprite *asset.Sprite) *Composer {
	return &Composer{
		camera: camera,
		sprite: sprite,
	}
}

// AddRegion registers a generated point set with its splat size and
// per-frame rotation step. Colors are converted to 8-bit once; the point
// set is never touched again after this.
func (c *Composer) AddRegion(name string, ps galaxy.PointSet, pointSize, step float64) *Region {
	colors := make([]render.RGB, ps.Len())
	for i, col := range ps.Colors {
		colors[i] = render.RGBFromFloats(col.R, col.G, col.B)
	}
	r := &Region{
		Name:      name,
		Points:    ps,
		PointSize: pointSize,
		colors:    colors,
		step:      step,
	}
	c.regions = append(c.regions, r)
	return r
}

// Mount starts the sprite fetch and begins accepting frame updates
func (c *Composer) Mount() {
	if c.mounted {
		return
	}
	c.mounted = true
	if c.sprite.State() == asset.SpriteLoading && c.sprite.Kernel() == nil {
		c.sprite.Fetch()
	}
}

// Unmount releases the regions and stops accepting updates
func (c *Composer) Unmount() {
	c.regions = nil
	c.mounted = false
}

// State reports Loading until the shared sprite kernel is available
func (c *Composer) State() State {
	if c.mounted && c.sprite.State() == asset.SpriteReady {
		return StateReady
	}
	return StateLoading
}

// Camera exposes the orbit camera for input handling
func (c *Composer) Camera() *Camera {
	return &c.camera
}

// SetPaused stops rotation without tearing anything down
func (c *Composer) SetPaused(p bool) {
	c.paused = p
}

// Paused reports whether rotation is held
func (c *Composer) Paused() bool {
	return c.paused
}

// Regions returns the mounted regions
func (c *Composer) Regions() []*Region {
	return c.regions
}

// Update advances each region's rotation by its per-frame step.
// O(1) in particle count: only scalar angles are touched.
func (c *Composer) Update() {
	if !c.mounted || c.paused {
		return
	}
	for _, r := range c.regions {
		r.angle = Advance(r.angle, r.step)
	}
}

// Draw composites every region into the buffer. While the sprite is still
// loading (or failed) nothing is drawn and no error is raised.
func (c *Composer) Draw(buf *render.Buffer) {
	if c.State() != StateReady {
		return
	}
	kernel := c.sprite.Kernel()
	width, height := buf.Size()

	for _, r := range c.regions {
		c.drawRegion(buf, r, kernel, width, height)
	}
}

func (c *Composer) drawRegion(buf *render.Buffer, r *Region, kernel *asset.Kernel, width, height int) {
	sin, cos := math.Sincos(r.angle)
	half := kernel.Size / 2

	for i, p := range r.Points.Positions {
		world := vmath.RotateY(p, sin, cos)
		cx, cy, depth, ok := c.camera.Project(world, width, height)
		if !ok {
			continue
		}

		// Depth attenuation suggests distance; additive accumulation makes
		// dense areas bloom without any depth sorting
		brightness := parameter.SplatBrightness * r.PointSize * parameter.SplatDepthReference / depth
		col := r.colors[i]

		x0, y0 := int(cx)-half, int(cy)-half
		for ky := 0; ky < kernel.Size; ky++ {
			for kx := 0; kx < kernel.Size; kx++ {
				w := kernel.At(kx, ky) * brightness
				if w <= 0 {
					continue
				}
				buf.Set(x0+kx, y0+ky, 0, render.RGB{}, render.ScaleRGB(col, w), render.BlendAddBg, 1)
			}
		}
	}
}
