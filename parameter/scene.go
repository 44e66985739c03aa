package parameter

// Frame pacing
const (
	// TargetFPS drives the render ticker; the per-frame update is O(1) so
	// the rate only affects apparent rotation speed
	TargetFPS = 30
)

// Sprite asset
const (
	// SpriteURL is the remotely-hosted circular point sprite shared by all
	// regions, fetched once at mount
	SpriteURL = "https://threejs.org/examples/textures/sprites/disc.png"

	// SpriteKernelSize is the side of the downsampled intensity footprint
	SpriteKernelSize = 7
)

// Per-region splat sizes; slight variation suggests depth and density
const (
	ArmPointSize  = 0.9
	BarPointSize  = 1.0
	CorePointSize = 1.15
	DiskPointSize = 1.0
)

// Splat brightness shaping
const (
	// SplatBrightness is the base intensity of a single particle splat;
	// additive accumulation does the rest
	SplatBrightness = 0.16

	// SplatDepthReference is the view depth at which a splat renders at
	// its base brightness; nearer particles brighten, farther dim
	SplatDepthReference = 12.0

	// SplatNearClip drops particles that reach behind the camera
	SplatNearClip = 0.5

	// CellAspect doubles horizontal extent to compensate terminal cells
	// being roughly twice as tall as wide
	CellAspect = 2.0
)
