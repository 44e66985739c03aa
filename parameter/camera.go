package parameter

// Camera presets observed per scene variant
const (
	// GalaxyCameraY / GalaxyCameraZ place the richer scene camera at (0,4,12)
	GalaxyCameraY = 4.0
	GalaxyCameraZ = 12.0
	GalaxyFOVDeg  = 60.0

	// DiskCameraY / DiskCameraZ place the simpler scene camera at (0,1,10)
	DiskCameraY = 1.0
	DiskCameraZ = 10.0
	DiskFOVDeg  = 50.0
)

// Orbit control limits
const (
	// OrbitDragSensitivity is radians of yaw per dragged cell
	OrbitDragSensitivity = 0.02

	// OrbitPitchLimit keeps the camera off the poles (radians)
	OrbitPitchLimit = 1.45

	// ZoomStep is the distance multiplier per wheel notch
	ZoomStep = 1.1

	// ZoomMinDistance / ZoomMaxDistance clamp the orbit distance
	ZoomMinDistance = 2.0
	ZoomMaxDistance = 60.0

	// PanStep is the target shift per dragged cell while panning
	PanStep = 0.05
)
