package parameter

// Spiral arms region
const (
	// ArmParticles is the sample count across all arms
	ArmParticles = 24000

	// ArmCount is the number of spiral arms
	ArmCount = 4

	// ArmSpiralStrength is radians of spiral wind-up per unit radius
	ArmSpiralStrength = 1.8

	// ArmDiskRadius is the outer radius of the arm disk
	ArmDiskRadius = 5.0
)

// Central bar region
const (
	BarParticles = 6000

	// BarLength is the bar half-length along x
	BarLength = 2.5

	// BarWidth is the full base width along z
	BarWidth = 0.6
)

// Core bulge region
const (
	CoreParticles = 8000
	CoreRadius    = 1.5
)

// Simple disk variant
const (
	DiskParticles = 12000
	DiskRadius    = 5.0
)

// Rotation increments per rendered frame (radians)
const (
	// GalaxyRotationStep for the richer barred-spiral scene
	GalaxyRotationStep = 0.0002

	// DiskRotationStep for the simpler single-disk scene
	DiskRotationStep = 0.0005
)
