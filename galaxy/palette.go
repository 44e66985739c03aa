package galaxy

import (
	"math/rand"
)

// Arm color banding thresholds and probabilities.
// These drive the visual identity of the spiral; the RGB ramps below are
// tunable, the thresholds are not.
const (
	armInnerRadius  = 1.2  // below: warm core band
	armMidRadius    = 3.0  // below: mixed blue/yellow band, above: red rim
	armBlueFraction = 0.7  // blue-white share of the mid band
	hotStarChance   = 0.01 // bright-blue override past the core band
)

// warmWhite is the yellow-white tint of the inner disk
func warmWhite(rng *rand.Rand) ColorF {
	return ColorF{
		R: 1.0,
		G: 0.88 + rng.Float64()*0.08,
		B: 0.70 + rng.Float64()*0.10,
	}
}

// blueWhite is the young-star tint of the mid disk
func blueWhite(rng *rand.Rand) ColorF {
	return ColorF{
		R: 0.72 + rng.Float64()*0.10,
		G: 0.82 + rng.Float64()*0.10,
		B: 1.0,
	}
}

// warmYellow is the older-population tint mixed into the mid disk
func warmYellow(rng *rand.Rand) ColorF {
	return ColorF{
		R: 1.0,
		G: 0.78 + rng.Float64()*0.08,
		B: 0.50 + rng.Float64()*0.12,
	}
}

// redShifted is the dim outer-rim tint with randomized G/B channels
func redShifted(rng *rand.Rand) ColorF {
	return ColorF{
		R: 0.85 + rng.Float64()*0.15,
		G: 0.30 + rng.Float64()*0.30,
		B: 0.25 + rng.Float64()*0.30,
	}
}

// hotBlue is the rare bright "hot star" override
func hotBlue(_ *rand.Rand) ColorF {
	return ColorF{R: 0.55, G: 0.75, B: 1.0}
}

// golden is the central-bar tint with small G/B jitter
func golden(rng *rand.Rand) ColorF {
	return ColorF{
		R: 1.0,
		G: 0.76 + rng.Float64()*0.10,
		B: 0.35 + rng.Float64()*0.12,
	}
}

// coreWhite is the bulge tint: near-white with small G/B jitter
func coreWhite(rng *rand.Rand) ColorF {
	return ColorF{
		R: 1.0,
		G: 0.92 + rng.Float64()*0.06,
		B: 0.84 + rng.Float64()*0.10,
	}
}
