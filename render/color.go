package render

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}

	// RgbBackground is the backdrop behind untouched cells
	RgbBackground = RGB{0, 0, 0}
)

// RGBFromFloats converts normalized [0,1] channels to 8-bit, clamping
func RGBFromFloats(r, g, b float64) RGB {
	return RGB{R: clampChan(r * 255), G: clampChan(g * 255), B: clampChan(b * 255)}
}

func clampChan(v float64) uint8 {
	if v >= 255 {
		return 255
	}
	if v <= 0 {
		return 0
	}
	return uint8(v)
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func Blend(dst, src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(dst.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(dst.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(dst.B)*inv),
	}
}

// Add performs additive blend with clamping (light accumulation)
func Add(dst, src RGB) RGB {
	return RGB{
		R: uint8(min(int(dst.R)+int(src.R), 255)),
		G: uint8(min(int(dst.G)+int(src.G), 255)),
		B: uint8(min(int(dst.B)+int(src.B), 255)),
	}
}

// Max returns per-channel maximum (non-destructive highlight)
func Max(dst, src RGB) RGB {
	return RGB{
		R: max(dst.R, src.R),
		G: max(dst.G, src.G),
		B: max(dst.B, src.B),
	}
}

// Screen performs screen blend: 255 - (255-dst)*(255-src)/255
// Softer than Add, never clips hard
func Screen(dst, src RGB) RGB {
	return RGB{
		R: screenChan(dst.R, src.R),
		G: screenChan(dst.G, src.G),
		B: screenChan(dst.B, src.B),
	}
}

func screenChan(d, s uint8) uint8 {
	return uint8(255 - (int(255-d)*int(255-s))/255)
}

// ScaleRGB multiplies all channels by f with clamping
func ScaleRGB(c RGB, f float64) RGB {
	return RGB{
		R: clampChan(float64(c.R) * f),
		G: clampChan(float64(c.G) * f),
		B: clampChan(float64(c.B) * f),
	}
}

// Lerp interpolates between two colors, t in [0,1]
func Lerp(a, b RGB, t float64) RGB {
	return Blend(a, b, t)
}
