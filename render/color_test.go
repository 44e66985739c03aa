package render

import (
	"testing"
)

func TestRGBFromFloats(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		want    RGB
	}{
		{"Black", 0, 0, 0, RGB{0, 0, 0}},
		{"White", 1, 1, 1, RGB{255, 255, 255}},
		{"Mid", 0.5, 0.5, 0.5, RGB{127, 127, 127}},
		{"Clamp high", 2, 1.5, 1.1, RGB{255, 255, 255}},
		{"Clamp low", -1, -0.5, 0, RGB{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBFromFloats(tt.r, tt.g, tt.b)
			if got != tt.want {
				t.Errorf("RGBFromFloats(%g,%g,%g) = %v, want %v", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestAddClamps(t *testing.T) {
	got := Add(RGB{200, 100, 0}, RGB{100, 100, 100})
	want := RGB{255, 200, 100}
	if got != want {
		t.Errorf("Add = %v, want %v", got, want)
	}
}

func TestScreenNeverClips(t *testing.T) {
	// Screen of two non-white colors stays below white
	got := Screen(RGB{200, 200, 200}, RGB{200, 200, 200})
	if got.R == 255 || got.G == 255 || got.B == 255 {
		t.Errorf("Screen clipped to white: %v", got)
	}
	// Screen with white saturates
	if got := Screen(RGB{10, 20, 30}, RGB{255, 255, 255}); got != (RGB{255, 255, 255}) {
		t.Errorf("Screen with white = %v, want white", got)
	}
	// Screen with black is identity
	if got := Screen(RGB{10, 20, 30}, RGBBlack); got != (RGB{10, 20, 30}) {
		t.Errorf("Screen with black = %v, want identity", got)
	}
}

func TestBlendEndpoints(t *testing.T) {
	a := RGB{10, 20, 30}
	b := RGB{200, 100, 50}
	if got := Blend(a, b, 0); got != a {
		t.Errorf("alpha 0: got %v, want dst %v", got, a)
	}
	if got := Blend(a, b, 1); got != b {
		t.Errorf("alpha 1: got %v, want src %v", got, b)
	}
}

func TestBufferAdditiveAccumulation(t *testing.T) {
	buf := NewBuffer(4, 4)

	// Two additive splats on the same cell accumulate
	buf.Set(1, 1, 0, RGB{}, RGB{100, 50, 25}, BlendAddBg, 1)
	buf.Set(1, 1, 0, RGB{}, RGB{100, 50, 25}, BlendAddBg, 1)

	got := buf.At(1, 1).Bg
	want := RGB{200, 100, 50}
	if got != want {
		t.Errorf("accumulated bg = %v, want %v", got, want)
	}

	// Untouched neighbor keeps the backdrop
	if got := buf.At(2, 2).Bg; got != RgbBackground {
		t.Errorf("untouched cell bg = %v, want backdrop", got)
	}
}

func TestBufferBoundsSafety(t *testing.T) {
	buf := NewBuffer(2, 2)
	// Out-of-bounds writes must be silently ignored
	buf.Set(-1, 0, 'x', RGB{}, RGB{255, 0, 0}, BlendAdd, 1)
	buf.Set(5, 5, 'x', RGB{}, RGB{255, 0, 0}, BlendAdd, 1)
	buf.SetFgOnly(2, 0, 'x', RGB{255, 0, 0})

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if c := buf.At(x, y); c.Bg != RGBBlack && c.Bg != RgbBackground {
				t.Errorf("cell (%d,%d) modified by out-of-bounds write: %v", x, y, c)
			}
		}
	}
}

func TestBufferResizeClears(t *testing.T) {
	buf := NewBuffer(4, 4)
	buf.Set(0, 0, 0, RGB{}, RGB{255, 255, 255}, BlendAddBg, 1)
	buf.Resize(8, 8)

	if w, h := buf.Size(); w != 8 || h != 8 {
		t.Fatalf("size after resize = %dx%d, want 8x8", w, h)
	}
	if got := buf.At(0, 0).Bg; got != RgbBackground {
		t.Errorf("cell survived resize: %v", got)
	}
}
