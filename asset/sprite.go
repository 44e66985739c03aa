package asset

import (
	"fmt"
	"image"
	_ "image/png"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"
)

// SpriteState tracks the shared point-sprite lifecycle
type SpriteState int32

const (
	SpriteLoading SpriteState = iota
	SpriteReady
	SpriteFailed
)

// Kernel is the sprite downsampled to a small square intensity footprint.
// Weights are row-major in [0,1], normalized so the peak is 1. Regions hold
// the kernel by reference; it is never copied per region.
type Kernel struct {
	Size    int
	Weights []float64
}

// At returns the weight at kernel cell (x, y)
func (k *Kernel) At(x, y int) float64 {
	return k.Weights[y*k.Size+x]
}

// Sprite owns the asynchronous fetch of the shared point-sprite image.
// The composer polls State each frame; until Ready it renders nothing.
// Failure is terminal: one diagnostic is logged and the state stays Failed,
// the frame loop is never crashed or blocked.
type Sprite struct {
	url        string
	kernelSize int

	state  atomic.Int32
	kernel atomic.Pointer[Kernel]
}

// NewSprite prepares a sprite loader; Fetch starts the download
func NewSprite(url string, kernelSize int) (*Sprite, error) {
	if url == "" {
		return nil, fmt.Errorf("sprite: url must not be empty")
	}
	if kernelSize <= 0 {
		return nil, fmt.Errorf("sprite: kernel size must be positive, got %d", kernelSize)
	}
	return &Sprite{url: url, kernelSize: kernelSize}, nil
}

// NewStaticSprite wraps an existing kernel in an already-Ready sprite.
// Used when the scene should come up without the remote fetch.
func NewStaticSprite(k *Kernel) *Sprite {
	s := &Sprite{url: "static", kernelSize: k.Size}
	s.kernel.Store(k)
	s.state.Store(int32(SpriteReady))
	return s
}

// State returns the current lifecycle state
func (s *Sprite) State() SpriteState {
	return SpriteState(s.state.Load())
}

// Kernel returns the decoded footprint, nil unless Ready
func (s *Sprite) Kernel() *Kernel {
	return s.kernel.Load()
}

// Fetch downloads and decodes the sprite on a background goroutine
func (s *Sprite) Fetch() {
	go func() {
		client := &http.Client{Timeout: 15 * time.Second}

		resp, err := client.Get(s.url)
		if err != nil {
			s.fail("fetch", err)
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			s.fail("fetch", fmt.Errorf("unexpected status %s", resp.Status))
			return
		}

		img, _, err := image.Decode(resp.Body)
		if err != nil {
			s.fail("decode", err)
			return
		}

		s.kernel.Store(KernelFromImage(img, s.kernelSize))
		s.state.Store(int32(SpriteReady))
	}()
}

func (s *Sprite) fail(stage string, err error) {
	s.state.Store(int32(SpriteFailed))
	slog.Error("sprite load failed, scene stays in loading state",
		"stage", stage, "url", s.url, "error", err)
}

// KernelFromImage box-downsamples an image's luminance-times-alpha into a
// size x size footprint with peak normalized to 1
func KernelFromImage(img image.Image, size int) *Kernel {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	weights := make([]float64, size*size)
	peak := 0.0

	for ky := 0; ky < size; ky++ {
		y0 := bounds.Min.Y + ky*h/size
		y1 := bounds.Min.Y + (ky+1)*h/size
		for kx := 0; kx < size; kx++ {
			x0 := bounds.Min.X + kx*w/size
			x1 := bounds.Min.X + (kx+1)*w/size

			sum, n := 0.0, 0
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					r, g, b, a := img.At(x, y).RGBA()
					lum := (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 0xffff
					sum += lum * float64(a) / 0xffff
					n++
				}
			}
			v := 0.0
			if n > 0 {
				v = sum / float64(n)
			}
			weights[ky*size+kx] = v
			if v > peak {
				peak = v
			}
		}
	}

	if peak > 0 {
		for i := range weights {
			weights[i] /= peak
		}
	}

	return &Kernel{Size: size, Weights: weights}
}

// RadialKernel builds a synthetic circular falloff footprint. Used by tests
// and as a stand-in when a caller wants the scene without the remote asset.
func RadialKernel(size int) *Kernel {
	weights := make([]float64, size*size)
	c := float64(size-1) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := (float64(x) - c) / (c + 0.5)
			dy := (float64(y) - c) / (c + 0.5)
			d := dx*dx + dy*dy
			if d >= 1 {
				continue
			}
			v := 1 - d
			weights[y*size+x] = v * v
		}
	}
	return &Kernel{Size: size, Weights: weights}
}
