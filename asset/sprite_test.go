package asset

import (
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testSpriteImage(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := float64(size-1) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := (float64(x) - c) / c
			dy := (float64(y) - c) / c
			if dx*dx+dy*dy <= 1 {
				img.Set(x, y, color.RGBA{255, 255, 255, 255})
			}
		}
	}
	return img
}

func TestNewSpriteValidation(t *testing.T) {
	if _, err := NewSprite("", 7); err == nil {
		t.Error("expected error for empty url")
	}
	if _, err := NewSprite("http://example.com/s.png", 0); err == nil {
		t.Error("expected error for zero kernel size")
	}
}

func TestKernelFromImageNormalized(t *testing.T) {
	k := KernelFromImage(testSpriteImage(64), 7)

	if k.Size != 7 || len(k.Weights) != 49 {
		t.Fatalf("kernel shape %d/%d, want 7/49", k.Size, len(k.Weights))
	}

	peak := 0.0
	for _, w := range k.Weights {
		if w < 0 || w > 1 {
			t.Fatalf("weight %g out of [0,1]", w)
		}
		if w > peak {
			peak = w
		}
	}
	if peak != 1 {
		t.Errorf("peak weight %g, want 1 after normalization", peak)
	}

	// A centered circular sprite sharpens toward the middle
	center := k.At(3, 3)
	corner := k.At(0, 0)
	if center <= corner {
		t.Errorf("center %g not brighter than corner %g", center, corner)
	}
}

func TestRadialKernelShape(t *testing.T) {
	k := RadialKernel(5)
	if k.At(2, 2) != 1 {
		t.Errorf("radial kernel center = %g, want 1", k.At(2, 2))
	}
	if k.At(0, 0) >= k.At(1, 1) {
		t.Errorf("radial kernel not falling off: corner %g >= inner %g", k.At(0, 0), k.At(1, 1))
	}
}

func waitForState(t *testing.T, s *Sprite, want SpriteState) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if s.State() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("sprite state %d, want %d", s.State(), want)
}

func TestFetchSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		if err := png.Encode(w, testSpriteImage(32)); err != nil {
			t.Errorf("encode: %v", err)
		}
	}))
	defer srv.Close()

	s, err := NewSprite(srv.URL, 7)
	if err != nil {
		t.Fatal(err)
	}
	if s.State() != SpriteLoading {
		t.Fatalf("initial state %d, want Loading", s.State())
	}
	if s.Kernel() != nil {
		t.Fatal("kernel available before fetch")
	}

	s.Fetch()
	waitForState(t, s, SpriteReady)

	if s.Kernel() == nil {
		t.Fatal("no kernel after Ready")
	}
}

func TestFetchFailureStaysFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	s, err := NewSprite(srv.URL, 7)
	if err != nil {
		t.Fatal(err)
	}
	s.Fetch()
	waitForState(t, s, SpriteFailed)

	if s.Kernel() != nil {
		t.Error("kernel present after failed fetch")
	}
}

func TestFetchDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not a png"))
	}))
	defer srv.Close()

	s, err := NewSprite(srv.URL, 7)
	if err != nil {
		t.Fatal(err)
	}
	s.Fetch()
	waitForState(t, s, SpriteFailed)
}
