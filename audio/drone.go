package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	droneBaseHz   = 55.0
	droneDetuneHz = 0.4
	droneGain     = 0.08
	droneLFOCycle = 11 * time.Second
)

// Drone manages the ambient background hum behind the scene.
// Initialization failure is non-fatal: every method degrades to a no-op.
type Drone struct {
	mu          sync.Mutex
	ctrl        *beep.Ctrl
	mixer       *beep.Mixer
	initialized bool
}

// NewDrone creates the drone manager without touching the audio device
func NewDrone() *Drone {
	return &Drone{mixer: &beep.Mixer{}}
}

// Initialize sets up the speaker and starts the (unmuted) drone
func (d *Drone) Initialize() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	d.ctrl = &beep.Ctrl{Streamer: newDroneGenerator(sampleRate)}
	d.mixer.Add(d.ctrl)
	speaker.Play(d.mixer)
	d.initialized = true
	return nil
}

// SetMuted pauses or resumes the drone
func (d *Drone) SetMuted(muted bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.initialized {
		return
	}
	speaker.Lock()
	d.ctrl.Paused = muted
	speaker.Unlock()
}

// Muted reports whether the drone is paused; true when uninitialized
func (d *Drone) Muted() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.initialized {
		return true
	}
	return d.ctrl.Paused
}

// Cleanup silences the mixer; beep has no speaker close
func (d *Drone) Cleanup() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.initialized {
		return
	}
	speaker.Lock()
	d.ctrl.Paused = true
	d.mixer.Clear()
	speaker.Unlock()
	d.initialized = false
}

// droneGenerator produces two slightly detuned low sines under a slow
// amplitude LFO, a spacey hum that never resolves
type droneGenerator struct {
	sr  beep.SampleRate
	pos int
	lfo int
}

func newDroneGenerator(sr beep.SampleRate) *droneGenerator {
	return &droneGenerator{sr: sr, lfo: sr.N(droneLFOCycle)}
}

func (g *droneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		lfoPos := float64(g.pos%g.lfo) / float64(g.lfo)
		amp := droneGain * (0.7 + 0.3*math.Sin(lfoPos*2*math.Pi))

		a := math.Sin(2 * math.Pi * droneBaseHz * t)
		b := math.Sin(2 * math.Pi * (droneBaseHz + droneDetuneHz) * t)
		v := amp * (a + b) / 2

		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *droneGenerator) Err() error {
	return nil
}
