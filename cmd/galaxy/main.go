package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/galaxy-drift/asset"
	"github.com/lixenwraith/galaxy-drift/audio"
	"github.com/lixenwraith/galaxy-drift/config"
	"github.com/lixenwraith/galaxy-drift/galaxy"
	"github.com/lixenwraith/galaxy-drift/parameter"
	"github.com/lixenwraith/galaxy-drift/render"
	"github.com/lixenwraith/galaxy-drift/scene"
	"github.com/lixenwraith/galaxy-drift/vmath"
)

const hudRows = 1

type app struct {
	screen   tcell.Screen
	buf      *render.Buffer
	composer *scene.Composer
	drone    *audio.Drone
	cfg      *config.Config

	width, height int

	// Mouse drag state
	orbiting bool
	panning  bool
	lastX    int
	lastY    int
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	seed := cfg.Scene.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	arms, err := galaxy.GenerateArms(rng, cfg.Scene.ArmParticles,
		parameter.ArmCount, parameter.ArmSpiralStrength, parameter.ArmDiskRadius)
	if err != nil {
		return nil, err
	}
	bar, err := galaxy.GenerateBar(rng, cfg.Scene.BarParticles,
		parameter.BarLength, parameter.BarWidth)
	if err != nil {
		return nil, err
	}
	core, err := galaxy.GenerateCore(rng, cfg.Scene.CoreParticles, parameter.CoreRadius)
	if err != nil {
		return nil, err
	}

	sprite, err := asset.NewSprite(cfg.Sprite.URL, cfg.Sprite.KernelSize)
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	w, h := screen.Size()

	cam := scene.NewCamera(
		vmath.Vec3{Y: parameter.GalaxyCameraY, Z: parameter.GalaxyCameraZ},
		parameter.GalaxyFOVDeg)
	composer := scene.NewComposer(cam, sprite)
	composer.AddRegion("arms", arms, parameter.ArmPointSize, parameter.GalaxyRotationStep)
	composer.AddRegion("bar", bar, parameter.BarPointSize, parameter.GalaxyRotationStep)
	composer.AddRegion("core", core, parameter.CorePointSize, parameter.GalaxyRotationStep)

	a := &app{
		screen:   screen,
		buf:      render.NewBuffer(w, h),
		composer: composer,
		drone:    audio.NewDrone(),
		cfg:      cfg,
		width:    w,
		height:   h,
	}

	// Audio is decorative; the scene runs fine without it
	if err := a.drone.Initialize(); err != nil {
		slog.Warn("audio initialization failed", "error", err)
	} else if cfg.Audio.Muted {
		a.drone.SetMuted(true)
	}

	slog.Info("galaxy scene mounted",
		"seed", seed,
		"particles", arms.Len()+bar.Len()+core.Len())

	return a, nil
}

func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			a.composer.SetPaused(!a.composer.Paused())
		case 'm':
			a.drone.SetMuted(!a.drone.Muted())
		}

	case *tcell.EventMouse:
		a.handleMouse(ev)

	case *tcell.EventResize:
		a.width, a.height = a.screen.Size()
		a.buf.Resize(a.width, a.height)
		a.screen.Sync()
	}
	return true
}

func (a *app) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	btns := ev.Buttons()

	switch {
	case btns&tcell.WheelUp != 0:
		a.composer.Camera().Zoom(true)
	case btns&tcell.WheelDown != 0:
		a.composer.Camera().Zoom(false)
	case btns&tcell.Button1 != 0:
		if a.orbiting {
			a.composer.Camera().Orbit(x-a.lastX, y-a.lastY)
		}
		a.orbiting, a.panning = true, false
		a.lastX, a.lastY = x, y
	case btns&tcell.Button2 != 0:
		if a.panning {
			a.composer.Camera().Pan(x-a.lastX, y-a.lastY)
		}
		a.panning, a.orbiting = true, false
		a.lastX, a.lastY = x, y
	default:
		a.orbiting, a.panning = false, false
	}
}

func (a *app) drawHUD() {
	dim := render.RGB{R: 100, G: 100, B: 110}
	y := a.height - hudRows

	status := "drag:orbit  mid-drag:pan  wheel:zoom  space:pause  m:mute  q:quit"
	if a.composer.State() == scene.StateLoading {
		status = "loading sprite... " + status
	}
	if a.composer.Paused() {
		status = "[paused] " + status
	}
	if a.drone.Muted() {
		status = "[muted] " + status
	}
	a.buf.WriteString(1, y, status, dim)
}

func (a *app) run() {
	a.composer.Mount()

	ticker := time.NewTicker(time.Second / time.Duration(a.cfg.Scene.TargetFPS))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- a.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return
			}

		case <-ticker.C:
			a.composer.Update()
			a.buf.Clear()
			a.composer.Draw(a.buf)
			a.drawHUD()
			a.buf.FlushToScreen(a.screen)
		}
	}
}

func (a *app) cleanup() {
	a.composer.Unmount()
	a.drone.Cleanup()
	a.screen.Fini()
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer a.cleanup()

	a.run()
}
