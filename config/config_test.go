package config

import (
	"testing"

	"github.com/lixenwraith/galaxy-drift/parameter"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Scene.ArmParticles != parameter.ArmParticles {
		t.Errorf("arm particles = %d, want default %d", cfg.Scene.ArmParticles, parameter.ArmParticles)
	}
	if cfg.Sprite.URL != parameter.SpriteURL {
		t.Errorf("sprite url = %q, want default", cfg.Sprite.URL)
	}
	if cfg.Audio.Muted {
		t.Error("audio muted by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GALAXY_ARM_PARTICLES", "1234")
	t.Setenv("GALAXY_MUTE", "true")
	t.Setenv("GALAXY_SPRITE_URL", "http://example.com/p.png")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Scene.ArmParticles != 1234 {
		t.Errorf("arm particles = %d, want 1234", cfg.Scene.ArmParticles)
	}
	if !cfg.Audio.Muted {
		t.Error("mute override ignored")
	}
	if cfg.Sprite.URL != "http://example.com/p.png" {
		t.Errorf("sprite url = %q", cfg.Sprite.URL)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("GALAXY_ARM_PARTICLES", "-5")

	if _, err := Load(); err == nil {
		t.Error("expected error for negative particle count")
	}
}

func TestMalformedIntFallsBack(t *testing.T) {
	t.Setenv("GALAXY_FPS", "fast")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Scene.TargetFPS != parameter.TargetFPS {
		t.Errorf("fps = %d, want default %d", cfg.Scene.TargetFPS, parameter.TargetFPS)
	}
}
