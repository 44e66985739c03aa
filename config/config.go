package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/galaxy-drift/parameter"
)

// Config carries the runtime overrides for a scene. Generation parameters
// default to the parameter package; the environment (optionally via .env)
// can tune them without a rebuild.
type Config struct {
	Scene  SceneConfig
	Sprite SpriteConfig
	Audio  AudioConfig
}

type SceneConfig struct {
	ArmParticles  int
	BarParticles  int
	CoreParticles int
	DiskParticles int
	Seed          int64
	TargetFPS     int
}

type SpriteConfig struct {
	URL        string
	KernelSize int
}

type AudioConfig struct {
	Muted bool
}

// Load reads configuration from the environment, with .env support
func Load() (*Config, error) {
	// .env is optional; the system environment applies either way
	_ = godotenv.Load()

	cfg := &Config{
		Scene: SceneConfig{
			ArmParticles:  getIntEnv("GALAXY_ARM_PARTICLES", parameter.ArmParticles),
			BarParticles:  getIntEnv("GALAXY_BAR_PARTICLES", parameter.BarParticles),
			CoreParticles: getIntEnv("GALAXY_CORE_PARTICLES", parameter.CoreParticles),
			DiskParticles: getIntEnv("GALAXY_DISK_PARTICLES", parameter.DiskParticles),
			Seed:          int64(getIntEnv("GALAXY_SEED", 0)),
			TargetFPS:     getIntEnv("GALAXY_FPS", parameter.TargetFPS),
		},
		Sprite: SpriteConfig{
			URL:        getEnv("GALAXY_SPRITE_URL", parameter.SpriteURL),
			KernelSize: getIntEnv("GALAXY_SPRITE_KERNEL", parameter.SpriteKernelSize),
		},
		Audio: AudioConfig{
			Muted: getBoolEnv("GALAXY_MUTE", false),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Scene.ArmParticles <= 0 || c.Scene.BarParticles <= 0 ||
		c.Scene.CoreParticles <= 0 || c.Scene.DiskParticles <= 0 {
		return fmt.Errorf("particle counts must be positive")
	}
	if c.Scene.TargetFPS <= 0 || c.Scene.TargetFPS > 240 {
		return fmt.Errorf("fps %d outside (0,240]", c.Scene.TargetFPS)
	}
	if c.Sprite.URL == "" {
		return fmt.Errorf("sprite url must not be empty")
	}
	if c.Sprite.KernelSize <= 0 || c.Sprite.KernelSize > 31 {
		return fmt.Errorf("sprite kernel size %d outside (0,31]", c.Sprite.KernelSize)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getBoolEnv(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
