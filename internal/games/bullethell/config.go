package bullethell

import (
	"fmt"

	"github.com/younwookim/engine2d/internal/infrastructure/config"
)

// Config holds the tunables from games/bullethell.yaml. Speeds are in
// pixels per fixed update.
type Config struct {
	Player PlayerConfig `yaml:"player"`
	Bullet BulletConfig `yaml:"bullet"`
	Enemy  EnemyConfig  `yaml:"enemy"`
	Waves  WavesConfig  `yaml:"waves"`
}

type PlayerConfig struct {
	Size              float64 `yaml:"size"`
	Speed             float64 `yaml:"speed"`
	Health            int     `yaml:"health"`
	InvulnerableSteps int     `yaml:"invulnerableSteps"` // after a hit
	Color             string  `yaml:"color"`
}

type BulletConfig struct {
	Size          float64 `yaml:"size"`
	Speed         float64 `yaml:"speed"`
	LifetimeSteps int     `yaml:"lifetimeSteps"`
	Color         string  `yaml:"color"`
}

type EnemyConfig struct {
	Size  float64 `yaml:"size"`
	Speed float64 `yaml:"speed"`
	Spin  float64 `yaml:"spin"` // degrees per fixed update
	Color string  `yaml:"color"`
}

type WavesConfig struct {
	FirstWave int `yaml:"firstWave"` // enemies in wave 1
	Growth    int `yaml:"growth"`    // extra enemies per wave
}

// DefaultConfig returns the values used when no config file is present.
func DefaultConfig() Config {
	return Config{
		Player: PlayerConfig{Size: 24, Speed: 3.5, Health: 5, InvulnerableSteps: 50, Color: "#64c864"},
		Bullet: BulletConfig{Size: 6, Speed: 8, LifetimeSteps: 150, Color: "#ffc864"},
		Enemy:  EnemyConfig{Size: 20, Speed: 1.2, Spin: 4, Color: "#c86464"},
		Waves:  WavesConfig{FirstWave: 3, Growth: 2},
	}
}

// LoadConfig reads the game's YAML over DefaultConfig. A nil loader or a
// missing file gives the defaults.
func LoadConfig(loader *config.Loader) (Config, error) {
	cfg := DefaultConfig()
	if loader != nil && loader.HasGame(ID) {
		if err := loader.LoadGame(ID, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid %s config: %w", ID, err)
	}
	return cfg, nil
}

// Validate checks colors, sizes, speeds and counts.
func (c Config) Validate() error {
	colors := []struct{ name, value string }{
		{"player.color", c.Player.Color},
		{"bullet.color", c.Bullet.Color},
		{"enemy.color", c.Enemy.Color},
	}
	for _, col := range colors {
		if _, err := config.ParseColor(col.value); err != nil {
			return fmt.Errorf("%s: %w", col.name, err)
		}
	}

	if c.Player.Size <= 0 || c.Bullet.Size <= 0 || c.Enemy.Size <= 0 {
		return fmt.Errorf("sizes must be positive")
	}
	if c.Player.Speed <= 0 || c.Bullet.Speed <= 0 || c.Enemy.Speed <= 0 {
		return fmt.Errorf("speeds must be positive")
	}
	if c.Player.Health <= 0 {
		return fmt.Errorf("player.health must be positive, got %d", c.Player.Health)
	}
	if c.Player.InvulnerableSteps < 0 {
		return fmt.Errorf("player.invulnerableSteps must not be negative, got %d", c.Player.InvulnerableSteps)
	}
	if c.Bullet.LifetimeSteps <= 0 {
		return fmt.Errorf("bullet.lifetimeSteps must be positive, got %d", c.Bullet.LifetimeSteps)
	}
	if c.Waves.FirstWave <= 0 || c.Waves.Growth < 0 {
		return fmt.Errorf("waves need a positive firstWave and a non-negative growth")
	}
	return nil
}

// EnemiesInWave returns how many enemies wave n (1-based) spawns.
func (c Config) EnemiesInWave(n int) int {
	return c.Waves.FirstWave + c.Waves.Growth*(n-1)
}
