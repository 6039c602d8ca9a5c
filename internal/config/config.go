// Package config loads the optional config.yaml next to the binary.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the game looks for its config.
const DefaultPath = "config.yaml"

var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Assets     AssetsConfig     `yaml:"assets"`
	Level      LevelConfig      `yaml:"level"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	ViewTarget ViewTargetConfig `yaml:"view_target"`
	Smoothing  SmoothingConfig  `yaml:"smoothing"`
	Sway       SwayConfig       `yaml:"sway"`
	Log        LogConfig        `yaml:"log"`
}

type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	TargetFPS int32  `yaml:"target_fps"`
}

type AssetsConfig struct {
	Gun   string `yaml:"gun"`
	Enemy string `yaml:"enemy"`
	Tiles string `yaml:"tiles"`
}

type LevelConfig struct {
	Path  string `yaml:"path"`
	Watch bool   `yaml:"watch"`
}

type PhysicsConfig struct {
	Gravity float32 `yaml:"gravity"`
}

type PlayerConfig struct {
	MoveSpeed    float32 `yaml:"move_speed"`
	LookSpeed    float32 `yaml:"look_speed"`
	JumpStrength float32 `yaml:"jump_strength"`
}

type EnemyConfig struct {
	TurnRate      float32 `yaml:"turn_rate"`
	Force         float32 `yaml:"force"`
	LinearDamping float32 `yaml:"linear_damping"`
	AnimSpeed     float32 `yaml:"anim_speed"`
}

type ViewTargetConfig struct {
	OriginOffset float32 `yaml:"origin_offset"`
	MinDistance  float32 `yaml:"min_distance"`
	MaxDistance  float32 `yaml:"max_distance"`
}

type SmoothingConfig struct {
	TranslationAlpha float32 `yaml:"translation_alpha"`
	RotationAlpha    float32 `yaml:"rotation_alpha"`
	Trail            string  `yaml:"trail"` // blended | raw
}

type SwayConfig struct {
	Amplitude float32 `yaml:"amplitude"`
	Frequency float32 `yaml:"frequency"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{Title: "float_me_pls", Width: 1280, Height: 720, TargetFPS: 60},
		Assets: AssetsConfig{
			Gun:   "assets/gun.glb",
			Enemy: "assets/CesiumMan.glb",
			Tiles: "assets/tiles.png",
		},
		Level:      LevelConfig{Path: "level.txt"},
		Physics:    PhysicsConfig{Gravity: 9.81},
		Player:     PlayerConfig{MoveSpeed: 6, LookSpeed: 0.002, JumpStrength: 7},
		Enemy:      EnemyConfig{TurnRate: 0.03, Force: 10, LinearDamping: 4, AnimSpeed: 2},
		ViewTarget: ViewTargetConfig{OriginOffset: 1, MinDistance: 2, MaxDistance: 100},
		Smoothing:  SmoothingConfig{TranslationAlpha: 0, RotationAlpha: 0.75, Trail: "blended"},
		Sway:       SwayConfig{Amplitude: 0.002, Frequency: 6},
		Log:        LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	unit := func(name string, v float32) error {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s = %v not in [0,1]: %w", name, v, ErrInvalid)
		}
		return nil
	}
	positive := func(name string, v float32) error {
		if v <= 0 {
			return fmt.Errorf("%s = %v must be positive: %w", name, v, ErrInvalid)
		}
		return nil
	}

	checks := []error{
		unit("smoothing.translation_alpha", c.Smoothing.TranslationAlpha),
		unit("smoothing.rotation_alpha", c.Smoothing.RotationAlpha),
		unit("enemy.turn_rate", c.Enemy.TurnRate),
		positive("view_target.max_distance", c.ViewTarget.MaxDistance),
		positive("player.move_speed", c.Player.MoveSpeed),
		positive("window.width", float32(c.Window.Width)),
		positive("window.height", float32(c.Window.Height)),
	}
	if c.ViewTarget.MinDistance < 0 || c.ViewTarget.OriginOffset < 0 {
		checks = append(checks, fmt.Errorf("view_target distances must be non-negative: %w", ErrInvalid))
	}
	if c.Smoothing.Trail != "blended" && c.Smoothing.Trail != "raw" {
		checks = append(checks, fmt.Errorf("smoothing.trail = %q, want blended or raw: %w", c.Smoothing.Trail, ErrInvalid))
	}
	if c.Level.Path == "" {
		checks = append(checks, fmt.Errorf("level.path is empty: %w", ErrInvalid))
	}
	return errors.Join(checks...)
}
