package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/plus3/bounce/ball"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Window     WindowConfig `yaml:"window"`
	Ball       BallConfig   `yaml:"ball"`
	Background ball.Color   `yaml:"background"`
	Seed       uint64       `yaml:"seed"`
	Debug      bool         `yaml:"debug"`
	Toast      ToastConfig  `yaml:"toast"`
}

type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Resizable bool   `yaml:"resizable"`
	FPS       int    `yaml:"fps"`
}

type BallConfig struct {
	Radius float32    `yaml:"radius"`
	Speed  uint8      `yaml:"speed"`
	Color  ball.Color `yaml:"color"`
}

type ToastConfig struct {
	Enabled  bool    `yaml:"enabled"`
	Duration float32 `yaml:"duration"`
}

// Default returns the configuration the demo ships with.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:     "Bounce",
			Width:     800,
			Height:    600,
			Resizable: true,
			FPS:       60,
		},
		Ball: BallConfig{
			Radius: ball.DefaultRadius,
			Speed:  ball.DefaultSpeed,
			Color:  ball.Red,
		},
		Background: ball.White,
		Toast: ToastConfig{
			Enabled:  true,
			Duration: 1.2,
		},
	}
}

// Load reads a YAML file on top of Default. Keys missing from the file keep
// their default values. An empty path returns Default unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

var (
	ErrWindowSize = errors.New("window width and height must be positive")
	ErrFPS        = errors.New("fps must be positive")
	ErrRadius     = errors.New("ball radius must not be negative")
)

// Validate checks the startup values. Radius is only checked here; at
// runtime the E key may still shrink it below zero.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrWindowSize, c.Window.Width, c.Window.Height)
	}
	if c.Window.FPS <= 0 {
		return fmt.Errorf("%w: got %d", ErrFPS, c.Window.FPS)
	}
	if c.Ball.Radius < 0 {
		return fmt.Errorf("%w: got %g", ErrRadius, c.Ball.Radius)
	}
	return nil
}

// Viewport returns the startup window size.
func (c *Config) Viewport() ball.Viewport {
	return ball.Viewport{Width: c.Window.Width, Height: c.Window.Height}
}

// InitialBall returns the ball at startup, centered in the initial window.
func (c *Config) InitialBall() ball.State {
	return ball.State{
		Position: c.Viewport().Center(),
		Radius:   c.Ball.Radius,
		Speed:    c.Ball.Speed,
		Color:    c.Ball.Color,
	}
}
