package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/bounce/ball"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, ball.Viewport{Width: 800, Height: 600}, cfg.Viewport())
	assert.True(t, cfg.Window.Resizable)
	assert.Equal(t, 60, cfg.Window.FPS)
	assert.Equal(t, ball.DefaultState(cfg.Viewport()), cfg.InitialBall())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name       string
		createFile bool
		content    string
		wantErr    error
		validate   func(t *testing.T, cfg *Config)
	}{
		{
			name:       "full file",
			createFile: true,
			content: `window:
  title: "Ball"
  width: 1024
  height: 768
  resizable: false
  fps: 30
ball:
  radius: 20
  speed: 9
  color: {r: 0, g: 121, b: 241, a: 255}
background: {r: 245, g: 245, b: 245, a: 255}
seed: 1234
debug: true
toast:
  enabled: false
  duration: 0.5
`,
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "Ball", cfg.Window.Title)
				assert.Equal(t, ball.Viewport{Width: 1024, Height: 768}, cfg.Viewport())
				assert.False(t, cfg.Window.Resizable)
				assert.Equal(t, 30, cfg.Window.FPS)
				assert.Equal(t, float32(20), cfg.Ball.Radius)
				assert.Equal(t, uint8(9), cfg.Ball.Speed)
				assert.Equal(t, ball.Color{R: 0, G: 121, B: 241, A: 255}, cfg.Ball.Color)
				assert.Equal(t, ball.Color{R: 245, G: 245, B: 245, A: 255}, cfg.Background)
				assert.Equal(t, uint64(1234), cfg.Seed)
				assert.True(t, cfg.Debug)
				assert.False(t, cfg.Toast.Enabled)
				assert.Equal(t, float32(0.5), cfg.Toast.Duration)
				assert.Equal(t, ball.Vec2{X: 512, Y: 384}, cfg.InitialBall().Position)
			},
		},
		{
			name:       "partial file keeps defaults",
			createFile: true,
			content:    "ball:\n  speed: 12\n",
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, uint8(12), cfg.Ball.Speed)
				assert.Equal(t, ball.DefaultRadius, cfg.Ball.Radius)
				assert.Equal(t, ball.Red, cfg.Ball.Color)
				assert.Equal(t, 800, cfg.Window.Width)
			},
		},
		{
			name:       "empty file",
			createFile: true,
			content:    "",
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, Default(), cfg)
			},
		},
		{
			name:       "zero width",
			createFile: true,
			content:    "window:\n  width: 0\n",
			wantErr:    ErrWindowSize,
		},
		{
			name:       "zero fps",
			createFile: true,
			content:    "window:\n  fps: 0\n",
			wantErr:    ErrFPS,
		},
		{
			name:       "negative radius",
			createFile: true,
			content:    "ball:\n  radius: -3\n",
			wantErr:    ErrRadius,
		},
		{
			name:       "speed out of range",
			createFile: true,
			content:    "ball:\n  speed: 300\n",
		},
		{
			name:       "bad yaml",
			createFile: true,
			content:    "window: [",
		},
		{
			name:       "missing file",
			createFile: false,
			wantErr:    os.ErrNotExist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bounce.yaml")
			if tt.createFile {
				require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			}

			cfg, err := Load(path)
			if tt.validate == nil {
				require.Error(t, err)
				assert.Nil(t, cfg)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				return
			}

			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
