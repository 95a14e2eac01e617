package game_test

import (
	"context"
	"testing"

	"github.com/plus3/bounce/backend/headless"
	"github.com/plus3/bounce/ball"
	"github.com/plus3/bounce/config"
	"github.com/plus3/bounce/game"
	"github.com/plus3/bounce/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frameTime = 1.0 / 60.0

// fixedRand always returns the same value, clamped to the requested range.
type fixedRand int

func (r fixedRand) IntN(n int) int {
	return min(int(r), n-1)
}

func newGame(t *testing.T) (*game.Game, *headless.Platform) {
	t.Helper()
	cfg := config.Default()
	platform := headless.New(cfg.Window.Width, cfg.Window.Height)
	return game.New(cfg, platform, fixedRand(0)), platform
}

func TestInitialFrame(t *testing.T) {
	g, platform := newGame(t)
	g.Step(frameTime)

	frame := platform.LastFrame()
	assert.Equal(t, ball.White, frame.Background)

	texts := frame.Texts()
	require.Len(t, texts, 6)
	assert.Equal(t, "Move the ball with arrow keys", texts[0].Text)
	assert.Equal(t, "C - taste the rainbow", texts[5].Text)
	for i, text := range texts {
		assert.Equal(t, 10, text.X)
		assert.Equal(t, 10+25*i, text.Y)
		assert.Equal(t, 20, text.Size)
		assert.Equal(t, ball.DarkGray, text.Color)
	}

	circles := frame.Circles()
	require.Len(t, circles, 1)
	assert.Equal(t, ball.Vec2{X: 400, Y: 300}, circles[0].Center)
	assert.Equal(t, float32(50), circles[0].Radius)
	assert.Equal(t, ball.Red, circles[0].Color)
}

func TestHoldLeft(t *testing.T) {
	g, platform := newGame(t)
	platform.Hold(ball.KeyLeft)

	for range 10 {
		g.Step(frameTime)
	}
	assert.Equal(t, ball.Vec2{X: 350, Y: 300}, g.State().Position)
	assert.Equal(t, ball.Vec2{X: 350, Y: 300}, platform.LastFrame().Circles()[0].Center)

	for range 100 {
		g.Step(frameTime)
	}
	assert.Equal(t, float32(50), g.State().Position.X)
}

func TestResizeClampsBall(t *testing.T) {
	g, platform := newGame(t)
	platform.Hold(ball.KeyRight, ball.KeyDown)
	for range 200 {
		g.Step(frameTime)
	}
	require.Equal(t, ball.Vec2{X: 750, Y: 550}, g.State().Position)

	platform.Release()
	platform.Resize(500, 400)
	g.Step(frameTime)

	assert.Equal(t, ball.Viewport{Width: 500, Height: 400}, g.Viewport())
	assert.Equal(t, ball.Vec2{X: 450, Y: 350}, g.State().Position)
	assert.Equal(t, [][2]int{{500, 400}}, platform.SetSizeCalls())

	var screen *game.Screen
	require.True(t, g.Storage().ReadSingleton(&screen))
	assert.Equal(t, 1, screen.Resizes)
}

func TestColorKey(t *testing.T) {
	cfg := config.Default()
	platform := headless.New(800, 600)
	g := game.New(cfg, platform, fixedRand(9))

	platform.Hold(ball.KeyC)
	g.Step(frameTime)

	// Roll 9 is a multiple of 3, every channel then draws 9.
	assert.Equal(t, ball.Color{R: 9, G: 9, B: 9, A: 255}, g.State().Color)
}

func TestInputCapture(t *testing.T) {
	g, platform := newGame(t)
	sim.NewSingleton[game.InputCapture](g.Storage()).Get().Keyboard = true

	platform.Hold(ball.KeyLeft, ball.KeyR)
	g.Step(frameTime)
	assert.Equal(t, ball.DefaultState(g.Viewport()), g.State())

	var controls *game.Controls
	require.True(t, g.Storage().ReadSingleton(&controls))
	assert.Equal(t, ball.Input{}, controls.Input)
}

func TestPressedKeys(t *testing.T) {
	g, platform := newGame(t)
	platform.Hold(ball.KeyEscape)

	var controls *game.Controls
	require.True(t, g.Storage().ReadSingleton(&controls))

	g.Step(frameTime)
	assert.True(t, controls.Pressed.Has(ball.KeyEscape))
	assert.True(t, controls.Held.Has(ball.KeyEscape))

	g.Step(frameTime)
	assert.False(t, controls.Pressed.Has(ball.KeyEscape))
	assert.True(t, controls.Held.Has(ball.KeyEscape))
}

func TestToast(t *testing.T) {
	g, platform := newGame(t)
	g.Step(frameTime)
	require.Len(t, platform.LastFrame().Texts(), 6)

	platform.Hold(ball.KeyF)
	g.Step(frameTime)

	texts := platform.LastFrame().Texts()
	require.Len(t, texts, 7)
	assert.Equal(t, "speed 6", texts[6].Text)
	assert.Equal(t, uint8(255), texts[6].Color.A)
	assert.Equal(t, 10+25*6, texts[6].Y)

	platform.Hold(ball.KeyR, ball.KeyD)
	g.Step(frameTime)
	assert.Equal(t, "radius 51, speed 5", platform.LastFrame().Texts()[6].Text)

	platform.Release()
	g.Step(frameTime)
	faded := platform.LastFrame().Texts()
	require.Len(t, faded, 7)
	assert.Less(t, faded[6].Color.A, uint8(255))

	for range 120 {
		g.Step(frameTime)
	}
	assert.Len(t, platform.LastFrame().Texts(), 6)
}

func TestToastDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.Toast.Enabled = false
	platform := headless.New(800, 600)
	g := game.New(cfg, platform, fixedRand(0))

	platform.Hold(ball.KeyF)
	g.Step(frameTime)
	assert.Len(t, platform.LastFrame().Texts(), 6)
}

func TestReset(t *testing.T) {
	g, platform := newGame(t)
	platform.Hold(ball.KeyLeft, ball.KeyR, ball.KeyF)
	for range 5 {
		g.Step(frameTime)
	}
	require.NotEqual(t, ball.DefaultState(g.Viewport()), g.State())

	g.Reset()
	assert.Equal(t, ball.DefaultState(g.Viewport()), g.State())
}

func TestRun(t *testing.T) {
	g, platform := newGame(t)
	platform.MaxFrames = 30
	platform.Hold(ball.KeyUp)

	require.NoError(t, g.Run(context.Background()))
	assert.Equal(t, 30, platform.Frames())
	assert.Equal(t, float32(150), g.State().Position.Y)
	assert.Equal(t, int64(30), g.Scheduler().GetStats().Frames)
}

func TestRunCancelled(t *testing.T) {
	g, platform := newGame(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, g.Run(ctx), context.Canceled)
	assert.Equal(t, 0, platform.Frames())
}

type frameCounter struct {
	frames int
}

func (c *frameCounter) Execute(frame *sim.UpdateFrame) {
	c.frames++
}

func TestAddSystem(t *testing.T) {
	g, _ := newGame(t)
	counter := &frameCounter{}
	g.AddSystem(counter)

	g.Step(frameTime)
	g.Step(frameTime)
	assert.Equal(t, 2, counter.frames)
	assert.Equal(t, 6, g.Scheduler().GetStats().SystemCount)
}
