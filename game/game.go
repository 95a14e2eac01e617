package game

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/plus3/bounce/ball"
	"github.com/plus3/bounce/config"
	"github.com/plus3/bounce/sim"
)

// Game owns the storage and scheduler for one window.
type Game struct {
	platform  Platform
	storage   *sim.Storage
	scheduler *sim.Scheduler
	initial   ball.State

	ball   *sim.Singleton[Ball]
	screen *sim.Singleton[Screen]
}

// NewRand returns the random source for the color effect. A zero seed picks
// a random one.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// New builds the frame pipeline for cfg on top of platform.
func New(cfg *config.Config, platform Platform, rng ball.Rand) *Game {
	if rng == nil {
		rng = NewRand(cfg.Seed)
	}

	storage := sim.NewStorage()
	g := &Game{
		platform: platform,
		storage:  storage,
		initial:  cfg.InitialBall(),
	}

	g.ball = sim.NewSingleton[Ball](storage, Ball{State: g.initial})
	g.screen = sim.NewSingleton[Screen](storage, Screen{Viewport: cfg.Viewport()})
	sim.NewSingleton[Controls](storage)
	sim.NewSingleton[InputCapture](storage)
	sim.NewSingleton[Toast](storage)
	sim.NewSingleton[RNG](storage, RNG{Rand: rng})
	sim.NewSingleton[Settings](storage, Settings{
		Background:   cfg.Background,
		TextColor:    ball.DarkGray,
		TextSize:     textSize,
		Instructions: instructions,
		ToastEnabled: cfg.Toast.Enabled,
		ToastTime:    cfg.Toast.Duration,
	})

	g.scheduler = sim.NewScheduler(storage)
	g.scheduler.Register(&WindowSystem{Platform: platform})
	g.scheduler.Register(&InputSystem{Platform: platform})
	g.scheduler.Register(&BallSystem{})
	g.scheduler.Register(&ToastSystem{})
	g.scheduler.Register(&RenderSystem{Platform: platform})

	return g
}

// AddSystem registers an extra system. It runs after rendering and its
// deferred commands are flushed at the end of the same frame.
func (g *Game) AddSystem(system sim.System) {
	g.scheduler.Register(system)
}

// Step runs one frame.
func (g *Game) Step(dt float64) {
	g.scheduler.Once(dt)
}

// Run steps frames until the platform asks to close or ctx is done.
// A close request is a normal exit and returns nil.
func (g *Game) Run(ctx context.Context) error {
	last := time.Now()
	for !g.platform.ShouldClose() {
		if err := ctx.Err(); err != nil {
			return err
		}

		now := time.Now()
		g.Step(now.Sub(last).Seconds())
		last = now
	}
	return nil
}

// Reset puts the ball back to its startup state.
func (g *Game) Reset() {
	g.ball.Get().State = g.initial
}

// State returns the current ball state.
func (g *Game) State() ball.State {
	return g.ball.Get().State
}

// Viewport returns the current viewport.
func (g *Game) Viewport() ball.Viewport {
	return g.screen.Get().Viewport
}

func (g *Game) Storage() *sim.Storage {
	return g.storage
}

func (g *Game) Scheduler() *sim.Scheduler {
	return g.scheduler
}
