package main

import (
	"math/rand/v2"
	"time"

	"github.com/plus3/bounce/backend/headless"
	"github.com/plus3/bounce/ball"
	"github.com/plus3/bounce/config"
	"github.com/plus3/bounce/game"
)

// Soak drives a game on a headless platform with random key presses and
// window resizes, and checks the ball rules every frame.
type Soak struct {
	game     *game.Game
	platform *headless.Platform
	keys     *rand.Rand

	holdProb    float64
	resizeEvery int

	frames        int64
	colorFrames   int64
	colorChanges  int64
	checkedFrames int64
	violations    int64
	resizes       int64
	samples       []time.Duration
}

func NewSoak(cfg *config.Config, seed uint64, holdProb float64, resizeEvery int) *Soak {
	platform := headless.New(cfg.Window.Width, cfg.Window.Height)
	return &Soak{
		game:        game.New(cfg, platform, game.NewRand(seed)),
		platform:    platform,
		keys:        rand.New(rand.NewPCG(seed, seed+1)),
		holdProb:    holdProb,
		resizeEvery: resizeEvery,
	}
}

func (s *Soak) randomKeys() ball.KeySet {
	var held ball.KeySet
	for _, key := range ball.Keys() {
		if key == ball.KeyEscape {
			continue
		}
		if s.keys.Float64() < s.holdProb {
			held = held.With(key)
		}
	}
	return held
}

// Step runs one frame and records its outcome.
func (s *Soak) Step(dt float64) {
	if s.resizeEvery > 0 && s.frames > 0 && s.frames%int64(s.resizeEvery) == 0 {
		s.platform.Resize(200+s.keys.IntN(1000), 200+s.keys.IntN(800))
		s.resizes++
	}

	held := s.randomKeys()
	s.platform.SetScript(func(int) ball.KeySet { return held })

	before := s.game.State()
	start := time.Now()
	s.game.Step(dt)
	s.samples = append(s.samples, time.Since(start))
	after := s.game.State()

	s.frames++
	if held.Has(ball.KeyC) {
		s.colorFrames++
		if after.Color != before.Color {
			s.colorChanges++
		}
	}

	// A radius change moves the bounds after the clamp has run; the next
	// frame corrects it, so only frames with a steady radius are checked.
	if after.Radius == before.Radius && radiusFits(after.Radius, s.game.Viewport()) {
		s.checkedFrames++
		if !inBounds(after, s.game.Viewport()) {
			s.violations++
		}
	}
}

func radiusFits(radius float32, vp ball.Viewport) bool {
	return radius >= 0 && 2*radius <= float32(min(vp.Width, vp.Height))
}

func inBounds(s ball.State, vp ball.Viewport) bool {
	return s.Position.X >= s.Radius && s.Position.X <= float32(vp.Width)-s.Radius &&
		s.Position.Y >= s.Radius && s.Position.Y <= float32(vp.Height)-s.Radius
}

// ColorChangeRate is the observed fraction of C frames that changed color.
func (s *Soak) ColorChangeRate() float64 {
	if s.colorFrames == 0 {
		return 0
	}
	return float64(s.colorChanges) / float64(s.colorFrames)
}

// Fill copies the results into r.
func (s *Soak) Fill(r *Report) {
	r.TotalUpdates = s.frames
	r.ColorFrames = s.colorFrames
	r.ColorChanges = s.colorChanges
	r.ColorChangeRate = s.ColorChangeRate()
	r.ExpectedColorRate = ball.ColorChangeOdds
	r.CheckedFrames = s.checkedFrames
	r.Violations = s.violations
	r.Resizes = s.resizes
	r.FinalState = s.game.State()
	r.FinalViewport = s.game.Viewport()
	r.Systems = s.game.Scheduler().GetStats().Systems
	r.UpdateTime.Samples = s.samples
	r.UpdateTime.Finalize()
}
