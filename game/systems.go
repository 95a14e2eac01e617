package game

import (
	"strconv"
	"strings"

	"github.com/plus3/bounce/ball"
	"github.com/plus3/bounce/sim"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// WindowSystem picks up window resizes and publishes the new viewport.
type WindowSystem struct {
	Platform Platform
	Screen   sim.Singleton[Screen]
}

func (s *WindowSystem) Execute(frame *sim.UpdateFrame) {
	if !s.Platform.WindowResized() {
		return
	}

	width, height := s.Platform.ScreenSize()
	s.Platform.SetWindowSize(width, height)

	screen := s.Screen.Get()
	screen.Width = width
	screen.Height = height
	screen.Resizes++
}

// InputSystem snapshots the keyboard into the Controls singleton.
type InputSystem struct {
	Platform Platform
	Controls sim.Singleton[Controls]
	Capture  sim.Singleton[InputCapture]
}

func (s *InputSystem) Execute(frame *sim.UpdateFrame) {
	controls := s.Controls.Get()
	controls.Input = ball.Input{}

	if capture := s.Capture.Get(); capture != nil && capture.Keyboard {
		return
	}

	for _, key := range ball.Keys() {
		if s.Platform.KeyDown(key) {
			controls.Held = controls.Held.With(key)
		}
		if s.Platform.KeyPressed(key) {
			controls.Pressed = controls.Pressed.With(key)
		}
	}
}

// BallSystem advances the ball by one frame.
type BallSystem struct {
	Ball     sim.Singleton[Ball]
	Screen   sim.Singleton[Screen]
	Controls sim.Singleton[Controls]
	RNG      sim.Singleton[RNG]
}

func (s *BallSystem) Execute(frame *sim.UpdateFrame) {
	b := s.Ball.Get()
	b.State = ball.Update(b.State, s.Controls.Get().Input, s.Screen.Get().Viewport, s.RNG.Get().Rand)
}

// ToastSystem shows a short status line when the radius, speed or color
// changes and fades it out.
type ToastSystem struct {
	Ball     sim.Singleton[Ball]
	Toast    sim.Singleton[Toast]
	Settings sim.Singleton[Settings]

	last *ball.State
}

func (s *ToastSystem) Execute(frame *sim.UpdateFrame) {
	settings := s.Settings.Get()
	if !settings.ToastEnabled {
		return
	}

	toast := s.Toast.Get()
	if toast.fade != nil {
		alpha, finished := toast.fade.Update(float32(frame.DeltaTime))
		toast.Alpha = uint8(max(0, min(alpha, 255)))
		if finished {
			toast.fade = nil
			toast.Alpha = 0
		}
	}

	current := s.Ball.Get().State
	if s.last != nil {
		if text := describeChange(*s.last, current); text != "" {
			toast.Text = text
			toast.Alpha = 255
			toast.fade = gween.New(255, 0, settings.ToastTime, ease.InQuad)
		}
	}
	s.last = &current
}

func describeChange(prev, next ball.State) string {
	var parts []string
	if next.Radius != prev.Radius {
		parts = append(parts, "radius "+strconv.FormatFloat(float64(next.Radius), 'f', -1, 32))
	}
	if next.Speed != prev.Speed {
		parts = append(parts, "speed "+strconv.Itoa(int(next.Speed)))
	}
	if next.Color != prev.Color {
		parts = append(parts, "new color")
	}
	return strings.Join(parts, ", ")
}

// RenderSystem draws the scene: background, instructions, ball and toast.
type RenderSystem struct {
	Platform Platform
	Ball     sim.Singleton[Ball]
	Toast    sim.Singleton[Toast]
	Settings sim.Singleton[Settings]
}

func (s *RenderSystem) Execute(frame *sim.UpdateFrame) {
	settings := s.Settings.Get()
	b := s.Ball.Get()

	s.Platform.BeginFrame(settings.Background)

	y := textY
	for _, line := range settings.Instructions {
		s.Platform.DrawText(line, textX, y, settings.TextSize, settings.TextColor)
		y += textSpacing
	}

	s.Platform.DrawCircle(b.Position, b.Radius, b.Color)

	if toast := s.Toast.Get(); toast.Visible() {
		color := settings.TextColor
		color.A = toast.Alpha
		s.Platform.DrawText(toast.Text, textX, y, settings.TextSize, color)
	}

	s.Platform.EndFrame()
}
