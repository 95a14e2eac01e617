package game

import (
	"github.com/plus3/bounce/ball"
	"github.com/tanema/gween"
)

// Ball is the singleton holding the ball state.
type Ball struct {
	ball.State
}

// Screen is the singleton holding the current viewport.
type Screen struct {
	ball.Viewport
	Resizes int
}

// Controls is the singleton holding this frame's keyboard snapshot.
type Controls struct {
	ball.Input
}

// InputCapture lets an overlay, such as the debug UI, take the keyboard away
// from the ball while it has focus.
type InputCapture struct {
	Keyboard bool
}

// Settings holds the static look of the scene.
type Settings struct {
	Background   ball.Color
	TextColor    ball.Color
	TextSize     int
	Instructions []string
	ToastEnabled bool
	ToastTime    float32
}

// Toast is a one-line status message that fades out.
type Toast struct {
	Text  string
	Alpha uint8
	fade  *gween.Tween
}

// Visible reports whether the toast should be drawn this frame.
func (t *Toast) Visible() bool {
	return t.Text != "" && t.Alpha > 0
}

// RNG is the singleton random source for the color effect.
type RNG struct {
	ball.Rand
}

var instructions = []string{
	"Move the ball with arrow keys",
	"R - grow",
	"E - shrink",
	"F - faster",
	"D - slower",
	"C - taste the rainbow",
}

const (
	textX       = 10
	textY       = 10
	textSpacing = 25
	textSize    = 20
)
