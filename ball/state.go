// Package ball holds the state of the demo ball and the per-frame rules that
// move, resize, speed up and recolor it.
//
// Every function in this package is pure: it takes the previous State and
// returns the next one. Window handling and drawing live elsewhere.
package ball

// Vec2 is a point in screen space.
type Vec2 struct {
	X, Y float32
}

// Color is an 8-bit RGBA color.
type Color struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

var (
	Red      = Color{R: 230, G: 41, B: 55, A: 255}
	DarkGray = Color{R: 80, G: 80, B: 80, A: 255}
	White    = Color{R: 255, G: 255, B: 255, A: 255}
)

const (
	DefaultRadius float32 = 50
	DefaultSpeed  uint8   = 5
)

// State is everything the demo knows about the ball.
//
// Radius is never validated. It can grow past the viewport or drop below
// zero; ClampToBounds then produces an inverted range and the max-side
// check wins.
type State struct {
	Position Vec2
	Radius   float32
	Speed    uint8
	Color    Color
}

// Viewport is the drawable window size in pixels.
type Viewport struct {
	Width  int
	Height int
}

// Center returns the middle of the viewport.
func (v Viewport) Center() Vec2 {
	return Vec2{X: float32(v.Width) / 2, Y: float32(v.Height) / 2}
}

// DefaultState returns the startup ball: centered, radius 50, speed 5, red.
func DefaultState(vp Viewport) State {
	return State{
		Position: vp.Center(),
		Radius:   DefaultRadius,
		Speed:    DefaultSpeed,
		Color:    Red,
	}
}
