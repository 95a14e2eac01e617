// Package game wires the ball rules into a per-frame pipeline of systems
// that talks to a window through the Platform interface.
package game

import "github.com/plus3/bounce/ball"

// Platform is what the game needs from a window and graphics library.
// Queries are made once per frame; draw calls are issued between
// BeginFrame and EndFrame.
type Platform interface {
	ShouldClose() bool
	WindowResized() bool
	ScreenSize() (width, height int)
	SetWindowSize(width, height int)
	KeyDown(key ball.Key) bool
	KeyPressed(key ball.Key) bool

	BeginFrame(background ball.Color)
	DrawText(text string, x, y, size int, color ball.Color)
	DrawCircle(center ball.Vec2, radius float32, color ball.Color)
	EndFrame()
}
