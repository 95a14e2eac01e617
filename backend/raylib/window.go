// Package raylib runs the game in a raylib window.
package raylib

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/plus3/bounce/ball"
	"github.com/plus3/bounce/config"
)

var keyCodes = map[ball.Key]int32{
	ball.KeyLeft:   rl.KeyLeft,
	ball.KeyRight:  rl.KeyRight,
	ball.KeyUp:     rl.KeyUp,
	ball.KeyDown:   rl.KeyDown,
	ball.KeyR:      rl.KeyR,
	ball.KeyE:      rl.KeyE,
	ball.KeyF:      rl.KeyF,
	ball.KeyD:      rl.KeyD,
	ball.KeyC:      rl.KeyC,
	ball.KeyEscape: rl.KeyEscape,
}

// Window implements game.Platform on top of raylib. Only one may be open
// at a time.
type Window struct{}

// Open creates the raylib window described by cfg.
func Open(cfg *config.Config) *Window {
	if cfg.Window.Resizable {
		rl.SetConfigFlags(rl.FlagWindowResizable)
	}
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	rl.SetTargetFPS(int32(cfg.Window.FPS))
	return &Window{}
}

// Close destroys the window.
func (w *Window) Close() {
	rl.CloseWindow()
}

func (w *Window) ShouldClose() bool {
	return rl.WindowShouldClose()
}

func (w *Window) WindowResized() bool {
	return rl.IsWindowResized()
}

func (w *Window) ScreenSize() (int, int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}

func (w *Window) SetWindowSize(width, height int) {
	rl.SetWindowSize(width, height)
}

func (w *Window) KeyDown(key ball.Key) bool {
	code, ok := keyCodes[key]
	return ok && rl.IsKeyDown(code)
}

func (w *Window) KeyPressed(key ball.Key) bool {
	code, ok := keyCodes[key]
	return ok && rl.IsKeyPressed(code)
}

func (w *Window) BeginFrame(background ball.Color) {
	rl.BeginDrawing()
	rl.ClearBackground(toColor(background))
}

func (w *Window) DrawText(text string, x, y, size int, color ball.Color) {
	rl.DrawText(text, int32(x), int32(y), int32(size), toColor(color))
}

func (w *Window) DrawCircle(center ball.Vec2, radius float32, color ball.Color) {
	rl.DrawCircleV(rl.NewVector2(center.X, center.Y), radius, toColor(color))
}

func (w *Window) EndFrame() {
	rl.EndDrawing()
}

func toColor(c ball.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
