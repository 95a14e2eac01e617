// Package ebitengine runs the game in an Ebitengine window, optionally with
// the Dear ImGui debug overlay on top.
package ebitengine

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/bounce/ball"
	"github.com/plus3/bounce/config"
	"golang.org/x/image/font/gofont/goregular"
)

var keyCodes = map[ball.Key]ebiten.Key{
	ball.KeyLeft:   ebiten.KeyArrowLeft,
	ball.KeyRight:  ebiten.KeyArrowRight,
	ball.KeyUp:     ebiten.KeyArrowUp,
	ball.KeyDown:   ebiten.KeyArrowDown,
	ball.KeyR:      ebiten.KeyR,
	ball.KeyE:      ebiten.KeyE,
	ball.KeyF:      ebiten.KeyF,
	ball.KeyD:      ebiten.KeyD,
	ball.KeyC:      ebiten.KeyC,
	ball.KeyEscape: ebiten.KeyEscape,
}

type opKind int

const (
	opText opKind = iota
	opCircle
)

type drawOp struct {
	kind   opKind
	text   string
	x, y   float64
	size   int
	center ball.Vec2
	radius float32
	color  color.RGBA
}

// Window implements game.Platform for Ebitengine. Ebitengine separates
// Update from Draw, so draw calls made during Update are recorded and
// replayed onto the screen in Draw.
type Window struct {
	font *text.GoTextFaceSource

	width, height int
	knownW        int
	knownH        int

	recording  []drawOp
	background color.RGBA
	frame      []drawOp
	frameBg    color.RGBA
}

// NewWindow configures the Ebitengine window from cfg. The window itself
// opens when Run is called.
func NewWindow(cfg *config.Config) (*Window, error) {
	font, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.FPS)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	return &Window{
		font:   font,
		width:  cfg.Window.Width,
		height: cfg.Window.Height,
		knownW: cfg.Window.Width,
		knownH: cfg.Window.Height,
	}, nil
}

// Raylib's default exit key is Escape; keep the same behaviour here.
func (w *Window) ShouldClose() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func (w *Window) WindowResized() bool {
	return w.width != w.knownW || w.height != w.knownH
}

func (w *Window) ScreenSize() (int, int) {
	w.knownW, w.knownH = w.width, w.height
	return w.width, w.height
}

func (w *Window) SetWindowSize(width, height int) {
	if cw, ch := ebiten.WindowSize(); cw != width || ch != height {
		ebiten.SetWindowSize(width, height)
	}
}

func (w *Window) KeyDown(key ball.Key) bool {
	code, ok := keyCodes[key]
	return ok && ebiten.IsKeyPressed(code)
}

func (w *Window) KeyPressed(key ball.Key) bool {
	code, ok := keyCodes[key]
	return ok && inpututil.IsKeyJustPressed(code)
}

func (w *Window) BeginFrame(background ball.Color) {
	w.recording = w.recording[:0]
	w.background = toRGBA(background)
}

func (w *Window) DrawText(s string, x, y, size int, c ball.Color) {
	w.recording = append(w.recording, drawOp{
		kind:  opText,
		text:  s,
		x:     float64(x),
		y:     float64(y),
		size:  size,
		color: toRGBA(c),
	})
}

func (w *Window) DrawCircle(center ball.Vec2, radius float32, c ball.Color) {
	w.recording = append(w.recording, drawOp{
		kind:   opCircle,
		center: center,
		radius: radius,
		color:  toRGBA(c),
	})
}

// EndFrame publishes the recorded frame for the next Draw.
func (w *Window) EndFrame() {
	w.frame, w.recording = w.recording, w.frame
	w.frameBg = w.background
}

func (w *Window) layout(outsideWidth, outsideHeight int) {
	w.width, w.height = outsideWidth, outsideHeight
}

func (w *Window) draw(screen *ebiten.Image) {
	screen.Fill(w.frameBg)

	for _, op := range w.frame {
		switch op.kind {
		case opText:
			face := &text.GoTextFace{Source: w.font, Size: float64(op.size)}
			opts := &text.DrawOptions{}
			opts.GeoM.Translate(op.x, op.y)
			opts.ColorScale.ScaleWithColor(op.color)
			text.Draw(screen, op.text, face, opts)
		case opCircle:
			// vector paths misbehave with a negative radius; raylib draws nothing there either.
			if op.radius <= 0 {
				continue
			}
			vector.DrawFilledCircle(screen, op.center.X, op.center.Y, op.radius, op.color, true)
		}
	}
}

func toRGBA(c ball.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
