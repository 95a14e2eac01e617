// Package headless provides a window-less game.Platform driven by scripted
// key presses. Draw calls are recorded instead of rendered.
package headless

import "github.com/plus3/bounce/ball"

type OpKind int

const (
	OpText OpKind = iota
	OpCircle
)

// Op is one recorded draw call.
type Op struct {
	Kind   OpKind
	Text   string
	X, Y   int
	Size   int
	Center ball.Vec2
	Radius float32
	Color  ball.Color
}

// Frame is everything drawn between BeginFrame and EndFrame.
type Frame struct {
	Background ball.Color
	Ops        []Op
}

// Circles returns the circle ops of the frame.
func (f Frame) Circles() []Op {
	return f.filter(OpCircle)
}

// Texts returns the text ops of the frame.
func (f Frame) Texts() []Op {
	return f.filter(OpText)
}

func (f Frame) filter(kind OpKind) []Op {
	var ops []Op
	for _, op := range f.Ops {
		if op.Kind == kind {
			ops = append(ops, op)
		}
	}
	return ops
}

// Script returns the keys held during the given frame, counting from zero.
type Script func(frame int) ball.KeySet

// Platform implements game.Platform without a window.
type Platform struct {
	// MaxFrames makes ShouldClose report true once that many frames have
	// been drawn. Zero means run until Close.
	MaxFrames int

	script   Script
	width    int
	height   int
	resized  bool
	closed   bool
	frames   int
	held     ball.KeySet
	prevHeld ball.KeySet

	drawing  bool
	current  Frame
	last     Frame
	setSizes [][2]int
}

// New returns a platform with a window of the given size and no keys held.
func New(width, height int) *Platform {
	return &Platform{width: width, height: height}
}

// SetScript replaces the key script.
func (p *Platform) SetScript(script Script) {
	p.script = script
}

// Hold makes the given keys held on every following frame.
func (p *Platform) Hold(keys ...ball.Key) {
	set := ball.NewKeySet(keys...)
	p.script = func(int) ball.KeySet { return set }
}

// Release clears the script so no keys are held.
func (p *Platform) Release() {
	p.script = nil
}

// Resize changes the window size as if the user dragged it. The next frame
// sees WindowResized report true.
func (p *Platform) Resize(width, height int) {
	p.width = width
	p.height = height
	p.resized = true
}

// Close makes ShouldClose report true.
func (p *Platform) Close() {
	p.closed = true
}

// Frames returns how many frames have been drawn.
func (p *Platform) Frames() int {
	return p.frames
}

// LastFrame returns the most recently completed frame.
func (p *Platform) LastFrame() Frame {
	return p.last
}

// SetSizeCalls returns every SetWindowSize call in order.
func (p *Platform) SetSizeCalls() [][2]int {
	return p.setSizes
}

func (p *Platform) heldKeys() ball.KeySet {
	if p.script == nil {
		return 0
	}
	return p.script(p.frames)
}

func (p *Platform) ShouldClose() bool {
	return p.closed || (p.MaxFrames > 0 && p.frames >= p.MaxFrames)
}

func (p *Platform) WindowResized() bool {
	return p.resized
}

func (p *Platform) ScreenSize() (int, int) {
	return p.width, p.height
}

func (p *Platform) SetWindowSize(width, height int) {
	p.width = width
	p.height = height
	p.setSizes = append(p.setSizes, [2]int{width, height})
}

func (p *Platform) KeyDown(key ball.Key) bool {
	p.held = p.heldKeys()
	return p.held.Has(key)
}

func (p *Platform) KeyPressed(key ball.Key) bool {
	p.held = p.heldKeys()
	return p.held.Has(key) && !p.prevHeld.Has(key)
}

func (p *Platform) BeginFrame(background ball.Color) {
	if p.drawing {
		panic("BeginFrame called twice without EndFrame")
	}
	p.drawing = true
	p.current = Frame{Background: background}
}

func (p *Platform) DrawText(text string, x, y, size int, color ball.Color) {
	p.current.Ops = append(p.current.Ops, Op{
		Kind:  OpText,
		Text:  text,
		X:     x,
		Y:     y,
		Size:  size,
		Color: color,
	})
}

func (p *Platform) DrawCircle(center ball.Vec2, radius float32, color ball.Color) {
	p.current.Ops = append(p.current.Ops, Op{
		Kind:   OpCircle,
		Center: center,
		Radius: radius,
		Color:  color,
	})
}

func (p *Platform) EndFrame() {
	if !p.drawing {
		panic("EndFrame called without BeginFrame")
	}
	p.drawing = false
	p.last = p.current
	p.current = Frame{}
	p.prevHeld = p.heldKeys()
	p.resized = false
	p.frames++
}
