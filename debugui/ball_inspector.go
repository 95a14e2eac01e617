package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/bounce/ball"
	"github.com/plus3/bounce/game"
)

// BallInspector shows the live ball state and can reset it.
type BallInspector struct {
	game *game.Game
}

func (b *BallInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(560, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(230, 190), imgui.CondOnce)

	if !imgui.BeginV("Ball", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	state := b.game.State()
	vp := b.game.Viewport()

	for _, line := range describeState(state, vp) {
		imgui.Text(line)
	}
	imgui.TextColored(colorVec4(state.Color), "Color")

	imgui.Separator()
	if imgui.Button("Reset ball") {
		b.game.Reset()
	}

	imgui.End()
}

func describeState(s ball.State, vp ball.Viewport) []string {
	lines := []string{
		fmt.Sprintf("Position: %.1f, %.1f", s.Position.X, s.Position.Y),
		fmt.Sprintf("Radius: %g", s.Radius),
		fmt.Sprintf("Speed: %d", s.Speed),
		fmt.Sprintf("RGBA: %d %d %d %d", s.Color.R, s.Color.G, s.Color.B, s.Color.A),
		fmt.Sprintf("Viewport: %dx%d", vp.Width, vp.Height),
	}
	if s.Radius <= 0 || 2*s.Radius > float32(min(vp.Width, vp.Height)) {
		lines = append(lines, "Radius out of range, bounds inverted")
	}
	return lines
}

func colorVec4(c ball.Color) imgui.Vec4 {
	return imgui.NewVec4(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
}
