package ebitengine

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/bounce/config"
	"github.com/plus3/bounce/debugui"
	"github.com/plus3/bounce/game"
)

// ImguiBackend wraps the Ebitengine Dear ImGui backend.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend creates the ImGui context and backend for a window of the
// given title and size.
func NewImguiBackend(cfg *config.Config) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
	imgui.CurrentIO().SetIniFilename("")
	return &ImguiBackend{EbitenBackend: backend}
}

// runner implements ebiten.Game.
type runner struct {
	window  *Window
	game    *game.Game
	overlay *ImguiBackend
}

func (r *runner) Update() error {
	if r.window.ShouldClose() {
		return ebiten.Termination
	}

	if r.overlay != nil {
		r.overlay.BeginFrame()
	}

	r.game.Step(1.0 / float64(ebiten.TPS()))

	if r.overlay != nil {
		r.overlay.EndFrame()
	}
	return nil
}

func (r *runner) Draw(screen *ebiten.Image) {
	r.window.draw(screen)

	if r.overlay != nil {
		r.overlay.Draw(screen)
	}
}

func (r *runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	r.window.layout(outsideWidth, outsideHeight)

	if r.overlay != nil {
		r.overlay.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run builds the game on a new window and blocks until it closes. With
// cfg.Debug set, the ImGui debug panels are drawn over the scene.
func Run(cfg *config.Config) error {
	window, err := NewWindow(cfg)
	if err != nil {
		return err
	}

	r := &runner{window: window}
	if cfg.Debug {
		r.overlay = NewImguiBackend(cfg)
	}

	r.game = game.New(cfg, window, nil)
	if cfg.Debug {
		debugui.Install(r.game)
	}

	return ebiten.RunGame(r)
}
