// Package debugui draws Dear ImGui inspection panels over the game.
// It manages panel rendering and keyboard capture through sim singletons and
// a system.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/bounce/game"
	"github.com/plus3/bounce/sim"
)

// Panel is one ImGui window rendered every frame.
type Panel struct {
	Name   string
	Render func()
}

// Panels is the singleton list of panels to render.
type Panels struct {
	Items []Panel
}

// Add appends a panel.
func (p *Panels) Add(name string, render func()) {
	p.Items = append(p.Items, Panel{Name: name, Render: render})
}

// ImguiSystem defers every panel's render function to the end of the frame
// and hands the keyboard to ImGui while one of its widgets has focus.
type ImguiSystem struct {
	Panels  sim.Singleton[Panels]
	Capture sim.Singleton[game.InputCapture]
}

// Execute updates input capture and queues all panel renders.
func (i *ImguiSystem) Execute(frame *sim.UpdateFrame) {
	if capture := i.Capture.Get(); capture != nil {
		capture.Keyboard = imgui.CurrentIO().WantCaptureKeyboard()
	}

	panels := i.Panels.Get()
	if panels == nil {
		return
	}
	for _, panel := range panels.Items {
		frame.Commands.Defer(panel.Render)
	}
}

// Install adds the standard panels and the ImGui system to g.
func Install(g *game.Game) *Panels {
	panels := sim.NewSingleton[Panels](g.Storage()).Get()

	inspector := &BallInspector{game: g}
	stats := &SchedulerStatsPanel{scheduler: g.Scheduler()}
	perf := NewPerformanceStats(120, g.Storage())

	panels.Add("Ball", inspector.Render)
	panels.Add("Scheduler", stats.Render)
	panels.Add("Performance", perf.Render)

	g.AddSystem(&ImguiSystem{})
	return panels
}
