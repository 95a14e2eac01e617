package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/bounce/sim"
)

// SchedulerStatsPanel lists per-system timings.
type SchedulerStatsPanel struct {
	scheduler *sim.Scheduler
}

func (p *SchedulerStatsPanel) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(560, 210), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(230, 180), imgui.CondOnce)

	if !imgui.BeginV("Scheduler", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := p.scheduler.GetStats()
	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SystemStatsTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Avg")
		imgui.TableSetupColumn("Max")
		imgui.TableHeadersRow()

		for _, row := range statsRows(stats) {
			imgui.TableNextRow()
			for _, cell := range row {
				imgui.TableNextColumn()
				imgui.Text(cell)
			}
		}

		imgui.EndTable()
	}

	imgui.End()
}

func statsRows(stats *sim.SchedulerStats) [][3]string {
	rows := make([][3]string, 0, len(stats.Systems))
	for _, sys := range stats.Systems {
		rows = append(rows, [3]string{sys.Name, sys.AvgDuration.String(), sys.MaxDuration.String()})
	}
	return rows
}
