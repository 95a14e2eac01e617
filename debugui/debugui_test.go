package debugui

import (
	"testing"
	"time"

	"github.com/plus3/bounce/backend/headless"
	"github.com/plus3/bounce/ball"
	"github.com/plus3/bounce/config"
	"github.com/plus3/bounce/game"
	"github.com/plus3/bounce/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstall(t *testing.T) {
	g := game.New(config.Default(), headless.New(800, 600), nil)
	before := g.Scheduler().GetStats().SystemCount

	panels := Install(g)

	require.Len(t, panels.Items, 3)
	assert.Equal(t, "Ball", panels.Items[0].Name)
	assert.Equal(t, "Scheduler", panels.Items[1].Name)
	assert.Equal(t, "Performance", panels.Items[2].Name)
	assert.Equal(t, before+1, g.Scheduler().GetStats().SystemCount)
	assert.Same(t, panels, sim.ReadSingleton[Panels](g.Storage()))
}

func TestDescribeState(t *testing.T) {
	vp := ball.Viewport{Width: 800, Height: 600}

	lines := describeState(ball.DefaultState(vp), vp)
	assert.Equal(t, []string{
		"Position: 400.0, 300.0",
		"Radius: 50",
		"Speed: 5",
		"RGBA: 230 41 55 255",
		"Viewport: 800x600",
	}, lines)

	s := ball.DefaultState(vp)
	s.Radius = -1
	assert.Contains(t, describeState(s, vp), "Radius out of range, bounds inverted")

	s.Radius = 301
	assert.Contains(t, describeState(s, vp), "Radius out of range, bounds inverted")
}

func TestStatsRows(t *testing.T) {
	stats := &sim.SchedulerStats{
		Systems: []sim.SystemStats{
			{Name: "BallSystem", AvgDuration: 2 * time.Microsecond, MaxDuration: 5 * time.Microsecond},
		},
	}
	assert.Equal(t, [][3]string{{"BallSystem", "2µs", "5µs"}}, statsRows(stats))
}

func TestPerformanceStatsAverage(t *testing.T) {
	ps := NewPerformanceStats(4, sim.NewStorage())
	assert.Equal(t, float32(0), ps.average())

	for range 6 {
		ps.record(0.016)
	}
	assert.InDelta(t, 16.0, ps.average(), 0.001)
	assert.Equal(t, 2, ps.frameIndex)
}
