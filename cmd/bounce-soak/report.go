package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/bounce/ball"
	"github.com/plus3/bounce/sim"
)

type Report struct {
	// Configuration
	Duration    time.Duration
	FrameLimit  int
	Seed        uint64
	HoldProb    float64
	ResizeEvery int

	// Results
	TotalUpdates      int64
	TotalTime         time.Duration
	UpdateTime        Stats
	ColorFrames       int64
	ColorChanges      int64
	ColorChangeRate   float64
	ExpectedColorRate float64
	CheckedFrames     int64
	Violations        int64
	Resizes           int64
	FinalState        ball.State
	FinalViewport     ball.Viewport
	Systems           []sim.SystemStats
	MemStatsStart     runtime.MemStats
	MemStatsEnd       runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Bounce Soak Report

## Run Configuration
- **Run Duration:** {{.Duration}}
- **Frame Limit:** {{if .FrameLimit}}{{.FrameLimit}}{{else}}none{{end}}
- **Seed:** {{.Seed}}
- **Key Hold Probability:** {{printf "%.2f" .HoldProb}}
- **Resize Every:** {{if .ResizeEvery}}{{.ResizeEvery}} frames{{else}}never{{end}}

## Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
- **Window Resizes:** {{.Resizes}}

## Ball Rules
- **Color frames:** {{.ColorFrames}}, changed: {{.ColorChanges}}
- **Color change rate:** {{printf "%.4f" .ColorChangeRate}} (expected {{printf "%.4f" .ExpectedColorRate}})
- **Bounds checks:** {{.CheckedFrames}} frames, {{.Violations}} violations
- **Final ball:** pos ({{printf "%.1f" .FinalState.Position.X}}, {{printf "%.1f" .FinalState.Position.Y}}) radius {{.FinalState.Radius}} speed {{.FinalState.Speed}}
- **Final viewport:** {{.FinalViewport.Width}}x{{.FinalViewport.Height}}

## Systems
| System | Executions | Avg | Max |
|---|---|---|---|
{{range .Systems}}| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{end}}
## Memory Usage (MB)
- Heap Alloc:  {{mb .MemStatsStart.HeapAlloc}} (start) -> {{mb .MemStatsEnd.HeapAlloc}} (end)
- Total Alloc: {{mb .MemStatsStart.TotalAlloc}} (start) -> {{mb .MemStatsEnd.TotalAlloc}} (end)
- Num GC:      {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
