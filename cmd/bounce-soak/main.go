// Command bounce-soak runs the full frame pipeline without a window, holding
// random keys, and prints a report on timings and rule checks.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/bounce/config"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak should run for.")
	frames := flag.Int("frames", 0, "Stop after this many frames. Zero runs for the full duration.")
	seed := flag.Uint64("seed", 1, "Seed for key presses and the color effect.")
	holdProb := flag.Float64("hold-prob", 0.3, "Probability that each key is held on a frame.")
	resizeEvery := flag.Int("resize-every", 600, "Resize the window every N frames. Zero disables resizing.")
	configPath := flag.String("config", "", "Path to a YAML config file.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Println("Starting soak run...")

	soak := NewSoak(cfg, *seed, *holdProb, *resizeEvery)
	report := &Report{
		Duration:    *duration,
		FrameLimit:  *frames,
		Seed:        *seed,
		HoldProb:    *holdProb,
		ResizeEvery: *resizeEvery,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	dt := 1.0 / float64(cfg.Window.FPS)

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			soak.Step(dt)
			if *frames > 0 && soak.frames >= int64(*frames) {
				break Loop
			}
		}
	}

	report.TotalTime = time.Since(startTime)
	soak.Fill(report)
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Soak finished.")

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	if report.Violations > 0 {
		log.Fatalf("%d bounds violations", report.Violations)
	}
}
