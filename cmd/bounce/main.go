// Command bounce opens the ball demo window.
//
// The default build uses raylib. Build with -tags ebiten for the Ebitengine
// window and its ImGui debug panels. The two cannot share a binary because
// both link their own copy of GLFW.
package main

import (
	"flag"
	"log"

	"github.com/plus3/bounce/config"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file. Defaults are used when empty.")
	debug := flag.Bool("debug", false, "Show the ImGui debug panels (ebiten build only).")
	seed := flag.Uint64("seed", 0, "Seed for the color effect. Zero picks a random seed.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *debug {
		cfg.Debug = true
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	log.Printf("Starting %s (%dx%d, %s backend)", cfg.Window.Title, cfg.Window.Width, cfg.Window.Height, backendName)

	if err := run(cfg); err != nil {
		log.Fatalf("Exited with error: %v", err)
	}
	log.Println("Window closed.")
}
