//go:build !ebiten

package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"

	"github.com/plus3/bounce/backend/raylib"
	"github.com/plus3/bounce/config"
	"github.com/plus3/bounce/game"
)

const backendName = "raylib"

func run(cfg *config.Config) error {
	if cfg.Debug {
		log.Println("Debug panels need the ebiten build, ignoring debug")
	}

	window := raylib.Open(cfg)
	defer window.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := game.New(cfg, window, nil).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
