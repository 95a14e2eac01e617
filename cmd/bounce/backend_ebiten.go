//go:build ebiten

package main

import (
	"github.com/plus3/bounce/backend/ebitengine"
	"github.com/plus3/bounce/config"
)

const backendName = "ebiten"

func run(cfg *config.Config) error {
	return ebitengine.Run(cfg)
}
