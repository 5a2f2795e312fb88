//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"wireworld/internal/app"
	"wireworld/internal/config"
	"wireworld/internal/core"
	"wireworld/internal/observability"
	_ "wireworld/internal/sims/wireworld"
)

func main() {
	cfg, err := config.Load("wireworld-gui", os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	logger := observability.InitLogger("wireworld-gui", cfg.LogLevel, os.Stderr)
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	sim, err := core.Build(cfg.Sim, cfg.SimOptions())
	if err != nil {
		logger.Fatal().Err(err).Msg("build sim")
	}

	game := app.New(sim, cfg.Scale, 0, logger)
	size := sim.Size()

	ebiten.SetWindowTitle("wireworld — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal().Err(err).Msg("run game")
	}
}
