// Command wireworld runs a Wireworld circuit in the terminal.
//
//	wireworld -circuit valentine -steps 40 -delay 200ms
//	wireworld -pattern ./adder.txt -alphabet ascii -clear=false
//	wireworld -config run.toml -steps 10
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"wireworld/internal/config"
	"wireworld/internal/core"
	"wireworld/internal/observability"
	"wireworld/internal/sims/wireworld"
	"wireworld/internal/sims/wireworld/circuits"
	"wireworld/internal/term"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load("wireworld", args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "wireworld: %v\n", err)
		return 2
	}

	logger := observability.InitLogger("wireworld", cfg.LogLevel, os.Stderr)

	sim, err := core.Build(cfg.Sim, cfg.SimOptions())
	if err != nil {
		logger.Error().Err(err).Msg("build sim")
		return 1
	}
	alphabet, err := renderAlphabet(cfg)
	if err != nil {
		logger.Error().Err(err).Msg("select alphabet")
		return 1
	}
	logCensus(logger, sim)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := &term.Runner{
		Out:      os.Stdout,
		Alphabet: alphabet,
		Pacer:    core.NewPacer(cfg.Delay),
		Clear:    cfg.Clear,
		Logger:   logger,
	}
	if err := runner.Run(ctx, sim, cfg.Steps); err != nil {
		if errors.Is(err, context.Canceled) {
			return 0
		}
		logger.Error().Err(err).Msg("run")
		return 1
	}
	return 0
}

// renderAlphabet picks the output glyphs: the explicit alphabet if one was
// given, otherwise the one the selected circuit is written in.
func renderAlphabet(cfg config.Config) (wireworld.Alphabet, error) {
	if cfg.Alphabet == "" && cfg.Pattern == "" {
		if c, ok := circuits.Lookup(cfg.Circuit); ok {
			return wireworld.LookupAlphabet(c.Alphabet)
		}
	}
	return wireworld.LookupAlphabet(cfg.Alphabet)
}

func logCensus(logger zerolog.Logger, sim core.Sim) {
	eng, ok := sim.(*wireworld.Engine)
	if !ok {
		return
	}
	logger.Info().
		Int("rows", eng.Rows()).
		Int("cols", eng.Cols()).
		Int("conductors", eng.Count(wireworld.Conductor)).
		Int("heads", eng.Count(wireworld.ElectronHead)).
		Int("tails", eng.Count(wireworld.ElectronTail)).
		Msg("circuit loaded")
}
