// Package term drives a simulation in a text terminal: render the current
// generation, pause, advance, repeat.
package term

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"wireworld/internal/core"
	"wireworld/internal/sims/wireworld"
)

const clearScreen = "\033[H\033[2J"

// Runner renders successive generations of a sim to Out.
type Runner struct {
	Out      io.Writer
	Alphabet wireworld.Alphabet
	Pacer    *core.Pacer
	// Clear homes the cursor and wipes the screen before each frame. Without
	// it frames are separated by a blank line.
	Clear  bool
	Logger zerolog.Logger
}

// Run renders the current generation and then advances exactly steps
// generations, rendering after each one, so steps+1 frames are written. A
// steps value of zero runs until ctx is cancelled, in which case ctx.Err() is
// returned.
func (r *Runner) Run(ctx context.Context, sim core.Sim, steps int) error {
	if steps < 0 {
		return fmt.Errorf("steps must be >= 0, got %d", steps)
	}
	pacer := r.Pacer
	if pacer == nil {
		pacer = core.NewPacer(0)
	}
	r.Logger.Info().Str("sim", sim.Name()).Int("steps", steps).Dur("delay", pacer.Delay()).Msg("run started")

	if err := r.Frame(sim, 0); err != nil {
		return err
	}
	for gen := 1; steps == 0 || gen <= steps; gen++ {
		if err := pacer.Wait(ctx); err != nil {
			r.Logger.Info().Int("generation", gen-1).Msg("run interrupted")
			return err
		}
		sim.Step()
		if err := r.Frame(sim, gen); err != nil {
			return err
		}
	}
	r.Logger.Info().Int("generations", steps).Msg("run finished")
	return nil
}

// Frame writes one generation of sim.
func (r *Runner) Frame(sim core.Sim, gen int) error {
	size := sim.Size()
	cells := sim.Cells()
	if len(cells) != size.W*size.H {
		return fmt.Errorf("sim %s reported %d cells for %dx%d grid", sim.Name(), len(cells), size.W, size.H)
	}

	var sb strings.Builder
	if r.Clear {
		sb.WriteString(clearScreen)
	}
	for y := 0; y < size.H; y++ {
		for _, v := range cells[y*size.W : (y+1)*size.W] {
			sb.WriteRune(r.Alphabet.Glyph(wireworld.State(v)))
		}
		sb.WriteByte('\n')
	}
	if !r.Clear {
		sb.WriteByte('\n')
	}
	if _, err := io.WriteString(r.Out, sb.String()); err != nil {
		return fmt.Errorf("write frame %d: %w", gen, err)
	}
	r.Logger.Debug().Int("generation", gen).Msg("frame")
	return nil
}
