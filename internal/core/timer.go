package core

import (
	"context"
	"time"
)

// Pacer spaces out frames of a display loop by a fixed delay.
type Pacer struct {
	delay time.Duration
}

// NewPacer constructs a Pacer. Negative delays are treated as zero.
func NewPacer(delay time.Duration) *Pacer {
	p := &Pacer{}
	p.SetDelay(delay)
	return p
}

// NewPacerTPS constructs a Pacer targeting the given ticks per second.
func NewPacerTPS(tps int) *Pacer {
	if tps <= 0 {
		tps = 60
	}
	return NewPacer(time.Second / time.Duration(tps))
}

// SetDelay changes the pause between frames.
func (p *Pacer) SetDelay(delay time.Duration) {
	if delay < 0 {
		delay = 0
	}
	p.delay = delay
}

// Delay reports the configured pause.
func (p *Pacer) Delay() time.Duration { return p.delay }

// Wait blocks for the configured delay or until ctx is done, whichever comes
// first. It returns ctx.Err() when interrupted.
func (p *Pacer) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil || p.delay == 0 {
		return err
	}
	t := time.NewTimer(p.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
