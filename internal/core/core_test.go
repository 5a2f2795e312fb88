package core

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestByteGridBounds(t *testing.T) {
	g := NewByteGrid(4, 3)
	if g.W != 4 || g.H != 3 || len(g.Cells()) != 12 {
		t.Fatalf("unexpected grid %dx%d len=%d", g.W, g.H, len(g.Cells()))
	}
	for _, p := range [][2]int{{0, 0}, {3, 2}, {1, 1}} {
		if !g.InBounds(p[0], p[1]) {
			t.Fatalf("(%d,%d) should be in bounds", p[0], p[1])
		}
	}
	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, 3}, {0, -1}} {
		if g.InBounds(p[0], p[1]) {
			t.Fatalf("(%d,%d) should be out of bounds", p[0], p[1])
		}
	}
}

func TestByteGridCloneIsIndependent(t *testing.T) {
	g := NewByteGrid(2, 2)
	g.Set(1, 0, 3)
	clone := g.Clone()
	g.Set(1, 0, 1)
	if clone.At(1, 0) != 3 {
		t.Fatalf("clone changed with source: %d", clone.At(1, 0))
	}
	g.CopyFrom(clone)
	if g.At(1, 0) != 3 || g.Cells()[g.Index(1, 0)] != 3 {
		t.Fatal("CopyFrom did not restore value")
	}
	g.Clear()
	for _, v := range g.Cells() {
		if v != 0 {
			t.Fatal("Clear left non-zero cell")
		}
	}
}

func TestNewByteGridClampsDimensions(t *testing.T) {
	g := NewByteGrid(0, -2)
	if g.W != 1 || g.H != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d", g.W, g.H)
	}
}

type stubSim struct{ steps int }

func (s *stubSim) Name() string   { return "stub" }
func (s *stubSim) Size() Size     { return Size{W: 1, H: 1} }
func (s *stubSim) Reset(int64)    { s.steps = 0 }
func (s *stubSim) Step()          { s.steps++ }
func (s *stubSim) Cells() []uint8 { return []uint8{0} }

func TestRegistryBuild(t *testing.T) {
	Register("stub", func(cfg map[string]string) (Sim, error) {
		if cfg["fail"] != "" {
			return nil, errors.New("boom")
		}
		return &stubSim{}, nil
	})
	Register("", nil)

	sim, err := Build("stub", nil)
	if err != nil || sim.Name() != "stub" {
		t.Fatalf("Build(stub) = %v, %v", sim, err)
	}
	if _, err := Build("stub", map[string]string{"fail": "1"}); err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("factory error not surfaced: %v", err)
	}
	if _, err := Build("missing", nil); err == nil {
		t.Fatal("expected unknown sim error")
	}
	found := false
	for _, name := range Names() {
		if name == "" {
			t.Fatal("empty name registered")
		}
		if name == "stub" {
			found = true
		}
	}
	if !found {
		t.Fatal("stub missing from Names()")
	}
}

func TestPacerWaits(t *testing.T) {
	p := NewPacer(20 * time.Millisecond)
	start := time.Now()
	if err := p.Wait(context.Background()); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Fatalf("Wait returned after %v", elapsed)
	}
}

func TestPacerCancel(t *testing.T) {
	p := NewPacer(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := p.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Wait err = %v, expected context.Canceled", err)
	}
}

func TestPacerDelayNormalization(t *testing.T) {
	if d := NewPacer(-time.Second).Delay(); d != 0 {
		t.Fatalf("negative delay kept as %v", d)
	}
	if d := NewPacerTPS(0).Delay(); d != time.Second/60 {
		t.Fatalf("default TPS delay %v", d)
	}
	if d := NewPacerTPS(4).Delay(); d != 250*time.Millisecond {
		t.Fatalf("4 TPS delay %v", d)
	}
	if err := NewPacer(0).Wait(context.Background()); err != nil {
		t.Fatalf("zero delay Wait: %v", err)
	}
}
