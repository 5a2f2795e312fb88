package main

import (
	"testing"

	"wireworld/internal/config"
	"wireworld/internal/sims/wireworld"
)

func TestRunExitCodes(t *testing.T) {
	if code := run([]string{"-circuit", "clock", "-steps", "2", "-delay", "0", "-clear=false", "-log-level", "error"}); code != 0 {
		t.Fatalf("clock run exited %d", code)
	}
	if code := run([]string{"-h"}); code != 0 {
		t.Fatalf("help exited %d", code)
	}
	if code := run([]string{"-steps", "x"}); code != 2 {
		t.Fatalf("bad flag exited %d, expected 2", code)
	}
	if code := run([]string{"-circuit", "missing", "-log-level", "error"}); code != 1 {
		t.Fatalf("unknown circuit exited %d, expected 1", code)
	}
	if code := run([]string{"-sim", "life", "-log-level", "error"}); code != 1 {
		t.Fatalf("unknown sim exited %d, expected 1", code)
	}
}

func TestRenderAlphabet(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Circuit = "clock"
	if a, err := renderAlphabet(cfg); err != nil || a != wireworld.ASCIIAlphabet {
		t.Fatalf("clock should render in ascii, got %v, %v", a, err)
	}
	cfg.Alphabet = "emoji"
	if a, err := renderAlphabet(cfg); err != nil || a != wireworld.EmojiAlphabet {
		t.Fatalf("explicit alphabet ignored, got %v, %v", a, err)
	}
	cfg.Alphabet = "morse"
	if _, err := renderAlphabet(cfg); err == nil {
		t.Fatal("expected unknown alphabet error")
	}
}
