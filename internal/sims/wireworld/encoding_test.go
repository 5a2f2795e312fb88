package wireworld

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"wireworld/internal/sims/wireworld/circuits"
)

func TestParseASCII(t *testing.T) {
	got, err := Parse(strings.NewReader(".Ht#\r\n####\n\n\n"), ASCIIAlphabet)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := [][]State{{E, H, T, C}, {C, C, C, C}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEmoji(t *testing.T) {
	got, err := Parse(strings.NewReader("🟪🟥⬜🟨\n"), EmojiAlphabet)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if diff := cmp.Diff([][]State{{E, H, T, C}}, got); diff != "" {
		t.Fatalf("parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRejectsUnknownGlyph(t *testing.T) {
	_, err := Parse(strings.NewReader("###\n#x#\n"), ASCIIAlphabet)
	if !errors.Is(err, ErrUnknownGlyph) {
		t.Fatalf("err = %v, expected ErrUnknownGlyph", err)
	}
	if !strings.Contains(err.Error(), "line 2 col 2") {
		t.Fatalf("error %q does not locate the glyph", err)
	}
}

func TestParseRejectsRaggedRows(t *testing.T) {
	if _, err := Parse(strings.NewReader("###\n##\n"), ASCIIAlphabet); !errors.Is(err, ErrRaggedRows) {
		t.Fatalf("err = %v, expected ErrRaggedRows", err)
	}
	if _, err := Parse(strings.NewReader("###\n\n###\n"), ASCIIAlphabet); !errors.Is(err, ErrRaggedRows) {
		t.Fatalf("interior blank line err = %v, expected ErrRaggedRows", err)
	}
}

func TestParseRejectsEmptyInput(t *testing.T) {
	if _, err := Parse(strings.NewReader("\n\n"), ASCIIAlphabet); !errors.Is(err, ErrEmptyGrid) {
		t.Fatalf("err = %v, expected ErrEmptyGrid", err)
	}
}

func TestFormatRoundTripsEmbeddedCircuits(t *testing.T) {
	for _, name := range circuits.Names() {
		r, alphabetName, err := circuits.Open(name)
		if err != nil {
			t.Fatalf("Open(%q): %v", name, err)
		}
		raw, err := io.ReadAll(r)
		if err != nil {
			t.Fatalf("read %q: %v", name, err)
		}
		alphabet, err := LookupAlphabet(alphabetName)
		if err != nil {
			t.Fatalf("alphabet for %q: %v", name, err)
		}
		eng, err := Load(bytes.NewReader(raw), alphabet)
		if err != nil {
			t.Fatalf("Load(%q): %v", name, err)
		}
		var out bytes.Buffer
		if err := Format(&out, eng.States(), alphabet); err != nil {
			t.Fatalf("Format(%q): %v", name, err)
		}
		if out.String() != string(raw) {
			t.Fatalf("circuit %q did not round-trip", name)
		}
	}
}

func TestLookupAlphabet(t *testing.T) {
	if a, err := LookupAlphabet("ASCII"); err != nil || a != ASCIIAlphabet {
		t.Fatalf("LookupAlphabet(ASCII) = %v, %v", a, err)
	}
	if a, err := LookupAlphabet(""); err != nil || a != EmojiAlphabet {
		t.Fatalf("empty name should default to emoji, got %v, %v", a, err)
	}
	if _, err := LookupAlphabet("braille"); err == nil {
		t.Fatal("expected error for unknown alphabet")
	}
}
