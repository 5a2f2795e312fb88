package wireworld

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// ErrUnknownGlyph is returned when an encoded grid contains a symbol outside
// its alphabet.
var ErrUnknownGlyph = errors.New("wireworld: unknown glyph")

// Alphabet maps each State to the single glyph used in text encodings,
// indexed by State.
type Alphabet [4]rune

var (
	// EmojiAlphabet uses colored squares: purple empty, red head, white tail,
	// yellow conductor.
	EmojiAlphabet = Alphabet{'🟪', '🟥', '⬜', '🟨'}
	// ASCIIAlphabet is a plain-text fallback for terminals without emoji.
	ASCIIAlphabet = Alphabet{'.', 'H', 't', '#'}
)

// LookupAlphabet resolves an alphabet by name ("emoji" or "ascii").
func LookupAlphabet(name string) (Alphabet, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "emoji":
		return EmojiAlphabet, nil
	case "ascii":
		return ASCIIAlphabet, nil
	default:
		return Alphabet{}, fmt.Errorf("unknown alphabet %q (want emoji or ascii)", name)
	}
}

// Glyph returns the rune for s.
func (a Alphabet) Glyph(s State) rune {
	if !s.Valid() {
		return '?'
	}
	return a[s]
}

// Decode maps a rune back to its State.
func (a Alphabet) Decode(r rune) (State, bool) {
	for i, g := range a {
		if g == r {
			return State(i), true
		}
	}
	return Empty, false
}

// Parse reads a rectangular glyph matrix, one row per line and one glyph per
// cell. Trailing blank lines are ignored. Errors name the offending 1-based
// line and column.
func Parse(r io.Reader, a Alphabet) ([][]State, error) {
	var rows [][]State
	var blank int
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" {
			blank++
			continue
		}
		if blank > 0 && len(rows) > 0 {
			return nil, fmt.Errorf("line %d: blank line inside grid: %w", line-1, ErrRaggedRows)
		}
		blank = 0
		row := make([]State, 0, utf8.RuneCountInString(text))
		col := 0
		for _, g := range text {
			col++
			s, ok := a.Decode(g)
			if !ok {
				return nil, fmt.Errorf("line %d col %d: %q: %w", line, col, g, ErrUnknownGlyph)
			}
			row = append(row, s)
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("line %d has %d cells, want %d: %w", line, len(row), len(rows[0]), ErrRaggedRows)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read grid: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	return rows, nil
}

// Format writes states as glyph lines, each terminated by a newline.
func Format(w io.Writer, states [][]State, a Alphabet) error {
	var sb strings.Builder
	for _, row := range states {
		for _, s := range row {
			sb.WriteRune(a.Glyph(s))
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// Load parses an encoded grid and adopts it as a new engine's first
// generation.
func Load(r io.Reader, a Alphabet) (*Engine, error) {
	states, err := Parse(r, a)
	if err != nil {
		return nil, err
	}
	return FromStates(states)
}
