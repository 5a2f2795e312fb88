// Package wireworld implements the Wireworld cellular automaton.
//
// Every cell is one of four states. Electrons travel along conductor tracks as
// a head followed by a tail. All cells advance together: the next generation is
// computed from a read-only snapshot of the current one and then swapped in.
package wireworld

import (
	"errors"
	"fmt"

	"wireworld/internal/core"
)

// State is the value held by a single cell.
type State uint8

const (
	Empty State = iota
	ElectronHead
	ElectronTail
	Conductor
)

// States lists every valid cell state in numeric order.
var States = [...]State{Empty, ElectronHead, ElectronTail, Conductor}

// Valid reports whether s is one of the four Wireworld states.
func (s State) Valid() bool { return s <= Conductor }

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case ElectronHead:
		return "head"
	case ElectronTail:
		return "tail"
	case Conductor:
		return "conductor"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

var (
	// ErrOutOfBounds is returned for coordinates outside the grid.
	ErrOutOfBounds = errors.New("wireworld: coordinate out of bounds")
	// ErrInvalidState is returned for values that are not a State.
	ErrInvalidState = errors.New("wireworld: invalid cell state")
	// ErrInvalidSize is returned when a grid would have no rows or columns.
	ErrInvalidSize = errors.New("wireworld: grid dimensions must be positive")
	// ErrEmptyGrid is returned when an initial matrix has no cells.
	ErrEmptyGrid = errors.New("wireworld: empty grid")
	// ErrRaggedRows is returned when rows of an initial matrix differ in length.
	ErrRaggedRows = errors.New("wireworld: rows have unequal length")
)

// mooreOffsets holds (dRow, dCol) pairs in sampling order: left, right, up,
// down, up-left, up-right, down-left, down-right.
var mooreOffsets = [8][2]int{
	{0, -1}, {0, 1}, {-1, 0}, {1, 0},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

// Engine owns one generation of a Wireworld grid and computes the next.
// It is not safe for concurrent use.
type Engine struct {
	cur     *core.ByteGrid
	nxt     *core.ByteGrid
	initial *core.ByteGrid

	generation int
}

// New returns an engine whose grid is rows×cols, entirely Empty.
func New(rows, cols int) (*Engine, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("new %dx%d grid: %w", rows, cols, ErrInvalidSize)
	}
	return newEngine(core.NewByteGrid(cols, rows)), nil
}

// FromStates adopts a copy of matrix as the initial generation. Every row must
// have the same length and every value must be a valid State.
func FromStates(matrix [][]State) (*Engine, error) {
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(matrix), len(matrix[0])
	g := core.NewByteGrid(cols, rows)
	for r, line := range matrix {
		if len(line) != cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", r, len(line), cols, ErrRaggedRows)
		}
		for c, s := range line {
			if !s.Valid() {
				return nil, fmt.Errorf("cell (%d,%d) = %d: %w", r, c, uint8(s), ErrInvalidState)
			}
			g.Set(c, r, uint8(s))
		}
	}
	return newEngine(g), nil
}

func newEngine(g *core.ByteGrid) *Engine {
	return &Engine{
		cur:     g,
		nxt:     core.NewByteGrid(g.W, g.H),
		initial: g.Clone(),
	}
}

// Name identifies the simulation.
func (e *Engine) Name() string { return "wireworld" }

// Size returns the grid dimensions, W being columns and H rows.
func (e *Engine) Size() core.Size { return core.Size{W: e.cur.W, H: e.cur.H} }

// Rows returns the number of rows.
func (e *Engine) Rows() int { return e.cur.H }

// Cols returns the number of columns.
func (e *Engine) Cols() int { return e.cur.W }

// Generation counts ticks since construction or the last Reset.
func (e *Engine) Generation() int { return e.generation }

// Cells exposes the current generation as a row-major buffer of State values.
// The slice is only valid until the next Step.
func (e *Engine) Cells() []uint8 { return e.cur.Cells() }

// At returns the state of the cell at (row, col).
func (e *Engine) At(row, col int) (State, error) {
	if !e.cur.InBounds(col, row) {
		return Empty, fmt.Errorf("at (%d,%d): %w", row, col, ErrOutOfBounds)
	}
	return State(e.cur.At(col, row)), nil
}

// Set overwrites the cell at (row, col) in the current generation.
func (e *Engine) Set(row, col int, s State) error {
	if !e.cur.InBounds(col, row) {
		return fmt.Errorf("set (%d,%d): %w", row, col, ErrOutOfBounds)
	}
	if !s.Valid() {
		return fmt.Errorf("set (%d,%d) = %d: %w", row, col, uint8(s), ErrInvalidState)
	}
	e.cur.Set(col, row, uint8(s))
	return nil
}

// States returns a copy of the current generation, one slice per row.
func (e *Engine) States() [][]State {
	out := make([][]State, e.cur.H)
	for r := range out {
		row := make([]State, e.cur.W)
		for c := range row {
			row[c] = State(e.cur.At(c, r))
		}
		out[r] = row
	}
	return out
}

// Count returns how many cells currently hold s.
func (e *Engine) Count(s State) int {
	n := 0
	for _, v := range e.cur.Cells() {
		if State(v) == s {
			n++
		}
	}
	return n
}

// Neighbors samples the current generation around (row, col).
func (e *Engine) Neighbors(row, col int) ([]State, error) {
	return Neighbors(e.cur, row, col)
}

// Neighbors returns the states of the in-bounds Moore neighbors of (row, col)
// in the order left, right, up, down, up-left, up-right, down-left,
// down-right. Offsets past an edge are skipped, so a corner yields 3 states,
// an edge 5 and an interior cell 8.
func Neighbors(g *core.ByteGrid, row, col int) ([]State, error) {
	if !g.InBounds(col, row) {
		return nil, fmt.Errorf("neighbors of (%d,%d) in %dx%d grid: %w", row, col, g.H, g.W, ErrOutOfBounds)
	}
	out := make([]State, 0, len(mooreOffsets))
	for _, d := range mooreOffsets {
		r, c := row+d[0], col+d[1]
		if g.InBounds(c, r) {
			out = append(out, State(g.At(c, r)))
		}
	}
	return out, nil
}

// headNeighbors counts electron heads around (row, col) without allocating.
func headNeighbors(g *core.ByteGrid, row, col int) int {
	n := 0
	for _, d := range mooreOffsets {
		r, c := row+d[0], col+d[1]
		if g.InBounds(c, r) && State(g.At(c, r)) == ElectronHead {
			n++
		}
	}
	return n
}

// next applies the Wireworld rule to a single cell.
func next(s State, heads int) State {
	switch s {
	case ElectronHead:
		return ElectronTail
	case ElectronTail:
		return Conductor
	case Conductor:
		if heads == 1 || heads == 2 {
			return ElectronHead
		}
		return Conductor
	default:
		return Empty
	}
}

// Tick advances the grid by exactly one generation. Every cell of the next
// buffer is written from the current buffer only; the buffers are swapped once
// the whole grid has been computed.
func (e *Engine) Tick() {
	cur, nxt := e.cur, e.nxt
	for row := 0; row < cur.H; row++ {
		for col := 0; col < cur.W; col++ {
			s := State(cur.At(col, row))
			heads := 0
			if s == Conductor {
				heads = headNeighbors(cur, row, col)
			}
			nxt.Set(col, row, uint8(next(s, heads)))
		}
	}
	e.cur, e.nxt = nxt, cur
	e.generation++
}

// Step advances the automaton by one tick.
func (e *Engine) Step() { e.Tick() }

// Advance performs exactly n ticks. Non-positive n does nothing.
func (e *Engine) Advance(n int) {
	for i := 0; i < n; i++ {
		e.Tick()
	}
}

// Reset restores the generation the engine was constructed with. Wireworld is
// deterministic, so the seed is ignored.
func (e *Engine) Reset(int64) {
	e.cur.CopyFrom(e.initial)
	e.generation = 0
}
