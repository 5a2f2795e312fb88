package wireworld

import (
	"fmt"
	"os"
	"strconv"

	"wireworld/internal/core"
	"wireworld/internal/sims/wireworld/circuits"
)

// Config selects the initial generation of a Wireworld sim. Pattern takes
// precedence over Circuit; when both are empty an all-Empty Rows×Cols grid is
// built.
type Config struct {
	Rows int
	Cols int

	Pattern  string
	Circuit  string
	Alphabet string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Rows: 64, Cols: 64, Circuit: "valentine", Alphabet: "emoji"}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Giving rows or cols without a circuit selects an empty grid.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
			c.Circuit = ""
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
			c.Circuit = ""
		}
	}
	if v, ok := cfg["circuit"]; ok && v != "" {
		c.Circuit = v
	}
	if v, ok := cfg["pattern"]; ok {
		c.Pattern = v
	}
	if v, ok := cfg["alphabet"]; ok && v != "" {
		c.Alphabet = v
	}
	return c
}

// Build constructs the engine described by c.
func Build(c Config) (*Engine, error) {
	switch {
	case c.Pattern != "":
		alphabet, err := LookupAlphabet(c.Alphabet)
		if err != nil {
			return nil, err
		}
		f, err := os.Open(c.Pattern)
		if err != nil {
			return nil, fmt.Errorf("open pattern: %w", err)
		}
		defer f.Close()
		e, err := Load(f, alphabet)
		if err != nil {
			return nil, fmt.Errorf("load pattern %s: %w", c.Pattern, err)
		}
		return e, nil
	case c.Circuit != "":
		r, name, err := circuits.Open(c.Circuit)
		if err != nil {
			return nil, err
		}
		alphabet, err := LookupAlphabet(name)
		if err != nil {
			return nil, err
		}
		e, err := Load(r, alphabet)
		if err != nil {
			return nil, fmt.Errorf("load circuit %s: %w", c.Circuit, err)
		}
		return e, nil
	default:
		return New(c.Rows, c.Cols)
	}
}

func init() {
	core.Register("wireworld", func(cfg map[string]string) (core.Sim, error) {
		return Build(FromMap(cfg))
	})
}
