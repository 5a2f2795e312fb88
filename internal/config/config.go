// Package config resolves run settings for the wireworld commands from an
// optional TOML file and command-line flags. Flags win over the file.
package config

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds every setting the drivers understand.
type Config struct {
	Sim string

	Pattern  string
	Circuit  string
	Alphabet string
	Rows     int
	Cols     int

	Steps    int
	Delay    time.Duration
	Clear    bool
	LogLevel string

	Scale int
	TPS   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() Config {
	return Config{
		Sim:      "wireworld",
		Circuit:  "valentine",
		Delay:    200 * time.Millisecond,
		Clear:    true,
		LogLevel: "info",
		Scale:    12,
		TPS:      5,
	}
}

type fileConfig struct {
	Sim      string `toml:"sim"`
	Pattern  string `toml:"pattern"`
	Circuit  string `toml:"circuit"`
	Alphabet string `toml:"alphabet"`
	Rows     int    `toml:"rows"`
	Cols     int    `toml:"cols"`
	Steps    int    `toml:"steps"`
	Delay    string `toml:"delay"`
	Clear    bool   `toml:"clear"`
	LogLevel string `toml:"log_level"`
	Scale    int    `toml:"scale"`
	TPS      int    `toml:"tps"`
}

// ApplyFile overlays the keys present in the TOML file at path onto c.
func (c *Config) ApplyFile(path string) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load run config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("load run config: unknown keys %v", undecoded)
	}

	if meta.IsDefined("sim") {
		c.Sim = strings.TrimSpace(raw.Sim)
	}
	if meta.IsDefined("pattern") {
		c.Pattern = strings.TrimSpace(raw.Pattern)
	}
	if meta.IsDefined("circuit") {
		c.Circuit = strings.TrimSpace(raw.Circuit)
	}
	if meta.IsDefined("alphabet") {
		c.Alphabet = strings.TrimSpace(raw.Alphabet)
	}
	if meta.IsDefined("rows") {
		c.Rows = raw.Rows
	}
	if meta.IsDefined("cols") {
		c.Cols = raw.Cols
	}
	if meta.IsDefined("steps") {
		c.Steps = raw.Steps
	}
	if meta.IsDefined("delay") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.Delay))
		if err != nil {
			return fmt.Errorf("parse delay: %w", err)
		}
		c.Delay = d
	}
	if meta.IsDefined("clear") {
		c.Clear = raw.Clear
	}
	if meta.IsDefined("log_level") {
		c.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("scale") {
		c.Scale = raw.Scale
	}
	if meta.IsDefined("tps") {
		c.TPS = raw.TPS
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "path to a glyph-encoded initial grid")
	fs.StringVar(&c.Circuit, "circuit", c.Circuit, "embedded circuit to load when no pattern is given")
	fs.StringVar(&c.Alphabet, "alphabet", c.Alphabet, "glyph alphabet: emoji or ascii")
	fs.IntVar(&c.Rows, "rows", c.Rows, "rows of an empty grid (requires -circuit=\"\")")
	fs.IntVar(&c.Cols, "cols", c.Cols, "columns of an empty grid (requires -circuit=\"\")")
	fs.IntVar(&c.Steps, "steps", c.Steps, "generations to advance; 0 runs until interrupted")
	fs.DurationVar(&c.Delay, "delay", c.Delay, "pause between frames")
	fs.BoolVar(&c.Clear, "clear", c.Clear, "clear the terminal before each frame")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier (gui)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second (gui)")
}

// Validate rejects settings no driver can honor.
func (c Config) Validate() error {
	switch {
	case c.Sim == "":
		return fmt.Errorf("sim must be set")
	case c.Steps < 0:
		return fmt.Errorf("steps must be >= 0, got %d", c.Steps)
	case c.Delay < 0:
		return fmt.Errorf("delay must be >= 0, got %v", c.Delay)
	case c.Scale <= 0:
		return fmt.Errorf("scale must be > 0, got %d", c.Scale)
	case c.TPS <= 0:
		return fmt.Errorf("tps must be > 0, got %d", c.TPS)
	}
	return nil
}

// SimOptions renders the grid selection as the key/value map sim factories
// accept.
func (c Config) SimOptions() map[string]string {
	opts := map[string]string{}
	if c.Pattern != "" {
		opts["pattern"] = c.Pattern
	}
	if c.Circuit != "" {
		opts["circuit"] = c.Circuit
	}
	if c.Alphabet != "" {
		opts["alphabet"] = c.Alphabet
	}
	if c.Rows > 0 {
		opts["rows"] = strconv.Itoa(c.Rows)
	}
	if c.Cols > 0 {
		opts["cols"] = strconv.Itoa(c.Cols)
	}
	return opts
}

// Load parses args into a Config. When -config names a TOML file its keys
// are applied first and the flags given on the command line are applied on
// top.
func Load(name string, args []string, output io.Writer) (Config, error) {
	cfg := NewConfig()
	fs, path := newFlagSet(name, &cfg, output)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if *path == "" {
		return cfg, cfg.Validate()
	}

	layered := NewConfig()
	if err := layered.ApplyFile(*path); err != nil {
		return Config{}, err
	}
	fs, _ = newFlagSet(name, &layered, output)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return layered, layered.Validate()
}

func newFlagSet(name string, cfg *Config, output io.Writer) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}
	path := fs.String("config", "", "optional TOML run file")
	cfg.Bind(fs)
	return fs, path
}
