// Package circuits bundles sample Wireworld circuits with the binary.
package circuits

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"sort"
)

//go:embed *.txt
var files embed.FS

// Circuit describes one embedded pattern.
type Circuit struct {
	Name     string
	File     string
	Alphabet string
}

var catalog = map[string]Circuit{
	"valentine": {Name: "valentine", File: "valentine.txt", Alphabet: "emoji"},
	"clock":     {Name: "clock", File: "clock.txt", Alphabet: "ascii"},
}

// Names lists the embedded circuits in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the catalog entry for name.
func Lookup(name string) (Circuit, bool) {
	c, ok := catalog[name]
	return c, ok
}

// Open returns the encoded circuit and the alphabet it is written in.
func Open(name string) (io.Reader, string, error) {
	c, ok := catalog[name]
	if !ok {
		return nil, "", fmt.Errorf("unknown circuit %q (available: %v)", name, Names())
	}
	data, err := files.ReadFile(c.File)
	if err != nil {
		return nil, "", fmt.Errorf("read circuit %q: %w", name, err)
	}
	return bytes.NewReader(data), c.Alphabet, nil
}
