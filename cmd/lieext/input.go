package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lieext/cocycle"
	"github.com/katalvlaran/lieext/rational"
	"github.com/katalvlaran/lieext/sparse"
)

var (
	errUnknownFormat = errors.New("lieext: unknown file format")
	errBadBracket    = errors.New("lieext: malformed bracket")
	errBadWeights    = errors.New("lieext: weights do not match generators")
)

// algebraFile is the on-disk description of a bracket.
type algebraFile struct {
	Mode       string         `yaml:"mode,omitempty" toml:"mode,omitempty"`
	Generators int            `yaml:"generators,omitempty" toml:"generators,omitempty"`
	Weights    []int          `yaml:"weights,omitempty" toml:"weights,omitempty"`
	Brackets   []bracketEntry `yaml:"brackets" toml:"brackets"`
}

// bracketEntry states that [v_I, v_J] has coefficient C on v_K.
type bracketEntry struct {
	I int    `yaml:"i" toml:"i"`
	J int    `yaml:"j" toml:"j"`
	K int    `yaml:"k" toml:"k"`
	C string `yaml:"c" toml:"c"`
}

// algebra is a parsed, validated algebraFile.
type algebra struct {
	mode    string
	table   cocycle.Table
	weights []int
}

// formatOf maps a file extension to "yaml" or "toml".
func formatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml", nil
	case ".toml":
		return "toml", nil
	default:
		return "", fmt.Errorf("%s: %w", path, errUnknownFormat)
	}
}

// loadAlgebra reads and validates an algebra file.
func loadAlgebra(path string) (algebra, error) {
	format, err := formatOf(path)
	if err != nil {
		return algebra{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return algebra{}, fmt.Errorf("read %s: %w", path, err)
	}

	return parseAlgebra(data, format)
}

func parseAlgebra(data []byte, format string) (algebra, error) {
	var f algebraFile
	switch format {
	case "yaml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return algebra{}, fmt.Errorf("parse yaml: %w", err)
		}
	case "toml":
		if err := toml.Unmarshal(data, &f); err != nil {
			return algebra{}, fmt.Errorf("parse toml: %w", err)
		}
	default:
		return algebra{}, fmt.Errorf("%q: %w", format, errUnknownFormat)
	}

	return f.algebra()
}

// algebra validates the file and builds the bracket table. The core assumes
// well-formed input, so every check happens here.
func (f algebraFile) algebra() (algebra, error) {
	n := f.Generators
	if n == 0 {
		n = len(f.Weights)
		for _, b := range f.Brackets {
			n = max(n, b.K+1)
		}
	}
	if f.Weights != nil && len(f.Weights) != n {
		return algebra{}, fmt.Errorf("%d weights for %d generators: %w", len(f.Weights), n, errBadWeights)
	}

	table := cocycle.NewTable(n)
	for idx, b := range f.Brackets {
		if b.I < 0 || b.I >= b.J || b.J >= b.K || b.K >= n {
			return algebra{}, fmt.Errorf("bracket %d: need 0 <= i < j < k < %d, got (%d,%d,%d): %w",
				idx, n, b.I, b.J, b.K, errBadBracket)
		}
		c, err := rational.Parse(b.C)
		if err != nil {
			return algebra{}, fmt.Errorf("bracket %d: %w", idx, err)
		}
		if c.IsZero() {
			continue
		}
		table.Set(b.I, b.J, b.K, c)
	}

	return algebra{mode: f.Mode, table: table, weights: f.Weights}, nil
}

// toFile converts a table back into its file form with brackets sorted by
// (k, i, j).
func toFile(mode string, table cocycle.Table, weights []int) algebraFile {
	f := algebraFile{Mode: mode, Generators: len(table), Weights: weights}
	for k, entries := range table {
		pairs := make([]sparse.Pair, 0, len(entries))
		for p := range entries {
			pairs = append(pairs, p)
		}
		slices.SortFunc(pairs, sparse.ComparePairs)
		for _, p := range pairs {
			f.Brackets = append(f.Brackets, bracketEntry{I: p.X, J: p.Y, K: k, C: entries[p].String()})
		}
	}

	return f
}

// encode marshals v as yaml or toml.
func encode(v any, format string) ([]byte, error) {
	switch format {
	case "yaml":
		return yaml.Marshal(v)
	case "toml":
		return toml.Marshal(v)
	default:
		return nil, fmt.Errorf("%q: %w", format, errUnknownFormat)
	}
}
