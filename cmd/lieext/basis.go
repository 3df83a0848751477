package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lieext/cocycle"
)

var basisCmd = &cobra.Command{
	Use:   "basis <algebra-file>",
	Short: "Print a basis of the 2-cocycles",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBasis(cmd.OutOrStdout(), args[0], appConfig)
	},
}

func init() {
	rootCmd.AddCommand(basisCmd)
}

// result is a computed basis together with the inputs that produced it.
type result struct {
	mode  cocycle.Mode
	alg   algebra
	basis cocycle.Basis
}

// compute loads path and computes its cocycle basis.
func compute(path string, cfg Config) (result, error) {
	alg, err := loadAlgebra(path)
	if err != nil {
		return result{}, err
	}
	mode := cocycle.ParseMode(cfg.resolveMode(alg.mode))

	var opts []cocycle.Option
	if alg.weights != nil {
		opts = append(opts, cocycle.WithWeights(alg.weights))
	}
	basis, err := cocycle.CentralExtensionBasis(alg.table, mode, opts...)
	if err != nil {
		return result{}, fmt.Errorf("%s: %w", path, err)
	}

	return result{mode: mode, alg: alg, basis: basis}, nil
}

func runBasis(w io.Writer, path string, cfg Config) error {
	res, err := compute(path, cfg)
	if err != nil {
		return err
	}

	return render(w, res, cfg.Format)
}

// basisDoc is the structured (yaml/toml) form of a result.
type basisDoc struct {
	Mode       string       `yaml:"mode" toml:"mode"`
	Generators int          `yaml:"generators" toml:"generators"`
	Dimension  int          `yaml:"dimension" toml:"dimension"`
	Cocycles   []cocycleDoc `yaml:"cocycles" toml:"cocycles"`
	Forbidden  [][2]int     `yaml:"forbidden" toml:"forbidden"`
}

type cocycleDoc struct {
	Degree *int      `yaml:"degree,omitempty" toml:"degree,omitempty"`
	Terms  []termDoc `yaml:"terms" toml:"terms"`
}

type termDoc struct {
	I int    `yaml:"i" toml:"i"`
	J int    `yaml:"j" toml:"j"`
	C string `yaml:"c" toml:"c"`
}

func newBasisDoc(res result) basisDoc {
	n := len(res.alg.table)
	doc := basisDoc{
		Mode:       res.mode.String(),
		Generators: n,
		Dimension:  res.basis.Dimension(),
		Cocycles:   make([]cocycleDoc, 0, len(res.basis)),
		Forbidden:  [][2]int{},
	}
	for _, c := range res.basis {
		cd := cocycleDoc{}
		if res.mode.IsGraded() {
			if deg, err := c.Degree(res.alg.weights); err == nil {
				cd.Degree = &deg
			}
		}
		for _, p := range c.Support() {
			cd.Terms = append(cd.Terms, termDoc{I: p.X, J: p.Y, C: c.At(p.X, p.Y).String()})
		}
		doc.Cocycles = append(doc.Cocycles, cd)
	}
	for _, p := range res.basis.Forbidden(n) {
		doc.Forbidden = append(doc.Forbidden, [2]int{p.X, p.Y})
	}

	return doc
}

// render writes res as text, yaml or toml.
func render(w io.Writer, res result, format string) error {
	if format != "text" {
		data, err := encode(newBasisDoc(res), format)
		if err != nil {
			return err
		}
		_, err = w.Write(data)

		return err
	}

	n := len(res.alg.table)
	fmt.Fprintf(w, "mode: %s\n", res.mode)
	fmt.Fprintf(w, "generators: %d\n", n)
	fmt.Fprintf(w, "dimension: %d\n", res.basis.Dimension())
	for idx, c := range res.basis {
		line := fmt.Sprintf("[%d] %s", idx, c)
		if res.mode.IsGraded() {
			if deg, err := c.Degree(res.alg.weights); err == nil {
				line += fmt.Sprintf("  (degree %d)", deg)
			}
		}
		fmt.Fprintln(w, line)
	}
	forbidden := res.basis.Forbidden(n)
	parts := make([]string, len(forbidden))
	for i, p := range forbidden {
		parts[i] = "(" + p.String() + ")"
	}
	fmt.Fprintf(w, "forbidden: %s\n", strings.Join(parts, " "))

	return nil
}
