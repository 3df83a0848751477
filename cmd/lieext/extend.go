package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lieext/cocycle"
)

var errNoSuchCocycle = errors.New("lieext: no such basis cocycle")

var extendCmd = &cobra.Command{
	Use:   "extend <algebra-file>",
	Short: "Write the central extension by a cocycle as a new algebra file",
	Long: "extend appends a generator z and adds B(i,j)·z to every bracket [v_i, v_j].\n" +
		"B is either basis cocycle --index or the form given by --term.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, _ := cmd.Flags().GetInt("index")
		terms, _ := cmd.Flags().GetStringSlice("term")
		out, _ := cmd.Flags().GetString("out")

		if out == "" {
			format, err := formatOf(args[0])
			if err != nil {
				return err
			}

			return runExtend(cmd.OutOrStdout(), args[0], appConfig, index, terms, format)
		}

		format, err := formatOf(out)
		if err != nil {
			return err
		}
		// The input is read in full before out is touched, so out may name
		// the input file.
		data, err := extendAlgebra(args[0], appConfig, index, terms, format)
		if err != nil {
			return err
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}

		return nil
	},
}

func init() {
	extendCmd.Flags().Int("index", 0, "basis cocycle to extend by (see `lieext basis`)")
	extendCmd.Flags().StringSlice("term", nil, "explicit coefficient B(i,j)=c instead of --index (repeatable)")
	extendCmd.Flags().String("out", "", "output file (.yaml or .toml); stdout when empty")
	rootCmd.AddCommand(extendCmd)
}

func runExtend(w io.Writer, path string, cfg Config, index int, terms []string, format string) error {
	data, err := extendAlgebra(path, cfg, index, terms, format)
	if err != nil {
		return err
	}
	_, err = w.Write(data)

	return err
}

// extendAlgebra computes the extension of the algebra at path and returns it
// encoded as format.
func extendAlgebra(path string, cfg Config, index int, terms []string, format string) ([]byte, error) {
	res, err := compute(path, cfg)
	if err != nil {
		return nil, err
	}

	var c cocycle.Cocycle
	if len(terms) > 0 {
		if c, err = parseTerms(terms); err != nil {
			return nil, err
		}
	} else {
		if index < 0 || index >= len(res.basis) {
			return nil, fmt.Errorf("index %d of %d: %w", index, len(res.basis), errNoSuchCocycle)
		}
		c = res.basis[index]
	}

	var weights []int
	if res.mode.IsGraded() {
		weights = res.alg.weights
	}
	table, extWeights, err := cocycle.Extend(res.alg.table, weights, c)
	if err != nil {
		return nil, err
	}

	// Record the mode actually used so the output reloads under the same rules.
	return encode(toFile(res.mode.String(), table, extWeights), format)
}
