package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lieext/cocycle"
	"github.com/katalvlaran/lieext/rational"
	"github.com/katalvlaran/lieext/sparse"
)

var errBadTerm = errors.New("lieext: malformed term")

var checkCmd = &cobra.Command{
	Use:   "check <algebra-file> --term i,j=c [--term ...]",
	Short: "Check whether a bilinear form is a 2-cocycle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		terms, _ := cmd.Flags().GetStringSlice("term")

		return runCheck(cmd.OutOrStdout(), args[0], terms)
	},
}

func init() {
	checkCmd.Flags().StringSlice("term", nil, "coefficient B(i,j)=c, e.g. 0,3=-1/6 (repeatable)")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(w io.Writer, path string, terms []string) error {
	alg, err := loadAlgebra(path)
	if err != nil {
		return err
	}
	c, err := parseTerms(terms)
	if err != nil {
		return err
	}
	if err := cocycle.Verify(alg.table, c); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s is a 2-cocycle\n", c)

	return nil
}

// parseTerms reads "i,j=c" terms into a cocycle.
func parseTerms(terms []string) (cocycle.Cocycle, error) {
	coeffs := make(map[sparse.Pair]rational.Rat, len(terms))
	for _, term := range terms {
		lhs, rhs, ok := strings.Cut(term, "=")
		if !ok {
			return cocycle.Cocycle{}, fmt.Errorf("%q: missing '=': %w", term, errBadTerm)
		}
		is, js, ok := strings.Cut(lhs, ",")
		if !ok {
			return cocycle.Cocycle{}, fmt.Errorf("%q: want i,j: %w", term, errBadTerm)
		}
		i, errI := strconv.Atoi(strings.TrimSpace(is))
		j, errJ := strconv.Atoi(strings.TrimSpace(js))
		if errI != nil || errJ != nil || i < 0 || j < 0 || i == j {
			return cocycle.Cocycle{}, fmt.Errorf("%q: bad indices: %w", term, errBadTerm)
		}
		v, err := rational.Parse(rhs)
		if err != nil {
			return cocycle.Cocycle{}, fmt.Errorf("%q: %w", term, err)
		}
		coeffs[sparse.P(i, j)] = v
	}

	return cocycle.NewCocycle(coeffs), nil
}
