// SPDX-License-Identifier: MIT

package rational

import (
	"fmt"
	"math/big"
	"strings"
)

// Parse reads a rational written as an integer ("-3"), a fraction ("3/4",
// "-3/4") or a finite decimal ("0.25").
//
// Errors:
//   - ErrZeroDenominator for "p/0".
//   - ErrSyntax for anything else math/big cannot read.
func Parse(s string) (Rat, error) {
	text := strings.TrimSpace(s)
	if text == "" {
		return Rat{}, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
	}
	if _, den, ok := strings.Cut(text, "/"); ok {
		d, okDen := new(big.Int).SetString(strings.TrimSpace(den), 10)
		if okDen && d.Sign() == 0 {
			return Rat{}, fmt.Errorf("Parse(%q): %w", s, ErrZeroDenominator)
		}
	}
	q, ok := new(big.Rat).SetString(text)
	if !ok {
		return Rat{}, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
	}

	return FromBig(q), nil
}

// MarshalText implements encoding.TextMarshaler.
func (x Rat) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Rat) UnmarshalText(text []byte) error {
	r, err := Parse(string(text))
	if err != nil {
		return err
	}
	*x = r

	return nil
}
