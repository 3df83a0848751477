// SPDX-License-Identifier: MIT

package cocycle

// Mode selects how constraints are organised.
type Mode int

const (
	// Nilpotent solves every constraint in one matrix; weights are ignored.
	Nilpotent Mode = iota

	// Graded splits constraints and unknowns by weight degree.
	Graded

	// Carnot is solved exactly like Graded.
	Carnot
)

// ParseMode maps a mode name to a Mode. "nilpotent" and "carnot" select their
// modes; every other value is treated as graded.
func ParseMode(s string) Mode {
	switch s {
	case "nilpotent":
		return Nilpotent
	case "carnot":
		return Carnot
	default:
		return Graded
	}
}

// IsGraded reports whether the mode partitions by degree.
func (m Mode) IsGraded() bool { return m != Nilpotent }

// String returns the canonical mode name.
func (m Mode) String() string {
	switch m {
	case Nilpotent:
		return "nilpotent"
	case Carnot:
		return "carnot"
	default:
		return "graded"
	}
}
