// SPDX-License-Identifier: MIT

package sparse

import (
	"strings"

	"github.com/katalvlaran/lieext/rational"
)

// Row is a sparse row: an insertion-ordered mapping from column label to value.
//
// Ordering rules:
//   - Set on a new label appends it at the end.
//   - Set on an existing label keeps its position.
//   - Delete removes the label; a later Set appends it again at the end.
//
// A Row may transiently hold exact zeros (see Eliminate); DeleteZeros removes them.
// The zero value is an empty row ready to use.
type Row struct {
	keys []Pair
	vals map[Pair]rational.Rat
}

// NewRow returns an empty row.
func NewRow() *Row {
	return &Row{vals: make(map[Pair]rational.Rat)}
}

// Len returns the number of stored entries, zeros included.
func (r *Row) Len() int { return len(r.keys) }

// Get returns the stored value under p and whether p is present.
func (r *Row) Get(p Pair) (rational.Rat, bool) {
	v, ok := r.vals[p]

	return v, ok
}

// Has reports whether p is stored, even if its value is zero.
func (r *Row) Has(p Pair) bool {
	_, ok := r.vals[p]

	return ok
}

// Set stores v under p.
func (r *Row) Set(p Pair, v rational.Rat) {
	if r.vals == nil {
		r.vals = make(map[Pair]rational.Rat)
	}
	if _, ok := r.vals[p]; !ok {
		r.keys = append(r.keys, p)
	}
	r.vals[p] = v
}

// Delete removes p; absent labels are ignored.
func (r *Row) Delete(p Pair) {
	if _, ok := r.vals[p]; !ok {
		return
	}
	delete(r.vals, p)
	for idx, k := range r.keys {
		if k == p {
			r.keys = append(r.keys[:idx], r.keys[idx+1:]...)

			return
		}
	}
}

// DeleteZeros removes every exact-zero entry and returns how many were removed.
// Relative order of the remaining entries is preserved.
func (r *Row) DeleteZeros() int {
	kept := r.keys[:0]
	removed := 0
	for _, k := range r.keys {
		if r.vals[k].IsZero() {
			delete(r.vals, k)
			removed++

			continue
		}
		kept = append(kept, k)
	}
	r.keys = kept

	return removed
}

// Keys returns a copy of the labels in insertion order.
func (r *Row) Keys() []Pair {
	out := make([]Pair, len(r.keys))
	copy(out, r.keys)

	return out
}

// Range calls fn for each entry in insertion order until fn returns false.
// fn must not mutate r.
func (r *Row) Range(fn func(p Pair, v rational.Rat) bool) {
	for _, k := range r.keys {
		if !fn(k, r.vals[k]) {
			return
		}
	}
}

// Clone returns a deep copy. Rat values are immutable and shared safely.
func (r *Row) Clone() *Row {
	c := &Row{
		keys: make([]Pair, len(r.keys)),
		vals: make(map[Pair]rational.Rat, len(r.vals)),
	}
	copy(c.keys, r.keys)
	for k, v := range r.vals {
		c.vals[k] = v
	}

	return c
}

// String formats the row as "{x,y: v, ...}" in insertion order.
func (r *Row) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for idx, k := range r.keys {
		if idx > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(k.String())
		sb.WriteString(": ")
		sb.WriteString(r.vals[k].String())
	}
	sb.WriteByte('}')

	return sb.String()
}
