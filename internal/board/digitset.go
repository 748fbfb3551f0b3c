package board

import (
	"fmt"
	"strings"
)

// DigitSet is a bitset over the digits 1..DIM. Bit n represents digit n.
// The zero value is the empty set.
type DigitSet uint32

// Full returns the set {1..max}.
func Full(max int) DigitSet {
	return DigitSet((uint32(1)<<(max+1) - 1) &^ 1)
}

func (s DigitSet) Has(d int) bool { return s&(1<<uint(d)) != 0 }

// Add returns the set with d included and reports whether d was new.
func (s DigitSet) Add(d int) (DigitSet, bool) {
	if s.Has(d) {
		return s, false
	}
	return s | 1<<uint(d), true
}

func (s DigitSet) Remove(d int) DigitSet { return s &^ (1 << uint(d)) }

func (s DigitSet) Count() int {
	n := 0
	for s != 0 {
		s &= s - 1
		n++
	}
	return n
}

func (s DigitSet) IsEmpty() bool { return s == 0 }

// Complement returns {1..max} \ s.
func (s DigitSet) Complement(max int) DigitSet { return Full(max) &^ s }

// Intersect returns the digits common to both sets.
func (s DigitSet) Intersect(o DigitSet) DigitSet { return s & o }

// Union returns the digits present in either set.
func (s DigitSet) Union(o DigitSet) DigitSet { return s | o }

// Digits lists the members in ascending order. max bounds the scan.
func (s DigitSet) Digits(max int) []int {
	out := make([]int, 0, s.Count())
	for d := 1; d <= max; d++ {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// Single returns the only member of a one-element set, or 0.
func (s DigitSet) Single() int {
	if s.Count() != 1 {
		return 0
	}
	for d := 1; d < 32; d++ {
		if s.Has(d) {
			return d
		}
	}
	return 0
}

func (s DigitSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for d := 1; d < 32; d++ {
		if s.Has(d) {
			if !first {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d", d)
			first = false
		}
	}
	b.WriteByte('}')
	return b.String()
}
