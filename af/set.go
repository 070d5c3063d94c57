package af

import (
	"iter"
	"math/bits"
)

// Set is a subset of a framework's arguments; bit i stands for the argument
// with canonical index i.
type Set uint64

// Has reports whether index i is a member.
func (s Set) Has(i int) bool { return s&(1<<uint(i)) != 0 }

// Add returns s with index i included.
func (s Set) Add(i int) Set { return s | 1<<uint(i) }

// Len returns the number of members.
func (s Set) Len() int { return bits.OnesCount64(uint64(s)) }

// SubsetOf reports whether every member of s is in o.
func (s Set) SubsetOf(o Set) bool { return s&^o == 0 }

// All yields member indices in ascending order.
func (s Set) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for r := uint64(s); r != 0; r &= r - 1 {
			if !yield(bits.TrailingZeros64(r)) {
				return
			}
		}
	}
}
