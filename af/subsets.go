package af

import (
	"fmt"
	"iter"
)

// Range is the half-open slice [Lo, Hi) of the subset counter space.
// Counter value c stands for the Set with the same bits.
type Range struct {
	Lo uint64 `json:"lo"`
	Hi uint64 `json:"hi"`
}

// Full returns the whole counter space for n arguments: [0, 2^n).
func Full(n int) Range {
	return Range{Lo: 0, Hi: 1 << uint(n)}
}

// Size returns the number of subsets in r.
func (r Range) Size() uint64 {
	if r.Hi <= r.Lo {
		return 0
	}
	return r.Hi - r.Lo
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Lo, r.Hi)
}

// All yields every subset in r in ascending counter order. The sequence can
// be ranged over any number of times.
func (r Range) All() iter.Seq[Set] {
	return func(yield func(Set) bool) {
		for c := r.Lo; c < r.Hi; c++ {
			if !yield(Set(c)) {
				return
			}
		}
	}
}

// Subsets yields all 2^n subsets of n arguments, the empty set first and the
// full set last, each exactly once.
func Subsets(n int) iter.Seq[Set] {
	return Full(n).All()
}

// Partition splits [0, 2^n) into at most k contiguous, non-overlapping ranges
// of near-equal size, in ascending order. Concatenating the ranges' subsets
// reproduces the order of Subsets(n).
func Partition(n, k int) []Range {
	total := Full(n).Hi
	if k < 1 {
		k = 1
	}
	if uint64(k) > total {
		k = int(total)
	}

	chunk := total / uint64(k)
	rem := total % uint64(k)

	ranges := make([]Range, 0, k)
	var lo uint64
	for i := 0; i < k; i++ {
		size := chunk
		if uint64(i) < rem {
			size++
		}
		ranges = append(ranges, Range{Lo: lo, Hi: lo + size})
		lo += size
	}
	return ranges
}
