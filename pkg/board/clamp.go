package board

import "golang.org/x/exp/constraints"

// Max and Min are generic replacements for the per-type min/max helpers a
// hand-rolled version of this package would otherwise need one of for each
// of Score, int and Bitboard popcounts; used by search's quiescence alpha
// updates and eval's mobility caps.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}
