package board

import "fmt"

// Perft counts the leaf nodes of the legal move tree rooted at pos, to the
// given depth (spec §4.E). It is the reference correctness harness for the
// move generator: a divergence from a known-good count at a standard FEN
// pinpoints a move-generation bug far more precisely than game-play alone.
func Perft(pos *Position, depth int) int64 {
	if depth == 0 {
		return 1
	}

	var count int64
	for _, m := range pos.PseudoMoves() {
		next, ok := pos.Move(m)
		if !ok {
			continue
		}
		count += Perft(next, depth-1)
	}
	return count
}

// PerftDivide is like Perft, but also returns the per-root-move leaf count
// (SPEC_FULL.md §12's "-divide" mode), keyed by the move's wire token. It is
// used to bisect a failing perft count down to the offending root move.
func PerftDivide(pos *Position, depth int) (int64, map[string]int64) {
	divide := make(map[string]int64)
	var total int64

	for _, m := range pos.PseudoMoves() {
		next, ok := pos.Move(m)
		if !ok {
			continue
		}
		n := Perft(next, depth-1)
		divide[m.String()] += n
		total += n
	}
	return total, divide
}

// PerftVerifyHash is a debug/test variant of Perft (spec invariant I2/I3)
// that additionally asserts, at every node, that the incrementally
// maintained Zobrist hash matches one computed from scratch. It returns an
// error describing the first position at which they disagree.
func PerftVerifyHash(pos *Position, depth int) (int64, error) {
	if full := defaultZobrist.Full(pos, pos.turn); full != pos.hash {
		return 0, fmt.Errorf("hash mismatch at %v: incremental=%v full=%v", pos, pos.hash, full)
	}
	if depth == 0 {
		return 1, nil
	}

	var count int64
	for _, m := range pos.PseudoMoves() {
		next, ok := pos.Move(m)
		if !ok {
			continue
		}
		n, err := PerftVerifyHash(next, depth-1)
		if err != nil {
			return 0, fmt.Errorf("after %v: %w", m, err)
		}
		count += n
	}
	return count, nil
}
