package board

import "fmt"

// Score is a signed position or move score in centipawns, positive favors White.
// The search window is +/- 50000 (spec §4.H); mate scores live just inside that
// window around +/- Mate so a deeper line is preferred over a shallower one.
type Score int32

const (
	// Mate is the base score of an immediate checkmate, reported as Mate-ply for
	// a mate found ply plies deep (spec §4.H, §8).
	Mate Score = 49000

	// MateThreshold bounds the mate scores: a Score is considered "a mate
	// score" by IsMate and by the transposition table's ply adjustment
	// (spec §4.G) iff |score| > 48000.
	MateThreshold Score = 48000

	// Window bounds the root alpha-beta search (spec §4.H: alpha=-50000, beta=+50000).
	Window Score = 50000

	// DrawScore is the score of a drawn position (stalemate, repetition, insufficient material).
	DrawScore Score = 0
)

func (s Score) String() string {
	if s > MateThreshold {
		return fmt.Sprintf("+M%v", (Mate-s+1)/2)
	}
	if s < -MateThreshold {
		return fmt.Sprintf("-M%v", (Mate+s+1)/2)
	}
	return fmt.Sprintf("%.2f", float64(s)/100)
}

// IsMate reports whether the score represents a forced mate (spec §4.G).
func (s Score) IsMate() bool {
	return s > MateThreshold || s < -MateThreshold
}
