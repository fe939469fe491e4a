package eval

import "github.com/Steven141/ChessProject-sub000/pkg/board"

// Piece-square tables in classic orientation: row 0 is rank 8, row 7 is rank
// 1; column 0 is the a-file, column 7 the h-file. Values are centipawn
// bonuses/penalties for a White piece standing on that square; Black's
// bonus for the mirrored square is looked up from the same table via
// pstIndex, rather than duplicating a second, vertically-flipped table.
var (
	pawnPST = [64]board.Score{
		0, 0, 0, 0, 0, 0, 0, 0,
		50, 50, 50, 50, 50, 50, 50, 50,
		10, 10, 20, 30, 30, 20, 10, 10,
		5, 5, 10, 25, 25, 10, 5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, -5, -10, 0, 0, -10, -5, 5,
		5, 10, 10, -20, -20, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	knightPST = [64]board.Score{
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	}
	bishopPST = [64]board.Score{
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	}
	rookPST = [64]board.Score{
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, 10, 10, 10, 10, 5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		0, 0, 0, 5, 5, 0, 0, 0,
	}
	queenPST = [64]board.Score{
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		0, 0, 5, 5, 5, 5, 0, -5,
		-10, 5, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	}
	kingPST = [64]board.Score{
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		20, 20, 0, 0, 0, 0, 20, 20,
		20, 30, 10, 0, 0, 10, 30, 20,
	}
)

func pstFor(p board.Piece) *[64]board.Score {
	switch p {
	case board.Pawn:
		return &pawnPST
	case board.Knight:
		return &knightPST
	case board.Bishop:
		return &bishopPST
	case board.Rook:
		return &rookPST
	case board.Queen:
		return &queenPST
	case board.King:
		return &kingPST
	default:
		return nil
	}
}

// pstIndex maps sq to a row-major index into the tables above, from c's
// point of view: White reads the table top-down as printed, Black reads it
// from its own side of the board (rank 1 maps to row 0).
func pstIndex(sq board.Square, c board.Color) int {
	file := int(board.FileA - sq.File())
	rank := int(sq.Rank())
	if c == board.White {
		rank = 7 - rank
	}
	return rank*8 + file
}

// PieceSquares returns the piece-placement balance, White minus Black, in
// centipawns (spec §4.F).
func PieceSquares(pos *board.Position) board.Score {
	var score board.Score
	for c := board.White; c <= board.Black; c++ {
		sign := c.Unit()
		for p := board.Pawn; p <= board.King; p++ {
			table := pstFor(p)
			for bb := pos.Piece(c, p); bb != 0; {
				sq := bb.LastPopSquare()
				bb ^= board.BitMask(sq)
				score += sign * table[pstIndex(sq, c)]
			}
		}
	}
	return score
}

// PawnStructure scores doubled, isolated and passed pawns, White minus Black
// (spec §4.F).
func PawnStructure(pos *board.Position) board.Score {
	return pawnStructureFor(pos, board.White) - pawnStructureFor(pos, board.Black)
}

func pawnStructureFor(pos *board.Position, c board.Color) board.Score {
	pawns := pos.Piece(c, board.Pawn)
	opp := pos.Piece(c.Opponent(), board.Pawn)

	var score board.Score
	for f := board.ZeroFile; f < board.NumFiles; f++ {
		if n := (pawns & board.BitFile(f)).PopCount(); n > 1 {
			score -= board.Score(n-1) * 15
		}
	}

	for bb := pawns; bb != 0; {
		sq := bb.LastPopSquare()
		bb ^= board.BitMask(sq)

		if board.IsolatedMask(sq.File())&pawns == 0 {
			score -= 12
		}
		if board.PassedMask(c, sq)&opp == 0 {
			rank := sq.Rank()
			if c == board.Black {
				rank = 7 - rank
			}
			score += board.Score(rank) * 10
		}
	}
	return score
}

// RookFiles rewards rooks on open and semi-open files, White minus Black
// (spec §4.F).
func RookFiles(pos *board.Position) board.Score {
	return rookFilesFor(pos, board.White) - rookFilesFor(pos, board.Black)
}

func rookFilesFor(pos *board.Position, c board.Color) board.Score {
	own := pos.Piece(c, board.Pawn)
	opp := pos.Piece(c.Opponent(), board.Pawn)

	var score board.Score
	for bb := pos.Piece(c, board.Rook); bb != 0; {
		sq := bb.LastPopSquare()
		bb ^= board.BitMask(sq)

		file := board.BitFile(sq.File())
		switch {
		case own&file == 0 && opp&file == 0:
			score += 20
		case own&file == 0:
			score += 10
		}
	}
	return score
}

// Mobility rewards bishops and queens with more reachable squares, White
// minus Black (spec §4.F).
func Mobility(pos *board.Position) board.Score {
	return mobilityFor(pos, board.White) - mobilityFor(pos, board.Black)
}

func mobilityFor(pos *board.Position, c board.Color) board.Score {
	own := pos.Color(c)

	var score board.Score
	for bb := pos.Piece(c, board.Bishop); bb != 0; {
		sq := bb.LastPopSquare()
		bb ^= board.BitMask(sq)
		score += board.Min(board.Score((board.BishopAttackboard(pos.Rotated(), sq)&^own).PopCount())*2, 26)
	}
	for bb := pos.Piece(c, board.Queen); bb != 0; {
		sq := bb.LastPopSquare()
		bb ^= board.BitMask(sq)
		score += board.Min(board.Score((board.QueenAttackboard(pos.Rotated(), sq)&^own).PopCount())*1, 27)
	}
	return score
}

// KingSafety rewards pawns sheltering the king on its own and adjacent
// files and penalizes pieces pinned against the king, White minus Black
// (spec §4.F).
func KingSafety(pos *board.Position) board.Score {
	return kingSafetyFor(pos, board.White) - kingSafetyFor(pos, board.Black)
}

func kingSafetyFor(pos *board.Position, c board.Color) board.Score {
	king := pos.KingSquare(c)
	ownPawns := pos.Piece(c, board.Pawn)

	shieldFiles := board.BitFile(king.File()) | board.IsolatedMask(king.File())

	var shieldRanks board.Bitboard
	r := int(king.Rank())
	for _, dr := range []int{1, 2} {
		rr := r + dr
		if c == board.Black {
			rr = r - dr
		}
		if rr < 0 || rr > 7 {
			continue
		}
		shieldRanks |= board.BitRank(board.Rank(rr))
	}

	n := (shieldFiles & shieldRanks & ownPawns).PopCount()
	score := board.Score(n) * 10

	// A piece pinned against the king cannot move freely without exposing
	// check, so each one is a standing tactical liability regardless of
	// which piece it is.
	score -= board.Score(len(FindPins(pos, c, board.King))) * 15

	return score
}

// Threats penalizes pieces hanging to a cheaper attacker, White minus Black
// (spec §4.F). This only approximates the exchange value of the square (no
// recapture chain is walked), unlike the teacher's use of FindCapture for
// static exchange evaluation in quiescence; it is cheap enough to run on
// every node of the main search instead.
func Threats(pos *board.Position) board.Score {
	return threatsFor(pos, board.White) - threatsFor(pos, board.Black)
}

func threatsFor(pos *board.Position, c board.Color) board.Score {
	opp := c.Opponent()

	var score board.Score
	for p := board.Pawn + 1; p <= board.Queen; p++ {
		for bb := pos.Piece(c, p); bb != 0; {
			sq := bb.LastPopSquare()
			bb ^= board.BitMask(sq)

			attackers := SortByNominalValue(FindCapture(pos, opp, sq))
			if len(attackers) == 0 {
				continue
			}
			if NominalValue(attackers[0].Piece) < NominalValue(p) {
				score -= NominalValue(p) / 10
			}
		}
	}
	return score
}
