package board

// PseudoMoves generates all pseudo-legal moves for the side to move (spec
// §4.D): moves that are legal except possibly for leaving the mover's own
// king in check. Callers filter that via IsLegal (or use the combined Move
// method). The king is never a capture target: a position in which the
// opponent's king is attacked before the side to move has acted cannot arise
// from a sequence of legal moves.
func (p *Position) PseudoMoves() []Move {
	turn := p.turn
	opp := turn.Opponent()
	own := p.pieces[turn][NoPiece]
	enemy := p.pieces[opp][NoPiece] &^ p.pieces[opp][King]

	var moves []Move
	moves = append(moves, p.pawnMoves(turn, enemy)...)
	for _, piece := range []Piece{Knight, Bishop, Rook, Queen, King} {
		moves = append(moves, p.officerMoves(turn, piece, own, enemy)...)
	}
	moves = append(moves, p.castleMoves(turn)...)
	return moves
}

func (p *Position) officerMoves(turn Color, piece Piece, own, enemy Bitboard) []Move {
	var moves []Move

	bb := p.pieces[turn][piece]
	for bb != 0 {
		from := bb.LastPopSquare()
		bb ^= BitMask(from)

		targets := Attackboard(p.rotated, from, piece) &^ own
		for targets != 0 {
			to := targets.LastPopSquare()
			targets ^= BitMask(to)

			if enemy.IsSet(to) {
				_, cap, _ := p.PieceAt(to)
				moves = append(moves, Move{Type: Capture, From: from, To: to, Piece: piece, Capture: cap, Color: turn})
			} else {
				moves = append(moves, Move{Type: Normal, From: from, To: to, Piece: piece, Color: turn})
			}
		}
	}
	return moves
}

// pawnMoves generates pushes, double pushes, captures, en passant and
// promotions for turn's pawns, using the classic shift-and-mask formulas of
// PawnMoveboard/PawnCaptureboard (spec §4.D).
func (p *Position) pawnMoves(turn Color, enemy Bitboard) []Move {
	var moves []Move

	pawns := p.pieces[turn][Pawn]
	occ := p.rotated.Mask()
	promoRank := PawnPromotionRank(turn)

	addPush := func(from, to Square, jump bool) {
		if promoRank.IsSet(to) {
			for _, promo := range PromotionPieces {
				moves = append(moves, Move{Type: Promotion, From: from, To: to, Piece: Pawn, Promotion: promo, Color: turn})
			}
			return
		}
		t := Push
		if jump {
			t = Jump
		}
		moves = append(moves, Move{Type: t, From: from, To: to, Piece: Pawn, Color: turn})
	}

	addCapture := func(from, to Square) {
		if promoRank.IsSet(to) {
			_, cap, _ := p.PieceAt(to)
			for _, promo := range PromotionPieces {
				moves = append(moves, Move{Type: CapturePromotion, From: from, To: to, Piece: Pawn, Promotion: promo, Capture: cap, Color: turn})
			}
			return
		}
		_, cap, _ := p.PieceAt(to)
		moves = append(moves, Move{Type: Capture, From: from, To: to, Piece: Pawn, Capture: cap, Color: turn})
	}

	pushFrom := func(to Square) Square {
		if turn == White {
			return to - 8
		}
		return to + 8
	}

	single := PawnMoveboard(occ, turn, pawns)
	for bb := single; bb != 0; {
		to := bb.LastPopSquare()
		bb ^= BitMask(to)
		addPush(pushFrom(to), to, false)
	}

	double := PawnMoveboard(occ, turn, single) & PawnJumpRank(turn)
	for bb := double; bb != 0; {
		to := bb.LastPopSquare()
		bb ^= BitMask(to)
		addPush(pushFrom(pushFrom(to)), to, true)
	}

	var cap9, cap7 Bitboard
	if turn == White {
		cap9 = ((pawns << 9) &^ BitFile(FileH)) & enemy
		cap7 = ((pawns << 7) &^ BitFile(FileA)) & enemy
	} else {
		cap9 = ((pawns >> 9) &^ BitFile(FileA)) & enemy
		cap7 = ((pawns >> 7) &^ BitFile(FileH)) & enemy
	}
	for bb := cap9; bb != 0; {
		to := bb.LastPopSquare()
		bb ^= BitMask(to)
		if turn == White {
			addCapture(to-9, to)
		} else {
			addCapture(to+9, to)
		}
	}
	for bb := cap7; bb != 0; {
		to := bb.LastPopSquare()
		bb ^= BitMask(to)
		if turn == White {
			addCapture(to-7, to)
		} else {
			addCapture(to+7, to)
		}
	}

	if ep, ok := p.EnPassant(); ok {
		epBB := BitMask(ep)
		var ep9, ep7 Bitboard
		if turn == White {
			ep9 = ((pawns << 9) &^ BitFile(FileH)) & epBB
			ep7 = ((pawns << 7) &^ BitFile(FileA)) & epBB
		} else {
			ep9 = ((pawns >> 9) &^ BitFile(FileA)) & epBB
			ep7 = ((pawns >> 7) &^ BitFile(FileH)) & epBB
		}
		if ep9 != 0 {
			from := ep + 9
			if turn == White {
				from = ep - 9
			}
			moves = append(moves, Move{Type: EnPassant, From: from, To: ep, Piece: Pawn, Capture: Pawn, Color: turn})
		}
		if ep7 != 0 {
			from := ep + 7
			if turn == White {
				from = ep - 7
			}
			moves = append(moves, Move{Type: EnPassant, From: from, To: ep, Piece: Pawn, Capture: Pawn, Color: turn})
		}
	}

	return moves
}

// castleMoves generates 0-2 castling moves (spec §4.D(iii)): the right must
// still be held, the squares between king and rook must be empty, and the
// king may not start, pass through, or land on an attacked square.
func (p *Position) castleMoves(turn Color) []Move {
	var moves []Move

	if turn == White {
		if p.castling.IsAllowed(WhiteKingSideCastle) && p.IsEmpty(F1) && p.IsEmpty(G1) &&
			!p.IsAttacked(White, E1) && !p.IsAttacked(White, F1) && !p.IsAttacked(White, G1) {
			moves = append(moves, Move{Type: KingSideCastle, From: E1, To: G1, Piece: King, Color: White})
		}
		if p.castling.IsAllowed(WhiteQueenSideCastle) && p.IsEmpty(D1) && p.IsEmpty(C1) && p.IsEmpty(B1) &&
			!p.IsAttacked(White, E1) && !p.IsAttacked(White, D1) && !p.IsAttacked(White, C1) {
			moves = append(moves, Move{Type: QueenSideCastle, From: E1, To: C1, Piece: King, Color: White})
		}
	} else {
		if p.castling.IsAllowed(BlackKingSideCastle) && p.IsEmpty(F8) && p.IsEmpty(G8) &&
			!p.IsAttacked(Black, E8) && !p.IsAttacked(Black, F8) && !p.IsAttacked(Black, G8) {
			moves = append(moves, Move{Type: KingSideCastle, From: E8, To: G8, Piece: King, Color: Black})
		}
		if p.castling.IsAllowed(BlackQueenSideCastle) && p.IsEmpty(D8) && p.IsEmpty(C8) && p.IsEmpty(B8) &&
			!p.IsAttacked(Black, E8) && !p.IsAttacked(Black, D8) && !p.IsAttacked(Black, C8) {
			moves = append(moves, Move{Type: QueenSideCastle, From: E8, To: C8, Piece: King, Color: Black})
		}
	}
	return moves
}

// ApplyPseudo applies the (assumed pseudo-legal) move m to p and returns the
// resulting position, with the side to move flipped and the Zobrist hash
// updated incrementally (spec §4.B/§4.D). The result may leave the mover in
// check; use IsLegal or Move to filter that.
func (p *Position) ApplyPseudo(m Move) *Position {
	turn := p.turn
	opp := turn.Opponent()

	next := &Position{
		pieces:   p.pieces,
		rotated:  p.rotated,
		castling: p.castling,
		turn:     opp,
	}

	next.place(turn, m.Piece, m.From)

	switch m.Type {
	case Capture:
		next.place(opp, m.Capture, m.To)
		next.place(turn, m.Piece, m.To)

	case Promotion:
		next.place(turn, m.Promotion, m.To)

	case CapturePromotion:
		next.place(opp, m.Capture, m.To)
		next.place(turn, m.Promotion, m.To)

	case EnPassant:
		next.place(turn, m.Piece, m.To)
		epc, _ := m.EnPassantCapture()
		next.place(opp, Pawn, epc)

	case KingSideCastle, QueenSideCastle:
		next.place(turn, m.Piece, m.To)
		rf, rt, _ := m.CastlingRookMove()
		next.place(turn, Rook, rf)
		next.place(turn, Rook, rt)

	default: // Normal, Push, Jump
		next.place(turn, m.Piece, m.To)
	}

	if m.Piece == Pawn || m.IsCapture() {
		next.noProgress = 0
	} else {
		next.noProgress = p.noProgress + 1
	}

	next.castling = p.castling &^ p.castling.Lost(turn, m)
	if m.Type == Jump {
		if turn == White {
			next.enpassant = NewSquare(m.To.File(), Rank3)
		} else {
			next.enpassant = NewSquare(m.To.File(), Rank6)
		}
	}

	next.hash = defaultZobrist.Move(p.hash, p, turn, m)
	return next
}

// LegalMoves returns the legal moves available to the side to move.
func (p *Position) LegalMoves() []Move {
	pseudo := p.PseudoMoves()
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if _, ok := p.Move(m); ok {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves reports whether the side to move has any legal move, i.e.
// whether the position is checkmate or stalemate (spec §4.D edge cases).
func (p *Position) HasLegalMoves() bool {
	for _, m := range p.PseudoMoves() {
		if _, ok := p.Move(m); ok {
			return true
		}
	}
	return false
}

// IsInsufficientMaterial reports whether neither side has enough material
// to deliver checkmate: K vs K, K+N vs K, or K+B vs K (SPEC_FULL.md §12).
// Two same-colored lone bishops are treated as sufficient, matching the
// common conservative convention.
func (p *Position) IsInsufficientMaterial() bool {
	minor := func(c Color) int {
		return p.pieces[c][Knight].PopCount() + p.pieces[c][Bishop].PopCount()
	}
	heavy := func(c Color) bool {
		return p.pieces[c][Pawn] != 0 || p.pieces[c][Rook] != 0 || p.pieces[c][Queen] != 0
	}
	if heavy(White) || heavy(Black) {
		return false
	}
	return minor(White)+minor(Black) <= 1
}
