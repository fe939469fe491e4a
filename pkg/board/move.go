package board

import "fmt"

// MoveType indicates the shape of a move. Needed to disambiguate the wire
// token (spec §3) and to drive incremental Zobrist updates and position
// mutation without re-deriving intent from the squares alone.
type MoveType uint8

const (
	Normal MoveType = iota
	Push             // single pawn push
	Jump             // double pawn push (sets the en-passant file)
	Capture
	EnPassant // implicitly a pawn capture
	Promotion
	CapturePromotion
	KingSideCastle
	QueenSideCastle
)

// Move represents a not-necessarily-legal move along with the contextual
// metadata (spec §3) needed to apply it and to print/parse the wire token.
type Move struct {
	Type      MoveType
	From, To  Square
	Piece     Piece // piece that moved, before promotion
	Promotion Piece // promoted-to piece, if Type is (Capture)Promotion
	Capture   Piece // captured piece, if any (NoPiece otherwise)
	Color     Color // color of the mover
}

func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion
}

func (m Move) IsCapture() bool {
	return m.Type == Capture || m.Type == CapturePromotion || m.Type == EnPassant
}

func (m Move) IsPromotion() bool {
	return m.Type == Promotion || m.Type == CapturePromotion
}

func (m Move) IsCastle() bool {
	return m.Type == KingSideCastle || m.Type == QueenSideCastle
}

func (m Move) IsQuiet() bool {
	return !m.IsCapture() && !m.IsPromotion()
}

// CastlingRookMove returns the rook's from/to squares for a castling move.
func (m Move) CastlingRookMove() (Square, Square, bool) {
	switch m.Type {
	case KingSideCastle:
		if m.Color == White {
			return H1, F1, true
		}
		return H8, F8, true
	case QueenSideCastle:
		if m.Color == White {
			return A1, D1, true
		}
		return A8, D8, true
	default:
		return ZeroSquare, ZeroSquare, false
	}
}

// EnPassantCapture returns the square of the pawn captured en passant.
func (m Move) EnPassantCapture() (Square, bool) {
	if m.Type != EnPassant {
		return ZeroSquare, false
	}
	if m.Color == White {
		return NewSquare(m.To.File(), Rank5), true
	}
	return NewSquare(m.To.File(), Rank4), true
}

// String renders the move in the bit-exact wire token format of spec §3/§6:
// "rrccRRCC" for a regular/capture move (castling included -- it is just a
// two-square king move), "c1c2XP" for a promotion, and "c1c2sE" for en
// passant.
func (m Move) String() string {
	switch m.Type {
	case Promotion, CapturePromotion:
		letter := m.Promotion.String()
		if m.Color == White {
			letter = upper(letter)
		}
		return fmt.Sprintf("%d%d%sP", m.From.Col(), m.To.Col(), letter)

	case EnPassant:
		s := "b"
		if m.Color == White {
			s = "w"
		}
		return fmt.Sprintf("%d%d%sE", m.From.Col(), m.To.Col(), s)

	default:
		return fmt.Sprintf("%d%d%d%d", m.From.Row(), m.From.Col(), m.To.Row(), m.To.Col())
	}
}

// ParseMove parses a move in the wire token format of spec §3/§6. It
// recovers only the information present in the token itself. A regular
// token yields From and To only; Type, Piece, Capture and Color are left at
// their zero values. A promotion token yields Type Promotion (a capturing
// promotion is not told apart), Piece Pawn, Promotion and Color; an en
// passant token yields Type EnPassant, Piece and Capture Pawn, and Color. A
// caller applying the move to a Position should prefer a generator-produced
// Move when one is available, since the token alone does not carry the
// moving piece kind or capture victim of a regular move.
func ParseMove(str string) (Move, error) {
	runes := []rune(str)
	if len(runes) != 4 {
		return Move{}, fmt.Errorf("invalid move token: %q", str)
	}

	switch runes[3] {
	case 'P':
		c1, ok1 := digit(runes[0])
		c2, ok2 := digit(runes[1])
		promo, ok3 := ParsePiece(runes[2])
		if !ok1 || !ok2 || !ok3 || promo == Pawn || promo == King {
			return Move{}, fmt.Errorf("invalid promotion move token: %q", str)
		}

		color := Black
		if isUpper(runes[2]) {
			color = White
		}

		fromRow, toRow := 6, 7
		if color == White {
			fromRow, toRow = 1, 0
		}
		return Move{
			Type:      Promotion,
			From:      NewSquareFromRowCol(fromRow, c1),
			To:        NewSquareFromRowCol(toRow, c2),
			Piece:     Pawn,
			Promotion: promo,
			Color:     color,
		}, nil

	case 'E':
		c1, ok1 := digit(runes[0])
		c2, ok2 := digit(runes[1])
		if !ok1 || !ok2 {
			return Move{}, fmt.Errorf("invalid en passant move token: %q", str)
		}

		var color Color
		switch runes[2] {
		case 'w':
			color = White
		case 'b':
			color = Black
		default:
			return Move{}, fmt.Errorf("invalid en passant color in move token: %q", str)
		}

		fromRow, toRow := 4, 5
		if color == White {
			fromRow, toRow = 3, 2
		}
		return Move{
			Type:    EnPassant,
			From:    NewSquareFromRowCol(fromRow, c1),
			To:      NewSquareFromRowCol(toRow, c2),
			Piece:   Pawn,
			Capture: Pawn,
			Color:   color,
		}, nil

	default:
		r1, ok1 := digit(runes[0])
		c1, ok2 := digit(runes[1])
		r2, ok3 := digit(runes[2])
		c2, ok4 := digit(runes[3])
		if !ok1 || !ok2 || !ok3 || !ok4 {
			return Move{}, fmt.Errorf("invalid move token: %q", str)
		}
		return Move{
			From: NewSquareFromRowCol(r1, c1),
			To:   NewSquareFromRowCol(r2, c2),
		}, nil
	}
}

func digit(r rune) (int, bool) {
	if r < '0' || r > '7' {
		return 0, false
	}
	return int(r - '0'), true
}

func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

func upper(s string) string {
	r := []rune(s)
	if len(r) == 1 && r[0] >= 'a' && r[0] <= 'z' {
		r[0] -= 'a' - 'A'
	}
	return string(r)
}
