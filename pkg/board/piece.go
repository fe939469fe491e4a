package board

// Piece represents a chess piece (King, Pawn, etc) with no color. 3 bits.
type Piece uint8

const (
	NoPiece Piece = iota
	Pawn
	Bishop
	Knight
	Rook
	Queen
	King
)

const (
	ZeroPiece Piece = 0
	NumPieces Piece = 7 // includes NoPiece, used as the "all pieces" slot on Position.
)

func ParsePiece(r rune) (Piece, bool) {
	switch r {
	case 'p', 'P':
		return Pawn, true
	case 'b', 'B':
		return Bishop, true
	case 'n', 'N':
		return Knight, true
	case 'r', 'R':
		return Rook, true
	case 'q', 'Q':
		return Queen, true
	case 'k', 'K':
		return King, true
	default:
		return NoPiece, false
	}
}

func (p Piece) IsValid() bool {
	return Pawn <= p && p <= King
}

func (p Piece) String() string {
	switch p {
	case NoPiece:
		return " "
	case Pawn:
		return "p"
	case Bishop:
		return "b"
	case Knight:
		return "n"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return "?"
	}
}

// PromotionPieces lists the pieces a pawn may promote to, in the canonical
// generation order Q, R, B, N used by the move generator and by the wire
// move-token alphabet (spec §3).
var PromotionPieces = []Piece{Queen, Rook, Bishop, Knight}

// KingQueenRookBishopKnight lists the non-pawn, non-NoPiece officer pieces in
// descending nominal value, convenient for attack/capture lookups.
var KingQueenRookBishopKnight = []Piece{King, Queen, Rook, Bishop, Knight}
