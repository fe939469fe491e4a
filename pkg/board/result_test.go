package board_test

import (
	"testing"

	"github.com/Steven141/ChessProject-sub000/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjudicate(t *testing.T) {
	tests := []struct {
		name     string
		pieces   []board.Placement
		turn     board.Color
		expected board.Result
	}{
		{
			"checkmate favors mover's opponent",
			[]board.Placement{
				{Square: board.G8, Color: board.Black, Piece: board.King},
				{Square: board.F7, Color: board.Black, Piece: board.Pawn},
				{Square: board.G7, Color: board.Black, Piece: board.Pawn},
				{Square: board.H7, Color: board.Black, Piece: board.Pawn},
				{Square: board.A8, Color: board.White, Piece: board.Rook},
				{Square: board.G1, Color: board.White, Piece: board.King},
			},
			board.Black,
			board.WhiteWins,
		},
		{
			"stalemate is a draw",
			[]board.Placement{
				{Square: board.A8, Color: board.Black, Piece: board.King},
				{Square: board.C7, Color: board.White, Piece: board.King},
				{Square: board.B6, Color: board.White, Piece: board.Queen},
			},
			board.Black,
			board.Draw,
		},
		{
			"bare kings is insufficient material",
			[]board.Placement{
				{Square: board.A1, Color: board.White, Piece: board.King},
				{Square: board.H8, Color: board.Black, Piece: board.King},
			},
			board.White,
			board.Draw,
		},
		{
			"ongoing game is undecided",
			[]board.Placement{
				{Square: board.E1, Color: board.White, Piece: board.King},
				{Square: board.E8, Color: board.Black, Piece: board.King},
				{Square: board.D1, Color: board.White, Piece: board.Queen},
			},
			board.White,
			board.Undecided,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := board.NewPosition(tt.pieces, 0, 0, tt.turn)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, board.Adjudicate(pos))
		})
	}
}

func TestResult_String(t *testing.T) {
	assert.Equal(t, "1-0", board.WhiteWins.String())
	assert.Equal(t, "0-1", board.BlackWins.String())
	assert.Equal(t, "1/2-1/2", board.Draw.String())
	assert.Equal(t, "*", board.Undecided.String())
}
