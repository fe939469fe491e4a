package board_test

import (
	"testing"

	"github.com/Steven141/ChessProject-sub000/pkg/board"
	"github.com/Steven141/ChessProject-sub000/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Perft leaf counts for a handful of well-known reference positions
// (https://www.chessprogramming.org/Perft_Results), kept to depths shallow
// enough to run quickly while still exercising castling, promotion, pins and
// en passant.
func TestPerft(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		depth    int
		expected int64
	}{
		{"start/1", fen.Initial, 1, 20},
		{"start/2", fen.Initial, 2, 400},
		{"start/3", fen.Initial, 3, 8902},
		{"start/4", fen.Initial, 4, 197281},
		{"kiwipete/1", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 1, 48},
		{"kiwipete/2", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 2, 2039},
		{"kiwipete/3", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 3, 97862},
		{"endgame-pins/1", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 1, 14},
		{"endgame-pins/2", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 2, 191},
		{"endgame-pins/3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 3, 2812},
		{"promotions/1", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 1, 6},
		{"promotions/2", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 2, 264},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, _, _, _, err := fen.Decode(tt.fen)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, board.Perft(pos, tt.depth))
		})
	}
}

// PerftDivide's per-root-move counts must sum to the same total as Perft.
func TestPerftDivide_SumsToTotal(t *testing.T) {
	pos, _, _, _, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	total, divide := board.PerftDivide(pos, 3)

	var sum int64
	for _, n := range divide {
		sum += n
	}
	assert.Equal(t, total, sum)
	assert.Equal(t, board.Perft(pos, 3), total)
	assert.Len(t, divide, 20) // 20 legal root moves from the starting position.
}

// PerftVerifyHash must agree with Perft's leaf count while also asserting
// the incrementally maintained Zobrist hash never diverges from a
// from-scratch recomputation (spec invariant I2/I3).
func TestPerftVerifyHash(t *testing.T) {
	tests := []struct {
		fen   string
		depth int
	}{
		{fen.Initial, 3},
		{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 2},
		{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 3},
		{"8/8/1k6/2b5/2pP4/8/5K2/8 b - d3 0 1", 2},
	}

	for _, tt := range tests {
		pos, _, _, _, err := fen.Decode(tt.fen)
		require.NoError(t, err)

		count, err := board.PerftVerifyHash(pos, tt.depth)
		require.NoError(t, err)
		assert.Equal(t, board.Perft(pos, tt.depth), count)
	}
}
