package board_test

import (
	"testing"

	"github.com/Steven141/ChessProject-sub000/pkg/board"
	"github.com/Steven141/ChessProject-sub000/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewZobristTable_DeterministicAcrossSeed(t *testing.T) {
	a := board.NewZobristTable(board.DefaultSeed)
	b := board.NewZobristTable(board.DefaultSeed)

	pos, turn, _, _, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	assert.Equal(t, a.Full(pos, turn), b.Full(pos, turn))
}

func TestZobristTable_MoveMatchesFullRecompute(t *testing.T) {
	z := board.NewZobristTable(board.DefaultSeed)

	pos, turn, _, _, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	for _, m := range pos.PseudoMoves() {
		next, ok := pos.Move(m)
		if !ok {
			continue
		}
		got := z.Move(z.Full(pos, turn), pos, turn, m)
		want := z.Full(next, turn.Opponent())
		assert.Equal(t, want, got, "move %v", m)
	}
}

func TestPosition_HashMatchesFullRecompute(t *testing.T) {
	pos, turn, _, _, err := fen.Decode("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	z := board.NewZobristTable(board.DefaultSeed)
	assert.Equal(t, z.Full(pos, turn), pos.Hash())
}
