package search_test

import (
	"context"
	"testing"

	"github.com/Steven141/ChessProject-sub000/pkg/board"
	"github.com/Steven141/ChessProject-sub000/pkg/board/fen"
	"github.com/Steven141/ChessProject-sub000/pkg/eval"
	"github.com/Steven141/ChessProject-sub000/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecode(t *testing.T, s string) *board.Position {
	t.Helper()
	pos, _, _, _, err := fen.Decode(s)
	require.NoError(t, err)
	return pos
}

func TestSearch_FindsMateInTwo(t *testing.T) {
	// A standard mate-in-2 position: 1.Qg7#-style back rank theme.
	pos := mustDecode(t, "6k1/5ppp/8/8/8/8/5PPP/3R2K1 w - - 0 1")

	tt := search.NewTranspositionTable(context.Background(), 1<<20)
	pv, err := search.Search(context.Background(), pos, eval.Standard{}, tt, search.Options{DepthLimit: 5}, nil)
	require.NoError(t, err)

	assert.True(t, pv.Score.IsMate(), "expected a mate score, got %v", pv.Score)
	assert.GreaterOrEqual(t, pv.Score, board.Mate-board.Score(4))
	assert.GreaterOrEqual(t, len(pv.Moves), 3)
}

func TestSearch_SingleLegalMoveHasPVLengthOne(t *testing.T) {
	// Black king on a8, in check from the rook on a1, has exactly one legal
	// move (b8): a7 is covered by the rook and b7 by the white king.
	pos := mustDecode(t, "k7/8/2K5/8/8/8/8/R7 b - - 0 1")

	tt := search.NewTranspositionTable(context.Background(), 1<<20)
	pv, err := search.Search(context.Background(), pos, eval.Standard{}, tt, search.Options{DepthLimit: 3}, nil)
	require.NoError(t, err)
	require.Len(t, pv.Moves, 1)
	assert.Equal(t, board.B8, pv.Moves[0].To)
}

func TestSearch_StalemateScoresDraw(t *testing.T) {
	// Classic stalemate: black king a8, no legal moves, not in check.
	pos := mustDecode(t, "k7/2K5/1Q6/8/8/8/8/8 b - - 0 1")

	tt := search.NewTranspositionTable(context.Background(), 1<<20)
	pv, err := search.Search(context.Background(), pos, eval.Standard{}, tt, search.Options{DepthLimit: 2}, nil)
	require.NoError(t, err)
	assert.Equal(t, board.DrawScore, pv.Score)
	assert.Empty(t, pv.Moves)
}

func TestSearch_RootInSeededHistoryIsStillSearched(t *testing.T) {
	pos := mustDecode(t, fen.Initial)
	hash := pos.Hash()

	tt := search.NewTranspositionTable(context.Background(), 1<<20)
	// Seed history with the current position hash twice more, simulating a
	// game that has already visited this exact position twice before. The
	// repetition check applies only below the root, so the root itself is
	// still searched and yields a principal variation.
	history := []board.ZobristHash{hash, hash}

	pv, err := search.Search(context.Background(), pos, eval.Standard{}, tt, search.Options{DepthLimit: 2}, history)
	require.NoError(t, err)
	assert.NotNil(t, pv.Moves)
}

func TestTranspositionTable_ReadWrite(t *testing.T) {
	tt := search.NewTranspositionTable(context.Background(), 1<<16)
	pos := mustDecode(t, fen.Initial)

	_, _, _, _, ok := tt.Read(pos.Hash())
	assert.False(t, ok)

	m := board.Move{From: board.E2, To: board.E4}
	tt.Write(pos.Hash(), search.ExactBound, 4, 25, m)

	bound, depth, score, move, ok := tt.Read(pos.Hash())
	require.True(t, ok)
	assert.Equal(t, search.ExactBound, bound)
	assert.Equal(t, 4, depth)
	assert.Equal(t, board.Score(25), score)
	assert.True(t, move.Equals(m))
}

func TestTranspositionTable_DeeperWriteWins(t *testing.T) {
	tt := search.NewTranspositionTable(context.Background(), 1<<16)
	pos := mustDecode(t, fen.Initial)

	m1 := board.Move{From: board.E2, To: board.E4}
	m2 := board.Move{From: board.D2, To: board.D4}

	tt.Write(pos.Hash(), search.ExactBound, 8, 10, m1)
	tt.Write(pos.Hash(), search.ExactBound, 2, 99, m2)

	_, depth, score, move, ok := tt.Read(pos.Hash())
	require.True(t, ok)
	assert.Equal(t, 8, depth)
	assert.Equal(t, board.Score(10), score)
	assert.True(t, move.Equals(m1))
}

func TestNoTranspositionTable_NeverHits(t *testing.T) {
	tt := search.NoTranspositionTable{}
	pos := mustDecode(t, fen.Initial)

	tt.Write(pos.Hash(), search.ExactBound, 4, 25, board.Move{From: board.E2, To: board.E4})
	_, _, _, _, ok := tt.Read(pos.Hash())
	assert.False(t, ok)
}
