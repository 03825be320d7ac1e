package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanCastleRequiresUnmovedFlags(t *testing.T) {
	var cs CastleState

	rook := OnSquare(NewPiece(Rook, White), NewSquare(0, 7))
	king := OnSquare(NewPiece(King, White), NewSquare(0, 4))

	require.True(t, cs.CanCastle(rook, king))

	cs.SetRookMoved(WhiteKingRook)
	assert.False(t, cs.CanCastle(rook, king))
}

func TestCanCastleRequiresKingUnmoved(t *testing.T) {
	var cs CastleState
	cs.SetKingMoved(White)

	rook := OnSquare(NewPiece(Rook, White), NewSquare(0, 0))
	king := OnSquare(NewPiece(King, White), NewSquare(0, 4))
	assert.False(t, cs.CanCastle(rook, king))
}

func TestExpectedCastlingSquares(t *testing.T) {
	kingDest, rookDest := ExpectedCastlingSquares(NewSquare(0, 7))
	assert.Equal(t, NewSquare(0, 6), kingDest)
	assert.Equal(t, NewSquare(0, 5), rookDest)

	kingDest, rookDest = ExpectedCastlingSquares(NewSquare(7, 0))
	assert.Equal(t, NewSquare(7, 2), kingDest)
	assert.Equal(t, NewSquare(7, 3), rookDest)
}

func TestRookIndexForSquare(t *testing.T) {
	idx, ok := RookIndexForSquare(NewSquare(0, 0))
	require.True(t, ok)
	assert.Equal(t, WhiteQueenRook, idx)

	_, ok = RookIndexForSquare(NewSquare(3, 3))
	assert.False(t, ok)
}
