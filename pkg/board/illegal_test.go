package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIllegalListAppendAndRemove(t *testing.T) {
	var l IllegalList

	pawn := NewPiece(Pawn, White)
	l.Append(IllegalEntry{Current: OnSquare(pawn, NewSquare(3, 0)), Destination: OnSquare(pawn, NewSquare(1, 0))})
	l.Append(IllegalEntry{Current: OnSquare(pawn, NewSquare(4, 0)), Destination: OnSquare(pawn, NewSquare(1, 0))})

	require.Equal(t, 2, l.Len())

	l.RemoveAt(0)
	require.Equal(t, 1, l.Len())
	assert.Equal(t, NewSquare(4, 0), mustSquare(t, l.At(0).Current))
}

func TestIllegalListFindByCurrentExactMatch(t *testing.T) {
	var l IllegalList

	pawn := NewPiece(Pawn, White)
	rook := NewPiece(Rook, White)
	l.Append(IllegalEntry{Current: OffboardPiece(pawn), Destination: OnSquare(pawn, NewSquare(1, 0))})

	_, ok := l.FindByCurrent(rook, Offboard)
	assert.False(t, ok, "piece identity must match, not just location")

	idx, ok := l.FindByCurrent(pawn, Offboard)
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestIllegalListFindByDestinationSquareIgnoresIdentity(t *testing.T) {
	var l IllegalList

	pawn := NewPiece(Pawn, White)
	l.Append(IllegalEntry{Current: OffboardPiece(pawn), Destination: OnSquare(pawn, NewSquare(1, 0))})

	idx, ok := l.FindByDestinationSquare(NewSquare(1, 0))
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestIllegalListOverflowPanics(t *testing.T) {
	var l IllegalList
	pawn := NewPiece(Pawn, White)

	assert.Panics(t, func() {
		for i := 0; i <= MaxIllegalEntries; i++ {
			l.Append(IllegalEntry{Current: OnSquare(pawn, NewSquare(0, 0)), Destination: OnSquare(pawn, NewSquare(0, 0))})
		}
	})
}

func mustSquare(t *testing.T, p PiecePos) Square {
	t.Helper()
	sq, ok := p.At.Square()
	require.True(t, ok)
	return sq
}
