package interpreter

import (
	"context"
	"testing"

	"github.com/bsalha1/Legal-Chessmove-Detector/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPawnPushLegal(t *testing.T) {
	ctx := context.Background()
	in := New(ctx)

	in.Pickup(ctx, board.NewSquare(1, 0))
	in.Place(ctx, board.NewSquare(2, 0))

	assert.Equal(t, board.Black, in.Turn())
	assert.True(t, in.Get(board.NewSquare(1, 0)).IsEmpty())
	assert.Equal(t, board.NewPiece(board.Pawn, board.White), in.Get(board.NewSquare(2, 0)))
	assert.Empty(t, in.IllegalSnapshot())
}

func TestPawnPushIllegalThenRecovered(t *testing.T) {
	ctx := context.Background()
	in := New(ctx)

	in.Pickup(ctx, board.NewSquare(1, 0))
	in.Place(ctx, board.NewSquare(4, 0))

	require.Equal(t, board.White, in.Turn(), "turn must not advance while illegal obligations are outstanding")
	require.Len(t, in.IllegalSnapshot(), 1)

	entry := in.IllegalSnapshot()[0]
	dst, ok := entry.Destination.At.Square()
	require.True(t, ok)
	assert.Equal(t, board.NewSquare(1, 0), dst)
	assert.Equal(t, board.NewPiece(board.Pawn, board.White), in.Get(board.NewSquare(4, 0)))

	in.Pickup(ctx, board.NewSquare(4, 0))
	in.Place(ctx, board.NewSquare(1, 0))

	assert.Empty(t, in.IllegalSnapshot())
	assert.Equal(t, board.White, in.Turn(), "recovering an illegal obligation alone never advances the turn")
}

func TestCaptureCompletesTurn(t *testing.T) {
	ctx := context.Background()
	b := board.NewEmptyBoard()
	b.Set(board.NewSquare(0, 4), board.NewPiece(board.King, board.White))
	b.Set(board.NewSquare(7, 4), board.NewPiece(board.King, board.Black))
	b.Set(board.NewSquare(4, 5), board.NewPiece(board.Bishop, board.White))
	b.Set(board.NewSquare(5, 6), board.NewPiece(board.Pawn, board.Black))

	in := New(ctx, WithInitialBoard(b))

	in.Pickup(ctx, board.NewSquare(5, 6)) // victim
	in.Pickup(ctx, board.NewSquare(4, 5)) // killer
	in.Place(ctx, board.NewSquare(5, 6))

	assert.Equal(t, board.Black, in.Turn())
	assert.Equal(t, board.NewPiece(board.Bishop, board.White), in.Get(board.NewSquare(5, 6)))
	assert.True(t, in.Get(board.NewSquare(4, 5)).IsEmpty())
	assert.Empty(t, in.IllegalSnapshot())
}

func TestCastlingKingside(t *testing.T) {
	ctx := context.Background()
	b := board.NewInitialBoard()
	b.Set(board.NewSquare(0, 5), board.NoPiece)
	b.Set(board.NewSquare(0, 6), board.NoPiece)

	in := New(ctx, WithInitialBoard(b))

	in.Pickup(ctx, board.NewSquare(0, 7)) // rook
	in.Pickup(ctx, board.NewSquare(0, 4)) // king
	in.Place(ctx, board.NewSquare(0, 6))  // king destination
	in.Place(ctx, board.NewSquare(0, 5))  // rook destination

	assert.Equal(t, board.NewPiece(board.King, board.White), in.Get(board.NewSquare(0, 6)))
	assert.Equal(t, board.NewPiece(board.Rook, board.White), in.Get(board.NewSquare(0, 5)))
	assert.Equal(t, board.Black, in.Turn())
	assert.Empty(t, in.IllegalSnapshot())
}

func TestSelfCheckPinPreventsMove(t *testing.T) {
	ctx := context.Background()
	b := board.NewEmptyBoard()
	b.Set(board.NewSquare(0, 4), board.NewPiece(board.King, board.White))
	b.Set(board.NewSquare(1, 4), board.NewPiece(board.Bishop, board.White))
	b.Set(board.NewSquare(7, 4), board.NewPiece(board.Rook, board.Black))
	b.Set(board.NewSquare(7, 7), board.NewPiece(board.King, board.Black))

	in := New(ctx, WithInitialBoard(b))

	in.Pickup(ctx, board.NewSquare(1, 4))
	in.Place(ctx, board.NewSquare(2, 5))

	require.Len(t, in.IllegalSnapshot(), 1, "moving the pinned bishop off the file must be rejected")
	assert.Equal(t, board.White, in.Turn())
}

func TestPromotionScenario(t *testing.T) {
	ctx := context.Background()
	b := board.NewEmptyBoard()
	b.Set(board.NewSquare(0, 4), board.NewPiece(board.King, board.White))
	b.Set(board.NewSquare(7, 4), board.NewPiece(board.King, board.Black))
	b.Set(board.NewSquare(6, 3), board.NewPiece(board.Pawn, board.White))

	in := New(ctx, WithInitialBoard(b))

	in.Pickup(ctx, board.NewSquare(6, 3))
	in.Place(ctx, board.NewSquare(7, 3))

	assert.Equal(t, board.Black, in.Turn(), "the placement itself already ended the turn")

	in.Pickup(ctx, board.NewSquare(7, 3))
	in.Place(ctx, board.NewSquare(7, 3))

	assert.Equal(t, board.NewPiece(board.Queen, board.White), in.Get(board.NewSquare(7, 3)))
	assert.Equal(t, board.White, in.Turn(), "promotion completion ends the second turn too")
}

func TestPickupPlaceSameSquareIsNoMove(t *testing.T) {
	ctx := context.Background()
	in := New(ctx)

	before := in.String()
	in.Pickup(ctx, board.NewSquare(1, 0))
	in.Place(ctx, board.NewSquare(1, 0))

	assert.Equal(t, before, in.String())
	assert.Equal(t, board.White, in.Turn())
}

func TestEndTurnClearsPerTurnState(t *testing.T) {
	ctx := context.Background()
	in := New(ctx)

	in.Pickup(ctx, board.NewSquare(1, 0))
	in.Place(ctx, board.NewSquare(2, 0))

	_, lastSet := in.state.lastPickup.V()
	_, victimSet := in.state.victim.V()
	_, kingSet := in.state.expectedKingCastle.V()
	_, rookSet := in.state.expectedRookCastle.V()
	_, promoSet := in.state.pawnToPromote.V()

	assert.False(t, lastSet)
	assert.False(t, victimSet)
	assert.False(t, kingSet)
	assert.False(t, rookSet)
	assert.False(t, promoSet)
	assert.False(t, in.state.commitTurnWhenClean)
}

func TestBadCastlePairRecordsBothObligations(t *testing.T) {
	ctx := context.Background()
	b := board.NewInitialBoard()
	in := New(ctx, WithInitialBoard(b))

	in.Pickup(ctx, board.NewSquare(0, 1)) // knight, not a rook
	in.Pickup(ctx, board.NewSquare(0, 4)) // king

	require.Len(t, in.IllegalSnapshot(), 2, "a same-side double pickup that isn't {king,rook} must still raise obligations for both pieces")
	assert.True(t, in.Get(board.NewSquare(0, 1)).IsEmpty())
	assert.True(t, in.Get(board.NewSquare(0, 4)).IsEmpty())
	assert.Equal(t, board.White, in.Turn())
}

func TestCastlingRejectedWhenKingDestinationIsAttacked(t *testing.T) {
	ctx := context.Background()
	b := board.NewEmptyBoard()
	b.Set(board.NewSquare(0, 4), board.NewPiece(board.King, board.White))
	b.Set(board.NewSquare(0, 7), board.NewPiece(board.Rook, board.White))
	b.Set(board.NewSquare(7, 6), board.NewPiece(board.Rook, board.Black))
	b.Set(board.NewSquare(7, 7), board.NewPiece(board.King, board.Black))

	in := New(ctx, WithInitialBoard(b))

	in.Pickup(ctx, board.NewSquare(0, 7)) // rook
	in.Pickup(ctx, board.NewSquare(0, 4)) // king

	require.Len(t, in.IllegalSnapshot(), 2, "the king's own destination (g1) being attacked must reject the castle")
	assert.Equal(t, board.White, in.Turn())
}

func TestEnemyPickupOverwritesPriorVictim(t *testing.T) {
	ctx := context.Background()
	b := board.NewEmptyBoard()
	b.Set(board.NewSquare(0, 4), board.NewPiece(board.King, board.White))
	b.Set(board.NewSquare(7, 4), board.NewPiece(board.King, board.Black))
	b.Set(board.NewSquare(5, 0), board.NewPiece(board.Pawn, board.Black))
	b.Set(board.NewSquare(5, 1), board.NewPiece(board.Pawn, board.Black))

	in := New(ctx, WithInitialBoard(b))

	in.Pickup(ctx, board.NewSquare(5, 0))
	in.Pickup(ctx, board.NewSquare(5, 1))

	victim, ok := in.state.victim.V()
	require.True(t, ok)
	sq, _ := victim.At.Square()
	assert.Equal(t, board.NewSquare(5, 1), sq, "a second enemy pickup replaces the pending victim")
}
