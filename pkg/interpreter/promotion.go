package interpreter

import (
	"context"

	"github.com/bsalha1/Legal-Chessmove-Detector/pkg/board"
	"github.com/seekerror/stdlib/pkg/lang"
)

// enterPromotion is the Promotion Mini-FSM's entry point: a pawn has just
// been placed on its opposite home row. It is invoked after the owning
// PLACE has already ended the turn (which clears pawn_to_promote as part of
// its normal bookkeeping), so the set here is the one that sticks.
func (in *Interpreter) enterPromotion(ctx context.Context, pawn board.PiecePos) {
	in.state.pawnToPromote = lang.Some(pawn)

	sq, _ := pawn.At.Square()
	in.channel.OnPromotionRequired(ctx, sq)
}

// placePromotion completes the mini-FSM: the pawn must be re-placed at its
// own square, and is replaced by the side channel's promotion choice
// (defaulting to Queen if it answers with anything else, matching
// sidechannel.NoopChannel).
func (in *Interpreter) placePromotion(ctx context.Context, sq board.Square, pawn board.PiecePos) {
	pawnSq, _ := pawn.At.Square()
	if sq != pawnSq {
		in.board.Set(sq, board.NoPiece)
		in.addIllegal(ctx, board.IllegalEntry{
			Current:     board.OnSquare(board.NoPiece, sq),
			Destination: pawn,
		})
		return
	}

	choice := in.channel.PromotionChoice(ctx, sq)
	if choice != board.Knight && choice != board.Queen {
		choice = board.Queen
	}

	in.board.Set(sq, board.NewPiece(choice, pawn.Piece.Side))
	in.state.pawnToPromote = lang.Optional[board.PiecePos]{}
	in.endTurn(ctx)
}
