package interpreter

import (
	"context"

	"github.com/bsalha1/Legal-Chessmove-Detector/pkg/board"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

// pickup implements the PICKUP(sq) branch of spec.md §4.6. The priority
// order below is the literal branch order: the first matching branch wins
// and the rest are never consulted for this event.
func (in *Interpreter) pickup(ctx context.Context, sq board.Square, piece board.Piece) {
	in.board.Set(sq, board.NoPiece)

	defer func() {
		in.state.lastPickup = lang.Some(board.OnSquare(piece, sq))
		in.state.lastEvent = EventPickup
	}()

	if in.state.illegal.Len() > 0 {
		in.pickupIllegal(ctx, piece, sq)
		return
	}

	if piece.Side != in.state.turn {
		// Enemy pickup always wins here, even over a capture already in
		// progress: a second enemy piece lifted simply replaces the
		// pending victim (see DESIGN.md).
		in.state.victim = lang.Some(board.OnSquare(piece, sq))
		return
	}

	if victim, ok := in.state.victim.V(); ok {
		in.pickupCaptureInProgress(ctx, piece, sq, victim)
		return
	}

	if promo, ok := in.state.pawnToPromote.V(); ok {
		in.pickupDuringPromotion(ctx, piece, sq, promo)
		return
	}

	if in.state.lastEvent == EventPickup {
		if last, ok := in.state.lastPickup.V(); ok && last.Piece.Side == piece.Side {
			in.pickupCastlingAttempt(ctx, last, board.OnSquare(piece, sq))
			return
		}
	}

	// Plain pickup: piece.Side == in.state.turn is already guaranteed by the
	// enemy-pickup check above, so there is nothing left to validate here.
}

func isCastlingPair(a, b board.Piece) bool {
	return (a.Kind == board.King && b.Kind == board.Rook) || (a.Kind == board.Rook && b.Kind == board.King)
}

// pickupIllegal handles a PICKUP while reconciliation obligations are
// outstanding: a matching obligation is resolved (or kept, if it still owes
// a placement), otherwise a fresh "must return" obligation is recorded.
func (in *Interpreter) pickupIllegal(ctx context.Context, piece board.Piece, sq board.Square) {
	loc := board.OnBoard(sq)
	if idx, ok := in.state.illegal.FindByCurrent(piece, loc); ok {
		entry := in.state.illegal.At(idx)
		if entry.Destination.At.IsOffboard() {
			in.removeIllegal(ctx, idx)
			in.maybeEndTurnIfClean(ctx)
		}
		// else: the obligation survives until the piece is placed correctly.
		return
	}

	in.addIllegal(ctx, board.IllegalEntry{
		Current:     board.OffboardPiece(piece),
		Destination: board.OnSquare(piece, sq),
	})
}

// pickupCaptureInProgress validates that the newly lifted piece can legally
// reach the pending victim's square, temporarily restoring the victim on
// the board so diagonal-pawn-capture and other occupancy rules see it.
func (in *Interpreter) pickupCaptureInProgress(ctx context.Context, piece board.Piece, sq board.Square, victim board.PiecePos) {
	victimSq, _ := victim.At.Square()

	in.board.Set(victimSq, victim.Piece)
	ok := board.LegalPaths(board.OnSquare(piece, sq), in.board, true).Contains(victimSq)
	in.board.Set(victimSq, board.NoPiece)

	if ok {
		return // validation passed; wait for the completing PLACE.
	}

	logw.Infof(ctx, "capture %v->%v is illegal; both pieces flagged offboard", sq, victimSq)
	in.addIllegal(ctx, board.IllegalEntry{Current: board.OffboardPiece(victim.Piece), Destination: victim})
	in.addIllegal(ctx, board.IllegalEntry{Current: board.OffboardPiece(piece), Destination: board.OnSquare(piece, sq)})
	in.state.victim = lang.Optional[board.PiecePos]{}
}

// pickupDuringPromotion allows only the pawn awaiting replacement to be
// lifted; any other pickup becomes a return-it obligation.
func (in *Interpreter) pickupDuringPromotion(ctx context.Context, piece board.Piece, sq board.Square, pawn board.PiecePos) {
	pawnSq, _ := pawn.At.Square()
	if pawnSq == sq && pawn.Piece == piece {
		return
	}
	in.addIllegal(ctx, board.IllegalEntry{
		Current:     board.OffboardPiece(piece),
		Destination: board.OnSquare(piece, sq),
	})
}

// pickupCastlingAttempt vets a same-side double pickup against can_castle
// and the two final squares for self-check. A pair that isn't {king,rook}
// is itself a failure mode (spec.md §4.4/§7 "bad castle pair"), not a
// reason to skip the obligation: both pieces become offboard-illegal
// obligations just like any other rejected castling attempt, matching the
// original firmware's HandlePickupCastling, which enters unconditionally on
// any same-side double-pickup and only checks piece kinds once inside.
func (in *Interpreter) pickupCastlingAttempt(ctx context.Context, first, second board.PiecePos) {
	if !isCastlingPair(first.Piece, second.Piece) {
		logw.Infof(ctx, "pickup pair %v/%v is not a king+rook pair", first, second)
		in.addIllegal(ctx, board.IllegalEntry{Current: board.OffboardPiece(first.Piece), Destination: first})
		in.addIllegal(ctx, board.IllegalEntry{Current: board.OffboardPiece(second.Piece), Destination: second})
		return
	}

	king, rook := first, second
	if king.Piece.Kind != board.King {
		king, rook = rook, king
	}
	rookSq, _ := rook.At.Square()

	ok := in.state.castle.CanCastle(rook, king)
	kingDest, rookDest := board.ExpectedCastlingSquares(rookSq)
	if ok && (board.WouldSelfCheck(king, kingDest, in.board) || board.WouldSelfCheck(rook, rookDest, in.board)) {
		ok = false
	}

	if !ok {
		logw.Infof(ctx, "castling attempt rejected for %v/%v", king, rook)
		in.addIllegal(ctx, board.IllegalEntry{Current: board.OffboardPiece(king.Piece), Destination: king})
		in.addIllegal(ctx, board.IllegalEntry{Current: board.OffboardPiece(rook.Piece), Destination: rook})
		return
	}

	in.state.expectedKingCastle = lang.Some(board.OnSquare(king.Piece, kingDest))
	in.state.expectedRookCastle = lang.Some(board.OnSquare(rook.Piece, rookDest))
}
