package interpreter

import (
	"context"

	"github.com/bsalha1/Legal-Chessmove-Detector/pkg/board"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

// place implements the PLACE(sq) branch of spec.md §4.6.
func (in *Interpreter) place(ctx context.Context, sq board.Square) {
	defer func() {
		in.state.lastEvent = EventPlace
	}()

	if in.state.illegal.Len() > 0 {
		in.placeIllegal(ctx, sq)
		return
	}

	// Promotion mode is consulted before the no-move branch: lifting the pawn
	// and setting it back down on its own square is what completes it.
	if promo, ok := in.state.pawnToPromote.V(); ok {
		in.placePromotion(ctx, sq, promo)
		return
	}

	if last, ok := in.state.lastPickup.V(); ok {
		if lastSq, onBoard := last.At.Square(); onBoard && lastSq == sq {
			in.board.Set(sq, last.Piece) // no-move: restore, turn does not advance
			return
		}
	}

	if victim, ok := in.state.victim.V(); ok {
		in.placeCaptureCompletion(ctx, sq, victim)
		return
	}

	_, kingSet := in.state.expectedKingCastle.V()
	_, rookSet := in.state.expectedRookCastle.V()
	if kingSet || rookSet {
		in.placeCastling(ctx, sq)
		return
	}

	in.placePlain(ctx, sq)
}

// placeIllegal either discharges a matching destination obligation or opens
// a new "must leave the board" obligation for the placed piece, whose
// identity the sensor cannot report.
func (in *Interpreter) placeIllegal(ctx context.Context, sq board.Square) {
	if idx, ok := in.state.illegal.FindByDestinationSquare(sq); ok {
		entry := in.state.illegal.At(idx)
		in.board.Set(sq, entry.Destination.Piece)
		in.removeIllegal(ctx, idx)
		in.maybeEndTurnIfClean(ctx)
		return
	}

	in.board.Set(sq, board.NoPiece)
	in.addIllegal(ctx, board.IllegalEntry{
		Current:     board.OnSquare(board.NoPiece, sq),
		Destination: board.OffboardPiece(board.NoPiece),
	})
}

// placeCaptureCompletion lands the killer: on the victim's own square the
// capture completes and the turn ends; anywhere else the killer is
// installed where placed but owes a move onto the victim's square, and the
// turn is deferred (not aborted) until that is discharged.
func (in *Interpreter) placeCaptureCompletion(ctx context.Context, sq board.Square, victim board.PiecePos) {
	killer, _ := in.state.lastPickup.V()
	victimSq, _ := victim.At.Square()

	in.board.Set(sq, killer.Piece)
	in.state.victim = lang.Optional[board.PiecePos]{}

	if sq == victimSq {
		in.endTurn(ctx)
		return
	}

	logw.Infof(ctx, "killer misplaced at %v, owes move to %v", sq, victimSq)
	in.addIllegal(ctx, board.IllegalEntry{
		Current:     board.OnSquare(killer.Piece, sq),
		Destination: board.OnSquare(killer.Piece, victimSq),
	})
	in.state.commitTurnWhenClean = true
}

// placeCastling installs the king or rook at its expected square. The
// original firmware checks the two expectations with independent, not
// else-if-chained, ifs -- which also re-overwrites a square that the sibling
// branch had just correctly filled whenever that square isn't also the
// *other* piece's destination. That would corrupt a legitimately completed
// castle (see DESIGN.md), so a match is resolved before the mismatch
// fallback runs; a placement matching neither expectation still raises both
// obligations, preserving the original's double-obligation behavior for the
// genuinely-wrong-square case.
func (in *Interpreter) placeCastling(ctx context.Context, sq board.Square) {
	kingExp, kingSet := in.state.expectedKingCastle.V()
	rookExp, rookSet := in.state.expectedRookCastle.V()

	matched := false
	if kingSet {
		if kingSq, _ := kingExp.At.Square(); kingSq == sq {
			in.board.Set(sq, kingExp.Piece)
			in.state.expectedKingCastle = lang.Optional[board.PiecePos]{}
			matched = true
		}
	}
	if !matched && rookSet {
		if rookSq, _ := rookExp.At.Square(); rookSq == sq {
			in.board.Set(sq, rookExp.Piece)
			in.state.expectedRookCastle = lang.Optional[board.PiecePos]{}
			matched = true
		}
	}

	if !matched {
		in.board.Set(sq, board.NoPiece)
		if kingSet {
			in.addIllegal(ctx, board.IllegalEntry{Current: board.OnSquare(board.NoPiece, sq), Destination: kingExp})
		}
		if rookSet {
			in.addIllegal(ctx, board.IllegalEntry{Current: board.OnSquare(board.NoPiece, sq), Destination: rookExp})
		}
	}

	_, kingStillSet := in.state.expectedKingCastle.V()
	_, rookStillSet := in.state.expectedRookCastle.V()
	if !kingStillSet && !rookStillSet {
		in.endTurn(ctx)
	}
}

// placePlain validates against legal_paths with self-check pruning; on
// success it installs and ends the turn, then runs the promotion check.
func (in *Interpreter) placePlain(ctx context.Context, sq board.Square) {
	last, ok := in.state.lastPickup.V()
	if !ok {
		// No context to recover the piece identity. Reached when a piece is
		// placed with no pickup since the last turn ended and no obligations
		// outstanding: the square stays empty in the model and no obligation
		// is recorded.
		in.board.Set(sq, board.NoPiece)
		return
	}

	if !board.LegalPaths(last, in.board, true).Contains(sq) {
		in.board.Set(sq, last.Piece)
		in.addIllegal(ctx, board.IllegalEntry{
			Current:     board.OnSquare(last.Piece, sq),
			Destination: last,
		})
		return
	}

	in.board.Set(sq, last.Piece)
	in.endTurn(ctx)

	if last.Piece.Kind == board.Pawn && sq.Row == last.Piece.Side.Opponent().HomeRow() {
		in.enterPromotion(ctx, board.OnSquare(last.Piece, sq))
	}
}

// addIllegal records a new reconciliation obligation and notifies the side
// channel.
func (in *Interpreter) addIllegal(ctx context.Context, e board.IllegalEntry) {
	in.state.illegal.Append(e)
	logw.Infof(ctx, "illegal obligation added: %v", e)
	in.channel.OnIllegalState(ctx, in.state.illegal.Snapshot())
}

// removeIllegal discharges the i'th obligation and notifies the side
// channel.
func (in *Interpreter) removeIllegal(ctx context.Context, i int) {
	in.state.illegal.RemoveAt(i)
	in.channel.OnIllegalState(ctx, in.state.illegal.Snapshot())
}

func (in *Interpreter) maybeEndTurnIfClean(ctx context.Context) {
	if in.state.illegal.Len() == 0 && in.state.commitTurnWhenClean {
		in.endTurn(ctx)
	}
}

// endTurn runs the end-of-turn bookkeeping of spec.md §4.6: update castling
// flags, clear commit_turn_when_clean, flip turn. The per-turn context
// fields (last_pickup, victim, expected_*_castle, pawn_to_promote) are also
// cleared here, per the invariant in spec.md §8 that all of them read NONE
// immediately after end_turn().
func (in *Interpreter) endTurn(ctx context.Context) {
	in.updateCastleFlags()

	in.state.commitTurnWhenClean = false
	in.state.lastPickup = lang.Optional[board.PiecePos]{}
	in.state.victim = lang.Optional[board.PiecePos]{}
	in.state.expectedKingCastle = lang.Optional[board.PiecePos]{}
	in.state.expectedRookCastle = lang.Optional[board.PiecePos]{}
	in.state.pawnToPromote = lang.Optional[board.PiecePos]{}

	in.state.turn = in.state.turn.Opponent()
	logw.Infof(ctx, "turn ended; %v to move", in.state.turn)
	in.channel.OnTurnChanged(ctx, in.state.turn)
}

func (in *Interpreter) updateCastleFlags() {
	for _, idx := range []board.RookIndex{board.WhiteQueenRook, board.WhiteKingRook, board.BlackQueenRook, board.BlackKingRook} {
		sq := board.RookHomeSquare(idx)
		if in.board.Get(sq) != rookPieceFor(idx) {
			in.state.castle.SetRookMoved(idx)
		}
	}

	if in.board.Get(board.NewSquare(0, 4)) != board.NewPiece(board.King, board.White) {
		in.state.castle.SetKingMoved(board.White)
	}
	if in.board.Get(board.NewSquare(7, 4)) != board.NewPiece(board.King, board.Black) {
		in.state.castle.SetKingMoved(board.Black)
	}
}

func rookPieceFor(idx board.RookIndex) board.Piece {
	side := board.White
	if idx == board.BlackQueenRook || idx == board.BlackKingRook {
		side = board.Black
	}
	return board.NewPiece(board.Rook, side)
}
