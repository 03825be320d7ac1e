package interpreter

import (
	"github.com/bsalha1/Legal-Chessmove-Detector/pkg/board"
	"github.com/seekerror/stdlib/pkg/lang"
)

// EventKind records which edge kind was most recently processed.
type EventKind int

const (
	EventPickup EventKind = iota
	EventPlace
)

// state is the InterpreterState of spec.md §3: everything persisted
// between events. Nullable fields use lang.Optional instead of a
// NONE-sentinel PiecePos, so a forgotten check can't silently treat a
// leftover zero value as meaningful.
type state struct {
	turn      board.Side
	lastEvent EventKind

	lastPickup lang.Optional[board.PiecePos]
	victim     lang.Optional[board.PiecePos]

	illegal             board.IllegalList
	commitTurnWhenClean bool

	expectedKingCastle lang.Optional[board.PiecePos]
	expectedRookCastle lang.Optional[board.PiecePos]
	pawnToPromote      lang.Optional[board.PiecePos]

	castle board.CastleState
}

func newState() state {
	return state{turn: board.White}
}
