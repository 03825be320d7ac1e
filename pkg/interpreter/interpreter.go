// Package interpreter implements the transition interpreter: the turn FSM
// that consumes PICKUP/PLACE edge events from the sensor scanner and
// interprets them into moves, kills, castles and promotions, backed by the
// move-legality engine in pkg/board.
package interpreter

import (
	"context"
	"sync"

	"github.com/bsalha1/Legal-Chessmove-Detector/pkg/board"
	"github.com/bsalha1/Legal-Chessmove-Detector/pkg/sidechannel"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

// Version is stamped on every Interpreter, surfaced by the debug CLI banner.
var Version = build.NewVersion(0, 1, 0)

// Interpreter owns the board model and the InterpreterState, and is the
// single mutable value that replaces the original firmware's global state
// (spec.md §9). It is not re-entrant: the scanner and any display reader
// must go through its mutex-guarded API.
type Interpreter struct {
	mu sync.Mutex

	board   *board.Board
	state   state
	channel sidechannel.Channel
}

// Option configures an Interpreter at construction time.
type Option func(*Interpreter)

// WithSideChannel wires an advisory SideChannel. Defaults to
// sidechannel.NoopChannel if never set.
func WithSideChannel(ch sidechannel.Channel) Option {
	return func(in *Interpreter) {
		in.channel = ch
	}
}

// WithInitialBoard overrides the starting position, for tests that need a
// bespoke layout instead of the standard opening.
func WithInitialBoard(b *board.Board) Option {
	return func(in *Interpreter) {
		in.board = b
	}
}

// New constructs an Interpreter at the standard opening position, WHITE to
// move, with no castling moves made and no outstanding obligations.
func New(ctx context.Context, opts ...Option) *Interpreter {
	in := &Interpreter{
		board:   board.NewInitialBoard(),
		state:   newState(),
		channel: sidechannel.NoopChannel{},
	}
	for _, opt := range opts {
		opt(in)
	}

	logw.Infof(ctx, "interpreter %v initialized; %v to move", Version, in.state.turn)
	return in
}

// Reset reinitializes the board and interpreter state to the standard
// opening, discarding any outstanding illegal obligations. Matches
// spec.md §6's "on power-up, the board is reinitialized" persisted-state
// policy.
func (in *Interpreter) Reset(ctx context.Context) {
	in.mu.Lock()
	defer in.mu.Unlock()

	in.board = board.NewInitialBoard()
	in.state = newState()
	logw.Infof(ctx, "interpreter reset")
}

// Pickup processes a PICKUP(sq) edge: the sensor at sq transitioned from
// occupied to empty.
func (in *Interpreter) Pickup(ctx context.Context, sq board.Square) {
	in.mu.Lock()
	defer in.mu.Unlock()

	piece := in.board.Get(sq)
	logw.Infof(ctx, "PICKUP %v (%v)", sq, piece)
	in.pickup(ctx, sq, piece)
}

// Place processes a PLACE(sq) edge: the sensor at sq transitioned from
// empty to occupied.
func (in *Interpreter) Place(ctx context.Context, sq board.Square) {
	in.mu.Lock()
	defer in.mu.Unlock()

	logw.Infof(ctx, "PLACE %v", sq)
	in.place(ctx, sq)
}

// Get returns the piece currently modeled at sq. Part of the read-only
// board query API for display.
func (in *Interpreter) Get(sq board.Square) board.Piece {
	in.mu.Lock()
	defer in.mu.Unlock()

	return in.board.Get(sq)
}

// Turn returns the side to move.
func (in *Interpreter) Turn() board.Side {
	in.mu.Lock()
	defer in.mu.Unlock()

	return in.state.turn
}

// IllegalSnapshot returns the outstanding reconciliation obligations.
func (in *Interpreter) IllegalSnapshot() []board.IllegalEntry {
	in.mu.Lock()
	defer in.mu.Unlock()

	return in.state.illegal.Snapshot()
}

// String renders the board for debugging.
func (in *Interpreter) String() string {
	in.mu.Lock()
	defer in.mu.Unlock()

	return in.board.String()
}
