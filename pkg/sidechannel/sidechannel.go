// Package sidechannel is the advisory output/input contract between the
// transition interpreter and the hardware collaborators it does not own:
// the clock, the audio cues, and the promotion-selection buttons.
package sidechannel

import (
	"context"

	"github.com/bsalha1/Legal-Chessmove-Detector/pkg/board"
)

// Channel is the SideChannel contract (spec.md §6). All methods are
// advisory: the interpreter never blocks on them beyond PromotionChoice,
// and a caller that does not wire one gets NoopChannel's defaults.
type Channel interface {
	// OnPromotionRequired fires when a pawn reaches its opposite home row
	// and the interpreter is about to enter promotion mode.
	OnPromotionRequired(ctx context.Context, sq board.Square)

	// PromotionChoice is consulted when the promotion-replacement PLACE
	// fires. Must return Knight or Queen.
	PromotionChoice(ctx context.Context, sq board.Square) board.PieceKind

	// OnTurnChanged fires whenever the interpreter flips the side to move.
	OnTurnChanged(ctx context.Context, turn board.Side)

	// OnIllegalState fires whenever the outstanding illegal list changes,
	// for UI/audio feedback.
	OnIllegalState(ctx context.Context, entries []board.IllegalEntry)
}

// NoopChannel is the default Channel: every advisory callback is a no-op,
// and PromotionChoice always returns Queen, matching spec.md's stated
// default policy if no choice input is wired.
type NoopChannel struct{}

var _ Channel = NoopChannel{}

func (NoopChannel) OnPromotionRequired(context.Context, board.Square) {}

func (NoopChannel) PromotionChoice(context.Context, board.Square) board.PieceKind {
	return board.Queen
}

func (NoopChannel) OnTurnChanged(context.Context, board.Side) {}

func (NoopChannel) OnIllegalState(context.Context, []board.IllegalEntry) {}
