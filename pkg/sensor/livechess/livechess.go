// Package livechess adapts a real DGT/LiveChess-protocol physical eBoard,
// via github.com/herohde/livechess-go, into a sensor.Source -- the same
// client class the teacher repo uses to build its own UCI eBoard bridge.
package livechess

import (
	"context"
	"strings"

	"github.com/herohde/livechess-go/pkg/livechess"
	"github.com/seekerror/logw"
)

// Source implements sensor.Source by reading the FEN board strings reported
// on a livechess feed's event channel and deriving presence bits from
// non-blank glyphs. Unlike sim.Source, transitions arrive pushed from the board's own
// event feed; Snapshot simply reports the latest board state received.
type Source struct {
	client livechess.FeedClient
	events <-chan livechess.EBoardEventResponse

	latest [8][8]bool
}

// Connect auto-detects a LiveChess eBoard and opens its event feed.
func Connect(ctx context.Context) (*Source, error) {
	id, err := livechess.AutoDetect(ctx, livechess.DefaultClient)
	if err != nil {
		return nil, err
	}

	client, events, err := livechess.NewFeed(ctx, id)
	if err != nil {
		return nil, err
	}

	s := &Source{client: client, events: events}
	go s.process(ctx)
	return s, nil
}

func (s *Source) process(ctx context.Context) {
	for ev := range s.events {
		logw.Debugf(ctx, "livechess: board=%v san=%v", ev.Board, ev.San)
		s.latest = parseFEN(ev.Board)
	}
}

// Snapshot implements sensor.Source.
func (s *Source) Snapshot(ctx context.Context) [8][8]bool {
	return s.latest
}

// Flip orients the board for the given side, matching the teacher's
// client.Flip(ctx, bool) usage in cmd/livechess-uci.
func (s *Source) Flip(ctx context.Context, flipped bool) error {
	return s.client.Flip(ctx, flipped)
}

// parseFEN derives an 8x8 presence matrix from the piece-placement field of
// a FEN string: any non-digit, non-'/' rune is a piece.
func parseFEN(fen string) [8][8]bool {
	var out [8][8]bool

	placement := strings.SplitN(fen, " ", 2)[0]
	ranks := strings.Split(placement, "/")

	for i, rankStr := range ranks {
		if i >= 8 {
			break
		}
		row := 7 - i // FEN ranks run 8 (top) to 1 (bottom); row 0 is rank 1.

		col := 0
		for _, r := range rankStr {
			if r >= '1' && r <= '8' {
				col += int(r - '0')
				continue
			}
			if col < 8 {
				out[row][col] = true
			}
			col++
		}
	}
	return out
}
