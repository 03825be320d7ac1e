// Package sensor polls a presence-sensor grid and turns its raw bit matrix
// into PICKUP/PLACE edge events for the transition interpreter.
package sensor

import (
	"context"
	"fmt"

	"github.com/bsalha1/Legal-Chessmove-Detector/pkg/board"
	"github.com/seekerror/logw"
)

// Source is the SensorSource contract (spec.md §6): an 8x8 grid of binary
// occupancy, one bit per square, true meaning a piece is present.
type Source interface {
	// Snapshot returns the current 8x8 bit matrix. Row 0, column 0 is a1.
	Snapshot(ctx context.Context) [8][8]bool
}

// EventKind distinguishes a sensor edge.
type EventKind int

const (
	Pickup EventKind = iota
	Place
)

func (k EventKind) String() string {
	if k == Place {
		return "PLACE"
	}
	return "PICKUP"
}

// Event is a single edge-triggered transition.
type Event struct {
	Kind   EventKind
	Square board.Square
}

// BoardState is the minimal read surface the Scanner needs from the board
// model, kept as an interface so Scanner does not have to depend on the
// concrete *board.Board type.
type BoardState interface {
	IsPresent(sq board.Square) bool
}

// Sink receives events discovered by a poll, in scan order.
type Sink interface {
	Pickup(ctx context.Context, sq board.Square)
	Place(ctx context.Context, sq board.Square)
}

// Scanner polls a Source and diffs it against a board model, emitting
// PICKUP/PLACE edges to a Sink. Scan order is column-major outer, row-major
// inner, matching the hardware sweep (spec.md §4.5, §5).
type Scanner struct {
	src   Source
	board BoardState
	sink  Sink
}

// NewScanner constructs a Scanner over src, diffing against board and
// delivering edges to sink.
func NewScanner(src Source, board BoardState, sink Sink) *Scanner {
	return &Scanner{src: src, board: board, sink: sink}
}

// Poll reads one snapshot from the source and emits any PICKUP/PLACE edges
// against the board model. Returns true iff any transition occurred, so
// callers can trigger a display refresh without inspecting state.
func (s *Scanner) Poll(ctx context.Context) bool {
	snapshot := s.src.Snapshot(ctx)

	changed := false
	for col := 0; col < 8; col++ {
		for row := 0; row < 8; row++ {
			sq := board.NewSquare(row, col)
			bit := snapshot[row][col]
			present := s.board.IsPresent(sq)

			switch {
			case bit && !present:
				logw.Debugf(ctx, "sensor: place at %v", sq)
				s.sink.Place(ctx, sq)
				changed = true
			case !bit && present:
				logw.Debugf(ctx, "sensor: pickup at %v", sq)
				s.sink.Pickup(ctx, sq)
				changed = true
			}
		}
	}
	return changed
}

// ValidateStartPositions checks a raw sensor snapshot against the expected
// power-up occupancy (spec.md §6): rows 0, 1, 6, 7 occupied, rows 2-5 empty.
// It returns an error naming the first offending square rather than
// attempting to enumerate every mismatch, since a power-up mismatch almost
// always means a gross wiring or calibration fault the operator must fix
// before the board is trustworthy at all.
func ValidateStartPositions(snapshot [8][8]bool) error {
	for row := 0; row < 8; row++ {
		wantOccupied := row == 0 || row == 1 || row == 6 || row == 7
		for col := 0; col < 8; col++ {
			if snapshot[row][col] != wantOccupied {
				sq := board.NewSquare(row, col)
				if wantOccupied {
					return fmt.Errorf("sensor: expected %v occupied at power-up, sensor reports empty", sq)
				}
				return fmt.Errorf("sensor: expected %v empty at power-up, sensor reports occupied", sq)
			}
		}
	}
	return nil
}
