package board

// MaxIllegalEntries is the hard cap on outstanding reconciliation
// obligations. Exceeding it is a programmer error, not a runtime-recoverable
// condition.
const MaxIllegalEntries = 32

// IllegalEntry is a pending reconciliation obligation: current is where the
// piece physically is (or Offboard if it has been lifted and not yet
// placed), destination is where it must end up to restore legality (or
// Offboard if it must leave the board entirely).
type IllegalEntry struct {
	Current     PiecePos
	Destination PiecePos
}

func (e IllegalEntry) String() string {
	return e.Current.String() + " -> " + e.Destination.String()
}

// IllegalList is a fixed-capacity, ordered list of outstanding illegal
// entries. Append panics on overflow rather than growing, matching
// spec.md's "capacity overflow ... programmer error" disposition.
type IllegalList struct {
	items [MaxIllegalEntries]IllegalEntry
	n     int
}

// Append adds e to the end of the list. Panics if already at capacity.
func (l *IllegalList) Append(e IllegalEntry) {
	if l.n >= MaxIllegalEntries {
		panic("board: illegal list overflow")
	}
	l.items[l.n] = e
	l.n++
}

// Len returns the number of outstanding entries.
func (l *IllegalList) Len() int {
	return l.n
}

// At returns the i'th entry.
func (l *IllegalList) At(i int) IllegalEntry {
	return l.items[i]
}

// RemoveAt removes the i'th entry, preserving the order of the rest.
func (l *IllegalList) RemoveAt(i int) {
	copy(l.items[i:l.n-1], l.items[i+1:l.n])
	l.n--
}

// FindByCurrent returns the index of the first entry whose Current matches
// piece and loc exactly (piece identity and location both), used by PICKUP
// reconciliation. Ok is false if none matches.
func (l *IllegalList) FindByCurrent(piece Piece, loc Location) (int, bool) {
	for i := 0; i < l.n; i++ {
		c := l.items[i].Current
		if c.Piece == piece && c.At == loc {
			return i, true
		}
	}
	return 0, false
}

// FindByDestinationSquare returns the index of the first entry whose
// Destination sits on sq, ignoring piece identity -- used by PLACE
// reconciliation, which only observes square-level presence from the
// sensor, never piece identity.
func (l *IllegalList) FindByDestinationSquare(sq Square) (int, bool) {
	for i := 0; i < l.n; i++ {
		if dsq, onBoard := l.items[i].Destination.At.Square(); onBoard && dsq == sq {
			return i, true
		}
	}
	return 0, false
}

// Snapshot returns a copy of the outstanding entries, for the read-only
// illegal_snapshot() query API.
func (l *IllegalList) Snapshot() []IllegalEntry {
	out := make([]IllegalEntry, l.n)
	copy(out, l.items[:l.n])
	return out
}
