package board

// MaxLegalMoves is the tight upper bound on candidate destinations any
// single piece can have on an 8x8 board (a queen on a central square of an
// open board). Exceeding it is a programmer error.
const MaxLegalMoves = 27

// SquareList is a fixed-capacity, allocation-free list of squares, used for
// both candidate and legal move enumeration. Push panics on overflow rather
// than growing, matching the teacher's own fixed-size move heap discipline.
type SquareList struct {
	items [MaxLegalMoves]Square
	n     int
}

// Push appends sq. Panics if the list is already at MaxLegalMoves capacity.
func (l *SquareList) Push(sq Square) {
	if l.n >= MaxLegalMoves {
		panic("board: square list overflow")
	}
	l.items[l.n] = sq
	l.n++
}

// Len returns the number of squares currently held.
func (l *SquareList) Len() int {
	return l.n
}

// At returns the i'th square.
func (l *SquareList) At(i int) Square {
	return l.items[i]
}

// Slice returns the held squares as a freshly allocated slice, for callers
// that want to range over them or compare with require.ElementsMatch in
// tests.
func (l *SquareList) Slice() []Square {
	out := make([]Square, l.n)
	copy(out, l.items[:l.n])
	return out
}

// Contains reports whether sq is present in the list.
func (l *SquareList) Contains(sq Square) bool {
	for i := 0; i < l.n; i++ {
		if l.items[i] == sq {
			return true
		}
	}
	return false
}

var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// CandidatePaths returns the raw geometric targets for the piece at from,
// before same-team or blocking filters are applied. Dispatch is an
// exhaustive switch over the closed PieceKind set, never virtual dispatch.
func CandidatePaths(from PiecePos, b *Board) SquareList {
	var out SquareList

	sq, onBoard := from.At.Square()
	if !onBoard {
		return out
	}

	switch from.Piece.Kind {
	case Pawn:
		candidatePawnPaths(&out, from.Piece.Side, sq)
	case Knight:
		candidateOffsetPaths(&out, sq, knightOffsets[:])
	case King:
		candidateOffsetPaths(&out, sq, kingOffsets[:])
	case Rook:
		candidateRayPaths(&out, sq, rookDirs[:])
	case Bishop:
		candidateRayPaths(&out, sq, bishopDirs[:])
	case Queen:
		candidateRayPaths(&out, sq, rookDirs[:])
		candidateRayPaths(&out, sq, bishopDirs[:])
	}
	return out
}

func candidatePawnPaths(out *SquareList, side Side, sq Square) {
	forward := 1
	startRow := 1
	if side == Black {
		forward = -1
		startRow = 6
	}

	if s := NewSquare(sq.Row+forward, sq.Col); s.IsValid() {
		out.Push(s)
	}
	if s := NewSquare(sq.Row+forward, sq.Col-1); s.IsValid() {
		out.Push(s)
	}
	if s := NewSquare(sq.Row+forward, sq.Col+1); s.IsValid() {
		out.Push(s)
	}
	if sq.Row == startRow {
		if s := NewSquare(sq.Row+2*forward, sq.Col); s.IsValid() {
			out.Push(s)
		}
	}
}

func candidateOffsetPaths(out *SquareList, sq Square, offsets [][2]int) {
	for _, o := range offsets {
		if s := NewSquare(sq.Row+o[0], sq.Col+o[1]); s.IsValid() {
			out.Push(s)
		}
	}
}

func candidateRayPaths(out *SquareList, sq Square, dirs [][2]int) {
	for _, d := range dirs {
		for step := 1; ; step++ {
			s := NewSquare(sq.Row+d[0]*step, sq.Col+d[1]*step)
			if !s.IsValid() {
				break
			}
			out.Push(s)
		}
	}
}

// LegalPaths filters CandidatePaths by same-team exclusion, blocking on
// straight and diagonal rays, pawn-diagonal-must-capture, and -- if
// pruneSelfCheck is set -- self-check pruning via the check oracle.
func LegalPaths(from PiecePos, b *Board, pruneSelfCheck bool) SquareList {
	var out SquareList

	sq, onBoard := from.At.Square()
	if !onBoard {
		return out
	}

	candidates := CandidatePaths(from, b)
	for i := 0; i < candidates.Len(); i++ {
		to := candidates.At(i)

		target := b.Get(to)
		if !target.IsEmpty() && target.Side == from.Piece.Side {
			continue // (1) same-team destination
		}

		if isStraight(sq, to) && isBlocked(b, sq, to) {
			continue // (2) straight-move blocking
		}
		if isDiagonal(sq, to) && isBlocked(b, sq, to) {
			continue // (3) diagonal-move blocking
		}
		if from.Piece.Kind == Pawn && isDiagonal(sq, to) && target.IsEmpty() {
			continue // (4) pawn diagonal requires a capture
		}

		if pruneSelfCheck && wouldSelfCheck(from, to, b) {
			continue // (5) self-check pruning
		}

		out.Push(to)
	}
	return out
}

func isStraight(from, to Square) bool {
	return from.Row == to.Row || from.Col == to.Col
}

func isDiagonal(from, to Square) bool {
	dr := to.Row - from.Row
	dc := to.Col - from.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr == dc && dr != 0
}

// isBlocked reports whether any square strictly between from and to is
// occupied. Single-step moves (no intermediate cell) are never blocked by
// this check -- in particular a single-step pawn push is not screened for
// occupancy here.
func isBlocked(b *Board, from, to Square) bool {
	dr := sign(to.Row - from.Row)
	dc := sign(to.Col - from.Col)

	r, c := from.Row+dr, from.Col+dc
	for r != to.Row || c != to.Col {
		if b.IsPresent(NewSquare(r, c)) {
			return true
		}
		r += dr
		c += dc
	}
	return false
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
