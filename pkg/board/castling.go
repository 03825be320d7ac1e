package board

// CastleState tracks the has-moved flags that gate castling: one flag per
// starting rook square (A1, H1, A8, H8) and one per king (White, Black).
// Both start false and are only ever set, never cleared.
type CastleState struct {
	rookMoved [4]bool // index by RookIndex
	kingMoved [2]bool // index by side: 0=White, 1=Black
}

// RookIndex identifies one of the four starting rook squares.
type RookIndex int

const (
	WhiteQueenRook RookIndex = iota // a1
	WhiteKingRook                   // h1
	BlackQueenRook                  // a8
	BlackKingRook                   // h8
)

// RookHomeSquare returns the starting square for a rook index.
func RookHomeSquare(idx RookIndex) Square {
	switch idx {
	case WhiteQueenRook:
		return NewSquare(0, 0)
	case WhiteKingRook:
		return NewSquare(0, 7)
	case BlackQueenRook:
		return NewSquare(7, 0)
	default:
		return NewSquare(7, 7)
	}
}

// RookIndexForSquare maps a rook's home square back to its index. Ok is
// false if sq is not one of the four starting rook squares.
func RookIndexForSquare(sq Square) (RookIndex, bool) {
	switch {
	case sq == NewSquare(0, 0):
		return WhiteQueenRook, true
	case sq == NewSquare(0, 7):
		return WhiteKingRook, true
	case sq == NewSquare(7, 0):
		return BlackQueenRook, true
	case sq == NewSquare(7, 7):
		return BlackKingRook, true
	default:
		return 0, false
	}
}

func sideIndex(s Side) int {
	if s == Black {
		return 1
	}
	return 0
}

// RookMoved reports whether the rook at idx's home square has ever moved
// away from it.
func (c *CastleState) RookMoved(idx RookIndex) bool {
	return c.rookMoved[idx]
}

// KingMoved reports whether side's king has ever moved.
func (c *CastleState) KingMoved(side Side) bool {
	return c.kingMoved[sideIndex(side)]
}

// SetRookMoved marks the rook at idx as having moved.
func (c *CastleState) SetRookMoved(idx RookIndex) {
	c.rookMoved[idx] = true
}

// SetKingMoved marks side's king as having moved.
func (c *CastleState) SetKingMoved(side Side) {
	c.kingMoved[sideIndex(side)] = true
}

// CanCastle reports whether rook and king may castle together: they must
// share the home row for rook's side, neither may have moved, and rook must
// be a genuine starting-square rook. It does not itself check path-clear or
// self-check -- those are enforced by the move generator against the rook
// ray and by the check oracle on each final square.
func (c *CastleState) CanCastle(rook, king PiecePos) bool {
	rookSq, rookOn := rook.At.Square()
	kingSq, kingOn := king.At.Square()
	if !rookOn || !kingOn {
		return false
	}
	if rookSq.Row != kingSq.Row || rookSq.Row != rook.Piece.Side.HomeRow() {
		return false
	}
	if rook.Piece.Kind != Rook || king.Piece.Kind != King {
		return false
	}
	if rook.Piece.Side != king.Piece.Side {
		return false
	}

	idx, ok := RookIndexForSquare(rookSq)
	if !ok {
		return false
	}
	if c.KingMoved(king.Piece.Side) || c.RookMoved(idx) {
		return false
	}
	return true
}

// ExpectedCastlingSquares returns the king and rook destination squares for
// a castle initiated by the rook at rookSq: queenside (column 0) moves the
// king to column 2 and the rook to column 3; kingside (column 7) moves the
// king to column 6 and the rook to column 5. Row matches the rook's home row.
func ExpectedCastlingSquares(rookSq Square) (kingDest, rookDest Square) {
	if rookSq.Col == 0 {
		return NewSquare(rookSq.Row, 2), NewSquare(rookSq.Row, 3)
	}
	return NewSquare(rookSq.Row, 6), NewSquare(rookSq.Row, 5)
}
