package board

// wouldSelfCheck decides whether moving the piece at from to the square to
// would leave that piece's own side's king attacked. It operates on a
// scratch clone of the board that is discarded on return -- not a separate
// mock object -- so the caller's board is never observed mutated.
func wouldSelfCheck(from PiecePos, to Square, b *Board) bool {
	fromSq, onBoard := from.At.Square()
	if !onBoard {
		return false
	}

	scratch := b.Clone()
	scratch.Set(fromSq, NoPiece)
	scratch.Set(to, from.Piece)

	king, ok := scratch.FindKing(from.Piece.Side)
	if !ok {
		return false
	}

	enemy := from.Piece.Side.Opponent()
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := scratch.Get(NewSquare(row, col))
			if p.IsEmpty() || p.Side != enemy {
				continue
			}

			pos := OnSquare(p, NewSquare(row, col))
			targets := LegalPaths(pos, scratch, false)
			if targets.Contains(king) {
				return true
			}
		}
	}
	return false
}

// WouldSelfCheck is the exported form of wouldSelfCheck, used directly by
// the castling rules to vet each waypoint independently of LegalPaths.
func WouldSelfCheck(from PiecePos, to Square, b *Board) bool {
	return wouldSelfCheck(from, to, b)
}
