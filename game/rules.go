package game

// validJumpDistance accepts a travel distance of one (plain step) or two
// (jump) cells along an axis.
func validJumpDistance(from, to int) bool {
	d := to - from
	if d < 0 {
		d = -d
	}
	return d == 1 || d == 2
}

// shouldCrown reports whether a piece landing on toY reaches its crowning
// rank: black pieces crown at y=0, white pieces at y=7.
func shouldCrown(p Piece, toY int) bool {
	return (toY == 0 && p.IsBlack()) || (toY == BoardHeight-1 && p.IsWhite())
}

// IsValidMove reports whether relocating the piece at (fromX, fromY) to
// (toX, toY) is legal: the y travel distance is 1 or 2, the moving piece
// belongs to the turn owner, and the destination cell is empty. The x
// travel distance is not constrained. Coordinates outside the board are a
// precondition violation and panic via the board reads.
func (gs *GameState) IsValidMove(fromX, fromY, toX, toY int) bool {
	mover := gs.Board.GetPiece(fromX, fromY)
	target := gs.Board.GetPiece(toX, toY)

	return validJumpDistance(fromY, toY) &&
		gs.IsPlayersTurn(mover) &&
		target == Empty
}

// Move validates and applies a move. An illegal move returns false and
// changes nothing; a legal move relocates the piece, hands the turn to
// the other color, crowns on the back rank and emits notifications.
func (gs *GameState) Move(fromX, fromY, toX, toY int) bool {
	if !gs.IsValidMove(fromX, fromY, toX, toY) {
		return false
	}
	gs.doMove(fromX, fromY, toX, toY)
	return true
}

// PlayMove is Move taking the wire-level Move value.
func (gs *GameState) PlayMove(m Move) bool {
	return gs.Move(m.FromX, m.FromY, m.ToX, m.ToY)
}

// doMove applies an already validated move. The turn toggles before the
// board is touched; there is no rollback once execution starts.
func (gs *GameState) doMove(fromX, fromY, toX, toY int) {
	piece := gs.Board.GetPiece(fromX, fromY)

	gs.ToggleTurnOwner()
	gs.Board.SetPiece(toX, toY, piece)
	gs.Board.SetPiece(fromX, fromY, Empty)

	if shouldCrown(piece, toY) {
		crowned := gs.Board.GetPiece(toX, toY).WithCrown()
		gs.Board.SetPiece(toX, toY, crowned)
		gs.notify().PieceCrowned(toX, toY)
	}

	gs.notify().PieceMoved(fromX, fromY, toX, toY)
	gs.LastMove = Move{FromX: fromX, FromY: fromY, ToX: toX, ToY: toY}
}
