package game

// LegalMoves enumerates the moves the validator accepts for the current
// turn owner: steps and jumps of one or two cells along y, with the x
// shift held to at most the y distance so generated moves stay on the
// board. Returns nil when the owner has no pieces or no open targets.
func (gs *GameState) LegalMoves() []Move {
	var moves []Move
	for y := 0; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			p := gs.Board.GetPiece(x, y)
			if p == Empty || !gs.IsPlayersTurn(p) {
				continue
			}
			for _, dy := range []int{-2, -1, 1, 2} {
				toY := y + dy
				if !InRange(0, BoardHeight-1, toY) {
					continue
				}
				d := dy
				if d < 0 {
					d = -d
				}
				for _, dx := range []int{-d, 0, d} {
					toX := x + dx
					if !InRange(0, BoardWidth-1, toX) {
						continue
					}
					if gs.IsValidMove(x, y, toX, toY) {
						moves = append(moves, Move{FromX: x, FromY: y, ToX: toX, ToY: toY})
					}
				}
			}
		}
	}
	return moves
}
