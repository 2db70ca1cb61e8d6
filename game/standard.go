package game

// SetupStandard places both sides in their opening positions: twelve
// white pieces on the dark squares of ranks 0-2 and twelve black pieces
// on the dark squares of ranks 5-7, so each side advances toward its
// crowning rank. Black moves first.
func (gs *GameState) SetupStandard() {
	for y := 0; y < 3; y++ {
		for x := 0; x < BoardWidth; x++ {
			if (x+y)%2 == 1 {
				gs.Board.SetPiece(x, y, White)
			}
		}
	}
	for y := BoardHeight - 3; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			if (x+y)%2 == 1 {
				gs.Board.SetPiece(x, y, Black)
			}
		}
	}
	gs.SetTurnOwner(Black)
}
