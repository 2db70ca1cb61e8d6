package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetupStandard(t *testing.T) {
	gs := NewGameState(nil)
	gs.SetupStandard()

	var blacks, whites int
	for y := 0; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			switch p := gs.Board.GetPiece(x, y); p {
			case Black:
				blacks++
				require.GreaterOrEqual(t, y, 5, "black starts on the far ranks")
				require.Equal(t, 1, (x+y)%2, "pieces only on dark squares")
			case White:
				whites++
				require.LessOrEqual(t, y, 2, "white starts on the near ranks")
				require.Equal(t, 1, (x+y)%2, "pieces only on dark squares")
			case Empty:
			default:
				t.Fatalf("unexpected piece %v at (%d,%d)", p, x, y)
			}
		}
	}
	require.Equal(t, 12, blacks)
	require.Equal(t, 12, whites)
	require.Equal(t, Black, gs.GetTurnOwner(), "black opens")
}
