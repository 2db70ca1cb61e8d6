package game

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestLegalMovesSinglePiece(t *testing.T) {
	gs := NewGameState(nil)
	gs.Board.SetPiece(3, 5, Black)
	gs.SetTurnOwner(Black)

	want := []Move{
		{FromX: 3, FromY: 5, ToX: 1, ToY: 3},
		{FromX: 3, FromY: 5, ToX: 3, ToY: 3},
		{FromX: 3, FromY: 5, ToX: 5, ToY: 3},
		{FromX: 3, FromY: 5, ToX: 2, ToY: 4},
		{FromX: 3, FromY: 5, ToX: 3, ToY: 4},
		{FromX: 3, FromY: 5, ToX: 4, ToY: 4},
		{FromX: 3, FromY: 5, ToX: 2, ToY: 6},
		{FromX: 3, FromY: 5, ToX: 3, ToY: 6},
		{FromX: 3, FromY: 5, ToX: 4, ToY: 6},
		{FromX: 3, FromY: 5, ToX: 1, ToY: 7},
		{FromX: 3, FromY: 5, ToX: 3, ToY: 7},
		{FromX: 3, FromY: 5, ToX: 5, ToY: 7},
	}
	if diff := cmp.Diff(want, gs.LegalMoves()); diff != "" {
		t.Errorf("LegalMoves() mismatch (-want +got):\n%s", diff)
	}
}

func TestLegalMovesEmptyBoard(t *testing.T) {
	gs := NewGameState(nil)
	gs.SetTurnOwner(Black)
	require.Empty(t, gs.LegalMoves())
}

func TestLegalMovesOnlyTurnOwner(t *testing.T) {
	gs := NewGameState(nil)
	gs.Board.SetPiece(3, 5, Black)
	gs.Board.SetPiece(4, 2, White)
	gs.SetTurnOwner(White)

	for _, m := range gs.LegalMoves() {
		require.Equal(t, 4, m.FromX, "only white's piece may move")
		require.Equal(t, 2, m.FromY)
	}
	require.NotEmpty(t, gs.LegalMoves())
}

func TestLegalMovesSkipOccupied(t *testing.T) {
	gs := NewGameState(nil)
	gs.Board.SetPiece(3, 5, Black)
	gs.Board.SetPiece(3, 4, White)
	gs.SetTurnOwner(Black)

	for _, m := range gs.LegalMoves() {
		require.False(t, m.ToX == 3 && m.ToY == 4, "occupied destination generated: %+v", m)
	}
}

func TestLegalMovesAllValidated(t *testing.T) {
	gs := NewGameState(nil)
	gs.SetupStandard()

	moves := gs.LegalMoves()
	require.NotEmpty(t, moves)
	for _, m := range moves {
		require.True(t, gs.IsValidMove(m.FromX, m.FromY, m.ToX, m.ToY), "generated move fails validation: %+v", m)
	}
}
