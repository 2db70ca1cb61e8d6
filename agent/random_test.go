package agent

import (
	"testing"

	"checkers/game"

	"github.com/stretchr/testify/require"
)

func TestRandomPicksLegalMove(t *testing.T) {
	gs := game.NewGameState(nil)
	gs.SetupStandard()

	a := NewRandom(1)
	for i := 0; i < 50; i++ {
		move, ok := a.FindMove(gs, nil)
		require.True(t, ok)
		require.True(t, gs.IsValidMove(move.FromX, move.FromY, move.ToX, move.ToY),
			"agent proposed illegal move %+v", move)
	}
}

func TestRandomNoMoves(t *testing.T) {
	gs := game.NewGameState(nil)
	gs.SetTurnOwner(game.Black) // empty board, nothing to move

	a := NewRandom(1)
	_, ok := a.FindMove(gs, nil)
	require.False(t, ok)
}

func TestRandomDeterministicPerSeed(t *testing.T) {
	setup := func() *game.GameState {
		gs := game.NewGameState(nil)
		gs.SetupStandard()
		return gs
	}

	a1 := NewRandom(42)
	a2 := NewRandom(42)
	gs1, gs2 := setup(), setup()
	for i := 0; i < 20; i++ {
		m1, ok1 := a1.FindMove(gs1, nil)
		m2, ok2 := a2.FindMove(gs2, nil)
		require.Equal(t, ok1, ok2)
		require.Equal(t, m1, m2, "same seed should replay the same choices")
		if !ok1 {
			break
		}
		require.True(t, gs1.PlayMove(m1))
		require.True(t, gs2.PlayMove(m2))
	}
}
