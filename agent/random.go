package agent

import (
	"checkers/engine"
	"checkers/game"

	"golang.org/x/exp/rand"
)

// Random plays a uniformly random legal move. It is the baseline agent
// for self-play runs.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (a *Random) FindMove(gs *game.GameState, recentUpdates []engine.Update) (game.Move, bool) {
	moves := gs.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, false
	}
	return moves[a.rng.Intn(len(moves))], true
}
