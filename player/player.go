package player

import (
	"time"

	"checkers/communication"
	"checkers/game"

	"golang.org/x/exp/rand"
)

// Player drives one color over a Communicator: sync the local state,
// pick a legal move when it is this color's turn, send it as an action.
type Player struct {
	Color          game.Piece
	Communicator   communication.Communicator
	LocalGameState *game.GameState
	rng            *rand.Rand
}

// NewPlayer creates a new Player instance.
func NewPlayer(color game.Piece, comm communication.Communicator, seed uint64) *Player {
	return &Player{
		Color:        color,
		Communicator: comm,
		rng:          rand.New(rand.NewSource(seed)),
	}
}

// Play starts the player's turn loop.
func (p *Player) Play() {
	for {
		p.SyncGameState()
		if p.LocalGameState == nil {
			return // no game hosted yet
		}

		if p.LocalGameState.GetTurnOwner() != p.Color {
			time.Sleep(10 * time.Millisecond)
			continue
		}

		action, ok := p.TakeTurn()
		if !ok {
			return // No possible actions. Ending turn loop.
		}
		p.Communicator.SendAction(action)
	}
}

// SyncGameState updates the player's local game state.
func (p *Player) SyncGameState() {
	p.LocalGameState = p.Communicator.GetGameState()
}

// TakeTurn decides on an action to perform. Right now it is just random.
func (p *Player) TakeTurn() (communication.Action, bool) {
	moves := p.LocalGameState.LegalMoves()
	if len(moves) == 0 {
		return communication.Action{}, false
	}
	move := moves[p.rng.Intn(len(moves))]
	return communication.Action{Player: p.Color, Move: move}, true
}
