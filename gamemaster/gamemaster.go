package gamemaster

import (
	"checkers/communication"
	"checkers/game"
	"checkers/meta"

	"github.com/rs/zerolog/log"
)

// GameMaster manages the game flow and resolves actions.
type GameMaster struct {
	Communicator communication.Communicator
}

// NewGameMaster initializes a new GameMaster.
func NewGameMaster(comm communication.Communicator) *GameMaster {
	return &GameMaster{
		Communicator: comm,
	}
}

// InitializeGame sets up the initial game state.
func (gm *GameMaster) InitializeGame() {
	gs := game.NewGameState(nil)
	gs.SetupStandard()
	gm.Communicator.UpdateGameState(gs)
}

// RunGame is the game loop: receive an action, check it comes from the
// turn owner, apply it, publish the new state. The loop ends when the
// side to move is out of legal moves or the turn cap is reached.
func (gm *GameMaster) RunGame() {
	for turn := 0; turn < meta.MAX_TURNS; turn++ {
		gs := gm.Communicator.GetGameState()

		if len(gs.LegalMoves()) == 0 {
			log.Info().Msgf("%s has no legal moves, game over", gs.GetTurnOwner())
			return
		}

		action := gm.Communicator.ReceiveAction()

		// Validate that the action is from the turn owner
		if action.Player != gs.GetTurnOwner() {
			continue
		}

		if !gs.PlayMove(action.Move) {
			log.Warn().Msgf("%s sent an illegal move %+v", action.Player, action.Move)
			continue
		}

		gm.Communicator.UpdateGameState(gs)
	}
	log.Info().Msgf("turn cap reached after %d turns", meta.MAX_TURNS)
}
