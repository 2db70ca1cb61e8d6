package communication

import "checkers/game"

// Action is a move request from a player, tagged with the color that
// sent it.
type Action struct {
	Player game.Piece `json:"player"`
	Move   game.Move  `json:"move"`
}

// Communicator is an interface that abstracts the communication
// mechanism between players and the gamemaster.
type Communicator interface {
	GetGameState() *game.GameState
	UpdateGameState(gs *game.GameState)
	SendAction(action Action)
	ReceiveAction() Action
}
