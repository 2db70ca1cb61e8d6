package gamemaster

import (
	"testing"

	"checkers/communication"
	"checkers/game"
)

// queueComm feeds a fixed sequence of actions and stores the latest
// published state.
type queueComm struct {
	state   *game.GameState
	actions []communication.Action
}

func (c *queueComm) GetGameState() *game.GameState       { return c.state.Copy() }
func (c *queueComm) UpdateGameState(gs *game.GameState)  { c.state = gs }
func (c *queueComm) SendAction(a communication.Action)   { c.actions = append(c.actions, a) }
func (c *queueComm) ReceiveAction() communication.Action {
	if len(c.actions) == 0 {
		return communication.Action{}
	}
	a := c.actions[0]
	c.actions = c.actions[1:]
	return a
}

func TestGameMasterInitializeGame(t *testing.T) {
	comm := &queueComm{}
	gm := NewGameMaster(comm)
	gm.InitializeGame()

	if comm.state == nil {
		t.Fatal("expected an initial state to be published")
	}
	if comm.state.GetTurnOwner() != game.Black {
		t.Errorf("expected black to open, got %v", comm.state.GetTurnOwner())
	}
}

func TestGameMasterAppliesTurnOwnerAction(t *testing.T) {
	comm := &queueComm{}
	gm := NewGameMaster(comm)
	gm.InitializeGame()

	comm.SendAction(communication.Action{
		Player: game.Black,
		Move:   game.Move{FromX: 2, FromY: 5, ToX: 2, ToY: 4},
	})

	gm.RunGame() // runs to the turn cap once actions dry up

	if got := comm.state.Board.GetPiece(2, 4); got != game.Black {
		t.Errorf("expected black at (2,4), got %v", got)
	}
	if got := comm.state.Board.GetPiece(2, 5); got != game.Empty {
		t.Errorf("expected (2,5) cleared, got %v", got)
	}
}

func TestGameMasterIgnoresWrongPlayer(t *testing.T) {
	comm := &queueComm{}
	gm := NewGameMaster(comm)
	gm.InitializeGame()

	// White tries to act on black's turn
	comm.SendAction(communication.Action{
		Player: game.White,
		Move:   game.Move{FromX: 3, FromY: 2, ToX: 3, ToY: 3},
	})

	gm.RunGame()

	if got := comm.state.Board.GetPiece(3, 3); got != game.Empty {
		t.Errorf("expected white's out-of-turn move to be ignored, found %v at (3,3)", got)
	}
	if comm.state.GetTurnOwner() != game.Black {
		t.Errorf("expected black still to move, got %v", comm.state.GetTurnOwner())
	}
}
