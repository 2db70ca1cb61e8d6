package gamemaster

import (
	"fmt"
	"sync"

	"checkers/game"
)

type UpdateGetter func() (*game.Move, *game.GameState)

type Engine interface {
	Init() (*game.GameState, UpdateGetter)
	Play(game.Move) error
}

type update struct {
	move  game.Move
	state *game.GameState
}

type localEngine struct {
	state    *game.GameState
	updateCh chan update
	gameOver bool
}

var (
	singleLocalEngine *localEngine
	once              sync.Once
)

func NewLocalEngine() *localEngine {
	return &localEngine{}
}

// GetLocalEngine returns the process-wide engine for hosts that want a
// single shared game.
func GetLocalEngine() *localEngine {
	once.Do(func() {
		singleLocalEngine = &localEngine{}
	})
	return singleLocalEngine
}

func (e *localEngine) Init() (*game.GameState, UpdateGetter) {
	gs := game.NewGameState(nil)
	gs.SetupStandard()

	e.state = gs
	e.gameOver = false
	e.updateCh = make(chan update, 1)

	// return a copy of the state
	return e.state.Copy(), func() (*game.Move, *game.GameState) {
		select {
		case u, ok := <-e.updateCh:
			if !ok { // Game over
				return nil, nil
			}
			// return copies
			move := u.move
			return &move, u.state.Copy()
		default:
			// No updates yet, return nil immediately
			return nil, nil
		}
	}
}

func (e *localEngine) Play(move game.Move) error {
	if e.gameOver {
		return fmt.Errorf("game is over - no moves allowed")
	}

	legalMoves := e.state.LegalMoves()
	if len(legalMoves) == 0 {
		// No legal moves available at this time, so the attempted move is illegal
		e.gameOver = true
		close(e.updateCh)
		return fmt.Errorf("illegal move: no legal moves available")
	}

	// Otherwise, we have some legal moves. Check if the move is among them.
	isLegal := false
	for _, lm := range legalMoves {
		if lm == move {
			isLegal = true
			break
		}
	}
	if !isLegal {
		return fmt.Errorf("illegal move: %+v", move)
	}

	if !e.state.PlayMove(move) {
		return fmt.Errorf("illegal move: %+v", move)
	}

	// Non-blocking push: a slow reader only sees the latest update
	u := update{move: move, state: e.state.Copy()}
	select {
	case e.updateCh <- u:
	default:
	}

	if len(e.state.LegalMoves()) == 0 {
		e.gameOver = true
		close(e.updateCh)
	}
	return nil
}
