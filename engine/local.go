package engine

import (
	"fmt"

	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/utils"

	"github.com/rs/zerolog/log"
)

// Update carries a played move and the state after it, so stateful
// agents can keep their own bookkeeping between turns.
type Update struct {
	Move  game.Move
	State *game.GameState
}

// Agent proposes the next move for the side to move. The second return
// is false when the agent has no move to offer.
type Agent interface {
	FindMove(gs *game.GameState, recentUpdates []Update) (game.Move, bool)
}

// owners maps agent index to the color it plays.
var owners = []game.Piece{game.Black, game.White}

type LocalEngine struct {
	State     *game.GameState
	Agents    []Agent
	collector metrics.Collector
}

func NewLocalEngine(agents []Agent) *LocalEngine {
	if len(agents) != len(owners) {
		panic("need exactly two agents, one per color")
	}

	collector := metrics.NewCollector()
	state := game.NewGameState(collector)
	state.SetupStandard()

	return &LocalEngine{
		State:     state,
		Agents:    agents,
		collector: collector,
	}
}

// Run executes the game loop until an agent is out of moves or MaxMoves
// is reached.
func (e *LocalEngine) Run() (metrics.GameMetric, []metrics.MoveMetric) {
	updates := make([][]Update, len(e.Agents))
	for i := range updates {
		updates[i] = []Update{}
	}

	e.collector.Start(e.State.GetTurnOwner())
	log.Info().Msgf("%s is starting", e.State.GetTurnOwner())

	var moveMetrics []metrics.MoveMetric
	stalled := false
	for step := 1; step <= MaxMoves; step++ {
		owner := e.State.GetTurnOwner()
		agentIndex := utils.FindIndex(owners, owner)
		if agentIndex == -1 {
			panic(fmt.Sprintf("no agent plays %s", owner))
		}

		move, ok := e.Agents[agentIndex].FindMove(e.State, updates[agentIndex])
		if !ok {
			stalled = true
			log.Info().Msgf("%s has no legal moves after %d moves", owner, step-1)
			break
		}

		before := e.State.Board.GetPiece(move.FromX, move.FromY)
		if !e.State.PlayMove(move) {
			log.Warn().Msgf("%s proposed an illegal move %+v", owner, move)
			stalled = true
			break
		}
		after := e.State.Board.GetPiece(move.ToX, move.ToY)

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:    step,
			Owner:   owner,
			Move:    move,
			Crowned: after.IsCrowned() && !before.IsCrowned(),
		})

		u := Update{
			Move:  move,
			State: e.State.Copy(),
		}
		updates[agentIndex] = append(updates[agentIndex], u)
	}

	gameMetric := e.collector.Complete(stalled)
	log.Info().Msgf("game over after %d moves (%d crownings)",
		gameMetric.TotalMoves, gameMetric.Crownings)

	return gameMetric, moveMetrics
}
