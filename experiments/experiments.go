package experiments

import (
	"checkers/agent"
	"checkers/engine"
	"checkers/experiments/metrics"

	"github.com/rs/zerolog/log"
)

// RunSelfPlay plays numGames random-vs-random games and writes per-game
// and per-move records as CSV under experiments/selfplay/<timestamp>.
func RunSelfPlay(numGames int, seed uint64) error {
	configs := []metrics.AgentConfig{
		{ID: 1, Name: "random", Seed: seed},
		{ID: 2, Name: "random", Seed: seed + 1},
	}

	writer, err := metrics.NewWriter("selfplay")
	if err != nil {
		return err
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return err
	}

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord
	for i := 1; i <= numGames; i++ {
		log.Info().Msgf("game %d/%d started", i, numGames)

		// Re-seed per game so games differ but the run replays from the base seed
		e := engine.NewLocalEngine([]engine.Agent{
			agent.NewRandom(configs[0].Seed + uint64(i)),
			agent.NewRandom(configs[1].Seed + uint64(i)),
		})
		gameMetric, moveMetrics := e.Run()

		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         i,
			Agent1:     configs[0].ID,
			Agent2:     configs[1].ID,
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: i, MoveMetric: mm})
		}

		log.Info().Msgf("game %d over after %d moves (%d crownings)",
			i, gameMetric.TotalMoves, gameMetric.Crownings)
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	return writer.WriteMoveRecords(moveRecords)
}
