package engine

import "checkers/experiments/metrics"

const MaxMoves = 10000

// Engine runs a game until the side to move has no legal moves or the
// move limit is reached.
type Engine interface {
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
