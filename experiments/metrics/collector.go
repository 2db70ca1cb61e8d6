package metrics

import (
	"sync/atomic"
	"time"

	"checkers/game"
)

type GameMetric struct {
	StartingOwner game.Piece
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
	TotalMoves    int
	Crownings     int
	Stalled       bool // the side to move ran out of legal moves before the move limit
}

type MoveMetric struct {
	Step    int
	Owner   game.Piece
	Move    game.Move
	Crowned bool
}

// Collector gathers per-game counts. It doubles as the engine's
// notification sink, so the counts come straight off the move execution
// path instead of being re-derived from the board.
type Collector interface {
	game.Notifier
	Start(startingOwner game.Piece)
	Complete(stalled bool) GameMetric
}

type collector struct {
	startingOwner game.Piece
	startTime     time.Time
	moves         atomic.Int32
	crownings     atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(startingOwner game.Piece) {
	c.startingOwner = startingOwner
	c.startTime = time.Now()
	c.moves.Store(0)
	c.crownings.Store(0)
}

// PieceMoved implements game.Notifier.
func (c *collector) PieceMoved(fromX, fromY, toX, toY int) {
	c.moves.Add(1)
}

// PieceCrowned implements game.Notifier.
func (c *collector) PieceCrowned(x, y int) {
	c.crownings.Add(1)
}

func (c *collector) Complete(stalled bool) GameMetric {
	endTime := time.Now()
	return GameMetric{
		StartingOwner: c.startingOwner,
		StartTime:     c.startTime,
		EndTime:       endTime,
		Duration:      endTime.Sub(c.startTime),
		TotalMoves:    int(c.moves.Load()),
		Crownings:     int(c.crownings.Load()),
		Stalled:       stalled,
	}
}
