package game

// Notifier receives fire-and-forget signals from move execution. The
// engine never observes the outcome of a notification, so implementations
// must not fail; they run synchronously on the mover's call.
type Notifier interface {
	PieceMoved(fromX, fromY, toX, toY int)
	PieceCrowned(x, y int)
}

// NopNotifier discards all notifications. It is the default sink when no
// host collaborator is wired in.
type NopNotifier struct{}

func (NopNotifier) PieceMoved(fromX, fromY, toX, toY int) {}

func (NopNotifier) PieceCrowned(x, y int) {}
