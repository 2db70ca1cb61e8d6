package game

// GameState holds everything that changes during a game: the board memory
// and the turn owner. Each instance is an independent game; nothing in
// this package touches process-wide state, so callers can run as many
// games side by side as they like. Calls into one GameState must be
// serialized by the caller - there is no internal locking.
type GameState struct {
	Board     *Board `json:"board"`
	TurnOwner Piece  `json:"turnOwner"` // Empty until someone moves or sets it
	LastMove  Move   `json:"lastMove"`  // The last move applied (for delta)
	notifier  Notifier
}

// NewGameState returns a fresh game with an empty board and no turn
// owner. A nil notifier is replaced by NopNotifier.
func NewGameState(notifier Notifier) *GameState {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &GameState{
		Board:    NewBoard(),
		notifier: notifier,
	}
}

// SetNotifier swaps the notification sink, e.g. after decoding a state
// received over the wire.
func (gs *GameState) SetNotifier(notifier Notifier) {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	gs.notifier = notifier
}

func (gs *GameState) notify() Notifier {
	if gs.notifier == nil {
		return NopNotifier{}
	}
	return gs.notifier
}

func (gs *GameState) Copy() *GameState {
	return &GameState{
		Board:     gs.Board.Copy(),
		TurnOwner: gs.TurnOwner,
		LastMove:  gs.LastMove,
		notifier:  gs.notifier,
	}
}

// GetTurnOwner reads the color permitted to move next.
func (gs *GameState) GetTurnOwner() Piece {
	return gs.TurnOwner
}

// SetTurnOwner overwrites the turn owner unconditionally.
func (gs *GameState) SetTurnOwner(owner Piece) {
	gs.TurnOwner = owner
}

// ToggleTurnOwner hands the turn to the other color. From any state that
// is not black-to-move, including the initial unset state, the result is
// black-to-move.
func (gs *GameState) ToggleTurnOwner() {
	if gs.TurnOwner == Black {
		gs.TurnOwner = White
	} else {
		gs.TurnOwner = Black
	}
}

// IsPlayersTurn reports whether p belongs to the turn owner. The test is
// a bitwise AND on the color bits, so a crowned piece of the right color
// passes too.
func (gs *GameState) IsPlayersTurn(p Piece) bool {
	return p&gs.TurnOwner != 0
}
