package game

// Move describes a single relocation from one cell to another. Moves are
// transient values: they are built, validated and applied within one call
// and never persisted.
type Move struct {
	FromX int `json:"fromX"`
	FromY int `json:"fromY"`
	ToX   int `json:"toX"`
	ToY   int `json:"toY"`
}
