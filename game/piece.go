package game

// Piece is the packed value of a single board cell. The low three bits
// encode everything: bit 0 black, bit 1 white, bit 2 crowned. Zero means
// the cell is empty. An occupied cell has exactly one color bit set;
// callers are responsible for only storing well-formed values.
type Piece uint32

const (
	Empty Piece = 0
	Black Piece = 1
	White Piece = 2
	Crown Piece = 4
)

func (p Piece) IsCrowned() bool {
	return p&Crown != 0
}

func (p Piece) IsWhite() bool {
	return p&White != 0
}

func (p Piece) IsBlack() bool {
	return p&Black != 0
}

// WithCrown returns p with the crown bit set, color bits untouched.
func (p Piece) WithCrown() Piece {
	return p | Crown
}

// WithoutCrown returns p masked down to its color bits.
func (p Piece) WithoutCrown() Piece {
	return p & (Black | White)
}

func (p Piece) String() string {
	switch p {
	case Empty:
		return "empty"
	case Black:
		return "black"
	case White:
		return "white"
	case Black | Crown:
		return "black king"
	case White | Crown:
		return "white king"
	}
	return "invalid"
}
