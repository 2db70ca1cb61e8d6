package game

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
)

const (
	BoardWidth  = 8
	BoardHeight = 8

	// Each cell occupies one 32-bit aligned slot in the backing memory.
	cellSize   = 4
	boardBytes = BoardWidth * BoardHeight * cellSize
)

// Board is the raw storage for the 64 cells: a single contiguous memory
// block addressed through Offset. Cells hold packed Piece values,
// little-endian.
type Board struct {
	mem []byte
}

func NewBoard() *Board {
	return &Board{mem: make([]byte, boardBytes)}
}

// Offset maps board coordinates to the byte address of their cell:
// (x + y*8) * 4. This is pure arithmetic with no range checking, so
// out-of-range coordinates map to out-of-range addresses.
func Offset(x, y int) int {
	return (x + y*BoardWidth) * cellSize
}

// InRange reports whether low <= value <= high.
func InRange(low, high, value int) bool {
	return value >= low && value <= high
}

// checkPosition is the single fault point for coordinate preconditions.
// Passing coordinates outside [0,7] is a programmer error, not a game
// rule violation, so it panics rather than returning an error.
func checkPosition(x, y int) {
	if !InRange(0, BoardWidth-1, x) || !InRange(0, BoardHeight-1, y) {
		panic(fmt.Sprintf("board position (%d,%d) out of range", x, y))
	}
}

func (b *Board) GetPiece(x, y int) Piece {
	checkPosition(x, y)
	off := Offset(x, y)
	return Piece(binary.LittleEndian.Uint32(b.mem[off : off+cellSize]))
}

func (b *Board) SetPiece(x, y int, p Piece) {
	checkPosition(x, y)
	off := Offset(x, y)
	binary.LittleEndian.PutUint32(b.mem[off:off+cellSize], uint32(p))
}

func (b *Board) Copy() *Board {
	mem := make([]byte, len(b.mem))
	copy(mem, b.mem)
	return &Board{mem: mem}
}

// MarshalJSON encodes the board as a flat array of 64 cell values in
// row-major order, the same order Offset walks the memory.
func (b *Board) MarshalJSON() ([]byte, error) {
	cells := make([]uint32, BoardWidth*BoardHeight)
	for i := range cells {
		cells[i] = binary.LittleEndian.Uint32(b.mem[i*cellSize:])
	}
	return json.Marshal(cells)
}

func (b *Board) UnmarshalJSON(data []byte) error {
	var cells []uint32
	if err := json.Unmarshal(data, &cells); err != nil {
		return err
	}
	if len(cells) != BoardWidth*BoardHeight {
		return fmt.Errorf("expected %d cells, got %d", BoardWidth*BoardHeight, len(cells))
	}
	b.mem = make([]byte, boardBytes)
	for i, c := range cells {
		binary.LittleEndian.PutUint32(b.mem[i*cellSize:], c)
	}
	return nil
}
