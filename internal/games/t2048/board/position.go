package board

import "fmt"

// Position addresses a cell by row and column.
type Position struct {
	Row int
	Col int
}

// NewPosition creates a position at the given row and column.
func NewPosition(row, col int) Position {
	return Position{Row: row, Col: col}
}

// FromIndex inverts Index for a board of the given size.
func FromIndex(index, size int) Position {
	return Position{Row: index / size, Col: index % size}
}

// Index returns the row-major slot id of p on a board of the given size.
func (p Position) Index(size int) int {
	return p.Row*size + p.Col
}

// OutOfBounds reports whether p falls outside a size×size board.
func (p Position) OutOfBounds(size int) bool {
	return p.Row < 0 || p.Row >= size || p.Col < 0 || p.Col >= size
}

// Add returns the neighbouring position one step in direction d.
// The result may be out of bounds; callers check before indexing.
func (p Position) Add(d Direction) Position {
	dRow, dCol := d.Offset()
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
