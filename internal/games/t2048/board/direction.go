package board

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDirection is returned by ParseDirection for unrecognised names.
var ErrUnknownDirection = errors.New("board: unknown direction")

// Direction is one of the four slide directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in declaration order.
var Directions = [...]Direction{Up, Down, Left, Right}

// Offset returns the unit (row, col) step for the direction.
func (d Direction) Offset() (dRow, dCol int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		return 0, 0
	}
}

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection converts a name such as "left" into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return Up, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// FromDisplacement classifies a 2D displacement (screen coordinates, y grows
// downward) as a direction. The horizontal axis wins only when strictly
// larger; ties, including a zero vector, resolve vertically.
func FromDisplacement(dx, dy int) Direction {
	if abs(dx) > abs(dy) {
		if dx > 0 {
			return Right
		}
		return Left
	}
	if dy > 0 {
		return Down
	}
	return Up
}

// BuildTraversal returns the order in which source cells are visited when
// sliding toward d. Cells nearest the destination edge come first so a tile
// is never processed before the cell in front of it.
func BuildTraversal(d Direction, size int) []Position {
	rows := ascending(size)
	cols := ascending(size)
	if d == Down {
		reverse(rows)
	}
	if d == Right {
		reverse(cols)
	}

	out := make([]Position, 0, size*size)
	for _, r := range rows {
		for _, c := range cols {
			out = append(out, Position{Row: r, Col: c})
		}
	}
	return out
}

func ascending(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
