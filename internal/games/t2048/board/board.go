// Package board implements the 2048 rule engine: a square grid of numbered
// tiles that slide, merge and spawn. It has no dependencies beyond an
// injected random source so it can be driven deterministically by tests,
// the terminal UI and network transports alike.
package board

import (
	"fmt"
	"strings"
)

const (
	// DefaultSize is the standard board dimension.
	DefaultSize = 4
	// DefaultSpawnThreshold is the draw above which a spawned tile is a 4.
	DefaultSpawnThreshold = 0.9
	// DefaultInitialTiles is the number of tiles spawned by New.
	DefaultInitialTiles = 2
)

// Rand is the random source a Board draws from. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Board holds size×size cells, each empty (nil) or owning one tile.
type Board struct {
	size           int
	cells          []*Tile
	rng            Rand
	spawning       bool
	spawnThreshold float64
	initialTiles   int
}

// Option customises a Board at construction.
type Option func(*Board)

// WithSize sets the board dimension. Values below 2 are ignored.
func WithSize(n int) Option {
	return func(b *Board) {
		if n >= 2 {
			b.size = n
		}
	}
}

// WithSpawnThreshold sets the draw above which a spawned tile is a 4.
func WithSpawnThreshold(t float64) Option {
	return func(b *Board) {
		if t >= 0 && t <= 1 {
			b.spawnThreshold = t
		}
	}
}

// WithInitialTiles sets how many tiles New spawns.
func WithInitialTiles(n int) Option {
	return func(b *Board) {
		if n >= 0 {
			b.initialTiles = n
		}
	}
}

// Empty creates a board with no tiles and spawning enabled.
func Empty(rng Rand, opts ...Option) *Board {
	b := &Board{
		size:           DefaultSize,
		rng:            rng,
		spawning:       true,
		spawnThreshold: DefaultSpawnThreshold,
		initialTiles:   DefaultInitialTiles,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.cells = make([]*Tile, b.size*b.size)
	return b
}

// New creates an empty board and spawns the initial tiles.
func New(rng Rand, opts ...Option) *Board {
	b := Empty(rng, opts...)
	for range b.initialTiles {
		b.spawn()
	}
	return b
}

// FromNumbers creates a board from a row-major grid of tile numbers, 0 meaning
// empty. The board size follows len(rows); short rows are padded with empties.
func FromNumbers(rng Rand, rows [][]int, opts ...Option) *Board {
	opts = append([]Option{WithSize(len(rows))}, opts...)
	b := Empty(rng, opts...)
	for r := 0; r < b.size && r < len(rows); r++ {
		for c := 0; c < b.size && c < len(rows[r]); c++ {
			if n := rows[r][c]; n > 0 {
				b.cells[Position{Row: r, Col: c}.Index(b.size)] = NewTile(n)
			}
		}
	}
	return b
}

// Size returns the board dimension.
func (b *Board) Size() int {
	return b.size
}

// At returns a copy of the tile at p and whether the cell is occupied.
func (b *Board) At(p Position) (Tile, bool) {
	if p.OutOfBounds(b.size) {
		return Tile{}, false
	}
	t := b.cells[p.Index(b.size)]
	if t == nil {
		return Tile{}, false
	}
	return *t, true
}

// Move slides every tile toward d, merging equal neighbours, and spawns one
// tile if anything moved and spawning is enabled. It reports whether the
// board changed.
func (b *Board) Move(d Direction) bool {
	b.prepare()

	moved := false
	for _, from := range BuildTraversal(d, b.size) {
		if b.slide(from, d) {
			moved = true
		}
	}

	if moved {
		b.spawn()
	}
	return moved
}

// prepare marks every tile Static and records its current slot.
func (b *Board) prepare() {
	for i, t := range b.cells {
		if t == nil {
			continue
		}
		prev := FromIndex(i, b.size)
		t.State = StateStatic
		t.Previous = &prev
	}
}

// slide moves the tile at from as far as it can go toward d.
func (b *Board) slide(from Position, d Direction) bool {
	t := b.cells[from.Index(b.size)]
	if t == nil {
		return false
	}

	to := from
	for {
		next := to.Add(d)
		if next.OutOfBounds(b.size) {
			break
		}
		occupant := b.cells[next.Index(b.size)]
		if occupant == nil {
			to = next
			continue
		}
		if occupant.canAbsorb(t.Number) {
			t.Number *= 2
			t.State = StateMerged
			to = next
		}
		break
	}

	if to == from {
		return false
	}
	b.cells[from.Index(b.size)] = nil
	b.cells[to.Index(b.size)] = t
	return true
}

// DisableSpawning stops all future spawns. It cannot be undone.
func (b *Board) DisableSpawning() {
	b.spawning = false
}

// IsTerminal reports whether spawning has been disabled.
func (b *Board) IsTerminal() bool {
	return !b.spawning
}

// HasLegalMove reports whether any direction would change the board.
func (b *Board) HasLegalMove() bool {
	for _, d := range Directions {
		scratch := b.scratch()
		if scratch.Move(d) {
			return true
		}
	}
	return false
}

// scratch returns a detached copy that never spawns and owns no random source.
func (b *Board) scratch() *Board {
	c := &Board{
		size:           b.size,
		cells:          make([]*Tile, len(b.cells)),
		spawnThreshold: b.spawnThreshold,
	}
	for i, t := range b.cells {
		if t != nil {
			cp := *t
			c.cells[i] = &cp
		}
	}
	return c
}

// Count returns the number of occupied cells.
func (b *Board) Count() int {
	n := 0
	for _, t := range b.cells {
		if t != nil {
			n++
		}
	}
	return n
}

// MaxTile returns the highest tile number, or 0 on an empty board.
func (b *Board) MaxTile() int {
	best := 0
	for _, t := range b.cells {
		if t != nil && t.Number > best {
			best = t.Number
		}
	}
	return best
}

// EmptyCells returns the empty positions in row-major order.
func (b *Board) EmptyCells() []Position {
	var out []Position
	for _, i := range b.emptyIndices() {
		out = append(out, FromIndex(i, b.size))
	}
	return out
}

// emptyIndices returns the cell indices with no tile, ascending.
func (b *Board) emptyIndices() []int {
	var out []int
	for i, t := range b.cells {
		if t == nil {
			out = append(out, i)
		}
	}
	return out
}

// Numbers returns the tile numbers as a row-major grid, 0 for empty cells.
func (b *Board) Numbers() [][]int {
	grid := make([][]int, b.size)
	for r := range grid {
		grid[r] = make([]int, b.size)
		for c := range grid[r] {
			if t := b.cells[Position{Row: r, Col: c}.Index(b.size)]; t != nil {
				grid[r][c] = t.Number
			}
		}
	}
	return grid
}

// Equal reports whether both boards hold the same numbers in the same cells.
// Tile state, spawning and the random source are ignored.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.size != other.size {
		return false
	}
	for i, t := range b.cells {
		o := other.cells[i]
		switch {
		case t == nil && o == nil:
			continue
		case t == nil || o == nil:
			return false
		case !t.SameNumber(*o):
			return false
		}
	}
	return true
}

// String dumps the cells for diagnostics.
func (b *Board) String() string {
	var sb strings.Builder
	for i, t := range b.cells {
		if i > 0 {
			if i%b.size == 0 {
				sb.WriteByte('\n')
			} else {
				sb.WriteByte(' ')
			}
		}
		if t == nil {
			sb.WriteString(".")
			continue
		}
		fmt.Fprintf(&sb, "%d:%s", t.Number, t.State)
	}
	return sb.String()
}
