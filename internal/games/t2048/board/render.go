package board

// Placed is a tile paired with the cell it is drawn in.
type Placed struct {
	Pos  Position
	Tile Tile
}

// TilesForRender lists every tile in row-major order for a renderer. A merged
// tile is followed by a ghost at the same cell carrying the pre-merge number in
// the Static state, so a renderer can slide the absorbed tile under the result.
// The board is not modified.
func (b *Board) TilesForRender() []Placed {
	out := make([]Placed, 0, len(b.cells)+2)
	for i, t := range b.cells {
		if t == nil {
			continue
		}
		pos := FromIndex(i, b.size)
		switch t.State {
		case StateMerged:
			out = append(out,
				Placed{Pos: pos, Tile: *t},
				Placed{Pos: pos, Tile: Tile{
					Number:   t.Number / 2,
					State:    StateStatic,
					Previous: t.Previous,
				}},
			)
		case StateNew, StateStatic:
			out = append(out, Placed{Pos: pos, Tile: *t})
		}
	}
	return out
}
