package board

// spawn places a new tile in a uniformly chosen empty cell. A full board or a
// board with spawning disabled is left untouched.
func (b *Board) spawn() {
	if !b.spawning || b.rng == nil {
		return
	}

	empty := b.emptyIndices()
	if len(empty) == 0 {
		return
	}

	slot := empty[b.rng.Intn(len(empty))]

	number := 2
	if b.rng.Float64() > b.spawnThreshold {
		number = 4
	}
	b.cells[slot] = NewTile(number)
}
