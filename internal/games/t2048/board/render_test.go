package board

import "testing"

func TestTilesForRenderWithoutMerges(t *testing.T) {
	b := noSpawn([][]int{
		{2, 0, 4, 0},
		{0, 8, 0, 0},
		{0, 0, 0, 0},
		{16, 0, 0, 2},
	})
	b.Move(Up)

	placed := b.TilesForRender()
	if len(placed) != b.Count() {
		t.Fatalf("TilesForRender() returned %d entries for %d tiles", len(placed), b.Count())
	}
	for _, p := range placed {
		tile, ok := b.At(p.Pos)
		if !ok || tile.Number != p.Tile.Number {
			t.Errorf("entry %v does not match board cell", p)
		}
	}
}

func TestTilesForRenderExpandsMerged(t *testing.T) {
	b := noSpawn([][]int{
		{0, 0, 2, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	b.Move(Left)

	placed := b.TilesForRender()
	if len(placed) != 2 {
		t.Fatalf("expected merged tile plus ghost, got %d entries", len(placed))
	}

	merged, ghost := placed[0], placed[1]
	if merged.Pos != ghost.Pos || merged.Pos != NewPosition(0, 0) {
		t.Errorf("merged and ghost should share (0,0), got %v and %v", merged.Pos, ghost.Pos)
	}
	if merged.Tile.Number != 4 || merged.Tile.State != StateMerged {
		t.Errorf("merged entry = %+v", merged.Tile)
	}
	if ghost.Tile.Number != 2 || ghost.Tile.State != StateStatic {
		t.Errorf("ghost entry = %+v", ghost.Tile)
	}
	if ghost.Tile.Previous == nil || *ghost.Tile.Previous != *merged.Tile.Previous {
		t.Errorf("ghost previous %v should match merged previous %v", ghost.Tile.Previous, merged.Tile.Previous)
	}

	if b.Count() != 1 {
		t.Errorf("projection must not mutate the board, Count() = %d", b.Count())
	}
	again := b.TilesForRender()
	if len(again) != 2 {
		t.Errorf("second projection returned %d entries", len(again))
	}
}
