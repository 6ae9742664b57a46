package board

import (
	"math/rand"
	"strings"
	"testing"
)

// scriptedRand replays fixed draws so spawns land where a test expects.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func noSpawn(rows [][]int) *Board {
	b := FromNumbers(nil, rows)
	b.DisableSpawning()
	return b
}

func TestNewSpawnsTwoTiles(t *testing.T) {
	b := New(rand.New(rand.NewSource(1)))

	if b.Size() != DefaultSize {
		t.Errorf("Size() = %d, want %d", b.Size(), DefaultSize)
	}
	if b.Count() != 2 {
		t.Errorf("New board has %d tiles, want 2", b.Count())
	}
	if b.IsTerminal() {
		t.Error("New board should not be terminal")
	}

	for _, p := range b.TilesForRender() {
		if p.Tile.State != StateNew {
			t.Errorf("spawned tile at %v has state %v, want new", p.Pos, p.Tile.State)
		}
		if p.Tile.Previous != nil {
			t.Errorf("spawned tile at %v should have no previous position", p.Pos)
		}
		if p.Tile.Number != 2 && p.Tile.Number != 4 {
			t.Errorf("spawned tile number = %d, want 2 or 4", p.Tile.Number)
		}
	}
}

func TestNewDeterministicWithSeed(t *testing.T) {
	a := New(rand.New(rand.NewSource(12345)))
	b := New(rand.New(rand.NewSource(12345)))

	if !a.Equal(b) {
		t.Errorf("same seed should produce same board:\n%v\nvs\n%v", a, b)
	}
}

func TestMoveRows(t *testing.T) {
	tests := []struct {
		name string
		row  []int
		dir  Direction
		want []int
	}{
		{"simple merge", []int{2, 2, 0, 0}, Left, []int{4, 0, 0, 0}},
		{"absorb at most once", []int{2, 2, 2, 0}, Left, []int{4, 2, 0, 0}},
		{"two pairs", []int{2, 2, 2, 2}, Left, []int{4, 4, 0, 0}},
		{"no merge possible", []int{2, 4, 8, 16}, Left, []int{2, 4, 8, 16}},
		{"merge across gap", []int{2, 0, 0, 2}, Left, []int{4, 0, 0, 0}},
		{"slide only", []int{0, 0, 0, 4}, Left, []int{4, 0, 0, 0}},
		{"merged tile stops", []int{4, 4, 8, 0}, Left, []int{8, 8, 0, 0}},
		{"right merges far side first", []int{2, 2, 2, 0}, Right, []int{0, 0, 2, 4}},
		{"right two pairs", []int{4, 4, 4, 4}, Right, []int{0, 0, 8, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := noSpawn([][]int{tt.row, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}})
			b.Move(tt.dir)
			got := b.Numbers()[0]
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("Move(%v) on %v = %v, want %v", tt.dir, tt.row, got, tt.want)
				}
			}
		})
	}
}

func TestMoveColumns(t *testing.T) {
	b := noSpawn([][]int{
		{2, 4, 2, 2},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 0},
	})

	b.Move(Down)

	want := [][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 4, 0},
		{4, 8, 4, 2},
	}
	assertNumbers(t, b, want)

	b = noSpawn([][]int{
		{2, 4, 2, 0},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 2},
	})

	b.Move(Up)

	want = [][]int{
		{4, 8, 4, 2},
		{0, 0, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	assertNumbers(t, b, want)
}

func TestMoveMergeSpawnsExactlyOne(t *testing.T) {
	rng := &scriptedRand{ints: []int{0}, floats: []float64{0.5}}
	b := FromNumbers(rng, [][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	if !b.Move(Left) {
		t.Fatal("Move(Left) should report a change")
	}

	if b.Count() != 2 {
		t.Errorf("after merge + spawn Count() = %d, want 2", b.Count())
	}

	merged, ok := b.At(NewPosition(0, 0))
	if !ok || merged.Number != 4 || merged.State != StateMerged {
		t.Errorf("cell (0,0) = %+v, want merged 4", merged)
	}

	// First empty slot after the merge is (0,1).
	spawned, ok := b.At(NewPosition(0, 1))
	if !ok || spawned.Number != 2 || spawned.State != StateNew {
		t.Errorf("cell (0,1) = %+v, want new 2", spawned)
	}
}

func TestMoveNoOpDoesNotSpawn(t *testing.T) {
	b := FromNumbers(rand.New(rand.NewSource(7)), [][]int{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	if b.Move(Left) {
		t.Error("Move(Left) on left-aligned tiles should be a no-op")
	}
	if b.Count() != 2 {
		t.Errorf("no-op move spawned a tile: Count() = %d", b.Count())
	}
}

func TestMoveTwiceIsIdempotentOnceSettled(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for _, d := range Directions {
		b := FromNumbers(rng, [][]int{
			{2, 4, 8, 16},
			{4, 8, 16, 32},
			{8, 16, 32, 64},
			{16, 32, 64, 128},
		})
		before := b.Numbers()
		if b.Move(d) {
			t.Errorf("Move(%v) on a locked board should not change it", d)
		}
		if b.Move(d) {
			t.Errorf("second Move(%v) should also be a no-op", d)
		}
		assertNumbers(t, b, before)
	}
}

func TestMovePreparesPreviousPositions(t *testing.T) {
	b := noSpawn([][]int{
		{0, 0, 0, 2},
		{0, 0, 0, 0},
		{0, 8, 0, 0},
		{0, 0, 0, 0},
	})

	b.Move(Left)

	tile, ok := b.At(NewPosition(0, 0))
	if !ok {
		t.Fatal("expected tile at (0,0)")
	}
	if tile.State != StateStatic {
		t.Errorf("slid tile state = %v, want static", tile.State)
	}
	if tile.Previous == nil || *tile.Previous != NewPosition(0, 3) {
		t.Errorf("slid tile previous = %v, want (0,3)", tile.Previous)
	}

	tile, _ = b.At(NewPosition(2, 0))
	if tile.Previous == nil || *tile.Previous != NewPosition(2, 1) {
		t.Errorf("second tile previous = %v, want (2,1)", tile.Previous)
	}
}

func TestMergedStateResetsNextMove(t *testing.T) {
	b := noSpawn([][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	b.Move(Left)
	b.Move(Down)

	tile, ok := b.At(NewPosition(3, 0))
	if !ok || tile.Number != 4 {
		t.Fatalf("expected 4 at (3,0), got %+v", tile)
	}
	if tile.State != StateStatic {
		t.Errorf("state after second move = %v, want static", tile.State)
	}
}

func TestDisableSpawningFreezesCount(t *testing.T) {
	b := New(rand.New(rand.NewSource(3)))
	for range 5 {
		b.Move(Left)
		b.Move(Down)
	}

	b.DisableSpawning()
	if !b.IsTerminal() {
		t.Fatal("IsTerminal() should be true after DisableSpawning")
	}

	limit := b.Count()
	for i := range 200 {
		b.Move(Directions[i%4])
		if b.Count() > limit {
			t.Fatalf("occupied cells grew to %d after DisableSpawning (was %d)", b.Count(), limit)
		}
	}
}

func TestHasLegalMove(t *testing.T) {
	locked := noSpawn([][]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	})
	if locked.HasLegalMove() {
		t.Error("checkerboard should have no legal move")
	}

	mergeable := noSpawn([][]int{
		{2, 2, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	})
	if !mergeable.HasLegalMove() {
		t.Error("full board with a pair should have a legal move")
	}

	gap := noSpawn([][]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 0, 4},
		{4, 2, 4, 2},
	})
	if !gap.HasLegalMove() {
		t.Error("board with an empty cell should have a legal move")
	}

	before := mergeable.Numbers()
	mergeable.HasLegalMove()
	assertNumbers(t, mergeable, before)
}

func TestFullBoardSpawnIsNoOp(t *testing.T) {
	rng := &scriptedRand{}
	b := FromNumbers(rng, [][]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	})
	b.spawn()
	if b.Count() != 16 {
		t.Errorf("Count() = %d, want 16", b.Count())
	}
}

func TestEqualIgnoresState(t *testing.T) {
	a := noSpawn([][]int{{2, 2, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}})
	b := noSpawn([][]int{{4, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}})

	if a.Equal(b) {
		t.Fatal("different boards reported equal")
	}
	a.Move(Left)
	if !a.Equal(b) {
		t.Errorf("boards with the same numbers should be equal:\n%v\nvs\n%v", a, b)
	}
	if a.Equal(nil) {
		t.Error("Equal(nil) should be false")
	}
}

func TestParametricBoard(t *testing.T) {
	b := FromNumbers(nil, [][]int{
		{2, 2, 2, 2, 2},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
	})
	if b.Size() != 5 {
		t.Fatalf("Size() = %d, want 5", b.Size())
	}
	b.Move(Right)
	got := b.Numbers()[0]
	want := []int{0, 0, 2, 4, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("5-wide Move(Right) = %v, want %v", got, want)
		}
	}
}

func TestStringDump(t *testing.T) {
	b := noSpawn([][]int{{2, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 4}})
	s := b.String()
	if strings.Count(s, "\n") != 3 {
		t.Errorf("String() should have 4 lines, got %q", s)
	}
	if !strings.HasPrefix(s, "2:new") {
		t.Errorf("String() = %q, want prefix 2:new", s)
	}
}

func assertNumbers(t *testing.T, b *Board, want [][]int) {
	t.Helper()
	got := b.Numbers()
	for r := range want {
		for c := range want[r] {
			if got[r][c] != want[r][c] {
				t.Fatalf("board mismatch:\ngot  %v\nwant %v", got, want)
			}
		}
	}
}
