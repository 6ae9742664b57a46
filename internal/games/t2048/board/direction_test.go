package board

import (
	"errors"
	"testing"
)

func TestDirectionOffset(t *testing.T) {
	tests := []struct {
		dir        Direction
		dRow, dCol int
	}{
		{Up, -1, 0},
		{Down, 1, 0},
		{Left, 0, -1},
		{Right, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			dRow, dCol := tt.dir.Offset()
			if dRow != tt.dRow || dCol != tt.dCol {
				t.Errorf("Offset() = (%d, %d), want (%d, %d)", dRow, dCol, tt.dRow, tt.dCol)
			}
		})
	}
}

func TestFromDisplacement(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy int
		want   Direction
	}{
		{"mostly right", 5, 1, Right},
		{"mostly down", 1, 5, Down},
		{"mostly left", -5, 1, Left},
		{"mostly up", 1, -5, Up},
		{"diagonal tie goes vertical", 3, 3, Down},
		{"negative tie goes vertical", -3, -3, Up},
		{"zero vector", 0, 0, Up},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromDisplacement(tt.dx, tt.dy); got != tt.want {
				t.Errorf("FromDisplacement(%d, %d) = %v, want %v", tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		got, err := ParseDirection(d.String())
		if err != nil {
			t.Fatalf("ParseDirection(%q) error: %v", d.String(), err)
		}
		if got != d {
			t.Errorf("ParseDirection(%q) = %v, want %v", d.String(), got, d)
		}
	}

	if got, err := ParseDirection("  LEFT "); err != nil || got != Left {
		t.Errorf("ParseDirection should be case and space tolerant, got %v, %v", got, err)
	}

	if _, err := ParseDirection("sideways"); !errors.Is(err, ErrUnknownDirection) {
		t.Errorf("ParseDirection(sideways) error = %v, want ErrUnknownDirection", err)
	}
}

func TestBuildTraversalOrder(t *testing.T) {
	tests := []struct {
		dir   Direction
		first Position
		last  Position
	}{
		{Up, Position{0, 0}, Position{3, 3}},
		{Left, Position{0, 0}, Position{3, 3}},
		{Down, Position{3, 0}, Position{0, 3}},
		{Right, Position{0, 3}, Position{3, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			order := BuildTraversal(tt.dir, DefaultSize)
			if len(order) != 16 {
				t.Fatalf("traversal length = %d, want 16", len(order))
			}
			if order[0] != tt.first {
				t.Errorf("first = %v, want %v", order[0], tt.first)
			}
			if order[15] != tt.last {
				t.Errorf("last = %v, want %v", order[15], tt.last)
			}

			seen := make(map[Position]bool)
			for _, p := range order {
				if p.OutOfBounds(DefaultSize) {
					t.Errorf("traversal contains out of bounds %v", p)
				}
				seen[p] = true
			}
			if len(seen) != 16 {
				t.Errorf("traversal visits %d distinct cells, want 16", len(seen))
			}
		})
	}
}

func TestBuildTraversalRowsOuter(t *testing.T) {
	order := BuildTraversal(Down, DefaultSize)
	want := []Position{{3, 0}, {3, 1}, {3, 2}, {3, 3}, {2, 0}}
	for i, p := range want {
		if order[i] != p {
			t.Errorf("Down traversal[%d] = %v, want %v", i, order[i], p)
		}
	}

	order = BuildTraversal(Right, DefaultSize)
	want = []Position{{0, 3}, {0, 2}, {0, 1}, {0, 0}, {1, 3}}
	for i, p := range want {
		if order[i] != p {
			t.Errorf("Right traversal[%d] = %v, want %v", i, order[i], p)
		}
	}
}

func TestBuildTraversalParametric(t *testing.T) {
	order := BuildTraversal(Right, 5)
	if len(order) != 25 {
		t.Fatalf("5x5 traversal length = %d, want 25", len(order))
	}
	if order[0] != (Position{0, 4}) {
		t.Errorf("5x5 Right traversal starts at %v, want (0,4)", order[0])
	}
}

func TestPositionIndexRoundTrip(t *testing.T) {
	for i := range DefaultSize * DefaultSize {
		p := FromIndex(i, DefaultSize)
		if p.Index(DefaultSize) != i {
			t.Errorf("FromIndex(%d).Index() = %d", i, p.Index(DefaultSize))
		}
	}

	if got := NewPosition(2, 3).Index(DefaultSize); got != 11 {
		t.Errorf("(2,3).Index() = %d, want 11", got)
	}
}

func TestPositionOutOfBounds(t *testing.T) {
	tests := []struct {
		p    Position
		want bool
	}{
		{Position{0, 0}, false},
		{Position{3, 3}, false},
		{Position{-1, 0}, true},
		{Position{0, -1}, true},
		{Position{4, 0}, true},
		{Position{0, 4}, true},
	}

	for _, tt := range tests {
		if got := tt.p.OutOfBounds(DefaultSize); got != tt.want {
			t.Errorf("%v.OutOfBounds() = %v, want %v", tt.p, got, tt.want)
		}
	}

	if !NewPosition(0, 0).Add(Up).OutOfBounds(DefaultSize) {
		t.Error("stepping up from the top row should leave the board")
	}
}
