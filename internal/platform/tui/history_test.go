package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

func TestHistoryRows(t *testing.T) {
	rows := HistoryRows([]storage.Run{
		{MaxTile: 512, Moves: 301, EndReason: storage.EndStuck},
		{MaxTile: 64, Moves: 40, EndReason: storage.EndFinished},
	})

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0][0] != "1" || rows[0][1] != "512" || rows[0][2] != "301" || rows[0][3] != "stuck" {
		t.Errorf("row 0 = %v", rows[0])
	}
	if rows[1][3] != "finished" {
		t.Errorf("row 1 end = %q", rows[1][3])
	}
}

func TestHistoryModelEmpty(t *testing.T) {
	m := NewHistoryModel(nil, "2048", ViewRecent, 100, 30)

	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Errorf("empty history view:\n%s", m.View())
	}
}

func TestHistoryModelSwitchesView(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, r := range []storage.Run{
		{GameID: "2048", MaxTile: 128, Moves: 90, EndReason: storage.EndStuck},
		{GameID: "2048", MaxTile: 1024, Moves: 700, EndReason: storage.EndStuck},
		{GameID: "2048", MaxTile: 32, Moves: 20, EndReason: storage.EndFinished},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	m := NewHistoryModel(store, "2048", ViewRecent, 100, 30)
	if len(m.runs) != 3 || m.runs[0].MaxTile != 32 {
		t.Fatalf("recent runs = %+v", m.runs)
	}
	if m.stats == nil || m.stats.BestTile != 1024 {
		t.Errorf("stats = %+v", m.stats)
	}

	next, _ := m.Update(runes("l"))
	m = next.(HistoryModel)
	if m.view != ViewBest {
		t.Fatalf("view = %v, want Best", m.view)
	}
	if m.runs[0].MaxTile != 1024 {
		t.Errorf("best first = %d, want 1024", m.runs[0].MaxTile)
	}

	out := m.View()
	for _, want := range []string{"2048 RUNS - Best", "Best tile: 1024"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
}
