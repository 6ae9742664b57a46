package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

func TestWriteRunBoard(t *testing.T) {
	var buf bytes.Buffer
	r := storage.Run{MaxTile: 8, Moves: 12, Board: "8,0/2,4"}
	if err := writeRunBoard(&buf, r); err != nil {
		t.Fatalf("writeRunBoard() failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Final board (max 8, 12 moves):", "     8     .", "     2     4"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteRunBoardEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := writeRunBoard(&buf, storage.Run{}); err != nil {
		t.Fatalf("writeRunBoard() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No board stored") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestWriteRunBoardCorrupt(t *testing.T) {
	var buf bytes.Buffer
	err := writeRunBoard(&buf, storage.Run{Board: "8,0/2"})
	if !errors.Is(err, storage.ErrBadBoard) {
		t.Errorf("error = %v, want ErrBadBoard", err)
	}
}
