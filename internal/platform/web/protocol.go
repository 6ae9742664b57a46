// Package web serves 2048 over WebSocket. Every connection owns one board:
// JSON commands come in, render frames go out.
package web

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/games/t2048/board"
)

// ErrUnknownCommand is returned for a command type the server does not know.
var ErrUnknownCommand = errors.New("web: unknown command")

// Command types sent by clients.
const (
	CmdMove    = "move"
	CmdSwipe   = "swipe"
	CmdFinish  = "finish"
	CmdRestart = "restart"
	CmdState   = "state"
)

// Message types sent by the server.
const (
	MsgFrame = "frame"
	MsgError = "error"
)

// Command is a client request.
type Command struct {
	Type      string `json:"type"`
	Direction string `json:"direction,omitempty"`
	DX        int    `json:"dx,omitempty"`
	DY        int    `json:"dy,omitempty"`
}

// Cell is a board coordinate on the wire.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// TileView is one entry of the render projection.
type TileView struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Number int    `json:"number"`
	State  string `json:"state"`
	From   *Cell  `json:"from,omitempty"`
	Class  string `json:"class"`
}

// Frame is the board as seen after a command.
type Frame struct {
	Type      string     `json:"type"`
	SessionID string     `json:"session_id"`
	Moves     int        `json:"moves"`
	MaxTile   int        `json:"max_tile"`
	Moved     bool       `json:"moved"`
	Terminal  bool       `json:"terminal"`
	LegalMove bool       `json:"legal_move"`
	Tiles     []TileView `json:"tiles"`
}

// ErrorMessage reports a rejected command.
type ErrorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

// ClassName returns the CSS classes for a placed tile:
// "tile tile-<n|super> tile-<col>-<row> tile-<state>".
func ClassName(p board.Placed) string {
	n := "super"
	if p.Tile.Number <= 2048 {
		n = strconv.Itoa(p.Tile.Number)
	}
	return fmt.Sprintf("tile tile-%s tile-%d-%d tile-%s", n, p.Pos.Col, p.Pos.Row, p.Tile.State)
}

// tileViews converts the render projection to wire form.
func tileViews(placed []board.Placed) []TileView {
	out := make([]TileView, 0, len(placed))
	for _, p := range placed {
		v := TileView{
			Row:    p.Pos.Row,
			Col:    p.Pos.Col,
			Number: p.Tile.Number,
			State:  p.Tile.State.String(),
			Class:  ClassName(p),
		}
		if p.Tile.Previous != nil {
			v.From = &Cell{Row: p.Tile.Previous.Row, Col: p.Tile.Previous.Col}
		}
		out = append(out, v)
	}
	return out
}
