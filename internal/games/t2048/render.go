package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/board"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3
)

// Smallest screen the board and HUD fit into.
var (
	minScreenW = board.DefaultSize*cellWidth + 3
	minScreenH = hudHeight + 1 + board.DefaultSize*cellHeight + 2
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	size := g.board.Size()
	boardW := size*cellWidth + 1  // +1 for right border
	boardH := size*cellHeight + 1 // +1 for bottom border

	area := core.NewRect((g.screenW-boardW)/2, hudHeight+1, boardW, boardH)

	g.renderHUD(dst, area.X, area.W)
	g.renderGrid(dst, area.X, area.Y, size)
	g.renderTiles(dst, area.X, area.Y)
	g.renderOverlays(dst, area)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, move counter and max tile.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "2048"
	dst.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow)

	dst.DrawText(boardX, 1, fmt.Sprintf("Moves: %d", g.moves))

	maxStr := fmt.Sprintf("Max: %d", g.board.MaxTile())
	dst.DrawText(max(boardX, boardX+boardW-len(maxStr)), 1, maxStr)

	status := "Playing"
	switch {
	case g.board.IsTerminal():
		status = "Finished"
	case g.paused:
		status = "Paused"
	}
	dst.DrawTextColored(boardX+(boardW-len(status))/2, 2, status, core.ColorGray)
}

// renderGrid draws the cell borders.
func (g *Game) renderGrid(dst *core.Screen, boardX, boardY, size int) {
	for y := range size + 1 {
		for x := range size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == size:
				corner = '┐'
			case y == size && x == 0:
				corner = '└'
			case y == size && x == size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, core.ColorGray)

			if x < size {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGray)
				}
			}
			if y < size {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}
}

// renderTiles draws the tiles, mid-slide when animating.
func (g *Game) renderTiles(dst *core.Screen, boardX, boardY int) {
	inner := cellWidth - 1
	for _, s := range g.anim.sprites(g.board.TilesForRender()) {
		x := boardX + core.Round(s.Col*cellWidth) + 1
		y := boardY + core.Round(s.Row*cellHeight) + 1

		label := strconv.Itoa(s.Number)
		if s.Highlight && len(label)+2 <= inner {
			label = "[" + label + "]"
		}
		pad := core.Clamp((inner-len(label))/2, 0, inner)
		dst.DrawTextColored(x+pad, y, label, TileColor(s.Number))
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, area core.Rect) {
	if g.board.IsTerminal() {
		maxStr := fmt.Sprintf("Max tile: %d", g.board.MaxTile())
		g.drawOverlay(dst, area, "GAME OVER", maxStr, "Press R to restart")
		return
	}

	if g.paused {
		g.drawOverlay(dst, area, "PAUSED", "Press P to resume")
	}
}

// drawOverlay draws a text box centred over area.
func (g *Game) drawOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	box := area.Centered(maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, core.ColorBrightWhite)

	centerX, _ := box.Center()
	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// TileColor returns the colour a tile number is drawn with.
func TileColor(n int) core.Color {
	switch n {
	case 2:
		return core.ColorWhite
	case 4:
		return core.ColorBrightWhite
	case 8:
		return core.ColorOrange
	case 16:
		return core.ColorYellow
	case 32:
		return core.ColorRed
	case 64:
		return core.ColorBrightRed
	case 128:
		return core.ColorBrightYellow
	case 256:
		return core.ColorBrightGreen
	case 512:
		return core.ColorGreen
	case 1024:
		return core.ColorBrightCyan
	case 2048:
		return core.ColorBrightMagenta
	default:
		return core.ColorMagenta
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD or drag: Move | P: Pause | X: Finish | R: Restart | Q: Quit"
}
