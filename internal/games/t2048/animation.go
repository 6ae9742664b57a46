package t2048

import (
	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/board"
)

// animationPhase is the current stage of the post-move animation.
type animationPhase int

const (
	phaseNone animationPhase = iota
	phaseSlide
	phasePop
)

// animation times the two phases that follow a move: tiles slide from their
// previous cell, then new and merged tiles pop.
type animation struct {
	slideTicks int
	popTicks   int

	phase animationPhase
	ticks int
	tiles []board.Placed // projection captured right after the move
}

func newAnimation(cfg config.AnimationConfig) animation {
	return animation{slideTicks: cfg.SlideTicks, popTicks: cfg.PopTicks}
}

func (a *animation) start(tiles []board.Placed) {
	a.tiles = tiles
	a.ticks = 0
	switch {
	case a.slideTicks > 0:
		a.phase = phaseSlide
	case a.popTicks > 0:
		a.phase = phasePop
	default:
		a.stop()
	}
}

func (a *animation) advance() {
	if a.phase == phaseNone {
		return
	}
	a.ticks++

	switch a.phase {
	case phaseSlide:
		if a.ticks < a.slideTicks {
			return
		}
		if a.popTicks > 0 {
			a.phase = phasePop
			a.ticks = 0
			return
		}
		a.stop()
	case phasePop:
		if a.ticks >= a.popTicks {
			a.stop()
		}
	}
}

func (a *animation) stop() {
	a.phase = phaseNone
	a.ticks = 0
	a.tiles = nil
}

func (a *animation) busy() bool {
	return a.phase != phaseNone
}

// progress returns how far the current phase is, from 0 to 1.
func (a *animation) progress() float64 {
	var total int
	switch a.phase {
	case phaseSlide:
		total = a.slideTicks
	case phasePop:
		total = a.popTicks
	default:
		return 1
	}
	if total <= 0 {
		return 1
	}
	p := float64(a.ticks) / float64(total)
	if p > 1 {
		p = 1
	}
	return p
}

// sprite is a tile at a fractional cell position.
type sprite struct {
	Row, Col  float64
	Number    int
	Highlight bool
}

// sprites returns what to draw this frame. During the slide every Static
// entry, ghosts included, moves from its previous cell; new and merged
// results appear once the slide ends and stay highlighted while popping.
func (a *animation) sprites(current []board.Placed) []sprite {
	if a.phase == phaseSlide {
		t := easeOutQuad(a.progress())
		var out []sprite
		for _, p := range a.tiles {
			if p.Tile.State != board.StateStatic {
				continue
			}
			from := p.Pos
			if p.Tile.Previous != nil {
				from = *p.Tile.Previous
			}
			out = append(out, sprite{
				Row:    core.Lerp(float64(from.Row), float64(p.Pos.Row), t),
				Col:    core.Lerp(float64(from.Col), float64(p.Pos.Col), t),
				Number: p.Tile.Number,
			})
		}
		return out
	}

	out := make([]sprite, 0, len(current))
	for _, p := range withoutGhosts(current) {
		out = append(out, sprite{
			Row:       float64(p.Pos.Row),
			Col:       float64(p.Pos.Col),
			Number:    p.Tile.Number,
			Highlight: a.phase == phasePop && p.Tile.State != board.StateStatic,
		})
	}
	return out
}

// withoutGhosts drops the pre-merge entry that follows each merged tile.
func withoutGhosts(placed []board.Placed) []board.Placed {
	out := make([]board.Placed, 0, len(placed))
	for i, p := range placed {
		if i > 0 && p.Tile.State == board.StateStatic {
			prev := placed[i-1]
			if prev.Tile.State == board.StateMerged && prev.Pos == p.Pos {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}
