// internal/system/player_system.go
package system

import (
	"go-coin-rush/internal/component"
	"go-coin-rush/internal/utils"
)

// Direction — направление шага игрока
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "none"
}

// Delta возвращает смещение по осям для шага длиной step.
func (d Direction) Delta(step float64) (float64, float64) {
	switch d {
	case DirUp:
		return 0, -step
	case DirDown:
		return 0, step
	case DirLeft:
		return -step, 0
	case DirRight:
		return step, 0
	}
	return 0, 0
}

// MovePlayer сдвигает игрока на step в направлении dir в пределах поля bounds.
// Если новая позиция задевает стену или упирается в край поля, возвращается false.
func MovePlayer(p component.Player, dir Direction, step float64, walls []component.Wall, bounds float64) (component.Player, bool) {
	if dir == DirNone {
		return p, false
	}
	dx, dy := dir.Delta(step)
	maxPos := bounds - p.Size
	if maxPos < 0 {
		maxPos = 0
	}
	proposed := p.Box.Moved(
		utils.Clamp(p.X+dx, 0, maxPos),
		utils.Clamp(p.Y+dy, 0, maxPos),
	)
	if proposed == p.Box || CollidesAny(proposed, walls) {
		return p, false
	}
	p.Box = proposed
	return p, true
}
