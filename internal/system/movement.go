// internal/system/movement.go
package system

import (
	"math"

	"go-coin-rush/internal/component"
)

// PursueEnemies делает один шаг преследования для каждого врага.
// Враг движется к игроку по прямой со своей скоростью; шаг в стену отменяется.
func PursueEnemies(enemies []component.Enemy, player component.Box, walls []component.Wall) []component.Enemy {
	moved := make([]component.Enemy, len(enemies))
	for i, enemy := range enemies {
		moved[i] = StepEnemy(enemy, player, walls)
	}
	return moved
}

// StepEnemy возвращает врага после одного шага к игроку.
func StepEnemy(enemy component.Enemy, player component.Box, walls []component.Wall) component.Enemy {
	dx := player.X - enemy.X
	dy := player.Y - enemy.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist == 0 {
		return enemy
	}

	proposed := enemy.Box.Moved(
		enemy.X+(dx/dist)*enemy.Speed,
		enemy.Y+(dy/dist)*enemy.Speed,
	)
	if CollidesAny(proposed, walls) {
		return enemy
	}

	enemy.Box = proposed
	return enemy
}
