// internal/system/collision.go
package system

import "go-coin-rush/internal/component"

// CoinResult — итог проверки монет за один вызов.
type CoinResult struct {
	UpdatedCoins []component.Coin // Несобранные монеты в исходном порядке
	ScoreDelta   int              // 1, если собрана хотя бы одна монета, иначе 0
}

// Collides проверяет пересечение двух квадратов с положительной площадью.
// Касание краями столкновением не считается, вырожденная коробка (Size <= 0) не сталкивается ни с чем.
func Collides(a, b component.Box) bool {
	if !(a.Size > 0) || !(b.Size > 0) {
		return false
	}
	return a.X < b.Right() &&
		a.Right() > b.X &&
		a.Y < b.Bottom() &&
		a.Bottom() > b.Y
}

// CollidesAny сообщает, пересекает ли box хотя бы одну из коробок.
func CollidesAny(box component.Box, others []component.Box) bool {
	for _, o := range others {
		if Collides(box, o) {
			return true
		}
	}
	return false
}

// CheckCoinCollision убирает монеты под игроком.
// Входной срез не изменяется, результат всегда новый срез.
func CheckCoinCollision(player component.Box, coins []component.Coin) CoinResult {
	updated := make([]component.Coin, 0, len(coins))
	collected := false
	for _, coin := range coins {
		if Collides(player, coin) {
			collected = true
			continue
		}
		updated = append(updated, coin)
	}

	delta := 0
	if collected {
		delta = 1
	}
	return CoinResult{UpdatedCoins: updated, ScoreDelta: delta}
}

// CheckEnemyCollision возвращает true на первом враге, пересекающем игрока.
func CheckEnemyCollision(player component.Box, enemies []component.Enemy) bool {
	for _, enemy := range enemies {
		if Collides(player, enemy.Box) {
			return true
		}
	}
	return false
}

// IncrementSurvivalTime продвигает таймер выживания на один тик.
// Флаг конца игры не проверяется, это забота вызывающего.
func IncrementSurvivalTime(state component.GameState) component.GameState {
	state.SurvivalTime++
	return state
}
