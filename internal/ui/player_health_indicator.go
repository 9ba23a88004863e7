// internal/ui/player_health_indicator.go
package ui

import (
	"go-coin-rush/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	HeartSize    = 8.0
	HeartSpacing = 3.0
)

// PlayerHealthIndicator отображает здоровье игрока рядом квадратиков-сердец.
type PlayerHealthIndicator struct {
	X, Y float32
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// Draw рисует maxHealth ячеек, из них health закрашены.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	for j := 0; j < maxHealth; j++ {
		x := i.X + float32(j)*(HeartSize+HeartSpacing)
		fill := config.HeartEmptyColor
		if j < health {
			fill = config.HeartColor
		}
		vector.DrawFilledRect(screen, x, i.Y, HeartSize, HeartSize, fill, false)
	}
}
