// pkg/render/field_renderer.go
package render

import (
	"image/color"

	"go-coin-rush/internal/component"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FieldView — то, что рендерер читает у игры. Реализуется app.Game.
type FieldView interface {
	Player() component.Player
	Coins() []component.Coin
	Enemies() []component.Enemy
	Walls() []component.Wall
	IsGameOver() bool
}

// FieldRenderer рисует игровое поле: стены, монеты, врагов и игрока.
type FieldRenderer struct {
	size   float32
	colors FieldColors
}

func NewFieldRenderer(size float32, colors FieldColors) *FieldRenderer {
	return &FieldRenderer{size: size, colors: colors}
}

// Draw отрисовывает поле в левом верхнем углу screen.
func (r *FieldRenderer) Draw(screen *ebiten.Image, view FieldView) {
	vector.DrawFilledRect(screen, 0, 0, r.size, r.size, r.colors.BackgroundColor, false)

	for _, w := range view.Walls() {
		r.drawBox(screen, w, r.colors.WallColor)
	}
	for _, c := range view.Coins() {
		r.drawBox(screen, c, r.colors.CoinColor)
	}
	for _, e := range view.Enemies() {
		r.drawBox(screen, e.Box, r.colors.EnemyColor)
	}

	playerColor := r.colors.PlayerColor
	if view.IsGameOver() {
		playerColor = DarkenColor(playerColor)
	}
	r.drawBox(screen, view.Player().Box, playerColor)

	vector.StrokeRect(screen, 0, 0, r.size, r.size, r.colors.StrokeWidth, DarkenColor(r.colors.WallColor), false)
}

func (r *FieldRenderer) drawBox(screen *ebiten.Image, b component.Box, c color.RGBA) {
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.Size), float32(b.Size), c, false)
}
