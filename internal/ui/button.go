// internal/ui/button.go
package ui

import (
	"image/color"

	"go-coin-rush/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	X, Y, Width, Height float32
	Text                string
	TextColor           color.Color
	BgColor             color.Color
	HoverColor          color.Color
	fontFace            font.Face
}

// NewButton создает новую кнопку.
func NewButton(x, y, width, height float32, label string, fontFace font.Face) *Button {
	return &Button{
		X:          x,
		Y:          y,
		Width:      width,
		Height:     height,
		Text:       label,
		TextColor:  config.TextLightColor,
		BgColor:    config.ButtonColor,
		HoverColor: config.ButtonHoverColor,
		fontFace:   fontFace,
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= b.X && fx < b.X+b.Width && fy >= b.Y && fy < b.Y+b.Height
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image) {
	bg := b.BgColor
	if b.Contains(ebiten.CursorPosition()) {
		bg = b.HoverColor
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width, b.Height, bg, false)
	vector.StrokeRect(screen, b.X, b.Y, b.Width, b.Height, 1, config.ButtonStrokeColor, false)

	bounds, _ := font.BoundString(b.fontFace, b.Text)
	textWidth := (bounds.Max.X - bounds.Min.X).Ceil()
	textHeight := (bounds.Max.Y - bounds.Min.Y).Ceil()
	textX := int(b.X) + (int(b.Width)-textWidth)/2
	textY := int(b.Y) + (int(b.Height)+textHeight)/2
	text.Draw(screen, b.Text, b.fontFace, textX, textY, b.TextColor)
}
