// internal/ui/hud.go
package ui

import (
	"fmt"

	"go-coin-rush/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// HUDData — значения, которые показывает панель под полем.
type HUDData struct {
	Score        int
	Health       int
	MaxHealth    int
	SurvivalTime int
	BestScore    int
	BestSurvival int
}

// HUD — панель со счётом, здоровьем и временем.
type HUD struct {
	Y        float32
	fontFace font.Face
	health   *PlayerHealthIndicator
}

func NewHUD(y float32, fontFace font.Face) *HUD {
	return &HUD{
		Y:        y,
		fontFace: fontFace,
		health:   NewPlayerHealthIndicator(config.ScreenWidth-70, y+8),
	}
}

func (h *HUD) Draw(screen *ebiten.Image, data HUDData) {
	vector.DrawFilledRect(screen, 0, h.Y, config.ScreenWidth, config.HUDHeight, config.HUDColor, false)

	lineHeight := h.fontFace.Metrics().Height.Ceil()
	y := int(h.Y) + lineHeight
	text.Draw(screen, fmt.Sprintf("Score: %d", data.Score), h.fontFace, 6, y, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Time Survived: %ds", data.SurvivalTime), h.fontFace, 6, y+lineHeight, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Best: %d / %ds", data.BestScore, data.BestSurvival), h.fontFace, 6, y+2*lineHeight, config.TextLightColor)

	h.health.Draw(screen, data.Health, data.MaxHealth)
}
