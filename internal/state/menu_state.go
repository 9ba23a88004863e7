// internal/state/menu_state.go
package state

import (
	"go-coin-rush/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// MenuState — титульный экран, Space начинает игру
type MenuState struct {
	sm       *StateMachine
	newPlay  func() State
	fontFace font.Face
}

func NewMenuState(sm *StateMachine, fontFace font.Face, newPlay func() State) *MenuState {
	return &MenuState{sm: sm, newPlay: newPlay, fontFace: fontFace}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(m.newPlay())
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	text.Draw(screen, "COIN RUSH", m.fontFace, 68, 90, config.CoinColor)
	text.Draw(screen, "WASD / arrows to move", m.fontFace, 26, 130, config.TextLightColor)
	text.Draw(screen, "press SPACE to start", m.fontFace, 30, 150, config.TextLightColor)
}

func (m *MenuState) Exit() {}
