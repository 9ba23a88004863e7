// internal/state/pause_state.go
package state

import (
	"go-coin-rush/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает предыдущее состояние: тики не идут, поле рисуется под затемнением.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	fontFace      font.Face
}

func NewPauseState(sm *StateMachine, prevState State, fontFace font.Face) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		fontFace:      fontFace,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.CanvasSize, config.CanvasSize, config.OverlayColor, false)
	text.Draw(screen, "PAUSED", s.fontFace, 78, 100, config.TextLightColor)
}

func (s *PauseState) Exit() {}
