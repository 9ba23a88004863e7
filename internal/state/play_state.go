// internal/state/play_state.go
package state

import (
	"go-coin-rush/internal/app"
	"go-coin-rush/internal/config"
	"go-coin-rush/internal/system"
	"go-coin-rush/internal/ui"
	"go-coin-rush/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// keyBindings — клавиши движения; WASD и стрелки равноправны.
var keyBindings = []struct {
	key ebiten.Key
	dir system.Direction
}{
	{ebiten.KeyW, system.DirUp},
	{ebiten.KeyArrowUp, system.DirUp},
	{ebiten.KeyS, system.DirDown},
	{ebiten.KeyArrowDown, system.DirDown},
	{ebiten.KeyA, system.DirLeft},
	{ebiten.KeyArrowLeft, system.DirLeft},
	{ebiten.KeyD, system.DirRight},
	{ebiten.KeyArrowRight, system.DirRight},
}

// PlayState — состояние игры: ввод, тики и отрисовка поля
type PlayState struct {
	sm            *StateMachine
	game          *app.Game
	stats         *app.RunStats
	renderer      *render.FieldRenderer
	hud           *ui.HUD
	restartButton *ui.Button
	fontFace      font.Face
}

func NewPlayState(sm *StateMachine, game *app.Game, stats *app.RunStats, fontFace font.Face) *PlayState {
	colors := render.FieldColors{
		BackgroundColor: config.BackgroundColor,
		PlayerColor:     config.PlayerColor,
		CoinColor:       config.CoinColor,
		EnemyColor:      config.EnemyColor,
		WallColor:       config.WallColor,
		StrokeWidth:     1,
	}
	return &PlayState{
		sm:       sm,
		game:     game,
		stats:    stats,
		renderer: render.NewFieldRenderer(config.CanvasSize, colors),
		hud:      ui.NewHUD(config.CanvasSize, fontFace),
		restartButton: ui.NewButton(
			(config.CanvasSize-config.RestartButtonWidth)/2,
			(config.CanvasSize-config.RestartButtonHeight)/2+16,
			config.RestartButtonWidth,
			config.RestartButtonHeight,
			"Restart",
			fontFace,
		),
		fontFace: fontFace,
	}
}

func (p *PlayState) Enter() {}

func (p *PlayState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.sm.SetState(NewPauseState(p.sm, p, p.fontFace))
		return
	}

	if p.game.IsGameOver() {
		restart := inpututil.IsKeyJustPressed(ebiten.KeyR)
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && p.restartButton.Contains(ebiten.CursorPosition()) {
			restart = true
		}
		if restart {
			p.game.Restart()
		}
		return
	}

	for _, b := range keyBindings {
		if isKeyRepeated(b.key) {
			p.game.HandleMove(b.dir)
		}
	}
	p.game.Update(deltaTime)
}

// isKeyRepeated повторяет нажатие при удержании, как keydown в браузере.
func isKeyRepeated(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= config.KeyRepeatDelay && (d-config.KeyRepeatDelay)%config.KeyRepeatEvery == 0
}

func (p *PlayState) Draw(screen *ebiten.Image) {
	p.renderer.Draw(screen, p.game)

	player := p.game.Player()
	p.hud.Draw(screen, ui.HUDData{
		Score:        p.game.Score(),
		Health:       player.Health,
		MaxHealth:    p.game.Level.Player.Health,
		SurvivalTime: p.game.State().SurvivalTime,
		BestScore:    p.stats.BestScore,
		BestSurvival: p.stats.BestSurvival,
	})

	if p.game.IsGameOver() {
		vector.DrawFilledRect(screen, 0, 0, config.CanvasSize, config.CanvasSize, config.OverlayColor, false)
		text.Draw(screen, "GAME OVER", p.fontFace, 68, 90, config.EnemyColor)
		p.restartButton.Draw(screen)
	}
}

func (p *PlayState) Exit() {}
