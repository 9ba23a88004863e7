// internal/app/game.go
package app

import (
	"go-coin-rush/internal/component"
	"go-coin-rush/internal/config"
	"go-coin-rush/internal/defs"
	"go-coin-rush/internal/event"
	"go-coin-rush/internal/system"
	"go-coin-rush/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Game holds the authoritative mutable state of one run and drives its ticks.
// Update and HandleMove are expected to be called from a single goroutine.
type Game struct {
	Level           defs.LevelDefinition
	Spawner         *system.Spawner
	EventDispatcher *event.Dispatcher

	player         component.Player
	coins          []component.Coin
	enemies        []component.Enemy
	walls          []component.Wall
	score          int
	coinsCollected int
	state          component.GameState

	enemyTimer    float64
	survivalTimer float64
	log           *logrus.Entry
}

// NewGame initializes a new run from the level definition.
func NewGame(level defs.LevelDefinition, spawner *system.Spawner, dispatcher *event.Dispatcher) *Game {
	if spawner == nil {
		panic("spawner cannot be nil")
	}
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}
	g := &Game{
		Level:           level,
		Spawner:         spawner,
		EventDispatcher: dispatcher,
		log:             logger.Log.WithField("component", "game"),
	}
	g.reset()
	g.log.WithFields(logrus.Fields{
		"level":   level.Name,
		"coins":   len(g.coins),
		"enemies": len(g.enemies),
	}).Info("Game started")
	return g
}

// Restart returns the run to the level's starting state.
func (g *Game) Restart() {
	g.reset()
	g.log.WithField("level", g.Level.Name).Info("Game restarted")
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameRestarted})
}

func (g *Game) reset() {
	g.player = g.Level.Player
	g.walls = append([]component.Wall(nil), g.Level.Walls...)
	g.enemies = append([]component.Enemy(nil), g.Level.Enemies...)
	g.coins = g.Spawner.GenerateCoins(g.Level.CoinCount)
	g.score = 0
	g.coinsCollected = 0
	g.state = component.GameState{}
	g.enemyTimer = 0
	g.survivalTimer = 0
}

// Update advances the run clock by deltaTime seconds and processes every
// enemy and survival tick that fell into it.
func (g *Game) Update(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}

	g.enemyTimer += deltaTime
	for g.enemyTimer >= config.EnemyTickInterval {
		g.enemyTimer -= config.EnemyTickInterval
		g.enemyTick()
	}

	g.survivalTimer += deltaTime
	for g.survivalTimer >= config.SurvivalTickInterval {
		g.survivalTimer -= config.SurvivalTickInterval
		g.survivalTick()
	}
}

// enemyTick — шаг преследования и проверка касания.
func (g *Game) enemyTick() {
	if g.state.IsGameOver {
		return
	}
	g.enemies = system.PursueEnemies(g.enemies, g.player.Box, g.walls)
	if system.CheckEnemyCollision(g.player.Box, g.enemies) {
		g.hitPlayer("pursuit")
	}
}

func (g *Game) survivalTick() {
	if g.state.IsGameOver {
		return
	}
	g.state = system.IncrementSurvivalTime(g.state)
	g.EventDispatcher.Dispatch(event.Event{Type: event.SurvivalTick, Data: g.state})
}

// HandleMove moves the player one step. It reports whether the player moved.
func (g *Game) HandleMove(dir system.Direction) bool {
	if g.state.IsGameOver {
		return false
	}
	moved, ok := system.MovePlayer(g.player, dir, config.PlayerStep, g.walls, config.CanvasSize)
	if !ok {
		return false
	}

	result := system.CheckCoinCollision(moved.Box, g.coins)
	g.coins = result.UpdatedCoins
	if result.ScoreDelta > 0 {
		g.collectCoin(result.ScoreDelta)
	}

	g.player = moved
	if system.CheckEnemyCollision(g.player.Box, g.enemies) {
		g.hitPlayer("move")
	}
	return true
}

// collectCoin начисляет очки, добавляет новую монету и волну врагов
// размером с число уже собранных монет.
func (g *Game) collectCoin(delta int) {
	g.score += delta
	g.coinsCollected++
	g.coins = append(g.coins, g.Spawner.GenerateCoins(1)...)

	g.log.WithFields(logrus.Fields{
		"score":     g.score,
		"collected": g.coinsCollected,
	}).Debug("Coin collected")
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.CoinCollected,
		Data: event.CoinCollectedData{Score: g.score, CoinsCollected: g.coinsCollected},
	})

	for i := 0; i < g.coinsCollected; i++ {
		enemy := g.Spawner.GenerateEnemy(g.score)
		g.enemies = append(g.enemies, enemy)
		g.EventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: enemy})
	}
}

func (g *Game) hitPlayer(source string) {
	var dead bool
	g.player, dead = system.ApplyContactDamage(g.player)

	g.log.WithFields(logrus.Fields{
		"health": g.player.Health,
		"source": source,
	}).Debug("Player hit")
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.PlayerHit,
		Data: event.PlayerHitData{Health: g.player.Health, Source: source},
	})

	if dead {
		g.state.IsGameOver = true
		g.log.WithFields(logrus.Fields{
			"score":         g.score,
			"survival_time": g.state.SurvivalTime,
		}).Info("Game over")
		g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: g.state})
	}
}

func (g *Game) Player() component.Player { return g.player }

func (g *Game) Coins() []component.Coin { return g.coins }

func (g *Game) Enemies() []component.Enemy { return g.enemies }

func (g *Game) Walls() []component.Wall { return g.walls }

func (g *Game) Score() int { return g.score }

func (g *Game) CoinsCollected() int { return g.coinsCollected }

func (g *Game) State() component.GameState { return g.state }

func (g *Game) IsGameOver() bool { return g.state.IsGameOver }
