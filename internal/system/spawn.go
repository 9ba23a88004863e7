// internal/system/spawn.go
package system

import (
	"go-coin-rush/internal/component"
	"go-coin-rush/internal/config"
)

// RandomSource — источник случайных чисел для спавна (utils.PRNGService).
type RandomSource interface {
	Intn(n int) int
	Float64() float64
}

// Spawner создаёт монеты и врагов.
type Spawner struct {
	rng RandomSource
}

func NewSpawner(rng RandomSource) *Spawner {
	return &Spawner{rng: rng}
}

// GenerateCoins создаёт n монет в случайных клетках сетки.
func (s *Spawner) GenerateCoins(n int) []component.Coin {
	coins := make([]component.Coin, 0, n)
	for i := 0; i < n; i++ {
		coins = append(coins, component.Coin{
			X:    float64(s.rng.Intn(config.CoinGridCells)) * config.CoinGridStep,
			Y:    float64(s.rng.Intn(config.CoinGridCells)) * config.CoinGridStep,
			Size: config.CoinSize,
		})
	}
	return coins
}

// GenerateEnemy создаёт врага в случайной точке; скорость растёт линейно от счёта.
func (s *Spawner) GenerateEnemy(score int) component.Enemy {
	return component.Enemy{
		Box: component.Box{
			X:    s.rng.Float64() * config.EnemySpawnRange,
			Y:    s.rng.Float64() * config.EnemySpawnRange,
			Size: config.EnemySize,
		},
		Speed: EnemySpeedForScore(score),
	}
}

// EnemySpeedForScore — скорость нового врага при данном счёте.
func EnemySpeedForScore(score int) float64 {
	return config.BaseEnemySpeed + float64(score)*config.EnemySpeedFactor
}

