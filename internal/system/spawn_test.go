package system

import (
	"math"
	"testing"

	"go-coin-rush/internal/config"
	"go-coin-rush/internal/utils"
)

// fixedSource — детерминированный источник для проверки формул спавна.
type fixedSource struct {
	ints   []int
	floats []float64
}

func (f *fixedSource) Intn(n int) int {
	v := f.ints[0] % n
	f.ints = f.ints[1:]
	return v
}

func (f *fixedSource) Float64() float64 {
	v := f.floats[0]
	f.floats = f.floats[1:]
	return v
}

func TestGenerateCoinsUsesGrid(t *testing.T) {
	s := NewSpawner(&fixedSource{ints: []int{0, 17, 5, 9}})
	coins := s.GenerateCoins(2)

	if len(coins) != 2 {
		t.Fatalf("len(coins) = %d, want 2", len(coins))
	}
	if coins[0] != box(0, 170, config.CoinSize) {
		t.Errorf("coins[0] = %+v, want {0 170 10}", coins[0])
	}
	if coins[1] != box(50, 90, config.CoinSize) {
		t.Errorf("coins[1] = %+v, want {50 90 10}", coins[1])
	}
}

func TestGenerateCoinsStaysInBounds(t *testing.T) {
	s := NewSpawner(utils.NewPRNGService(42))
	for _, c := range s.GenerateCoins(500) {
		if c.X < 0 || c.Y < 0 || c.Right() > config.CanvasSize || c.Bottom() > config.CanvasSize {
			t.Fatalf("coin out of bounds: %+v", c)
		}
		if math.Mod(c.X, config.CoinGridStep) != 0 || math.Mod(c.Y, config.CoinGridStep) != 0 {
			t.Fatalf("coin is not grid aligned: %+v", c)
		}
	}
}

func TestGenerateEnemy(t *testing.T) {
	s := NewSpawner(&fixedSource{floats: []float64{0.5, 0.25}})
	e := s.GenerateEnemy(5)

	if e.X != 90 || e.Y != 45 {
		t.Errorf("enemy position = (%v, %v), want (90, 45)", e.X, e.Y)
	}
	if e.Size != config.EnemySize {
		t.Errorf("enemy size = %v, want %v", e.Size, config.EnemySize)
	}
	if !nearly(e.Speed, 1.5) {
		t.Errorf("enemy speed = %v, want 1.5", e.Speed)
	}
}

func TestEnemySpeedForScore(t *testing.T) {
	tests := []struct {
		score int
		want  float64
	}{
		{0, 1},
		{1, 1.1},
		{10, 2},
		{25, 3.5},
	}
	for _, tt := range tests {
		if got := EnemySpeedForScore(tt.score); !nearly(got, tt.want) {
			t.Errorf("EnemySpeedForScore(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestSeededSpawnerIsReproducible(t *testing.T) {
	a := NewSpawner(utils.NewPRNGService(7)).GenerateCoins(10)
	b := NewSpawner(utils.NewPRNGService(7)).GenerateCoins(10)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("coin %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
