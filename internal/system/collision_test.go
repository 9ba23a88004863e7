package system

import (
	"reflect"
	"testing"

	"go-coin-rush/internal/component"
)

func box(x, y, size float64) component.Box {
	return component.Box{X: x, Y: y, Size: size}
}

func TestCollides(t *testing.T) {
	tests := []struct {
		name string
		a, b component.Box
		want bool
	}{
		{"Overlapping", box(0, 0, 10), box(5, 5, 10), true},
		{"Far apart", box(0, 0, 10), box(100, 100, 10), false},
		{"Touching right edge", box(0, 0, 10), box(10, 0, 10), false},
		{"Touching bottom edge", box(0, 0, 10), box(0, 10, 10), false},
		{"Touching corner", box(0, 0, 10), box(10, 10, 10), false},
		{"Same box", box(0, 0, 10), box(0, 0, 10), true},
		{"Contained", box(0, 0, 20), box(5, 5, 2), true},
		{"Tiny overlap", box(0, 0, 10), box(9.5, 9.5, 10), true},
		{"Overlap on X only", box(0, 0, 10), box(5, 20, 10), false},
		{"Zero size", box(5, 5, 0), box(0, 0, 10), false},
		{"Negative size", box(5, 5, -3), box(0, 0, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collides(tt.a, tt.b); got != tt.want {
				t.Errorf("Collides(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Симметрия
			if got := Collides(tt.b, tt.a); got != tt.want {
				t.Errorf("Collides(%v, %v) = %v, want %v (swapped)", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestCollidesSymmetricGrid(t *testing.T) {
	a := box(20, 20, 10)
	for x := 0.0; x <= 40; x += 2.5 {
		for y := 0.0; y <= 40; y += 2.5 {
			b := box(x, y, 7)
			if Collides(a, b) != Collides(b, a) {
				t.Fatalf("asymmetric result for %v and %v", a, b)
			}
		}
	}
}

func TestCheckCoinCollision(t *testing.T) {
	player := box(0, 0, 10)

	t.Run("Collects and removes coin", func(t *testing.T) {
		coins := []component.Coin{box(0, 0, 10), box(100, 100, 10)}
		res := CheckCoinCollision(player, coins)
		if res.ScoreDelta != 1 {
			t.Errorf("ScoreDelta = %d, want 1", res.ScoreDelta)
		}
		want := []component.Coin{box(100, 100, 10)}
		if !reflect.DeepEqual(res.UpdatedCoins, want) {
			t.Errorf("UpdatedCoins = %v, want %v", res.UpdatedCoins, want)
		}
		// Вход не изменён
		if len(coins) != 2 || coins[0] != box(0, 0, 10) {
			t.Errorf("input coins were mutated: %v", coins)
		}
	})

	t.Run("Nothing collected", func(t *testing.T) {
		coins := []component.Coin{box(50, 50, 10)}
		res := CheckCoinCollision(player, coins)
		if res.ScoreDelta != 0 {
			t.Errorf("ScoreDelta = %d, want 0", res.ScoreDelta)
		}
		if !reflect.DeepEqual(res.UpdatedCoins, coins) {
			t.Errorf("UpdatedCoins = %v, want %v", res.UpdatedCoins, coins)
		}
	})

	t.Run("Several coins still give one point", func(t *testing.T) {
		coins := []component.Coin{box(0, 0, 10), box(60, 0, 10), box(5, 5, 10), box(0, 60, 10)}
		res := CheckCoinCollision(player, coins)
		if res.ScoreDelta != 1 {
			t.Errorf("ScoreDelta = %d, want 1", res.ScoreDelta)
		}
		want := []component.Coin{box(60, 0, 10), box(0, 60, 10)}
		if !reflect.DeepEqual(res.UpdatedCoins, want) {
			t.Errorf("UpdatedCoins = %v, want %v (order must be kept)", res.UpdatedCoins, want)
		}
	})

	t.Run("Empty input", func(t *testing.T) {
		res := CheckCoinCollision(player, nil)
		if res.ScoreDelta != 0 || len(res.UpdatedCoins) != 0 {
			t.Errorf("got %+v, want empty result", res)
		}
	})
}

func TestCheckEnemyCollision(t *testing.T) {
	player := box(0, 0, 10)
	enemy := func(x, y float64) component.Enemy {
		return component.Enemy{Box: box(x, y, 10), Speed: 1}
	}

	tests := []struct {
		name    string
		enemies []component.Enemy
		want    bool
	}{
		{"First enemy overlaps", []component.Enemy{enemy(0, 0), enemy(100, 100)}, true},
		{"Last enemy overlaps", []component.Enemy{enemy(100, 100), enemy(5, 5)}, true},
		{"No overlap", []component.Enemy{enemy(100, 100)}, false},
		{"Edge touch", []component.Enemy{enemy(10, 0)}, false},
		{"No enemies", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckEnemyCollision(player, tt.enemies); got != tt.want {
				t.Errorf("CheckEnemyCollision() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIncrementSurvivalTime(t *testing.T) {
	tests := []struct {
		name string
		in   component.GameState
		want component.GameState
	}{
		{"Running", component.GameState{SurvivalTime: 5}, component.GameState{SurvivalTime: 6}},
		{"Game over flag passes through", component.GameState{SurvivalTime: 5, IsGameOver: true}, component.GameState{SurvivalTime: 6, IsGameOver: true}},
		{"From zero", component.GameState{}, component.GameState{SurvivalTime: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.in
			if got := IncrementSurvivalTime(in); got != tt.want {
				t.Errorf("IncrementSurvivalTime(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
			if in != tt.in {
				t.Errorf("input was mutated: %+v", in)
			}
		})
	}

	t.Run("Applying n times adds n", func(t *testing.T) {
		s := component.GameState{}
		for i := 0; i < 2; i++ {
			s = IncrementSurvivalTime(s)
		}
		if s != (component.GameState{SurvivalTime: 2}) {
			t.Errorf("got %+v, want {2 false}", s)
		}
	})
}
