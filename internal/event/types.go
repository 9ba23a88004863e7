// internal/event/types.go
package event

const (
	CoinCollected EventType = "CoinCollected" // Данные: CoinCollectedData
	EnemySpawned  EventType = "EnemySpawned"  // Данные: component.Enemy
	PlayerHit     EventType = "PlayerHit"     // Данные: PlayerHitData
	GameOver      EventType = "GameOver"      // Данные: component.GameState
	GameRestarted EventType = "GameRestarted"
	SurvivalTick  EventType = "SurvivalTick" // Данные: component.GameState
)

// CoinCollectedData — данные события CoinCollected
type CoinCollectedData struct {
	Score          int
	CoinsCollected int
}

// PlayerHitData — данные события PlayerHit
type PlayerHitData struct {
	Health int
	Source string // "move" или "pursuit"
}
