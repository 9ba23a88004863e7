// internal/app/stats.go
package app

import (
	"go-coin-rush/internal/component"
	"go-coin-rush/internal/event"
)

// RunStats собирает статистику между рестартами: лучший счёт и лучшее время.
type RunStats struct {
	Runs         int
	Hits         int
	BestScore    int
	BestSurvival int
}

// NewRunStats создаёт статистику и подписывает её на события диспетчера.
func NewRunStats(d *event.Dispatcher) *RunStats {
	s := &RunStats{Runs: 1}
	d.Subscribe(event.CoinCollected, s)
	d.Subscribe(event.PlayerHit, s)
	d.Subscribe(event.SurvivalTick, s)
	d.Subscribe(event.GameRestarted, s)
	return s
}

// OnEvent обрабатывает события, на которые подписана статистика.
func (s *RunStats) OnEvent(e event.Event) {
	switch e.Type {
	case event.CoinCollected:
		if data, ok := e.Data.(event.CoinCollectedData); ok && data.Score > s.BestScore {
			s.BestScore = data.Score
		}
	case event.PlayerHit:
		s.Hits++
	case event.SurvivalTick:
		if st, ok := e.Data.(component.GameState); ok && st.SurvivalTime > s.BestSurvival {
			s.BestSurvival = st.SurvivalTime
		}
	case event.GameRestarted:
		s.Runs++
	}
}
