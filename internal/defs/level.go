// internal/defs/level.go
package defs

import "go-coin-rush/internal/component"

// LevelDefinition holds the starting layout of a run.
type LevelDefinition struct {
	Name      string            `json:"name"`
	Player    component.Player  `json:"player"`
	Walls     []component.Wall  `json:"walls"`
	Enemies   []component.Enemy `json:"enemies"`
	CoinCount int               `json:"coin_count"`
}
