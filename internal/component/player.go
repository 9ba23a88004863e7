package component

// Player — аватар игрока. Здоровье 0 означает конец игры.
type Player struct {
	Box
	Health int `json:"health"`
}
