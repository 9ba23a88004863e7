package component

// GameState — компонент для хранения состояния забега
type GameState struct {
	SurvivalTime int  // Количество тиков таймера выживания
	IsGameOver   bool // Сбрасывается только явным рестартом
}
