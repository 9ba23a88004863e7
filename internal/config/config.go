// internal/config/config.go
package config

import "image/color"

const (
	CanvasSize   = 200 // Сторона игрового поля в пикселях
	HUDHeight    = 56
	ScreenWidth  = CanvasSize
	ScreenHeight = CanvasSize + HUDHeight
	WindowScale  = 3
	MaxDeltaTime = 0.06

	PlayerStartX   = 20.0
	PlayerStartY   = 20.0
	PlayerSize     = 10.0
	PlayerHealth   = 3
	PlayerStep     = 10.0 // Сдвиг за одно нажатие клавиши
	KeyRepeatDelay = 15   // Тиков ebiten до автоповтора
	KeyRepeatEvery = 4

	CoinSize         = 10.0
	CoinGridStep     = 10.0
	CoinGridCells    = 18 // Монеты появляются в клетках [0, 18) * 10
	InitialCoinCount = 3

	EnemySize        = 10.0
	EnemySpawnRange  = 180.0
	BaseEnemySpeed   = 1.0
	EnemySpeedFactor = 0.1 // Прибавка к скорости за каждое очко

	EnemyTickInterval    = 0.5 // Секунды между шагами преследования
	SurvivalTickInterval = 1.0

	RestartButtonWidth  = 80
	RestartButtonHeight = 22
)

var (
	BackgroundColor   = color.RGBA{20, 20, 30, 255}
	HUDColor          = color.RGBA{35, 35, 50, 255}
	PlayerColor       = color.RGBA{255, 255, 255, 255}
	CoinColor         = color.RGBA{255, 215, 0, 255}
	EnemyColor        = color.RGBA{220, 60, 60, 255}
	WallColor         = color.RGBA{128, 128, 128, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	HeartColor        = color.RGBA{230, 40, 70, 255}
	HeartEmptyColor   = color.RGBA{70, 70, 80, 255}
	OverlayColor      = color.RGBA{0, 0, 0, 160}
	ButtonColor       = color.RGBA{70, 130, 180, 220}
	ButtonHoverColor  = color.RGBA{100, 160, 210, 240}
	ButtonStrokeColor = color.RGBA{240, 240, 240, 255}
)
