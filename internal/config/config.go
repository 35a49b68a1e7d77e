// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	TicksPerSec  = 60

	InitialGold   = 250
	InitialHealth = 20
	KillBounty    = 10

	EnemyRadius      = 10.0
	TowerRadius      = 15.0
	ProjectileRadius = 5.0
	PathWidth        = 40.0
	PathClearance    = PathWidth/2 + TowerRadius // tower centre must stay this far from the path
	GridStep         = 50

	HealthBarWidth  = 30.0
	HealthBarHeight = 5.0
	HealthBarOffset = 20.0

	ClickCooldown = 150 // ms

	HUDHeight    = 32
	ToolbarY     = ScreenHeight - 45
	ButtonHeight = 32
)

var (
	BackgroundColor  = color.RGBA{34, 40, 49, 255}
	PathColor        = color.RGBA{160, 82, 45, 255}
	GridColor        = color.RGBA{255, 255, 255, 25}
	EnemyColor       = color.RGBA{46, 204, 113, 255}
	SlowedEnemyColor = color.RGBA{116, 185, 255, 255}
	HealthBarBack    = color.RGBA{192, 57, 43, 255}
	HealthBarFront   = color.RGBA{39, 174, 96, 255}
	RangeColor       = color.RGBA{255, 255, 255, 128}
	InvalidColor     = color.RGBA{255, 60, 60, 128}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	PanelColor       = color.RGBA{20, 20, 30, 220}
	ButtonColor      = color.RGBA{70, 130, 180, 220}
	ButtonHover      = color.RGBA{100, 160, 210, 230}
	ButtonDisabled   = color.RGBA{90, 90, 90, 200}
	GameOverColor    = color.RGBA{220, 60, 60, 255}
	BorderColor      = color.RGBA{70, 130, 180, 255}
	HitFlashColor    = color.RGBA{255, 255, 255, 255}
	BurstColor       = color.RGBA{241, 196, 15, 255}
	BuildPhaseColor  = color.RGBA{46, 204, 113, 255}
	WavePhaseColor   = color.RGBA{230, 126, 34, 255}
	PauseColor       = color.RGBA{70, 130, 180, 220}
	PlayColor        = color.RGBA{46, 204, 113, 220}
	HealthFullColor  = color.RGBA{52, 152, 219, 255}
	HealthLowColor   = color.RGBA{231, 76, 60, 255}
	HealthEmptyColor = color.RGBA{0, 0, 0, 255}

	SpeedButtonColors = []color.Color{
		color.RGBA{70, 130, 180, 220},  // x1
		color.RGBA{220, 60, 60, 220},   // x2
		color.RGBA{194, 178, 128, 255}, // x4
	}
	SpeedMultipliers = []int{1, 2, 4}
)
