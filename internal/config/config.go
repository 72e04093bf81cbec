// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	// Стартовый состав
	InitialUnitCount = 8
	ParkingSpaces    = 3

	// Длительности фаз юнита, в секундах
	UnstoreDuration = 10.0
	PrepareDuration = 5.0
	PatrolDuration  = 30.0
	StoreDuration   = 10.0

	// Враги
	EnemyFlightDuration = 30.0
	InitialMeanSpawn    = 10.0 // средний интервал между врагами на старте
	SpawnRampFactor     = 0.97 // сжатие среднего интервала после каждого спавна
	SpawnSpread         = 5.0  // сигма нормального распределения интервала
	MinSpawnInterval    = 1.0
	MaxSpawnInterval    = 10.0

	// Здоровье
	RepairPerSecond = 1.0 / 15.0
	HitDamage       = 0.25

	// UI
	PanelWidth       = 430
	PanelMargin      = 10
	UnitRowHeight    = 58
	ButtonHeight     = 22
	ButtonSpacing    = 6
	EnemyColumnX     = ScreenWidth - 260
	EnemyRowHeight   = 34
	EnemyBarWidth    = 200
	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0
	TitleFontSize    = 18
	RegularFontSize  = 14
)

var (
	BackgroundColor     = color.RGBA{20, 20, 30, 255}
	PanelColor          = color.RGBA{32, 34, 46, 235}
	TextLightColor      = color.RGBA{240, 240, 240, 255}
	TextDarkColor       = color.RGBA{20, 20, 30, 255}
	ButtonColor         = color.RGBA{70, 100, 120, 220}
	ButtonHoverColor    = color.RGBA{90, 130, 155, 220}
	ButtonDisabledColor = color.RGBA{55, 58, 66, 220}
	EnemyBarColor       = color.RGBA{220, 60, 60, 220}
	EnemyBarBack        = color.RGBA{60, 40, 40, 220}
	HealthBarColor      = color.RGBA{50, 205, 50, 220}
	HealthBarBack       = color.RGBA{40, 60, 40, 220}
	ParkingFreeColor    = color.RGBA{70, 130, 180, 220}
	ParkingFullColor    = color.RGBA{194, 178, 128, 255}
	GameOverColor       = color.RGBA{220, 60, 60, 255}

	// Цвета боевых типов A-D
	CombatTypeColors = []color.RGBA{
		{255, 50, 50, 255},  // A
		{50, 255, 50, 255},  // B
		{50, 100, 255, 255}, // C
		{180, 50, 230, 255}, // D
	}
)
