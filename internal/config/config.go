// internal/config/config.go
package config

import "image/color"

// Balance.
const (
	MaxDeltaTime = 0.06

	NodeDefaultSpeed  = 75.0
	NodeBaseHP        = 100.0
	NodeSizeRatio     = 0.0375 // of screen height
	NodeRotationSpeed = 30.0   // degrees per second

	PickupLifetime            = 10.0
	PickupCollectDelay        = 0.1
	PickupMinCount            = 5
	PickupCountVariance       = 6 // count is PickupMinCount + rand[0, variance)
	PickupMinSpawnRadiusRatio = 0.0125
	PickupMaxSpawnRadiusRatio = 0.05
	PickupSizeRatio           = 0.0075

	PointsMultiplierMax = 5
	PointsPerNode       = 100
	PointsPerBossLevel  = 500

	HealthDefault            = 10.0
	HealthUpgradeCost        = 50
	HealthUpgradeAmount      = 1.0
	RegenUpgradeCost         = 100
	RegenUpgradeAmount       = 0.1
	HealthDepletionBase      = 0.1
	HealthDepletionInterval  = 0.3
	HealthDepletionPerLevel  = 0.2
	DamageZoneDefaultSize    = 70.0
	DamageZoneUpgradeCost    = 75
	DamageZoneUpgradeAmount  = 10.0
	DamageZoneMaxSize        = 300.0
	DamagePerTickDefault     = 50.0
	DamageUpgradeCost        = 60
	DamageUpgradeAmount      = 5.0
	DamageInterval           = 1.5
	DamageSquareDiagonal     = 1.414
	DamageBaseHealthCost     = 0.5
	DamageBossCostMultiplier = 8.0
	DamageCostPerLevel       = 0.2

	BossSpeed          = 35.0
	BossHPBase         = 200.0
	BossHPPerLevel     = 100.0
	BossSizeRatio      = 0.15
	BossSpawnOffset    = 1.5 // of boss size, outside the screen edge
	LevelDuration      = 60.0
	MinLevel           = 1
	OffscreenMargin    = 200.0
	MaxProgressPercent = 100.0

	SpawnEdgeOffset       = 50.0
	SpawnTargetVariance   = 150.0
	SpawnHPPerLevel       = 0.2
	SpawnMinInterval      = 0.5
	SpawnBaseInterval     = 2.0
	SpawnIntervalPerLevel = 0.15
	SpawnChanceSquare     = 60 // 0-59
	SpawnChanceCircle     = 90 // 60-89, rest hexagon
)

// Effects.
const (
	MaxParticles          = 500
	MaxCollectTrails      = 100
	CollectTrailDuration  = 1.0
	PickupSpawnAnimTime   = 0.45
	ParticleLifetime      = 0.6
	ParticleCount         = 8
	ParticleSpeedMin      = 50.0
	ParticleSpeedMax      = 150.0
	ParticleGravity       = 200.0
	ParticleSizeScaling   = 3.0
	ParticleColorVariance = 20
	ShakeIntensity        = 8.0
	ShakeDuration         = 0.15
)

// Layout ratios, relative to the screen.
const (
	ButtonWidthRatio   = 0.2
	ButtonHeightRatio  = 0.07
	ButtonSpacingRatio = 0.01
	TitleYRatio        = 0.2
	SubtitleYRatio     = 0.35
	FooterYRatio       = 0.9
	StatsXRatio        = 0.1
	StatsYRatio        = 0.3
	StatsSpacing       = 28
	HUDMargin          = 16
	HUDBarWidth        = 220
	HUDBarHeight       = 14
)

var (
	BackgroundColor   = color.RGBA{40, 40, 40, 255}
	OverlayColor      = color.RGBA{0, 0, 0, 160}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	TextDimColor      = color.RGBA{150, 150, 150, 255}
	TitleColor        = color.RGBA{255, 255, 255, 255}
	GameOverColor     = color.RGBA{230, 41, 55, 255}
	LevelDoneColor    = color.RGBA{255, 203, 0, 255}
	ButtonNormalColor = color.RGBA{60, 60, 70, 255}
	ButtonHoverColor  = color.RGBA{90, 90, 110, 255}
	ButtonPressColor  = color.RGBA{40, 40, 50, 255}
	ButtonStroke      = color.RGBA{200, 200, 200, 255}
	ZoneColor         = color.RGBA{0, 228, 48, 180}
	HealthColor       = color.RGBA{230, 41, 55, 255}
	ProgressColor     = color.RGBA{70, 130, 180, 255}
	PickupColor       = color.RGBA{255, 215, 0, 255}
	ShapeColors       = []color.RGBA{
		{102, 191, 255, 255}, // circle
		{255, 109, 194, 255}, // square
		{0, 228, 48, 255},    // hexagon
		{230, 41, 55, 255},   // boss
	}
)
