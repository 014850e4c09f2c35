// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth   = 640
	ScreenHeight  = 480
	TileSize      = 32
	Columns       = ScreenWidth / TileSize
	Rows          = ScreenHeight / TileSize
	TPS           = 60
	MaxDeltaTime  = 0.06
	UIPanelHeight = 60

	SafeShaftDepth   = 10 // rows above this are plain dirt
	DepthScaleOffset = 20 // ore weights start shifting below this row
	LookAheadRows    = 10
	InitialRows      = Rows + 5
	RowsPerFrame     = 8 // cap for generate-ahead, remainder carries to next frame

	SpawnColumn = Columns / 2
	SpawnDepth  = 5

	MoveInterval    = 150 * time.Millisecond
	DigBaseInterval = 250 * time.Millisecond
	DigLevelBonus   = 20 * time.Millisecond
	DigMinInterval  = 50 * time.Millisecond
	EntryHold       = 300 * time.Millisecond
	HitAmount       = 1

	IdleFrameTime   = 300 * time.Millisecond
	ActiveFrameTime = 80 * time.Millisecond

	ParticlePoolSize  = 256
	ParticleLife      = 255
	ParticleLifeStep  = 8
	ParticleGravity   = 0.3
	ParticleSize      = 4
	ParticlesPerBurst = 8

	CameraSmoothing = 0.1

	InteractDistance = 2.0

	ShovelCostPerLevel = 100
)

// Light mask radii and peak intensities.
const (
	AmbientLightRadius     = 150
	AmbientLightIntensity  = 100
	FixtureLightRadius     = 100
	FixtureLightIntensity  = 150
	TorchLargeRadius       = 250
	TorchLargeIntensity    = 255
	TorchSmallRadius       = 80
	TorchSmallIntensity    = 200
	LightMaskRingStep      = 2
	AmbientCornerOffset    = 50
	FixtureLightAnchorSkew = 16
)

var (
	MineDarkness = color.RGBA{10, 10, 15, 255}
	HubDarkness  = color.RGBA{40, 40, 50, 255}

	EmptyColor    = color.RGBA{20, 15, 10, 255}
	FloorColor    = color.RGBA{45, 40, 35, 255}
	WallColor     = color.RGBA{80, 70, 60, 255}
	CounterColor  = color.RGBA{120, 80, 40, 255}
	MerchantColor = color.RGBA{150, 50, 200, 255}
	HoleColor     = color.RGBA{15, 10, 10, 255}
	TorchStick    = color.RGBA{139, 69, 19, 255}
	TorchFlame    = color.RGBA{255, 150, 0, 255}
	OutlineColor  = color.RGBA{0, 0, 0, 50}

	BarBackColor = color.RGBA{255, 0, 0, 255}
	BarFillColor = color.RGBA{0, 255, 0, 255}

	PanelColor       = color.RGBA{20, 20, 25, 255}
	PanelStroke      = color.RGBA{100, 100, 100, 255}
	ButtonColor      = color.RGBA{80, 80, 100, 255}
	ButtonHoverColor = color.RGBA{110, 110, 130, 255}
	ButtonStroke     = color.RGBA{200, 200, 200, 255}
	TextLightColor   = color.RGBA{255, 255, 255, 255}
	MoneyColor       = color.RGBA{0, 255, 0, 255}
	OverlayColor     = color.RGBA{0, 0, 0, 150}
	InventoryOverlay = color.RGBA{0, 0, 0, 200}
	InventoryPanel   = color.RGBA{50, 40, 30, 255}
	InventoryStroke  = color.RGBA{200, 180, 150, 255}
	ShopBackground   = color.RGBA{30, 30, 40, 255}

	MoleBody  = color.RGBA{139, 69, 19, 255}
	MoleEye   = color.RGBA{0, 0, 0, 255}
	MoleClaws = color.RGBA{200, 200, 200, 255}
)
