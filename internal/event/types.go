// internal/event/types.go
package event

import "go-mine-digger/internal/tile"

const (
	TileDamaged    EventType = "TileDamaged"   // every hit, including the last
	TileDestroyed  EventType = "TileDestroyed" // a hit that cleared the tile
	OreCredited    EventType = "OreCredited"
	MineEntered    EventType = "MineEntered"
	MineExited     EventType = "MineExited"
	TorchTaken     EventType = "TorchTaken"
	MerchantTalk   EventType = "MerchantTalk"
	OreSold        EventType = "OreSold"
	ShovelUpgraded EventType = "ShovelUpgraded"
)

// TileData is the payload of TileDamaged and TileDestroyed.
type TileData struct {
	Col, Depth int
	Kind       tile.Kind
}

// SaleData is the payload of OreSold.
type SaleData struct {
	Earned int
	Money  int
}

// UpgradeData is the payload of ShovelUpgraded.
type UpgradeData struct {
	Level int
	Cost  int
}
