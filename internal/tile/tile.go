// internal/tile/tile.go

// Package tile defines the materials of the mine grid.
package tile

import (
	"fmt"
	"image/color"
)

// Kind is the material of a grid cell.
type Kind uint8

const (
	Empty Kind = iota
	Dirt
	Rock
	BronzeOre
	SilverOre
	GoldOre
	DiamondOre
	kindCount
)

// RockDurability is what Rock reports; it is never decremented.
const RockDurability = 9999

var maxDurability = [kindCount]int{
	Empty:      0,
	Dirt:       1,
	Rock:       RockDurability,
	BronzeOre:  3,
	SilverOre:  5,
	GoldOre:    8,
	DiamondOre: 12,
}

var names = [kindCount]string{
	Empty:      "empty",
	Dirt:       "dirt",
	Rock:       "rock",
	BronzeOre:  "bronze",
	SilverOre:  "silver",
	GoldOre:    "gold",
	DiamondOre: "diamond",
}

var colors = [kindCount]color.RGBA{
	Empty:      {20, 15, 10, 255},
	Dirt:       {139, 69, 19, 255},
	Rock:       {80, 80, 80, 255},
	BronzeOre:  {205, 127, 50, 255},
	SilverOre:  {192, 192, 192, 255},
	GoldOre:    {255, 215, 0, 255},
	DiamondOre: {180, 250, 255, 255},
}

var glowColors = [kindCount]color.RGBA{
	BronzeOre:  {205, 127, 50, 255},
	SilverOre:  {192, 192, 192, 255},
	GoldOre:    {255, 215, 0, 255},
	DiamondOre: {0, 255, 255, 255},
}

// Ores lists the collectable kinds in shop order.
var Ores = []Kind{BronzeOre, SilverOre, GoldOre, DiamondOre}

// Generated lists the kinds the generator may place, in weight-table order.
var Generated = []Kind{Dirt, Rock, BronzeOre, SilverOre, GoldOre, DiamondOre}

func (k Kind) String() string {
	if k < kindCount {
		return names[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind is the inverse of String.
func ParseKind(s string) (Kind, error) {
	for k, n := range names {
		if n == s {
			return Kind(k), nil
		}
	}
	return Empty, fmt.Errorf("unknown tile kind %q", s)
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool { return k < kindCount }

// MaxDurability is the durability a freshly generated cell of this kind has.
func (k Kind) MaxDurability() int {
	if k < kindCount {
		return maxDurability[k]
	}
	return 0
}

// IsOre reports whether the kind is collected into the inventory.
func (k Kind) IsOre() bool {
	return k >= BronzeOre && k <= DiamondOre
}

// Destructible reports whether digging can ever clear the cell.
func (k Kind) Destructible() bool {
	return k != Empty && k != Rock && k < kindCount
}

// Color is the base block color.
func (k Kind) Color() color.RGBA {
	if k < kindCount {
		return colors[k]
	}
	return colors[Dirt]
}

// Glow returns the pulse color for ore kinds.
func (k Kind) Glow() (color.RGBA, bool) {
	if !k.IsOre() {
		return color.RGBA{}, false
	}
	return glowColors[k], true
}

// Cell is one grid position. Kept small so a row is a flat value buffer.
type Cell struct {
	Kind       Kind
	Durability int16
}

// NewCell returns a cell at full durability.
func NewCell(k Kind) Cell {
	return Cell{Kind: k, Durability: int16(k.MaxDurability())}
}

// Damaged reports whether a destructible cell has lost durability.
func (c Cell) Damaged() bool {
	return c.Kind.Destructible() && int(c.Durability) < c.Kind.MaxDurability()
}

// Health is the remaining durability fraction in [0,1].
func (c Cell) Health() float64 {
	full := c.Kind.MaxDurability()
	if full <= 0 {
		return 0
	}
	h := float64(c.Durability) / float64(full)
	if h < 0 {
		return 0
	}
	if h > 1 {
		return 1
	}
	return h
}
