// internal/defs/types.go
package defs

import "go-mine-digger/internal/tile"

// ScaledWeightDef is one depth-scaled weight as written in the JSON table.
type ScaledWeightDef struct {
	Kind  string  `json:"kind"`
	Base  float64 `json:"base"`
	Scale float64 `json:"scale"`
	Floor float64 `json:"floor"`
}

// OreTableDef mirrors the JSON layout of an ore generation table.
type OreTableDef struct {
	Base      map[string]float64 `json:"base"`
	DirtFloor float64            `json:"dirt_floor"`
	DirtTotal float64            `json:"dirt_total"`
	Scaled    []ScaledWeightDef  `json:"scaled"`
}

// OreRule recomputes one kind's weight below the scaling offset:
// max(Floor, Base + effectiveDepth*Scale).
type OreRule struct {
	Kind  tile.Kind
	Base  float64
	Scale float64
	Floor float64
}

// OreTable is the validated table the terrain generator samples from.
// Base is indexed in tile.Generated order.
type OreTable struct {
	Base      []float64
	DirtFloor float64
	DirtTotal float64
	Rules     []OreRule
}

// Rule returns the scaling rule for a kind, if any.
func (t *OreTable) Rule(k tile.Kind) (OreRule, bool) {
	for _, r := range t.Rules {
		if r.Kind == k {
			return r, true
		}
	}
	return OreRule{}, false
}
