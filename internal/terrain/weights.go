// internal/terrain/weights.go
package terrain

import (
	"go-mine-digger/internal/config"
	"go-mine-digger/internal/defs"
	"go-mine-digger/internal/tile"
)

// WeightsAt returns the sampling weights for a row, in tile.Generated order.
// Above the scaling offset the base table is used unchanged.
func WeightsAt(table *defs.OreTable, depth int) []float64 {
	weights := make([]float64, len(table.Base))
	copy(weights, table.Base)

	eff := depth - config.DepthScaleOffset
	if eff <= 0 {
		return weights
	}

	others := 0.0
	for i, k := range tile.Generated {
		if k == tile.Dirt {
			continue
		}
		if r, ok := table.Rule(k); ok {
			w := r.Base + float64(eff)*r.Scale
			if w < r.Floor {
				w = r.Floor
			}
			weights[i] = w
		}
		others += weights[i]
	}

	dirt := table.DirtTotal - others
	if dirt < table.DirtFloor {
		dirt = table.DirtFloor
	}
	weights[dirtIndex] = dirt
	return weights
}

var dirtIndex = func() int {
	for i, k := range tile.Generated {
		if k == tile.Dirt {
			return i
		}
	}
	panic("tile.Generated has no dirt")
}()
