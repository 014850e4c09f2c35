// internal/terrain/terrain.go

// Package terrain generates the mine rows on demand and owns every cell in them.
package terrain

import (
	"go-mine-digger/internal/config"
	"go-mine-digger/internal/defs"
	"go-mine-digger/internal/tile"
	"go-mine-digger/internal/utils"
)

// rowsPerChunk is how many rows share one backing allocation.
const rowsPerChunk = 64

// Terrain is a sparse, depth-indexed set of generated rows.
// rows[d] is nil until row d is generated; each row is a flat slice of
// cells carved out of a shared chunk.
type Terrain struct {
	table   *defs.OreTable
	rng     *utils.PRNGService
	columns int

	rows  [][]tile.Cell
	arena []tile.Cell

	frontier int // highest row generated through EnsureGenerated/Advance, -1 when none
	pending  int // highest row requested; rows up to here are owed
}

// New creates an empty terrain. Rows are generated lazily.
func New(columns int, table *defs.OreTable, rng *utils.PRNGService) *Terrain {
	if table == nil {
		table = defs.DefaultOreTable()
	}
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}
	return &Terrain{
		table:    table,
		rng:      rng,
		columns:  columns,
		frontier: -1,
		pending:  -1,
	}
}

// Columns is the fixed width of every row.
func (t *Terrain) Columns() int { return t.columns }

// Frontier is the highest depth generated by EnsureGenerated or Advance.
func (t *Terrain) Frontier() int { return t.frontier }

// Pending is how many requested rows are still owed.
func (t *Terrain) Pending() int {
	if t.pending <= t.frontier {
		return 0
	}
	return t.pending - t.frontier
}

// HasRow reports whether the row at depth exists.
func (t *Terrain) HasRow(depth int) bool {
	return depth >= 0 && depth < len(t.rows) && t.rows[depth] != nil
}

// GenerateRow fills the row at depth. It is a no-op if the row exists.
func (t *Terrain) GenerateRow(depth int) {
	if depth < 0 || t.HasRow(depth) {
		return
	}
	for len(t.rows) <= depth {
		t.rows = append(t.rows, nil)
	}

	row := t.allocRow()
	if depth < config.SafeShaftDepth {
		for x := range row {
			row[x] = tile.NewCell(tile.Dirt)
		}
	} else {
		weights := WeightsAt(t.table, depth)
		rng := t.rng.Derive(depth)
		for x := range row {
			row[x] = tile.NewCell(tile.Generated[rng.ChooseWeighted(weights)])
		}
	}
	t.rows[depth] = row
}

func (t *Terrain) allocRow() []tile.Cell {
	n := len(t.arena)
	if cap(t.arena)-n < t.columns {
		t.arena = make([]tile.Cell, 0, t.columns*rowsPerChunk)
		n = 0
	}
	t.arena = t.arena[:n+t.columns]
	return t.arena[n : n+t.columns : n+t.columns]
}

// EnsureGenerated generates every row from the frontier up to target inclusive.
// A target at or behind the frontier changes nothing.
func (t *Terrain) EnsureGenerated(target int) {
	if target <= t.frontier {
		return
	}
	for y := t.frontier + 1; y <= target; y++ {
		t.GenerateRow(y)
	}
	t.frontier = target
	if t.pending < t.frontier {
		t.pending = t.frontier
	}
}

// Request records a generation target without generating anything yet.
func (t *Terrain) Request(target int) {
	if target > t.pending {
		t.pending = target
	}
}

// Advance generates at most budget owed rows and returns how many it made.
// Whatever is left stays owed for the next call.
func (t *Terrain) Advance(budget int) int {
	owed := t.Pending()
	if owed == 0 || budget <= 0 {
		return 0
	}
	if owed > budget {
		owed = budget
	}
	t.EnsureGenerated(t.frontier + owed)
	return owed
}

// Cell returns the cell at (col, depth). Positions outside generated rows
// read as full-durability dirt with ok=false.
func (t *Terrain) Cell(col, depth int) (tile.Cell, bool) {
	if col < 0 || col >= t.columns || !t.HasRow(depth) {
		return tile.NewCell(tile.Dirt), false
	}
	return t.rows[depth][col], true
}

// DamageTile removes amount durability from a cell. Rock, empty and
// ungenerated cells ignore it. When durability runs out the cell becomes
// empty and the kind it had is returned with destroyed=true.
func (t *Terrain) DamageTile(col, depth, amount int) (kind tile.Kind, destroyed bool) {
	if amount <= 0 || col < 0 || col >= t.columns || !t.HasRow(depth) {
		return tile.Empty, false
	}
	c := &t.rows[depth][col]
	if !c.Kind.Destructible() {
		return c.Kind, false
	}

	kind = c.Kind
	remaining := int(c.Durability) - amount
	if remaining > 0 {
		c.Durability = int16(remaining)
		return kind, false
	}
	*c = tile.Cell{Kind: tile.Empty}
	return kind, true
}
