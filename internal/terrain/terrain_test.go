package terrain

import (
	"testing"

	"go-mine-digger/internal/config"
	"go-mine-digger/internal/defs"
	"go-mine-digger/internal/tile"
	"go-mine-digger/internal/utils"
)

func newTestTerrain(seed int64) *Terrain {
	return New(config.Columns, defs.DefaultOreTable(), utils.NewPRNGService(seed))
}

func rowSnapshot(t *testing.T, tr *Terrain, depth int) []tile.Cell {
	t.Helper()
	row := make([]tile.Cell, tr.Columns())
	for x := range row {
		c, ok := tr.Cell(x, depth)
		if !ok {
			t.Fatalf("row %d col %d not generated", depth, x)
		}
		row[x] = c
	}
	return row
}

// setCell plants a known cell for digging tests.
func setCell(tr *Terrain, col, depth int, k tile.Kind) {
	tr.GenerateRow(depth)
	tr.rows[depth][col] = tile.NewCell(k)
}

func TestSafeShaftIsDirt(t *testing.T) {
	tr := newTestTerrain(1)
	tr.EnsureGenerated(config.SafeShaftDepth - 1)
	for d := 0; d < config.SafeShaftDepth; d++ {
		for _, c := range rowSnapshot(t, tr, d) {
			if c.Kind != tile.Dirt || int(c.Durability) != tile.Dirt.MaxDurability() {
				t.Fatalf("row %d: expected full dirt, got %+v", d, c)
			}
		}
	}
}

func TestGenerateRowIdempotent(t *testing.T) {
	tr := newTestTerrain(7)
	for _, d := range []int{0, 12, 40, 300} {
		tr.GenerateRow(d)
		before := rowSnapshot(t, tr, d)
		tr.GenerateRow(d)
		after := rowSnapshot(t, tr, d)
		for x := range before {
			if before[x] != after[x] {
				t.Fatalf("row %d col %d changed: %+v -> %+v", d, x, before[x], after[x])
			}
		}
	}
}

func TestGenerateRowKeepsDamage(t *testing.T) {
	tr := newTestTerrain(7)
	setCell(tr, 3, 15, tile.GoldOre)
	tr.DamageTile(3, 15, 1)
	tr.GenerateRow(15)
	c, _ := tr.Cell(3, 15)
	if int(c.Durability) != tile.GoldOre.MaxDurability()-1 {
		t.Errorf("regenerating an existing row must not reset it, got %+v", c)
	}
}

func TestRowsDependOnlyOnSeedAndDepth(t *testing.T) {
	a := newTestTerrain(55)
	b := newTestTerrain(55)
	a.EnsureGenerated(60)
	b.GenerateRow(60)
	ra, rb := rowSnapshot(t, a, 60), rowSnapshot(t, b, 60)
	for x := range ra {
		if ra[x] != rb[x] {
			t.Fatalf("col %d differs: %+v vs %+v", x, ra[x], rb[x])
		}
	}
}

func TestEnsureGeneratedMonotonic(t *testing.T) {
	tr := newTestTerrain(3)
	tr.EnsureGenerated(30)
	if tr.Frontier() != 30 {
		t.Fatalf("frontier: got %d, want 30", tr.Frontier())
	}
	snap := rowSnapshot(t, tr, 25)
	tr.DamageTile(0, 25, 1)
	snap[0], _ = tr.Cell(0, 25)

	tr.EnsureGenerated(10)
	tr.EnsureGenerated(30)
	if tr.Frontier() != 30 {
		t.Errorf("frontier moved backwards: %d", tr.Frontier())
	}
	after := rowSnapshot(t, tr, 25)
	for x := range snap {
		if snap[x] != after[x] {
			t.Fatalf("col %d altered by smaller target", x)
		}
	}
	for d := 0; d <= 30; d++ {
		if !tr.HasRow(d) {
			t.Errorf("row %d missing", d)
		}
	}
	if tr.HasRow(31) {
		t.Error("row 31 generated beyond target")
	}
}

func TestAdvanceCarriesRemainder(t *testing.T) {
	tr := newTestTerrain(4)
	tr.Request(19)
	if got := tr.Pending(); got != 20 {
		t.Fatalf("pending: got %d, want 20", got)
	}
	if n := tr.Advance(8); n != 8 || tr.Frontier() != 7 {
		t.Fatalf("first advance: n=%d frontier=%d", n, tr.Frontier())
	}
	if n := tr.Advance(8); n != 8 || tr.Frontier() != 15 {
		t.Fatalf("second advance: n=%d frontier=%d", n, tr.Frontier())
	}
	if n := tr.Advance(8); n != 4 || tr.Frontier() != 19 {
		t.Fatalf("third advance: n=%d frontier=%d", n, tr.Frontier())
	}
	if n := tr.Advance(8); n != 0 {
		t.Errorf("nothing owed, advanced %d", n)
	}
	tr.Request(5)
	if tr.Pending() != 0 {
		t.Error("request behind frontier should owe nothing")
	}
}

func TestRockIsIndestructible(t *testing.T) {
	tr := newTestTerrain(1)
	setCell(tr, 4, 20, tile.Rock)
	for i := 0; i < 50; i++ {
		kind, destroyed := tr.DamageTile(4, 20, 1)
		if destroyed || kind != tile.Rock {
			t.Fatalf("rock destroyed on hit %d", i)
		}
	}
	c, _ := tr.Cell(4, 20)
	if c.Kind != tile.Rock || int(c.Durability) != tile.RockDurability {
		t.Errorf("rock changed: %+v", c)
	}
}

func TestDamageEmptyIsNoop(t *testing.T) {
	tr := newTestTerrain(1)
	setCell(tr, 0, 3, tile.Dirt)
	if _, destroyed := tr.DamageTile(0, 3, 1); !destroyed {
		t.Fatal("dirt should break in one hit")
	}
	if kind, destroyed := tr.DamageTile(0, 3, 1); destroyed || kind != tile.Empty {
		t.Errorf("empty cell reported %v, %v", kind, destroyed)
	}
	if _, destroyed := tr.DamageTile(0, 999, 1); destroyed {
		t.Error("ungenerated cell destroyed")
	}
	if _, destroyed := tr.DamageTile(-1, 3, 1); destroyed {
		t.Error("negative column destroyed")
	}
}

func TestDurabilityNeedsExactlyKHits(t *testing.T) {
	for _, k := range []tile.Kind{tile.Dirt, tile.BronzeOre, tile.SilverOre, tile.GoldOre, tile.DiamondOre} {
		tr := newTestTerrain(1)
		setCell(tr, 2, 30, k)
		hits := k.MaxDurability()
		for i := 1; i <= hits; i++ {
			kind, destroyed := tr.DamageTile(2, 30, 1)
			if i < hits && destroyed {
				t.Fatalf("%s destroyed early on hit %d", k, i)
			}
			if i == hits {
				if !destroyed || kind != k {
					t.Fatalf("%s: hit %d reported (%v, %v)", k, i, kind, destroyed)
				}
			}
		}
		c, _ := tr.Cell(2, 30)
		if c.Kind != tile.Empty || c.Durability != 0 {
			t.Errorf("%s: expected empty cell, got %+v", k, c)
		}
	}
}

func TestOutOfRangeReadsAsSolidDirt(t *testing.T) {
	tr := newTestTerrain(1)
	tr.EnsureGenerated(5)
	for _, pos := range [][2]int{{-1, 0}, {config.Columns, 0}, {0, 6}, {0, -1}} {
		c, ok := tr.Cell(pos[0], pos[1])
		if ok {
			t.Errorf("%v reported as generated", pos)
		}
		if c.Kind != tile.Dirt {
			t.Errorf("%v: expected dirt default, got %v", pos, c.Kind)
		}
	}
}

func TestRowsDoNotOverlap(t *testing.T) {
	tr := newTestTerrain(1)
	tr.EnsureGenerated(rowsPerChunk * 2)
	for d := 0; d <= rowsPerChunk*2; d++ {
		if got := cap(tr.rows[d]); got != config.Columns {
			t.Fatalf("row %d capacity %d, appends would bleed into the next row", d, got)
		}
	}
	setCell(tr, config.Columns-1, 10, tile.DiamondOre)
	if c, _ := tr.Cell(0, 11); c.Kind != tile.Dirt {
		t.Errorf("write to row 10 leaked into row 11: %+v", c)
	}
}

func TestDeepRowsAreOreRich(t *testing.T) {
	tr := newTestTerrain(11)
	count := func(from, to int) (precious, total int) {
		for d := from; d < to; d++ {
			tr.GenerateRow(d)
			for _, c := range rowSnapshot(t, tr, d) {
				if c.Kind == tile.GoldOre || c.Kind == tile.DiamondOre {
					precious++
				}
				total++
			}
		}
		return
	}
	shallow, n1 := count(10, 60)
	deep, n2 := count(400, 450)
	if float64(deep)/float64(n2) <= float64(shallow)/float64(n1) {
		t.Errorf("expected more gold/diamond at depth: shallow=%d/%d deep=%d/%d", shallow, n1, deep, n2)
	}
}
