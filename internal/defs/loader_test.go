package defs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go-mine-digger/internal/tile"
)

func TestDefaultOreTable(t *testing.T) {
	table := DefaultOreTable()
	want := []float64{71, 10, 8, 4, 1, 1}
	for i, w := range want {
		if table.Base[i] != w {
			t.Errorf("base weight for %s: got %v, want %v", tile.Generated[i], table.Base[i], w)
		}
	}
	if table.DirtFloor != 10 {
		t.Errorf("dirt floor: got %v, want 10", table.DirtFloor)
	}
	for _, k := range []tile.Kind{tile.Rock, tile.BronzeOre, tile.SilverOre} {
		r, ok := table.Rule(k)
		if !ok || r.Scale >= 0 {
			t.Errorf("%s should decay with depth, got %+v", k, r)
		}
	}
	for _, k := range []tile.Kind{tile.GoldOre, tile.DiamondOre} {
		r, ok := table.Rule(k)
		if !ok || r.Scale <= 0 {
			t.Errorf("%s should grow with depth, got %+v", k, r)
		}
	}
}

func TestParseOreTableErrors(t *testing.T) {
	cases := map[string]string{
		"syntax":        `{`,
		"missing base":  `{"base":{"dirt":1}}`,
		"unknown kind":  `{"base":{"dirt":1,"rock":1,"bronze":1,"silver":1,"gold":1,"diamond":1},"scaled":[{"kind":"mithril"}]}`,
		"scaled dirt":   `{"base":{"dirt":1,"rock":1,"bronze":1,"silver":1,"gold":1,"diamond":1},"scaled":[{"kind":"dirt"}]}`,
		"zero weights":  `{"base":{"dirt":0,"rock":0,"bronze":0,"silver":0,"gold":0,"diamond":0}}`,
		"negative base": `{"base":{"dirt":-1,"rock":1,"bronze":1,"silver":1,"gold":1,"diamond":1}}`,
	}
	for name, data := range cases {
		if _, err := ParseOreTable([]byte(data)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}

	_, err := ParseOreTable([]byte(`{"base":{"dirt":1}}`))
	if !errors.Is(err, ErrBadOreTable) {
		t.Errorf("expected ErrBadOreTable, got %v", err)
	}
}

func TestLoadOreTableFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ores.json")
	data := `{"base":{"dirt":50,"rock":50,"bronze":0,"silver":0,"gold":0,"diamond":0},"dirt_floor":10,"dirt_total":100}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	table, err := LoadOreTable(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.Base[1] != 50 || len(table.Rules) != 0 {
		t.Errorf("unexpected table: %+v", table)
	}

	if _, err := LoadOreTable(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
	if table, err := LoadOreTable(""); err != nil || table == nil {
		t.Errorf("empty path should give default table, got %v", err)
	}
}
