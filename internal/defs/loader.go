// internal/defs/loader.go
package defs

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"go-mine-digger/internal/tile"
)

//go:embed ores.json
var defaultOreTable []byte

// ErrBadOreTable is returned when a table parses but cannot drive generation.
var ErrBadOreTable = errors.New("invalid ore table")

// DefaultOreTable returns the table shipped with the game.
func DefaultOreTable() *OreTable {
	t, err := ParseOreTable(defaultOreTable)
	if err != nil {
		// the embedded table is covered by tests
		panic(err)
	}
	return t
}

// LoadOreTable reads an ore table from disk. An empty path yields the default table.
func LoadOreTable(path string) (*OreTable, error) {
	if path == "" {
		return DefaultOreTable(), nil
	}
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ore table file: %w", err)
	}
	t, err := ParseOreTable(file)
	if err != nil {
		return nil, err
	}
	log.Printf("[Defs] Loaded ore table from %s (%d scaled kinds)", path, len(t.Rules))
	return t, nil
}

// ParseOreTable decodes and validates a JSON ore table.
func ParseOreTable(data []byte) (*OreTable, error) {
	var def OreTableDef
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ore table: %w", err)
	}

	t := &OreTable{
		Base:      make([]float64, len(tile.Generated)),
		DirtFloor: def.DirtFloor,
		DirtTotal: def.DirtTotal,
	}

	total := 0.0
	for i, k := range tile.Generated {
		w, ok := def.Base[k.String()]
		if !ok {
			return nil, fmt.Errorf("%w: missing base weight for %s", ErrBadOreTable, k)
		}
		if w < 0 {
			return nil, fmt.Errorf("%w: negative base weight for %s", ErrBadOreTable, k)
		}
		t.Base[i] = w
		total += w
	}
	if total <= 0 {
		return nil, fmt.Errorf("%w: base weights sum to zero", ErrBadOreTable)
	}

	for _, s := range def.Scaled {
		k, err := tile.ParseKind(s.Kind)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadOreTable, err)
		}
		if k == tile.Dirt || k == tile.Empty {
			return nil, fmt.Errorf("%w: %s cannot be depth-scaled", ErrBadOreTable, k)
		}
		if _, dup := t.Rule(k); dup {
			return nil, fmt.Errorf("%w: duplicate rule for %s", ErrBadOreTable, k)
		}
		if s.Floor < 0 {
			return nil, fmt.Errorf("%w: negative floor for %s", ErrBadOreTable, k)
		}
		t.Rules = append(t.Rules, OreRule{Kind: k, Base: s.Base, Scale: s.Scale, Floor: s.Floor})
	}

	return t, nil
}
