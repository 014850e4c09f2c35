// internal/hub/hub.go

// Package hub holds the overworld map the actor walks between dives.
package hub

import (
	"errors"
	"fmt"
	"strings"

	"go-mine-digger/internal/actor"
	"go-mine-digger/internal/config"
	"go-mine-digger/internal/utils"
)

// Tile is one cell of the hub layout.
type Tile byte

const (
	Floor    Tile = '.'
	Wall     Tile = 'W'
	Counter  Tile = 'C'
	Merchant Tile = 'O'
	Hole     Tile = 'H'
	Torch    Tile = 't'
	Spawn    Tile = 'S'
)

// Layout is the default hub: a walled room with the merchant's counter in
// the middle, the mine entrance and a torch on the wall.
var Layout = []string{
	"WWWWWWWWWWWWWWWWWWWW",
	"W..................W",
	"W..WWWW......WWWW..W",
	"W..W............W..W",
	"W........C.........W",
	"W......CCOCC.......W",
	"W........C.........W",
	"W..W............W..W",
	"W..WWWW......WWWW..W",
	"W..................W",
	"W..t...............W",
	"W.......H..........W",
	"W.........S........W",
	"WWWWWWWWWWWWWWWWWWWW",
}

var ErrBadLayout = errors.New("invalid hub layout")

// Point is a grid position.
type Point struct {
	Col, Row int
}

// Map is a parsed hub. The torch and spawn markers are floor once parsed.
type Map struct {
	width, height int
	tiles         []Tile
	merchant      Point
	hole          Point
	spawn         Point
	torch         Point
	hasTorch      bool
}

// Parse reads a layout. Every row must have the same width and the map
// must contain a merchant and a hole.
func Parse(rows []string) (*Map, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrBadLayout)
	}
	m := &Map{
		width:  len(rows[0]),
		height: len(rows),
		spawn:  Point{config.Columns / 2, config.Rows / 2},
	}
	m.tiles = make([]Tile, 0, m.width*m.height)
	foundMerchant, foundHole := false, false

	for r, row := range rows {
		if len(row) != m.width {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrBadLayout, r, len(row), m.width)
		}
		for c := 0; c < len(row); c++ {
			t := Tile(row[c])
			switch t {
			case Merchant:
				m.merchant, foundMerchant = Point{c, r}, true
			case Hole:
				m.hole, foundHole = Point{c, r}, true
			case Torch:
				m.torch, m.hasTorch = Point{c, r}, true
				t = Floor
			case Spawn:
				m.spawn = Point{c, r}
				t = Floor
			case Floor, Wall, Counter:
			default:
				return nil, fmt.Errorf("%w: unknown tile %q at %d,%d", ErrBadLayout, row[c], c, r)
			}
			m.tiles = append(m.tiles, t)
		}
	}
	if !foundMerchant || !foundHole {
		return nil, fmt.Errorf("%w: merchant and hole are required", ErrBadLayout)
	}
	return m, nil
}

// Default parses Layout.
func Default() *Map {
	m, err := Parse(Layout)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Map) Width() int  { return m.width }
func (m *Map) Height() int { return m.height }

func (m *Map) Merchant() Point { return m.merchant }
func (m *Map) Hole() Point     { return m.hole }
func (m *Map) Spawn() Point    { return m.spawn }

// WallTorch reports where the torch hangs, if the map has one.
func (m *Map) WallTorch() (Point, bool) { return m.torch, m.hasTorch }

// At returns the tile at (col, row); everything outside the map is wall.
func (m *Map) At(col, row int) Tile {
	if col < 0 || row < 0 || col >= m.width || row >= m.height {
		return Wall
	}
	return m.tiles[row*m.width+col]
}

// Walkable reports whether the actor may stand on (col, row).
func (m *Map) Walkable(col, row int) bool {
	t := m.At(col, row)
	return t == Floor || t == Spawn
}

// Passability makes the hub a ground the actor can walk. Nothing here can be dug.
func (m *Map) Passability(col, row int) actor.Passability {
	if m.Walkable(col, row) {
		return actor.Open
	}
	return actor.Blocked
}

// Dig never clears anything in the hub.
func (m *Map) Dig(col, row, amount int) bool { return false }

// Near reports whether p is within interaction distance of (col, row).
func Near(p Point, col, row int) bool {
	return utils.GridDistance(col, row, p.Col, p.Row) < config.InteractDistance
}

// String renders the parsed map back to rows.
func (m *Map) String() string {
	var b strings.Builder
	for r := 0; r < m.height; r++ {
		for c := 0; c < m.width; c++ {
			b.WriteByte(byte(m.At(c, r)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
