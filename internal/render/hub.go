// internal/render/hub.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-mine-digger/internal/config"
	"go-mine-digger/internal/hub"
	"go-mine-digger/internal/tile"
	"go-mine-digger/pkg/palette"
)

// DrawHub draws the overworld floor plan. The wall torch is drawn only
// while it still hangs there.
func DrawHub(dst *ebiten.Image, m *hub.Map, torchOnWall bool) {
	dst.Fill(config.FloorColor)
	ts := float32(config.TileSize)

	for r := 0; r < m.Height(); r++ {
		for c := 0; c < m.Width(); c++ {
			x, y := float32(c)*ts, float32(r)*ts
			switch m.At(c, r) {
			case hub.Wall:
				block(dst, x, y, ts, config.WallColor)
			case hub.Counter:
				block(dst, x, y, ts, config.CounterColor)
			case hub.Merchant:
				block(dst, x, y, ts, config.MerchantColor)
			case hub.Hole:
				block(dst, x, y, ts, tile.Dirt.Color())
				vector.DrawFilledRect(dst, x+8, y+8, ts-16, ts-16, config.HoleColor, false)
				// timber frame
				frame := palette.DarkenColor(config.CounterColor)
				vector.DrawFilledRect(dst, x+2, y+2, ts-4, 4, frame, false)
				vector.DrawFilledRect(dst, x+2, y+ts-6, ts-4, 4, frame, false)
				vector.DrawFilledRect(dst, x+2, y+2, 4, ts-4, frame, false)
				vector.DrawFilledRect(dst, x+ts-6, y+2, 4, ts-4, frame, false)
			}
		}
	}

	if p, ok := m.WallTorch(); ok && torchOnWall {
		x, y := float32(p.Col)*ts, float32(p.Row)*ts
		vector.DrawFilledRect(dst, x+14, y+16, 4, 12, config.TorchStick, false)
		vector.DrawFilledRect(dst, x+12, y+8, 8, 8, config.TorchFlame, false)
	}
}

func block(dst *ebiten.Image, x, y, size float32, c color.Color) {
	vector.DrawFilledRect(dst, x, y, size, size, c, false)
	vector.StrokeRect(dst, x, y, size, size, 1, color.Black, false)
}
