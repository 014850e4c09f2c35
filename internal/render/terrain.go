// internal/render/terrain.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-mine-digger/internal/camera"
	"go-mine-digger/internal/config"
	"go-mine-digger/internal/terrain"
	"go-mine-digger/internal/tile"
	"go-mine-digger/pkg/palette"
)

// Pulse is the shared ore glow phase in [0, 1] at a time in milliseconds.
func Pulse(ms int64) float64 {
	return (math.Sin(float64(ms)*0.005) + 1) / 2
}

// DrawTerrain draws the visible rows: glow under ores, the tile block with
// an outline, and a durability bar on damaged tiles.
func DrawTerrain(dst *ebiten.Image, t *terrain.Terrain, cam *camera.Camera, ms int64) {
	ts := float32(config.TileSize)
	pulse := Pulse(ms)
	glowRadius := float32(int(float64(config.TileSize)*0.6 + pulse*float64(config.TileSize)*0.3))
	glowAlpha := uint8(30 + pulse*50)

	first, last := cam.VisibleRows()
	for depth := first; depth < last; depth++ {
		sy := float32(cam.ScreenY(float64(depth * config.TileSize)))
		for col := 0; col < t.Columns(); col++ {
			c, _ := t.Cell(col, depth)
			if c.Kind == tile.Empty {
				continue
			}
			sx := float32(col * config.TileSize)

			if g, ok := c.Kind.Glow(); ok {
				glow(dst, sx+ts/2, sy+ts/2, glowRadius, palette.WithAlpha(g, glowAlpha))
			}

			vector.DrawFilledRect(dst, sx, sy, ts, ts, c.Kind.Color(), false)
			vector.StrokeRect(dst, sx, sy, ts, ts, 1, config.OutlineColor, false)

			if c.Kind.Destructible() && c.Damaged() {
				barY := sy + ts - 6
				vector.DrawFilledRect(dst, sx+2, barY, ts-4, 4, config.BarBackColor, false)
				vector.DrawFilledRect(dst, sx+2, barY, float32(int(float64(ts-4)*c.Health())), 4, config.BarFillColor, false)
			}
		}
	}
}

// glowOptions adds the glow onto the frame instead of blending over it.
var glowOptions = &ebiten.DrawTrianglesOptions{
	AntiAlias: true,
	Blend:     ebiten.BlendLighter,
}

// glowTriangles fills a circle in a flat colour. Vertex colours are
// straight alpha.
func glowTriangles(cx, cy, r float32, c color.NRGBA) ([]ebiten.Vertex, []uint16) {
	var p vector.Path
	p.Arc(cx, cy, r, 0, 2*math.Pi, vector.Clockwise)
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(c.R) / 0xff
		vs[i].ColorG = float32(c.G) / 0xff
		vs[i].ColorB = float32(c.B) / 0xff
		vs[i].ColorA = float32(c.A) / 0xff
	}
	return vs, is
}

// glow adds a filled circle onto dst, brightening whatever is under it.
func glow(dst *ebiten.Image, cx, cy, r float32, c color.NRGBA) {
	vs, is := glowTriangles(cx, cy, r, c)
	dst.DrawTriangles(vs, is, whiteImage(), glowOptions)
}

// Canvas lets the particle pool paint on an ebiten image.
type Canvas struct {
	Dst *ebiten.Image
}

// FillRect draws a square whose colour alpha is straight, not premultiplied.
func (c Canvas) FillRect(x, y, w, h float64, col color.RGBA) {
	vector.DrawFilledRect(c.Dst, float32(x), float32(y), float32(w), float32(h),
		palette.WithAlpha(col, col.A), false)
}
