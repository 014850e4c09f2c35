// internal/render/sprites.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-mine-digger/internal/actor"
	"go-mine-digger/internal/config"
)

// Sprites holds the mole's animation frames, generated at startup and
// always facing right.
type Sprites struct {
	frames map[actor.State][]*ebiten.Image
}

// ellipse fills the ellipse inscribed in (x, y, w, h) by flattening a circle.
func ellipse(dst *ebiten.Image, x, y, w, h float32, c color.Color) {
	var p vector.Path
	cx, cy := x+w/2, y+h/2
	rx, ry := w/2, h/2
	p.Arc(cx, cy, rx, 0, 2*math.Pi, vector.Clockwise)
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := c.RGBA()
	for i := range vs {
		vs[i].DstY = cy + (vs[i].DstY-cy)*ry/rx
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	dst.DrawTriangles(vs, is, whiteImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

var whitePixel *ebiten.Image

// whiteImage is the source for untextured triangles, created on first use.
func whiteImage() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(3, 3)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// NewSprites draws every frame: a body ellipse with an eye, a raised claw
// for the second mining frame and a taller body for crawling.
func NewSprites() *Sprites {
	ts := config.TileSize
	body := func() *ebiten.Image {
		img := ebiten.NewImage(ts, ts)
		ellipse(img, 4, 10, 24, 20, config.MoleBody)
		ellipse(img, 20, 14, 4, 4, config.MoleEye)
		return img
	}
	idle := body()
	swing := body()
	vector.DrawFilledRect(swing, 20, 10, 8, 8, config.MoleClaws, false)

	crawl := ebiten.NewImage(ts, ts)
	ellipse(crawl, 4, 4, 24, 24, config.MoleBody)
	ellipse(crawl, 20, 8, 4, 4, config.MoleEye)

	return &Sprites{frames: map[actor.State][]*ebiten.Image{
		actor.Idle:     {idle},
		actor.Mining:   {idle, swing},
		actor.Crawling: {crawl, idle},
	}}
}

// DrawActor draws the actor at its cell, flipped when facing left.
func (s *Sprites) DrawActor(dst *ebiten.Image, a *actor.Actor, cameraY float64) {
	frames := s.frames[a.State]
	img := frames[a.Frame()%len(frames)]

	op := &ebiten.DrawImageOptions{}
	if !a.FacingRight {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(config.TileSize), 0)
	}
	op.GeoM.Translate(float64(a.Col*config.TileSize), float64(a.Depth*config.TileSize)-float64(int(cameraY)))
	dst.DrawImage(img, op)
}
