// internal/lighting/frame.go
package lighting

import (
	"image/color"

	"go-mine-digger/internal/config"
)

// Light places a mask with its top-left corner at (X, Y) in screen pixels.
type Light struct {
	Mask *Mask
	X, Y int
}

// Centered places a mask so that its center sits on (cx, cy).
func Centered(m *Mask, cx, cy int) Light {
	return Light{Mask: m, X: cx - m.Radius, Y: cy - m.Radius}
}

// Frame is one frame's lighting: a base darkness and the lights added onto it.
type Frame struct {
	Base   color.RGBA
	Lights []Light
}

// Layer is anything a Frame can be composed onto.
type Layer interface {
	Reset(base color.RGBA)
	Add(l Light)
}

// Apply resets dst to the base color and adds every light in order.
func (f Frame) Apply(dst Layer) {
	dst.Reset(f.Base)
	for _, l := range f.Lights {
		dst.Add(l)
	}
}

// MineFrame lights the mine with the carried torch only. (px, py) is the
// actor's center in screen pixels.
func MineFrame(m *Masks, px, py int, hasTorch bool) Frame {
	return Frame{
		Base:   config.MineDarkness,
		Lights: []Light{Centered(m.Torch(hasTorch), px, py)},
	}
}

// HubScene describes the light sources present in the hub this frame.
// Positions are in tiles except the actor, which is in screen pixels.
type HubScene struct {
	Width, Height int
	Fixtures      [][2]int
	WallTorch     *[2]int
	ActorX        int
	ActorY        int
	HasTorch      bool
}

// HubFrame lights the hub: ambient glow in each corner, fixtures and the
// wall torch on their tiles, and the actor's own light.
func HubFrame(m *Masks, s HubScene) Frame {
	off := config.AmbientCornerOffset
	f := Frame{Base: config.HubDarkness}
	f.Lights = append(f.Lights,
		Light{Mask: m.Ambient, X: -off, Y: -off},
		Light{Mask: m.Ambient, X: s.Width - 2*off, Y: -off},
		Light{Mask: m.Ambient, X: -off, Y: s.Height - 2*off},
		Light{Mask: m.Ambient, X: s.Width - 2*off, Y: s.Height - 2*off},
	)
	skew := config.FixtureLightAnchorSkew
	for _, p := range s.Fixtures {
		f.Lights = append(f.Lights, Centered(m.Fixture, p[0]*config.TileSize+skew, p[1]*config.TileSize+skew))
	}
	if s.WallTorch != nil {
		p := *s.WallTorch
		f.Lights = append(f.Lights, Centered(m.TorchSmall, p[0]*config.TileSize+skew, p[1]*config.TileSize+skew))
	}
	f.Lights = append(f.Lights, Centered(m.Torch(s.HasTorch), s.ActorX, s.ActorY))
	return f
}
