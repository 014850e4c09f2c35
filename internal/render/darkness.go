// internal/render/darkness.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"go-mine-digger/internal/lighting"
)

// multiply darkens the destination by the source, channel by channel,
// leaving destination alpha alone.
var multiply = ebiten.Blend{
	BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
	BlendFactorSourceAlpha:      ebiten.BlendFactorZero,
	BlendFactorDestinationRGB:   ebiten.BlendFactorZero,
	BlendFactorDestinationAlpha: ebiten.BlendFactorOne,
	BlendOperationRGB:           ebiten.BlendOperationAdd,
	BlendOperationAlpha:         ebiten.BlendOperationAdd,
}

// DarknessLayer is the GPU twin of lighting.Buffer: lights are added with
// BlendLighter, then the whole layer multiplies the screen.
type DarknessLayer struct {
	img   *ebiten.Image
	masks map[*lighting.Mask]*ebiten.Image
}

var _ lighting.Layer = (*DarknessLayer)(nil)

// NewDarknessLayer uploads every mask once.
func NewDarknessLayer(w, h int, masks *lighting.Masks) *DarknessLayer {
	l := &DarknessLayer{
		img:   ebiten.NewImage(w, h),
		masks: make(map[*lighting.Mask]*ebiten.Image),
	}
	for _, m := range []*lighting.Mask{masks.Ambient, masks.Fixture, masks.TorchLarge, masks.TorchSmall} {
		l.masks[m] = ebiten.NewImageFromImage(m.Gray())
	}
	return l
}

func (l *DarknessLayer) Reset(base color.RGBA) {
	base.A = 255
	l.img.Fill(base)
}

func (l *DarknessLayer) Add(light lighting.Light) {
	src, ok := l.masks[light.Mask]
	if !ok {
		src = ebiten.NewImageFromImage(light.Mask.Gray())
		l.masks[light.Mask] = src
	}
	op := &ebiten.DrawImageOptions{Blend: ebiten.BlendLighter}
	op.GeoM.Translate(float64(light.X), float64(light.Y))
	l.img.DrawImage(src, op)
}

// Composite multiplies screen by the layer.
func (l *DarknessLayer) Composite(screen *ebiten.Image) {
	screen.DrawImage(l.img, &ebiten.DrawImageOptions{Blend: multiply})
}

// Light applies f and composites it in one go.
func (l *DarknessLayer) Light(screen *ebiten.Image, f lighting.Frame) {
	f.Apply(l)
	l.Composite(screen)
}
