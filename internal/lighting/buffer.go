// internal/lighting/buffer.go
package lighting

import (
	"image"
	"image/color"
)

// Buffer is a software darkness layer. It backs the terminal viewer and
// the tests; the game composes the same Frame on the GPU.
type Buffer struct {
	img *image.RGBA
}

// NewBuffer allocates a w x h layer.
func NewBuffer(w, h int) *Buffer {
	return &Buffer{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Bounds of the layer.
func (b *Buffer) Bounds() image.Rectangle { return b.img.Bounds() }

// Reset fills the layer with an opaque base color.
func (b *Buffer) Reset(base color.RGBA) {
	base.A = 255
	pix := b.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = base.R, base.G, base.B, 255
	}
}

// Add blends a light onto the layer additively, saturating each channel at 255.
func (b *Buffer) Add(l Light) {
	r := image.Rect(l.X, l.Y, l.X+l.Mask.Size(), l.Y+l.Mask.Size()).Intersect(b.img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			v := l.Mask.At(x-l.X, y-l.Y)
			if v == 0 {
				continue
			}
			i := b.img.PixOffset(x, y)
			for c := 0; c < 3; c++ {
				b.img.Pix[i+c] = addSat(b.img.Pix[i+c], v)
			}
		}
	}
}

// At returns the layer color at (x, y).
func (b *Buffer) At(x, y int) color.RGBA { return b.img.RGBAAt(x, y) }

// Multiply darkens scene by the layer channel by channel. Alpha is untouched.
func (b *Buffer) Multiply(scene *image.RGBA) {
	r := scene.Bounds().Intersect(b.img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			si := scene.PixOffset(x, y)
			li := b.img.PixOffset(x, y)
			for c := 0; c < 3; c++ {
				scene.Pix[si+c] = mul(scene.Pix[si+c], b.img.Pix[li+c])
			}
		}
	}
}

// Shade multiplies a single color by the layer at (x, y).
func (b *Buffer) Shade(c color.RGBA, x, y int) color.RGBA {
	if !(image.Point{X: x, Y: y}).In(b.img.Bounds()) {
		return color.RGBA{A: c.A}
	}
	l := b.img.RGBAAt(x, y)
	return color.RGBA{R: mul(c.R, l.R), G: mul(c.G, l.G), B: mul(c.B, l.B), A: c.A}
}

func addSat(a, b uint8) uint8 {
	s := int(a) + int(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

func mul(a, b uint8) uint8 {
	return uint8((int(a)*int(b) + 127) / 255)
}
