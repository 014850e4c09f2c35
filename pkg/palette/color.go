// pkg/palette/color.go
package palette

import "image/color"

// Darken scales the RGB channels of c by factor in [0, 1]; alpha is kept.
func Darken(c color.RGBA, factor float64) color.RGBA {
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// DarkenColor halves the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return Darken(c, 0.5)
}

// WithAlpha returns c as a straight-alpha colour with the given alpha.
func WithAlpha(c color.RGBA, a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}
