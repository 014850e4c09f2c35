// internal/render/text.go

// Package render draws the game with ebiten. It only reads simulation
// state; nothing here changes the world.
package render

import (
	"bytes"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts are the two HUD text sizes.
type Fonts struct {
	Small *text.GoTextFace
	Large *text.GoTextFace
}

// LoadFonts parses the bundled Go Regular face.
func LoadFonts() *Fonts {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("[Font] failed to load goregular: %v", err)
	}
	return &Fonts{
		Small: &text.GoTextFace{Source: src, Size: 14},
		Large: &text.GoTextFace{Source: src, Size: 24},
	}
}

// DrawText draws s with its top-left corner at (x, y).
func DrawText(dst *ebiten.Image, s string, face text.Face, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, face, op)
}

// DrawTextCentered draws s centred on (cx, cy).
func DrawTextCentered(dst *ebiten.Image, s string, face text.Face, cx, cy float64, c color.Color) {
	w, h := text.Measure(s, face, 0)
	DrawText(dst, s, face, cx-w/2, cy-h/2, c)
}
