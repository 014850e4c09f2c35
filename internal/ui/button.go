// internal/ui/button.go
package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-mine-digger/internal/config"
	"go-mine-digger/internal/render"
)

// Button is a clickable labelled rectangle.
type Button struct {
	Rect image.Rectangle
	Text string
}

// NewButton creates a button at (x, y) with size w x h.
func NewButton(x, y, w, h int, text string) *Button {
	return &Button{Rect: image.Rect(x, y, x+w, y+h), Text: text}
}

// Contains reports whether the point lies on the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Clicked reports a left click that started on the button this frame.
func (b *Button) Clicked() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	return b.Contains(ebiten.CursorPosition())
}

// Draw paints the button, lighter while the cursor hovers it.
func (b *Button) Draw(dst *ebiten.Image, face text.Face) {
	bg := config.ButtonColor
	if b.Contains(ebiten.CursorPosition()) {
		bg = config.ButtonHoverColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())

	vector.DrawFilledRect(dst, x, y, w, h, bg, false)
	vector.StrokeRect(dst, x, y, w, h, 2, config.ButtonStroke, false)
	render.DrawTextCentered(dst, b.Text, face, float64(x+w/2), float64(y+h/2), config.TextLightColor)
}
