package palette

import (
	"image/color"
	"testing"
)

func TestDarken(t *testing.T) {
	c := color.RGBA{200, 100, 50, 255}
	tests := []struct {
		factor float64
		want   color.RGBA
	}{
		{1, c},
		{0.5, color.RGBA{100, 50, 25, 255}},
		{0, color.RGBA{0, 0, 0, 255}},
		{-1, color.RGBA{0, 0, 0, 255}},
		{2, c},
	}
	for _, tt := range tests {
		if got := Darken(c, tt.factor); got != tt.want {
			t.Errorf("Darken(%v, %v) = %v, want %v", c, tt.factor, got, tt.want)
		}
	}
	if got := DarkenColor(c); got != Darken(c, 0.5) {
		t.Errorf("DarkenColor = %v", got)
	}
}

func TestWithAlpha(t *testing.T) {
	got := WithAlpha(color.RGBA{1, 2, 3, 255}, 40)
	if got != (color.NRGBA{1, 2, 3, 40}) {
		t.Errorf("WithAlpha = %v", got)
	}
}
