package render

import (
	"image/color"
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestGlowIsAdditive(t *testing.T) {
	if glowOptions.Blend != ebiten.BlendLighter {
		t.Errorf("glow blend = %+v, want BlendLighter", glowOptions.Blend)
	}
}

func TestGlowTriangles(t *testing.T) {
	c := color.NRGBA{255, 215, 0, 80}
	vs, is := glowTriangles(16, 16, 19, c)
	if len(vs) < 3 || len(is)%3 != 0 {
		t.Fatalf("%d vertices, %d indices", len(vs), len(is))
	}
	for i, v := range vs {
		if d := math.Hypot(float64(v.DstX-16), float64(v.DstY-16)); d > 19.5 {
			t.Errorf("vertex %d at distance %.2f outside the radius", i, d)
		}
		if v.ColorR != 1 || v.ColorA != float32(80)/0xff {
			t.Errorf("vertex %d colour %v,%v,%v,%v", i, v.ColorR, v.ColorG, v.ColorB, v.ColorA)
		}
	}
}

func TestPulseRange(t *testing.T) {
	for ms := int64(0); ms < 2000; ms += 37 {
		if p := Pulse(ms); p < 0 || p > 1 {
			t.Fatalf("Pulse(%d) = %v", ms, p)
		}
	}
}
