// internal/lighting/mask.go

// Package lighting builds the darkness layer that hides everything outside light.
//
// A frame of lighting is built in a fixed order: the layer is reset to an
// opaque near-black, light masks are added on top (saturating per channel),
// and the result multiplies the rendered scene. Adding before multiplying
// is what lets overlapping lights brighten each other; reversing the order
// would black out the scene.
package lighting

import (
	"image"
	"image/color"
	"math"

	"go-mine-digger/internal/config"
)

// Mask is a square radial intensity image, precomputed once at startup.
type Mask struct {
	Radius    int
	Intensity uint8
	img       *image.Gray
}

// RingIntensity is the brightness of the ring with radius r in a mask of
// radius R: base * (1 - (r/R)^2).
func RingIntensity(base uint8, r, R int) uint8 {
	if R <= 0 || r > R {
		return 0
	}
	f := float64(r) / float64(R)
	return uint8(float64(base) * (1 - f*f))
}

// NewMask draws concentric filled circles from the outer radius inwards in
// steps of config.LightMaskRingStep, each smaller circle painted over the last.
func NewMask(radius int, intensity uint8) *Mask {
	size := radius * 2
	img := image.NewGray(image.Rect(0, 0, size, size))
	step := config.LightMaskRingStep
	innermost := radius - ((radius-1)/step)*step

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-float64(radius), float64(y)+0.5-float64(radius))
			if d > float64(radius) {
				continue
			}
			// smallest ring radius that still covers this pixel
			r := radius - int((float64(radius)-d)/float64(step))*step
			if r < innermost {
				r = innermost
			}
			img.SetGray(x, y, color.Gray{Y: RingIntensity(intensity, r, radius)})
		}
	}
	return &Mask{Radius: radius, Intensity: intensity, img: img}
}

// Size is the mask's width and height.
func (m *Mask) Size() int { return m.Radius * 2 }

// At returns the intensity at mask-local coordinates; outside is dark.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= m.Size() || y >= m.Size() {
		return 0
	}
	return m.img.GrayAt(x, y).Y
}

// Gray exposes the mask image for renderers that upload it to the GPU.
func (m *Mask) Gray() *image.Gray { return m.img }

// Masks is the fixed set of light shapes used by the game.
type Masks struct {
	Ambient    *Mask
	Fixture    *Mask
	TorchLarge *Mask
	TorchSmall *Mask
}

// NewMasks precomputes every mask.
func NewMasks() *Masks {
	return &Masks{
		Ambient:    NewMask(config.AmbientLightRadius, config.AmbientLightIntensity),
		Fixture:    NewMask(config.FixtureLightRadius, config.FixtureLightIntensity),
		TorchLarge: NewMask(config.TorchLargeRadius, config.TorchLargeIntensity),
		TorchSmall: NewMask(config.TorchSmallRadius, config.TorchSmallIntensity),
	}
}

// Torch picks the carried light: the big one once the torch is picked up.
func (m *Masks) Torch(hasTorch bool) *Mask {
	if hasTorch {
		return m.TorchLarge
	}
	return m.TorchSmall
}
