// internal/camera/camera.go

// Package camera provides the smoothed vertical follow camera of the mine.
package camera

import (
	"math"

	"go-mine-digger/internal/utils"
)

// Camera tracks a vertical target with exponential smoothing. There is no
// velocity term, so it approaches the target without ever overshooting.
type Camera struct {
	Y         float64
	Smoothing float64

	viewportHeight int
	tileSize       int
	lookAhead      int
}

// New creates a camera at the top of the world.
func New(viewportHeight, tileSize, lookAhead int, smoothing float64) *Camera {
	return &Camera{
		Smoothing:      smoothing,
		viewportHeight: viewportHeight,
		tileSize:       tileSize,
		lookAhead:      lookAhead,
	}
}

// Target keeps the followed point a third of the way down the screen.
func (c *Camera) Target(followY float64) float64 {
	return math.Max(0, followY-float64(c.viewportHeight/3))
}

// Follow moves the camera one smoothing step towards followY (world pixels).
func (c *Camera) Follow(followY float64) {
	c.Y = utils.Lerp(c.Y, c.Target(followY), c.Smoothing)
}

// VisibleRows returns the half-open range of rows that can appear on screen.
func (c *Camera) VisibleRows() (first, last int) {
	first = int(c.Y) / c.tileSize
	if first < 0 {
		first = 0
	}
	return first, int(c.Y)/c.tileSize + c.viewportHeight/c.tileSize + 2
}

// GenerationTarget is the deepest row that must exist this frame.
func (c *Camera) GenerationTarget() int {
	return int((c.Y+float64(c.viewportHeight))/float64(c.tileSize)) + c.lookAhead
}

// ScreenY converts a world y to a screen y.
func (c *Camera) ScreenY(worldY float64) float64 {
	return worldY - c.Y
}
