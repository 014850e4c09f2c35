package camera

import (
	"testing"

	"go-mine-digger/internal/config"
)

func newTestCamera() *Camera {
	return New(config.ScreenHeight, config.TileSize, config.LookAheadRows, config.CameraSmoothing)
}

func TestTargetClampsAtSurface(t *testing.T) {
	c := newTestCamera()
	if got := c.Target(100); got != 0 {
		t.Errorf("target near surface: got %v, want 0", got)
	}
	if got := c.Target(1000); got != 1000-160 {
		t.Errorf("target: got %v, want 840", got)
	}
}

func TestFollowConvergesMonotonically(t *testing.T) {
	c := newTestCamera()
	const follow = 2000.0
	target := c.Target(follow)
	prevGap := target - c.Y
	for i := 0; i < 300; i++ {
		c.Follow(follow)
		gap := target - c.Y
		if gap < 0 {
			t.Fatalf("overshot on frame %d: y=%f target=%f", i, c.Y, target)
		}
		if gap > prevGap {
			t.Fatalf("moved away on frame %d", i)
		}
		prevGap = gap
	}
	if prevGap > 0.01 {
		t.Errorf("did not converge, gap=%f", prevGap)
	}
}

func TestFollowUpwardsNeverUndershoots(t *testing.T) {
	c := newTestCamera()
	c.Y = 5000
	for i := 0; i < 200; i++ {
		c.Follow(0)
		if c.Y < 0 {
			t.Fatalf("went above the surface: %f", c.Y)
		}
	}
}

func TestFirstStepIsTenPercent(t *testing.T) {
	c := newTestCamera()
	c.Follow(1160)
	if c.Y != 100 {
		t.Errorf("first step: got %v, want 100", c.Y)
	}
}

func TestVisibleRowsAndGenerationTarget(t *testing.T) {
	c := newTestCamera()
	c.Y = 320
	first, last := c.VisibleRows()
	if first != 10 || last != 10+15+2 {
		t.Errorf("visible rows: got [%d,%d)", first, last)
	}
	if got := c.GenerationTarget(); got != (320+480)/32+10 {
		t.Errorf("generation target: got %d", got)
	}
	if got := c.ScreenY(400); got != 80 {
		t.Errorf("screen y: got %v", got)
	}
}
