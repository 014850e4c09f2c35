// internal/state/input.go
package state

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-mine-digger/internal/actor"
)

// PollKeys reads arrows and WASD.
func PollKeys() actor.Keys {
	return actor.Keys{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
	}
}

// frameDuration converts the machine's delta in seconds.
func frameDuration(deltaTime float64) time.Duration {
	return time.Duration(deltaTime * float64(time.Second))
}
