// internal/particle/pool.go

// Package particle holds the fixed pool of debris particles thrown off broken tiles.
package particle

import (
	"image/color"

	"go-mine-digger/internal/config"
	"go-mine-digger/internal/utils"
)

// Particle is one pool slot. Inactive slots are free.
type Particle struct {
	Active bool
	X, Y   float64
	VX, VY float64
	Color  color.RGBA
	Life   int
}

// Canvas is the drawing surface particles are painted on.
type Canvas interface {
	FillRect(x, y, w, h float64, c color.RGBA)
}

// Pool is a fixed-size arena of particles. Slots are claimed and released
// by flipping Active; the backing array never grows.
type Pool struct {
	slots []Particle
	rng   *utils.PRNGService
}

// NewPool creates a pool with size slots.
func NewPool(size int, rng *utils.PRNGService) *Pool {
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}
	return &Pool{slots: make([]Particle, size), rng: rng}
}

// Cap is the number of slots.
func (p *Pool) Cap() int { return len(p.slots) }

// Active counts the particles currently alive.
func (p *Pool) Active() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].Active {
			n++
		}
	}
	return n
}

// Emit claims up to count free slots at (x, y) and returns how many it got.
// A full pool truncates the burst.
func (p *Pool) Emit(x, y float64, c color.RGBA, count int) int {
	emitted := 0
	for i := range p.slots {
		if emitted >= count {
			break
		}
		s := &p.slots[i]
		if s.Active {
			continue
		}
		*s = Particle{
			Active: true,
			X:      x,
			Y:      y,
			VX:     p.rng.Uniform(-3, 3),
			VY:     p.rng.Uniform(-5, -1),
			Color:  c,
			Life:   config.ParticleLife,
		}
		emitted++
	}
	return emitted
}

// Update advances every live particle by one frame.
func (p *Pool) Update() {
	for i := range p.slots {
		s := &p.slots[i]
		if !s.Active {
			continue
		}
		s.VY += config.ParticleGravity
		s.X += s.VX
		s.Y += s.VY
		s.Life -= config.ParticleLifeStep
		if s.Life <= 0 {
			s.Active = false
		}
	}
}

// Draw paints live particles without advancing them as small squares, fading with remaining life.
func (p *Pool) Draw(dst Canvas, cameraY float64) {
	for i := range p.slots {
		s := &p.slots[i]
		if !s.Active {
			continue
		}
		c := s.Color
		c.A = uint8(utils.ClampInt(s.Life, 0, 255))
		dst.FillRect(float64(int(s.X)), float64(int(s.Y))-cameraY, config.ParticleSize, config.ParticleSize, c)
	}
}

// Each visits every live particle.
func (p *Pool) Each(fn func(*Particle)) {
	for i := range p.slots {
		if p.slots[i].Active {
			fn(&p.slots[i])
		}
	}
}
