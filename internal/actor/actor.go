// internal/actor/actor.go

// Package actor implements the grid-bound mole that walks the hub and digs the mine.
package actor

import (
	"time"

	"go-mine-digger/internal/config"
)

// State is the behaviour the actor is animating.
type State int

const (
	Idle State = iota
	Crawling
	Mining
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Crawling:
		return "crawling"
	case Mining:
		return "mining"
	}
	return "unknown"
}

// frameCounts is the length of each state's animation sequence.
var frameCounts = map[State]int{
	Idle:     1,
	Crawling: 2,
	Mining:   2,
}

// FrameCount returns how many frames the state's animation has.
func FrameCount(s State) int {
	if n, ok := frameCounts[s]; ok {
		return n
	}
	return 1
}

// FrameTime is how long one animation frame stays on screen.
func FrameTime(s State) time.Duration {
	if s == Idle {
		return config.IdleFrameTime
	}
	return config.ActiveFrameTime
}

// Direction is a single grid step.
type Direction struct {
	DX, DY int
}

var (
	None  = Direction{}
	Left  = Direction{DX: -1}
	Right = Direction{DX: 1}
	Up    = Direction{DY: -1}
	Down  = Direction{DY: 1}
)

// Passability classifies a target cell.
type Passability int

const (
	Blocked Passability = iota
	Open
	Diggable
)

// Ground is whatever the actor moves over.
type Ground interface {
	Passability(col, depth int) Passability
	// Dig applies one hit and reports whether the cell was cleared.
	Dig(col, depth, amount int) bool
}

// Outcome reports what a Step did.
type Outcome int

const (
	NoAction   Outcome = iota
	Moved              // stepped into an open cell
	Dug                // hit a cell that survived
	DugThrough         // hit cleared the cell and the actor stepped in
	Bumped             // target was blocked
)

// Actor is the player's mole.
type Actor struct {
	Col, Depth  int
	State       State
	FacingRight bool

	cooldown  time.Duration
	frame     int
	animTimer time.Duration
}

// New places an idle actor at a grid position.
func New(col, depth int) *Actor {
	return &Actor{Col: col, Depth: depth, State: Idle, FacingRight: true}
}

// DigCooldown is the wait after a hit that did not clear the cell.
// Each shovel level shortens it, down to config.DigMinInterval.
func DigCooldown(shovelLevel int) time.Duration {
	if shovelLevel < 0 {
		shovelLevel = 0
	}
	d := config.DigBaseInterval - time.Duration(shovelLevel)*config.DigLevelBonus
	if d < config.DigMinInterval {
		return config.DigMinInterval
	}
	return d
}

// Cooldown is the time left before input is accepted again.
func (a *Actor) Cooldown() time.Duration { return a.cooldown }

// Hold blocks input for d, e.g. right after a scene change.
func (a *Actor) Hold(d time.Duration) { a.cooldown = d }

// Frame is the current animation frame of the current state.
func (a *Actor) Frame() int {
	return a.frame % FrameCount(a.State)
}

// Step advances the actor by dt with the given directional input.
func (a *Actor) Step(dt time.Duration, dir Direction, ground Ground, shovelLevel int) Outcome {
	a.cooldown -= dt
	outcome := NoAction

	if a.cooldown <= 0 {
		if dir != None {
			outcome = a.attempt(dir, ground, shovelLevel)
		} else {
			a.State = Idle
		}
	}

	a.Animate(dt)
	return outcome
}

func (a *Actor) attempt(dir Direction, ground Ground, shovelLevel int) Outcome {
	if dir.DX < 0 {
		a.FacingRight = false
	} else if dir.DX > 0 {
		a.FacingRight = true
	}

	tx, ty := a.Col+dir.DX, a.Depth+dir.DY
	switch ground.Passability(tx, ty) {
	case Open:
		a.moveTo(tx, ty, dir)
		return Moved
	case Diggable:
		if ground.Dig(tx, ty, config.HitAmount) {
			a.moveTo(tx, ty, dir)
			return DugThrough
		}
		a.cooldown = DigCooldown(shovelLevel)
		a.State = Mining
		return Dug
	default:
		a.State = Idle
		return Bumped
	}
}

// moveTo steps into a cell. Going straight down is the neutral descent and
// keeps the idle pose; sideways or upward movement crawls.
func (a *Actor) moveTo(col, depth int, dir Direction) {
	a.Col, a.Depth = col, depth
	a.cooldown = config.MoveInterval
	if dir.DX != 0 || dir.DY < 0 {
		a.State = Crawling
	} else {
		a.State = Idle
	}
}

// Animate advances the frame timer of the current state.
func (a *Actor) Animate(dt time.Duration) {
	a.animTimer += dt
	if a.animTimer > FrameTime(a.State) {
		a.frame = (a.frame + 1) % FrameCount(a.State)
		a.animTimer = 0
	}
}

// PixelCenter is the centre of the actor's cell in world pixels.
func (a *Actor) PixelCenter(tileSize int) (x, y float64) {
	half := float64(tileSize) / 2
	return float64(a.Col*tileSize) + half, float64(a.Depth*tileSize) + half
}
