// internal/mine/mine.go

// Package mine runs the underground scene: the actor digging through the
// terrain, debris, the follow camera and generation ahead of the view.
package mine

import (
	"errors"
	"fmt"
	"log"
	"time"

	"go-mine-digger/internal/actor"
	"go-mine-digger/internal/camera"
	"go-mine-digger/internal/config"
	"go-mine-digger/internal/defs"
	"go-mine-digger/internal/event"
	"go-mine-digger/internal/particle"
	"go-mine-digger/internal/terrain"
	"go-mine-digger/internal/tile"
	"go-mine-digger/internal/utils"
)

// ErrSpawnBlocked is returned when the spawn cell cannot be dug out.
var ErrSpawnBlocked = errors.New("spawn cell cannot be carved")

// Economy receives the ore the actor digs out.
type Economy interface {
	CreditOre(k tile.Kind) bool
}

// Input is the player's intent for one frame.
type Input struct {
	Dir actor.Direction
}

// Spawn is the cell the actor starts in.
type Spawn struct {
	Col, Depth int
}

// Options configures a new Mine. Zero fields take the game defaults; a nil
// Spawn means the centre column at the default depth.
type Options struct {
	Seed         int64
	Table        *defs.OreTable
	RowsPerFrame int
	Spawn        *Spawn
	Economy      Economy
	Events       *event.Dispatcher
}

// Mine is one session's underground. It lives for the whole session, so
// leaving and re-entering keeps every dug tunnel.
type Mine struct {
	Terrain   *terrain.Terrain
	Actor     *actor.Actor
	Particles *particle.Pool
	Camera    *camera.Camera

	economy      Economy
	events       *event.Dispatcher
	rowsPerFrame int
	ground       *ground
}

// New generates the first screen of rows and carves the spawn cell.
func New(opts Options) (*Mine, error) {
	if opts.RowsPerFrame <= 0 {
		opts.RowsPerFrame = config.RowsPerFrame
	}
	spawn := Spawn{Col: config.SpawnColumn, Depth: config.SpawnDepth}
	if opts.Spawn != nil {
		spawn = *opts.Spawn
	}
	if spawn.Col < 0 || spawn.Col >= config.Columns || spawn.Depth < 0 {
		return nil, fmt.Errorf("%w: %d,%d is outside the mine", ErrSpawnBlocked, spawn.Col, spawn.Depth)
	}
	rng := utils.NewPRNGService(opts.Seed)

	m := &Mine{
		Terrain:      terrain.New(config.Columns, opts.Table, rng),
		Actor:        actor.New(spawn.Col, spawn.Depth),
		Particles:    particle.NewPool(config.ParticlePoolSize, rng.Derive(-1)),
		Camera:       camera.New(config.ScreenHeight, config.TileSize, config.LookAheadRows, config.CameraSmoothing),
		economy:      opts.Economy,
		events:       opts.Events,
		rowsPerFrame: opts.RowsPerFrame,
	}
	m.ground = &ground{m: m}

	m.Terrain.EnsureGenerated(config.InitialRows)
	if spawn.Depth > m.Terrain.Frontier() {
		m.Terrain.EnsureGenerated(spawn.Depth + config.LookAheadRows)
	}
	// The spawn cell is dug out like any other, just without a reward.
	for {
		c, _ := m.Terrain.Cell(spawn.Col, spawn.Depth)
		if c.Kind == tile.Empty {
			break
		}
		if !c.Kind.Destructible() {
			return nil, fmt.Errorf("%w: %v at %d,%d", ErrSpawnBlocked, c.Kind, spawn.Col, spawn.Depth)
		}
		m.Terrain.DamageTile(spawn.Col, spawn.Depth, int(c.Durability))
	}
	log.Printf("[Mine] seed %d, spawn at %d,%d, %d rows ready",
		rng.Seed(), spawn.Col, spawn.Depth, m.Terrain.Frontier()+1)
	return m, nil
}

// Enter holds input briefly so the click that opened the mine does not
// also move the actor.
func (m *Mine) Enter() {
	m.Actor.Hold(config.EntryHold)
}

// Ground exposes the terrain as the actor sees it.
func (m *Mine) Ground() actor.Ground { return m.ground }

// Update runs one frame: actor, debris, camera, then generation ahead of
// the view. Nothing moves between calls, so a paused mine stays frozen.
func (m *Mine) Update(dt time.Duration, in Input, shovelLevel int) actor.Outcome {
	out := m.Actor.Step(dt, in.Dir, m.ground, shovelLevel)
	m.Particles.Update()

	_, followY := m.Actor.PixelCenter(config.TileSize)
	m.Camera.Follow(followY - float64(config.TileSize)/2)

	m.Terrain.Request(m.Camera.GenerationTarget())
	m.Terrain.Advance(m.rowsPerFrame)
	return out
}

// ActorScreen is the actor's centre in screen pixels.
func (m *Mine) ActorScreen() (x, y int) {
	px, py := m.Actor.PixelCenter(config.TileSize)
	return int(px), int(py) - int(m.Camera.Y)
}

// ground adapts the terrain to the actor, and turns destroyed tiles into
// loot, debris and events.
type ground struct {
	m *Mine
}

func (g *ground) Passability(col, depth int) actor.Passability {
	if col < 0 || col >= g.m.Terrain.Columns() || depth < 0 {
		return actor.Blocked
	}
	c, ok := g.m.Terrain.Cell(col, depth)
	if !ok {
		return actor.Blocked
	}
	switch {
	case c.Kind == tile.Empty:
		return actor.Open
	case c.Kind.Destructible():
		return actor.Diggable
	}
	return actor.Blocked
}

func (g *ground) Dig(col, depth, amount int) bool {
	kind, destroyed := g.m.Terrain.DamageTile(col, depth, amount)
	data := event.TileData{Col: col, Depth: depth, Kind: kind}
	g.m.events.Dispatch(event.Event{Type: event.TileDamaged, Data: data})
	if !destroyed {
		return false
	}

	if g.m.economy != nil {
		g.m.economy.CreditOre(kind)
	}
	half := float64(config.TileSize) / 2
	g.m.Particles.Emit(
		float64(col*config.TileSize)+half,
		float64(depth*config.TileSize)+half,
		kind.Color(),
		config.ParticlesPerBurst,
	)
	g.m.events.Dispatch(event.Event{Type: event.TileDestroyed, Data: data})
	return true
}
