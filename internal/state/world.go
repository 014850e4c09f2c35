// internal/state/world.go
package state

import (
	"log"
	"time"

	"go-mine-digger/internal/actor"
	"go-mine-digger/internal/audio"
	"go-mine-digger/internal/config"
	"go-mine-digger/internal/defs"
	"go-mine-digger/internal/event"
	"go-mine-digger/internal/hub"
	"go-mine-digger/internal/lighting"
	"go-mine-digger/internal/mine"
	"go-mine-digger/internal/render"
	"go-mine-digger/internal/session"
	"go-mine-digger/internal/utils"
)

// World is everything the hub and mine screens share for one session.
type World struct {
	Session  *session.Session
	Events   *event.Dispatcher
	Audio    *audio.Player
	Hub      *hub.Map
	HubActor *actor.Actor
	Mine     *mine.Mine

	Masks    *lighting.Masks
	Darkness *render.DarknessLayer
	Sprites  *render.Sprites
	Fonts    *render.Fonts

	started time.Time
}

// NewWorld builds a session from settings. The mine is generated up front
// so the first dive does not stall.
func NewWorld(settings config.Settings, table *defs.OreTable) *World {
	events := event.NewDispatcher()
	rng := utils.NewPRNGService(settings.Seed)

	player := audio.NewPlayer(rng.Derive(-2))
	if settings.AudioEnabled {
		// failure is logged inside and leaves the player silent
		_ = player.Init()
	}
	player.Subscribe(events)

	s := session.New(events)
	hm := hub.Default()
	spawn := hm.Spawn()
	masks := lighting.NewMasks()
	mn, err := mine.New(mine.Options{
		Seed:         rng.Seed(),
		Table:        table,
		RowsPerFrame: settings.RowsPerFrame,
		Economy:      s,
		Events:       events,
	})
	if err != nil {
		log.Fatalf("[Mine] %v", err)
	}

	w := &World{
		Session:  s,
		Events:   events,
		Audio:    player,
		Hub:      hm,
		HubActor: actor.New(spawn.Col, spawn.Row),
		Mine:     mn,
		Masks:    masks,
		Darkness: render.NewDarknessLayer(config.ScreenWidth, config.ScreenHeight, masks),
		Sprites:  render.NewSprites(),
		Fonts:    render.LoadFonts(),
		started:  time.Now(),
	}
	log.Printf("[World] session ready, seed %d, audio %v", rng.Seed(), player.Enabled())
	return w
}

// Millis is the time since the session started, for shared animation phases.
func (w *World) Millis() int64 {
	return time.Since(w.started).Milliseconds()
}

// Close releases the audio device.
func (w *World) Close() {
	w.Audio.Close()
}
