// internal/audio/player.go
package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"go-mine-digger/internal/event"
	"go-mine-digger/internal/utils"
)

// Player plays cues fire-and-forget. When the speaker cannot be opened it
// stays silent and the game carries on.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rng         *utils.PRNGService
	initialized bool

	// sink receives every streamer that would be played.
	sink func(beep.Streamer)
}

// NewPlayer creates a silent player. Call Init to open the speaker.
func NewPlayer(rng *utils.PRNGService) *Player {
	return &Player{mixer: &beep.Mixer{}, rng: rng}
}

// Init opens the speaker. A failure is logged and leaves the player silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		log.Printf("[Audio] speaker unavailable, running silent: %v", err)
		return err
	}
	speaker.Play(p.mixer)
	p.sink = func(s beep.Streamer) {
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	}
	p.initialized = true
	return nil
}

// Enabled reports whether cues are audible.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sink != nil
}

// Play starts c and returns immediately.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	sink := p.sink
	p.mu.Unlock()
	if sink == nil {
		return
	}
	if s := NewCue(c, p.rng); s != nil {
		sink(s)
	}
}

// Close drops any queued sounds.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.sink = nil
	p.initialized = false
}

// cueFor maps game events to the sound they make.
var cueFor = map[event.EventType]Cue{
	event.TileDamaged:    CueDig,
	event.TileDestroyed:  CueBreak,
	event.MerchantTalk:   CueTalk,
	event.OreSold:        CueCoin,
	event.ShovelUpgraded: CueCoin,
}

// OnEvent implements event.Listener.
func (p *Player) OnEvent(e event.Event) {
	if c, ok := cueFor[e.Type]; ok {
		p.Play(c)
	}
}

// Subscribe registers the player for every event that has a cue.
func (p *Player) Subscribe(d *event.Dispatcher) {
	for t := range cueFor {
		d.Subscribe(t, p)
	}
}
