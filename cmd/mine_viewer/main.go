// cmd/mine_viewer/main.go
//
// mine_viewer plays the underground in a terminal. Each tile is two
// character cells wide; the torch light is computed on the CPU.
package main

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-mine-digger/internal/actor"
	"go-mine-digger/internal/audio"
	"go-mine-digger/internal/config"
	"go-mine-digger/internal/defs"
	"go-mine-digger/internal/event"
	"go-mine-digger/internal/lighting"
	"go-mine-digger/internal/mine"
	"go-mine-digger/internal/session"
	"go-mine-digger/internal/tile"
	"go-mine-digger/internal/utils"
	"go-mine-digger/pkg/palette"
)

// keyHold is how long a key press counts as held; terminals only send
// repeats, never releases.
const keyHold = 180 * time.Millisecond

type viewer struct {
	screen  tcell.Screen
	mine    *mine.Mine
	session *session.Session
	player  *audio.Player
	masks   *lighting.Masks
	light   *lighting.Buffer

	dir      actor.Direction
	dirAt    time.Time
	lastTick time.Time
}

func newViewer(screen tcell.Screen, settings config.Settings, table *defs.OreTable) (*viewer, error) {
	events := event.NewDispatcher()
	rng := utils.NewPRNGService(settings.Seed)
	player := audio.NewPlayer(rng.Derive(-2))
	if settings.AudioEnabled {
		_ = player.Init()
	}
	player.Subscribe(events)

	s := session.New(events)
	s.EnterMine()
	m, err := mine.New(mine.Options{
		Seed:         rng.Seed(),
		Table:        table,
		RowsPerFrame: settings.RowsPerFrame,
		Economy:      s,
		Events:       events,
	})
	if err != nil {
		return nil, err
	}
	v := &viewer{
		screen:  screen,
		session: s,
		player:  player,
		masks:   lighting.NewMasks(),
		light:   lighting.NewBuffer(config.ScreenWidth, config.ScreenHeight),
		mine:     m,
		lastTick: time.Now(),
	}
	v.mine.Enter()
	return v, nil
}

// handleInput returns false when the viewer should quit.
func (v *viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			v.press(actor.Left)
		case tcell.KeyRight:
			v.press(actor.Right)
		case tcell.KeyDown:
			v.press(actor.Down)
		case tcell.KeyUp:
			v.press(actor.Up)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'a':
				v.press(actor.Left)
			case 'd':
				v.press(actor.Right)
			case 's':
				v.press(actor.Down)
			case 'w':
				v.press(actor.Up)
			case 't':
				_ = v.session.TakeTorch()
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *viewer) press(d actor.Direction) {
	v.dir, v.dirAt = d, time.Now()
}

func (v *viewer) heldDirection() actor.Direction {
	if time.Since(v.dirAt) > keyHold {
		return actor.None
	}
	return v.dir
}

func (v *viewer) update() {
	now := time.Now()
	dt := now.Sub(v.lastTick)
	if limit := time.Duration(config.MaxDeltaTime * float64(time.Second)); dt > limit {
		dt = limit
	}
	v.lastTick = now
	v.mine.Update(dt, mine.Input{Dir: v.heldDirection()}, v.session.ShovelLevel)
}

// cellCanvas maps particle pixels to terminal cells.
type cellCanvas struct {
	v *viewer
}

func (c cellCanvas) FillRect(x, y, w, h float64, col color.RGBA) {
	cx, cy := int(x)/config.TileSize*2, int(y)/config.TileSize+1
	shaded := c.v.light.Shade(col, int(x), int(y))
	c.v.screen.SetContent(cx, cy, '·', nil, tcell.StyleDefault.Foreground(rgb(shaded)))
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (v *viewer) draw() {
	m := v.mine
	v.screen.Clear()

	px, py := m.ActorScreen()
	lighting.MineFrame(v.masks, px, py, v.session.HasTorch).Apply(v.light)

	_, height := v.screen.Size()
	first, last := m.Camera.VisibleRows()
	half := config.TileSize / 2
	for depth := first; depth < last; depth++ {
		sy := int(m.Camera.ScreenY(float64(depth * config.TileSize)))
		row := sy/config.TileSize + 1
		if row < 1 || row >= height {
			continue
		}
		for col := 0; col < m.Terrain.Columns(); col++ {
			c, _ := m.Terrain.Cell(col, depth)
			base := c.Kind.Color()
			if c.Kind == tile.Empty {
				base = config.EmptyColor
			}
			glyph := '█'
			if c.Kind.Destructible() && c.Damaged() {
				glyph = '▓'
				base = palette.Darken(base, 0.5+0.5*c.Health())
			}
			shaded := v.light.Shade(base, col*config.TileSize+half, sy+half)
			style := tcell.StyleDefault.Foreground(rgb(shaded)).Background(tcell.ColorBlack)
			v.screen.SetContent(col*2, row, glyph, nil, style)
			v.screen.SetContent(col*2+1, row, glyph, nil, style)
		}
	}

	a := m.Actor
	ay := int(m.Camera.ScreenY(float64(a.Depth*config.TileSize)))/config.TileSize + 1
	face := '>'
	if !a.FacingRight {
		face = '<'
	}
	if a.State == actor.Mining && a.Frame() == 1 {
		face = '*'
	}
	actorStyle := tcell.StyleDefault.Foreground(rgb(config.MoleBody)).Background(tcell.ColorBlack)
	v.screen.SetContent(a.Col*2, ay, 'm', nil, actorStyle)
	v.screen.SetContent(a.Col*2+1, ay, face, nil, actorStyle)

	m.Particles.Draw(cellCanvas{v: v}, m.Camera.Y)

	status := fmt.Sprintf("%s  %s  shovel %d  [arrows/wasd move, t torch, q quit]",
		session.FormatDepth(a.Depth), session.FormatMoney(v.session.InventoryValue()), v.session.ShovelLevel)
	for i, r := range []rune(status) {
		v.screen.SetContent(i, 0, r, nil, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	}
	v.screen.Show()
}

// pump forwards terminal events until the screen is finalized or quit closes.
func (v *viewer) pump(events chan<- tcell.Event, quit <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-quit:
			return
		}
	}
}

// run plays until the player quits. The returned channel closes once the
// event pump has stopped, which happens after the screen is finalized.
func (v *viewer) run() <-chan struct{} {
	ticker := time.NewTicker(time.Second / config.TPS)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	done := make(chan struct{})
	go v.pump(eventChan, quit, done)
	defer close(quit)

	for {
		select {
		case ev := <-eventChan:
			if !v.handleInput(ev) {
				return done
			}
		case <-done:
			return done
		case <-ticker.C:
			v.update()
			v.draw()
		}
	}
}

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	table, err := defs.LoadOreTable(settings.OreTablePath)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	// the mine logs to stderr, which would scribble over the screen
	log.SetOutput(io.Discard)

	v, err := newViewer(screen, settings, table)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "failed to create mine: %v\n", err)
		os.Exit(1)
	}
	pumpDone := v.run()

	v.player.Close()
	screen.Fini()
	<-pumpDone
	fmt.Printf("Reached %s, carrying %s of ore.\n",
		session.FormatDepth(v.mine.Actor.Depth), session.FormatMoney(v.session.InventoryValue()))
}
