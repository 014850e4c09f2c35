// internal/state/mine_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-mine-digger/internal/config"
	"go-mine-digger/internal/lighting"
	"go-mine-digger/internal/mine"
	"go-mine-digger/internal/render"
	"go-mine-digger/internal/session"
	"go-mine-digger/internal/ui"
)

// MineState is the underground: digging, debris and the torch-lit dark.
type MineState struct {
	sm *StateMachine
	w  *World

	btnInventory *ui.Button
	btnCloseInv  *ui.Button
	btnSurface   *ui.Button
}

func NewMineState(sm *StateMachine, w *World) *MineState {
	W, H := config.ScreenWidth, config.ScreenHeight
	return &MineState{
		sm:           sm,
		w:            w,
		btnInventory: ui.NewButton(10, 10, 90, 30, "Inventory"),
		btnCloseInv:  ui.NewButton(W/2-50, H-80, 100, 40, "Close"),
		btnSurface:   ui.NewButton(W-160, 10, 150, 30, "Return to Surface"),
	}
}

func (m *MineState) Enter() {
	m.w.Mine.Enter()
}

func (m *MineState) Exit() {}

func (m *MineState) Update(deltaTime float64) {
	s := m.w.Session
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.Escape()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		m.sm.SetState(NewPauseState(m.sm, m))
		return
	}

	if s.InventoryOpen {
		if m.btnCloseInv.Clicked() {
			s.ToggleInventory()
		}
		return
	}
	if m.btnInventory.Clicked() {
		s.ToggleInventory()
		return
	}

	m.w.Mine.Update(frameDuration(deltaTime), mine.Input{Dir: PollKeys().Direction()}, s.ShovelLevel)

	if m.btnSurface.Clicked() {
		s.ExitMine()
		m.sm.SetState(NewHubState(m.sm, m.w))
	}
}

func (m *MineState) Draw(screen *ebiten.Image) {
	mn := m.w.Mine
	screen.Fill(config.EmptyColor)
	render.DrawTerrain(screen, mn.Terrain, mn.Camera, m.w.Millis())
	m.w.Sprites.DrawActor(screen, mn.Actor, mn.Camera.Y)
	mn.Particles.Draw(render.Canvas{Dst: screen}, mn.Camera.Y)

	px, py := mn.ActorScreen()
	m.w.Darkness.Light(screen, lighting.MineFrame(m.w.Masks, px, py, m.w.Session.HasTorch))

	render.DrawText(screen, session.FormatDepth(mn.Actor.Depth), m.w.Fonts.Small, 120, 15, config.TextLightColor)
	m.btnInventory.Draw(screen, m.w.Fonts.Small)
	m.btnSurface.Draw(screen, m.w.Fonts.Small)

	if m.w.Session.InventoryOpen {
		ui.Inventory(screen, m.w.Fonts, m.w.Session, m.btnCloseInv)
	}
}
