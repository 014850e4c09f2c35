// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-mine-digger/internal/config"
	"go-mine-digger/internal/render"
)

// MenuState is the title screen; Space starts the session in the hub.
type MenuState struct {
	sm *StateMachine
	w  *World
}

func NewMenuState(sm *StateMachine, w *World) *MenuState {
	return &MenuState{sm: sm, w: w}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(NewHubState(m.sm, m.w))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.MineDarkness)
	cx := float64(config.ScreenWidth) / 2
	render.DrawTextCentered(screen, "GO MINE DIGGER", m.w.Fonts.Large, cx, float64(config.ScreenHeight)/2-20, config.MerchantColor)
	render.DrawTextCentered(screen, "press space", m.w.Fonts.Small, cx, float64(config.ScreenHeight)/2+20, config.TextLightColor)
}

func (m *MenuState) Exit() {}
