// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-mine-digger/internal/config"
	"go-mine-digger/internal/render"
	"go-mine-digger/internal/ui"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the previous state and draws it dimmed.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	w             *World
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	ps := &PauseState{stateMachine: sm, previousState: prevState}
	switch s := prevState.(type) {
	case *HubState:
		ps.w = s.w
	case *MineState:
		ps.w = s.w
	}
	return ps
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	ui.Overlay(screen, config.OverlayColor)
	if s.w != nil {
		render.DrawTextCentered(screen, "PAUSED", s.w.Fonts.Large,
			float64(config.ScreenWidth)/2, float64(config.ScreenHeight)/2, config.TextLightColor)
	}
}

func (s *PauseState) Exit() {}
