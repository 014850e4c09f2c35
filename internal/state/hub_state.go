// internal/state/hub_state.go
package state

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-mine-digger/internal/config"
	"go-mine-digger/internal/hub"
	"go-mine-digger/internal/lighting"
	"go-mine-digger/internal/render"
	"go-mine-digger/internal/session"
	"go-mine-digger/internal/ui"
)

const merchantGreeting = "Merchant: Greetings, delver."

// HubState is the overworld: walking, talking to the merchant and the shop.
type HubState struct {
	sm *StateMachine
	w  *World

	btnTalk, btnMine, btnTorch *ui.Button
	btnInventory, btnCloseInv  *ui.Button
	btnOpenShop, btnCloseShop  *ui.Button
	btnSellAll, btnUpgrade     *ui.Button
}

func NewHubState(sm *StateMachine, w *World) *HubState {
	W, H := config.ScreenWidth, config.ScreenHeight
	return &HubState{
		sm:           sm,
		w:            w,
		btnTalk:      ui.NewButton(W/2-190, H-50, 120, 40, "Talk"),
		btnMine:      ui.NewButton(W/2-50, H-50, 120, 40, "Enter Mine"),
		btnTorch:     ui.NewButton(W/2+90, H-50, 120, 40, "Take Torch"),
		btnInventory: ui.NewButton(10, 10, 90, 30, "Inventory"),
		btnCloseInv:  ui.NewButton(W/2-50, H-80, 100, 40, "Close"),
		btnOpenShop:  ui.NewButton(W-150, H-100, 120, 40, "Open Shop"),
		btnCloseShop: ui.NewButton(W-150, 20, 100, 40, "Close"),
		btnSellAll:   ui.NewButton(W/4-75, H/2, 150, 40, "Sell All Ores"),
		btnUpgrade:   ui.NewButton(W*3/4-90, H/2, 180, 40, ""),
	}
}

func (h *HubState) Enter() {
	h.w.HubActor.Hold(config.EntryHold)
}

func (h *HubState) Exit() {}

func (h *HubState) torchOnWall() bool {
	_, ok := h.w.Hub.WallTorch()
	return ok && !h.w.Session.HasTorch
}

// near reports which points of interest the actor can reach this frame.
func (h *HubState) near() (merchant, hole, torch bool) {
	a := h.w.HubActor
	merchant = hub.Near(h.w.Hub.Merchant(), a.Col, a.Depth)
	hole = hub.Near(h.w.Hub.Hole(), a.Col, a.Depth)
	if p, ok := h.w.Hub.WallTorch(); ok && h.torchOnWall() {
		torch = hub.Near(p, a.Col, a.Depth)
	}
	return
}

func (h *HubState) Update(deltaTime float64) {
	s := h.w.Session
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.Escape()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		h.sm.SetState(NewPauseState(h.sm, h))
		return
	}

	if s.InventoryOpen {
		if h.btnCloseInv.Clicked() {
			s.ToggleInventory()
		}
		return
	}
	if h.btnInventory.Clicked() {
		s.ToggleInventory()
		if s.InventoryOpen {
			return
		}
	}

	switch s.HubMode {
	case session.Walk:
		h.w.HubActor.Step(frameDuration(deltaTime), PollKeys().Direction(), h.w.Hub, s.ShovelLevel)

		nearMerchant, nearHole, nearTorch := h.near()
		switch {
		case nearMerchant && h.btnTalk.Clicked():
			s.Talk()
		case nearHole && h.btnMine.Clicked():
			s.EnterMine()
			h.sm.SetState(NewMineState(h.sm, h.w))
		case nearTorch && h.btnTorch.Clicked():
			if err := s.TakeTorch(); err != nil {
				log.Printf("[Hub] %v", err)
			}
		}

	case session.Dialogue:
		if h.btnOpenShop.Clicked() {
			_ = s.OpenShop()
		}

	case session.Shop:
		switch {
		case h.btnCloseShop.Clicked():
			s.CloseShop()
		case h.btnSellAll.Clicked():
			s.SellAll()
		case h.btnUpgrade.Clicked():
			if err := s.UpgradeShovel(); errors.Is(err, session.ErrInsufficientFunds) {
				log.Printf("[Shop] need %s for the next shovel", session.FormatMoney(s.UpgradeCost()))
			}
		}
	}
}

func (h *HubState) Draw(screen *ebiten.Image) {
	s := h.w.Session
	if s.HubMode == session.Shop {
		ui.Shop(screen, h.w.Fonts, s)
		h.btnUpgrade.Text = s.UpgradeLabel()
		h.btnSellAll.Draw(screen, h.w.Fonts.Small)
		h.btnUpgrade.Draw(screen, h.w.Fonts.Small)
		h.btnCloseShop.Draw(screen, h.w.Fonts.Small)
		h.drawInventory(screen)
		return
	}

	h.drawScene(screen)

	switch s.HubMode {
	case session.Walk:
		ui.ActionPanel(screen)
		h.btnInventory.Draw(screen, h.w.Fonts.Small)
		render.DrawText(screen, s.StatusLine(), h.w.Fonts.Small, 120, 15, config.TextLightColor)
		nearMerchant, nearHole, nearTorch := h.near()
		if nearMerchant {
			h.btnTalk.Draw(screen, h.w.Fonts.Small)
		}
		if nearHole {
			h.btnMine.Draw(screen, h.w.Fonts.Small)
		}
		if nearTorch {
			h.btnTorch.Draw(screen, h.w.Fonts.Small)
		}
	case session.Dialogue:
		ui.Dialogue(screen, h.w.Fonts, merchantGreeting)
		h.btnOpenShop.Draw(screen, h.w.Fonts.Small)
	}
	h.drawInventory(screen)
}

// drawScene draws the lit hub with the actor in it.
func (h *HubState) drawScene(screen *ebiten.Image) {
	render.DrawHub(screen, h.w.Hub, h.torchOnWall())
	h.w.Sprites.DrawActor(screen, h.w.HubActor, 0)

	px, py := h.w.HubActor.PixelCenter(config.TileSize)
	m := h.w.Hub.Merchant()
	scene := lighting.HubScene{
		Width:    config.ScreenWidth,
		Height:   config.ScreenHeight,
		Fixtures: [][2]int{{m.Col, m.Row}},
		ActorX:   int(px),
		ActorY:   int(py),
		HasTorch: h.w.Session.HasTorch,
	}
	if p, ok := h.w.Hub.WallTorch(); ok && h.torchOnWall() {
		scene.WallTorch = &[2]int{p.Col, p.Row}
	}
	h.w.Darkness.Light(screen, lighting.HubFrame(h.w.Masks, scene))
}

func (h *HubState) drawInventory(screen *ebiten.Image) {
	if h.w.Session.InventoryOpen {
		ui.Inventory(screen, h.w.Fonts, h.w.Session, h.btnCloseInv)
	}
}
