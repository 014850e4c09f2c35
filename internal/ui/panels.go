// internal/ui/panels.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-mine-digger/internal/config"
	"go-mine-digger/internal/render"
	"go-mine-digger/internal/session"
)

// Overlay dims the whole screen.
func Overlay(dst *ebiten.Image, c color.Color) {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	vector.DrawFilledRect(dst, 0, 0, float32(w), float32(h), c, false)
}

// ActionPanel is the strip along the bottom of the hub.
func ActionPanel(dst *ebiten.Image) {
	y := float32(config.ScreenHeight - config.UIPanelHeight)
	vector.DrawFilledRect(dst, 0, y, config.ScreenWidth, config.UIPanelHeight, config.PanelColor, false)
	vector.StrokeRect(dst, 0, y, config.ScreenWidth, config.UIPanelHeight, 2, config.PanelStroke, false)
}

// Inventory draws the inventory window with its close button.
func Inventory(dst *ebiten.Image, fonts *render.Fonts, s *session.Session, closeBtn *Button) {
	Overlay(dst, config.InventoryOverlay)

	x, y := float32(config.ScreenWidth/4), float32(config.ScreenHeight/4)
	w, h := float32(config.ScreenWidth/2), float32(config.ScreenHeight/2)
	vector.DrawFilledRect(dst, x, y, w, h, config.InventoryPanel, false)
	vector.StrokeRect(dst, x, y, w, h, 3, config.InventoryStroke, false)

	render.DrawTextCentered(dst, "INVENTORY", fonts.Large, float64(x+w/2), float64(y+32), config.TextLightColor)
	lineY := float64(y) + 80
	for _, l := range s.InventoryLines() {
		g, _ := l.Kind.Glow()
		render.DrawText(dst, l.Text, fonts.Small, float64(x)+40, lineY, g)
		lineY += 40
	}
	closeBtn.Draw(dst, fonts.Small)
}

// Dialogue draws the merchant's greeting box.
func Dialogue(dst *ebiten.Image, fonts *render.Fonts, line string) {
	Overlay(dst, config.OverlayColor)
	x, y := float32(50), float32(config.ScreenHeight-150)
	w, h := float32(config.ScreenWidth-100), float32(100)
	vector.DrawFilledRect(dst, x, y, w, h, config.PanelColor, false)
	vector.StrokeRect(dst, x, y, w, h, 2, config.ButtonStroke, false)
	render.DrawText(dst, line, fonts.Large, float64(x)+20, float64(y)+20, config.TextLightColor)
}

// Shop draws the shop screen: the held ore and current funds.
func Shop(dst *ebiten.Image, fonts *render.Fonts, s *session.Session) {
	dst.Fill(config.ShopBackground)
	render.DrawTextCentered(dst, "THE MERCHANT'S EMPORIUM", fonts.Large, config.ScreenWidth/2, 52, config.MerchantColor)
	lineY := 120.0
	for _, l := range s.InventoryLines() {
		g, _ := l.Kind.Glow()
		render.DrawText(dst, l.Text, fonts.Small, config.ScreenWidth/4-50, lineY, g)
		lineY += 30
	}
	render.DrawTextCentered(dst, "Current Funds: "+session.FormatMoney(s.Money), fonts.Large,
		config.ScreenWidth/2, config.ScreenHeight-68, config.MoneyColor)
}
