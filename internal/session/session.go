// internal/session/session.go

// Package session keeps the state that outlives a single dive: where the
// player is, which panel is open, and what they own.
package session

import (
	"errors"

	"go-mine-digger/internal/config"
	"go-mine-digger/internal/event"
	"go-mine-digger/internal/tile"
)

// Mode is the top-level scene.
type Mode int

const (
	Overworld Mode = iota
	Underground
)

func (m Mode) String() string {
	if m == Underground {
		return "underground"
	}
	return "overworld"
}

// HubMode is what the player is doing in the overworld.
type HubMode int

const (
	Walk HubMode = iota
	Dialogue
	Shop
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrTorchTaken        = errors.New("torch already taken")
	ErrNotInShop         = errors.New("shop is not open")
)

// Prices is what the merchant pays per ore.
var Prices = map[tile.Kind]int{
	tile.BronzeOre:  10,
	tile.SilverOre:  25,
	tile.GoldOre:    100,
	tile.DiamondOre: 500,
}

// Session is the player's whole game. The zero value is not usable; call New.
type Session struct {
	Mode          Mode
	HubMode       HubMode
	InventoryOpen bool

	Money       int
	ShovelLevel int
	HasTorch    bool

	inventory map[tile.Kind]int
	events    *event.Dispatcher
}

// New starts a session in the overworld with a level-1 shovel. events may be nil.
func New(events *event.Dispatcher) *Session {
	inv := make(map[tile.Kind]int, len(tile.Ores))
	for _, k := range tile.Ores {
		inv[k] = 0
	}
	return &Session{ShovelLevel: 1, inventory: inv, events: events}
}

// Count is how many of an ore the player holds.
func (s *Session) Count(k tile.Kind) int { return s.inventory[k] }

// CreditOre adds one ore to the inventory. Non-ore kinds are ignored.
func (s *Session) CreditOre(k tile.Kind) bool {
	if !k.IsOre() {
		return false
	}
	s.inventory[k]++
	s.events.Dispatch(event.Event{Type: event.OreCredited, Data: k})
	return true
}

// InventoryValue is what SellAll would earn right now.
func (s *Session) InventoryValue() int {
	total := 0
	for k, n := range s.inventory {
		total += n * Prices[k]
	}
	return total
}

// SellAll converts every held ore to money and returns the amount earned.
func (s *Session) SellAll() int {
	earned := s.InventoryValue()
	for k := range s.inventory {
		s.inventory[k] = 0
	}
	s.Money += earned
	s.events.Dispatch(event.Event{Type: event.OreSold, Data: event.SaleData{Earned: earned, Money: s.Money}})
	return earned
}

// UpgradeCost is the price of the next shovel level.
func (s *Session) UpgradeCost() int { return config.ShovelCostPerLevel * s.ShovelLevel }

// UpgradeShovel buys the next shovel level.
func (s *Session) UpgradeShovel() error {
	cost := s.UpgradeCost()
	if s.Money < cost {
		return ErrInsufficientFunds
	}
	s.Money -= cost
	s.ShovelLevel++
	s.events.Dispatch(event.Event{Type: event.ShovelUpgraded, Data: event.UpgradeData{Level: s.ShovelLevel, Cost: cost}})
	return nil
}

// TakeTorch moves the wall torch into the player's hands.
func (s *Session) TakeTorch() error {
	if s.HasTorch {
		return ErrTorchTaken
	}
	s.HasTorch = true
	s.events.Dispatch(event.Event{Type: event.TorchTaken})
	return nil
}

// Talk opens the merchant dialogue.
func (s *Session) Talk() {
	if s.Mode != Overworld || s.HubMode != Walk {
		return
	}
	s.HubMode = Dialogue
	s.events.Dispatch(event.Event{Type: event.MerchantTalk})
}

// OpenShop moves from the dialogue to the shop.
func (s *Session) OpenShop() error {
	if s.HubMode != Dialogue {
		return ErrNotInShop
	}
	s.HubMode = Shop
	return nil
}

// CloseShop returns to walking.
func (s *Session) CloseShop() { s.HubMode = Walk }

// EnterMine switches to the underground scene.
func (s *Session) EnterMine() {
	if s.Mode == Underground {
		return
	}
	s.Mode = Underground
	s.events.Dispatch(event.Event{Type: event.MineEntered})
}

// ExitMine returns to the overworld, walking.
func (s *Session) ExitMine() {
	if s.Mode == Overworld {
		return
	}
	s.Mode = Overworld
	s.HubMode = Walk
	s.events.Dispatch(event.Event{Type: event.MineExited})
}

// ToggleInventory opens the overlay unless a dialogue or the shop is up,
// and closes it if it is open.
func (s *Session) ToggleInventory() {
	if s.InventoryOpen {
		s.InventoryOpen = false
		return
	}
	if s.Mode == Overworld && s.HubMode != Walk {
		return
	}
	s.InventoryOpen = true
}

// Escape closes the innermost open panel: the inventory first, then the
// dialogue or shop.
func (s *Session) Escape() {
	switch {
	case s.InventoryOpen:
		s.InventoryOpen = false
	case s.HubMode == Dialogue || s.HubMode == Shop:
		s.HubMode = Walk
	}
}

// Paused reports whether gameplay input should be ignored.
func (s *Session) Paused() bool { return s.InventoryOpen }
