// internal/session/format.go
package session

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"go-mine-digger/internal/tile"
)

// FormatMoney renders an amount with thousands separators, e.g. "$12,500".
func FormatMoney(n int) string {
	return "$" + humanize.Comma(int64(n))
}

// FormatDepth renders a depth in metres, one row per metre.
func FormatDepth(depth int) string {
	return fmt.Sprintf("Depth: %sm", humanize.Comma(int64(depth)))
}

// StatusLine is the hub's money and shovel summary.
func (s *Session) StatusLine() string {
	return fmt.Sprintf("Money: %s | Shovel Lv: %d", FormatMoney(s.Money), s.ShovelLevel)
}

// UpgradeLabel is the shop button text for the next shovel level.
func (s *Session) UpgradeLabel() string {
	return fmt.Sprintf("Upgrade Shovel (%s)", FormatMoney(s.UpgradeCost()))
}

// InventoryLines lists each ore with its count, in ore order.
func (s *Session) InventoryLines() []InventoryLine {
	lines := make([]InventoryLine, 0, len(tile.Ores))
	for _, k := range tile.Ores {
		lines = append(lines, InventoryLine{Kind: k, Text: fmt.Sprintf("%s: %s", label(k), humanize.Comma(int64(s.Count(k))))})
	}
	return lines
}

// InventoryLine is one row of the inventory or shop listing.
type InventoryLine struct {
	Kind tile.Kind
	Text string
}

func label(k tile.Kind) string {
	name := k.String()
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
