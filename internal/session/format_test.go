package session

import (
	"testing"

	"go-mine-digger/internal/tile"
)

func TestFormatting(t *testing.T) {
	if got := FormatMoney(12500); got != "$12,500" {
		t.Errorf("FormatMoney: %q", got)
	}
	if got := FormatDepth(1024); got != "Depth: 1,024m" {
		t.Errorf("FormatDepth: %q", got)
	}

	s := New(nil)
	s.Money = 1500
	s.ShovelLevel = 12
	if got := s.StatusLine(); got != "Money: $1,500 | Shovel Lv: 12" {
		t.Errorf("StatusLine: %q", got)
	}
	if got := s.UpgradeLabel(); got != "Upgrade Shovel ($1,200)" {
		t.Errorf("UpgradeLabel: %q", got)
	}
}

func TestInventoryLines(t *testing.T) {
	s := New(nil)
	s.CreditOre(tile.SilverOre)
	lines := s.InventoryLines()
	if len(lines) != 4 {
		t.Fatalf("%d lines", len(lines))
	}
	want := []string{"Bronze: 0", "Silver: 1", "Gold: 0", "Diamond: 0"}
	for i, l := range lines {
		if l.Text != want[i] {
			t.Errorf("line %d: %q, want %q", i, l.Text, want[i])
		}
	}
}
