package tile

import "testing"

func TestMaxDurability(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{Empty, 0},
		{Dirt, 1},
		{BronzeOre, 3},
		{SilverOre, 5},
		{GoldOre, 8},
		{DiamondOre, 12},
		{Rock, RockDurability},
	}
	for _, tt := range tests {
		if got := tt.kind.MaxDurability(); got != tt.want {
			t.Errorf("%s: got %d, want %d", tt.kind, got, tt.want)
		}
		if c := NewCell(tt.kind); int(c.Durability) != tt.want {
			t.Errorf("NewCell(%s) durability %d, want %d", tt.kind, c.Durability, tt.want)
		}
	}
}

func TestDestructible(t *testing.T) {
	for _, k := range []Kind{Empty, Rock} {
		if k.Destructible() {
			t.Errorf("%s should not be destructible", k)
		}
	}
	for _, k := range []Kind{Dirt, BronzeOre, DiamondOre} {
		if !k.Destructible() {
			t.Errorf("%s should be destructible", k)
		}
	}
}

func TestGlowOnlyForOres(t *testing.T) {
	if _, ok := Dirt.Glow(); ok {
		t.Error("dirt should not glow")
	}
	for _, k := range Ores {
		if _, ok := k.Glow(); !ok {
			t.Errorf("%s should glow", k)
		}
	}
}

func TestParseKindRoundTrip(t *testing.T) {
	for _, k := range Generated {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKind("mithril"); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestCellHealthAndDamaged(t *testing.T) {
	c := NewCell(SilverOre)
	if c.Damaged() || c.Health() != 1 {
		t.Fatalf("fresh cell reported damaged: %+v", c)
	}
	c.Durability = 2
	if !c.Damaged() {
		t.Error("expected damaged")
	}
	if h := c.Health(); h != 0.4 {
		t.Errorf("health: got %f, want 0.4", h)
	}
	rock := NewCell(Rock)
	rock.Durability = 1
	if rock.Damaged() {
		t.Error("rock never shows damage")
	}
}
