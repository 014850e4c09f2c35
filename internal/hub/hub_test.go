package hub

import (
	"errors"
	"testing"

	"go-mine-digger/internal/actor"
	"go-mine-digger/internal/config"
)

func TestDefaultLayoutPointsOfInterest(t *testing.T) {
	m := Default()
	if m.Width() != 20 || m.Height() != 14 {
		t.Fatalf("size %dx%d", m.Width(), m.Height())
	}
	if got := m.Merchant(); got != (Point{9, 5}) {
		t.Errorf("merchant at %v", got)
	}
	if got := m.Hole(); got != (Point{8, 11}) {
		t.Errorf("hole at %v", got)
	}
	if got := m.Spawn(); got != (Point{10, 12}) {
		t.Errorf("spawn at %v", got)
	}
	torch, ok := m.WallTorch()
	if !ok || torch != (Point{3, 10}) {
		t.Errorf("torch at %v (%v)", torch, ok)
	}
}

func TestWalkability(t *testing.T) {
	m := Default()
	tests := []struct {
		col, row int
		want     bool
	}{
		{1, 1, true},
		{0, 0, false},   // wall
		{9, 4, false},   // counter
		{9, 5, false},   // merchant
		{8, 11, false},  // hole
		{3, 10, true},   // torch marker becomes floor
		{10, 12, true},  // spawn marker becomes floor
		{-1, 5, false},  // outside
		{5, 100, false}, // outside
	}
	for _, tt := range tests {
		if got := m.Walkable(tt.col, tt.row); got != tt.want {
			t.Errorf("Walkable(%d,%d) = %v, want %v", tt.col, tt.row, got, tt.want)
		}
	}
}

func TestActorWalksHub(t *testing.T) {
	m := Default()
	s := m.Spawn()
	a := actor.New(s.Col, s.Row)

	if out := a.Step(config.MoveInterval, actor.Left, m, 1); out != actor.Moved {
		t.Fatalf("step left: %v", out)
	}
	if a.Col != s.Col-1 || a.State != actor.Crawling {
		t.Errorf("after left: col=%d state=%v", a.Col, a.State)
	}

	a = actor.New(s.Col, s.Row)
	if out := a.Step(config.MoveInterval, actor.Down, m, 1); out != actor.Bumped {
		t.Errorf("bottom wall should block, got %v", out)
	}
	if a.Depth != s.Row {
		t.Errorf("actor moved into the wall")
	}
}

func TestNear(t *testing.T) {
	m := Default()
	h := m.Hole()
	if !Near(h, h.Col+1, h.Row+1) {
		t.Error("diagonal neighbour should be near")
	}
	if Near(h, h.Col+2, h.Row) {
		t.Error("two tiles away is not near")
	}
	s := m.Spawn()
	if Near(h, s.Col, s.Row) {
		t.Error("spawn should not start next to the hole")
	}
}

func TestParseErrors(t *testing.T) {
	cases := map[string][]string{
		"empty":       nil,
		"ragged":      {"WWW", "W.", "WWW"},
		"unknown":     {"WOH", "WX."},
		"no merchant": {"WWW", "WH.", "WWW"},
	}
	for name, rows := range cases {
		if _, err := Parse(rows); !errors.Is(err, ErrBadLayout) {
			t.Errorf("%s: got %v, want ErrBadLayout", name, err)
		}
	}
}
