package audio

import (
	"testing"

	"github.com/gopxl/beep"

	"go-mine-digger/internal/event"
	"go-mine-digger/internal/utils"
)

// drain streams s to the end and returns the sample count.
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			if buf[j][0] < -1 || buf[j][0] > 1 {
				t.Fatalf("sample %d out of range: %f", total+j, buf[j][0])
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("cue never ended")
	return 0
}

func TestCuesAreFinite(t *testing.T) {
	rng := utils.NewPRNGService(1)
	tests := []struct {
		cue  Cue
		want int
	}{
		{CueDig, sampleRate.N(digDuration)},
		{CueBreak, sampleRate.N(breakDuration)},
		{CueTalk, 3 * sampleRate.N(talkNote)},
		{CueCoin, sampleRate.N(coinNote1) + sampleRate.N(coinNote2)},
	}
	for _, tt := range tests {
		if got := drain(t, NewCue(tt.cue, rng)); got != tt.want {
			t.Errorf("%v: streamed %d samples, want %d", tt.cue, got, tt.want)
		}
	}
}

func TestUnknownCue(t *testing.T) {
	if NewCue(Cue(99), nil) != nil {
		t.Error("unknown cue should have no streamer")
	}
}

func TestSilentPlayerIgnoresCues(t *testing.T) {
	p := NewPlayer(nil)
	if p.Enabled() {
		t.Fatal("player enabled before Init")
	}
	p.Play(CueDig)
	p.OnEvent(event.Event{Type: event.TileDamaged})
	p.Close()
}

func TestEventsPickCues(t *testing.T) {
	var played []beep.Streamer
	p := NewPlayer(utils.NewPRNGService(2))
	p.sink = func(s beep.Streamer) { played = append(played, s) }

	d := event.NewDispatcher()
	p.Subscribe(d)
	d.Dispatch(event.Event{Type: event.TileDamaged})
	d.Dispatch(event.Event{Type: event.TileDestroyed})
	d.Dispatch(event.Event{Type: event.MineEntered})
	d.Dispatch(event.Event{Type: event.OreSold})

	if len(played) != 3 {
		t.Errorf("played %d cues, want 3", len(played))
	}
}
