// internal/audio/cues.go

// Package audio synthesises the game's short sound cues with beep.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"go-mine-digger/internal/utils"
)

const sampleRate = beep.SampleRate(44100)

// Cue is one of the game's sounds.
type Cue int

const (
	CueDig Cue = iota
	CueBreak
	CueTalk
	CueCoin
)

func (c Cue) String() string {
	switch c {
	case CueDig:
		return "dig"
	case CueBreak:
		return "break"
	case CueTalk:
		return "talk"
	case CueCoin:
		return "coin"
	}
	return "unknown"
}

// Cue lengths.
const (
	digDuration   = 60 * time.Millisecond
	breakDuration = 180 * time.Millisecond
	talkNote      = 90 * time.Millisecond
	coinNote1     = 70 * time.Millisecond
	coinNote2     = 140 * time.Millisecond
	attack        = 5 * time.Millisecond
)

// noise is a finite white-noise burst whose pitch is set by holding each
// random value for hold samples.
type noise struct {
	rng      *utils.PRNGService
	hold     int
	left     int
	value    float64
	position int
	total    int
}

func newNoise(d time.Duration, hold int, rng *utils.PRNGService) beep.Streamer {
	if hold < 1 {
		hold = 1
	}
	return &noise{rng: rng, hold: hold, total: sampleRate.N(d)}
}

func (n *noise) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if n.position >= n.total {
			return i, i > 0
		}
		if n.left == 0 {
			n.value = n.rng.Uniform(-1, 1)
			n.left = n.hold
		}
		n.left--
		samples[i][0] = n.value
		samples[i][1] = n.value
		n.position++
	}
	return len(samples), true
}

func (n *noise) Err() error { return nil }

// envelope ramps in over attack and decays linearly to zero at the end.
type envelope struct {
	s        beep.Streamer
	attack   int
	total    int
	position int
}

func newEnvelope(s beep.Streamer, d, att time.Duration) beep.Streamer {
	return &envelope{s: beep.Take(sampleRate.N(d), s), attack: sampleRate.N(att), total: sampleRate.N(d)}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.s.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		} else if e.total > e.attack {
			vol = float64(e.total-e.position) / float64(e.total-e.attack)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// square is a fixed-frequency square wave.
func square(freq float64) beep.Streamer {
	phase := 0.0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := -1.0
			if phase < 0.5 {
				v = 1.0
			}
			samples[i][0], samples[i][1] = v, v
			phase += freq / float64(sampleRate)
			phase -= math.Floor(phase)
		}
		return len(samples), true
	})
}

func sine(freq float64) beep.Streamer {
	s, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return beep.Silence(-1)
	}
	return s
}

func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// NewCue builds a fresh, finite streamer for c.
func NewCue(c Cue, rng *utils.PRNGService) beep.Streamer {
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}
	switch c {
	case CueDig:
		return volume(newEnvelope(newNoise(digDuration, 6, rng), digDuration, attack), 0.4)
	case CueBreak:
		return volume(beep.Mix(
			newEnvelope(newNoise(breakDuration, 14, rng), breakDuration, attack),
			newEnvelope(sine(90), breakDuration, attack),
		), 0.35)
	case CueTalk:
		return volume(beep.Seq(
			newEnvelope(sine(392), talkNote, attack),
			newEnvelope(sine(330), talkNote, attack),
			newEnvelope(sine(440), talkNote, attack),
		), 0.3)
	case CueCoin:
		return volume(beep.Seq(
			newEnvelope(square(987.77), coinNote1, attack),
			newEnvelope(square(1318.51), coinNote2, attack),
		), 0.2)
	}
	return nil
}
