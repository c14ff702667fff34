// Package sound plays short synthesized blips for drag feedback.
// Audio is strictly best-effort: a missing or failing backend leaves
// the player disabled and every call becomes a no-op.
package sound

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player emits gesture feedback tones
type Player struct {
	enabled bool
}

// NewPlayer initializes the speaker. Failure is non-fatal: the editor
// runs fine without sound
func NewPlayer(enabled bool) *Player {
	p := &Player{}
	if !enabled {
		return p
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return p
	}
	p.enabled = true
	return p
}

// Enabled reports whether the audio backend came up
func (p *Player) Enabled() bool {
	return p.enabled
}

// Pickup marks the start of a drag
func (p *Player) Pickup() {
	p.play(660, 40*time.Millisecond)
}

// Drop marks a completed drop
func (p *Player) Drop() {
	p.play(880, 50*time.Millisecond)
}

// Cancel marks a discarded gesture
func (p *Player) Cancel() {
	p.play(330, 60*time.Millisecond)
}

func (p *Player) play(freq float64, d time.Duration) {
	if !p.enabled {
		return
	}
	tone, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), tone))
}
