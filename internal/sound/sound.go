// Package sound plays the short cues at the end of a game. Audio is
// optional: when the output device cannot be opened the game stays silent.
package sound

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"
)

const SampleRate = beep.SampleRate(44100)

type Player interface {
	Explode()
	Win()
	Close()
}

type silent struct{}

func (silent) Explode() {}
func (silent) Win()     {}
func (silent) Close()   {}

// Silent returns a Player that does nothing.
func Silent() Player { return silent{} }

type speakerPlayer struct {
	log logrus.FieldLogger
}

// New opens the default output device. Failure is logged and yields a
// silent player.
func New(log logrus.FieldLogger) Player {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		log.WithError(err).Warn("audio unavailable, continuing without sound")
		return Silent()
	}
	return &speakerPlayer{log: log}
}

func (p *speakerPlayer) play(name string, build func() (beep.Streamer, error)) {
	s, err := build()
	if err != nil {
		p.log.WithError(err).WithField("cue", name).Warn("unable to build sound cue")
		return
	}
	speaker.Play(s)
}

func (p *speakerPlayer) Explode() { p.play("explode", Explosion) }
func (p *speakerPlayer) Win()     { p.play("win", Fanfare) }
func (p *speakerPlayer) Close()   { speaker.Close() }

type note struct {
	freq float64
	dur  time.Duration
}

func melody(notes ...note) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		if n.freq == 0 {
			parts = append(parts, beep.Silence(SampleRate.N(n.dur)))
			continue
		}
		tone, err := generators.SineTone(SampleRate, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(SampleRate.N(n.dur), tone))
	}
	return beep.Seq(parts...), nil
}

// Explosion is a falling low rumble.
func Explosion() (beep.Streamer, error) {
	return melody(
		note{freq: 220, dur: 80 * time.Millisecond},
		note{freq: 165, dur: 80 * time.Millisecond},
		note{freq: 110, dur: 240 * time.Millisecond},
	)
}

// Fanfare is a rising major arpeggio.
func Fanfare() (beep.Streamer, error) {
	return melody(
		note{freq: 523.25, dur: 90 * time.Millisecond},
		note{freq: 659.25, dur: 90 * time.Millisecond},
		note{freq: 783.99, dur: 90 * time.Millisecond},
		note{dur: 30 * time.Millisecond},
		note{freq: 1046.5, dur: 200 * time.Millisecond},
	)
}
