// Package sound plays short synthesized effects for game events.
package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

// Effect identifies a game event with a sound.
type Effect int

const (
	EffectFire Effect = iota
	EffectAlienHit
	EffectShipHit
	EffectLevelUp
)

// Player plays effects. Implementations must not block the game loop.
type Player interface {
	Play(e Effect)
}

// Silent is a Player that plays nothing.
type Silent struct{}

// Play does nothing.
func (Silent) Play(Effect) {}

const sampleRate = beep.SampleRate(44100)

// tone describes one beep of an effect.
type tone struct {
	freq     float64
	duration time.Duration
}

var effectTones = map[Effect][]tone{
	EffectFire:     {{freq: 1320, duration: 25 * time.Millisecond}},
	EffectAlienHit: {{freq: 440, duration: 40 * time.Millisecond}, {freq: 330, duration: 40 * time.Millisecond}},
	EffectShipHit:  {{freq: 220, duration: 120 * time.Millisecond}, {freq: 110, duration: 200 * time.Millisecond}},
	EffectLevelUp:  {{freq: 523, duration: 70 * time.Millisecond}, {freq: 659, duration: 70 * time.Millisecond}, {freq: 784, duration: 110 * time.Millisecond}},
}

// Speaker plays effects through the system audio device.
type Speaker struct {
	volume float64 // Volume in beep's log2 scale (0 = unchanged)

	mu      sync.Mutex
	buffers map[Effect]*beep.Buffer
}

var initOnce sync.Once
var initErr error

// NewSpeaker initializes the audio device and pre-renders every effect.
// An error means no audio device is available; callers fall back to Silent.
func NewSpeaker(volume float64) (*Speaker, error) {
	initOnce.Do(func() {
		initErr = speaker.Init(sampleRate, sampleRate.N(time.Second/20))
	})
	if initErr != nil {
		return nil, errors.Wrap(initErr, "init speaker")
	}

	s := &Speaker{
		volume:  volume,
		buffers: make(map[Effect]*beep.Buffer, len(effectTones)),
	}
	for e, tones := range effectTones {
		buf, err := render(tones)
		if err != nil {
			return nil, err
		}
		s.buffers[e] = buf
	}
	return s, nil
}

// render synthesizes a sequence of sine tones into a buffer.
func render(tones []tone) (*beep.Buffer, error) {
	format := beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}
	buf := beep.NewBuffer(format)
	for _, t := range tones {
		sine, err := generators.SineTone(sampleRate, t.freq)
		if err != nil {
			return nil, errors.Wrapf(err, "sine tone %.0fHz", t.freq)
		}
		buf.Append(beep.Take(sampleRate.N(t.duration), sine))
	}
	return buf, nil
}

// Play starts an effect without waiting for it to finish.
func (s *Speaker) Play(e Effect) {
	s.mu.Lock()
	buf, ok := s.buffers[e]
	s.mu.Unlock()
	if !ok {
		return
	}

	streamer := &effects.Volume{
		Streamer: buf.Streamer(0, buf.Len()),
		Base:     2,
		Volume:   s.volume,
	}
	speaker.Play(streamer)
}

// New returns a Speaker when enabled and available, otherwise Silent.
// The returned error reports why audio is off while enabled; it is not fatal.
func New(enabled bool, volume float64) (Player, error) {
	if !enabled {
		return Silent{}, nil
	}
	s, err := NewSpeaker(volume)
	if err != nil {
		return Silent{}, err
	}
	return s, nil
}
