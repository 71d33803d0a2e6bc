// Package audio turns match events into short synthesized beeps
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate is shared by every output
const SampleRate = beep.SampleRate(48000)

// DefaultVolume is the linear amplitude of every tone
const DefaultVolume = 0.3

// Tone identifies one of the feedback sounds
type Tone int

const (
	ToneHit Tone = iota
	ToneOrb
	ToneGameOver
	toneCount
)

// String returns the tone name
func (t Tone) String() string {
	switch t {
	case ToneHit:
		return "hit"
	case ToneOrb:
		return "orb"
	case ToneGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// ToneSpec describes a plain sine beep
type ToneSpec struct {
	Freq     float64 // Hz
	Duration time.Duration
}

// DefaultTones returns the stock sound table
func DefaultTones() [toneCount]ToneSpec {
	return [toneCount]ToneSpec{
		ToneHit:      {Freq: 220, Duration: 150 * time.Millisecond},
		ToneOrb:      {Freq: 660, Duration: 100 * time.Millisecond},
		ToneGameOver: {Freq: 440, Duration: 200 * time.Millisecond},
	}
}

// ToneBank pre-renders every tone to 16-bit stereo PCM
type ToneBank struct {
	rate   beep.SampleRate
	volume float64
	specs  [toneCount]ToneSpec
	pcm    [toneCount][]byte
}

// NewToneBank renders the default tones at volume
func NewToneBank(rate beep.SampleRate, volume float64) (*ToneBank, error) {
	b := &ToneBank{
		rate:   rate,
		volume: volume,
		specs:  DefaultTones(),
	}

	for t := Tone(0); t < toneCount; t++ {
		s, err := b.Streamer(t)
		if err != nil {
			return nil, err
		}
		b.pcm[t] = render(s, beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	}
	return b, nil
}

// SampleRate returns the rate the bank was rendered at
func (b *ToneBank) SampleRate() beep.SampleRate {
	return b.rate
}

// Streamer returns a fresh streamer playing t once
func (b *ToneBank) Streamer(t Tone) (beep.Streamer, error) {
	if t < 0 || t >= toneCount {
		return nil, fmt.Errorf("unknown tone %d", t)
	}
	spec := b.specs[t]

	sine, err := generators.SineTone(b.rate, spec.Freq)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s tone: %w", t, err)
	}

	// Gain scales by (1 + Gain)
	return &effects.Gain{
		Streamer: beep.Take(b.rate.N(spec.Duration), sine),
		Gain:     b.volume - 1,
	}, nil
}

// PCM returns the rendered bytes of t, signed 16-bit little endian stereo
func (b *ToneBank) PCM(t Tone) []byte {
	if t < 0 || t >= toneCount {
		return nil
	}
	return b.pcm[t]
}

// render drains s into PCM bytes
func render(s beep.Streamer, format beep.Format) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	frame := make([]byte, format.Width())

	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			format.EncodeSigned(frame, buf[i])
			out = append(out, frame...)
		}
		if !ok {
			return out
		}
	}
}
