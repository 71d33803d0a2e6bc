package audio

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/neondodge/internal/application/engine"
)

type fakeOutput struct {
	played []Tone
}

func (f *fakeOutput) Play(t Tone) {
	f.played = append(f.played, t)
}

func TestToneBank_PCM(t *testing.T) {
	bank, err := NewToneBank(SampleRate, DefaultVolume)
	require.NoError(t, err)

	tests := []struct {
		tone      Tone
		wantBytes int
	}{
		{ToneHit, 48000 * 150 / 1000 * 4},
		{ToneOrb, 48000 * 100 / 1000 * 4},
		{ToneGameOver, 48000 * 200 / 1000 * 4},
	}

	for _, tt := range tests {
		t.Run(tt.tone.String(), func(t *testing.T) {
			pcm := bank.PCM(tt.tone)
			require.Len(t, pcm, tt.wantBytes)

			peak := 0
			volume := float64(DefaultVolume)
			for i := 0; i+1 < len(pcm); i += 2 {
				v := int(int16(binary.LittleEndian.Uint16(pcm[i:])))
				if v < 0 {
					v = -v
				}
				peak = max(peak, v)
			}
			assert.Greater(t, peak, 5000)
			assert.LessOrEqual(t, peak, int(volume*32768)+1)
		})
	}

	assert.Nil(t, bank.PCM(Tone(42)))
}

func TestToneBank_Streamer(t *testing.T) {
	bank, err := NewToneBank(SampleRate, DefaultVolume)
	require.NoError(t, err)

	s, err := bank.Streamer(ToneOrb)
	require.NoError(t, err)

	buf := make([][2]float64, 10000)
	n, ok := s.Stream(buf)
	assert.Equal(t, 4800, n)
	assert.True(t, ok)

	n, ok = s.Stream(buf)
	assert.Equal(t, 0, n)
	assert.False(t, ok)

	_, err = bank.Streamer(Tone(-1))
	assert.Error(t, err)
}

func TestSink_Handle(t *testing.T) {
	events := []engine.Event{
		{Kind: engine.EventTimeChanged},
		{Kind: engine.EventMultiplierChanged},
		{Kind: engine.EventHit},
		{Kind: engine.EventScoreChanged},
		{Kind: engine.EventOrbCollected},
		{Kind: engine.EventGameOver},
	}

	out := &fakeOutput{}
	sink := NewSink(out, true)
	sink.Handle(events)
	assert.Equal(t, []Tone{ToneHit, ToneOrb, ToneGameOver}, out.played)
}

func TestSink_Disabled(t *testing.T) {
	out := &fakeOutput{}
	sink := NewSink(out, false)
	sink.Handle([]engine.Event{{Kind: engine.EventHit}})
	assert.Empty(t, out.played)
	assert.False(t, sink.Enabled())

	sink.SetEnabled(true)
	sink.Handle([]engine.Event{{Kind: engine.EventHit}})
	assert.Equal(t, []Tone{ToneHit}, out.played)
}

func TestSink_NilOutputIsSilent(t *testing.T) {
	sink := NewSink(nil, true)
	assert.False(t, sink.Enabled())
	assert.NotPanics(t, func() {
		sink.Handle([]engine.Event{{Kind: engine.EventGameOver}})
	})
}

func TestToneFor(t *testing.T) {
	_, ok := ToneFor(engine.EventTimeChanged)
	assert.False(t, ok)

	tone, ok := ToneFor(engine.EventOrbCollected)
	assert.True(t, ok)
	assert.Equal(t, ToneOrb, tone)
}
