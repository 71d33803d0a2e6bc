package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep/speaker"
)

// SpeakerOutput plays tones through the beep speaker
type SpeakerOutput struct {
	bank *ToneBank
}

// NewSpeakerOutput initialises the speaker for the bank's sample rate
func NewSpeakerOutput(bank *ToneBank) (*SpeakerOutput, error) {
	rate := bank.SampleRate()
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}
	return &SpeakerOutput{bank: bank}, nil
}

// Play queues t on the speaker mixer
func (o *SpeakerOutput) Play(t Tone) {
	s, err := o.bank.Streamer(t)
	if err != nil {
		return
	}
	speaker.Play(s)
}

// Close stops playback and releases the device
func (o *SpeakerOutput) Close() {
	speaker.Clear()
	speaker.Close()
}
