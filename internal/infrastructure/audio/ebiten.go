package audio

import (
	"fmt"
	"sync"

	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// EbitenOutput plays pre-rendered tones through the ebiten audio context
type EbitenOutput struct {
	mu      sync.Mutex
	ctx     *ebaudio.Context
	bank    *ToneBank
	playing []*ebaudio.Player
}

// NewEbitenOutput creates the output, reusing the process audio context when one exists
func NewEbitenOutput(bank *ToneBank) (*EbitenOutput, error) {
	ctx := ebaudio.CurrentContext()
	if ctx == nil {
		ctx = ebaudio.NewContext(int(bank.SampleRate()))
	}
	if ctx.SampleRate() != int(bank.SampleRate()) {
		return nil, fmt.Errorf("audio context runs at %d Hz, tones at %d Hz", ctx.SampleRate(), bank.SampleRate())
	}
	return &EbitenOutput{ctx: ctx, bank: bank}, nil
}

// Play starts t and returns immediately
func (o *EbitenOutput) Play(t Tone) {
	pcm := o.bank.PCM(t)
	if len(pcm) == 0 {
		return
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	// Players are kept referenced until they finish
	live := o.playing[:0]
	for _, p := range o.playing {
		if p.IsPlaying() {
			live = append(live, p)
		}
	}
	o.playing = live

	p := o.ctx.NewPlayerFromBytes(pcm)
	p.Play()
	o.playing = append(o.playing, p)
}
