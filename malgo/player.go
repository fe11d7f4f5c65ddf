package malgo

import (
	"context"
	"encoding/binary"
	"math"
	"sync"

	"github.com/gen2brain/malgo"
	"github.com/pwielgus/voxdoc"
	"github.com/pwielgus/voxdoc/goaudio"
)

// Ensure Player implements voxdoc.Player at compile time.
var _ voxdoc.Player = (*Player)(nil)

// Player plays synthesized speech through the default output device.
type Player struct {
	ctx *malgo.AllocatedContext

	mu sync.Mutex
}

// NewPlayer creates a new audio player. Call Close when done.
func NewPlayer() (*Player, error) {
	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, voxdoc.Errorf(voxdoc.EUNAVAILABLE, "failed to initialize audio context: %v", err)
	}
	return &Player{ctx: ctx}, nil
}

// Play decodes the speech WAV and plays it to completion. Canceling the
// context stops playback without error.
func (p *Player) Play(ctx context.Context, speech *voxdoc.Speech) error {
	if speech == nil || len(speech.WAV) == 0 {
		return voxdoc.Errorf(voxdoc.EINVALID, "no audio to play")
	}

	samples, sampleRate, err := goaudio.DecodeWAV(speech.WAV)
	if err != nil {
		return err
	}

	// One playback at a time.
	p.mu.Lock()
	defer p.mu.Unlock()

	deviceCfg := malgo.DefaultDeviceConfig(malgo.Playback)
	deviceCfg.Playback.Format = malgo.FormatF32
	deviceCfg.Playback.Channels = voxdoc.DefaultChannels
	deviceCfg.SampleRate = uint32(sampleRate)

	var pos int
	done := make(chan struct{})
	var once sync.Once

	device, err := malgo.InitDevice(p.ctx.Context, deviceCfg, malgo.DeviceCallbacks{
		Data: func(pOutput, _ []byte, frameCount uint32) {
			n := int(frameCount)
			for i := 0; i < n; i++ {
				var s float32
				if pos < len(samples) {
					s = samples[pos]
					pos++
				}
				binary.LittleEndian.PutUint32(pOutput[i*4:], math.Float32bits(s))
			}
			if pos >= len(samples) {
				once.Do(func() { close(done) })
			}
		},
	})
	if err != nil {
		return voxdoc.Errorf(voxdoc.EUNAVAILABLE, "failed to initialize playback device: %v", err)
	}
	defer device.Uninit()

	if err := device.Start(); err != nil {
		return voxdoc.Errorf(voxdoc.EUNAVAILABLE, "failed to start playback device: %v", err)
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return nil
	}
}

// Close releases all audio resources.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ctx != nil {
		if err := p.ctx.Uninit(); err != nil {
			return err
		}
		p.ctx.Free()
		p.ctx = nil
	}
	return nil
}
