// Package malgo provides microphone capture and speaker playback backed
// by the miniaudio library.
package malgo

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/gen2brain/malgo"
	"github.com/pwielgus/voxdoc"
)

// Ensure Recorder implements voxdoc.Recorder at compile time.
var _ voxdoc.Recorder = (*Recorder)(nil)

// Recorder captures audio from the default microphone into a float32
// buffer.
type Recorder struct {
	ctx        *malgo.AllocatedContext
	device     *malgo.Device
	sampleRate uint32
	channels   uint32

	mu        sync.Mutex
	buf       []float32
	recording bool
}

// NewRecorder creates a new audio recorder. Call Close when done.
func NewRecorder(sampleRate, channels int) (*Recorder, error) {
	if sampleRate <= 0 {
		sampleRate = voxdoc.DefaultSampleRate
	}
	if channels <= 0 {
		channels = voxdoc.DefaultChannels
	}

	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, voxdoc.Errorf(voxdoc.EUNAVAILABLE, "failed to initialize audio context: %v", err)
	}

	return &Recorder{
		ctx:        ctx,
		sampleRate: uint32(sampleRate),
		channels:   uint32(channels),
	}, nil
}

// Start begins capturing audio from the default microphone.
func (r *Recorder) Start() error {
	r.mu.Lock()
	if r.recording {
		r.mu.Unlock()
		return voxdoc.Errorf(voxdoc.ECONFLICT, "already recording")
	}
	r.buf = r.buf[:0]
	r.recording = true
	r.mu.Unlock()

	deviceCfg := malgo.DefaultDeviceConfig(malgo.Capture)
	deviceCfg.Capture.Format = malgo.FormatF32
	deviceCfg.Capture.Channels = r.channels
	deviceCfg.SampleRate = r.sampleRate

	device, err := malgo.InitDevice(r.ctx.Context, deviceCfg, malgo.DeviceCallbacks{
		Data: r.onData,
	})
	if err != nil {
		r.setStopped()
		return voxdoc.Errorf(voxdoc.EUNAVAILABLE, "failed to initialize capture device: %v", err)
	}

	if err := device.Start(); err != nil {
		device.Uninit()
		r.setStopped()
		return voxdoc.Errorf(voxdoc.EUNAVAILABLE, "failed to start capture device: %v", err)
	}

	r.mu.Lock()
	r.device = device
	r.mu.Unlock()

	return nil
}

// Stop ends the capture and returns the recorded samples.
func (r *Recorder) Stop() ([]float32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.recording {
		return nil, voxdoc.Errorf(voxdoc.EINVALID, "not recording")
	}

	if r.device != nil {
		r.device.Uninit()
		r.device = nil
	}
	r.recording = false

	result := make([]float32, len(r.buf))
	copy(result, r.buf)
	return result, nil
}

// Close releases all audio resources.
func (r *Recorder) Close() error {
	r.mu.Lock()
	if r.device != nil {
		r.device.Uninit()
		r.device = nil
	}
	r.recording = false
	r.mu.Unlock()

	if r.ctx != nil {
		if err := r.ctx.Uninit(); err != nil {
			return err
		}
		r.ctx.Free()
		r.ctx = nil
	}

	return nil
}

func (r *Recorder) setStopped() {
	r.mu.Lock()
	r.recording = false
	r.mu.Unlock()
}

// onData is invoked by miniaudio when captured frames are available.
func (r *Recorder) onData(_, pSample []byte, frameCount uint32) {
	samples := bytesToFloat32(pSample, frameCount*r.channels)

	r.mu.Lock()
	r.buf = append(r.buf, samples...)
	r.mu.Unlock()
}

// bytesToFloat32 converts raw little-endian float32 bytes to a slice.
func bytesToFloat32(data []byte, sampleCount uint32) []float32 {
	samples := make([]float32, 0, sampleCount)
	for i := uint32(0); i < sampleCount; i++ {
		offset := i * 4
		if offset+4 > uint32(len(data)) {
			break
		}
		bits := binary.LittleEndian.Uint32(data[offset : offset+4])
		samples = append(samples, math.Float32frombits(bits))
	}
	return samples
}
