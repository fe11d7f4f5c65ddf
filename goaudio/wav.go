// Package goaudio converts between float32 sample buffers and WAV files.
package goaudio

import (
	"bytes"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/pwielgus/voxdoc"
)

const bitDepth = 16

// EncodeWAV encodes mono float32 samples in the -1..1 range as a 16-bit
// PCM WAV file.
func EncodeWAV(samples []float32, sampleRate int) ([]byte, error) {
	if len(samples) == 0 {
		return nil, voxdoc.Errorf(voxdoc.EINVALID, "no samples to encode")
	}
	if sampleRate <= 0 {
		sampleRate = voxdoc.DefaultSampleRate
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: voxdoc.DefaultChannels,
			SampleRate:  sampleRate,
		},
		SourceBitDepth: bitDepth,
		Data:           make([]int, len(samples)),
	}
	for i, s := range samples {
		buf.Data[i] = int(clamp(s) * 32767)
	}

	var ws writeSeeker
	enc := wav.NewEncoder(&ws, sampleRate, bitDepth, voxdoc.DefaultChannels, 1)
	if err := enc.Write(buf); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	return ws.buf, nil
}

// DecodeWAV decodes a WAV file into float32 samples in the -1..1 range
// and returns them with the file's sample rate. Multi-channel audio is
// downmixed to mono.
func DecodeWAV(data []byte) ([]float32, int, error) {
	dec := wav.NewDecoder(bytes.NewReader(data))
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, voxdoc.Errorf(voxdoc.EINVALID, "failed to decode WAV: %v", err)
	}
	if buf.Format == nil || len(buf.Data) == 0 {
		return nil, 0, voxdoc.Errorf(voxdoc.EINVALID, "WAV file has no audio data")
	}

	channels := buf.Format.NumChannels
	if channels < 1 {
		channels = 1
	}

	scale := float32(int(1) << (dec.BitDepth - 1))
	samples := make([]float32, 0, len(buf.Data)/channels)
	for i := 0; i+channels <= len(buf.Data); i += channels {
		var sum float32
		for c := 0; c < channels; c++ {
			sum += float32(buf.Data[i+c]) / scale
		}
		samples = append(samples, sum/float32(channels))
	}

	return samples, buf.Format.SampleRate, nil
}

func clamp(s float32) float32 {
	if s > 1 {
		return 1
	}
	if s < -1 {
		return -1
	}
	return s
}

// writeSeeker is an in-memory io.WriteSeeker. The wav encoder seeks back
// to patch chunk sizes on Close.
type writeSeeker struct {
	buf []byte
	pos int
}

func (ws *writeSeeker) Write(p []byte) (int, error) {
	if need := ws.pos + len(p); need > len(ws.buf) {
		grown := make([]byte, need)
		copy(grown, ws.buf)
		ws.buf = grown
	}
	copy(ws.buf[ws.pos:], p)
	ws.pos += len(p)
	return len(p), nil
}

func (ws *writeSeeker) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = int64(ws.pos) + offset
	case io.SeekEnd:
		pos = int64(len(ws.buf)) + offset
	default:
		return 0, voxdoc.Errorf(voxdoc.EINVALID, "invalid seek whence %d", whence)
	}
	if pos < 0 {
		return 0, voxdoc.Errorf(voxdoc.EINVALID, "negative seek position")
	}
	ws.pos = int(pos)
	return pos, nil
}
