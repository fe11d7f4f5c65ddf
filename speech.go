package voxdoc

import "context"

// Default audio capture parameters.
const (
	DefaultSampleRate = 16000
	DefaultChannels   = 1
)

// Speech holds synthesized audio ready for playback.
type Speech struct {
	// WAV is a complete RIFF/WAV file, header included.
	WAV []byte
}

// Recorder captures audio from the default microphone.
// Recordings are push-to-talk: Start begins capture, Stop returns the
// accumulated samples.
type Recorder interface {
	// Start begins capturing audio.
	Start() error

	// Stop ends the capture and returns mono float32 PCM samples.
	Stop() ([]float32, error)

	// Close releases audio device resources.
	Close() error
}

// Transcriber converts recorded audio to text.
type Transcriber interface {
	// Transcribe converts mono float32 PCM samples at the given sample
	// rate to text. Returns an empty string when no speech is detected.
	Transcribe(ctx context.Context, samples []float32, sampleRate int) (string, error)
}

// Synthesizer converts text to speech.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) (*Speech, error)
}

// Player plays synthesized speech on the default output device.
type Player interface {
	// Play blocks until playback completes or ctx is canceled.
	// Cancellation stops playback without error.
	Play(ctx context.Context, speech *Speech) error

	// Close releases audio device resources.
	Close() error
}
