// Package piper provides text-to-speech via the piper CLI.
package piper

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pwielgus/voxdoc"
)

// DefaultTimeout bounds a single synthesis run.
const DefaultTimeout = 30 * time.Second

// Ensure Synthesizer implements voxdoc.Synthesizer at compile time.
var _ voxdoc.Synthesizer = (*Synthesizer)(nil)

// Synthesizer runs the piper binary to synthesize speech. It requires
// piper to be installed along with a voice model file.
type Synthesizer struct {
	binary      string
	modelPath   string
	lengthScale float64
	timeout     time.Duration
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithBinary overrides the piper binary path. Defaults to "piper" on
// PATH.
func WithBinary(path string) Option {
	return func(s *Synthesizer) {
		s.binary = path
	}
}

// WithLengthScale adjusts speech speed. Values below 1 speed up, above 1
// slow down.
func WithLengthScale(scale float64) Option {
	return func(s *Synthesizer) {
		s.lengthScale = scale
	}
}

// WithTimeout bounds a synthesis run. Defaults to DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(s *Synthesizer) {
		s.timeout = d
	}
}

// NewSynthesizer creates a Synthesizer using the voice model at
// modelPath.
func NewSynthesizer(modelPath string, opts ...Option) *Synthesizer {
	s := &Synthesizer{
		binary:    "piper",
		modelPath: modelPath,
		timeout:   DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Args returns the piper command-line arguments for writing to outPath.
func (s *Synthesizer) Args(outPath string) []string {
	args := []string{
		"--model", s.modelPath,
		"--output_file", outPath,
	}
	if s.lengthScale > 0 {
		args = append(args, "--length_scale", strconv.FormatFloat(s.lengthScale, 'f', -1, 64))
	}
	return args
}

// Synthesize runs piper with the text on stdin and returns the WAV it
// produced.
func (s *Synthesizer) Synthesize(ctx context.Context, text string) (*voxdoc.Speech, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, voxdoc.Errorf(voxdoc.EINVALID, "text required")
	}
	if s.modelPath == "" {
		return nil, voxdoc.Errorf(voxdoc.EINVALID, "voice model path required")
	}

	outPath := filepath.Join(os.TempDir(), fmt.Sprintf("voxdoc-tts-%d.wav", time.Now().UnixNano()))
	defer os.Remove(outPath)

	cmdCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cmd := exec.CommandContext(cmdCtx, s.binary, s.Args(outPath)...)
	cmd.Stdin = strings.NewReader(text)

	if output, err := cmd.CombinedOutput(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, voxdoc.Errorf(voxdoc.EUNAVAILABLE,
				"piper binary not found; install it from https://github.com/rhasspy/piper")
		}
		return nil, voxdoc.Errorf(voxdoc.EINTERNAL, "piper failed: %v (output: %s)", err, string(output))
	}

	wavData, err := os.ReadFile(outPath)
	if err != nil {
		return nil, voxdoc.Errorf(voxdoc.EINTERNAL, "failed to read piper output: %v", err)
	}

	return &voxdoc.Speech{WAV: wavData}, nil
}
