package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/pwielgus/voxdoc"
)

// Ensure LoggingGenerator implements voxdoc.Generator.
var _ voxdoc.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a Generator with operation logging.
type LoggingGenerator struct {
	next   voxdoc.Generator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next voxdoc.Generator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// Generate delegates to the wrapped generator and logs prompt and
// response sizes with duration.
func (g *LoggingGenerator) Generate(ctx context.Context, prompt string) (text string, err error) {
	defer func(begin time.Time) {
		g.logger.Debug("generate",
			"promptBytes", len(prompt),
			"responseBytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Generate(ctx, prompt)
}

// Ensure LoggingTranscriber implements voxdoc.Transcriber.
var _ voxdoc.Transcriber = (*LoggingTranscriber)(nil)

// LoggingTranscriber wraps a Transcriber with operation logging.
type LoggingTranscriber struct {
	next   voxdoc.Transcriber
	logger *slog.Logger
}

// NewLoggingTranscriber creates a new LoggingTranscriber.
func NewLoggingTranscriber(next voxdoc.Transcriber, logger *slog.Logger) *LoggingTranscriber {
	return &LoggingTranscriber{next: next, logger: logger}
}

// Transcribe delegates to the wrapped transcriber and logs audio length
// with duration.
func (t *LoggingTranscriber) Transcribe(ctx context.Context, samples []float32, sampleRate int) (text string, err error) {
	defer func(begin time.Time) {
		seconds := float64(0)
		if sampleRate > 0 {
			seconds = float64(len(samples)) / float64(sampleRate)
		}
		t.logger.Debug("transcribe",
			"audioSeconds", seconds,
			"textBytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return t.next.Transcribe(ctx, samples, sampleRate)
}
