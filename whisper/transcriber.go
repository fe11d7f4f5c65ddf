// Package whisper provides speech-to-text via a local whisper.cpp
// server.
package whisper

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/pwielgus/voxdoc"
	"github.com/pwielgus/voxdoc/goaudio"
)

// DefaultURL is the default whisper.cpp server address.
const DefaultURL = "http://localhost:8080"

// DefaultTimeout bounds a single transcription request.
const DefaultTimeout = 60 * time.Second

// Ensure Transcriber implements voxdoc.Transcriber at compile time.
var _ voxdoc.Transcriber = (*Transcriber)(nil)

// Transcriber sends recorded audio to a whisper.cpp server's /inference
// endpoint and returns the recognized text.
type Transcriber struct {
	baseURL string
	client  *http.Client
}

// Option configures a Transcriber.
type Option func(*Transcriber)

// WithHTTPClient overrides the HTTP client used for requests.
func WithHTTPClient(client *http.Client) Option {
	return func(t *Transcriber) {
		t.client = client
	}
}

// NewTranscriber creates a Transcriber talking to the whisper.cpp server
// at baseURL. An empty baseURL uses DefaultURL.
func NewTranscriber(baseURL string, opts ...Option) *Transcriber {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	t := &Transcriber{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// inferenceResponse is the whisper.cpp server response body.
type inferenceResponse struct {
	Text  string `json:"text"`
	Error string `json:"error"`
}

// Transcribe encodes the samples as WAV and posts them for recognition.
func (t *Transcriber) Transcribe(ctx context.Context, samples []float32, sampleRate int) (string, error) {
	if len(samples) == 0 {
		return "", voxdoc.Errorf(voxdoc.EINVALID, "no audio to transcribe")
	}

	wavData, err := goaudio.EncodeWAV(samples, sampleRate)
	if err != nil {
		return "", err
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", "audio.wav")
	if err != nil {
		return "", err
	}
	if _, err := part.Write(wavData); err != nil {
		return "", err
	}
	if err := writer.WriteField("response_format", "json"); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/inference", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := t.client.Do(req)
	if err != nil {
		return "", voxdoc.Errorf(voxdoc.EUNAVAILABLE,
			"whisper server is not reachable at %s; start it with: whisper-server --host 127.0.0.1", t.baseURL)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", voxdoc.Errorf(voxdoc.EINTERNAL, "whisper server returned HTTP %d", resp.StatusCode)
	}

	var result inferenceResponse
	if err := json.Unmarshal(data, &result); err != nil {
		return "", voxdoc.Errorf(voxdoc.EINTERNAL, "invalid whisper server response: %v", err)
	}
	if result.Error != "" {
		return "", voxdoc.Errorf(voxdoc.EINTERNAL, "transcription failed: %s", result.Error)
	}

	return strings.TrimSpace(result.Text), nil
}
