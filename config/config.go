// Package config loads voxdoc configuration from a YAML file with
// sensible defaults for a local setup.
package config

import (
	"os"
	"path/filepath"

	"github.com/pwielgus/voxdoc"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the config file location when set.
const EnvConfigPath = "VOXDOC_CONFIG"

// Config holds all voxdoc settings.
type Config struct {
	// DataDir holds the document database, vector index and notes.
	DataDir string `yaml:"data_dir"`

	Ollama  Ollama  `yaml:"ollama"`
	Chunk   Chunk   `yaml:"chunk"`
	Search  Search  `yaml:"search"`
	Speech  Speech  `yaml:"speech"`
	Browser Browser `yaml:"browser"`
}

// Ollama configures the local model server.
type Ollama struct {
	URL           string `yaml:"url"`
	EmbedModel    string `yaml:"embed_model"`
	GenerateModel string `yaml:"generate_model"`
}

// Chunk configures document splitting.
type Chunk struct {
	Size    int `yaml:"size"`
	Overlap int `yaml:"overlap"`
}

// Search configures retrieval.
type Search struct {
	TopK          int     `yaml:"top_k"`
	MinScore      float32 `yaml:"min_score"`
	ContextTokens int     `yaml:"context_tokens"`
}

// Speech configures audio input and output.
type Speech struct {
	WhisperURL string  `yaml:"whisper_url"`
	PiperModel string  `yaml:"piper_model"`
	SampleRate int     `yaml:"sample_rate"`
	Channels   int     `yaml:"channels"`
	Speed      float64 `yaml:"speed"`
}

// Browser configures the web page fallback.
type Browser struct {
	FallbackURL string  `yaml:"fallback_url"`
	UserAgent   string  `yaml:"user_agent"`
	RateLimit   float64 `yaml:"rate_limit"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	dataDir := ".voxdoc"
	if home, err := os.UserHomeDir(); err == nil {
		dataDir = filepath.Join(home, ".voxdoc")
	}

	return &Config{
		DataDir: dataDir,
		Ollama: Ollama{
			URL:           "http://localhost:11434",
			EmbedModel:    "all-minilm",
			GenerateModel: "gemma3:1b",
		},
		Chunk: Chunk{
			Size:    voxdoc.DefaultChunkSize,
			Overlap: voxdoc.DefaultChunkOverlap,
		},
		Search: Search{
			TopK:          3,
			ContextTokens: 2000,
		},
		Speech: Speech{
			WhisperURL: "http://localhost:8080",
			SampleRate: voxdoc.DefaultSampleRate,
			Channels:   voxdoc.DefaultChannels,
			Speed:      1.0,
		},
	}
}

// DefaultPath returns the config file location, honoring EnvConfigPath.
func DefaultPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".voxdoc", "config.yaml")
	}
	return "config.yaml"
}

// Load reads the config file at path, filling unset fields with
// defaults. A missing file returns the defaults without error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, voxdoc.Errorf(voxdoc.EINVALID, "invalid config file %q: %v", path, err)
	}

	return cfg, nil
}

// DatabasePath returns the SQLite database location.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "voxdoc.db")
}

// IndexPath returns the vector index location.
func (c *Config) IndexPath() string {
	return filepath.Join(c.DataDir, "index")
}

// NotesDir returns the notes directory.
func (c *Config) NotesDir() string {
	return filepath.Join(c.DataDir, "notes")
}
