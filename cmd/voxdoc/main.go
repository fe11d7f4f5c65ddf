// Command voxdoc answers questions about your documents using local
// models. Documents are chunked, embedded and stored locally; questions
// retrieve the most relevant chunks and prompt a local LLM.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/pwielgus/voxdoc"
	"github.com/pwielgus/voxdoc/browse"
	"github.com/pwielgus/voxdoc/chromem"
	"github.com/pwielgus/voxdoc/config"
	"github.com/pwielgus/voxdoc/fs"
	"github.com/pwielgus/voxdoc/gemini"
	"github.com/pwielgus/voxdoc/godocx"
	"github.com/pwielgus/voxdoc/goquery"
	"github.com/pwielgus/voxdoc/htmltomarkdown"
	voxhttp "github.com/pwielgus/voxdoc/http"
	"github.com/pwielgus/voxdoc/ingest"
	"github.com/pwielgus/voxdoc/malgo"
	"github.com/pwielgus/voxdoc/ollama"
	"github.com/pwielgus/voxdoc/pdf"
	"github.com/pwielgus/voxdoc/piper"
	"github.com/pwielgus/voxdoc/qa"
	voxslog "github.com/pwielgus/voxdoc/slog"
	"github.com/pwielgus/voxdoc/sqlite"
	"github.com/pwielgus/voxdoc/tiktoken"
	"github.com/pwielgus/voxdoc/trafilatura"
	"github.com/pwielgus/voxdoc/whisper"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// ConfigPath locates the YAML config. Set before calling Run.
	ConfigPath string

	// Config is loaded by Run.
	Config *config.Config

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: config.DefaultPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("voxdoc"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'voxdoc --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// The parsed command, without arguments ("ask <question>" -> "ask").
	// Global flags like -v mean args[0] is not necessarily the command.
	cmd, _, _ := strings.Cut(kongCtx.Command(), " ")

	cfg, err := config.Load(m.ConfigPath)
	if err != nil {
		return err
	}
	m.Config = cfg
	deps.Config = cfg

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory %q: %w", cfg.DataDir, err)
	}

	m.DB = sqlite.NewDB(cfg.DatabasePath())
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set %s to use a different config\n", config.EnvConfigPath)
		return fmt.Errorf("failed to open database at %q: %w", cfg.DatabasePath(), err)
	}
	defer m.Close()

	deps.DB = m.DB
	deps.Documents = sqlite.NewDocumentService(m.DB)
	deps.Notes = fs.NewNoteService(cfg.NotesDir())

	client, err := ollama.NewClient(cfg.Ollama.URL)
	if err != nil {
		return err
	}

	switch cmd {
	case "add", "fetch", "delete", "ask", "chat", "listen":
		index, err := chromem.NewIndex(cfg.IndexPath(), ollama.NewEmbedder(client, cfg.Ollama.EmbedModel))
		if err != nil {
			return fmt.Errorf("failed to open index at %q: %w", cfg.IndexPath(), err)
		}
		deps.Index = voxslog.NewLoggingIndex(index, deps.Logger)
	}

	switch cmd {
	case "add", "fetch":
		if err := client.Ping(ctx); err != nil {
			return err
		}
		deps.Indexer = &ingest.Indexer{
			Loaders: map[string]voxdoc.Loader{
				".txt": fs.NewTextLoader(),
				".md":  fs.NewTextLoader(),
				".pdf": pdf.NewLoader(),
			},
			Documents:    deps.Documents,
			Index:        deps.Index,
			ChunkSize:    cfg.Chunk.Size,
			ChunkOverlap: cfg.Chunk.Overlap,
		}
	}

	needsFallback := (cmd == "ask" || cmd == "chat" || cmd == "listen") && cfg.Browser.FallbackURL != ""
	if cmd == "fetch" || needsFallback {
		deps.Browser = newBrowser(cfg)
		defer deps.Browser.Close()
	}

	switch cmd {
	case "ask", "chat", "listen":
		generator, err := m.newGenerator(ctx, cli, client, deps)
		if err != nil {
			return err
		}

		engine := &qa.Engine{
			Index:         deps.Index,
			Generator:     voxslog.NewLoggingGenerator(generator, deps.Logger),
			FallbackURL:   cfg.Browser.FallbackURL,
			TopK:          cfg.Search.TopK,
			MinScore:      cfg.Search.MinScore,
			ContextTokens: cfg.Search.ContextTokens,
		}
		if deps.Browser != nil {
			engine.Browser = deps.Browser
		}
		if counter, err := tiktoken.NewCounter(); err == nil {
			engine.TokenCounter = counter
		} else {
			deps.Logger.Debug("token counter unavailable", "err", err)
		}
		deps.Answerer = engine
	}

	if cmd == "notes" {
		deps.Exporter = godocx.NewExporter()
	}

	if wantsSpeech(cmd, cli) {
		if cfg.Speech.PiperModel == "" {
			return voxdoc.Errorf(voxdoc.EINVALID,
				"speech output requires a piper voice model; set speech.piper_model in the config")
		}
		var piperOpts []piper.Option
		if cfg.Speech.Speed > 0 && cfg.Speech.Speed != 1.0 {
			piperOpts = append(piperOpts, piper.WithLengthScale(1.0/cfg.Speech.Speed))
		}
		deps.Synthesizer = piper.NewSynthesizer(cfg.Speech.PiperModel, piperOpts...)

		player, err := malgo.NewPlayer()
		if err != nil {
			return err
		}
		defer player.Close()
		deps.Player = player
	}

	if cmd == "listen" {
		recorder, err := malgo.NewRecorder(cfg.Speech.SampleRate, cfg.Speech.Channels)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: A working microphone is required for listen mode")
			return err
		}
		defer recorder.Close()
		deps.Recorder = recorder
		deps.Transcriber = voxslog.NewLoggingTranscriber(
			whisper.NewTranscriber(cfg.Speech.WhisperURL), deps.Logger)
	}

	return kongCtx.Run(deps)
}

// newGenerator picks the text generator: Ollama by default, Gemini when
// requested.
func (m *Main) newGenerator(ctx context.Context, cli *CLI, client *ollama.Client, deps *Dependencies) (voxdoc.Generator, error) {
	useGemini := cli.Ask.Gemini || cli.Chat.Gemini || cli.Listen.Gemini
	if !useGemini {
		if err := client.Ping(ctx); err != nil {
			return nil, err
		}
		return ollama.NewGenerator(client, m.Config.Ollama.GenerateModel), nil
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, voxdoc.Errorf(voxdoc.EINVALID,
			"GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
	}
	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(deps.Stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}
	return gemini.NewGenerator(genaiClient, gemini.DefaultModel), nil
}

func newBrowser(cfg *config.Config) *browse.Browser {
	var opts []voxhttp.Option
	if cfg.Browser.UserAgent != "" {
		opts = append(opts, voxhttp.WithUserAgent(cfg.Browser.UserAgent))
	}
	if cfg.Browser.RateLimit > 0 {
		opts = append(opts, voxhttp.WithRateLimit(cfg.Browser.RateLimit))
	}

	return &browse.Browser{
		Fetcher:   voxhttp.NewFetcher(opts...),
		Extractor: trafilatura.NewExtractor(),
		Converter: htmltomarkdown.NewConverter(),
		Metadata:  goquery.NewMetadata(),
	}
}

// wantsSpeech reports whether the command plays answers aloud.
func wantsSpeech(cmd string, cli *CLI) bool {
	switch cmd {
	case "ask":
		return cli.Ask.Speak
	case "chat":
		return cli.Chat.Speak
	case "listen":
		return cli.Listen.Speak
	}
	return false
}
