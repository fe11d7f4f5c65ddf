package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/pwielgus/voxdoc"
	"github.com/pwielgus/voxdoc/browse"
	"github.com/pwielgus/voxdoc/config"
	"github.com/pwielgus/voxdoc/ingest"
	"github.com/pwielgus/voxdoc/sqlite"
)

// Dependencies holds all services and configuration for command
// execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Config *config.Config
	Logger *slog.Logger

	DB        *sqlite.DB
	Documents voxdoc.DocumentService
	Index     voxdoc.Index

	Indexer  *ingest.Indexer
	Answerer voxdoc.Answerer
	Browser  *browse.Browser

	Notes    voxdoc.NoteService
	Exporter voxdoc.NoteExporter

	Recorder    voxdoc.Recorder
	Transcriber voxdoc.Transcriber
	Synthesizer voxdoc.Synthesizer
	Player      voxdoc.Player
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Add    AddCmd    `cmd:"" help:"Index a document file"`
	Fetch  FetchCmd  `cmd:"" help:"Fetch and index a web page"`
	List   ListCmd   `cmd:"" help:"List indexed documents"`
	Delete DeleteCmd `cmd:"" help:"Delete an indexed document"`
	Ask    AskCmd    `cmd:"" help:"Ask a question about your documents"`
	Chat   ChatCmd   `cmd:"" help:"Interactive question answering session"`
	Listen ListenCmd `cmd:"" help:"Voice question answering session"`
	Notes  NotesCmd  `cmd:"" help:"Manage saved notes"`

	Verbose bool `short:"v" help:"Enable debug logging"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	Path  string `arg:"" help:"Document file path (.txt, .md, .pdf)"`
	Name  string `short:"n" help:"Document name (defaults to the file name)"`
	Force bool   `short:"f" help:"Re-index even if unchanged"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URL   string `arg:"" help:"Web page URL"`
	Name  string `short:"n" help:"Document name (defaults to the page title)"`
	Force bool   `short:"f" help:"Re-index even if unchanged"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Name  string `arg:"" help:"Document name"`
	Force bool   `help:"Confirm deletion"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question string `arg:"" help:"Question to ask"`
	Notes    bool   `help:"Generate structured notes instead of an answer"`
	Save     bool   `help:"Save the generated notes"`
	Title    string `help:"Title for saved notes"`
	Speak    bool   `short:"s" help:"Read the answer aloud"`
	Gemini   bool   `help:"Generate with the Gemini API instead of Ollama"`
}

// ChatCmd is the "chat" subcommand.
type ChatCmd struct {
	Speak  bool `short:"s" help:"Read answers aloud"`
	Gemini bool `help:"Generate with the Gemini API instead of Ollama"`
}

// ListenCmd is the "listen" subcommand.
type ListenCmd struct {
	Speak  bool `short:"s" help:"Read answers aloud"`
	Gemini bool `help:"Generate with the Gemini API instead of Ollama"`
}

// NotesCmd groups the notes subcommands.
type NotesCmd struct {
	List   NotesListCmd   `cmd:"" default:"1" help:"List saved notes"`
	Show   NotesShowCmd   `cmd:"" help:"Print a saved note"`
	Export NotesExportCmd `cmd:"" help:"Export a note to .docx"`
}

// NotesListCmd is the "notes list" subcommand.
type NotesListCmd struct{}

// NotesShowCmd is the "notes show" subcommand.
type NotesShowCmd struct {
	Name string `arg:"" help:"Note name"`
}

// NotesExportCmd is the "notes export" subcommand.
type NotesExportCmd struct {
	Name   string `arg:"" help:"Note name"`
	Output string `short:"o" help:"Output path (defaults to <name>.docx)"`
}
