// Package mock provides function-field mock implementations of voxdoc
// domain interfaces for testing.
package mock

import (
	"context"

	"github.com/pwielgus/voxdoc"
)

var _ voxdoc.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of voxdoc.DocumentService.
type DocumentService struct {
	CreateDocumentFn     func(ctx context.Context, doc *voxdoc.Document) error
	FindDocumentByIDFn   func(ctx context.Context, id string) (*voxdoc.Document, error)
	FindDocumentByNameFn func(ctx context.Context, name string) (*voxdoc.Document, error)
	FindDocumentsFn      func(ctx context.Context, filter voxdoc.DocumentFilter) ([]*voxdoc.Document, error)
	UpdateDocumentFn     func(ctx context.Context, id string, upd voxdoc.DocumentUpdate) (*voxdoc.Document, error)
	DeleteDocumentFn     func(ctx context.Context, id string) error
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *voxdoc.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*voxdoc.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) FindDocumentByName(ctx context.Context, name string) (*voxdoc.Document, error) {
	return s.FindDocumentByNameFn(ctx, name)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter voxdoc.DocumentFilter) ([]*voxdoc.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) UpdateDocument(ctx context.Context, id string, upd voxdoc.DocumentUpdate) (*voxdoc.Document, error) {
	return s.UpdateDocumentFn(ctx, id, upd)
}

func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	return s.DeleteDocumentFn(ctx, id)
}

var _ voxdoc.Index = (*Index)(nil)

// Index is a mock implementation of voxdoc.Index.
type Index struct {
	AddFn            func(ctx context.Context, chunks []*voxdoc.Chunk) error
	SearchFn         func(ctx context.Context, query string, opts voxdoc.SearchOptions) ([]voxdoc.SearchResult, error)
	CountFn          func(ctx context.Context) (int, error)
	DeleteDocumentFn func(ctx context.Context, documentID string) error
}

func (i *Index) Add(ctx context.Context, chunks []*voxdoc.Chunk) error {
	return i.AddFn(ctx, chunks)
}

func (i *Index) Search(ctx context.Context, query string, opts voxdoc.SearchOptions) ([]voxdoc.SearchResult, error) {
	return i.SearchFn(ctx, query, opts)
}

func (i *Index) Count(ctx context.Context) (int, error) {
	return i.CountFn(ctx)
}

func (i *Index) DeleteDocument(ctx context.Context, documentID string) error {
	return i.DeleteDocumentFn(ctx, documentID)
}

var _ voxdoc.Embedder = (*Embedder)(nil)

// Embedder is a mock implementation of voxdoc.Embedder.
type Embedder struct {
	EmbedFn func(ctx context.Context, text string) ([]float32, error)
}

func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return e.EmbedFn(ctx, text)
}

var _ voxdoc.Generator = (*Generator)(nil)

// Generator is a mock implementation of voxdoc.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, prompt string) (string, error)
}

func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	return g.GenerateFn(ctx, prompt)
}

var _ voxdoc.TokenCounter = (*TokenCounter)(nil)

// TokenCounter is a mock implementation of voxdoc.TokenCounter.
type TokenCounter struct {
	CountTokensFn func(ctx context.Context, text string) (int, error)
}

func (c *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	return c.CountTokensFn(ctx, text)
}

var _ voxdoc.Loader = (*Loader)(nil)

// Loader is a mock implementation of voxdoc.Loader.
type Loader struct {
	LoadFn func(path string) (*voxdoc.LoadResult, error)
}

func (l *Loader) Load(path string) (*voxdoc.LoadResult, error) {
	return l.LoadFn(path)
}

var _ voxdoc.NoteService = (*NoteService)(nil)

// NoteService is a mock implementation of voxdoc.NoteService.
type NoteService struct {
	SaveNoteFn  func(ctx context.Context, content, title string) (*voxdoc.Note, error)
	ListNotesFn func(ctx context.Context) ([]*voxdoc.Note, error)
	ReadNoteFn  func(ctx context.Context, name string) (*voxdoc.Note, error)
}

func (s *NoteService) SaveNote(ctx context.Context, content, title string) (*voxdoc.Note, error) {
	return s.SaveNoteFn(ctx, content, title)
}

func (s *NoteService) ListNotes(ctx context.Context) ([]*voxdoc.Note, error) {
	return s.ListNotesFn(ctx)
}

func (s *NoteService) ReadNote(ctx context.Context, name string) (*voxdoc.Note, error) {
	return s.ReadNoteFn(ctx, name)
}

var _ voxdoc.NoteExporter = (*NoteExporter)(nil)

// NoteExporter is a mock implementation of voxdoc.NoteExporter.
type NoteExporter struct {
	ExportFn func(ctx context.Context, note *voxdoc.Note, path string) error
}

func (e *NoteExporter) Export(ctx context.Context, note *voxdoc.Note, path string) error {
	return e.ExportFn(ctx, note, path)
}

var _ voxdoc.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of voxdoc.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ voxdoc.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of voxdoc.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*voxdoc.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*voxdoc.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ voxdoc.Converter = (*Converter)(nil)

// Converter is a mock implementation of voxdoc.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ voxdoc.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor is a mock implementation of voxdoc.MetadataExtractor.
type MetadataExtractor struct {
	ExtractMetadataFn func(html string) (*voxdoc.PageMetadata, error)
}

func (e *MetadataExtractor) ExtractMetadata(html string) (*voxdoc.PageMetadata, error) {
	return e.ExtractMetadataFn(html)
}

var _ voxdoc.Recorder = (*Recorder)(nil)

// Recorder is a mock implementation of voxdoc.Recorder.
type Recorder struct {
	StartFn func() error
	StopFn  func() ([]float32, error)
	CloseFn func() error
}

func (r *Recorder) Start() error {
	return r.StartFn()
}

func (r *Recorder) Stop() ([]float32, error) {
	return r.StopFn()
}

func (r *Recorder) Close() error {
	if r.CloseFn == nil {
		return nil
	}
	return r.CloseFn()
}

var _ voxdoc.Transcriber = (*Transcriber)(nil)

// Transcriber is a mock implementation of voxdoc.Transcriber.
type Transcriber struct {
	TranscribeFn func(ctx context.Context, samples []float32, sampleRate int) (string, error)
}

func (t *Transcriber) Transcribe(ctx context.Context, samples []float32, sampleRate int) (string, error) {
	return t.TranscribeFn(ctx, samples, sampleRate)
}

var _ voxdoc.Synthesizer = (*Synthesizer)(nil)

// Synthesizer is a mock implementation of voxdoc.Synthesizer.
type Synthesizer struct {
	SynthesizeFn func(ctx context.Context, text string) (*voxdoc.Speech, error)
}

func (s *Synthesizer) Synthesize(ctx context.Context, text string) (*voxdoc.Speech, error) {
	return s.SynthesizeFn(ctx, text)
}

var _ voxdoc.Player = (*Player)(nil)

// Player is a mock implementation of voxdoc.Player.
type Player struct {
	PlayFn  func(ctx context.Context, speech *voxdoc.Speech) error
	CloseFn func() error
}

func (p *Player) Play(ctx context.Context, speech *voxdoc.Speech) error {
	return p.PlayFn(ctx, speech)
}

func (p *Player) Close() error {
	if p.CloseFn == nil {
		return nil
	}
	return p.CloseFn()
}

var _ voxdoc.Answerer = (*Answerer)(nil)

// Answerer is a mock implementation of voxdoc.Answerer.
type Answerer struct {
	AnswerFn func(ctx context.Context, question string, mode voxdoc.Mode) (*voxdoc.Answer, error)
}

func (a *Answerer) Answer(ctx context.Context, question string, mode voxdoc.Mode) (*voxdoc.Answer, error) {
	return a.AnswerFn(ctx, question, mode)
}
