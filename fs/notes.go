package fs

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pwielgus/voxdoc"
	"gopkg.in/yaml.v3"
)

// DefaultUntitled is the title used for notes saved without one.
const DefaultUntitled = "Untitled Note"

// Ensure NoteService implements voxdoc.NoteService at compile time.
var _ voxdoc.NoteService = (*NoteService)(nil)

// NoteService stores notes as markdown files with YAML front matter in a
// single directory.
type NoteService struct {
	dir string

	// now is swappable for tests.
	now func() time.Time
}

// NewNoteService creates a note service rooted at dir. The directory is
// created on first save.
func NewNoteService(dir string) *NoteService {
	return &NoteService{dir: dir, now: time.Now}
}

// noteFrontMatter is the YAML header carried by each note file.
type noteFrontMatter struct {
	Title   string    `yaml:"title"`
	Created time.Time `yaml:"created"`
}

// SaveNote writes a note to the notes directory. An empty title yields
// "Untitled Note" and a timestamped filename. Name collisions get a
// numeric suffix.
func (s *NoteService) SaveNote(ctx context.Context, content, title string) (*voxdoc.Note, error) {
	if strings.TrimSpace(content) == "" {
		return nil, voxdoc.Errorf(voxdoc.EINVALID, "note content required")
	}

	createdAt := s.now()
	title = strings.TrimSpace(title)
	if title == "" {
		title = DefaultUntitled
	}

	name := sanitizeName(title)
	if name == sanitizeName(DefaultUntitled) {
		name = "note-" + createdAt.Format("2006-01-02-150405")
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, err
	}

	name = s.uniqueName(name)
	path := filepath.Join(s.dir, name+".md")

	data, err := formatNote(title, content, createdAt)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, err
	}

	return &voxdoc.Note{
		Title:     title,
		Name:      name,
		Path:      path,
		Content:   content,
		CreatedAt: createdAt,
	}, nil
}

// ListNotes returns all notes in the directory, newest first.
func (s *NoteService) ListNotes(ctx context.Context) ([]*voxdoc.Note, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var notes []*voxdoc.Note
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		note, err := s.readFile(strings.TrimSuffix(entry.Name(), ".md"))
		if err != nil {
			continue
		}
		notes = append(notes, note)
	}

	sort.Slice(notes, func(i, j int) bool {
		return notes[i].CreatedAt.After(notes[j].CreatedAt)
	})

	return notes, nil
}

// ReadNote retrieves a note by name.
func (s *NoteService) ReadNote(ctx context.Context, name string) (*voxdoc.Note, error) {
	note, err := s.readFile(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, voxdoc.Errorf(voxdoc.ENOTFOUND, "note %q does not exist", name)
		}
		return nil, err
	}
	return note, nil
}

func (s *NoteService) readFile(name string) (*voxdoc.Note, error) {
	path := filepath.Join(s.dir, name+".md")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	front, body := splitFrontMatter(string(data))

	note := &voxdoc.Note{
		Name:    name,
		Path:    path,
		Content: body,
	}

	var fm noteFrontMatter
	if front != "" && yaml.Unmarshal([]byte(front), &fm) == nil {
		note.Title = fm.Title
		note.CreatedAt = fm.Created
	}
	if note.Title == "" {
		note.Title = name
	}

	return note, nil
}

// uniqueName appends a numeric suffix until the name is free.
func (s *NoteService) uniqueName(name string) string {
	candidate := name
	for i := 2; ; i++ {
		if _, err := os.Stat(filepath.Join(s.dir, candidate+".md")); os.IsNotExist(err) {
			return candidate
		}
		candidate = name + "-" + strconv.Itoa(i)
	}
}

func formatNote(title, content string, createdAt time.Time) ([]byte, error) {
	front, err := yaml.Marshal(noteFrontMatter{Title: title, Created: createdAt})
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(front)
	b.WriteString("---\n\n")
	b.WriteString(strings.TrimRight(content, "\n"))
	b.WriteString("\n")
	return []byte(b.String()), nil
}

// splitFrontMatter separates the YAML header from the note body.
func splitFrontMatter(data string) (front, body string) {
	if !strings.HasPrefix(data, "---\n") {
		return "", strings.TrimSpace(data)
	}
	rest := data[len("---\n"):]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return "", strings.TrimSpace(data)
	}
	front = rest[:end]
	body = rest[end+len("\n---"):]
	return front, strings.TrimSpace(body)
}

// sanitizeName converts a title to a safe lowercase filename.
func sanitizeName(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
