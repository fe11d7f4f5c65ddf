// Package godocx exports notes to Word documents.
package godocx

import (
	"context"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/pwielgus/voxdoc"
)

// Ensure Exporter implements voxdoc.NoteExporter at compile time.
var _ voxdoc.NoteExporter = (*Exporter)(nil)

// Exporter writes notes as .docx files, mapping markdown structure to
// Word paragraph styles.
type Exporter struct{}

// NewExporter creates a new Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export writes the note to path as a Word document.
func (e *Exporter) Export(ctx context.Context, note *voxdoc.Note, path string) error {
	if note == nil || strings.TrimSpace(note.Content) == "" {
		return voxdoc.Errorf(voxdoc.EINVALID, "note has no content")
	}

	document, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	document.AddHeading(note.Title, 0)
	if !note.CreatedAt.IsZero() {
		document.AddParagraph("Created: " + note.CreatedAt.Format("2006-01-02 15:04"))
	}

	inCodeBlock := false
	for _, line := range strings.Split(note.Content, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			inCodeBlock = !inCodeBlock
			continue
		}
		if inCodeBlock {
			document.AddParagraph(line).Style("Intense Quote")
			continue
		}

		switch {
		case trimmed == "":
		case strings.HasPrefix(trimmed, "### "):
			document.AddHeading(strings.TrimPrefix(trimmed, "### "), 3)
		case strings.HasPrefix(trimmed, "## "):
			document.AddHeading(strings.TrimPrefix(trimmed, "## "), 2)
		case strings.HasPrefix(trimmed, "# "):
			document.AddHeading(strings.TrimPrefix(trimmed, "# "), 1)
		case strings.HasPrefix(trimmed, "- "), strings.HasPrefix(trimmed, "* "):
			document.AddParagraph(stripEmphasis(trimmed[2:])).Style("List Bullet")
		default:
			document.AddParagraph(stripEmphasis(trimmed))
		}
	}

	return document.SaveTo(path)
}

// stripEmphasis removes markdown bold and italic markers. Word styles
// replace them in the exported document.
func stripEmphasis(text string) string {
	text = strings.ReplaceAll(text, "**", "")
	return strings.ReplaceAll(text, "*", "")
}
