// Package pdf provides a PDF implementation of voxdoc.Loader.
package pdf

import (
	"bytes"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pwielgus/voxdoc"
)

// Ensure Loader implements voxdoc.Loader at compile time.
var _ voxdoc.Loader = (*Loader)(nil)

// Loader extracts plain text from PDF files.
type Loader struct{}

// NewLoader creates a new PDF Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the PDF at path and returns its plain text.
func (l *Loader) Load(path string) (*voxdoc.LoadResult, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, voxdoc.Errorf(voxdoc.ENOTFOUND, "file %q does not exist", path)
		}
		return nil, voxdoc.Errorf(voxdoc.EINVALID, "failed to open PDF %q: %v", path, err)
	}
	defer f.Close()

	r, err := reader.GetPlainText()
	if err != nil {
		return nil, voxdoc.Errorf(voxdoc.EINVALID, "failed to read PDF %q: %v", path, err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}

	var title string
	if info := reader.Trailer().Key("Info"); !info.IsNull() {
		title = strings.TrimSpace(info.Key("Title").Text())
	}

	return &voxdoc.LoadResult{
		Title:   title,
		Content: buf.String(),
	}, nil
}
