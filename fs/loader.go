// Package fs provides filesystem implementations of document loading and
// note storage.
package fs

import (
	"os"
	"strings"

	"github.com/pwielgus/voxdoc"
)

// Ensure TextLoader implements voxdoc.Loader at compile time.
var _ voxdoc.Loader = (*TextLoader)(nil)

// TextLoader reads plain text and markdown files.
type TextLoader struct{}

// NewTextLoader creates a new TextLoader.
func NewTextLoader() *TextLoader {
	return &TextLoader{}
}

// Load reads the file at path. For markdown files the first level-one
// heading becomes the title.
func (l *TextLoader) Load(path string) (*voxdoc.LoadResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, voxdoc.Errorf(voxdoc.ENOTFOUND, "file %q does not exist", path)
		}
		return nil, err
	}

	content := string(data)
	return &voxdoc.LoadResult{
		Title:   firstHeading(content),
		Content: content,
	}, nil
}

// firstHeading returns the text of the first "# " heading, if any.
func firstHeading(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return ""
}
