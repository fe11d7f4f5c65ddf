// Package goquery extracts head metadata from raw HTML pages.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pwielgus/voxdoc"
)

// Ensure Metadata implements voxdoc.MetadataExtractor at compile time.
var _ voxdoc.MetadataExtractor = (*Metadata)(nil)

// Metadata extracts title, description and keywords from an HTML head.
// Open Graph tags take precedence over plain meta tags when both exist.
type Metadata struct{}

// NewMetadata creates a new Metadata extractor.
func NewMetadata() *Metadata {
	return &Metadata{}
}

// ExtractMetadata parses the HTML and returns head metadata. Fields that
// are absent from the page are left empty.
func (m *Metadata) ExtractMetadata(rawHTML string) (*voxdoc.PageMetadata, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, voxdoc.Errorf(voxdoc.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, err
	}

	meta := &voxdoc.PageMetadata{
		Title:       metaContent(doc, `meta[property="og:title"]`),
		Description: metaContent(doc, `meta[property="og:description"]`),
		Keywords:    metaContent(doc, `meta[name="keywords"]`),
	}

	if meta.Title == "" {
		meta.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if meta.Description == "" {
		meta.Description = metaContent(doc, `meta[name="description"]`)
	}

	return meta, nil
}

func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(content)
}
