// Package browse composes fetching, extraction, metadata and Markdown
// conversion into a single web page pipeline.
package browse

import (
	"context"
	"net/url"
	"strings"

	"github.com/pwielgus/voxdoc"
)

// Browser turns a URL into a voxdoc.WebPage ready for prompting or
// indexing.
type Browser struct {
	Fetcher   voxdoc.Fetcher
	Extractor voxdoc.Extractor
	Converter voxdoc.Converter

	// Metadata is optional. When set, head metadata supplements what the
	// extractor found.
	Metadata voxdoc.MetadataExtractor
}

// Browse fetches rawURL, extracts the main content and converts it to
// Markdown.
func (b *Browser) Browse(ctx context.Context, rawURL string) (*voxdoc.WebPage, error) {
	if err := validateURL(rawURL); err != nil {
		return nil, err
	}

	html, err := b.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	extracted, err := b.Extractor.Extract(html)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(extracted.ContentHTML) == "" {
		return nil, voxdoc.Errorf(voxdoc.ENOTFOUND, "no readable content at %s", rawURL)
	}

	markdown, err := b.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return nil, err
	}

	page := &voxdoc.WebPage{
		URL:         rawURL,
		Title:       extracted.Title,
		Description: extracted.Description,
		Content:     markdown,
	}

	if b.Metadata != nil {
		meta, err := b.Metadata.ExtractMetadata(html)
		if err == nil {
			if page.Title == "" {
				page.Title = meta.Title
			}
			if page.Description == "" {
				page.Description = meta.Description
			}
			page.Keywords = meta.Keywords
		}
	}

	return page, nil
}

// Close releases the underlying fetcher.
func (b *Browser) Close() error {
	if b.Fetcher == nil {
		return nil
	}
	return b.Fetcher.Close()
}

func validateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return voxdoc.Errorf(voxdoc.EINVALID, "invalid URL %q", rawURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return voxdoc.Errorf(voxdoc.EINVALID, "unsupported URL scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return voxdoc.Errorf(voxdoc.EINVALID, "URL %q has no host", rawURL)
	}
	return nil
}
