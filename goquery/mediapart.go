package goquery

import (
	"strings"

	"github.com/fwojciec/narrator"
)

var (
	_ narrator.Adapter               = (*MediapartAdapter)(nil)
	_ narrator.BodyMetadataExtractor = (*MediapartAdapter)(nil)
)

const mediapartContent = "div.news__rich-text-content, div.content-page__full"

// MediapartAdapter handles articles from Mediapart. Its markup nests
// paragraphs inside paragraphs, so only outermost units are read.
type MediapartAdapter struct {
	assembler *Assembler
}

// NewMediapartAdapter creates a new MediapartAdapter.
func NewMediapartAdapter() *MediapartAdapter {
	return &MediapartAdapter{
		assembler: NewAssembler(AssemblerConfig{
			Containers:     []string{mediapartContent},
			Strip:          []string{},
			Junk:           []string{".lire-aussi", ".r-interne", ".read-also", ".screen-reader-only", "figure"},
			Wrappers:       []string{},
			Units:          append(append([]string{}, headingTags...), "p", "li"),
			OutermostUnits: true,
			Noise:          []string{"À lire aussi"},
		}),
	}
}

// Name returns the adapter's identifier.
func (a *MediapartAdapter) Name() string {
	return "mediapart"
}

// CanHandle matches on the filename or the Mediapart content blocks.
func (a *MediapartAdapter) CanHandle(doc *narrator.Document) bool {
	return strings.Contains(doc.Filename, "Mediapart") || newPage(doc).has(mediapartContent)
}

// ExtractMetadata reads the OpenGraph tags of the page and drops the
// "| Mediapart" title suffix.
func (a *MediapartAdapter) ExtractMetadata(doc *narrator.Document) *narrator.Metadata {
	return a.metadata(doc, func() string { return a.Content(doc) })
}

// ExtractMetadataWithBody is ExtractMetadata with the body already computed.
func (a *MediapartAdapter) ExtractMetadataWithBody(doc *narrator.Document, body string) *narrator.Metadata {
	return a.metadata(doc, func() string { return body })
}

func (a *MediapartAdapter) metadata(doc *narrator.Document, body func() string) *narrator.Metadata {
	p := newPage(doc)
	m := narrator.NewMetadata()
	m.Title = trimMediapart(p.title())
	if author := p.named("author"); author != "" {
		m.Author = author
	}
	m.Media = "Mediapart"
	p.common(m)
	m.Description = describe(p.property("og:description"), body)
	return m
}

// Content returns the outermost headings, paragraphs and list items.
func (a *MediapartAdapter) Content(doc *narrator.Document) string {
	return a.assembler.Assemble(doc)
}

func trimMediapart(title string) string {
	for _, sep := range []string{" | ", " - "} {
		parts := strings.Split(title, sep)
		if len(parts) > 1 && strings.Contains(parts[len(parts)-1], "Mediapart") {
			title = strings.Join(parts[:len(parts)-1], sep)
		}
	}
	return title
}
