package goquery

import (
	"regexp"
	"strings"

	"github.com/fwojciec/narrator"
)

var (
	_ narrator.Adapter               = (*LMSIAdapter)(nil)
	_ narrator.BodyMetadataExtractor = (*LMSIAdapter)(nil)
)

var (
	lmsiTitleSuffix = regexp.MustCompile(`(?i)\s*[-–|]\s*Les mots sont importants.*$`)
	lmsiByline      = regexp.MustCompile(`(?i)^par[\s,]+`)
)

// LMSIAdapter handles articles from Les mots sont importants (lmsi.net), a
// SPIP site that nests its paragraphs in layout <div> and <span> elements.
type LMSIAdapter struct {
	assembler *Assembler
}

// NewLMSIAdapter creates a new LMSIAdapter.
func NewLMSIAdapter() *LMSIAdapter {
	return &LMSIAdapter{
		assembler: NewAssembler(AssemblerConfig{
			Containers: []string{".contenu-principal"},
			Strip:      []string{"script", "style", "nav", "figure", "img", "iframe"},
			Junk: []string{
				".info-publi", ".spip_note_ref", ".notes", ".portfolio",
				".share", ".social", ".author", ".tags", ".related", "#forum",
				".cartouche h1",
			},
			Wrappers:  []string{"div", "span"},
			LeafUnits: true,
			MinLength: 15,
			Dedup:     true,
		}),
	}
}

// Name returns the adapter's identifier.
func (a *LMSIAdapter) Name() string {
	return "lmsi"
}

// CanHandle matches on the site name, the page URL or the filename.
func (a *LMSIAdapter) CanHandle(doc *narrator.Document) bool {
	p := newPage(doc)
	return strings.Contains(p.siteName(), "lmsi.net") ||
		strings.Contains(p.property("og:url"), "lmsi.net") ||
		p.filenameHas("lmsi.net")
}

// ExtractMetadata reads the OpenGraph tags and the SPIP article header.
func (a *LMSIAdapter) ExtractMetadata(doc *narrator.Document) *narrator.Metadata {
	return a.metadata(doc, func() string { return a.Content(doc) })
}

// ExtractMetadataWithBody is ExtractMetadata with the body already computed.
func (a *LMSIAdapter) ExtractMetadataWithBody(doc *narrator.Document, body string) *narrator.Metadata {
	return a.metadata(doc, func() string { return body })
}

func (a *LMSIAdapter) metadata(doc *narrator.Document, body func() string) *narrator.Metadata {
	p := newPage(doc)
	m := narrator.NewMetadata()

	m.Title = lmsiTitleSuffix.ReplaceAllString(p.property("og:title"), "")
	if m.Title == "" {
		m.Title = p.first("h1.article-titre-2091, h1", " ")
	}
	if m.Title == "" {
		m.Title = doc.Stem()
	}

	if author := lmsiByline.ReplaceAllString(p.first(".vcard.author, .auteurs", ", "), ""); author != "" {
		m.Author = author
	}
	m.Media = "LMSI"
	p.common(m)
	if m.Date == "" {
		m.Date = p.attr("abbr.published", "title")
	}

	structured := p.property("og:description")
	if structured == "" {
		structured = p.named("description")
	}
	m.Description = describe(structured, body)
	return m
}

// Content returns the speakable text of the main content column.
func (a *LMSIAdapter) Content(doc *narrator.Document) string {
	return a.assembler.Assemble(doc)
}
