package goquery

import (
	"strings"

	"github.com/fwojciec/narrator"
)

var (
	_ narrator.Adapter               = (*UCLAdapter)(nil)
	_ narrator.BodyMetadataExtractor = (*UCLAdapter)(nil)
)

const (
	uclName  = "Union communiste libertaire"
	uclMedia = "Union Communiste Libertaire"
)

// UCLAdapter handles articles from the Union communiste libertaire. Its
// metadata sits in microformat classes; the body is read in reader mode,
// which handles the site's layout well.
type UCLAdapter struct {
	reader   narrator.Reader
	fallback *Assembler
}

// NewUCLAdapter creates a new UCLAdapter reading content through r.
func NewUCLAdapter(r narrator.Reader) *UCLAdapter {
	return &UCLAdapter{
		reader: r,
		fallback: NewAssembler(AssemblerConfig{
			Containers: []string{".entry-content", "article", "main"},
			Junk:       []string{".share", ".social", ".tags", ".related", ".navigation", ".meta"},
		}),
	}
}

// Name returns the adapter's identifier.
func (a *UCLAdapter) Name() string {
	return "ucl"
}

// CanHandle matches on the organisation name anywhere in the page text, or
// on the pair of entry title and author microformats.
func (a *UCLAdapter) CanHandle(doc *narrator.Document) bool {
	p := newPage(doc)
	return strings.Contains(p.root.Text(), uclName) ||
		(p.has(".entry-title") && p.has(".vcard.author"))
}

// ExtractMetadata reads the OpenGraph tags and the microformats.
func (a *UCLAdapter) ExtractMetadata(doc *narrator.Document) *narrator.Metadata {
	return a.metadata(doc, func() string { return a.Content(doc) })
}

// ExtractMetadataWithBody is ExtractMetadata with the body already computed.
func (a *UCLAdapter) ExtractMetadataWithBody(doc *narrator.Document, body string) *narrator.Metadata {
	return a.metadata(doc, func() string { return body })
}

func (a *UCLAdapter) metadata(doc *narrator.Document, body func() string) *narrator.Metadata {
	p := newPage(doc)
	m := narrator.NewMetadata()

	m.Title = p.property("og:title")
	if m.Title == "" {
		m.Title = p.first(".entry-title", " ")
	}
	if m.Title == "" {
		m.Title = p.title()
	}
	for _, sep := range []string{" - " + uclName, " | "} {
		if before, _, ok := strings.Cut(m.Title, sep); ok {
			m.Title = strings.TrimSpace(before)
		}
	}

	m.Author = uclName
	if author := p.first(".vcard.author .fn", ""); author != "" {
		m.Author = author
	}
	m.Media = uclMedia
	p.common(m)
	if m.Date == "" {
		m.Date = p.first(".date-publication", "")
	}
	m.Description = describe(p.property("og:description"), body)
	return m
}

// Content returns the reader-mode text, or the structural text when the
// reader finds less than ReaderMinContent characters.
func (a *UCLAdapter) Content(doc *narrator.Document) string {
	if content := readerContent(a.reader, doc); runeLen(content) > ReaderMinContent {
		return content
	}
	return a.fallback.Assemble(doc)
}
