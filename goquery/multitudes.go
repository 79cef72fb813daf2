package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/narrator"
)

var (
	_ narrator.Adapter               = (*MultitudesAdapter)(nil)
	_ narrator.BodyMetadataExtractor = (*MultitudesAdapter)(nil)
)

var multitudesTitleSuffix = regexp.MustCompile(`(?i)\s*[-–]\s*multitudes\s*$`)

// Multitudes lists its authors as short <h3> headings at the top of the
// article.
const (
	multitudesAuthorMaxLength = 50
	multitudesAuthorScan      = 5
	multitudesMaxAuthors      = 3
)

// MultitudesAdapter handles articles from the Multitudes review
// (multitudes.net).
type MultitudesAdapter struct {
	assembler *Assembler
}

// NewMultitudesAdapter creates a new MultitudesAdapter.
func NewMultitudesAdapter() *MultitudesAdapter {
	return &MultitudesAdapter{
		assembler: NewAssembler(AssemblerConfig{
			Containers: []string{".entry-content", "article"},
			Prune:      pruneAuthorHeadings,
			Junk: []string{
				".share", ".social", ".sharing",
				".author", ".post-author",
				".tags", ".post-tags",
				".comments", ".related", ".navigation",
				".meta", ".post-meta",
			},
			MinLength: 10,
		}),
	}
}

// Name returns the adapter's identifier.
func (a *MultitudesAdapter) Name() string {
	return "multitudes"
}

// CanHandle matches on the site name, the page URL or the filename.
func (a *MultitudesAdapter) CanHandle(doc *narrator.Document) bool {
	p := newPage(doc)
	return strings.Contains(strings.ToLower(p.siteName()), "multitudes") ||
		strings.Contains(p.property("og:url"), "multitudes.net") ||
		strings.Contains(strings.ToLower(doc.Filename), "multitudes")
}

// ExtractMetadata reads the OpenGraph tags and the author headings.
func (a *MultitudesAdapter) ExtractMetadata(doc *narrator.Document) *narrator.Metadata {
	return a.metadata(doc, func() string { return a.Content(doc) })
}

// ExtractMetadataWithBody is ExtractMetadata with the body already computed.
func (a *MultitudesAdapter) ExtractMetadataWithBody(doc *narrator.Document, body string) *narrator.Metadata {
	return a.metadata(doc, func() string { return body })
}

func (a *MultitudesAdapter) metadata(doc *narrator.Document, body func() string) *narrator.Metadata {
	p := newPage(doc)
	m := narrator.NewMetadata()
	m.Title = multitudesTitleSuffix.ReplaceAllString(p.title(), "")
	if authors := multitudesAuthors(p); len(authors) > 0 {
		m.Author = strings.Join(authors, ", ")
	} else if author := p.property("article:author"); author != "" {
		m.Author = author
	}
	m.Media = "Multitudes"
	p.common(m)
	m.Description = describe(p.property("og:description"), body)
	return m
}

// Content returns the speakable body without the author headings.
func (a *MultitudesAdapter) Content(doc *narrator.Document) string {
	return a.assembler.Assemble(doc)
}

func multitudesAuthors(p page) []string {
	var authors []string
	headings := p.root.Find("article").First().Find("h3")
	headings.Slice(0, min(multitudesAuthorScan, headings.Length())).Each(func(_ int, h *goquery.Selection) {
		s := text(h, "")
		if s != "" && runeLen(s) < multitudesAuthorMaxLength && !strings.ContainsAny(s, ":.?") {
			authors = append(authors, s)
		}
	})
	if len(authors) > multitudesMaxAuthors {
		authors = authors[:multitudesMaxAuthors]
	}
	return authors
}

// pruneAuthorHeadings removes the short <h3> headings holding author names.
func pruneAuthorHeadings(container *goquery.Selection) {
	container.Find("h3").FilterFunction(func(_ int, h *goquery.Selection) bool {
		s := text(h, "")
		return runeLen(s) < multitudesAuthorMaxLength && !strings.ContainsAny(s, ":.?!")
	}).Remove()
}
