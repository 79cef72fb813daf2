package goquery

import (
	"regexp"
	"strings"

	"github.com/fwojciec/narrator"
)

var (
	_ narrator.Adapter               = (*BallastAdapter)(nil)
	_ narrator.BodyMetadataExtractor = (*BallastAdapter)(nil)
)

var ballastTitlePrefix = regexp.MustCompile(`^BALLAST\s*[•·:]\s*`)

// BallastAdapter handles articles from the BALLAST review
// (revue-ballast.fr), a WordPress site whose body sits in <article>.
type BallastAdapter struct {
	assembler *Assembler
}

// NewBallastAdapter creates a new BallastAdapter.
func NewBallastAdapter() *BallastAdapter {
	return &BallastAdapter{
		assembler: NewAssembler(AssemblerConfig{
			Containers: []string{"article"},
			Junk: []string{
				".share", ".social", ".sharing", ".sharedaddy",
				".author", ".post-author", ".author-bio",
				".tags", ".post-tags", ".category",
				".comments", ".comment-form",
				".related", ".related-posts",
				".navigation", ".nav-links",
				".meta", ".post-meta", ".entry-meta",
				".wp-caption", ".wp-caption-text",
				"[class*='share']", "[class*='social']",
			},
			MinLength: 10,
		}),
	}
}

// Name returns the adapter's identifier.
func (a *BallastAdapter) Name() string {
	return "ballast"
}

// CanHandle matches on the site name, the page URL or the filename.
func (a *BallastAdapter) CanHandle(doc *narrator.Document) bool {
	p := newPage(doc)
	return strings.Contains(p.siteName(), "BALLAST") ||
		strings.Contains(p.property("og:url"), "revue-ballast.fr") ||
		p.filenameHas("BALLAST")
}

// ExtractMetadata reads the OpenGraph tags of the page.
func (a *BallastAdapter) ExtractMetadata(doc *narrator.Document) *narrator.Metadata {
	return a.metadata(doc, func() string { return a.Content(doc) })
}

// ExtractMetadataWithBody is ExtractMetadata with the body already computed.
func (a *BallastAdapter) ExtractMetadataWithBody(doc *narrator.Document, body string) *narrator.Metadata {
	return a.metadata(doc, func() string { return body })
}

func (a *BallastAdapter) metadata(doc *narrator.Document, body func() string) *narrator.Metadata {
	p := newPage(doc)
	m := narrator.NewMetadata()
	m.Title = ballastTitlePrefix.ReplaceAllString(p.title(), "")
	if author := p.property("article:author"); author != "" {
		m.Author = author
	} else if author := p.first(".author, .meta-author, .post-author a", ""); author != "" {
		m.Author = author
	}
	m.Media = "BALLAST"
	p.common(m)
	m.Description = describe(p.property("og:description"), body)
	return m
}

// Content returns the speakable text of the <article> element.
func (a *BallastAdapter) Content(doc *narrator.Document) string {
	return a.assembler.Assemble(doc)
}
