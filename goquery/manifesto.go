package goquery

import (
	"regexp"
	"strings"

	"github.com/fwojciec/narrator"
)

var (
	_ narrator.Adapter               = (*ManifestoAdapter)(nil)
	_ narrator.BodyMetadataExtractor = (*ManifestoAdapter)(nil)
)

var (
	manifestoTitleSuffix = regexp.MustCompile(`(?i)\s*[-–]\s*Manifesto\s*(XXI|21)?\s*$`)
	manifestoDateLine    = regexp.MustCompile(`^\d{1,2}\s+[\p{L}\p{N}_]+\s+\d{4}$`)
)

// ManifestoAdapter handles articles from Manifesto XXI (manifesto-21.com),
// an Elementor site that interleaves widgets with the article body.
type ManifestoAdapter struct {
	assembler *Assembler
}

// NewManifestoAdapter creates a new ManifestoAdapter.
func NewManifestoAdapter() *ManifestoAdapter {
	return &ManifestoAdapter{
		assembler: NewAssembler(AssemblerConfig{
			Containers: []string{"article", "main", "body"},
			Junk: []string{
				".share", ".social", ".sharing",
				".author", ".post-author", ".elementor-author-box",
				".tags", ".post-tags",
				".comments",
				".related", ".jet-smart-listing",
				".navigation", ".nav-links",
				".meta", ".post-meta", ".elementor-post-info",
				".elementor-widget-jet-woo-builder-archive-sale-badge",
				".elementor-widget-theme-post-featured-image",
				".elementor-widget-post-navigation",
				"[class*='share']", "[class*='social']",
				".jet-listing-dynamic-link", ".elementor-icon-list",
			},
			Trim: &LeadingTrim{
				Paragraphs: 5,
				MaxLength:  30,
				MaxWords:   3,
				Patterns:   []*regexp.Regexp{manifestoDateLine},
			},
			MinLength: 15,
			Dedup:     true,
		}),
	}
}

// Name returns the adapter's identifier.
func (a *ManifestoAdapter) Name() string {
	return "manifesto"
}

// CanHandle matches on the site name, the page URL or the filename.
func (a *ManifestoAdapter) CanHandle(doc *narrator.Document) bool {
	p := newPage(doc)
	return strings.Contains(p.siteName(), "Manifesto") ||
		strings.Contains(p.property("og:url"), "manifesto-21.com") ||
		p.filenameHas("Manifesto")
}

// ExtractMetadata reads the meta tags of the page. The author is taken from
// the first of the author meta tags, the JSON-LD data and the author box.
func (a *ManifestoAdapter) ExtractMetadata(doc *narrator.Document) *narrator.Metadata {
	return a.metadata(doc, func() string { return a.Content(doc) })
}

// ExtractMetadataWithBody is ExtractMetadata with the body already computed.
func (a *ManifestoAdapter) ExtractMetadataWithBody(doc *narrator.Document, body string) *narrator.Metadata {
	return a.metadata(doc, func() string { return body })
}

func (a *ManifestoAdapter) metadata(doc *narrator.Document, body func() string) *narrator.Metadata {
	p := newPage(doc)
	m := narrator.NewMetadata()
	m.Title = manifestoTitleSuffix.ReplaceAllString(p.title(), "")
	for _, author := range []func() string{
		func() string { return p.named("author") },
		func() string { return p.property("article:author") },
		p.jsonLDAuthor,
		func() string { return p.first(".author-name, .post-author, .elementor-author-box__name", "") },
	} {
		if s := author(); s != "" {
			m.Author = s
			break
		}
	}
	m.Media = "Manifesto XXI"
	p.common(m)
	m.Description = describe(p.property("og:description"), body)
	return m
}

// Content returns the speakable body without Elementor widgets.
func (a *ManifestoAdapter) Content(doc *narrator.Document) string {
	return a.assembler.Assemble(doc)
}
