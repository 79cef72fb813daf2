package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/narrator"
)

var (
	_ narrator.Adapter               = (*GenericAdapter)(nil)
	_ narrator.BodyMetadataExtractor = (*GenericAdapter)(nil)
)

// ReaderMinContent is the length above which reader-mode content is
// trusted over structural extraction.
const ReaderMinContent = 100

// bestDivMinParagraphs is the number of direct <p> children a <div> needs
// to be picked as the content root of an unknown page.
const bestDivMinParagraphs = 3

// GenericAdapter handles any page. It prefers reader-mode extraction and
// falls back to cleaning the whole page and reading its main container.
type GenericAdapter struct {
	reader    narrator.Reader
	assembler *Assembler
}

// NewGenericAdapter creates a new GenericAdapter. r may be nil, in which
// case only structural extraction is used.
func NewGenericAdapter(r narrator.Reader) *GenericAdapter {
	return &GenericAdapter{
		reader: r,
		assembler: NewAssembler(AssemblerConfig{
			Locate:     genericContainer,
			CleanFirst: true,
			Strip: []string{
				"script", "style", "nav", "header", "footer", "aside", "form",
				"iframe", "noscript", "figure", "button", "input",
			},
			Junk: []string{
				".share", ".social", ".comment", ".meta", ".tags", ".banner", ".promo", ".newsletter",
				".navigation", ".sidebar", ".related", ".breadcrumbs", ".author-bio", ".date",
				"#cookie-banner", "#subscribe-modal", ".paywall", ".teaser", ".recruitment",
				".noprint", ".hidden", ".visually-hidden", ".feed",
			},
			Wrappers: []string{},
			Units:    append(append([]string{}, headingTags...), "p", "li"),
		}),
	}
}

// Name returns the adapter's identifier.
func (a *GenericAdapter) Name() string {
	return "generic"
}

// CanHandle accepts every document.
func (a *GenericAdapter) CanHandle(*narrator.Document) bool {
	return true
}

// ExtractMetadata reads the common meta tags. When the title, author or
// date is still missing, the reader's metadata fills the gap.
func (a *GenericAdapter) ExtractMetadata(doc *narrator.Document) *narrator.Metadata {
	return a.metadata(doc, func() string { return a.Content(doc) })
}

// ExtractMetadataWithBody is ExtractMetadata with the body already computed.
func (a *GenericAdapter) ExtractMetadataWithBody(doc *narrator.Document, body string) *narrator.Metadata {
	return a.metadata(doc, func() string { return body })
}

func (a *GenericAdapter) metadata(doc *narrator.Document, body func() string) *narrator.Metadata {
	p := newPage(doc)
	m := narrator.NewMetadata()

	m.Title = trimSuffixPart(p.taggedTitle(), []string{" | ", " - ", " : "}, 30)
	if author := p.named("author"); author != "" {
		m.Author = author
	} else if author := p.property("article:author"); author != "" {
		m.Author = author
	} else if author := p.jsonLDAuthor(); author != "" {
		m.Author = author
	}
	p.common(m)
	if m.Date == "" {
		m.Date = p.named("date")
	}
	if site := p.siteName(); site != "" {
		m.Media = site
	} else if app := p.named("application-name"); app != "" {
		m.Media = app
	}

	structured := p.property("og:description")
	if structured == "" {
		structured = p.named("description")
	}
	m.Description = describe(structured, body)

	if m.Title == "" || !m.HasAuthor() || m.Date == "" {
		if rm := readerMetadata(a.reader, doc); rm != nil {
			if m.Title == "" {
				m.Title = rm.Title
			}
			if !m.HasAuthor() && rm.Author != "" {
				m.Author = rm.Author
			}
			if m.Date == "" {
				m.Date = rm.Date
			}
		}
	}
	if m.Title == "" {
		m.Title = doc.Stem()
	}
	return m
}

// Content returns the reader-mode text when it is long enough, and the
// structural text of the main container otherwise.
func (a *GenericAdapter) Content(doc *narrator.Document) string {
	if content := readerContent(a.reader, doc); runeLen(content) > ReaderMinContent {
		return content
	}
	return a.assembler.Assemble(doc)
}

// genericContainer picks the content root of a cleaned page: <article>,
// <main>, a div with role=main, the div with the most direct paragraphs,
// then <body>.
func genericContainer(root *goquery.Selection) *goquery.Selection {
	for _, selector := range []string{"article", "main", `div[role="main"]`} {
		if sel := root.Find(selector).First(); sel.Length() > 0 {
			return sel
		}
	}

	var best *goquery.Selection
	most := 0
	root.Find("div").Each(func(_ int, div *goquery.Selection) {
		if n := div.ChildrenFiltered("p").Length(); n > most {
			most = n
			best = div
		}
	})
	if best != nil && most > bestDivMinParagraphs {
		return best
	}

	return root.Find("body").First()
}
