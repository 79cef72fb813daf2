package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/narrator"
	"golang.org/x/net/html/atom"
)

var (
	_ narrator.Adapter               = (*LeMondeDiplomatiqueAdapter)(nil)
	_ narrator.BodyMetadataExtractor = (*LeMondeDiplomatiqueAdapter)(nil)
)

const leMondeDiplomatique = "Le Monde diplomatique"

// LeMondeDiplomatiqueAdapter handles articles from Le Monde diplomatique.
// The spoken body is the standfirst (div.chapo) followed by the text
// (div.texte).
type LeMondeDiplomatiqueAdapter struct {
	assembler *Assembler
}

// NewLeMondeDiplomatiqueAdapter creates a new LeMondeDiplomatiqueAdapter.
func NewLeMondeDiplomatiqueAdapter() *LeMondeDiplomatiqueAdapter {
	return &LeMondeDiplomatiqueAdapter{
		assembler: NewAssembler(AssemblerConfig{
			Locate: chapoAndText,
			Strip:  []string{},
			Units:  DefaultBlocks,
		}),
	}
}

// Name returns the adapter's identifier.
func (a *LeMondeDiplomatiqueAdapter) Name() string {
	return "lemonde-diplo"
}

// CanHandle matches on the filename or the site name.
func (a *LeMondeDiplomatiqueAdapter) CanHandle(doc *narrator.Document) bool {
	return strings.Contains(doc.Filename, leMondeDiplomatique) ||
		strings.Contains(newPage(doc).siteName(), leMondeDiplomatique)
}

// ExtractMetadata reads the OpenGraph tags of the page.
func (a *LeMondeDiplomatiqueAdapter) ExtractMetadata(doc *narrator.Document) *narrator.Metadata {
	return a.metadata(doc, func() string { return a.Content(doc) })
}

// ExtractMetadataWithBody is ExtractMetadata with the body already computed.
func (a *LeMondeDiplomatiqueAdapter) ExtractMetadataWithBody(doc *narrator.Document, body string) *narrator.Metadata {
	return a.metadata(doc, func() string { return body })
}

func (a *LeMondeDiplomatiqueAdapter) metadata(doc *narrator.Document, body func() string) *narrator.Metadata {
	p := newPage(doc)
	m := narrator.NewMetadata()
	m.Title = trimSuffixPart(p.title(), []string{" | ", " - ", ", par "}, 30)
	if author := p.property("article:author"); author != "" {
		m.Author = author
	} else if author := p.first(".auteurs a", ""); author != "" {
		m.Author = author
	}
	m.Media = leMondeDiplomatique
	p.common(m)
	m.Description = describe(p.property("og:description"), body)
	return m
}

// Content returns the standfirst and the text of the article.
func (a *LeMondeDiplomatiqueAdapter) Content(doc *narrator.Document) string {
	return a.assembler.Assemble(doc)
}

// chapoAndText builds a detached container holding copies of the
// standfirst and the text, in that order.
func chapoAndText(root *goquery.Selection) *goquery.Selection {
	chapo := root.Find("div.chapo").First()
	texte := root.Find("div.texte").First()
	if chapo.Length() == 0 && texte.Length() == 0 {
		return nil
	}
	container := newElement(atom.Div)
	for _, part := range []*goquery.Selection{chapo, texte} {
		if part.Length() > 0 {
			container.AppendChild(own(part).Get(0))
		}
	}
	return goquery.NewDocumentFromNode(container).Selection
}
