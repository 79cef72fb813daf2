package goquery

import (
	"strings"

	"github.com/fwojciec/narrator"
)

var (
	_ narrator.Adapter               = (*EuropresseAdapter)(nil)
	_ narrator.BodyMetadataExtractor = (*EuropresseAdapter)(nil)
)

// europresseTitle matches the article title in both Europresse layouts.
const europresseTitle = ".titreArticleVisu, .rdp__articletitle"

// EuropresseAdapter handles articles saved from the Europresse press
// database. The pages carry no OpenGraph tags; everything is read from the
// document layout.
type EuropresseAdapter struct {
	assembler *Assembler
}

// NewEuropresseAdapter creates a new EuropresseAdapter.
func NewEuropresseAdapter() *EuropresseAdapter {
	return &EuropresseAdapter{
		assembler: NewAssembler(AssemblerConfig{
			Containers: []string{"div.DocText, div.doc-content, section.doc-content"},
			Strip:      []string{},
			Units:      DefaultBlocks,
		}),
	}
}

// Name returns the adapter's identifier.
func (a *EuropresseAdapter) Name() string {
	return "europresse"
}

// CanHandle matches on the <title> or the Europresse title element.
func (a *EuropresseAdapter) CanHandle(doc *narrator.Document) bool {
	p := newPage(doc)
	return strings.Contains(p.first("title", ""), "Europresse") || p.has(europresseTitle)
}

// ExtractMetadata reads the Europresse header. The media is the first part
// of the publication name, and the description is always synthesized.
func (a *EuropresseAdapter) ExtractMetadata(doc *narrator.Document) *narrator.Metadata {
	return a.metadata(doc, func() string { return a.Content(doc) })
}

// ExtractMetadataWithBody is ExtractMetadata with the body already computed.
func (a *EuropresseAdapter) ExtractMetadataWithBody(doc *narrator.Document, body string) *narrator.Metadata {
	return a.metadata(doc, func() string { return body })
}

func (a *EuropresseAdapter) metadata(doc *narrator.Document, body func() string) *narrator.Metadata {
	p := newPage(doc)
	m := narrator.NewMetadata()

	m.Title = "Europresse Article"
	if p.has(europresseTitle) {
		m.Title = p.first(europresseTitle, " ")
	}
	if p.has(".sm-margin-bottomNews") {
		m.Author = p.first(".sm-margin-bottomNews", " ")
	}
	if p.has(".DocPublicationName, .rdp__DocPublicationName") {
		name := p.first(".DocPublicationName, .rdp__DocPublicationName", "|")
		name, _, _ = strings.Cut(name, "|")
		m.Media = strings.TrimSpace(strings.ReplaceAll(name, "(site web)", ""))
	}
	m.Description = narrator.SynthesizeDescription(body(), narrator.DefaultDescriptionLength)
	return m
}

// Content returns the headings and paragraphs of the document text.
func (a *EuropresseAdapter) Content(doc *narrator.Document) string {
	return a.assembler.Assemble(doc)
}
