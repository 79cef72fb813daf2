package goquery

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/narrator"
	"golang.org/x/net/html"
)

var (
	_ narrator.Adapter               = (*GeminiAdapter)(nil)
	_ narrator.BodyMetadataExtractor = (*GeminiAdapter)(nil)
)

var (
	// Exports are named "Title (M_D_YYYY, H_MM_SS).html".
	geminiFilenameDate  = regexp.MustCompile(`\((\d{1,2})_(\d{1,2})_(\d{4})`)
	geminiFilenameStamp = regexp.MustCompile(`\(\d+_\d+_\d+.*\)`)
)

// GeminiAdapter handles conversations exported from the Gemini assistant.
// The answer is rendered markdown whose blocks are often nested in one
// another, with loose inline text between them.
type GeminiAdapter struct {
	assembler *Assembler
}

// NewGeminiAdapter creates a new GeminiAdapter.
func NewGeminiAdapter() *GeminiAdapter {
	return &GeminiAdapter{
		assembler: NewAssembler(AssemblerConfig{
			Containers:     []string{"div.markdown", "div.message-content"},
			Strip:          []string{},
			Wrappers:       []string{"p", "div", "blockquote", "li"},
			Blocks:         []string{"p", "h1", "h2", "h3", "h4", "h5", "h6", "div", "blockquote", "ul", "ol", "li"},
			Reflow:         true,
			OutermostUnits: true,
		}),
	}
}

// Name returns the adapter's identifier.
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// CanHandle matches on the filename or an og:site_name of "Gemini".
func (a *GeminiAdapter) CanHandle(doc *narrator.Document) bool {
	return strings.Contains(doc.Filename, "Gemini") || newPage(doc).siteName() == "Gemini"
}

// ExtractMetadata reads the title from the answer and the date from the
// export filename. The source URL is kept in an HTML comment.
func (a *GeminiAdapter) ExtractMetadata(doc *narrator.Document) *narrator.Metadata {
	return a.metadata(doc, func() string { return a.Content(doc) })
}

// ExtractMetadataWithBody is ExtractMetadata with the body already computed.
func (a *GeminiAdapter) ExtractMetadataWithBody(doc *narrator.Document, body string) *narrator.Metadata {
	return a.metadata(doc, func() string { return body })
}

func (a *GeminiAdapter) metadata(doc *narrator.Document, body func() string) *narrator.Metadata {
	p := newPage(doc)
	m := narrator.NewMetadata()
	m.Author = "Gemini"
	m.Media = "Google Deepmind"

	m.Title = p.first("div.markdown h1", " ")
	if m.Title == "" {
		stem := geminiFilenameStamp.ReplaceAllString(doc.Stem(), "")
		m.Title = strings.TrimSpace(strings.ReplaceAll(stem, "_", " "))
	}
	if d := geminiFilenameDate.FindStringSubmatch(doc.Filename); d != nil {
		month, _ := strconv.Atoi(d[1])
		day, _ := strconv.Atoi(d[2])
		m.Date = fmt.Sprintf("%s-%02d-%02d", d[3], month, day)
	}
	m.URL = commentURL(p.root)
	m.Description = narrator.SynthesizeDescription(body(), narrator.DefaultDescriptionLength)
	return m
}

// Content returns the text of the answer.
func (a *GeminiAdapter) Content(doc *narrator.Document) string {
	return a.assembler.Assemble(doc)
}

// commentURL returns the first word after "url:" in the first comment
// containing it.
func commentURL(root *goquery.Selection) string {
	var found string
	var walk func(n *html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.CommentNode {
			if _, after, ok := strings.Cut(n.Data, "url:"); ok {
				if fields := strings.Fields(after); len(fields) > 0 {
					found = fields[0]
				}
				return true
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	for _, n := range root.Nodes {
		if walk(n) {
			break
		}
	}
	return found
}
