package goquery

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/narrator"
)

// page exposes the metadata signals of a document: meta tags, link tags,
// structured data and well-known elements. All lookups are read-only.
type page struct {
	doc  *narrator.Document
	root *goquery.Selection
}

func newPage(doc *narrator.Document) page {
	return page{doc: doc, root: view(doc).Selection}
}

// property returns the trimmed content of <meta property="name">.
func (p page) property(name string) string {
	return p.attr(`meta[property="`+name+`"]`, "content")
}

// named returns the trimmed content of <meta name="name">.
func (p page) named(name string) string {
	return p.attr(`meta[name="`+name+`"]`, "content")
}

// attr returns the trimmed attribute of the first element matching selector.
func (p page) attr(selector, attr string) string {
	v, _ := p.root.Find(selector).First().Attr(attr)
	return strings.TrimSpace(v)
}

// first returns the text of the first element matching selector.
func (p page) first(selector, sep string) string {
	return text(p.root.Find(selector).First(), sep)
}

func (p page) has(selector string) bool {
	return p.root.Find(selector).Length() > 0
}

func (p page) siteName() string {
	return p.property("og:site_name")
}

// url returns og:url, falling back to the canonical link.
func (p page) url() string {
	if u := p.property("og:url"); u != "" {
		return u
	}
	return p.attr(`link[rel~="canonical"]`, "href")
}

// title runs the common title cascade: og:title, <title>, first <h1>, then
// the filename stem.
func (p page) title() string {
	if t := p.taggedTitle(); t != "" {
		return t
	}
	return p.doc.Stem()
}

// taggedTitle is title without the filename fallback.
func (p page) taggedTitle() string {
	for _, t := range []func() string{
		func() string { return p.property("og:title") },
		func() string { return p.first("title", " ") },
		func() string { return p.first("h1", " ") },
	} {
		if s := t(); s != "" {
			return s
		}
	}
	return ""
}

// filenameHas reports whether the filename contains s.
func (p page) filenameHas(s string) bool {
	return strings.Contains(p.doc.Filename, s)
}

// jsonLDAuthor returns the author declared in the first JSON-LD block that
// names one, either on an Article inside @graph or at the top level.
func (p page) jsonLDAuthor() string {
	var author string
	p.root.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var data map[string]any
		if err := json.Unmarshal([]byte(s.Text()), &data); err != nil {
			return true
		}
		if graph, ok := data["@graph"].([]any); ok {
			for _, item := range graph {
				obj, ok := item.(map[string]any)
				if !ok || obj["@type"] != "Article" {
					continue
				}
				if a, ok := obj["author"]; ok {
					author = authorName(a)
					break
				}
			}
		} else if a, ok := data["author"]; ok {
			author = authorName(a)
		}
		return author == ""
	})
	return strings.TrimSpace(author)
}

func authorName(v any) string {
	switch a := v.(type) {
	case string:
		return a
	case map[string]any:
		name, _ := a["name"].(string)
		return name
	}
	return ""
}

// trimSuffixPart drops the last part of title around each separator in
// turn, when that part is shorter than maxTail characters. It removes
// trailing site names such as "Article | Site".
func trimSuffixPart(title string, separators []string, maxTail int) string {
	for _, sep := range separators {
		parts := strings.Split(title, sep)
		if len(parts) > 1 && runeLen(parts[len(parts)-1]) < maxTail {
			title = strings.Join(parts[:len(parts)-1], sep)
		}
	}
	return title
}

// describe picks the description of an article: the structured one when it
// is long enough, otherwise a synthesized excerpt of the spoken body, and
// the short structured one when the body is empty.
func describe(structured string, body func() string) string {
	if runeLen(structured) >= narrator.MinStructuredDescription {
		return structured
	}
	if synthesized := narrator.SynthesizeDescription(body(), narrator.DefaultDescriptionLength); synthesized != "" {
		return synthesized
	}
	return structured
}

// readerContent returns the content of the reader, or "" on any failure.
func readerContent(r narrator.Reader, doc *narrator.Document) string {
	if r == nil {
		return ""
	}
	content, err := r.ReadContent(doc.HTML())
	if err != nil {
		return ""
	}
	return content
}

// readerMetadata returns the metadata of the reader, or nil on any failure.
func readerMetadata(r narrator.Reader, doc *narrator.Document) *narrator.Metadata {
	if r == nil {
		return nil
	}
	m, err := r.ReadMetadata(doc.HTML())
	if err != nil {
		return nil
	}
	return m
}

// common fills the fields most outlets expose the same way.
func (p page) common(m *narrator.Metadata) {
	m.URL = p.url()
	m.Date = p.property("article:published_time")
	m.ImageURL = p.property("og:image")
}
