package readability

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/narrator"
	"github.com/go-shiori/go-readability"
)

var _ narrator.Reader = (*Reader)(nil)

// Reader is a reader-mode service backed by go-readability, the port of
// Firefox Reader View. It is the second choice after trafilatura.
type Reader struct {
	converter narrator.Converter
}

// NewReader creates a new Reader. The article HTML is rendered through conv;
// when conv is nil or fails, the article's plain text is used.
func NewReader(conv narrator.Converter) *Reader {
	return &Reader{converter: conv}
}

// ReadContent returns the speakable text of the article.
func (r *Reader) ReadContent(rawHTML string) (string, error) {
	article, err := parse(rawHTML)
	if err != nil {
		return "", err
	}
	text := article.TextContent
	if r.converter != nil && strings.TrimSpace(article.Content) != "" {
		if md, err := r.converter.Convert(unlink(article.Content)); err == nil {
			text = md
		}
	}
	return narrator.SpeakableLines(text), nil
}

// unlink replaces links with their text and drops images, so that the
// rendered text carries no URLs.
func unlink(content string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return content
	}
	doc.Find("img, picture").Remove()
	doc.Find("a").Each(func(_ int, s *goquery.Selection) {
		s.ReplaceWithSelection(s.Contents())
	})
	html, err := doc.Find("body").Html()
	if err != nil {
		return content
	}
	return html
}

// ReadMetadata returns the title, byline, site name, excerpt and image of
// the article.
func (r *Reader) ReadMetadata(rawHTML string) (*narrator.Metadata, error) {
	article, err := parse(rawHTML)
	if err != nil {
		return nil, err
	}
	return &narrator.Metadata{
		Title:       strings.TrimSpace(article.Title),
		Author:      strings.TrimSpace(article.Byline),
		Media:       strings.TrimSpace(article.SiteName),
		Description: strings.TrimSpace(article.Excerpt),
		ImageURL:    strings.TrimSpace(article.Image),
	}, nil
}

func parse(rawHTML string) (article readability.Article, err error) {
	if strings.TrimSpace(rawHTML) == "" {
		return readability.Article{}, narrator.Errorf(narrator.EINVALID, "empty HTML input")
	}

	defer func() {
		if p := recover(); p != nil {
			article, err = readability.Article{}, narrator.Errorf(narrator.EINTERNAL, "readability panic: %v", p)
		}
	}()

	article, err = readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return readability.Article{}, narrator.Errorf(narrator.EINTERNAL, "readability: %v", err)
	}
	return article, nil
}
