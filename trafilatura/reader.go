package trafilatura

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fwojciec/narrator"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

var _ narrator.Reader = (*Reader)(nil)

// Config holds the extraction settings of a Reader.
type Config struct {
	// MinExtractedSize is the shortest main text accepted before the
	// fallback extractors are tried.
	MinExtractedSize int

	// MinOutputSize is the shortest main text returned at all.
	MinOutputSize int

	// EnableFallback runs readability and dom-distiller when the main
	// algorithm finds too little text.
	EnableFallback bool
}

// DefaultConfig returns the settings used for article narration.
func DefaultConfig() Config {
	return Config{
		MinExtractedSize: 100,
		MinOutputSize:    1,
		EnableFallback:   true,
	}
}

// Reader is a reader-mode service backed by go-trafilatura. Comments,
// tables, links and images are left out of the extracted text.
type Reader struct {
	config    Config
	converter narrator.Converter
}

// NewReader creates a new Reader. The content node is rendered through conv
// so that heading and list markers survive; when conv is nil or fails, the
// plain text of the extraction is used.
func NewReader(config Config, conv narrator.Converter) *Reader {
	return &Reader{config: config, converter: conv}
}

// ReadContent returns the speakable main text of a page.
func (r *Reader) ReadContent(rawHTML string) (string, error) {
	result, err := r.extract(rawHTML)
	if err != nil {
		return "", err
	}
	return narrator.SpeakableLines(r.lines(result)), nil
}

// ReadMetadata returns the metadata found by the extraction.
func (r *Reader) ReadMetadata(rawHTML string) (*narrator.Metadata, error) {
	result, err := r.extract(rawHTML)
	if err != nil {
		return nil, err
	}
	meta := result.Metadata
	m := &narrator.Metadata{
		Title:       strings.TrimSpace(meta.Title),
		Author:      strings.TrimSpace(meta.Author),
		Media:       strings.TrimSpace(meta.Sitename),
		URL:         strings.TrimSpace(meta.URL),
		Description: strings.TrimSpace(meta.Description),
		ImageURL:    strings.TrimSpace(meta.Image),
	}
	if !meta.Date.IsZero() {
		m.Date = meta.Date.Format("2006-01-02")
	}
	return m, nil
}

// extract runs go-trafilatura, turning its panics into errors.
func (r *Reader) extract(rawHTML string) (result *trafilatura.ExtractResult, err error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, narrator.Errorf(narrator.EINVALID, "empty HTML input")
	}

	defer func() {
		if p := recover(); p != nil {
			result, err = nil, narrator.Errorf(narrator.EINTERNAL, "trafilatura panic: %v", p)
		}
	}()

	config := trafilatura.DefaultConfig()
	config.MinExtractedSize = r.config.MinExtractedSize
	config.MinOutputSize = r.config.MinOutputSize
	config.MinOutputCommentSize = r.config.MinOutputSize

	opts := trafilatura.Options{
		Config:          config,
		EnableFallback:  r.config.EnableFallback,
		ExcludeComments: true,
		ExcludeTables:   true,
		IncludeImages:   false,
		IncludeLinks:    false,
	}

	result, err = trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, fmt.Errorf("trafilatura: %w", err)
	}
	if result == nil {
		return nil, narrator.Errorf(narrator.ENOTFOUND, "no content found")
	}
	return result, nil
}

// lines returns the extracted text with one block per line.
func (r *Reader) lines(result *trafilatura.ExtractResult) string {
	if r.converter != nil && result.ContentNode != nil {
		if rendered, err := renderNode(result.ContentNode); err == nil {
			if md, err := r.converter.Convert(rendered); err == nil && strings.TrimSpace(md) != "" {
				return md
			}
		}
	}
	return result.ContentText
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
