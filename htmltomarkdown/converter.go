package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/fwojciec/narrator"
)

var _ narrator.Converter = (*Converter)(nil)

// Converter renders the content node of a reader as Markdown, one block per
// line, so that headings, quotes and list items keep a marker that
// narrator.SpeakableLines can act on.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	return &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
			),
		),
	}
}

// Convert transforms an HTML fragment into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", narrator.Errorf(narrator.EINVALID, "empty HTML input")
	}
	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", narrator.Errorf(narrator.EINTERNAL, "markdown conversion: %v", err)
	}
	return md, nil
}
