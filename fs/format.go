package fs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/beevik/etree"
	"github.com/fwojciec/narrator"
	"gopkg.in/yaml.v3"
)

// Format is a transcript file format.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatXML:
		return f, nil
	}
	return "", narrator.Errorf(narrator.EINVALID, "unknown format %q", s)
}

// Ext returns the file extension, dot included.
func (f Format) Ext() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatXML:
		return ".xml"
	default:
		return ".txt"
	}
}

// header is the front matter of the text format.
type header struct {
	narrator.Metadata `yaml:",inline"`
	Source            string `yaml:"source"`
	Adapter           string `yaml:"adapter"`
	Chars             int    `yaml:"chars"`
	Words             int    `yaml:"words"`
}

type record struct {
	Source   string             `json:"source"`
	Adapter  string             `json:"adapter"`
	Metadata *narrator.Metadata `json:"metadata"`
	Script   string             `json:"script"`
	Chars    int                `json:"chars"`
	Words    int                `json:"words"`
}

// Encode writes t to w in format f.
func Encode(w io.Writer, t *narrator.Transcript, f Format) error {
	switch f {
	case FormatText:
		return encodeText(w, t)
	case FormatJSON:
		return encodeJSON(w, t)
	case FormatXML:
		return encodeXML(w, t)
	}
	return narrator.Errorf(narrator.EINVALID, "unknown format %q", f)
}

// encodeText writes YAML front matter followed by the script.
func encodeText(w io.Writer, t *narrator.Transcript) error {
	chars, words := t.Stats()
	front, err := yaml.Marshal(header{
		Metadata: *t.Metadata,
		Source:   t.Source,
		Adapter:  t.Adapter,
		Chars:    chars,
		Words:    words,
	})
	if err != nil {
		return err
	}
	var b bytes.Buffer
	b.WriteString("---\n")
	b.Write(front)
	b.WriteString("---\n\n")
	b.WriteString(t.Script())
	b.WriteString("\n")
	_, err = w.Write(b.Bytes())
	return err
}

func encodeJSON(w io.Writer, t *narrator.Transcript) error {
	chars, words := t.Stats()
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(record{
		Source:   t.Source,
		Adapter:  t.Adapter,
		Metadata: t.Metadata,
		Script:   t.Script(),
		Chars:    chars,
		Words:    words,
	})
}

func encodeXML(w io.Writer, t *narrator.Transcript) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("transcript")
	root.CreateAttr("source", t.Source)
	root.CreateAttr("adapter", t.Adapter)

	meta := root.CreateElement("metadata")
	m := t.Metadata
	for _, f := range []struct{ tag, value string }{
		{"title", m.Title},
		{"author", m.Author},
		{"media", m.Media},
		{"url", m.URL},
		{"date", m.Date},
		{"description", m.Description},
		{"image", m.ImageURL},
	} {
		if f.value == "" {
			continue
		}
		meta.CreateElement(f.tag).SetText(f.value)
	}

	root.CreateElement("script").SetText(t.Script())

	chars, words := t.Stats()
	stats := root.CreateElement("stats")
	stats.CreateAttr("chars", strconv.Itoa(chars))
	stats.CreateAttr("words", strconv.Itoa(words))

	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("write xml: %w", err)
	}
	return nil
}
