// Package fs reads saved pages from disk and writes transcripts.
package fs

import (
	"bytes"
	"os"
	"unicode/utf8"

	"github.com/fwojciec/narrator"
	"github.com/gogs/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// MinCharsetConfidence is the detector confidence below which a non UTF-8
// page is decoded as ISO-8859-1.
const MinCharsetConfidence = 50

// ReadDocument loads and parses the saved page at path.
func ReadDocument(path string) (*narrator.Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, narrator.Errorf(narrator.ENOTFOUND, "file not found: %s", path)
		}
		return nil, err
	}
	return ParseDocument(b, path)
}

// ParseDocument decodes b to UTF-8 and parses it. Valid UTF-8 is used as is;
// otherwise the charset is detected, with ISO-8859-1 as the last resort
// since every byte sequence decodes under it.
func ParseDocument(b []byte, filename string) (*narrator.Document, error) {
	text, err := Decode(b)
	if err != nil {
		return nil, err
	}
	return narrator.ParseDocument(bytes.NewReader(text), filename)
}

// Decode returns b converted to UTF-8.
func Decode(b []byte) ([]byte, error) {
	if utf8.Valid(b) {
		return b, nil
	}
	return detect(b).NewDecoder().Bytes(b)
}

func detect(b []byte) encoding.Encoding {
	res, err := chardet.NewHtmlDetector().DetectBest(b)
	if err != nil || res.Confidence < MinCharsetConfidence {
		return charmap.ISO8859_1
	}
	enc, err := htmlindex.Get(res.Charset)
	if err != nil || enc == unicode.UTF8 {
		return charmap.ISO8859_1
	}
	return enc
}
