package narrator

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Reader is a reader-mode extractor: a general purpose full-text extraction
// service used when no structural rule identifies the article.
//
// Implementations return errors for internal failures. Adapters treat any
// error as absent data and carry on with empty output.
type Reader interface {
	// ReadContent returns the speakable main text of a page.
	ReadContent(html string) (string, error)

	// ReadMetadata returns a partial record. Unknown fields are empty
	// strings, never the Unknown* sentinels.
	ReadMetadata(html string) (*Metadata, error)
}

// Readers tries several readers in order.
type Readers []Reader

var _ Reader = Readers(nil)

// ReadContent returns the first non-empty content. Errors are returned only
// when no reader produced content.
func (rs Readers) ReadContent(html string) (string, error) {
	var errs []error
	for _, r := range rs {
		text, err := r.ReadContent(html)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if text != "" {
			return text, nil
		}
	}
	return "", errors.Join(errs...)
}

// ReadMetadata merges the records of all readers. Earlier readers win for
// each field.
func (rs Readers) ReadMetadata(html string) (*Metadata, error) {
	merged := &Metadata{}
	var errs []error
	ok := false
	for _, r := range rs {
		m, err := r.ReadMetadata(html)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		ok = true
		fill(&merged.Title, m.Title)
		fill(&merged.Author, m.Author)
		fill(&merged.Media, m.Media)
		fill(&merged.URL, m.URL)
		fill(&merged.Date, m.Date)
		fill(&merged.Description, m.Description)
		fill(&merged.ImageURL, m.ImageURL)
	}
	if !ok && len(errs) > 0 {
		return merged, errors.Join(errs...)
	}
	return merged, nil
}

func fill(dst *string, v string) {
	if *dst == "" {
		*dst = strings.TrimSpace(v)
	}
}

// ReaderPause separates the lines of reader-mode output. Reader output
// carries no tag information, so every line boundary gets a long pause.
const ReaderPause = " ... "

var (
	markdownHeading   = regexp.MustCompile(`^#+\s+`)
	quoteMarker       = regexp.MustCompile(`^(>\s*)+`)
	bracketedFootnote = regexp.MustCompile(`\[\s*\d{1,3}\s*\]`)
	numericLine       = regexp.MustCompile(`^\d+$`)
	sectionLabel      = regexp.MustCompile(`(?i)^(sources?|bibliographie|bibliography|notes?)[s\s:.]*$`)
	listMarker        = regexp.MustCompile(`^[-*+]\s+`)
	pauseThenDot      = regexp.MustCompile(` \.\.\. \.`)
)

// speakableTerminals are line endings that already give the voice a pause.
const speakableTerminals = ".!?:;,\"'»*"

// SpeakableLines formats line-oriented reader output for narration: markdown
// heading, quote and list markers, bracketed footnote numbers, standalone numbers
// and short notes/bibliography labels are dropped, every line gets terminal
// punctuation ("..." for short heading-like lines, "." otherwise) and lines
// are joined with ReaderPause.
func SpeakableLines(text string) string {
	var parts []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		line = markdownHeading.ReplaceAllString(line, "")
		line = quoteMarker.ReplaceAllString(line, "")
		line = strings.TrimSpace(bracketedFootnote.ReplaceAllString(line, ""))
		if line == "" {
			continue
		}

		if numericLine.MatchString(line) {
			continue
		}
		if utf8.RuneCountInString(line) < 20 && sectionLabel.MatchString(line) {
			continue
		}

		line = strings.TrimSpace(listMarker.ReplaceAllString(line, ""))
		if line == "" {
			continue
		}

		last, _ := utf8.DecodeLastRuneInString(line)
		if !strings.ContainsRune(speakableTerminals, last) {
			if utf8.RuneCountInString(line) < 100 {
				line += "..."
			} else {
				line += "."
			}
		}

		parts = append(parts, line)
	}

	result := strings.Join(parts, ReaderPause)
	result = CollapseDots(result)
	result = pauseThenDot.ReplaceAllString(result, ReaderPause)
	return result
}
