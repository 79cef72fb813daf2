package narrator

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MinContentLength is the shortest body text worth narrating. Shorter
// output means the page had no usable content.
const MinContentLength = 50

// HasContent reports whether body is long enough to be narrated.
func HasContent(body string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(body)) >= MinContentLength
}

// Intro returns the spoken introduction read before the body.
func Intro(m *Metadata) string {
	return "Article de " + m.Media + "... " +
		m.Title + "... " +
		"Par " + m.Author + "... "
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Script joins the introduction and the body into the text handed to the
// speech pipeline, with whitespace runs collapsed to single spaces.
func Script(m *Metadata, body string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(Intro(m)+body, " "))
}
