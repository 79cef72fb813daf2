package fs

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fwojciec/narrator"
	"golang.org/x/text/unicode/norm"
)

// DefaultFilename replaces names that clean down to nothing.
const DefaultFilename = "Audio_Article"

// MaxNameLength caps transcript names.
const MaxNameLength = 200

var separatorRun = regexp.MustCompile(`[\s_-]+`)

// CleanFilename keeps letters, digits, spaces, hyphens and underscores, then
// joins words with single underscores. A name with none of these becomes
// DefaultFilename.
func CleanFilename(s string) string {
	kept := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			return r
		}
		return -1
	}, norm.NFC.String(s))
	name := strings.Trim(separatorRun.ReplaceAllString(strings.TrimSpace(kept), "_"), "_")
	if name == "" {
		return DefaultFilename
	}
	return name
}

// TranscriptName returns the file name stem for a transcript:
// "{title} - {media}", or "{title}" alone when the media is unknown or is
// the Europresse aggregator. source supplies the title when the metadata
// has none.
func TranscriptName(m *narrator.Metadata, source string) string {
	title := CleanFilename(m.Title)
	if m.Title == "" || title == DefaultFilename {
		title = CleanFilename(stem(source))
	}
	name := title
	if media := CleanFilename(m.Media); m.HasMedia() && media != DefaultFilename && media != "Europresse" {
		name += " - " + media
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		name = string([]rune(name)[:MaxNameLength])
	}
	return name
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
