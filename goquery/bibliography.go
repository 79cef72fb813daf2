package goquery

import (
	"regexp"
	"strings"
)

type academicVerdict int

const (
	academicKeep academicVerdict = iota
	academicSkip
	academicStop
)

var (
	// "Dupont, A. (2019)", "Dupont, A., Martin, B. (2019)" and
	// "Dupont, A. & Martin, B. (2019)".
	citationShape = regexp.MustCompile(`^[A-Z][a-zéèàùâêîôûç\-]+,\s*[A-Z]\.?\s*(?:[,&]\s*[A-Z][a-zéèàùâêîôûç\-]+,\s*[A-Z]\.?\s*)*\(\d{2,4}\)`)

	// "Dupont, Anne. Titre (Éditeur)".
	fullNameCitation = regexp.MustCompile(`^[A-Z][a-zéèàùâêîôûç\-]+,\s*[A-Z][a-zéèàùâêîôûç]+\.`)

	closingSection = regexp.MustCompile(`(?i)^(conflits?\s+d.intérêts?|conflicts?\s+of\s+interests?|référence\s+électronique|electronic\s+reference)`)

	footnoteMarker = regexp.MustCompile(`^\[\d+\]$|^\d+\.$`)
	numberedNote   = regexp.MustCompile(`^\d{1,2}\s+[A-Z]`)
)

// numberedNoteMax is the length under which a paragraph starting with a
// note number is read as a footnote.
const numberedNoteMax = 300

// classifyAcademic decides whether a unit of an academic article is body
// text, a footnote to skip, or the start of the reference apparatus.
func classifyAcademic(s string) academicVerdict {
	switch {
	case footnoteMarker.MatchString(s):
		return academicSkip
	case citationShape.MatchString(s):
		return academicStop
	case fullNameCitation.MatchString(s) && strings.Contains(s, "(") && strings.Contains(s, ")"):
		return academicStop
	case closingSection.MatchString(s):
		return academicStop
	case numberedNote.MatchString(s) && runeLen(s) < numberedNoteMax:
		return academicSkip
	}
	return academicKeep
}
