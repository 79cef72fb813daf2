package narrator

import "strings"

// DefaultDescriptionLength is the preview length used for descriptions
// synthesized from body text, about four times a typical og:description.
const DefaultDescriptionLength = 1200

// MinStructuredDescription is the length from which a page's own description
// is used verbatim instead of a preview synthesized from the body.
const MinStructuredDescription = 300

var sentenceEnds = []string{". ", "! ", "? ", ".\n", "!\n", "?\n"}

// SynthesizeDescription returns a preview of text no longer than target
// characters, cut after the last sentence end that lies at or beyond 70% of
// target. When no sentence ends in that window the text is cut at target and
// an ellipsis is appended. Text that already fits is returned unchanged.
func SynthesizeDescription(text string, target int) string {
	runes := []rune(text)
	if len(runes) <= target {
		return text
	}

	truncated := string(runes[:target])
	minPos := int(float64(target) * 0.7)

	cut := -1
	for _, delim := range sentenceEnds {
		pos := strings.LastIndex(truncated, delim)
		if pos < 0 {
			continue
		}
		// Byte offset to rune offset for the 70% check.
		if len([]rune(truncated[:pos])) < minPos {
			continue
		}
		if pos > cut {
			cut = pos
		}
	}

	if cut >= 0 {
		return strings.TrimSpace(truncated[:cut+1])
	}
	return strings.TrimSpace(truncated) + "…"
}
