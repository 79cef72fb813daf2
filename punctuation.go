package narrator

import "regexp"

var (
	commaBeforeDot = regexp.MustCompile(`,+\.`)
	dotRun         = regexp.MustCompile(`\.{2,}`)
)

// CollapseDots normalizes punctuation produced by templating. Commas right
// before a period are dropped and a run of two periods becomes one. Runs of
// three or more, including runs of four, become a single ellipsis, so a title
// ending in a period followed by the "..." separator reads "Title...". The
// result is stable: applying it twice gives the same string as applying it
// once.
func CollapseDots(s string) string {
	s = commaBeforeDot.ReplaceAllString(s, ".")
	return dotRun.ReplaceAllStringFunc(s, func(run string) string {
		if len(run) == 2 {
			return "."
		}
		return "..."
	})
}
