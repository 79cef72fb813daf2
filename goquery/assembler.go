package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/narrator"
	"golang.org/x/net/html"
)

// Element groups used by the assembler.
var (
	headingTags = []string{"h1", "h2", "h3", "h4", "h5", "h6"}

	// DefaultStrip lists the elements removed outright before linearization.
	DefaultStrip = []string{
		"script", "style", "nav", "header", "footer", "aside", "form",
		"iframe", "noscript", "figure", "button", "input",
		"img", "video", "audio", "embed", "object",
	}

	// DefaultWrappers are unwrapped when they contain a DefaultBlocks element.
	DefaultWrappers = []string{"p", "div"}

	// DefaultBlocks are the block elements that trigger unwrapping.
	DefaultBlocks = append([]string{"p"}, headingTags...)

	// DefaultUnits are the elements turned into spoken units.
	DefaultUnits = append(append([]string{}, headingTags...), "p", "blockquote", "li")

	// leafBlocks disqualify a unit under AssemblerConfig.LeafUnits.
	leafBlocks = append(append([]string{}, headingTags...), "p", "blockquote")
)

const (
	// DedupPrefix is the number of leading characters compared to detect a
	// unit that was already spoken.
	DedupPrefix = 50

	// NoiseMaxLength is the length under which a unit holding a noise
	// marker is skipped.
	NoiseMaxLength = 50
)

// LeadingTrim drops byline and date paragraphs from the top of an article.
// A paragraph among the first Paragraphs is a candidate when its text is
// shorter than MaxLength; a candidate is dropped when it contains one of
// Markers, matches one of Patterns, or has at most MaxWords words.
type LeadingTrim struct {
	Paragraphs int
	MaxLength  int
	MaxWords   int
	Markers    []string
	Patterns   []*regexp.Regexp
}

func (t *LeadingTrim) apply(container *goquery.Selection) {
	paragraphs := container.Find("p")
	n := min(t.Paragraphs, paragraphs.Length())
	paragraphs.Slice(0, n).Each(func(_ int, p *goquery.Selection) {
		s := text(p, "")
		if runeLen(s) >= t.MaxLength {
			return
		}
		if t.matches(s) || len(strings.Fields(s)) <= t.MaxWords {
			p.Remove()
		}
	})
}

func (t *LeadingTrim) matches(s string) bool {
	for _, m := range t.Markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	for _, re := range t.Patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// AssemblerConfig describes how one outlet's pages are turned into text.
// Zero values select the defaults documented on each field.
type AssemblerConfig struct {
	// Containers are tried in order; the first selector matching an element
	// picks the content root. Ignored when Locate is set.
	Containers []string

	// Locate picks the content root itself. It may return a detached
	// element built from several parts of the page.
	Locate func(root *goquery.Selection) *goquery.Selection

	// CleanFirst strips and removes junk on a copy of the whole page before
	// the content root is located.
	CleanFirst bool

	// Strip lists element names removed outright. Nil means DefaultStrip;
	// an empty list strips nothing.
	Strip []string

	// Prune runs on the private copy after Strip and before Junk.
	Prune func(container *goquery.Selection)

	// Junk lists selectors of boilerplate subtrees to remove.
	Junk []string

	// Trim drops short byline-like paragraphs at the top. Nil disables it.
	Trim *LeadingTrim

	// Wrappers and Blocks drive flattening. Nil means DefaultWrappers and
	// DefaultBlocks; an empty Wrappers disables flattening.
	Wrappers []string
	Blocks   []string

	// Reflow wraps loose inline content between blocks in paragraphs.
	Reflow bool

	// Units lists the elements linearized. Nil means DefaultUnits.
	Units []string

	// OutermostUnits skips units nested inside another unit.
	OutermostUnits bool

	// LeafUnits skips units that contain a heading, paragraph or quote.
	LeafUnits bool

	// MinLength is the shortest unit text kept, in characters. Headings
	// are kept whatever their length.
	MinLength int

	// Noise lists markers of short promotional units ("À lire aussi").
	// Units shorter than NoiseMaxLength containing one are skipped.
	Noise []string

	// Dedup skips units whose first DedupPrefix characters were already seen.
	Dedup bool

	// Bibliography stops at the first citation or closing section and skips
	// numbered footnotes.
	Bibliography bool
}

// Assembler turns the content of a page into one line of speakable text
// following an AssemblerConfig.
type Assembler struct {
	cfg AssemblerConfig
}

// NewAssembler creates an Assembler with the given configuration.
func NewAssembler(cfg AssemblerConfig) *Assembler {
	if cfg.Strip == nil {
		cfg.Strip = DefaultStrip
	}
	if cfg.Wrappers == nil {
		cfg.Wrappers = DefaultWrappers
	}
	if cfg.Blocks == nil {
		cfg.Blocks = DefaultBlocks
	}
	if cfg.Units == nil {
		cfg.Units = DefaultUnits
	}
	return &Assembler{cfg: cfg}
}

// Assemble returns the speakable body of doc, or "" when no content root
// is found. The shared tree of doc is never modified.
func (a *Assembler) Assemble(doc *narrator.Document) string {
	container := a.prepare(view(doc).Selection)
	if container == nil {
		return ""
	}
	return a.linearize(container)
}

// prepare locates the content root and returns a cleaned private copy.
func (a *Assembler) prepare(root *goquery.Selection) *goquery.Selection {
	var container *goquery.Selection
	if a.cfg.CleanFirst {
		page := own(root)
		a.clean(page)
		container = a.locate(page)
		if container == nil {
			return nil
		}
		container = container.First()
	} else {
		container = a.locate(root)
		if container == nil {
			return nil
		}
		container = own(container)
		a.clean(container)
	}

	if a.cfg.Trim != nil {
		a.cfg.Trim.apply(container)
	}
	if len(a.cfg.Wrappers) > 0 {
		flatten(container, a.cfg.Wrappers, a.cfg.Blocks)
	}
	if a.cfg.Reflow {
		reflow(container.Get(0))
	}
	return container
}

func (a *Assembler) locate(root *goquery.Selection) *goquery.Selection {
	if a.cfg.Locate != nil {
		sel := a.cfg.Locate(root)
		if sel == nil || sel.Length() == 0 {
			return nil
		}
		return sel
	}
	for _, selector := range a.cfg.Containers {
		if sel := root.Find(selector).First(); sel.Length() > 0 {
			return sel
		}
	}
	return nil
}

func (a *Assembler) clean(container *goquery.Selection) {
	if len(a.cfg.Strip) > 0 {
		remove(container, strings.Join(a.cfg.Strip, ", "))
	}
	if a.cfg.Prune != nil {
		a.cfg.Prune(container)
	}
	remove(container, a.cfg.Junk...)
}

func (a *Assembler) linearize(container *goquery.Selection) string {
	units := container.Find(strings.Join(a.cfg.Units, ", "))

	unitNodes := make(map[*html.Node]bool, units.Length())
	for _, n := range units.Nodes {
		unitNodes[n] = true
	}
	top := container.Get(0)
	leafSel := strings.Join(leafBlocks, ", ")

	var parts []string
	seen := make(map[uint64]struct{})

	units.EachWithBreak(func(_ int, unit *goquery.Selection) bool {
		n := unit.Get(0)
		if a.cfg.OutermostUnits && nestedIn(n, top, unitNodes) {
			return true
		}
		if a.cfg.LeafUnits && unit.Find(leafSel).Length() > 0 {
			return true
		}

		s := text(unit, " ")
		if s == "" || (!isHeading(n.Data) && runeLen(s) < a.cfg.MinLength) {
			return true
		}
		if a.isNoise(s) {
			return true
		}

		if a.cfg.Bibliography {
			switch classifyAcademic(s) {
			case academicStop:
				return false
			case academicSkip:
				return true
			}
		}

		if a.cfg.Dedup {
			key := xxhash.Sum64String(prefix(s, DedupPrefix))
			if _, ok := seen[key]; ok {
				return true
			}
			seen[key] = struct{}{}
		}

		parts = append(parts, render(n.Data, s))
		return true
	})

	return narrator.CollapseDots(strings.Join(parts, " "))
}

func (a *Assembler) isNoise(s string) bool {
	if runeLen(s) >= NoiseMaxLength {
		return false
	}
	for _, marker := range a.cfg.Noise {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}

// nestedIn reports whether an ancestor of n below top is a unit.
func nestedIn(n, top *html.Node, units map[*html.Node]bool) bool {
	for p := n.Parent; p != nil && p != top; p = p.Parent {
		if units[p] {
			return true
		}
	}
	return false
}

// render applies the per-class template to one unit of text.
func render(tag, s string) string {
	if !strings.ContainsAny(s[len(s)-1:], ".!?") {
		s += "."
	}
	switch {
	case isHeading(tag):
		return s + "..."
	case tag == "blockquote":
		return "Citation: " + s
	case tag == "li":
		return s + ","
	default:
		return s + "."
	}
}

func isHeading(tag string) bool {
	switch tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return true
	}
	return false
}
