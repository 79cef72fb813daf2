package goquery

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// reflowBlocks are the elements that end a run of loose inline content.
var reflowBlocks = map[atom.Atom]bool{
	atom.P: true, atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true,
	atom.H5: true, atom.H6: true, atom.Div: true, atom.Blockquote: true,
	atom.Ul: true, atom.Ol: true, atom.Li: true,
}

// reflow wraps every run of text nodes and inline elements sitting directly
// between block children of container in a new paragraph, so that loose text
// left behind by chat exports or by flatten is linearized like any other
// paragraph. Whitespace-only runs are left alone.
func reflow(container *html.Node) {
	var run []*html.Node

	flush := func(before *html.Node) {
		defer func() { run = run[:0] }()
		if !hasContent(run) {
			return
		}
		p := newElement(atom.P)
		container.InsertBefore(p, before)
		for _, n := range run {
			container.RemoveChild(n)
			p.AppendChild(n)
		}
	}

	for c := container.FirstChild; c != nil; {
		next := c.NextSibling
		switch {
		case c.Type == html.CommentNode:
		case c.Type == html.ElementNode && reflowBlocks[c.DataAtom]:
			flush(c)
		default:
			run = append(run, c)
		}
		c = next
	}
	flush(nil)
}

func hasContent(run []*html.Node) bool {
	for _, n := range run {
		if n.Type != html.TextNode || strings.TrimSpace(n.Data) != "" {
			return true
		}
	}
	return false
}
