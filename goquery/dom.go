package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/narrator"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// view returns a goquery view over the shared tree of doc. The view is for
// queries only; cleaning happens on copies made with own.
func view(doc *narrator.Document) *goquery.Document {
	root := doc.Root()
	if root == nil {
		root = &html.Node{Type: html.DocumentNode}
	}
	return goquery.NewDocumentFromNode(root)
}

// own returns a detached deep copy of the first node of sel.
func own(sel *goquery.Selection) *goquery.Selection {
	return sel.First().Clone()
}

// text joins the trimmed text nodes under sel with sep, skipping empty ones
// and the contents of script, style and template elements.
func text(sel *goquery.Selection, sep string) string {
	var parts []string
	for _, n := range sel.Nodes {
		collectText(n, &parts)
	}
	return strings.Join(parts, sep)
}

func collectText(n *html.Node, parts *[]string) {
	switch n.Type {
	case html.TextNode:
		if t := strings.TrimSpace(n.Data); t != "" {
			*parts = append(*parts, t)
		}
		return
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Script, atom.Style, atom.Template:
			return
		}
	case html.CommentNode:
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}

// unwrap replaces n with its children, in place and in order.
func unwrap(n *html.Node) {
	parent := n.Parent
	if parent == nil {
		return
	}
	for c := n.FirstChild; c != nil; c = n.FirstChild {
		n.RemoveChild(c)
		parent.InsertBefore(c, n)
	}
	parent.RemoveChild(n)
}

// flatten unwraps, one at a time and in document order, every wrapper
// element below root that still contains a block element, until none is
// left.
func flatten(root *goquery.Selection, wrappers, blocks []string) {
	wrapperSel := strings.Join(wrappers, ", ")
	blockSel := strings.Join(blocks, ", ")
	for {
		wrapper := root.Find(wrapperSel).FilterFunction(func(_ int, s *goquery.Selection) bool {
			return s.Find(blockSel).Length() > 0
		}).First()
		if wrapper.Length() == 0 {
			return
		}
		unwrap(wrapper.Get(0))
	}
}

// remove detaches every element below root matching any of the selectors.
func remove(root *goquery.Selection, selectors ...string) {
	for _, selector := range selectors {
		root.Find(selector).Remove()
	}
}

// newElement returns a detached element node.
func newElement(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// prefix returns the first n characters of s.
func prefix(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
