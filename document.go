package narrator

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// Document is one parsed HTML page together with the name of the file it
// was loaded from.
//
// The parsed tree is shared by every Adapter probed during dispatch and must
// be treated as read-only. Adapters that clean the tree destructively work
// on a private copy of the subtree they need.
type Document struct {
	// Filename is the source file name. Some adapters match on it and some
	// parse dates or titles out of it.
	Filename string

	root *html.Node
}

// NewDocument wraps an already parsed HTML tree.
func NewDocument(root *html.Node, filename string) *Document {
	return &Document{Filename: filename, root: root}
}

// ParseDocument parses UTF-8 encoded HTML from r.
func ParseDocument(r io.Reader, filename string) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, Errorf(EINVALID, "failed to parse HTML: %v", err)
	}
	return NewDocument(root, filename), nil
}

// Root returns the shared parse tree. Callers must not modify it.
func (d *Document) Root() *html.Node {
	return d.root
}

// HTML renders the document back to markup, for collaborators that work on
// raw HTML strings.
func (d *Document) HTML() string {
	if d.root == nil {
		return ""
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, d.root); err != nil {
		return ""
	}
	return buf.String()
}

// Stem returns the file name without directory and extension.
func (d *Document) Stem() string {
	base := filepath.Base(d.Filename)
	if d.Filename == "" {
		return ""
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}
