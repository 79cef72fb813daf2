package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/narrator"
	"github.com/stretchr/testify/require"
)

// parse builds a document from inline HTML.
func parse(t *testing.T, html, filename string) *narrator.Document {
	t.Helper()
	doc, err := narrator.ParseDocument(strings.NewReader(html), filename)
	require.NoError(t, err)
	return doc
}
