package goquery_test

import (
	"testing"

	"github.com/fwojciec/narrator/goquery"
	"github.com/stretchr/testify/assert"
)

func TestManifestoAdapter_CanHandle(t *testing.T) {
	t.Parallel()

	assert.True(t, goquery.NewManifestoAdapter().CanHandle(parse(t, `<meta property="og:site_name" content="Manifesto XXI">`, "a.html")))
	assert.True(t, goquery.NewManifestoAdapter().CanHandle(parse(t, `<meta property="og:url" content="https://manifesto-21.com/x/">`, "a.html")))
	assert.True(t, goquery.NewManifestoAdapter().CanHandle(parse(t, `<p>x</p>`, "Manifesto - portrait.html")))
	assert.False(t, goquery.NewManifestoAdapter().CanHandle(parse(t, `<p>x</p>`, "manifesto.html")))
}

func TestManifestoAdapter_ExtractMetadata(t *testing.T) {
	t.Parallel()

	t.Run("prefers the author meta tag", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head>
<meta name="author" content="Léa Martin">
<meta property="article:author" content="https://facebook.com/lea">
<meta property="og:title" content="Portrait d'une artiste - Manifesto XXI">
</head><body></body></html>`, "a.html")

		m := goquery.NewManifestoAdapter().ExtractMetadata(doc)

		assert.Equal(t, "Léa Martin", m.Author)
		assert.Equal(t, "Portrait d'une artiste", m.Title)
		assert.Equal(t, "Manifesto XXI", m.Media)
	})

	t.Run("reads the author of the article in a JSON-LD graph", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head>
<script type="application/ld+json">{"@context":"https://schema.org","@graph":[
{"@type":"WebPage","name":"Page"},
{"@type":"Article","author":{"@type":"Person","name":"Sam Durand"}}
]}</script>
</head><body></body></html>`, "a.html")

		m := goquery.NewManifestoAdapter().ExtractMetadata(doc)

		assert.Equal(t, "Sam Durand", m.Author)
	})

	t.Run("reads a top level JSON-LD author string", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<script type="application/ld+json">not json</script>
<script type="application/ld+json">{"@type":"NewsArticle","author":"Rédaction"}</script>`, "a.html")

		m := goquery.NewManifestoAdapter().ExtractMetadata(doc)

		assert.Equal(t, "Rédaction", m.Author)
	})

	t.Run("falls back to the Elementor author box", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<div class="elementor-author-box__name">Nina K.</div>`, "a.html")

		m := goquery.NewManifestoAdapter().ExtractMetadata(doc)

		assert.Equal(t, "Nina K.", m.Author)
	})
}

func TestManifestoAdapter_Content(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<article>
<p>12 mars 2024</p>
<p>Par Léa</p>
<div class="elementor-post-info"><p>Temps de lecture : 5 minutes</p></div>
<h2>Une scène en mouvement</h2>
<p>La scène queer parisienne se réinvente chaque saison.</p>
<p>La scène queer parisienne se réinvente chaque saison.</p>
<div class="elementor-widget-post-navigation"><p>Article suivant : un autre portrait</p></div>
</article>`, "a.html")

	got := goquery.NewManifestoAdapter().Content(doc)

	assert.Equal(t, "Une scène en mouvement... La scène queer parisienne se réinvente chaque saison.", got)
}
