package goquery_test

import (
	"testing"

	"github.com/fwojciec/narrator"
	"github.com/fwojciec/narrator/goquery"
	"github.com/stretchr/testify/assert"
)

const multitudesPage = `<html><head>
<meta property="og:site_name" content="Multitudes">
<meta property="og:title" content="Les communs numériques - Multitudes">
</head><body><article>
<h3>Yann Moulier Boutang</h3>
<div class="entry-content">
<h3>Anne Querrien</h3>
<p>Les communs numériques redessinent la propriété.</p>
<h3>Une question politique ?</h3>
<p>Ils obligent à repenser le rôle de l'État.</p>
</div>
</article></body></html>`

func TestMultitudesAdapter_CanHandle(t *testing.T) {
	t.Parallel()

	assert.True(t, goquery.NewMultitudesAdapter().CanHandle(parse(t, multitudesPage, "a.html")))
	assert.True(t, goquery.NewMultitudesAdapter().CanHandle(parse(t, `<p>x</p>`, "revue MULTITUDES.html")))
	assert.True(t, goquery.NewMultitudesAdapter().CanHandle(parse(t, `<meta property="og:url" content="https://www.multitudes.net/x/">`, "a.html")))
	assert.False(t, goquery.NewMultitudesAdapter().CanHandle(parse(t, `<p>x</p>`, "a.html")))
}

func TestMultitudesAdapter_ExtractMetadata(t *testing.T) {
	t.Parallel()

	t.Run("reads authors from short headings", func(t *testing.T) {
		t.Parallel()

		m := goquery.NewMultitudesAdapter().ExtractMetadata(parse(t, multitudesPage, "a.html"))

		assert.Equal(t, "Les communs numériques", m.Title)
		assert.Equal(t, "Yann Moulier Boutang, Anne Querrien", m.Author)
		assert.Equal(t, "Multitudes", m.Media)
	})

	t.Run("falls back to article:author", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<meta property="article:author" content="Collectif"><article><h3>Une question ?</h3></article>`, "multitudes.html")

		m := goquery.NewMultitudesAdapter().ExtractMetadata(doc)

		assert.Equal(t, "Collectif", m.Author)
	})

	t.Run("keeps the default author without signal", func(t *testing.T) {
		t.Parallel()

		m := goquery.NewMultitudesAdapter().ExtractMetadata(parse(t, `<p>x</p>`, "multitudes.html"))

		assert.Equal(t, narrator.UnknownAuthor, m.Author)
	})
}

func TestMultitudesAdapter_Content(t *testing.T) {
	t.Parallel()

	got := goquery.NewMultitudesAdapter().Content(parse(t, multitudesPage, "a.html"))

	assert.Equal(t, "Les communs numériques redessinent la propriété. Une question politique ?... Ils obligent à repenser le rôle de l'État.", got)
}
