package goquery_test

import (
	"testing"

	"github.com/fwojciec/narrator/goquery"
	"github.com/stretchr/testify/assert"
)

const geminiPage = `<html><head><meta property="og:site_name" content="Gemini"></head><body>
<!-- exported from url: https://gemini.google.com/app/abc123 on 3/7/2025 -->
<div class="markdown">
<div><h1>Histoire des communs</h1>Les communs sont <b>anciens</b>
<p>Ils ont été théorisés plus tard</p></div>
<ul><li>Premier exemple</li><li>Second exemple</li></ul>
<blockquote>Une phrase célèbre</blockquote>
</div>
</body></html>`

func TestGeminiAdapter_CanHandle(t *testing.T) {
	t.Parallel()

	assert.True(t, goquery.NewGeminiAdapter().CanHandle(parse(t, geminiPage, "a.html")))
	assert.True(t, goquery.NewGeminiAdapter().CanHandle(parse(t, `<p>x</p>`, "Gemini_export.html")))
	assert.False(t, goquery.NewGeminiAdapter().CanHandle(parse(t, `<meta property="og:site_name" content="Gemini Club">`, "a.html")))
}

func TestGeminiAdapter_ExtractMetadata(t *testing.T) {
	t.Parallel()

	t.Run("reads the title from the answer and the date from the filename", func(t *testing.T) {
		t.Parallel()

		m := goquery.NewGeminiAdapter().ExtractMetadata(parse(t, geminiPage, "Histoire_des_communs (3_7_2025, 10_15_00).html"))

		assert.Equal(t, "Histoire des communs", m.Title)
		assert.Equal(t, "Gemini", m.Author)
		assert.Equal(t, "Google Deepmind", m.Media)
		assert.Equal(t, "2025-03-07", m.Date)
		assert.Equal(t, "https://gemini.google.com/app/abc123", m.URL)
	})

	t.Run("derives the title from the filename", func(t *testing.T) {
		t.Parallel()

		m := goquery.NewGeminiAdapter().ExtractMetadata(parse(t, `<div class="message-content"><p>Réponse</p></div>`, "Gemini_Les_communs (12_25_2024, 9_00_00).html"))

		assert.Equal(t, "Gemini Les communs", m.Title)
		assert.Equal(t, "2024-12-25", m.Date)
		assert.Empty(t, m.URL)
	})
}

func TestGeminiAdapter_Content(t *testing.T) {
	t.Parallel()

	got := goquery.NewGeminiAdapter().Content(parse(t, geminiPage, "Gemini.html"))

	assert.Equal(t, "Histoire des communs... Les communs sont anciens. Ils ont été théorisés plus tard. "+
		"Premier exemple., Second exemple., Citation: Une phrase célèbre.", got)
}
