package goquery_test

import (
	"testing"

	"github.com/fwojciec/narrator"
	"github.com/fwojciec/narrator/goquery"
	"github.com/fwojciec/narrator/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adapter(name string, handles bool) *mock.Adapter {
	return &mock.Adapter{
		NameFn:      func() string { return name },
		CanHandleFn: func(*narrator.Document) bool { return handles },
	}
}

func TestRegistry_Select(t *testing.T) {
	t.Parallel()

	t.Run("returns the first adapter that can handle the document", func(t *testing.T) {
		t.Parallel()

		registry := goquery.NewRegistry(adapter("fallback", true))
		registry.Register(adapter("first", false))
		registry.Register(adapter("second", true))
		registry.Register(adapter("third", true))

		got := registry.Select(parse(t, `<p>x</p>`, "a.html"))

		require.NotNil(t, got)
		assert.Equal(t, "second", got.Name())
	})

	t.Run("returns the fallback when no adapter matches", func(t *testing.T) {
		t.Parallel()

		registry := goquery.NewRegistry(adapter("fallback", true))
		registry.Register(adapter("first", false))

		got := registry.Select(parse(t, `<p>x</p>`, "a.html"))

		require.NotNil(t, got)
		assert.Equal(t, "fallback", got.Name())
	})

	t.Run("stops probing after the first match", func(t *testing.T) {
		t.Parallel()

		probed := false
		late := &mock.Adapter{
			NameFn:      func() string { return "late" },
			CanHandleFn: func(*narrator.Document) bool { probed = true; return true },
		}

		registry := goquery.NewRegistry(adapter("fallback", true))
		registry.Register(adapter("early", true))
		registry.Register(late)

		_ = registry.Select(parse(t, `<p>x</p>`, "a.html"))

		assert.False(t, probed)
	})
}

func TestRegistry_List(t *testing.T) {
	t.Parallel()

	registry := goquery.NewRegistry(adapter("fallback", true))
	registry.Register(adapter("first", false))
	registry.Register(adapter("second", false))

	assert.Equal(t, []string{"first", "second", "fallback"}, registry.List())
}

func TestNewDefaultRegistry(t *testing.T) {
	t.Parallel()

	t.Run("lists outlets in priority order", func(t *testing.T) {
		t.Parallel()

		registry := goquery.NewDefaultRegistry(nil)

		assert.Equal(t, []string{
			"gemini", "europresse", "lemonde-diplo", "mediapart", "ballast",
			"multitudes", "manifesto", "cairn", "lmsi", "ucl", "generic",
		}, registry.List())
	})

	tests := []struct {
		name     string
		html     string
		filename string
		want     string
	}{
		{"gemini export", geminiPage, "Gemini.html", "gemini"},
		{"europresse", europressePage, "a.html", "europresse"},
		{"le monde diplomatique", leMondePage, "a.html", "lemonde-diplo"},
		{"mediapart", mediapartPage, "a.html", "mediapart"},
		{"ballast", `<meta property="og:site_name" content="BALLAST"><article><p>x</p></article>`, "a.html", "ballast"},
		{"multitudes", multitudesPage, "a.html", "multitudes"},
		{"manifesto", `<meta property="og:site_name" content="Manifesto XXI">`, "a.html", "manifesto"},
		{"cairn", `<meta property="og:url" content="https://www.cairn.info/revue.htm">`, "a.html", "cairn"},
		{"lmsi", lmsiPage, "a.html", "lmsi"},
		{"ucl", uclPage, "a.html", "ucl"},
		{"unknown", `<html><body><p>Hello</p></body></html>`, "a.html", "generic"},
		{"earlier outlet wins", `<meta property="og:site_name" content="BALLAST">`, "Mediapart.html", "mediapart"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := parse(t, tt.html, tt.filename)

			got := goquery.NewDefaultRegistry(nil).Select(doc)

			assert.Equal(t, tt.want, got.Name())
		})
	}

	t.Run("probing and extraction leave the document untouched", func(t *testing.T) {
		t.Parallel()

		for _, html := range []string{geminiPage, europressePage, leMondePage, mediapartPage, multitudesPage, lmsiPage, uclPage} {
			doc := parse(t, html, "a.html")
			before := doc.HTML()

			registry := goquery.NewDefaultRegistry(nil)
			first := registry.Select(doc)
			a := registry.Select(doc)
			_ = a.ExtractMetadata(doc)
			_ = a.Content(doc)

			assert.Equal(t, first.Name(), registry.Select(doc).Name())
			assert.Equal(t, before, doc.HTML())
		}
	})
}
