package narrator_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/narrator"
	"github.com/fwojciec/narrator/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscribe(t *testing.T) {
	t.Parallel()

	doc, err := narrator.ParseDocument(strings.NewReader(`<p>Texte.</p>`), "page.html")
	require.NoError(t, err)

	m := &narrator.Metadata{Title: "Titre", Author: "Autrice", Media: "BALLAST"}
	adapter := &mock.Adapter{
		NameFn:            func() string { return "ballast" },
		ExtractMetadataFn: func(*narrator.Document) *narrator.Metadata { return m },
		ContentFn:         func(*narrator.Document) string { return "Corps du texte." },
	}
	d := &mock.Dispatcher{
		SelectFn: func(got *narrator.Document) narrator.Adapter {
			assert.Same(t, doc, got)
			return adapter
		},
	}

	tr := narrator.Transcribe(d, doc)

	assert.Equal(t, "page.html", tr.Source)
	assert.Equal(t, "ballast", tr.Adapter)
	assert.Same(t, m, tr.Metadata)
	assert.Equal(t, "Corps du texte.", tr.Body)
	assert.Equal(t, "Article de BALLAST... Titre... Par Autrice... Corps du texte.", tr.Script())
}

func TestTranscribe_ExtractsBodyOnce(t *testing.T) {
	t.Parallel()

	doc, err := narrator.ParseDocument(strings.NewReader(`<p>Texte.</p>`), "page.html")
	require.NoError(t, err)

	var calls int
	adapter := &mock.BodyAdapter{
		Adapter: mock.Adapter{
			NameFn: func() string { return "generic" },
			ExtractMetadataFn: func(*narrator.Document) *narrator.Metadata {
				t.Fatal("ExtractMetadata must not be called when the body is available")
				return nil
			},
			ContentFn: func(*narrator.Document) string {
				calls++
				return "Corps du texte."
			},
		},
		ExtractMetadataWithBodyFn: func(_ *narrator.Document, body string) *narrator.Metadata {
			return &narrator.Metadata{Title: "Titre", Description: body}
		},
	}
	d := &mock.Dispatcher{
		SelectFn: func(*narrator.Document) narrator.Adapter { return adapter },
	}

	tr := narrator.Transcribe(d, doc)

	assert.Equal(t, 1, calls)
	assert.Equal(t, "Corps du texte.", tr.Body)
	assert.Equal(t, "Corps du texte.", tr.Metadata.Description)
}

func TestTranscript_Stats(t *testing.T) {
	t.Parallel()

	tr := &narrator.Transcript{
		Metadata: &narrator.Metadata{Title: "T", Author: "A", Media: "M"},
		Body:     "Un deux trois.",
	}

	chars, words := tr.Stats()

	// "Article de M... T... Par A... Un deux trois."
	assert.Equal(t, 44, chars)
	assert.Equal(t, 9, words)
}

func TestTranscript_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts long enough content", func(t *testing.T) {
		t.Parallel()
		tr := &narrator.Transcript{Metadata: narrator.NewMetadata(), Body: strings.Repeat("a", 50)}
		assert.NoError(t, tr.Validate())
	})

	t.Run("rejects short content", func(t *testing.T) {
		t.Parallel()
		tr := &narrator.Transcript{Metadata: narrator.NewMetadata(), Body: "Trop court."}
		err := tr.Validate()
		assert.Equal(t, narrator.EINVALID, narrator.ErrorCode(err))
		assert.Equal(t, "content too short: 11 characters", narrator.ErrorMessage(err))
	})

	t.Run("requires metadata", func(t *testing.T) {
		t.Parallel()
		tr := &narrator.Transcript{Body: strings.Repeat("a", 50)}
		assert.Equal(t, narrator.EINVALID, narrator.ErrorCode(tr.Validate()))
	})
}
