package narrator_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/narrator"
	"github.com/fwojciec/narrator/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpeakableLines(t *testing.T) {
	t.Parallel()

	t.Run("formats headings, paragraphs and list items", func(t *testing.T) {
		t.Parallel()

		text := "## Introduction\n\nPremier paragraphe assez long [1] pour la lecture.\n12\nNotes\n- un élément de liste\n"

		got := narrator.SpeakableLines(text)

		assert.Equal(t, "Introduction... ... Premier paragraphe assez long  pour la lecture. ... un élément de liste...", got)
	})

	t.Run("long lines get a period", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("mot ", 30) + "fin"

		got := narrator.SpeakableLines(long)

		assert.Equal(t, long+".", got)
	})

	t.Run("keeps existing terminal punctuation", func(t *testing.T) {
		t.Parallel()

		got := narrator.SpeakableLines("Vraiment ?\nIl a dit « oui »\nune liste,")

		assert.Equal(t, "Vraiment ? ... Il a dit « oui » ... une liste,", got)
	})

	t.Run("drops lines made only of footnote markers", func(t *testing.T) {
		t.Parallel()

		got := narrator.SpeakableLines("[ 3 ]\nBibliographie :\nSources.\nTexte principal de l'article.")

		assert.Equal(t, "Texte principal de l'article.", got)
	})

	t.Run("drops quote markers", func(t *testing.T) {
		t.Parallel()

		got := narrator.SpeakableLines("> Une citation célèbre.\n>\n> > Imbriquée.")

		assert.Equal(t, "Une citation célèbre. ... Imbriquée.", got)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, narrator.SpeakableLines(""))
		assert.Empty(t, narrator.SpeakableLines("\n \n"))
	})
}

func TestReaders_ReadContent(t *testing.T) {
	t.Parallel()

	t.Run("returns first non-empty content", func(t *testing.T) {
		t.Parallel()

		var secondCalled bool
		readers := narrator.Readers{
			&mock.Reader{ReadContentFn: func(html string) (string, error) { return "", nil }},
			&mock.Reader{ReadContentFn: func(html string) (string, error) { return "deuxième", nil }},
			&mock.Reader{ReadContentFn: func(html string) (string, error) {
				secondCalled = true
				return "troisième", nil
			}},
		}

		got, err := readers.ReadContent("<html></html>")

		require.NoError(t, err)
		assert.Equal(t, "deuxième", got)
		assert.False(t, secondCalled)
	})

	t.Run("skips failing readers", func(t *testing.T) {
		t.Parallel()

		readers := narrator.Readers{
			&mock.Reader{ReadContentFn: func(html string) (string, error) { return "", errors.New("boom") }},
			&mock.Reader{ReadContentFn: func(html string) (string, error) { return "texte", nil }},
		}

		got, err := readers.ReadContent("<html></html>")

		require.NoError(t, err)
		assert.Equal(t, "texte", got)
	})

	t.Run("returns joined errors when nothing was produced", func(t *testing.T) {
		t.Parallel()

		readers := narrator.Readers{
			&mock.Reader{ReadContentFn: func(html string) (string, error) { return "", errors.New("first") }},
			&mock.Reader{ReadContentFn: func(html string) (string, error) { return "", errors.New("second") }},
		}

		got, err := readers.ReadContent("<html></html>")

		require.Error(t, err)
		assert.Empty(t, got)
		assert.Contains(t, err.Error(), "first")
		assert.Contains(t, err.Error(), "second")
	})
}

func TestReaders_ReadMetadata(t *testing.T) {
	t.Parallel()

	t.Run("earlier readers win per field", func(t *testing.T) {
		t.Parallel()

		readers := narrator.Readers{
			&mock.Reader{ReadMetadataFn: func(html string) (*narrator.Metadata, error) {
				return &narrator.Metadata{Title: "Titre A", Date: ""}, nil
			}},
			&mock.Reader{ReadMetadataFn: func(html string) (*narrator.Metadata, error) {
				return &narrator.Metadata{Title: "Titre B", Date: "2024-01-02", Author: " Ana "}, nil
			}},
		}

		got, err := readers.ReadMetadata("<html></html>")

		require.NoError(t, err)
		assert.Equal(t, "Titre A", got.Title)
		assert.Equal(t, "2024-01-02", got.Date)
		assert.Equal(t, "Ana", got.Author)
		assert.Empty(t, got.Media)
	})

	t.Run("error only when every reader failed", func(t *testing.T) {
		t.Parallel()

		readers := narrator.Readers{
			&mock.Reader{ReadMetadataFn: func(html string) (*narrator.Metadata, error) { return nil, errors.New("boom") }},
		}

		got, err := readers.ReadMetadata("<html></html>")

		require.Error(t, err)
		require.NotNil(t, got)
		assert.Empty(t, got.Title)
	})
}
