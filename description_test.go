package narrator_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/narrator"
	"github.com/stretchr/testify/assert"
)

func TestSynthesizeDescription(t *testing.T) {
	t.Parallel()

	t.Run("returns short text unchanged", func(t *testing.T) {
		t.Parallel()

		text := "  Un texte court.  "
		assert.Equal(t, text, narrator.SynthesizeDescription(text, 100))
	})

	t.Run("returns text of exactly target length unchanged", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("é", 100)
		assert.Equal(t, text, narrator.SynthesizeDescription(text, 100))
	})

	t.Run("cuts at last sentence end past seventy percent", func(t *testing.T) {
		t.Parallel()

		// 80 chars then a sentence end, then filler past the target.
		text := strings.Repeat("a", 79) + ". " + strings.Repeat("b", 60)

		got := narrator.SynthesizeDescription(text, 100)

		assert.Equal(t, strings.Repeat("a", 79)+".", got)
	})

	t.Run("prefers the latest qualifying delimiter", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("a", 72) + "? " + strings.Repeat("b", 10) + ". " + strings.Repeat("c", 50)

		got := narrator.SynthesizeDescription(text, 100)

		assert.True(t, strings.HasSuffix(got, "b."), got)
	})

	t.Run("ignores sentence ends before seventy percent", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("a", 20) + ". " + strings.Repeat("b", 200)

		got := narrator.SynthesizeDescription(text, 100)

		assert.True(t, strings.HasSuffix(got, "…"))
		assert.Equal(t, 101, utf8.RuneCountInString(got))
	})

	t.Run("never longer than input", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("x", 101)

		got := narrator.SynthesizeDescription(text, 100)

		assert.LessOrEqual(t, utf8.RuneCountInString(got), utf8.RuneCountInString(text))
	})

	t.Run("counts characters not bytes", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("é", 75) + ". " + strings.Repeat("è", 100)

		got := narrator.SynthesizeDescription(text, 100)

		assert.Equal(t, strings.Repeat("é", 75)+".", got)
	})
}
