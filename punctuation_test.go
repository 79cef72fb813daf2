package narrator_test

import (
	"testing"

	"github.com/fwojciec/narrator"
	"github.com/stretchr/testify/assert"
)

func TestCollapseDots(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"paragraph double period", "Texte.. Suite.", "Texte. Suite."},
		{"heading four periods", "Titre.... Texte.", "Titre... Texte."},
		{"long run", "Attente.......", "Attente..."},
		{"ellipsis kept", "Et puis... rien.", "Et puis... rien."},
		{"list comma before period", "un, deux,.", "un, deux."},
		{"several commas", "fin,,.", "fin."},
		{"comma then ellipsis", "suite,...", "suite..."},
		{"untouched", "Rien à changer, ici.", "Rien à changer, ici."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, narrator.CollapseDots(tt.in))
		})
	}
}

func TestCollapseDots_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"a.. b.... c..... d...... e,. f,,. g.,... h",
		"Titre?.... Paragraphe.. Item,. Citation: texte..",
		".,..,...,....",
	}

	for _, in := range inputs {
		once := narrator.CollapseDots(in)
		assert.Equal(t, once, narrator.CollapseDots(once), in)
	}
}
