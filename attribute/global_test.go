package attribute

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestGlobalOrder(t *testing.T) {
	g := Global{
		Data:       map[string]string{"b": "2", "data-a": "1"},
		Style:      "color: red",
		Tabindex:   Ptr(-1),
		Hidden:     HiddenUntilFound,
		Lang:       language.German,
		Class:      Classes("  card   wide "),
		ID:         "main",
		Spellcheck: Ptr(true),
		Autofocus:  true,
	}
	expected := List{
		{"id", "main"},
		{"class", "card wide"},
		{"lang", "de"},
		{"hidden", "until-found"},
		{"spellcheck", "true"},
		{"tabindex", "-1"},
		{"autofocus", ""},
		{"style", "color: red"},
		{"data-a", "1"},
		{"data-b", "2"},
	}
	assert.Equal(t, expected, g.Attributes())
}

func TestGlobalZero(t *testing.T) {
	assert.Empty(t, Global{}.Attributes())
}

func TestGlobalHidden(t *testing.T) {
	l := Global{Hidden: HiddenOn}.Attributes()
	assert.Equal(t, List{{"hidden", ""}}, l)
}

func TestGlobalDataCollision(t *testing.T) {
	g := Global{Data: map[string]string{"FOO": "1", "Foo": "2", "data-foo": "3", "bar": "4"}}
	for i := 0; i < 20; i++ {
		assert.Equal(t, List{{"data-bar", "4"}, {"data-foo", "3"}}, g.Attributes())
	}
}
