package attribute

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListSet(t *testing.T) {
	var l List
	l.Set("ID", "a")
	l.Set("class", "x")
	l.Set("id", "b")

	assert.Equal(t, []string{"id", "class"}, l.Names())
	v, ok := l.Get("Id")
	assert.True(t, ok)
	assert.Equal(t, "b", v)
	assert.Equal(t, 2, l.Len())

	l.Remove("ID")
	assert.False(t, l.Has("id"))
	assert.Equal(t, List{{Name: "class", Value: "x"}}, l)

	l.Remove("missing")
	assert.Equal(t, 1, l.Len())
}

func TestListOptionalValues(t *testing.T) {
	tests := []struct {
		name     string
		set      func(l *List)
		expected List
	}{
		{"empty string unset", func(l *List) { l.SetString("title", "") }, nil},
		{"string", func(l *List) { l.SetString("title", "t") }, List{{"title", "t"}}},
		{"false bool unset", func(l *List) { l.SetBool("hidden", false) }, nil},
		{"bool", func(l *List) { l.SetBool("hidden", true) }, List{{"hidden", ""}}},
		{"nil int unset", func(l *List) { l.SetInt("span", nil) }, nil},
		{"zero int", func(l *List) { l.SetInt("tabindex", Ptr(0)) }, List{{"tabindex", "0"}}},
		{"negative int", func(l *List) { l.SetInt("tabindex", Ptr(-1)) }, List{{"tabindex", "-1"}}},
		{"float shortest", func(l *List) { l.SetFloat("step", Ptr(0.5)) }, List{{"step", "0.5"}}},
		{"whole float", func(l *List) { l.SetFloat("max", Ptr(100.0)) }, List{{"max", "100"}}},
		{"nil stringer unset", func(l *List) { l.SetStringer("rel", nil) }, nil},
		{"empty stringer unset", func(l *List) { l.SetStringer("rel", Rel("")) }, nil},
		{"tokens skip blanks", func(l *List) { l.SetTokens("class", []string{"a", " ", "", "b "}) }, List{{"class", "a b"}}},
		{"all blank tokens unset", func(l *List) { l.SetTokens("class", []string{" "}) }, nil},
		{"toggle false", func(l *List) { l.SetToggle("draggable", Ptr(false)) }, List{{"draggable", "false"}}},
		{"nil toggle unset", func(l *List) { l.SetToggle("draggable", nil) }, nil},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var l List
			test.set(&l)
			assert.Equal(t, test.expected, l)
		})
	}
}
