package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"Hello, World!", "hello-world"},
		{"Go 1.22", "go-1-22"},
		{"  Ünïcode Straße ", "ünïcode-straße"},
		{"already-slugged", "already-slugged"},
		{"!!!", "section"},
		{"", "section"},
	}
	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			assert.Equal(t, test.expected, Slug(test.in))
		})
	}
}

func TestSluggerUnique(t *testing.T) {
	s := newSlugger()
	assert.Equal(t, "a", s.slug("A"))
	assert.Equal(t, "a-1", s.slug("a"))
	assert.Equal(t, "a-1-1", s.slug("A 1"))
	assert.Equal(t, "a-2", s.slug("A!"))
}
