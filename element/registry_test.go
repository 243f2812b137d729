package element

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRoundTrip(t *testing.T) {
	tags := Tags()
	require.True(t, sort.StringsAreSorted(tags))
	require.Len(t, tags, 128)
	for _, tag := range tags {
		t.Run(tag, func(t *testing.T) {
			e, ok := New(tag)
			require.True(t, ok)
			assert.Equal(t, tag, e.Tag())
			assert.Nil(t, e.Children())
		})
	}
}

func TestNewIgnoresCase(t *testing.T) {
	for _, in := range []string{"DIV", "Div", " div "} {
		e, ok := New(in)
		require.True(t, ok, in)
		assert.Equal(t, "div", e.Tag())
	}
	e, ok := New("H3")
	require.True(t, ok)
	assert.Equal(t, Heading{Level: 3}, e)
}

func TestNewUnknown(t *testing.T) {
	for _, in := range []string{"", "h7", "blink", "my-widget"} {
		_, ok := New(in)
		assert.False(t, ok, in)
	}
}

func TestNewNonASCII(t *testing.T) {
	// Long s and the Kelvin sign fold to "s" and "k" under full Unicode
	// folding.
	for _, in := range []string{"\u017ftrong", "\u017f", "\u212abd", "d\u0131v"} {
		_, ok := New(in)
		assert.False(t, ok, in)
		assert.False(t, IsVoid(in), in)
		assert.False(t, IsObsolete(in), in)
	}
}

func TestIsVoid(t *testing.T) {
	voids := []string{
		"area", "base", "br", "col", "embed", "frame", "hr", "img", "input",
		"link", "meta", "param", "source", "track", "wbr",
	}
	var got []string
	for _, tag := range Tags() {
		if IsVoid(tag) {
			got = append(got, tag)
		}
	}
	assert.Equal(t, voids, got)
	assert.True(t, IsVoid("BR"))
	assert.False(t, IsVoid("my-widget"))
	assert.False(t, IsVoidElement(Custom{Name: "br"}))
}

func TestIsObsolete(t *testing.T) {
	assert.True(t, IsObsolete("marquee"))
	assert.True(t, IsObsolete("FONT"))
	assert.False(t, IsObsolete("div"))
	assert.False(t, IsObsolete("blink"))
}
