package attribute

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestParseDefaults(t *testing.T) {
	assert.Equal(t, UseCredentials, ParseCrossorigin("use-credentials"))
	assert.Equal(t, Anonymous, ParseCrossorigin(""))
	assert.Equal(t, Anonymous, ParseCrossorigin("bogus"))

	assert.Equal(t, UpperRoman, ParseListType("I"))
	assert.Equal(t, LowerAlpha, ParseListType("a"))
	assert.Equal(t, Decimal, ParseListType("x"))
	assert.Equal(t, Decimal, ParseListType(""))
}

func TestNewCharset(t *testing.T) {
	tests := []struct {
		in       string
		expected Charset
	}{
		{"utf8", UTF8},
		{" UTF-8 ", UTF8},
		{"latin1", "windows-1252"},
		{"Shift_JIS", "shift_jis"},
		{"x-made-up", "x-made-up"},
	}
	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			assert.Equal(t, test.expected, NewCharset(test.in))
		})
	}
}

func TestNewNonce(t *testing.T) {
	a, b := NewNonce(), NewNonce()
	assert.NotEqual(t, a, b)
	assert.Len(t, a.String(), 32)
	assert.NotContains(t, a.String(), "-")
}

func TestLanguage(t *testing.T) {
	assert.Equal(t, "en-US", Language("en-US").String())
	assert.Equal(t, language.Und, Language("not a tag"))

	var l List
	l.SetLanguage("lang", language.Und)
	assert.Equal(t, 0, l.Len())
	l.SetLanguage("lang", language.BrazilianPortuguese)
	v, _ := l.Get("lang")
	assert.Equal(t, "pt-BR", v)
}

func TestMediaValues(t *testing.T) {
	assert.Equal(t, "nodownload noremoteplayback", ControlsList{NoDownload: true, NoRemotePlayback: true}.String())
	assert.Equal(t, "", ControlsList{}.String())

	srcset := Srcset{{URL: "a.png", Descriptor: "1x"}, {URL: ""}, {URL: "b.png"}}
	assert.Equal(t, "a.png 1x, b.png", srcset.String())

	assert.Equal(t, "0,0,10,20", Coords{0, 0, 10, 20}.String())

	ts := time.Date(2024, 3, 9, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, Datetime("2024-03-09T14:30:00Z"), DatetimeOf(ts))
	assert.Equal(t, Datetime("2024-03-09"), DateOf(ts))

	assert.Equal(t, Elementtiming("hero-image"), Timing("hero", "image"))
	assert.Equal(t, Elementtiming("image"), Timing("", "image"))
}
