package attribute

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHrefHelpers(t *testing.T) {
	u, _ := url.Parse("https://example.com/a?b=c")
	tests := []struct {
		name     string
		got      Href
		expected Href
	}{
		{"email", Email("contact@example.com", "", ""), "mailto:contact@example.com"},
		{"email subject", Email("contact@example.com", "Hello", ""), "mailto:contact@example.com?subject=Hello"},
		{"email escapes", Email("a@b.c", "Hello World", "x&y"), "mailto:a@b.c?subject=Hello%20World&body=x%26y"},
		{"tel", Tel("123-456-7890"), "tel:1234567890"},
		{"tel international", Tel("+1 (555) 010-0000"), "tel:+15550100000"},
		{"sms", SMS("555 0100", "on my way"), "sms:5550100?body=on%20my%20way"},
		{"sms without body", SMS("555", ""), "sms:555"},
		{"email question", Email("example@example.com", "Hello", "How are you?"), "mailto:example@example.com?subject=Hello&body=How%20are%20you%3F"},
		{"sms keeps punctuation", SMS("123-456-7890", "Hello there!"), "sms:1234567890?body=Hello%20there!"},
		{"email keeps punctuation", Email("a@b.c", "Re: (1)", "it's ok, see /x"), "mailto:a@b.c?subject=Re:%20(1)&body=it's%20ok,%20see%20/x"},
		{"email escapes delimiters", Email("a@b.c", "", "1+1=2 & 50%"), "mailto:a@b.c?body=1%2B1%3D2%20%26%2050%25"},
		{"sms utf-8", SMS("555", "café"), "sms:555?body=caf%C3%A9"},
		{"fragment", Fragment("/docs/page", "install"), "/docs/page#install"},
		{"fragment replaces", Fragment("/docs/page#old", "#new"), "/docs/page#new"},
		{"anchor", Anchor("section-id"), "#section-id"},
		{"anchor keeps hash", Anchor("#top"), "#top"},
		{"url", URL(u), "https://example.com/a?b=c"},
		{"nil url", URL(nil), ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.got)
		})
	}
}

func TestRels(t *testing.T) {
	assert.Equal(t, Rel("noopener noreferrer"), Rels(RelNoopener, "", RelNoreferrer))
	assert.Equal(t, Rel(""), Rels())
}

func TestDownload(t *testing.T) {
	var l List
	l.SetDownload(nil)
	assert.Equal(t, 0, l.Len())

	l.SetDownload(&Download{Enabled: true})
	v, ok := l.Get("download")
	assert.True(t, ok)
	assert.Equal(t, "", v)

	l.SetDownload(DownloadAs("report.pdf"))
	v, _ = l.Get("download")
	assert.Equal(t, "report.pdf", v)
}
