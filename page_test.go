package main

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heathj/htmltags/element"
	"github.com/heathj/htmltags/markdown"
)

func TestPageTitle(t *testing.T) {
	res := &markdown.Result{TableOfContents: []markdown.Section{
		{Title: "Sub", ID: "sub", Level: 2},
		{Title: "Main", ID: "main", Level: 1},
	}}
	tests := []struct {
		name     string
		cfg      htmltagsConfig
		res      *markdown.Result
		expected string
	}{
		{"flag wins", htmltagsConfig{title: "Given"}, res, "Given"},
		{"first level 1 heading", htmltagsConfig{}, res, "Main"},
		{"file name", htmltagsConfig{input: "docs/read.me.md"}, &markdown.Result{}, "read.me"},
		{"fallback", htmltagsConfig{}, &markdown.Result{}, "Untitled"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, pageTitle(test.cfg, test.res))
		})
	}
}

func TestPageStructure(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	res, err := markdown.Convert([]byte("# T\n"))
	require.NoError(t, err)

	root := page(htmltagsConfig{toc: true}, res, logger)
	var tags []string
	element.Query(root, func(e element.Element) element.WalkResult {
		tags = append(tags, e.Tag())
		return element.WalkContinue
	})
	assert.Equal(t, []string{
		"html", "head", "meta", "meta", "title", "style",
		"body", "nav", "ul", "li", "a", "main", "h1", "a",
	}, tags)
}

func TestMissingAltWarns(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	res, err := markdown.Convert([]byte("![](a.png) ![b](b.png)"))
	require.NoError(t, err)

	missingAlt(res.Content, logger)
	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.WarnLevel, hook.Entries[0].Level)
	assert.Equal(t, "a.png", hook.Entries[0].Data["src"])
}
