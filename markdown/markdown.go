// Package markdown converts CommonMark, with GitHub flavored extensions,
// into element descriptor trees.
package markdown

import (
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/heathj/htmltags/element"
)

// ErrInvalidUTF8 is returned for source that is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("markdown: source is not valid UTF-8")

// Section is a table of contents entry for one heading.
type Section struct {
	Title string
	ID    string
	Level int
}

// Result is a converted document.
type Result struct {
	Content         element.Fragment
	TableOfContents []Section
}

// Converter turns markdown into descriptors.
type Converter struct {
	md           goldmark.Markdown
	log          logrus.FieldLogger
	gfm          bool
	rawHTML      bool
	headingLinks bool
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger used for skipped or unhandled input.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Converter) {
		if l != nil {
			c.log = l
		}
	}
}

// WithoutGFM restricts parsing to plain CommonMark: no tables,
// strikethrough, task lists or bare URL linking.
func WithoutGFM() Option {
	return func(c *Converter) {
		c.gfm = false
	}
}

// WithoutRawHTML drops raw HTML blocks and inline tags, logging a warning
// for each, instead of passing them through as element.Raw.
func WithoutRawHTML() Option {
	return func(c *Converter) {
		c.rawHTML = false
	}
}

// WithoutHeadingLinks leaves out the <a class="anchor"> self link that is
// appended to every heading.
func WithoutHeadingLinks() Option {
	return func(c *Converter) {
		c.headingLinks = false
	}
}

func New(opts ...Option) *Converter {
	c := &Converter{
		log:          logrus.StandardLogger(),
		gfm:          true,
		rawHTML:      true,
		headingLinks: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.gfm {
		c.md = goldmark.New(goldmark.WithExtensions(extension.GFM))
	} else {
		c.md = goldmark.New()
	}
	return c
}

// Convert parses src and returns its descriptors along with one Section
// per heading, in document order.
func (c *Converter) Convert(src []byte) (*Result, error) {
	if !utf8.Valid(src) {
		return nil, ErrInvalidUTF8
	}
	doc := c.md.Parser().Parse(text.NewReader(src))

	s := &state{
		src:          src,
		log:          c.log,
		rawHTML:      c.rawHTML,
		headingLinks: c.headingLinks,
		slugs:        newSlugger(),
		ids:          map[ast.Node]string{},
	}
	if err := s.headings(doc); err != nil {
		return nil, errors.Wrap(err, "markdown: collecting headings")
	}
	return &Result{
		Content:         s.children(doc),
		TableOfContents: s.toc,
	}, nil
}

// Convert converts src with a default Converter.
func Convert(src []byte) (*Result, error) {
	return New().Convert(src)
}

type state struct {
	src          []byte
	log          logrus.FieldLogger
	rawHTML      bool
	headingLinks bool
	slugs        *slugger
	ids          map[ast.Node]string
	toc          []Section
}

// headings assigns every heading a unique id before conversion so that the
// table of contents is complete even for headings nested in lists or
// quotes.
func (s *state) headings(doc ast.Node) error {
	return ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		title := plainText(h, s.src)
		id := s.slugs.slug(title)
		s.ids[h] = id
		s.toc = append(s.toc, Section{Title: title, ID: id, Level: h.Level})
		return ast.WalkSkipChildren, nil
	})
}
