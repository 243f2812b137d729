package element

import (
	"strconv"

	"github.com/heathj/htmltags/attribute"
)

// https://html.spec.whatwg.org/#the-article-element
type Article struct {
	attribute.Global
	Contents
}

func (Article) Tag() string { return "article" }

// https://html.spec.whatwg.org/#the-section-element
type Section struct {
	attribute.Global
	Contents
}

func (Section) Tag() string { return "section" }

// https://html.spec.whatwg.org/#the-nav-element
type Nav struct {
	attribute.Global
	Contents
}

func (Nav) Tag() string { return "nav" }

// https://html.spec.whatwg.org/#the-aside-element
type Aside struct {
	attribute.Global
	Contents
}

func (Aside) Tag() string { return "aside" }

// Heading is one of <h1> through <h6>. Levels below 1 are treated as 1 and
// levels above 6 as 6.
// https://html.spec.whatwg.org/#the-h1,-h2,-h3,-h4,-h5,-and-h6-elements
type Heading struct {
	attribute.Global
	Contents
	Level int
}

func (e Heading) Tag() string {
	return "h" + strconv.Itoa(e.Rank())
}

// Rank returns the clamped heading level.
func (e Heading) Rank() int {
	switch {
	case e.Level < 1:
		return 1
	case e.Level > 6:
		return 6
	}
	return e.Level
}

// https://html.spec.whatwg.org/#the-hgroup-element
type Hgroup struct {
	attribute.Global
	Contents
}

func (Hgroup) Tag() string { return "hgroup" }

// https://html.spec.whatwg.org/#the-header-element
type Header struct {
	attribute.Global
	Contents
}

func (Header) Tag() string { return "header" }

// https://html.spec.whatwg.org/#the-footer-element
type Footer struct {
	attribute.Global
	Contents
}

func (Footer) Tag() string { return "footer" }

// Address is contact information for the nearest article or body.
// https://html.spec.whatwg.org/#the-address-element
type Address struct {
	attribute.Global
	Contents
}

func (Address) Tag() string { return "address" }

// https://html.spec.whatwg.org/#the-main-element
type Main struct {
	attribute.Global
	Contents
}

func (Main) Tag() string { return "main" }

// https://html.spec.whatwg.org/#the-search-element
type Search struct {
	attribute.Global
	Contents
}

func (Search) Tag() string { return "search" }
