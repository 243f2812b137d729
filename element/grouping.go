package element

import "github.com/heathj/htmltags/attribute"

// https://html.spec.whatwg.org/#the-p-element
type P struct {
	attribute.Global
	Contents
}

func (P) Tag() string { return "p" }

// Hr is a thematic break between paragraphs.
type Hr struct {
	attribute.Global
	Void
}

func (Hr) Tag() string { return "hr" }

// https://html.spec.whatwg.org/#the-pre-element
type Pre struct {
	attribute.Global
	Contents
}

func (Pre) Tag() string { return "pre" }

// Blockquote is an extended quotation. Cite points at the source.
// https://html.spec.whatwg.org/#the-blockquote-element
type Blockquote struct {
	attribute.Global
	Contents
	Cite attribute.Href
}

func (Blockquote) Tag() string { return "blockquote" }

func (e Blockquote) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetStringer("cite", e.Cite)
	return l
}

// Ol is an ordered list.
// https://html.spec.whatwg.org/#the-ol-element
type Ol struct {
	attribute.Global
	Contents
	Reversed bool
	Start    *int
	Type     attribute.ListType
}

func (Ol) Tag() string { return "ol" }

func (e Ol) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetBool("reversed", e.Reversed)
	l.SetInt("start", e.Start)
	l.SetStringer("type", e.Type)
	return l
}

// https://html.spec.whatwg.org/#the-ul-element
type Ul struct {
	attribute.Global
	Contents
}

func (Ul) Tag() string { return "ul" }

// Menu is a toolbar; semantically an unordered list of commands.
type Menu struct {
	attribute.Global
	Contents
}

func (Menu) Tag() string { return "menu" }

// Li is a list item. Value sets the ordinal inside an <ol>.
// https://html.spec.whatwg.org/#the-li-element
type Li struct {
	attribute.Global
	Contents
	Value *int
}

func (Li) Tag() string { return "li" }

func (e Li) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetInt("value", e.Value)
	return l
}

// https://html.spec.whatwg.org/#the-dl-element
type Dl struct {
	attribute.Global
	Contents
}

func (Dl) Tag() string { return "dl" }

type Dt struct {
	attribute.Global
	Contents
}

func (Dt) Tag() string { return "dt" }

type Dd struct {
	attribute.Global
	Contents
}

func (Dd) Tag() string { return "dd" }

// https://html.spec.whatwg.org/#the-figure-element
type Figure struct {
	attribute.Global
	Contents
}

func (Figure) Tag() string { return "figure" }

type Figcaption struct {
	attribute.Global
	Contents
}

func (Figcaption) Tag() string { return "figcaption" }

// Div is a generic flow container.
// https://html.spec.whatwg.org/#the-div-element
type Div struct {
	attribute.Global
	Contents
}

func (Div) Tag() string { return "div" }
