package element

import "github.com/heathj/htmltags/attribute"

// https://html.spec.whatwg.org/#the-table-element
type Table struct {
	attribute.Global
	Contents
}

func (Table) Tag() string { return "table" }

type Caption struct {
	attribute.Global
	Contents
}

func (Caption) Tag() string { return "caption" }

// Colgroup groups columns; Span applies when it has no <col> children.
type Colgroup struct {
	attribute.Global
	Contents
	Span *int
}

func (Colgroup) Tag() string { return "colgroup" }

func (e Colgroup) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetInt("span", e.Span)
	return l
}

type Col struct {
	attribute.Global
	Void
	Span *int
}

func (Col) Tag() string { return "col" }

func (e Col) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetInt("span", e.Span)
	return l
}

type Tbody struct {
	attribute.Global
	Contents
}

func (Tbody) Tag() string { return "tbody" }

type Thead struct {
	attribute.Global
	Contents
}

func (Thead) Tag() string { return "thead" }

type Tfoot struct {
	attribute.Global
	Contents
}

func (Tfoot) Tag() string { return "tfoot" }

type Tr struct {
	attribute.Global
	Contents
}

func (Tr) Tag() string { return "tr" }

// Cell holds the attributes shared by <td> and <th>.
type Cell struct {
	Colspan *int
	Rowspan *int
	Headers []string
}

func (c Cell) append(l *attribute.List) {
	l.SetInt("colspan", c.Colspan)
	l.SetInt("rowspan", c.Rowspan)
	l.SetTokens("headers", c.Headers)
}

// https://html.spec.whatwg.org/#the-td-element
type Td struct {
	attribute.Global
	Contents
	Cell
}

func (Td) Tag() string { return "td" }

func (e Td) Attributes() attribute.List {
	l := e.Global.Attributes()
	e.Cell.append(&l)
	return l
}

// https://html.spec.whatwg.org/#the-th-element
type Th struct {
	attribute.Global
	Contents
	Cell
	Abbr  string
	Scope attribute.Scope
}

func (Th) Tag() string { return "th" }

func (e Th) Attributes() attribute.List {
	l := e.Global.Attributes()
	e.Cell.append(&l)
	l.SetString("abbr", e.Abbr)
	l.SetStringer("scope", e.Scope)
	return l
}
