package element

import "github.com/heathj/htmltags/attribute"

// Details is a disclosure widget. Details sharing a Name form an exclusive
// accordion.
// https://html.spec.whatwg.org/#the-details-element
type Details struct {
	attribute.Global
	Contents
	Open bool
	Name string
}

func (Details) Tag() string { return "details" }

func (e Details) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetBool("open", e.Open)
	l.SetString("name", e.Name)
	return l
}

type Summary struct {
	attribute.Global
	Contents
}

func (Summary) Tag() string { return "summary" }

// https://html.spec.whatwg.org/#the-dialog-element
type Dialog struct {
	attribute.Global
	Contents
	Open bool
}

func (Dialog) Tag() string { return "dialog" }

func (e Dialog) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetBool("open", e.Open)
	return l
}
