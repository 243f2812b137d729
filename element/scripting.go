package element

import "github.com/heathj/htmltags/attribute"

// Script embeds or references executable code. Inline code goes in
// Content as Text.
// https://html.spec.whatwg.org/#the-script-element
type Script struct {
	attribute.Global
	Contents
	Src            attribute.Href
	Type           attribute.ScriptType
	Async          bool
	Defer          bool
	Nomodule       bool
	Integrity      string
	Crossorigin    attribute.Crossorigin
	Referrerpolicy attribute.ReferrerPolicy
	Fetchpriority  attribute.FetchPriority
	Blocking       attribute.Blocking
	Attributionsrc []attribute.Href
}

func (Script) Tag() string { return "script" }

func (e Script) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetStringer("src", e.Src)
	l.SetStringer("type", e.Type)
	l.SetBool("async", e.Async)
	l.SetBool("defer", e.Defer)
	l.SetBool("nomodule", e.Nomodule)
	l.SetString("integrity", e.Integrity)
	l.SetStringer("crossorigin", e.Crossorigin)
	l.SetStringer("referrerpolicy", e.Referrerpolicy)
	l.SetStringer("fetchpriority", e.Fetchpriority)
	l.SetStringer("blocking", e.Blocking)
	setAttributionsrc(&l, e.Attributionsrc)
	return l
}

type Noscript struct {
	attribute.Global
	Contents
}

func (Noscript) Tag() string { return "noscript" }

// Template holds inert content. A set Shadowrootmode makes it a
// declarative shadow root.
// https://html.spec.whatwg.org/#the-template-element
type Template struct {
	attribute.Global
	Contents
	Shadowrootmode           attribute.ShadowRootMode
	Shadowrootclonable       bool
	Shadowrootdelegatesfocus bool
	Shadowrootserializable   bool
}

func (Template) Tag() string { return "template" }

func (e Template) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetStringer("shadowrootmode", e.Shadowrootmode)
	l.SetBool("shadowrootclonable", e.Shadowrootclonable)
	l.SetBool("shadowrootdelegatesfocus", e.Shadowrootdelegatesfocus)
	l.SetBool("shadowrootserializable", e.Shadowrootserializable)
	return l
}

// Slot is a placeholder inside a shadow tree. Its Name attribute is the
// slot name; Global.Slot is the unrelated slot assignment.
type Slot struct {
	attribute.Global
	Contents
	Name string
}

func (Slot) Tag() string { return "slot" }

func (e Slot) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetString("name", e.Name)
	return l
}

// Canvas is a scriptable bitmap. Content is the fallback.
type Canvas struct {
	attribute.Global
	Contents
	Width  *int
	Height *int
}

func (Canvas) Tag() string { return "canvas" }

func (e Canvas) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetInt("width", e.Width)
	l.SetInt("height", e.Height)
	return l
}
