package element

import (
	"github.com/heathj/htmltags/attribute"
	"golang.org/x/text/language"
)

// HTML is the root of a document. Set Lang on the embedded globals.
// https://html.spec.whatwg.org/#the-html-element
type HTML struct {
	attribute.Global
	Contents
}

func (HTML) Tag() string { return "html" }

// https://html.spec.whatwg.org/#the-head-element
type Head struct {
	attribute.Global
	Contents
}

func (Head) Tag() string { return "head" }

// Title is the document title shown in the browser tab.
// https://html.spec.whatwg.org/#the-title-element
type Title struct {
	attribute.Global
	Contents
}

func (Title) Tag() string { return "title" }

// Base sets the base URL and default target of relative links. Only the
// first <base> in a document has an effect.
// https://html.spec.whatwg.org/#the-base-element
type Base struct {
	attribute.Global
	Void
	Href   attribute.Href
	Target attribute.Target
}

func (Base) Tag() string { return "base" }

func (e Base) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetStringer("href", e.Href)
	l.SetStringer("target", e.Target)
	return l
}

// Link relates the document to an external resource.
// https://html.spec.whatwg.org/#the-link-element
type Link struct {
	attribute.Global
	Void
	Href           attribute.Href
	Rel            attribute.Rel
	As             attribute.As
	Type           string
	Media          string
	Hreflang       language.Tag
	Sizes          string
	Imagesrcset    attribute.Srcset
	Imagesizes     string
	Integrity      string
	Crossorigin    attribute.Crossorigin
	Referrerpolicy attribute.ReferrerPolicy
	Fetchpriority  attribute.FetchPriority
	Blocking       attribute.Blocking
	Disabled       bool
	Color          string
}

func (Link) Tag() string { return "link" }

func (e Link) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetStringer("rel", e.Rel)
	l.SetStringer("href", e.Href)
	l.SetStringer("as", e.As)
	l.SetString("type", e.Type)
	l.SetString("media", e.Media)
	l.SetLanguage("hreflang", e.Hreflang)
	l.SetString("sizes", e.Sizes)
	l.SetStringer("imagesrcset", e.Imagesrcset)
	l.SetString("imagesizes", e.Imagesizes)
	l.SetString("integrity", e.Integrity)
	l.SetStringer("crossorigin", e.Crossorigin)
	l.SetStringer("referrerpolicy", e.Referrerpolicy)
	l.SetStringer("fetchpriority", e.Fetchpriority)
	l.SetStringer("blocking", e.Blocking)
	l.SetBool("disabled", e.Disabled)
	l.SetString("color", e.Color)
	return l
}

// Meta is document level metadata. Exactly one of Charset, HTTPEquiv or
// Name is expected; Content carries the value for the latter two.
// https://html.spec.whatwg.org/#the-meta-element
type Meta struct {
	attribute.Global
	Void
	Charset   attribute.Charset
	HTTPEquiv attribute.HTTPEquiv
	Name      attribute.MetaName
	Content   string
	Media     string
}

func (Meta) Tag() string { return "meta" }

func (e Meta) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetStringer("charset", e.Charset)
	l.SetStringer("http-equiv", e.HTTPEquiv)
	l.SetStringer("name", e.Name)
	l.SetString("content", e.Content)
	l.SetString("media", e.Media)
	return l
}

// Style embeds a style sheet. Its content is raw CSS text.
// https://html.spec.whatwg.org/#the-style-element
type Style struct {
	attribute.Global
	Contents
	Media    string
	Blocking attribute.Blocking
}

func (Style) Tag() string { return "style" }

func (e Style) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetString("media", e.Media)
	l.SetStringer("blocking", e.Blocking)
	return l
}

// Body is the document content. The On* fields are inline event handler
// scripts for window events.
// https://html.spec.whatwg.org/#the-body-element
type Body struct {
	attribute.Global
	Contents
	OnAfterPrint         string
	OnBeforePrint        string
	OnBeforeUnload       string
	OnBlur               string
	OnError              string
	OnFocus              string
	OnHashChange         string
	OnLanguageChange     string
	OnLoad               string
	OnMessage            string
	OnMessageError       string
	OnOffline            string
	OnOnline             string
	OnPageHide           string
	OnPageReveal         string
	OnPageShow           string
	OnPageSwap           string
	OnPopState           string
	OnRejectionHandled   string
	OnResize             string
	OnStorage            string
	OnUnhandledRejection string
	OnUnload             string
}

func (Body) Tag() string { return "body" }

func (e Body) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetString("onafterprint", e.OnAfterPrint)
	l.SetString("onbeforeprint", e.OnBeforePrint)
	l.SetString("onbeforeunload", e.OnBeforeUnload)
	l.SetString("onblur", e.OnBlur)
	l.SetString("onerror", e.OnError)
	l.SetString("onfocus", e.OnFocus)
	l.SetString("onhashchange", e.OnHashChange)
	l.SetString("onlanguagechange", e.OnLanguageChange)
	l.SetString("onload", e.OnLoad)
	l.SetString("onmessage", e.OnMessage)
	l.SetString("onmessageerror", e.OnMessageError)
	l.SetString("onoffline", e.OnOffline)
	l.SetString("ononline", e.OnOnline)
	l.SetString("onpagehide", e.OnPageHide)
	l.SetString("onpagereveal", e.OnPageReveal)
	l.SetString("onpageshow", e.OnPageShow)
	l.SetString("onpageswap", e.OnPageSwap)
	l.SetString("onpopstate", e.OnPopState)
	l.SetString("onrejectionhandled", e.OnRejectionHandled)
	l.SetString("onresize", e.OnResize)
	l.SetString("onstorage", e.OnStorage)
	l.SetString("onunhandledrejection", e.OnUnhandledRejection)
	l.SetString("onunload", e.OnUnload)
	return l
}
