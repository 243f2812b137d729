package element

import (
	"strings"

	"github.com/heathj/htmltags/attribute"
	"golang.org/x/text/language"
)

// A is a hyperlink.
// https://html.spec.whatwg.org/#the-a-element
type A struct {
	attribute.Global
	Contents
	Href           attribute.Href
	Target         attribute.Target
	Download       *attribute.Download
	Ping           []attribute.Href
	Rel            attribute.Rel
	Hreflang       language.Tag
	Type           string
	Referrerpolicy attribute.ReferrerPolicy
	Attributionsrc []attribute.Href
}

func (A) Tag() string { return "a" }

func (e A) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetStringer("href", e.Href)
	l.SetStringer("target", e.Target)
	l.SetDownload(e.Download)
	l.SetTokens("ping", hrefs(e.Ping))
	l.SetStringer("rel", e.Rel)
	l.SetLanguage("hreflang", e.Hreflang)
	l.SetString("type", e.Type)
	l.SetStringer("referrerpolicy", e.Referrerpolicy)
	setAttributionsrc(&l, e.Attributionsrc)
	return l
}

// attributionsrc is a boolean attribute that may carry URLs; a non-nil
// empty slice emits it bare.
func setAttributionsrc(l *attribute.List, srcs []attribute.Href) {
	if srcs == nil {
		return
	}
	l.Set("attributionsrc", strings.Join(hrefs(srcs), " "))
}

func hrefs(hs []attribute.Href) []string {
	out := make([]string, 0, len(hs))
	for _, h := range hs {
		out = append(out, string(h))
	}
	return out
}

// https://html.spec.whatwg.org/#the-em-element
type Em struct {
	attribute.Global
	Contents
}

func (Em) Tag() string { return "em" }

// https://html.spec.whatwg.org/#the-strong-element
type Strong struct {
	attribute.Global
	Contents
}

func (Strong) Tag() string { return "strong" }

// Small is side commentary such as fine print.
type Small struct {
	attribute.Global
	Contents
}

func (Small) Tag() string { return "small" }

// S marks content that is no longer accurate.
type S struct {
	attribute.Global
	Contents
}

func (S) Tag() string { return "s" }

// Cite is the title of a creative work.
// https://html.spec.whatwg.org/#the-cite-element
type Cite struct {
	attribute.Global
	Contents
}

func (Cite) Tag() string { return "cite" }

// Q is an inline quotation.
type Q struct {
	attribute.Global
	Contents
	Cite attribute.Href
}

func (Q) Tag() string { return "q" }

func (e Q) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetStringer("cite", e.Cite)
	return l
}

// Dfn is the defining instance of a term.
type Dfn struct {
	attribute.Global
	Contents
}

func (Dfn) Tag() string { return "dfn" }

// Abbr is an abbreviation; the expansion goes in Title.
type Abbr struct {
	attribute.Global
	Contents
}

func (Abbr) Tag() string { return "abbr" }

// https://html.spec.whatwg.org/#the-ruby-element
type Ruby struct {
	attribute.Global
	Contents
}

func (Ruby) Tag() string { return "ruby" }

type Rt struct {
	attribute.Global
	Contents
}

func (Rt) Tag() string { return "rt" }

type Rp struct {
	attribute.Global
	Contents
}

func (Rp) Tag() string { return "rp" }

// Data links content with a machine readable Value.
// https://html.spec.whatwg.org/#the-data-element
type Data struct {
	attribute.Global
	Contents
	Value string
}

func (Data) Tag() string { return "data" }

func (e Data) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetString("value", e.Value)
	return l
}

// Time is a date, time or duration.
// https://html.spec.whatwg.org/#the-time-element
type Time struct {
	attribute.Global
	Contents
	Datetime attribute.Datetime
}

func (Time) Tag() string { return "time" }

func (e Time) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetStringer("datetime", e.Datetime)
	return l
}

type Code struct {
	attribute.Global
	Contents
}

func (Code) Tag() string { return "code" }

type Var struct {
	attribute.Global
	Contents
}

func (Var) Tag() string { return "var" }

type Samp struct {
	attribute.Global
	Contents
}

func (Samp) Tag() string { return "samp" }

type Kbd struct {
	attribute.Global
	Contents
}

func (Kbd) Tag() string { return "kbd" }

type Sub struct {
	attribute.Global
	Contents
}

func (Sub) Tag() string { return "sub" }

type Sup struct {
	attribute.Global
	Contents
}

func (Sup) Tag() string { return "sup" }

// I is text in an alternate voice.
type I struct {
	attribute.Global
	Contents
}

func (I) Tag() string { return "i" }

// B draws attention without extra importance.
type B struct {
	attribute.Global
	Contents
}

func (B) Tag() string { return "b" }

// U is an unarticulated annotation.
type U struct {
	attribute.Global
	Contents
}

func (U) Tag() string { return "u" }

type Mark struct {
	attribute.Global
	Contents
}

func (Mark) Tag() string { return "mark" }

// Bdi isolates its content from the surrounding text direction.
type Bdi struct {
	attribute.Global
	Contents
}

func (Bdi) Tag() string { return "bdi" }

// Bdo overrides the text direction. Set Dir on the embedded globals; the
// attribute is required for this element.
type Bdo struct {
	attribute.Global
	Contents
}

func (Bdo) Tag() string { return "bdo" }

// https://html.spec.whatwg.org/#the-span-element
type Span struct {
	attribute.Global
	Contents
}

func (Span) Tag() string { return "span" }

// Br is a line break.
type Br struct {
	attribute.Global
	Void
}

func (Br) Tag() string { return "br" }

// Wbr is a line break opportunity.
type Wbr struct {
	attribute.Global
	Void
}

func (Wbr) Tag() string { return "wbr" }

// Ins is an addition to the document.
// https://html.spec.whatwg.org/#the-ins-element
type Ins struct {
	attribute.Global
	Contents
	Cite     attribute.Href
	Datetime attribute.Datetime
}

func (Ins) Tag() string { return "ins" }

func (e Ins) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetStringer("cite", e.Cite)
	l.SetStringer("datetime", e.Datetime)
	return l
}

// Del is a removal from the document.
// https://html.spec.whatwg.org/#the-del-element
type Del struct {
	attribute.Global
	Contents
	Cite     attribute.Href
	Datetime attribute.Datetime
}

func (Del) Tag() string { return "del" }

func (e Del) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetStringer("cite", e.Cite)
	l.SetStringer("datetime", e.Datetime)
	return l
}
