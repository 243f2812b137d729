package element

import (
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// New returns the zero descriptor for tag. The lookup ignores case; h1 to
// h6 yield a Heading of that level. Unknown tags report false.
func New(tag string) (Element, bool) {
	switch fold(tag) {
	case "a":
		return A{}, true
	case "abbr":
		return Abbr{}, true
	case "address":
		return Address{}, true
	case "area":
		return Area{}, true
	case "article":
		return Article{}, true
	case "aside":
		return Aside{}, true
	case "audio":
		return Audio{}, true
	case "b":
		return B{}, true
	case "base":
		return Base{}, true
	case "bdi":
		return Bdi{}, true
	case "bdo":
		return Bdo{}, true
	case "big":
		return Big{}, true
	case "blockquote":
		return Blockquote{}, true
	case "body":
		return Body{}, true
	case "br":
		return Br{}, true
	case "button":
		return Button{}, true
	case "canvas":
		return Canvas{}, true
	case "caption":
		return Caption{}, true
	case "center":
		return Center{}, true
	case "cite":
		return Cite{}, true
	case "code":
		return Code{}, true
	case "col":
		return Col{}, true
	case "colgroup":
		return Colgroup{}, true
	case "data":
		return Data{}, true
	case "datalist":
		return Datalist{}, true
	case "dd":
		return Dd{}, true
	case "del":
		return Del{}, true
	case "details":
		return Details{}, true
	case "dfn":
		return Dfn{}, true
	case "dialog":
		return Dialog{}, true
	case "dir":
		return Dir{}, true
	case "div":
		return Div{}, true
	case "dl":
		return Dl{}, true
	case "dt":
		return Dt{}, true
	case "em":
		return Em{}, true
	case "embed":
		return Embed{}, true
	case "fencedframe":
		return Fencedframe{}, true
	case "fieldset":
		return Fieldset{}, true
	case "figcaption":
		return Figcaption{}, true
	case "figure":
		return Figure{}, true
	case "font":
		return Font{}, true
	case "footer":
		return Footer{}, true
	case "form":
		return Form{}, true
	case "frame":
		return Frame{}, true
	case "frameset":
		return Frameset{}, true
	case "h1":
		return Heading{Level: 1}, true
	case "h2":
		return Heading{Level: 2}, true
	case "h3":
		return Heading{Level: 3}, true
	case "h4":
		return Heading{Level: 4}, true
	case "h5":
		return Heading{Level: 5}, true
	case "h6":
		return Heading{Level: 6}, true
	case "head":
		return Head{}, true
	case "header":
		return Header{}, true
	case "hgroup":
		return Hgroup{}, true
	case "hr":
		return Hr{}, true
	case "html":
		return HTML{}, true
	case "i":
		return I{}, true
	case "iframe":
		return Iframe{}, true
	case "img":
		return Img{}, true
	case "input":
		return Input{}, true
	case "ins":
		return Ins{}, true
	case "kbd":
		return Kbd{}, true
	case "label":
		return Label{}, true
	case "legend":
		return Legend{}, true
	case "li":
		return Li{}, true
	case "link":
		return Link{}, true
	case "main":
		return Main{}, true
	case "map":
		return Map{}, true
	case "mark":
		return Mark{}, true
	case "marquee":
		return Marquee{}, true
	case "menu":
		return Menu{}, true
	case "meta":
		return Meta{}, true
	case "meter":
		return Meter{}, true
	case "nav":
		return Nav{}, true
	case "nobr":
		return Nobr{}, true
	case "noframes":
		return Noframes{}, true
	case "noscript":
		return Noscript{}, true
	case "object":
		return Object{}, true
	case "ol":
		return Ol{}, true
	case "optgroup":
		return Optgroup{}, true
	case "option":
		return Option{}, true
	case "output":
		return Output{}, true
	case "p":
		return P{}, true
	case "param":
		return Param{}, true
	case "picture":
		return Picture{}, true
	case "plaintext":
		return Plaintext{}, true
	case "pre":
		return Pre{}, true
	case "progress":
		return Progress{}, true
	case "q":
		return Q{}, true
	case "rb":
		return Rb{}, true
	case "rp":
		return Rp{}, true
	case "rt":
		return Rt{}, true
	case "rtc":
		return Rtc{}, true
	case "ruby":
		return Ruby{}, true
	case "s":
		return S{}, true
	case "samp":
		return Samp{}, true
	case "script":
		return Script{}, true
	case "search":
		return Search{}, true
	case "section":
		return Section{}, true
	case "select":
		return Select{}, true
	case "slot":
		return Slot{}, true
	case "small":
		return Small{}, true
	case "source":
		return Source{}, true
	case "span":
		return Span{}, true
	case "strike":
		return Strike{}, true
	case "strong":
		return Strong{}, true
	case "style":
		return Style{}, true
	case "sub":
		return Sub{}, true
	case "summary":
		return Summary{}, true
	case "sup":
		return Sup{}, true
	case "table":
		return Table{}, true
	case "tbody":
		return Tbody{}, true
	case "td":
		return Td{}, true
	case "template":
		return Template{}, true
	case "textarea":
		return Textarea{}, true
	case "tfoot":
		return Tfoot{}, true
	case "th":
		return Th{}, true
	case "thead":
		return Thead{}, true
	case "time":
		return Time{}, true
	case "title":
		return Title{}, true
	case "tr":
		return Tr{}, true
	case "track":
		return Track{}, true
	case "tt":
		return Tt{}, true
	case "u":
		return U{}, true
	case "ul":
		return Ul{}, true
	case "var":
		return Var{}, true
	case "video":
		return Video{}, true
	case "wbr":
		return Wbr{}, true
	}
	return nil, false
}

var tags = []string{
	"a", "abbr", "address", "area", "article", "aside", "audio",
	"b", "base", "bdi", "bdo", "big", "blockquote", "body", "br", "button",
	"canvas", "caption", "center", "cite", "code", "col", "colgroup",
	"data", "datalist", "dd", "del", "details", "dfn", "dialog", "dir",
	"div", "dl", "dt",
	"em", "embed",
	"fencedframe", "fieldset", "figcaption", "figure", "font", "footer",
	"form", "frame", "frameset",
	"h1", "h2", "h3", "h4", "h5", "h6", "head", "header", "hgroup", "hr",
	"html",
	"i", "iframe", "img", "input", "ins",
	"kbd",
	"label", "legend", "li", "link",
	"main", "map", "mark", "marquee", "menu", "meta", "meter",
	"nav", "nobr", "noframes", "noscript",
	"object", "ol", "optgroup", "option", "output",
	"p", "param", "picture", "plaintext", "pre", "progress",
	"q",
	"rb", "rp", "rt", "rtc", "ruby",
	"s", "samp", "script", "search", "section", "select", "slot", "small",
	"source", "span", "strike", "strong", "style", "sub", "summary", "sup",
	"table", "tbody", "td", "template", "textarea", "tfoot", "th", "thead",
	"time", "title", "tr", "track", "tt",
	"u", "ul",
	"var", "video",
	"wbr",
}

// https://html.spec.whatwg.org/#non-conforming-features
var obsolete = map[string]bool{
	"big":       true,
	"center":    true,
	"dir":       true,
	"font":      true,
	"frame":     true,
	"frameset":  true,
	"marquee":   true,
	"nobr":      true,
	"noframes":  true,
	"param":     true,
	"plaintext": true,
	"rb":        true,
	"rtc":       true,
	"strike":    true,
	"tt":        true,
}

// Tags returns every tag New knows, sorted.
func Tags() []string {
	out := make([]string, len(tags))
	copy(out, tags)
	sort.Strings(out)
	return out
}

// IsVoid reports whether tag is a known element that never has children.
func IsVoid(tag string) bool {
	e, ok := New(tag)
	return ok && IsVoidElement(e)
}

// IsVoidElement reports whether e is a void descriptor.
func IsVoidElement(e Element) bool {
	_, ok := e.(interface{ void() })
	return ok
}

// IsObsolete reports whether tag is a non-conforming legacy element.
func IsObsolete(tag string) bool {
	return obsolete[fold(tag)]
}

// fold normalizes a tag name for lookup. Tag names match ASCII
// case-insensitively only, so anything outside ASCII folds to "". A Caser
// keeps state, so one is made per call.
func fold(tag string) string {
	tag = strings.TrimSpace(tag)
	for i := 0; i < len(tag); i++ {
		if tag[i] >= utf8.RuneSelf {
			return ""
		}
	}
	return cases.Fold().String(tag)
}
