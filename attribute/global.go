package attribute

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Global holds the attributes common to all HTML elements.
// https://html.spec.whatwg.org/#global-attributes
type Global struct {
	ID              string
	Class           []string
	Title           string
	Lang            language.Tag
	Dir             Dir
	Hidden          Hidden
	Translate       Translate
	Spellcheck      *bool
	Contenteditable *bool
	Draggable       *bool
	Inert           bool
	Tabindex        *int
	Accesskey       string
	Autofocus       bool
	Popover         Popover
	Slot            string
	Role            string
	Style           string
	Itemscope       bool
	Itemprop        string
	Itemref         []string
	Itemtype        Href
	Itemid          Href
	Elementtiming   Elementtiming
	Nonce           Nonce

	// Data holds data-* attributes keyed without the "data-" prefix. Keys
	// are lowercased and a "data-" prefix is dropped; when two keys end up
	// the same, the one that sorts last wins.
	Data map[string]string
}

// Attributes returns the set global attributes in document order.
func (g Global) Attributes() List {
	var l List
	g.Append(&l)
	return l
}

// Append adds the set global attributes to l.
func (g Global) Append(l *List) {
	l.SetString("id", g.ID)
	l.SetTokens("class", g.Class)
	l.SetString("title", g.Title)
	l.SetLanguage("lang", g.Lang)
	l.SetStringer("dir", g.Dir)
	g.Hidden.set(l)
	l.SetStringer("translate", g.Translate)
	l.SetToggle("spellcheck", g.Spellcheck)
	l.SetToggle("contenteditable", g.Contenteditable)
	l.SetToggle("draggable", g.Draggable)
	l.SetBool("inert", g.Inert)
	l.SetInt("tabindex", g.Tabindex)
	l.SetString("accesskey", g.Accesskey)
	l.SetBool("autofocus", g.Autofocus)
	l.SetStringer("popover", g.Popover)
	l.SetString("slot", g.Slot)
	l.SetString("role", g.Role)
	l.SetString("style", g.Style)
	l.SetBool("itemscope", g.Itemscope)
	l.SetString("itemprop", g.Itemprop)
	l.SetTokens("itemref", g.Itemref)
	l.SetStringer("itemtype", g.Itemtype)
	l.SetStringer("itemid", g.Itemid)
	l.SetStringer("elementtiming", g.Elementtiming)
	l.SetStringer("nonce", g.Nonce)

	raw := make([]string, 0, len(g.Data))
	for k := range g.Data {
		raw = append(raw, k)
	}
	sort.Strings(raw)
	data := make(map[string]string, len(g.Data))
	keys := make([]string, 0, len(g.Data))
	for _, k := range raw {
		name := "data-" + strings.TrimPrefix(strings.ToLower(k), "data-")
		if _, dup := data[name]; !dup {
			keys = append(keys, name)
		}
		data[name] = g.Data[k]
	}
	sort.Strings(keys)
	for _, name := range keys {
		l.Set(name, data[name])
	}
}

// Classes splits a space separated class string.
func Classes(s string) []string {
	return strings.Fields(s)
}
