package element

import "github.com/heathj/htmltags/attribute"

// The descriptors below are obsolete and non-conforming. They are kept so
// legacy markup can still be described.
// https://html.spec.whatwg.org/#non-conforming-features

type Big struct {
	attribute.Global
	Contents
}

func (Big) Tag() string { return "big" }

type Center struct {
	attribute.Global
	Contents
}

func (Center) Tag() string { return "center" }

// Dir is the obsolete directory list, not the dir attribute.
type Dir struct {
	attribute.Global
	Contents
	Compact bool
}

func (Dir) Tag() string { return "dir" }

func (e Dir) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetBool("compact", e.Compact)
	return l
}

type Font struct {
	attribute.Global
	Contents
	Color string
	Face  string
	Size  string
}

func (Font) Tag() string { return "font" }

func (e Font) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetString("color", e.Color)
	l.SetString("face", e.Face)
	l.SetString("size", e.Size)
	return l
}

// https://html.spec.whatwg.org/#frame
type Frame struct {
	attribute.Global
	Void
	Src          attribute.Href
	Name         string
	Noresize     bool
	Scrolling    attribute.Scrolling
	Marginheight *int
	Marginwidth  *int
	Frameborder  *int
}

func (Frame) Tag() string { return "frame" }

func (e Frame) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetStringer("src", e.Src)
	l.SetString("name", e.Name)
	l.SetBool("noresize", e.Noresize)
	l.SetStringer("scrolling", e.Scrolling)
	l.SetInt("marginheight", e.Marginheight)
	l.SetInt("marginwidth", e.Marginwidth)
	l.SetInt("frameborder", e.Frameborder)
	return l
}

// Frameset splits the window into frames. Cols and Rows are comma
// separated length lists such as "25%,*".
type Frameset struct {
	attribute.Global
	Contents
	Cols string
	Rows string
}

func (Frameset) Tag() string { return "frameset" }

func (e Frameset) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetString("cols", e.Cols)
	l.SetString("rows", e.Rows)
	return l
}

// Marquee scrolls its content. A negative Loop scrolls forever.
// https://html.spec.whatwg.org/#the-marquee-element
type Marquee struct {
	attribute.Global
	Contents
	Behavior     attribute.Behavior
	Bgcolor      string
	Direction    attribute.MarqueeDirection
	Height       string
	Hspace       *int
	Loop         *int
	Scrollamount *int
	Scrolldelay  *int
	Truespeed    bool
	Vspace       *int
	Width        string
}

func (Marquee) Tag() string { return "marquee" }

func (e Marquee) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetStringer("behavior", e.Behavior)
	l.SetString("bgcolor", e.Bgcolor)
	l.SetStringer("direction", e.Direction)
	l.SetString("height", e.Height)
	l.SetInt("hspace", e.Hspace)
	l.SetInt("loop", e.Loop)
	l.SetInt("scrollamount", e.Scrollamount)
	l.SetInt("scrolldelay", e.Scrolldelay)
	l.SetBool("truespeed", e.Truespeed)
	l.SetInt("vspace", e.Vspace)
	l.SetString("width", e.Width)
	return l
}

type Nobr struct {
	attribute.Global
	Contents
}

func (Nobr) Tag() string { return "nobr" }

type Noframes struct {
	attribute.Global
	Contents
}

func (Noframes) Tag() string { return "noframes" }

type Plaintext struct {
	attribute.Global
	Contents
}

func (Plaintext) Tag() string { return "plaintext" }

type Rb struct {
	attribute.Global
	Contents
}

func (Rb) Tag() string { return "rb" }

type Rtc struct {
	attribute.Global
	Contents
}

func (Rtc) Tag() string { return "rtc" }

type Strike struct {
	attribute.Global
	Contents
}

func (Strike) Tag() string { return "strike" }

type Tt struct {
	attribute.Global
	Contents
}

func (Tt) Tag() string { return "tt" }
