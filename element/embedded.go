package element

import (
	"github.com/heathj/htmltags/attribute"
	"golang.org/x/text/language"
)

// Picture holds <source> alternatives for a final <img>.
// https://html.spec.whatwg.org/#the-picture-element
type Picture struct {
	attribute.Global
	Contents
}

func (Picture) Tag() string { return "picture" }

// Source is an alternative resource for <picture>, <video> or <audio>.
// https://html.spec.whatwg.org/#the-source-element
type Source struct {
	attribute.Global
	Void
	Type   string
	Src    attribute.Href
	Srcset attribute.Srcset
	Sizes  string
	Media  string
	Width  *int
	Height *int
}

func (Source) Tag() string { return "source" }

func (e Source) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetString("type", e.Type)
	l.SetStringer("src", e.Src)
	l.SetStringer("srcset", e.Srcset)
	l.SetString("sizes", e.Sizes)
	l.SetString("media", e.Media)
	l.SetInt("width", e.Width)
	l.SetInt("height", e.Height)
	return l
}

// Img embeds an image.
// https://html.spec.whatwg.org/#the-img-element
type Img struct {
	attribute.Global
	Void
	Src            attribute.Href
	Alt            string
	Srcset         attribute.Srcset
	Sizes          string
	Width          *int
	Height         *int
	Loading        attribute.Loading
	Decoding       attribute.Decoding
	Fetchpriority  attribute.FetchPriority
	Crossorigin    attribute.Crossorigin
	Referrerpolicy attribute.ReferrerPolicy
	Usemap         string
	Ismap          bool
}

func (Img) Tag() string { return "img" }

func (e Img) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetStringer("src", e.Src)
	l.SetString("alt", e.Alt)
	l.SetStringer("srcset", e.Srcset)
	l.SetString("sizes", e.Sizes)
	l.SetInt("width", e.Width)
	l.SetInt("height", e.Height)
	l.SetStringer("loading", e.Loading)
	l.SetStringer("decoding", e.Decoding)
	l.SetStringer("fetchpriority", e.Fetchpriority)
	l.SetStringer("crossorigin", e.Crossorigin)
	l.SetStringer("referrerpolicy", e.Referrerpolicy)
	l.SetString("usemap", e.Usemap)
	l.SetBool("ismap", e.Ismap)
	return l
}

// Iframe nests another browsing context.
// https://html.spec.whatwg.org/#the-iframe-element
type Iframe struct {
	attribute.Global
	Contents
	Src             attribute.Href
	Srcdoc          string
	Name            string
	Sandbox         []string
	Allow           string
	Allowfullscreen bool
	Width           *int
	Height          *int
	Loading         attribute.Loading
	Referrerpolicy  attribute.ReferrerPolicy
}

func (Iframe) Tag() string { return "iframe" }

func (e Iframe) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetStringer("src", e.Src)
	l.SetString("srcdoc", e.Srcdoc)
	l.SetString("name", e.Name)
	if e.Sandbox != nil {
		// An empty sandbox list applies every restriction.
		l.Set("sandbox", "")
		l.SetTokens("sandbox", e.Sandbox)
	}
	l.SetString("allow", e.Allow)
	l.SetBool("allowfullscreen", e.Allowfullscreen)
	l.SetInt("width", e.Width)
	l.SetInt("height", e.Height)
	l.SetStringer("loading", e.Loading)
	l.SetStringer("referrerpolicy", e.Referrerpolicy)
	return l
}

// Embed is an integration point for external, usually non-HTML, content.
// https://html.spec.whatwg.org/#the-embed-element
type Embed struct {
	attribute.Global
	Void
	Src    attribute.Href
	Type   string
	Width  *int
	Height *int
}

func (Embed) Tag() string { return "embed" }

func (e Embed) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetStringer("src", e.Src)
	l.SetString("type", e.Type)
	l.SetInt("width", e.Width)
	l.SetInt("height", e.Height)
	return l
}

// Object is an external resource. Note that the Data field is the data URL
// attribute; data-* attributes live on Global.Data.
// https://html.spec.whatwg.org/#the-object-element
type Object struct {
	attribute.Global
	Contents
	Data   attribute.Href
	Type   string
	Name   string
	Form   string
	Width  *int
	Height *int
	Usemap string
}

func (Object) Tag() string { return "object" }

func (e Object) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetStringer("data", e.Data)
	l.SetString("type", e.Type)
	l.SetString("name", e.Name)
	l.SetString("form", e.Form)
	l.SetInt("width", e.Width)
	l.SetInt("height", e.Height)
	l.SetString("usemap", e.Usemap)
	return l
}

// Param is an obsolete parameter of an <object>.
type Param struct {
	attribute.Global
	Void
	Name  string
	Value string
}

func (Param) Tag() string { return "param" }

func (e Param) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetString("name", e.Name)
	l.SetString("value", e.Value)
	return l
}

// Media holds the attributes shared by <audio> and <video>.
type Media struct {
	Src                   attribute.Href
	Crossorigin           attribute.Crossorigin
	Preload               attribute.Preload
	Autoplay              bool
	Loop                  bool
	Muted                 bool
	Controls              bool
	Controlslist          attribute.ControlsList
	Disableremoteplayback bool
}

func (m Media) append(l *attribute.List) {
	l.SetStringer("src", m.Src)
	l.SetStringer("crossorigin", m.Crossorigin)
	l.SetStringer("preload", m.Preload)
	l.SetBool("autoplay", m.Autoplay)
	l.SetBool("loop", m.Loop)
	l.SetBool("muted", m.Muted)
	l.SetBool("controls", m.Controls)
	l.SetStringer("controlslist", m.Controlslist)
	l.SetBool("disableremoteplayback", m.Disableremoteplayback)
}

// https://html.spec.whatwg.org/#the-video-element
type Video struct {
	attribute.Global
	Contents
	Media
	Poster                  attribute.Href
	Playsinline             bool
	Width                   *int
	Height                  *int
	Disablepictureinpicture bool
}

func (Video) Tag() string { return "video" }

func (e Video) Attributes() attribute.List {
	l := e.Global.Attributes()
	e.Media.append(&l)
	l.SetStringer("poster", e.Poster)
	l.SetBool("playsinline", e.Playsinline)
	l.SetInt("width", e.Width)
	l.SetInt("height", e.Height)
	l.SetBool("disablepictureinpicture", e.Disablepictureinpicture)
	return l
}

// https://html.spec.whatwg.org/#the-audio-element
type Audio struct {
	attribute.Global
	Contents
	Media
}

func (Audio) Tag() string { return "audio" }

func (e Audio) Attributes() attribute.List {
	l := e.Global.Attributes()
	e.Media.append(&l)
	return l
}

// Track is a timed text track of a media element. Src is required.
// https://html.spec.whatwg.org/#the-track-element
type Track struct {
	attribute.Global
	Void
	Src     attribute.Href
	Kind    attribute.TrackKind
	Srclang language.Tag
	Label   string
	Default bool
}

func (Track) Tag() string { return "track" }

func (e Track) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.Set("src", string(e.Src))
	l.SetStringer("kind", e.Kind)
	l.SetLanguage("srclang", e.Srclang)
	l.SetString("label", e.Label)
	l.SetBool("default", e.Default)
	return l
}

// Map is an image map; its <area> children define the regions.
type Map struct {
	attribute.Global
	Contents
	Name string
}

func (Map) Tag() string { return "map" }

func (e Map) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetString("name", e.Name)
	return l
}

// Area is a clickable region of an image map.
// https://html.spec.whatwg.org/#the-area-element
type Area struct {
	attribute.Global
	Void
	Alt            string
	Coords         attribute.Coords
	Shape          attribute.Shape
	Href           attribute.Href
	Target         attribute.Target
	Download       *attribute.Download
	Ping           []attribute.Href
	Rel            attribute.Rel
	Referrerpolicy attribute.ReferrerPolicy
}

func (Area) Tag() string { return "area" }

func (e Area) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetString("alt", e.Alt)
	l.SetStringer("coords", e.Coords)
	l.SetStringer("shape", e.Shape)
	l.SetStringer("href", e.Href)
	l.SetStringer("target", e.Target)
	l.SetDownload(e.Download)
	l.SetTokens("ping", hrefs(e.Ping))
	l.SetStringer("rel", e.Rel)
	l.SetStringer("referrerpolicy", e.Referrerpolicy)
	return l
}

// Fencedframe embeds content that cannot communicate with the embedder.
// https://developer.mozilla.org/en-US/docs/Web/HTML/Element/fencedframe
type Fencedframe struct {
	attribute.Global
	Contents
	Allow  string
	Width  *int
	Height *int
}

func (Fencedframe) Tag() string { return "fencedframe" }

func (e Fencedframe) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetString("allow", e.Allow)
	l.SetInt("width", e.Width)
	l.SetInt("height", e.Height)
	return l
}
