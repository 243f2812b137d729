package attribute

import (
	"net/url"
	"strings"
)

// Href is a URL valued attribute (href, src, cite, action, poster, ...).
type Href string

func (h Href) String() string { return string(h) }

// URL builds an Href from a parsed URL.
func URL(u *url.URL) Href {
	if u == nil {
		return ""
	}
	return Href(u.String())
}

// Email returns a mailto: link. Subject and body are optional.
func Email(address, subject, body string) Href {
	s := "mailto:" + address
	var query []string
	if subject != "" {
		query = append(query, "subject="+escapeQuery(subject))
	}
	if body != "" {
		query = append(query, "body="+escapeQuery(body))
	}
	if len(query) > 0 {
		s += "?" + strings.Join(query, "&")
	}
	return Href(s)
}

// Tel returns a tel: link. Everything but digits and '+' is dropped from
// the number.
func Tel(number string) Href {
	return Href("tel:" + phoneDigits(number))
}

// SMS returns an sms: link with an optional body.
func SMS(number, body string) Href {
	s := "sms:" + phoneDigits(number)
	if body != "" {
		s += "?body=" + escapeQuery(body)
	}
	return Href(s)
}

// Fragment replaces the fragment of base with fragment.
func Fragment(base, fragment string) Href {
	if i := strings.IndexByte(base, '#'); i >= 0 {
		base = base[:i]
	}
	return Href(base + "#" + strings.TrimPrefix(fragment, "#"))
}

// Anchor returns a same-document link to the element with the given id.
func Anchor(id string) Href {
	if strings.HasPrefix(id, "#") {
		return Href(id)
	}
	return Href("#" + id)
}

func phoneDigits(number string) string {
	var b strings.Builder
	for _, r := range number {
		if (r >= '0' && r <= '9') || r == '+' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// queryLiteral are the bytes left unescaped in mailto: and sms: query
// values: the URL query characters without the delimiters ?&=+ and %.
const queryLiteral = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-._~!$'()*,/:;@"

// escapeQuery percent-encodes s for a mailto: or sms: query value. Spaces
// become %20, never '+'.
func escapeQuery(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if strings.IndexByte(queryLiteral, c) >= 0 {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&15])
	}
	return b.String()
}

// Target names a browsing context.
type Target string

const (
	TargetSelf        Target = "_self"
	TargetBlank       Target = "_blank"
	TargetParent      Target = "_parent"
	TargetTop         Target = "_top"
	TargetUnfencedTop Target = "_unfencedTop"
)

func (t Target) String() string { return string(t) }

// Rel is a space separated list of link types.
type Rel string

const (
	RelAlternate     Rel = "alternate"
	RelAuthor        Rel = "author"
	RelBookmark      Rel = "bookmark"
	RelCanonical     Rel = "canonical"
	RelExternal      Rel = "external"
	RelHelp          Rel = "help"
	RelIcon          Rel = "icon"
	RelLicense       Rel = "license"
	RelManifest      Rel = "manifest"
	RelModulepreload Rel = "modulepreload"
	RelNext          Rel = "next"
	RelNofollow      Rel = "nofollow"
	RelNoopener      Rel = "noopener"
	RelNoreferrer    Rel = "noreferrer"
	RelPreconnect    Rel = "preconnect"
	RelPrefetch      Rel = "prefetch"
	RelPreload       Rel = "preload"
	RelPrev          Rel = "prev"
	RelSearch        Rel = "search"
	RelStylesheet    Rel = "stylesheet"
	RelTag           Rel = "tag"
)

// Rels joins several link types into one Rel.
func Rels(rels ...Rel) Rel {
	tokens := make([]string, 0, len(rels))
	for _, r := range rels {
		tokens = append(tokens, string(r))
	}
	return Rel(joinTokens(tokens, " "))
}

func (r Rel) String() string { return string(r) }

// ReferrerPolicy controls the Referer header of fetches.
type ReferrerPolicy string

const (
	NoReferrer                  ReferrerPolicy = "no-referrer"
	NoReferrerWhenDowngrade     ReferrerPolicy = "no-referrer-when-downgrade"
	Origin                      ReferrerPolicy = "origin"
	OriginWhenCrossOrigin       ReferrerPolicy = "origin-when-cross-origin"
	SameOrigin                  ReferrerPolicy = "same-origin"
	StrictOrigin                ReferrerPolicy = "strict-origin"
	StrictOriginWhenCrossOrigin ReferrerPolicy = "strict-origin-when-cross-origin"
	UnsafeURL                   ReferrerPolicy = "unsafe-url"
)

func (p ReferrerPolicy) String() string { return string(p) }

// Download is the download attribute of <a> and <area>. Enabled with an
// empty Filename lets the browser pick a name.
type Download struct {
	Enabled  bool
	Filename string
}

// DownloadAs enables download with a suggested file name.
func DownloadAs(filename string) *Download {
	return &Download{Enabled: true, Filename: filename}
}

// Include reports whether the attribute is emitted.
func (d *Download) Include() bool {
	return d != nil && d.Enabled
}

// SetDownload sets the download attribute when d is enabled.
func (l *List) SetDownload(d *Download) {
	if d.Include() {
		l.Set("download", d.Filename)
	}
}
