package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/heathj/htmltags/attribute"
)

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap())
	assert.Equal(t, Text("a"), Wrap(Text("a"))())
	assert.Equal(t, Fragment{Text("a"), Text("b")}, Wrap(Text("a"), Text("b"))())
}

func TestChildren(t *testing.T) {
	assert.Nil(t, P{}.Children())
	assert.Equal(t, Text("x"), P{Contents: Contents{Content: Wrap(Text("x"))}}.Children())
	assert.Nil(t, Br{}.Children())
	assert.Equal(t, Text("n=3"), Textf("n=%d", 3))
	assert.Equal(t, Fragment{Comment("c")}, Group(Comment("c")))
}

func TestHeadingRank(t *testing.T) {
	tests := []struct {
		level    int
		expected string
	}{
		{-1, "h1"}, {0, "h1"}, {1, "h1"}, {4, "h4"}, {6, "h6"}, {7, "h6"}, {100, "h6"},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, Heading{Level: test.level}.Tag(), "level %d", test.level)
	}
}

type attrTest struct {
	name     string
	in       Element
	expected attribute.List
}

func runAttrTests(t *testing.T, tests []attrTest) {
	t.Helper()
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.expected, test.in.Attributes())
		})
	}
}

func TestAttributes(t *testing.T) {
	runAttrTests(t, []attrTest{
		{
			name: "anchor",
			in: A{
				Global:   attribute.Global{ID: "home"},
				Href:     "/",
				Target:   attribute.TargetBlank,
				Download: attribute.DownloadAs("x.txt"),
				Ping:     []attribute.Href{"/p1", "/p2"},
				Rel:      attribute.RelNoopener,
				Hreflang: language.French,
			},
			expected: attribute.List{
				{Name: "id", Value: "home"},
				{Name: "href", Value: "/"},
				{Name: "target", Value: "_blank"},
				{Name: "download", Value: "x.txt"},
				{Name: "ping", Value: "/p1 /p2"},
				{Name: "rel", Value: "noopener"},
				{Name: "hreflang", Value: "fr"},
			},
		},
		{
			name: "attributionsrc bare",
			in:   A{Attributionsrc: []attribute.Href{}},
			expected: attribute.List{
				{Name: "attributionsrc", Value: ""},
			},
		},
		{
			name: "meter always has value",
			in:   Meter{Max: attribute.Ptr(10.0)},
			expected: attribute.List{
				{Name: "value", Value: "0"},
				{Name: "max", Value: "10"},
			},
		},
		{
			name: "option empty value kept",
			in:   Option{Value: attribute.Ptr(""), Selected: true},
			expected: attribute.List{
				{Name: "value", Value: ""},
				{Name: "selected", Value: ""},
			},
		},
		{
			name: "iframe empty sandbox",
			in:   Iframe{Sandbox: []string{}},
			expected: attribute.List{
				{Name: "sandbox", Value: ""},
			},
		},
		{
			name: "iframe sandbox tokens",
			in:   Iframe{Src: "/embed", Sandbox: []string{"allow-scripts", "allow-forms"}},
			expected: attribute.List{
				{Name: "src", Value: "/embed"},
				{Name: "sandbox", Value: "allow-scripts allow-forms"},
			},
		},
		{
			name: "ordered list",
			in:   Ol{Reversed: true, Start: attribute.Ptr(0), Type: attribute.ParseListType("i")},
			expected: attribute.List{
				{Name: "reversed", Value: ""},
				{Name: "start", Value: "0"},
				{Name: "type", Value: "i"},
			},
		},
		{
			name: "object data is the resource",
			in: Object{
				Global: attribute.Global{Data: map[string]string{"kind": "chart"}},
				Data:   "chart.svg",
			},
			expected: attribute.List{
				{Name: "data-kind", Value: "chart"},
				{Name: "data", Value: "chart.svg"},
			},
		},
		{
			name: "track src always set",
			in:   Track{Kind: attribute.Captions, Srclang: language.English},
			expected: attribute.List{
				{Name: "src", Value: ""},
				{Name: "kind", Value: "captions"},
				{Name: "srclang", Value: "en"},
			},
		},
		{
			name: "video",
			in: Video{
				Media:  Media{Src: "v.mp4", Controls: true, Controlslist: attribute.ControlsList{NoDownload: true}},
				Poster: "p.jpg",
				Width:  attribute.Ptr(640),
			},
			expected: attribute.List{
				{Name: "src", Value: "v.mp4"},
				{Name: "controls", Value: ""},
				{Name: "controlslist", Value: "nodownload"},
				{Name: "poster", Value: "p.jpg"},
				{Name: "width", Value: "640"},
			},
		},
		{
			name: "table header cell",
			in:   Th{Cell: Cell{Colspan: attribute.Ptr(2), Headers: []string{"a", "b"}}, Scope: attribute.ScopeCol},
			expected: attribute.List{
				{Name: "colspan", Value: "2"},
				{Name: "headers", Value: "a b"},
				{Name: "scope", Value: "col"},
			},
		},
		{
			name: "button with overrides",
			in: Button{
				Type:          attribute.Submit,
				FormOverrides: FormOverrides{Formmethod: attribute.MethodPost, Formnovalidate: true},
			},
			expected: attribute.List{
				{Name: "type", Value: "submit"},
				{Name: "formmethod", Value: "post"},
				{Name: "formnovalidate", Value: ""},
			},
		},
		{
			name: "template shadow root",
			in:   Template{Shadowrootmode: attribute.ShadowOpen, Shadowrootclonable: true},
			expected: attribute.List{
				{Name: "shadowrootmode", Value: "open"},
				{Name: "shadowrootclonable", Value: ""},
			},
		},
		{
			name: "marquee",
			in:   Marquee{Direction: attribute.Up, Loop: attribute.Ptr(-1)},
			expected: attribute.List{
				{Name: "direction", Value: "up"},
				{Name: "loop", Value: "-1"},
			},
		},
		{
			name: "custom attrs after globals",
			in: Custom{
				Name:   "x-card",
				Global: attribute.Global{Class: []string{"c"}},
				Attrs:  attribute.List{{Name: "Variant", Value: "dark"}, {Name: "class", Value: "override"}},
			},
			expected: attribute.List{
				{Name: "class", Value: "override"},
				{Name: "variant", Value: "dark"},
			},
		},
	})
}
