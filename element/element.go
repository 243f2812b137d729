// Package element is a catalog of typed HTML element descriptors. Each
// descriptor pairs a literal tag name with the attributes the tag permits
// and a content thunk that produces its children on demand.
package element

import (
	"fmt"

	"github.com/heathj/htmltags/attribute"
)

// Node is anything that can appear as element content: an Element, Text,
// Comment, Raw or Fragment. A nil Node is empty content.
type Node interface {
	node()
}

// Element is the contract every descriptor conforms to.
type Element interface {
	Node
	// Tag returns the literal tag name.
	Tag() string
	// Attributes returns the attributes that are set, globals first.
	Attributes() attribute.List
	// Children evaluates the content thunk. It is nil for void elements
	// and for elements built without content.
	Children() Node
}

// Text is character data.
type Text string

func (Text) node() {}

// Textf formats character data.
func Textf(format string, args ...any) Text {
	return Text(fmt.Sprintf(format, args...))
}

// Comment is an HTML comment.
type Comment string

func (Comment) node() {}

// Raw is markup written out as is, without escaping.
type Raw string

func (Raw) node() {}

// Fragment is a sequence of nodes with no wrapping element.
type Fragment []Node

func (Fragment) node() {}

// Group collects nodes into a Fragment.
func Group(nodes ...Node) Fragment {
	return Fragment(nodes)
}

// Wrap returns a content thunk producing nodes.
func Wrap(nodes ...Node) func() Node {
	switch len(nodes) {
	case 0:
		return nil
	case 1:
		n := nodes[0]
		return func() Node { return n }
	}
	f := Fragment(nodes)
	return func() Node { return f }
}

// Contents is embedded by elements that may have children.
type Contents struct {
	Content func() Node
}

func (Contents) node() {}

// Children evaluates Content.
func (c Contents) Children() Node {
	if c.Content == nil {
		return nil
	}
	return c.Content()
}

// Void is embedded by elements that never have children.
// https://html.spec.whatwg.org/#void-elements
type Void struct{}

func (Void) node() {}

// Children is always nil.
func (Void) Children() Node { return nil }

func (Void) void() {}

// Custom is an element with an arbitrary tag name, e.g. an autonomous custom
// element. Attrs are reported after the globals.
type Custom struct {
	attribute.Global
	Contents
	Name  string
	Attrs attribute.List
}

func (e Custom) Tag() string { return e.Name }

func (e Custom) Attributes() attribute.List {
	l := e.Global.Attributes()
	for _, a := range e.Attrs {
		l.Set(a.Name, a.Value)
	}
	return l
}
