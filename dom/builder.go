// Package dom turns element descriptor trees into golang.org/x/net/html
// node trees, which can then be rendered or inspected.
package dom

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/heathj/htmltags/element"
)

// DefaultMaxDepth bounds element nesting when no WithMaxDepth option is
// given.
const DefaultMaxDepth = 512

// Builder converts descriptors to html nodes. The zero value is not
// usable; use NewBuilder.
type Builder struct {
	log      logrus.FieldLogger
	maxDepth int
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger. The default is logrus.StandardLogger().
func WithLogger(l logrus.FieldLogger) Option {
	return func(b *Builder) {
		if l != nil {
			b.log = l
		}
	}
}

// WithMaxDepth sets the deepest element nesting Build accepts. Values
// below 1 keep the default.
func WithMaxDepth(n int) Option {
	return func(b *Builder) {
		if n > 0 {
			b.maxDepth = n
		}
	}
}

func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		log:      logrus.StandardLogger(),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build evaluates n and its content thunks and returns the resulting
// sibling nodes. Fragments are flattened, so a single element yields one
// node and nil yields none.
func (b *Builder) Build(n element.Node) ([]*html.Node, error) {
	return b.build(n, "", 0)
}

// Document builds root under a document node that starts with
// <!DOCTYPE html>.
func (b *Builder) Document(root element.Element) (*html.Node, error) {
	if root == nil || !strings.EqualFold(root.Tag(), "html") {
		return nil, ErrNotDocumentRoot
	}
	nodes, err := b.Build(root)
	if err != nil {
		return nil, err
	}
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	for _, c := range nodes {
		doc.AppendChild(c)
	}
	return doc, nil
}

func (b *Builder) build(n element.Node, path string, depth int) ([]*html.Node, error) {
	switch n := n.(type) {
	case nil:
		return nil, nil
	case element.Text:
		return []*html.Node{{Type: html.TextNode, Data: string(n)}}, nil
	case element.Comment:
		return []*html.Node{{Type: html.CommentNode, Data: string(n)}}, nil
	case element.Raw:
		return []*html.Node{{Type: html.RawNode, Data: string(n)}}, nil
	case element.Fragment:
		var out []*html.Node
		for _, c := range n {
			nodes, err := b.build(c, path, depth)
			if err != nil {
				return nil, err
			}
			out = append(out, nodes...)
		}
		return out, nil
	case element.Element:
		node, err := b.element(n, path, depth+1)
		if err != nil {
			return nil, err
		}
		return []*html.Node{node}, nil
	}
	return nil, errors.Errorf("dom: unsupported node %T at %q", n, path)
}

func (b *Builder) element(e element.Element, parent string, depth int) (*html.Node, error) {
	tag := e.Tag()
	path := tag
	if parent != "" {
		path = parent + ">" + tag
	}
	switch {
	case tag == "":
		return nil, errors.Wrapf(ErrEmptyTag, "at %q", parent)
	case strings.ContainsAny(tag, " \t\n\f\r/>"):
		return nil, errors.Wrapf(ErrInvalidTag, "%q at %q", tag, parent)
	case depth > b.maxDepth:
		return nil, errors.Wrapf(ErrTooDeep, "%d levels at %q", b.maxDepth, parent)
	}

	name := strings.ToLower(tag)
	log := b.log.WithField("tag", name)
	if element.IsObsolete(name) {
		log.Debugf("building obsolete element at %q", path)
	}

	node := &html.Node{
		Type:     html.ElementNode,
		Data:     name,
		DataAtom: atom.Lookup([]byte(name)),
	}
	for _, a := range e.Attributes() {
		if a.Name == "" || strings.ContainsAny(a.Name, " \t\n\f\r\"'>/=") {
			return nil, errors.Wrapf(ErrInvalidAttribute, "%q at %q", a.Name, path)
		}
		node.Attr = append(node.Attr, html.Attribute{Key: a.Name, Val: a.Value})
	}

	children := e.Children()
	if children == nil {
		return node, nil
	}
	if element.IsVoid(name) {
		log.Warnf("void element given content at %q, content dropped", path)
		return node, nil
	}
	nodes, err := b.build(children, path, depth)
	if err != nil {
		return nil, err
	}
	for _, c := range nodes {
		node.AppendChild(c)
	}
	return node, nil
}
