package dom

import (
	"io"

	"golang.org/x/net/html"

	"github.com/heathj/htmltags/element"
)

// Render builds n and writes it as HTML. Escaping and void element
// handling follow html.Render.
func (b *Builder) Render(w io.Writer, n element.Node) error {
	nodes, err := b.Build(n)
	if err != nil {
		return err
	}
	for _, node := range nodes {
		if err := html.Render(w, node); err != nil {
			return err
		}
	}
	return nil
}

// RenderDocument builds root as a full document and writes it.
func (b *Builder) RenderDocument(w io.Writer, root element.Element) error {
	doc, err := b.Document(root)
	if err != nil {
		return err
	}
	return html.Render(w, doc)
}

// Render is Builder.Render with default options.
func Render(w io.Writer, n element.Node) error {
	return NewBuilder().Render(w, n)
}

// RenderDocument is Builder.RenderDocument with default options.
func RenderDocument(w io.Writer, root element.Element) error {
	return NewBuilder().RenderDocument(w, root)
}
