package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/heathj/htmltags/attribute"
	"github.com/heathj/htmltags/element"
)

func (s *state) children(n ast.Node) element.Fragment {
	var out element.Fragment
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		out = append(out, s.convert(c)...)
	}
	return out
}

func (s *state) content(n ast.Node) element.Contents {
	return element.Contents{Content: element.Wrap(s.children(n)...)}
}

func (s *state) convert(n ast.Node) []element.Node {
	switch n := n.(type) {
	case *ast.Heading:
		id := s.ids[n]
		content := s.children(n)
		if s.headingLinks {
			content = append(content, element.A{
				Global:   attribute.Global{Class: []string{"anchor"}},
				Contents: contents(element.Text("#")),
				Href:     attribute.Anchor(id),
			})
		}
		return one(element.Heading{
			Global:   attribute.Global{ID: id},
			Contents: contents(content...),
			Level:    n.Level,
		})
	case *ast.Paragraph:
		return one(element.P{Contents: s.content(n)})
	case *ast.TextBlock:
		return s.children(n)
	case *ast.ThematicBreak:
		return one(element.Hr{})
	case *ast.Blockquote:
		return one(element.Blockquote{Contents: s.content(n)})
	case *ast.CodeBlock:
		return one(codeBlock("", lines(n, s.src)))
	case *ast.FencedCodeBlock:
		return one(codeBlock(string(n.Language(s.src)), lines(n, s.src)))
	case *ast.List:
		if n.IsOrdered() {
			ol := element.Ol{Contents: s.content(n)}
			if n.Start != 1 {
				ol.Start = attribute.Ptr(n.Start)
			}
			return one(ol)
		}
		return one(element.Ul{Contents: s.content(n)})
	case *ast.ListItem:
		return one(element.Li{Contents: s.content(n)})
	case *ast.HTMLBlock:
		if !s.rawHTML {
			s.log.WithField("line", s.line(n)).Warn("skipping raw HTML block")
			return nil
		}
		raw := lines(n, s.src)
		if n.HasClosure() {
			raw += string(n.ClosureLine.Value(s.src))
		}
		return one(element.Raw(raw))

	case *ast.Text:
		out := []element.Node{element.Text(n.Value(s.src))}
		switch {
		case n.HardLineBreak():
			out = append(out, element.Br{})
		case n.SoftLineBreak():
			out = append(out, element.Text("\n"))
		}
		return out
	case *ast.String:
		return one(element.Text(n.Value))
	case *ast.CodeSpan:
		return one(element.Code{Contents: contents(element.Text(codeSpan(n, s.src)))})
	case *ast.Emphasis:
		if n.Level >= 2 {
			return one(element.Strong{Contents: s.content(n)})
		}
		return one(element.Em{Contents: s.content(n)})
	case *ast.Link:
		href := attribute.Href(n.Destination)
		if href == "" {
			href = "#"
		}
		return one(element.A{
			Global:   attribute.Global{Title: string(n.Title)},
			Contents: s.content(n),
			Href:     href,
		})
	case *ast.AutoLink:
		href := string(n.URL(s.src))
		if n.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(strings.ToLower(href), "mailto:") {
			href = "mailto:" + href
		}
		return one(element.A{
			Contents: contents(element.Text(n.Label(s.src))),
			Href:     attribute.Href(href),
		})
	case *ast.Image:
		return one(element.Img{
			Global: attribute.Global{Title: string(n.Title)},
			Src:    attribute.Href(n.Destination),
			Alt:    plainText(n, s.src),
		})
	case *ast.RawHTML:
		if !s.rawHTML {
			s.log.Warn("skipping inline raw HTML")
			return nil
		}
		var raw bytes.Buffer
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			raw.Write(seg.Value(s.src))
		}
		return one(element.Raw(raw.String()))

	case *east.Table:
		return one(s.table(n))
	case *east.Strikethrough:
		return one(element.Del{Contents: s.content(n)})
	case *east.TaskCheckBox:
		return []element.Node{
			element.Input{
				Disabled: true,
				Type:     element.InputCheckbox{Checked: n.IsChecked},
			},
			element.Text(" "),
		}
	}

	s.log.WithField("kind", n.Kind().String()).Debug("unhandled markdown node, keeping children")
	return s.children(n)
}

func (s *state) table(t *east.Table) element.Table {
	var head, body element.Fragment
	for c := t.FirstChild(); c != nil; c = c.NextSibling() {
		switch row := c.(type) {
		case *east.TableHeader:
			head = append(head, element.Tr{Contents: s.cells(row, true)})
		case *east.TableRow:
			body = append(body, element.Tr{Contents: s.cells(row, false)})
		}
	}
	var sections element.Fragment
	if len(head) > 0 {
		sections = append(sections, element.Thead{Contents: contents(head...)})
	}
	if len(body) > 0 {
		sections = append(sections, element.Tbody{Contents: contents(body...)})
	}
	return element.Table{Contents: contents(sections...)}
}

func (s *state) cells(row ast.Node, header bool) element.Contents {
	var cells element.Fragment
	for c := row.FirstChild(); c != nil; c = c.NextSibling() {
		cell, ok := c.(*east.TableCell)
		if !ok {
			continue
		}
		g := attribute.Global{}
		switch cell.Alignment {
		case east.AlignLeft, east.AlignRight, east.AlignCenter:
			g.Style = "text-align: " + cell.Alignment.String()
		}
		if header {
			cells = append(cells, element.Th{Global: g, Contents: s.content(cell)})
		} else {
			cells = append(cells, element.Td{Global: g, Contents: s.content(cell)})
		}
	}
	return contents(cells...)
}

// line returns the 1-based source line where block n starts.
func (s *state) line(n ast.Node) int {
	l := n.Lines()
	if l.Len() == 0 {
		return 0
	}
	return bytes.Count(s.src[:l.At(0).Start], []byte{'\n'}) + 1
}

// codeBlock builds <pre><code> from a fence info word of the form
// lang:lines:highlight. lines becomes data-line on the <pre> and highlight
// an extra highlight-* class on the <code>. Empty parts are left out.
func codeBlock(info, code string) element.Pre {
	c := element.Code{Contents: contents(element.Text(code))}
	var pre element.Pre
	parts := strings.SplitN(info, ":", 3)
	if parts[0] != "" {
		c.Class = append(c.Class, "language-"+parts[0])
	}
	if len(parts) > 2 && parts[2] != "" {
		c.Class = append(c.Class, "highlight-"+parts[2])
	}
	if len(parts) > 1 && parts[1] != "" {
		pre.Data = map[string]string{"line": parts[1]}
	}
	pre.Contents = contents(c)
	return pre
}

func lines(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	l := n.Lines()
	for i := 0; i < l.Len(); i++ {
		seg := l.At(i)
		buf.Write(seg.Value(src))
	}
	return buf.String()
}

// codeSpan returns the literal content of a code span. Line endings
// inside the span become spaces.
func codeSpan(n *ast.CodeSpan, src []byte) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			v := c.Segment.Value(src)
			if bytes.HasSuffix(v, []byte{'\n'}) {
				sb.Write(v[:len(v)-1])
				sb.WriteByte(' ')
				continue
			}
			sb.Write(v)
		case *ast.String:
			sb.Write(c.Value)
		}
	}
	return sb.String()
}

// plainText concatenates the text of n's inline descendants.
func plainText(n ast.Node, src []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch c := c.(type) {
		case *ast.Text:
			sb.Write(c.Value(src))
			if c.SoftLineBreak() || c.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(c.Value)
		case *ast.AutoLink:
			sb.Write(c.Label(src))
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}

func one(n element.Node) []element.Node {
	return []element.Node{n}
}

func contents(nodes ...element.Node) element.Contents {
	return element.Contents{Content: element.Wrap(nodes...)}
}
