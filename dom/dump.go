package dom

import (
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// Dump returns n in the html5lib tree-construction test format:
//
//	#document
//	| <!DOCTYPE html>
//	| <html>
//	|   <body>
//	|     <p>
//	|       class="intro"
//	|       "hello"
func Dump(n *html.Node) string {
	var sb strings.Builder
	dump(&sb, n, 0)
	return strings.TrimRight(sb.String(), "\n")
}

// DumpNodes dumps sibling nodes as returned by Builder.Build.
func DumpNodes(nodes []*html.Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		dump(&sb, n, 0)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func dump(sb *strings.Builder, n *html.Node, depth int) {
	if n.Type == html.DocumentNode {
		sb.WriteString("#document\n")
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			dump(sb, c, 0)
		}
		return
	}

	line(sb, depth, describe(n))
	if n.Type == html.ElementNode {
		attrs := make([]html.Attribute, len(n.Attr))
		copy(attrs, n.Attr)
		sort.Slice(attrs, func(i, j int) bool { return attrs[i].Key < attrs[j].Key })
		for _, a := range attrs {
			line(sb, depth+1, namespacePrefix(a.Namespace)+a.Key+"=\""+a.Val+"\"")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		dump(sb, c, depth+1)
	}
}

func line(sb *strings.Builder, depth int, s string) {
	sb.WriteString("| ")
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(s)
	sb.WriteByte('\n')
}

func describe(n *html.Node) string {
	switch n.Type {
	case html.ElementNode:
		return "<" + namespacePrefix(n.Namespace) + n.Data + ">"
	case html.TextNode:
		return "\"" + n.Data + "\""
	case html.CommentNode:
		return "<!-- " + n.Data + " -->"
	case html.DoctypeNode:
		d := "<!DOCTYPE " + n.Data
		var public, system string
		for _, a := range n.Attr {
			switch a.Key {
			case "public":
				public = a.Val
			case "system":
				system = a.Val
			}
		}
		if public != "" || system != "" {
			d += " \"" + public + "\" \"" + system + "\""
		}
		return d + ">"
	case html.RawNode:
		return n.Data
	}
	return ""
}

func namespacePrefix(ns string) string {
	if ns == "" || ns == "html" {
		return ""
	}
	return ns + " "
}
