package main

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/heathj/htmltags/attribute"
	"github.com/heathj/htmltags/element"
	"github.com/heathj/htmltags/markdown"
)

const tocStyle = "nav.toc ul{list-style:none;padding-left:0}" +
	"nav.toc .toc-2{padding-left:1em}nav.toc .toc-3{padding-left:2em}" +
	"nav.toc .toc-4,nav.toc .toc-5,nav.toc .toc-6{padding-left:3em}"

// page assembles the full document for a converted markdown source.
func page(cfg htmltagsConfig, res *markdown.Result, log logrus.FieldLogger) element.HTML {
	head := element.Fragment{
		element.Meta{Charset: cfg.charset},
		element.Meta{Name: attribute.Viewport, Content: "width=device-width, initial-scale=1"},
		element.Title{Contents: text(pageTitle(cfg, res))},
	}

	var body element.Fragment
	if cfg.toc && len(res.TableOfContents) > 0 {
		style := element.Style{Contents: text(tocStyle)}
		if cfg.csp {
			nonce := attribute.NewNonce()
			head = append(head, element.Meta{
				HTTPEquiv: attribute.ContentSecurityPolicy,
				Content:   "default-src 'self'; style-src 'nonce-" + nonce.String() + "'",
			})
			style.Nonce = nonce
		}
		head = append(head, style)
		body = append(body, toc(res.TableOfContents))
	}
	body = append(body, element.Main{Contents: element.Contents{Content: element.Wrap(res.Content...)}})

	missingAlt(res.Content, log)

	return element.HTML{
		Global: attribute.Global{Lang: cfg.lang},
		Contents: element.Contents{Content: element.Wrap(
			element.Head{Contents: element.Contents{Content: element.Wrap(head...)}},
			element.Body{Contents: element.Contents{Content: element.Wrap(body...)}},
		)},
	}
}

func pageTitle(cfg htmltagsConfig, res *markdown.Result) string {
	if cfg.title != "" {
		return cfg.title
	}
	for _, s := range res.TableOfContents {
		if s.Level == 1 {
			return s.Title
		}
	}
	if cfg.input != "" {
		base := filepath.Base(cfg.input)
		return strings.TrimSuffix(base, filepath.Ext(base))
	}
	return "Untitled"
}

func toc(sections []markdown.Section) element.Nav {
	items := make([]element.Node, 0, len(sections))
	for _, s := range sections {
		items = append(items, element.Li{
			Global: attribute.Global{Class: []string{"toc-" + strconv.Itoa(s.Level)}},
			Contents: element.Contents{Content: element.Wrap(element.A{
				Href:     attribute.Anchor(s.ID),
				Contents: text(s.Title),
			})},
		})
	}
	return element.Nav{
		Global: attribute.Global{Class: []string{"toc"}, Role: "doc-toc"},
		Contents: element.Contents{Content: element.Wrap(
			element.Ul{Contents: element.Contents{Content: element.Wrap(items...)}},
		)},
	}
}

func missingAlt(content element.Fragment, log logrus.FieldLogger) {
	element.Query(content, func(img element.Img) element.WalkResult {
		if strings.TrimSpace(img.Alt) == "" {
			log.WithField("src", img.Src.String()).Warn("image has no alt text")
		}
		return element.WalkContinue
	})
}

func text(s string) element.Contents {
	return element.Contents{Content: element.Wrap(element.Text(s))}
}
