package main

import (
	"flag"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/text/language"

	"github.com/heathj/htmltags/attribute"
)

type htmltagsConfig struct {
	debug   bool
	title   string
	lang    language.Tag
	charset attribute.Charset
	tree    bool
	toc     bool
	csp     bool
	gfm     bool
	rawHTML bool
	input   string
}

func parseConfig(args []string, stderr io.Writer) (htmltagsConfig, error) {
	var (
		cfg     htmltagsConfig
		lang    string
		charset string
		noGFM   bool
		noRaw   bool
	)
	fs := flag.NewFlagSet("htmltags", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		io.WriteString(stderr, "usage: htmltags [flags] [file.md]\n\nConverts markdown to an HTML page. Reads stdin when no file is given.\n\n")
		fs.PrintDefaults()
	}
	fs.BoolVar(&cfg.debug, "debug", false, "log at debug level")
	fs.StringVar(&cfg.title, "title", "", "page title (default: first level 1 heading)")
	fs.StringVar(&lang, "lang", "en", "BCP 47 language of the page")
	fs.StringVar(&charset, "charset", "utf-8", "declared character encoding")
	fs.BoolVar(&cfg.tree, "tree", false, "print the document tree instead of HTML")
	fs.BoolVar(&cfg.toc, "toc", false, "add a table of contents")
	fs.BoolVar(&cfg.csp, "csp", false, "add a Content-Security-Policy with a style nonce")
	fs.BoolVar(&noGFM, "no-gfm", false, "plain CommonMark, no GitHub extensions")
	fs.BoolVar(&noRaw, "no-raw-html", false, "drop raw HTML instead of copying it to the page")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	tag, err := language.Parse(lang)
	if err != nil {
		return cfg, errors.Wrapf(err, "invalid -lang %q", lang)
	}
	cfg.lang = tag
	cfg.charset = attribute.NewCharset(charset)
	cfg.gfm = !noGFM
	cfg.rawHTML = !noRaw

	switch fs.NArg() {
	case 0:
	case 1:
		cfg.input = fs.Arg(0)
	default:
		return cfg, errors.Errorf("expected at most one input file, got %d", fs.NArg())
	}
	return cfg, nil
}
