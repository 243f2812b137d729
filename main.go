package main

import (
	"bufio"
	"flag"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/heathj/htmltags/dom"
	"github.com/heathj/htmltags/markdown"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		logrus.WithError(err).Error("htmltags failed")
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := parseConfig(args, stderr)
	if err == flag.ErrHelp {
		return nil
	}
	if err != nil {
		return err
	}

	log := logrus.New()
	log.SetOutput(stderr)
	if cfg.debug {
		log.SetLevel(logrus.DebugLevel)
	}
	entry := log.WithField("input", inputName(cfg))

	src, err := readInput(cfg, stdin)
	if err != nil {
		return err
	}
	entry.Debugf("read %d bytes", len(src))

	opts := []markdown.Option{markdown.WithLogger(entry)}
	if !cfg.gfm {
		opts = append(opts, markdown.WithoutGFM())
	}
	if !cfg.rawHTML {
		opts = append(opts, markdown.WithoutRawHTML())
	}
	res, err := markdown.New(opts...).Convert(src)
	if err != nil {
		return errors.Wrap(err, "converting markdown")
	}
	entry.Debugf("converted %d top level nodes, %d headings", len(res.Content), len(res.TableOfContents))

	b := dom.NewBuilder(dom.WithLogger(entry))
	root := page(cfg, res, entry)

	w := bufio.NewWriter(stdout)
	if cfg.tree {
		doc, err := b.Document(root)
		if err != nil {
			return errors.Wrap(err, "building document")
		}
		if _, err := io.WriteString(w, dom.Dump(doc)+"\n"); err != nil {
			return err
		}
	} else {
		if err := b.RenderDocument(w, root); err != nil {
			return errors.Wrap(err, "rendering document")
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return w.Flush()
}

func readInput(cfg htmltagsConfig, stdin io.Reader) ([]byte, error) {
	if cfg.input == "" {
		src, err := io.ReadAll(stdin)
		return src, errors.Wrap(err, "reading stdin")
	}
	src, err := os.ReadFile(cfg.input)
	return src, errors.Wrapf(err, "reading %s", cfg.input)
}

func inputName(cfg htmltagsConfig) string {
	if cfg.input == "" {
		return "<stdin>"
	}
	return cfg.input
}
