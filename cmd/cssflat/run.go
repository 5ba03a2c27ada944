package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"github.com/npillmayer/csskit"
	"github.com/npillmayer/csskit/dom"
	"github.com/npillmayer/csskit/dom/domdbg"
	"github.com/npillmayer/csskit/dom/style/cssom"
	"github.com/npillmayer/csskit/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/csskit/dom/style/cssom/tdewolffadapter"
)

// loadSheets reads the stylesheets of a file. HTML files contribute their
// <style> elements, merged into one stylesheet if cfg.Merge is set. Any
// other file is read as a single stylesheet.
func loadSheets(path string, cfg *Config) (cssom.Sheets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read stylesheet: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		doc, err := html.Parse(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("unable to parse HTML document %s: %w", path, err)
		}
		if !cfg.Merge {
			return douceuradapter.StyleSheets(doc), nil
		}
		if merged := douceuradapter.MergedStyleSheet(doc); merged != nil {
			return cssom.Sheets{merged}, nil
		}
		return cssom.Sheets{}, nil
	}
	if cfg.Parser == "tdewolff" {
		return cssom.Sheets{tdewolffadapter.Parse(data, path)}, nil
	}
	sheet, err := douceuradapter.Parse(string(data), douceuradapter.WithHref(path))
	if err != nil {
		return nil, fmt.Errorf("unable to parse stylesheet %s: %w", path, err)
	}
	return cssom.Sheets{sheet}, nil
}

func serialize(w io.Writer, path string, index int, cfg *Config) error {
	sheets, err := loadSheets(path, cfg)
	if err != nil {
		return err
	}
	flat := csskit.New(sheets).Serialize(index, cfg.Format)
	if flat == nil {
		return fmt.Errorf("no stylesheet at index %d in %s (%d sheets)", index, path, sheets.Len())
	}
	switch cfg.Output {
	case "tree":
		_, err = io.WriteString(w, domdbg.Tree(flat))
	case "dot":
		err = domdbg.ToGraphViz(flat, w)
	default:
		_, err = fmt.Fprintln(w, flat.String())
	}
	return err
}

func listSheets(w io.Writer, path string, cfg *Config) error {
	sheets, err := loadSheets(path, cfg)
	if err != nil {
		return err
	}
	for i, s := range sheets {
		href := s.Href()
		if href == "" {
			href = "-"
		}
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\t%d rules\n", i, s.Type(), href, len(s.Rules())); err != nil {
			return err
		}
	}
	return nil
}

// match reports the elements of an HTML document matched by the flattened
// selectors of one of its stylesheets.
func match(w io.Writer, path string, index int, unusedOnly bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read document: %w", err)
	}
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("unable to parse HTML document %s: %w", path, err)
	}
	sheets := douceuradapter.StyleSheets(doc)
	flat := csskit.New(sheets).Serialize(index, false)
	if flat == nil {
		return fmt.Errorf("no stylesheet at index %d in %s (%d sheets)", index, path, sheets.Len())
	}
	for _, m := range dom.MatchSelectors(flat, doc) {
		switch {
		case m.Err != nil:
			if !unusedOnly {
				_, err = fmt.Fprintf(w, "%s\t(unsupported: %v)\n", m.Selector(), m.Err)
			}
		case unusedOnly && len(m.Elements) > 0:
		default:
			_, err = fmt.Fprintf(w, "%s\t%d\n", m.Selector(), len(m.Elements))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func escape(w io.Writer, texts []string) error {
	ns := csskit.New(nil)
	for _, t := range texts {
		if _, err := fmt.Fprintln(w, ns.Escape(t)); err != nil {
			return err
		}
	}
	return nil
}

func convert(w io.Writer, value, unit, target string) error {
	ns := csskit.New(nil)
	d, err := ns.Unit(unit, value)
	if err != nil {
		return err
	}
	out := "null"
	if c := ns.Convert(d, target); c.IsJust() {
		out = c.WithDefault(d).String()
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
