/*
Package tdewolffadapter creates cssom stylesheets with the streaming CSS
parser of github.com/tdewolff/parse.

In contrast to package douceuradapter, which wraps a parsed stylesheet, this
adapter tokenizes CSS text once and keeps the text of selectors and
declaration blocks in memory (see cssom.Sheet). Blocks of at-rules,
including nested style rules of @media and @supports, are skipped.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tdewolffadapter

import (
	"bytes"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"github.com/npillmayer/csskit/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'csskit.adapter'.
func tracer() tracing.Trace {
	return tracing.Select("csskit.adapter")
}

// Parse tokenizes CSS text and collects its style rules into a stylesheet
// of type "text/css". Parse errors end the sheet at the position of the
// error.
func Parse(data []byte, href string) *cssom.Sheet {
	return ParseReader(bytes.NewReader(data), href)
}

// ParseReader is like Parse, but reads the CSS text from r.
func ParseReader(r io.Reader, href string) *cssom.Sheet {
	sheet := cssom.NewSheet("text/css", href)
	input := parse.NewInput(r)
	parser := css.NewParser(input, false)
	for {
		gt, _, data := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && err != io.EOF {
				tracer().Errorf("CSS parse error: %v", err)
			}
			return sheet
		case css.BeginAtRuleGrammar:
			tracer().Debugf("skipping block of %s", string(data))
			skipBlock(parser)
		case css.AtRuleGrammar:
			tracer().Debugf("skipping %s", string(data))
		case css.BeginRulesetGrammar:
			selector := selectorText(data, parser.Values())
			decls, ok := declarations(parser)
			sheet.Append(cssom.NewRule(selector, decls))
			if !ok {
				return sheet
			}
		case css.QualifiedRuleGrammar:
			// a selector without a block
			tracer().Debugf("skipping qualified rule without block")
		}
	}
}

// selectorText assembles the selector list from the grammar's data and
// values. The opening brace is not part of the selector.
//
// The tokenizer drops whitespace around commas and combinators, so these are
// written as ", " and " > " (" + ", " ~ ") again.
func selectorText(data []byte, values []css.Token) string {
	var buf []byte
	if !bytes.Equal(data, []byte{'{'}) {
		buf = append(buf, data...)
	}
	for _, v := range values {
		switch {
		case v.TokenType == css.WhitespaceToken:
			if n := len(buf); n > 0 && buf[n-1] != ' ' && buf[n-1] != '(' {
				buf = append(buf, ' ')
			}
		case v.TokenType == css.CommaToken:
			buf = append(bytes.TrimRight(buf, " "), ',', ' ')
		case v.TokenType == css.DelimToken && isCombinator(v.Data):
			buf = bytes.TrimRight(buf, " ")
			if n := len(buf); n > 0 && buf[n-1] != '(' {
				buf = append(buf, ' ')
			}
			buf = append(buf, v.Data[0], ' ')
		case v.TokenType == css.RightParenthesisToken:
			buf = append(bytes.TrimRight(buf, " "), ')')
		default:
			buf = append(buf, v.Data...)
		}
	}
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(string(buf)), "{"))
}

func isCombinator(data []byte) bool {
	return len(data) == 1 && (data[0] == '>' || data[0] == '+' || data[0] == '~')
}

// declarations reads a declaration block up to the end of the ruleset and
// renders it as "name: value;" parts, separated by spaces. It returns false
// if the input ended before the block was closed.
func declarations(parser *css.Parser) (string, bool) {
	var parts []string
	for {
		gt, _, data := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return strings.Join(parts, " "), false
		case css.EndRulesetGrammar:
			return strings.Join(parts, " "), true
		case css.DeclarationGrammar:
			name := strings.ToLower(string(data))
			parts = append(parts, name+": "+valueText(parser.Values())+";")
		case css.CustomPropertyGrammar:
			parts = append(parts, string(data)+": "+valueText(parser.Values())+";")
		case css.BeginRulesetGrammar, css.BeginAtRuleGrammar:
			// nested rules are not part of the declaration block
			skipBlock(parser)
		}
	}
}

// valueText joins value tokens, collapsing runs of whitespace into a single
// space.
func valueText(tokens []css.Token) string {
	var b strings.Builder
	space := false
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken {
			space = b.Len() > 0
			continue
		}
		if space {
			b.WriteByte(' ')
			space = false
		}
		b.Write(t.Data)
	}
	return strings.TrimSpace(b.String())
}

// skipBlock skips tokens until the end of the block just opened.
func skipBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}
