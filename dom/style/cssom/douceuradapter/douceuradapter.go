/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/cssdecl/dom"
	"github.com/npillmayer/cssdecl/dom/style"
	"github.com/npillmayer/cssdecl/dom/style/cssom"
	"github.com/npillmayer/cssdecl/dom/w3cdom"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'cssdecl.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("cssdecl.cssom")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
type CSSStyles struct {
	rules []*Rule
	media string
}

// Wrap a douceur.css.Stylesheet into CSSStyles. Style rules nested in
// at-rules (e.g., @media) are included; other at-rules are skipped.
// The declaration blocks of the rules are validated and their shorthands
// expanded, as configured by opts.
func Wrap(sheet *css.Stylesheet, opts ...style.Option) *CSSStyles {
	styles := &CSSStyles{}
	if sheet != nil {
		styles.wrapRules(sheet.Rules, opts)
	}
	return styles
}

func (sheet *CSSStyles) wrapRules(rules []*css.Rule, opts []style.Option) {
	for _, r := range rules {
		switch r.Kind {
		case css.QualifiedRule:
			sheet.rules = append(sheet.rules, newRule(r, opts))
		case css.AtRule:
			if r.EmbedsRules() {
				sheet.wrapRules(r.Rules, opts)
			} else {
				tracer().Debugf("skipping at-rule %s", r.Name)
			}
		}
	}
}

// Parse parses a stylesheet.
func Parse(text string, opts ...style.Option) (*CSSStyles, error) {
	sheet, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing stylesheet: %w", err)
	}
	return Wrap(sheet, opts...), nil
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	for _, r := range other.Rules() {
		if rule, ok := r.(*Rule); ok {
			sheet.rules = append(sheet.rules, rule)
		}
	}
}

// Rules returns all the rules of a stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, len(sheet.rules))
	for i, r := range sheet.rules {
		rules[i] = r
	}
	return rules
}

// Media returns the media query of the stylesheet, or "".
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Media() string {
	return sheet.media
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule struct {
	selector string
	decl     *style.Declaration
}

func newRule(r *css.Rule, opts []style.Option) *Rule {
	decl := style.NewDeclaration("", opts...)
	for _, d := range r.Declarations {
		decl.Set(d.Property, d.Value, d.Important)
	}
	return &Rule{selector: r.Prelude, decl: decl}
}

// SelectorText returns the prelude / selectors of the rule.
//
// Interface w3cdom.CSSStyleRule
func (r *Rule) SelectorText() string {
	return r.selector
}

// Style returns the declaration block of the rule.
//
// Interface w3cdom.CSSStyleRule
func (r *Rule) Style() w3cdom.CSSStyleDeclaration {
	return dom.NewCSSStyle(r.decl)
}

// Declaration returns the validated declaration block of the rule.
func (r *Rule) Declaration() *style.Declaration {
	return r.decl
}

// Properties returns the longhand property keys of a rule,
// e.g. "margin-top"
func (r *Rule) Properties() []string {
	return r.decl.Names()
}

// Value returns the property value for a given key with this rule, e.g. "15px".
// Shorthand keys are reconstructed from their longhands.
func (r *Rule) Value(key string) string {
	return r.decl.Get(key)
}

// IsImportant returns true if a style key is marked as important ("!").
func (r *Rule) IsImportant(key string) bool {
	return r.decl.IsImportant(key)
}

var _ cssom.Rule = &Rule{}

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s. It returns the content of
// style-elements as style sheets. Style elements with attribute 'disabled'
// or with a type other than text/css are skipped; attribute 'media' is
// reported by the stylesheet.
func ExtractStyleElements(htmldoc *html.Node, opts ...style.Option) ([]*CSSStyles, error) {
	head := findElement(atom.Head, htmldoc)
	body := findElement(atom.Body, htmldoc)
	sheets, err := extractStyles(head, opts)
	if err != nil {
		return sheets, err
	}
	more, err := extractStyles(body, opts)
	return append(sheets, more...), err
}

func extractStyles(h *html.Node, opts []style.Option) ([]*CSSStyles, error) {
	var sheets []*CSSStyles
	if h == nil {
		return sheets, nil
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type != html.ElementNode || ch.DataAtom != atom.Style {
			continue
		}
		if _, disabled := attr(ch, "disabled"); disabled {
			tracer().Debugf("skipping disabled <style>")
			continue
		}
		if t, ok := attr(ch, "type"); ok && t != "" && !strings.EqualFold(t, "text/css") {
			tracer().Debugf("skipping <style type=%q>", t)
			continue
		}
		sheet, err := Parse(textContent(ch), opts...)
		if err != nil {
			return sheets, err
		}
		sheet.media, _ = attr(ch, "media")
		sheets = append(sheets, sheet)
	}
	return sheets, nil
}

func textContent(n *html.Node) string {
	var b strings.Builder
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.TextNode {
			b.WriteString(ch.Data)
		}
	}
	return b.String()
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	ch := h.FirstChild
	for ch != nil {
		r := findElement(a, ch)
		if r != nil && r.DataAtom == a {
			return r
		}
		ch = ch.NextSibling
	}
	return nil
}
