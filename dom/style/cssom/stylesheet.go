package cssom

import (
	"github.com/npillmayer/cssdecl/dom/style"
	"github.com/npillmayer/cssdecl/dom/w3cdom"
)

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// Clients will have to provide a concrete implementation of this interface
// (e.g., see package douceuradapter), which parses rules into style rules
// with validated declaration blocks.
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the style rules of a stylesheet
	Media() string          // media query the stylesheet applies to, or ""
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	w3cdom.CSSStyleRule
	Properties() []string            // longhand property keys, e.g. "margin-top"
	Value(string) string             // property value for key, e.g. "15px"
	IsImportant(string) bool         // is property key marked as important?
	Declaration() *style.Declaration // the rule's declaration block
}
