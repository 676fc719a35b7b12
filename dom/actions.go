package dom

import (
	"github.com/npillmayer/cssdecl/dom/style"
	"golang.org/x/net/html"
)

// NodeHasInlineStyle is a predicate to match elements with a style
// attribute. It is intended to be used with Walk.
var NodeHasInlineStyle = func(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	_, ok := attr(n, "style")
	return ok
}

// Walk visits the tree rooted at n in document order and collects every
// node matching pred.
func Walk(n *html.Node, pred func(*html.Node) bool) []*html.Node {
	var matches []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if pred(n) {
			matches = append(matches, n)
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	if n != nil {
		walk(n)
	}
	return matches
}

// NormalizeInlineStyles rewrites every style attribute in the tree rooted
// at doc to its canonical form. Declarations which are not admitted are
// dropped, and an attribute which turns out empty is removed. It returns
// the elements visited.
func NormalizeInlineStyles(doc *html.Node, opts ...style.Option) []*Element {
	nodes := Walk(doc, NodeHasInlineStyle)
	elements := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		e, err := InlineStyle(n, opts...)
		if err != nil {
			tracer().Errorf("cannot normalize style of <%s>: %v", n.Data, err)
			continue
		}
		e.Sync()
		tracer().Debugf("<%s style=%q>", n.Data, e.style.CSSText())
		elements = append(elements, e)
	}
	return elements
}
