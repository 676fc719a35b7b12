package dom

import (
	"fmt"

	"github.com/npillmayer/cssdecl/dom/style"
	"github.com/npillmayer/cssdecl/dom/w3cdom"
	"golang.org/x/net/html"
)

// Element is an adapter for interface w3cdom.ElementCSSInlineStyle.
type Element struct {
	node  *html.Node
	style *CSSStyle
}

// InlineStyle wraps an HTML element node. The element's style attribute,
// if any, is parsed into a declaration block. Mutations of the block are
// written back to the attribute: the attribute holds the serialized
// block, or is removed if the block gets empty.
func InlineStyle(n *html.Node, opts ...style.Option) (*Element, error) {
	if n == nil || n.Type != html.ElementNode {
		return nil, fmt.Errorf("inline style needs an element node")
	}
	text, _ := attr(n, "style")
	e := &Element{node: n}
	e.style = NewCSSStyle(style.NewDeclaration(text, opts...))
	e.style.changed = e.writeBack
	return e, nil
}

// Style returns the inline style of the element.
//
// Interface w3cdom.ElementCSSInlineStyle
func (e *Element) Style() w3cdom.CSSStyleDeclaration {
	return e.style
}

// Declaration returns the declaration block of the style attribute.
// Mutations of the block itself are not written back; use Style for that,
// or call Sync.
func (e *Element) Declaration() *style.Declaration {
	return e.style.Declaration()
}

// Sync writes the declaration block to the style attribute.
func (e *Element) Sync() {
	e.writeBack(e.style.CSSText())
}

// Node returns the wrapped HTML node.
func (e *Element) Node() *html.Node {
	return e.node
}

func (e *Element) writeBack(cssText string) {
	if cssText == "" {
		removeAttr(e.node, "style")
		return
	}
	setAttr(e.node, "style", cssText)
}

var _ w3cdom.ElementCSSInlineStyle = &Element{}

// --- Attributes ------------------------------------------------------------

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttr(n *html.Node, key string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}
