/*
Package w3cdom defines interface types for the CSS Object Model, as far as
declaration blocks are concerned.

See also https://www.w3.org/TR/cssom-1/#the-cssstyledeclaration-interface

Status

Early draft—API may change frequently. Please stay patient.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package w3cdom

// CSSStyleDeclaration represents a W3C-type CSSStyleDeclaration, i.e. a
// CSS declaration block.
type CSSStyleDeclaration interface {
	GetPropertyValue(string) string           // value of a longhand or shorthand property
	GetPropertyPriority(string) string        // "important" or ""
	SetProperty(name, value, priority string) // set a property; empty value removes it
	RemoveProperty(string) string             // remove a property, returning its old value
	CSSText() string                          // serialized declaration block
	SetCSSText(string)                        // replace the declaration block
	Length() int                              // number of longhand properties
	Item(int) string                          // name of the i-th longhand property
}

// ElementCSSInlineStyle represents an element with a style attribute.
type ElementCSSInlineStyle interface {
	Style() CSSStyleDeclaration
}

// CSSStyleRule represents a W3C-type CSSStyleRule.
type CSSStyleRule interface {
	SelectorText() string
	Style() CSSStyleDeclaration
}
