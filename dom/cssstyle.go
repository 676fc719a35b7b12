package dom

import (
	"strings"

	"github.com/npillmayer/cssdecl/dom/style"
	"github.com/npillmayer/cssdecl/dom/w3cdom"
)

// CSSStyle is an adapter for interface w3cdom.CSSStyleDeclaration.
// It exposes a style.Declaration through CSSOM-style accessors and
// optionally reports every mutation to its owner.
type CSSStyle struct {
	decl    *style.Declaration
	changed func(cssText string)
}

// NewCSSStyle wraps a declaration block. decl must not be nil.
func NewCSSStyle(decl *style.Declaration) *CSSStyle {
	return &CSSStyle{decl: decl}
}

// Declaration returns the underlying declaration block.
func (s *CSSStyle) Declaration() *style.Declaration {
	return s.decl
}

func (s *CSSStyle) notify() {
	if s.changed != nil {
		s.changed(s.decl.Serialize())
	}
}

// GetPropertyValue returns the value of a property, or "".
//
// Interface w3cdom.CSSStyleDeclaration
func (s *CSSStyle) GetPropertyValue(name string) string {
	return s.decl.Get(name)
}

// GetPropertyPriority returns "important" for important properties.
//
// Interface w3cdom.CSSStyleDeclaration
func (s *CSSStyle) GetPropertyPriority(name string) string {
	return s.decl.Priority(name)
}

// SetProperty sets a property. An empty value removes the property.
// Priority is either "important" or "".
//
// Interface w3cdom.CSSStyleDeclaration
func (s *CSSStyle) SetProperty(name, value, priority string) {
	if strings.TrimSpace(value) == "" {
		s.RemoveProperty(name)
		return
	}
	s.decl.Set(name, value, strings.EqualFold(priority, "important"))
	s.notify()
}

// RemoveProperty removes a property and returns its previous value.
//
// Interface w3cdom.CSSStyleDeclaration
func (s *CSSStyle) RemoveProperty(name string) string {
	old := s.decl.Get(name)
	s.decl.Remove(name)
	s.notify()
	return old
}

// CSSText returns the serialized declaration block.
//
// Interface w3cdom.CSSStyleDeclaration
func (s *CSSStyle) CSSText() string {
	return s.decl.Serialize()
}

// SetCSSText replaces the declaration block.
//
// Interface w3cdom.CSSStyleDeclaration
func (s *CSSStyle) SetCSSText(cssText string) {
	s.decl.SetCSSText(cssText)
	s.notify()
}

// Length returns the number of longhand properties set.
//
// Interface w3cdom.CSSStyleDeclaration
func (s *CSSStyle) Length() int {
	return s.decl.Len()
}

// Item returns the name of the i-th longhand property.
//
// Interface w3cdom.CSSStyleDeclaration
func (s *CSSStyle) Item(i int) string {
	return s.decl.Item(i)
}

var _ w3cdom.CSSStyleDeclaration = &CSSStyle{}
