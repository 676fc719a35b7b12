package style

import (
	"strings"

	"github.com/elliotchance/orderedmap/v3"
	"github.com/npillmayer/cssdecl/maybe"
)

// Declaration is a CSS declaration block: a set of validated longhand
// properties, together with shorthand-aware accessors. It backs inline
// style attributes as well as the declaration blocks of style rules.
//
// Properties are kept in insertion order, which is the order of
// serialization. Overwriting a property keeps its position; removing and
// re-adding it moves it to the end.
//
// A Declaration is not safe for concurrent use. Clients sharing a
// declaration between goroutines have to serialize access.
//
// The zero value is an empty declaration with default options.
type Declaration struct {
	opts  Options
	store *orderedmap.OrderedMap[string, StoredValue]
}

// NewDeclaration creates a declaration block from a declaration list, e.g.
//
//	NewDeclaration("color: red; margin: 1px 2px !important")
//
// Malformed declarations and values not admitted by their properties'
// grammars are dropped silently. cssText may be empty.
func NewDeclaration(cssText string, opts ...Option) *Declaration {
	d := &Declaration{
		opts:  makeOptions(opts),
		store: orderedmap.NewOrderedMap[string, StoredValue](),
	}
	d.load(cssText)
	return d
}

func (d *Declaration) props() *orderedmap.OrderedMap[string, StoredValue] {
	if d.store == nil {
		d.store = orderedmap.NewOrderedMap[string, StoredValue]()
	}
	return d.store
}

func (d *Declaration) load(cssText string) {
	for _, r := range ParseDeclarations(cssText, d.opts) {
		var decl Declared
		var err error
		switch m := r.Match(); m {
		case m.Ok(&decl):
			d.Set(decl.Name, decl.Value, decl.Important)
		case m.Err(&err):
			tracer().Debugf("dropping declaration: %v", err)
		}
	}
}

// Options returns the options d has been created with.
func (d *Declaration) Options() Options {
	return d.opts
}

// Lookup returns the stored value of a longhand property, if present.
// Shorthand names are never stored; use Get to read them.
func (d *Declaration) Lookup(name string) maybe.Maybe[StoredValue] {
	return maybe.From(d.props().Get(canonicalName(name)))
}

func (d *Declaration) value(longhand string) (string, bool) {
	sv, ok := d.props().Get(longhand)
	return sv.Value, ok
}

func (d *Declaration) put(longhand, value string, important bool) {
	d.props().Set(longhand, StoredValue{Name: longhand, Value: value, Important: important})
}

// Remove deletes a property. For a shorthand, every longhand it controls is
// deleted. Removing an absent property is a no-op.
func (d *Declaration) Remove(name string) {
	name = canonicalName(name)
	if longhands, ok := Longhands(name); ok {
		for _, l := range longhands {
			d.props().Delete(l)
		}
		return
	}
	d.props().Delete(name)
}

// Serialize recomposes the declaration block as text, e.g.
//
//	"color: red;margin-top: 0 !important;"
//
// Declarations are in insertion order, without separators between them.
func (d *Declaration) Serialize() string {
	var b strings.Builder
	for _, sv := range d.props().AllFromFront() {
		b.WriteString(sv.String())
	}
	return b.String()
}

// CSSText is an alias for Serialize.
func (d *Declaration) CSSText() string {
	return d.Serialize()
}

// SetCSSText replaces the complete declaration block by the declarations
// in cssText.
func (d *Declaration) SetCSSText(cssText string) {
	d.store = orderedmap.NewOrderedMap[string, StoredValue]()
	d.load(cssText)
}

// Len returns the number of longhand properties set.
func (d *Declaration) Len() int {
	return d.props().Len()
}

// Item returns the name of the i-th longhand property, or "" if i is out
// of range.
func (d *Declaration) Item(i int) string {
	if i < 0 || i >= d.Len() {
		return ""
	}
	for name := range d.props().Keys() {
		if i == 0 {
			return name
		}
		i--
	}
	return ""
}

// Names returns the names of all longhand properties set, in serialization
// order.
func (d *Declaration) Names() []string {
	names := make([]string, 0, d.Len())
	for name := range d.props().Keys() {
		names = append(names, name)
	}
	return names
}

// IsImportant is a predicate for properties flagged with !important.
// A shorthand is important if all of its longhands are set and important.
func (d *Declaration) IsImportant(name string) bool {
	name = canonicalName(name)
	longhands, ok := Longhands(name)
	if !ok {
		longhands = []string{name}
	}
	for _, l := range longhands {
		sv, ok := d.props().Get(l)
		if !ok || !sv.Important {
			return false
		}
	}
	return true
}

// Priority returns "important" for important properties and "" otherwise.
func (d *Declaration) Priority(name string) string {
	if d.IsImportant(name) {
		return "important"
	}
	return ""
}

// Clone returns a deep copy of d.
func (d *Declaration) Clone() *Declaration {
	return &Declaration{
		opts:  d.opts,
		store: d.props().Copy(),
	}
}

// Values returns the stored values, in serialization order.
func (d *Declaration) Values() []StoredValue {
	values := make([]StoredValue, 0, d.Len())
	for _, sv := range d.props().AllFromFront() {
		values = append(values, sv)
	}
	return values
}
