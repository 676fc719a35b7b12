package style

import (
	"strings"

	"github.com/npillmayer/cssdecl/css"
	"github.com/npillmayer/cssdecl/maybe"
)

// Get returns the value of a property. For shorthands the value is
// reconstructed from the longhands; if they do not compose to a shorthand
// value (e.g., border sides with different colors), the result is "".
// Get returns "" for properties not set as well.
func (d *Declaration) Get(name string) string {
	name = canonicalName(name)
	sh, ok := shorthands[name]
	if !ok {
		v, _ := d.value(name)
		return v
	}
	switch sh.compose {
	case uniformGroup:
		if _, ok := d.value(sh.longhands[0]); !ok {
			return ""
		}
		values := make([]string, 0, len(sh.longhands))
		for _, l := range sh.longhands {
			v, _ := d.value(l)
			values = append(values, v)
		}
		return strings.Join(strings.Fields(strings.Join(values, " ")), " ")
	case allEqual:
		top, ok := d.values(sh.longhands[:3])
		if !ok {
			return ""
		}
		for i := 3; i < len(sh.longhands); i += 3 {
			side, ok := d.values(sh.longhands[i : i+3])
			if !ok {
				return ""
			}
			for j := range side {
				if side[j] != top[j] {
					return ""
				}
			}
		}
		return strings.Join(top, " ")
	case sideTriple, triple:
		values, ok := d.values(sh.longhands)
		if !ok {
			return ""
		}
		return strings.Join(values, " ")
	}
	return ""
}

// values collects the values of a list of longhands. ok is false if any of
// them is not set.
func (d *Declaration) values(longhands []string) ([]string, bool) {
	values := make([]string, len(longhands))
	for i, l := range longhands {
		v, ok := d.value(l)
		if !ok {
			return nil, false
		}
		values[i] = v
	}
	return values, true
}

// Set sets a property. Values are validated against the grammar of the
// property; values not admitted are ignored and leave d unchanged.
//
// Setting a shorthand sets every longhand which the shorthand value
// mentions. Longhands it omits keep their previous value, unless d has been
// created with option ResetOmitted.
func (d *Declaration) Set(name string, value string, important bool) {
	name = canonicalName(name)
	if name == "" {
		return
	}
	sh, ok := shorthands[name]
	if !ok {
		v, ok := validatorFor(name)(value).Get()
		if !ok {
			tracer().Debugf("value %q not admitted for %s", value, name)
			return
		}
		d.put(name, v, important)
		return
	}
	assignment, ok := sh.resolve(value)
	if !ok {
		tracer().Debugf("value %q not admitted for shorthand %s", value, name)
		return
	}
	for i, l := range sh.longhands {
		var v string
		switch m := assignment[i].Match(); m {
		case m.Just(&v):
			d.put(l, v, important)
		case m.Nothing():
			if d.opts.ResetOmitted {
				if v, ok := InitialValue(l).Get(); ok {
					d.put(l, v, important)
				}
			}
		}
	}
}

// resolve distributes a shorthand value over the longhands of sh. The
// result has one entry per longhand; Nothing marks a longhand the value
// does not mention. ok is false if the value as a whole is not admitted.
func (sh shorthand) resolve(value string) ([]maybe.Maybe[string], bool) {
	if sh.kind == flexTriple {
		if kw, ok := flexKeywords[strings.ToLower(strings.TrimSpace(value))]; ok {
			return justAll(kw), true
		}
	}
	if g, ok := css.GlobalKeyword(value).Get(); ok {
		return justAll(repeat(g, len(sh.longhands))), true
	}
	switch sh.kind {
	case fanOut:
		v, ok := grammarFor(sh.longhands[0])(value).Get()
		if !ok {
			return nil, false
		}
		return justAll(repeat(v, len(sh.longhands))), true
	case fourSided:
		return sh.resolveFourSided(value)
	case borderAll:
		triple, ok := distribute(css.Tokenize(value), borderSlots("top"), false)
		if !ok {
			return nil, false
		}
		assignment := make([]maybe.Maybe[string], 0, len(sh.longhands))
		for range fourDirs {
			assignment = append(assignment, triple...)
		}
		return assignment, true
	case borderSide:
		return distribute(css.Tokenize(value), slotsFor(sh.longhands), false)
	case flexTriple:
		return distribute(css.Tokenize(value), slotsFor(sh.longhands), true)
	case background:
		return distribute(css.Tokenize(value), slotsFor(sh.longhands), false)
	}
	return nil, false
}

// resolveFourSided implements the 1-4 value rule for box sides and
// corners. Every component has to be admitted.
func (sh shorthand) resolveFourSided(value string) ([]maybe.Maybe[string], bool) {
	kvs, err := SplitCompoundProperty(sh.name, value)
	if err != nil {
		tracer().Debugf("%v", err)
		return nil, false
	}
	assignment := make([]maybe.Maybe[string], len(kvs))
	for i, kv := range kvs {
		assignment[i] = maybe.Just(kv.Value)
	}
	return assignment, true
}

// flexKeywords are the single keyword values of 'flex'.
var flexKeywords = map[string][]string{
	"none":    {"0", "0", "auto"},
	"auto":    {"1", "1", "auto"},
	"initial": {"0", "1", "auto"},
}

// slot is a component of a compound shorthand. It may take up to capacity
// tokens.
type slot struct {
	longhand string
	grammar  css.Validator
	capacity int
}

func slotsFor(longhands []string) []slot {
	slots := make([]slot, len(longhands))
	for i, l := range longhands {
		slots[i] = slot{longhand: l, grammar: grammarFor(l), capacity: 1}
		if l == "background-position" {
			slots[i].capacity = 2
		}
	}
	return slots
}

func borderSlots(side string) []slot {
	return slotsFor(borderOf(side))
}

// distribute assigns each token to the first slot which admits it. With
// ordered set, a token may only go to the current slot or a later one, so
// components have to appear in slot order. A token no slot admits rejects
// the complete value.
func distribute(tokens []string, slots []slot, ordered bool) ([]maybe.Maybe[string], bool) {
	if len(tokens) == 0 {
		return nil, false
	}
	parts := make([][]string, len(slots))
	cur := 0
	for _, t := range tokens {
		placed := false
		for i := cur; i < len(slots) && !placed; i++ {
			if len(parts[i]) >= slots[i].capacity {
				continue
			}
			if len(parts[i]) > 0 && ordered {
				continue
			}
			if v, ok := slots[i].grammar(t).Get(); ok {
				parts[i] = append(parts[i], v)
				placed = true
				if ordered {
					cur = i + 1
				}
			}
		}
		if !placed {
			return nil, false
		}
	}
	assignment := make([]maybe.Maybe[string], len(slots))
	for i, s := range slots {
		if len(parts[i]) == 0 {
			assignment[i] = maybe.Nothing[string]()
			continue
		}
		v, ok := s.grammar(strings.Join(parts[i], " ")).Get()
		if !ok {
			return nil, false
		}
		assignment[i] = maybe.Just(v)
	}
	return assignment, true
}

func justAll(values []string) []maybe.Maybe[string] {
	r := make([]maybe.Maybe[string], len(values))
	for i, v := range values {
		r[i] = maybe.Just(v)
	}
	return r
}

func repeat(s string, n int) []string {
	r := make([]string, n)
	for i := range r {
		r[i] = s
	}
	return r
}
