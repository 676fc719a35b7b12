package css

import (
	"strconv"
	"strings"

	"github.com/npillmayer/cssdecl/maybe"
	"github.com/tdewolff/parse/v2/css"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenZero     uint32 = 0x0003 // unitless 0
	kindMask      uint32 = 0x000f

	dimenNegative uint32 = 0x0010

	dimenEM      uint32 = 0x0100
	dimenEX      uint32 = 0x0200
	dimenCH      uint32 = 0x0300
	dimenREM     uint32 = 0x0400
	dimenVW      uint32 = 0x0500
	dimenVH      uint32 = 0x0600
	dimenVMIN    uint32 = 0x0700
	dimenVMAX    uint32 = 0x0800
	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

var unitFlags = map[string]uint32{
	"px":   dimenAbsolute,
	"cm":   dimenAbsolute,
	"mm":   dimenAbsolute,
	"q":    dimenAbsolute,
	"in":   dimenAbsolute,
	"pt":   dimenAbsolute,
	"pc":   dimenAbsolute,
	"em":   dimenEM,
	"ex":   dimenEX,
	"ch":   dimenCH,
	"rem":  dimenREM,
	"vw":   dimenVW,
	"vh":   dimenVH,
	"vmin": dimenVMIN,
	"vmax": dimenVMAX,
	"%":    dimenPercent,
}

// DimenT is an option type for CSS dimensions, i.e. a number together with
// a unit, or one of the keywords a dimension may take.
// The number is kept in canonical textual form; no arithmetic is performed.
type DimenT struct {
	number string
	unit   string
	flags  uint32
}

/*
type DimenT
	= Auto
	| Zero
	| Absolute number unit
	| Percentage number
	| FontRel number unit
	| ViewRel number unit
*/

// Auto creates the CSS dimension `auto`.
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// Zero creates a unitless zero.
func Zero() DimenT {
	return DimenT{number: "0", flags: dimenZero}
}

// ParseDimen parses a CSS dimension. Accepted are the keyword `auto`,
// unitless 0, and a (signed) number followed by one of the units
// px, cm, mm, q, in, pt, pc, em, ex, ch, rem, vw, vh, vmin, vmax or %.
func ParseDimen(raw string) maybe.Maybe[DimenT] {
	s := strings.TrimSpace(raw)
	if strings.EqualFold(s, "auto") {
		return maybe.Just(Auto())
	}
	tt, num, unit, ok := numericToken(s)
	if !ok {
		return maybe.Nothing[DimenT]()
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return maybe.Nothing[DimenT]()
	}
	if tt == css.NumberToken {
		if f != 0 {
			return maybe.Nothing[DimenT]()
		}
		return maybe.Just(Zero())
	}
	flags, known := unitFlags[unit]
	if !known {
		return maybe.Nothing[DimenT]()
	}
	if f < 0 {
		flags |= dimenNegative
	}
	return maybe.Just(DimenT{number: canonicalNumber(f), unit: unit, flags: flags})
}

// canonicalNumber prints f in the shortest form which represents it exactly.
func canonicalNumber(f float64) string {
	if f == 0 {
		return "0" // no "-0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// String returns the canonical CSS text of d.
func (d DimenT) String() string {
	switch d.flags & kindMask {
	case dimenAuto:
		return "auto"
	case dimenZero:
		return "0"
	}
	return d.number + d.unit
}

// IsNegative is true for dimensions with a number below zero.
func (d DimenT) IsNegative() bool {
	return d.flags&dimenNegative > 0
}

// Unit returns the (lower case) unit of d, or the empty string.
func (d DimenT) Unit() string {
	return d.unit
}

// ---------------------------------------------------------------------------

func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

type Matcher struct {
	dimen DimenT
}

// IsKind matches if the dimension is of the same kind as d, where all
// units relative to fonts or viewports count as one kind, and percentages
// as another.
func (m *Matcher) IsKind(d DimenT) *Matcher {
	switch {
	case (m.dimen.flags&kindMask) != 0 && (m.dimen.flags&kindMask) == (d.flags&kindMask):
		return m
	case (m.dimen.flags&relativeMask > 0) && (d.flags&relativeMask > 0):
		if (m.dimen.flags&relativeMask == dimenPercent) != (d.flags&relativeMask == dimenPercent) {
			return nil
		}
		return m
	}
	return nil
}

// Percentage matches percentages and extracts the number.
func (m *Matcher) Percentage(p *string) *Matcher {
	if m.dimen.flags&relativeMask == dimenPercent {
		if p != nil {
			*p = m.dimen.number
		}
		return m
	}
	return nil
}

// Length matches everything which is neither `auto` nor a percentage.
func (m *Matcher) Length() *Matcher {
	if m.dimen.flags&kindMask == dimenAuto || m.dimen.flags&relativeMask == dimenPercent {
		return nil
	}
	return m
}
