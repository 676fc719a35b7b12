package css

import (
	"strconv"
	"strings"

	"github.com/npillmayer/cssdecl/maybe"
	"github.com/tdewolff/parse/v2/css"
)

// Validator is a CSS value grammar. It returns Just the canonical form of
// an admitted value, or Nothing. Validators are pure.
type Validator func(raw string) maybe.Maybe[string]

func normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

var rejected = maybe.Nothing[string]()

// Keywords creates a validator admitting exactly the given (lower case)
// keywords.
func Keywords(words ...string) Validator {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return func(raw string) maybe.Maybe[string] {
		s := normalize(raw)
		_, ok := set[s]
		return maybe.From(s, ok)
	}
}

// Either creates a validator which tries the given validators in order
// and returns the first admission.
func Either(validators ...Validator) Validator {
	fs := make([]func(string) maybe.Maybe[string], len(validators))
	for i, v := range validators {
		fs[i] = v
	}
	return func(raw string) maybe.Maybe[string] {
		return maybe.OneOf(raw, fs...)
	}
}

// Verbatim admits every non-blank value, trimmed but otherwise unchanged.
// It is the grammar for properties without a dedicated validator.
func Verbatim(raw string) maybe.Maybe[string] {
	s := strings.TrimSpace(raw)
	return maybe.From(s, s != "")
}

// Integer admits an optionally signed sequence of decimal digits of any
// length. Note that "0" is a valid integer. The canonical form has no '+'
// sign and no leading zeros.
func Integer(raw string) maybe.Maybe[string] {
	s := strings.TrimSpace(raw)
	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = "-"
		}
		s = s[1:]
	}
	if s == "" {
		return rejected
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return rejected
		}
	}
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return maybe.Just("0")
	}
	return maybe.Just(sign + s)
}

// Number admits a plain CSS number, e.g. for opacity.
func Number(raw string) maybe.Maybe[string] {
	num, ok := plainNumber(raw)
	if !ok {
		return rejected
	}
	return maybe.Just(canonicalNumber(num))
}

func plainNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || numberPrefix(s) != len(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}

func dimension(raw string, allowNegative, allowAuto bool) maybe.Maybe[string] {
	var d DimenT
	switch m := ParseDimen(raw).Match(); m {
	case m.Just(&d):
		switch dm := d.Match(); dm {
		case dm.IsKind(Auto()):
			return maybe.From(d.String(), allowAuto)
		}
		if d.IsNegative() && !allowNegative {
			return rejected
		}
		return maybe.Just(d.String())
	}
	return rejected
}

// Measurement admits a non-negative length or percentage, or unitless 0.
func Measurement(raw string) maybe.Maybe[string] {
	return dimension(raw, false, false)
}

// SignedMeasurement admits lengths and percentages of any sign.
func SignedMeasurement(raw string) maybe.Maybe[string] {
	return dimension(raw, true, false)
}

// MeasurementOrAuto admits SignedMeasurement or the keyword `auto`.
// This is the grammar of offsets (top, right, bottom, left).
func MeasurementOrAuto(raw string) maybe.Maybe[string] {
	return dimension(raw, true, true)
}

// SizeOrAuto admits Measurement or `auto` (width, height).
func SizeOrAuto(raw string) maybe.Maybe[string] {
	return dimension(raw, false, true)
}

// Margin admits the values of margin-top etc.: lengths and percentages
// of any sign, and `auto`.
func Margin(raw string) maybe.Maybe[string] {
	return dimension(raw, true, true)
}

// Padding admits non-negative lengths and percentages.
var Padding Validator = Measurement

// BorderWidth admits thin, medium, thick and non-negative lengths.
var BorderWidth = Either(Keywords("thin", "medium", "thick"), lengthOnly)

func lengthOnly(raw string) maybe.Maybe[string] {
	if d, ok := ParseDimen(raw).Get(); ok {
		switch m := d.Match(); m {
		case m.Length():
			if !d.IsNegative() {
				return maybe.Just(d.String())
			}
		}
	}
	return rejected
}

// BorderStyle admits the keywords of <line-style>.
var BorderStyle = Keywords("none", "hidden", "solid", "dashed", "dotted",
	"double", "groove", "ridge", "inset", "outset")

// BorderCollapse admits separate and collapse.
var BorderCollapse = Keywords("separate", "collapse")

// Clear admits the keywords of property clear.
var Clear = Keywords("none", "left", "right", "both", "inline-start", "inline-end")

// Float admits the keywords of property float.
var Float = Keywords("none", "left", "right", "inline-start", "inline-end")

// Display admits single and common two-keyword display values.
var Display = Keywords("none", "block", "inline", "inline-block", "list-item",
	"flow-root", "flex", "inline-flex", "grid", "inline-grid", "table",
	"inline-table", "table-row", "table-cell", "table-row-group",
	"table-header-group", "table-footer-group", "table-column",
	"table-column-group", "table-caption", "contents", "run-in")

// Position admits the keywords of property position.
var Position = Keywords("static", "relative", "absolute", "fixed", "sticky")

// Visibility admits visible, hidden and collapse.
var Visibility = Keywords("visible", "hidden", "collapse")

// FlexBasis admits content keywords or a non-negative measurement.
var FlexBasis = Either(
	Keywords("auto", "content", "fill", "max-content", "min-content", "fit-content"),
	Measurement)

// FontSize admits absolute and relative size keywords or a non-negative
// measurement.
var FontSize = Either(
	Keywords("xx-small", "x-small", "small", "medium", "large", "x-large",
		"xx-large", "xxx-large", "larger", "smaller"),
	Measurement)

// ZIndex admits `auto` or an integer.
var ZIndex = Either(Keywords("auto"), Integer)

// Clip admits `auto` or a rect() shape. Each of the four edges is
// `auto` or a signed measurement; rect(1px 2px 3px 4px) and
// rect(1px, 2px, 3px, 4px) both print as the latter.
func Clip(raw string) maybe.Maybe[string] {
	if normalize(raw) == "auto" {
		return maybe.Just("auto")
	}
	name, args, _, ok := functionArgs(raw)
	if !ok || name != "rect" || len(args) != 4 {
		return rejected
	}
	edges := make([]string, 4)
	for i, a := range args {
		e, ok := MeasurementOrAuto(a).Get()
		if !ok {
			return rejected
		}
		edges[i] = e
	}
	return maybe.Just("rect(" + strings.Join(edges, ", ") + ")")
}

// --- Background ------------------------------------------------------------

// BackgroundImage admits `none`, a url() or a gradient function. URLs
// keep their case.
func BackgroundImage(raw string) maybe.Maybe[string] {
	s := strings.TrimSpace(raw)
	lower := strings.ToLower(s)
	switch {
	case lower == "none":
		return maybe.Just("none")
	case strings.HasPrefix(lower, "url("):
		return urlValue(s)
	}
	if name, args, _, ok := functionArgs(s); ok && strings.HasSuffix(name, "-gradient") && len(args) > 0 {
		return maybe.Just(strings.Join(Tokenize(s), " "))
	}
	return rejected
}

// urlValue admits exactly one url() token, quoted or unquoted.
func urlValue(s string) maybe.Maybe[string] {
	l := lexer(s)
	tt, data := l.Next()
	if tt != css.URLToken || !strings.HasSuffix(string(data), ")") {
		return rejected
	}
	if next, _ := l.Next(); next != css.ErrorToken {
		return rejected
	}
	inner := strings.TrimSpace(string(data[4 : len(data)-1]))
	if inner == "" || inner == `""` || inner == "''" {
		return rejected
	}
	return maybe.Just("url(" + inner + ")")
}

// BackgroundRepeat admits the single-keyword repeat styles.
var BackgroundRepeat = Keywords("repeat", "repeat-x", "repeat-y", "no-repeat", "space", "round")

// BackgroundAttachment admits scroll, fixed and local.
var BackgroundAttachment = Keywords("scroll", "fixed", "local")

var positionKeyword = Keywords("left", "center", "right", "top", "bottom")

// BackgroundPositionComponent admits one component of a background position.
var BackgroundPositionComponent = Either(positionKeyword, SignedMeasurement)

// BackgroundPosition admits one or two position components.
func BackgroundPosition(raw string) maybe.Maybe[string] {
	tokens := Tokenize(raw)
	if len(tokens) == 0 || len(tokens) > 2 {
		return rejected
	}
	out := make([]string, len(tokens))
	for i, t := range tokens {
		c, ok := BackgroundPositionComponent(t).Get()
		if !ok {
			return rejected
		}
		out[i] = c
	}
	return maybe.Just(strings.Join(out, " "))
}

// --- CSS-wide keywords -----------------------------------------------------

// GlobalKeyword admits the CSS-wide keywords, which are valid for every
// property.
var GlobalKeyword = Keywords("inherit", "initial", "unset", "revert")

// OrGlobal extends a validator by the CSS-wide keywords.
func OrGlobal(v Validator) Validator {
	return Either(GlobalKeyword, v)
}
