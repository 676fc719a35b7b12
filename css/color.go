package css

import (
	"math"
	"strings"

	"github.com/npillmayer/cssdecl/maybe"
	"github.com/tdewolff/parse/v2/css"
)

// Color admits named colors, hex notation (#rgb, #rgba, #rrggbb,
// #rrggbbaa) and the functional notations rgb(), rgba(), hsl() and hsla().
//
// Output is lower case. Functional notations are printed in the
// comma-separated legacy syntax, with out-of-range components clamped:
//
//	Color("RGB(300 0 0 / 50%)")  // => Just("rgba(255, 0, 0, 0.5)")
func Color(raw string) maybe.Maybe[string] {
	s := normalize(raw)
	if s == "" {
		return rejected
	}
	if strings.HasPrefix(s, "#") {
		return hexColor(s)
	}
	if _, ok := namedColors[s]; ok {
		return maybe.Just(s)
	}
	name, args, seps, ok := functionArgs(s)
	if !ok || !colorSeparators(seps) {
		return rejected
	}
	switch name {
	case "rgb", "rgba":
		return rgbColor(args)
	case "hsl", "hsla":
		return hslColor(args)
	}
	return rejected
}

// colorSeparators checks the argument separators of a color function:
// either commas throughout (legacy syntax), or whitespace with an optional
// alpha value after '/'.
func colorSeparators(seps []byte) bool {
	legacy := len(seps) > 0 && seps[0] == ','
	for i, sep := range seps {
		switch {
		case legacy:
			if sep != ',' {
				return false
			}
		case i < 2:
			if sep != ' ' {
				return false
			}
		case sep != '/':
			return false
		}
	}
	return true
}

func hexColor(s string) maybe.Maybe[string] {
	digits := s[1:]
	switch len(digits) {
	case 3, 4, 6, 8:
	default:
		return rejected
	}
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if !isDigit(c) && (c < 'a' || c > 'f') {
			return rejected
		}
	}
	return maybe.Just(s)
}

func rgbColor(args []string) maybe.Maybe[string] {
	if len(args) != 3 && len(args) != 4 {
		return rejected
	}
	channels := make([]string, 3)
	percent := false
	for i := 0; i < 3; i++ {
		f, isPercent, ok := numberOrPercent(args[i])
		if !ok || (i > 0 && isPercent != percent) {
			return rejected // no mixing of numbers and percentages
		}
		percent = isPercent
		if isPercent {
			channels[i] = canonicalNumber(clamp(f, 0, 100)) + "%"
		} else {
			channels[i] = canonicalNumber(clamp(f, 0, 255))
		}
	}
	return withAlpha("rgb", channels, args)
}

func hslColor(args []string) maybe.Maybe[string] {
	if len(args) != 3 && len(args) != 4 {
		return rejected
	}
	hue, ok := hueAngle(args[0])
	if !ok {
		return rejected
	}
	channels := []string{canonicalNumber(hue), "", ""}
	for i := 1; i < 3; i++ {
		f, isPercent, ok := numberOrPercent(args[i])
		if !ok || !isPercent {
			return rejected
		}
		channels[i] = canonicalNumber(clamp(f, 0, 100)) + "%"
	}
	return withAlpha("hsl", channels, args)
}

// withAlpha prints a color function, switching to the 'a'-variant if an
// alpha value other than 1 is present.
func withAlpha(fn string, channels []string, args []string) maybe.Maybe[string] {
	if len(args) == 4 {
		f, isPercent, ok := numberOrPercent(args[3])
		if !ok {
			return rejected
		}
		if isPercent {
			f /= 100
		}
		if a := clamp(f, 0, 1); a != 1 {
			channels = append(channels, canonicalNumber(a))
			fn += "a"
		}
	}
	return maybe.Just(fn + "(" + strings.Join(channels, ", ") + ")")
}

func numberOrPercent(s string) (f float64, isPercent bool, ok bool) {
	tt, num, _, ok := numericToken(s)
	if !ok {
		return 0, false, false
	}
	switch tt {
	case css.NumberToken:
	case css.PercentageToken:
		isPercent = true
	default:
		return 0, false, false
	}
	f, ok = parseFloat(num)
	return f, isPercent, ok
}

func hueAngle(s string) (float64, bool) {
	tt, num, unit, ok := numericToken(s)
	if !ok {
		return 0, false
	}
	f, ok := parseFloat(num)
	if !ok {
		return 0, false
	}
	switch {
	case tt == css.NumberToken, tt == css.DimensionToken && unit == "deg":
		return f, true
	case tt == css.DimensionToken && unit == "turn":
		return f * 360, true
	case tt == css.DimensionToken && unit == "rad":
		return f * 180 / math.Pi, true
	case tt == css.DimensionToken && unit == "grad":
		return f * 0.9, true
	}
	return 0, false
}

func parseFloat(num string) (float64, bool) {
	f, ok := plainNumber(num)
	if !ok || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

func clamp(f, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, f))
}

// namedColors are the CSS Color Module Level 4 keywords.
var namedColors = map[string]struct{}{
	"transparent": {}, "currentcolor": {},
	"aliceblue": {}, "antiquewhite": {}, "aqua": {}, "aquamarine": {}, "azure": {},
	"beige": {}, "bisque": {}, "black": {}, "blanchedalmond": {}, "blue": {},
	"blueviolet": {}, "brown": {}, "burlywood": {}, "cadetblue": {}, "chartreuse": {},
	"chocolate": {}, "coral": {}, "cornflowerblue": {}, "cornsilk": {}, "crimson": {},
	"cyan": {}, "darkblue": {}, "darkcyan": {}, "darkgoldenrod": {}, "darkgray": {},
	"darkgreen": {}, "darkgrey": {}, "darkkhaki": {}, "darkmagenta": {},
	"darkolivegreen": {}, "darkorange": {}, "darkorchid": {}, "darkred": {},
	"darksalmon": {}, "darkseagreen": {}, "darkslateblue": {}, "darkslategray": {},
	"darkslategrey": {}, "darkturquoise": {}, "darkviolet": {}, "deeppink": {},
	"deepskyblue": {}, "dimgray": {}, "dimgrey": {}, "dodgerblue": {}, "firebrick": {},
	"floralwhite": {}, "forestgreen": {}, "fuchsia": {}, "gainsboro": {},
	"ghostwhite": {}, "gold": {}, "goldenrod": {}, "gray": {}, "green": {},
	"greenyellow": {}, "grey": {}, "honeydew": {}, "hotpink": {}, "indianred": {},
	"indigo": {}, "ivory": {}, "khaki": {}, "lavender": {}, "lavenderblush": {},
	"lawngreen": {}, "lemonchiffon": {}, "lightblue": {}, "lightcoral": {},
	"lightcyan": {}, "lightgoldenrodyellow": {}, "lightgray": {}, "lightgreen": {},
	"lightgrey": {}, "lightpink": {}, "lightsalmon": {}, "lightseagreen": {},
	"lightskyblue": {}, "lightslategray": {}, "lightslategrey": {},
	"lightsteelblue": {}, "lightyellow": {}, "lime": {}, "limegreen": {}, "linen": {},
	"magenta": {}, "maroon": {}, "mediumaquamarine": {}, "mediumblue": {},
	"mediumorchid": {}, "mediumpurple": {}, "mediumseagreen": {},
	"mediumslateblue": {}, "mediumspringgreen": {}, "mediumturquoise": {},
	"mediumvioletred": {}, "midnightblue": {}, "mintcream": {}, "mistyrose": {},
	"moccasin": {}, "navajowhite": {}, "navy": {}, "oldlace": {}, "olive": {},
	"olivedrab": {}, "orange": {}, "orangered": {}, "orchid": {}, "palegoldenrod": {},
	"palegreen": {}, "paleturquoise": {}, "palevioletred": {}, "papayawhip": {},
	"peachpuff": {}, "peru": {}, "pink": {}, "plum": {}, "powderblue": {}, "purple": {},
	"rebeccapurple": {}, "red": {}, "rosybrown": {}, "royalblue": {}, "saddlebrown": {},
	"salmon": {}, "sandybrown": {}, "seagreen": {}, "seashell": {}, "sienna": {},
	"silver": {}, "skyblue": {}, "slateblue": {}, "slategray": {}, "slategrey": {},
	"snow": {}, "springgreen": {}, "steelblue": {}, "tan": {}, "teal": {}, "thistle": {},
	"tomato": {}, "turquoise": {}, "violet": {}, "wheat": {}, "white": {},
	"whitesmoke": {}, "yellow": {}, "yellowgreen": {},
}
