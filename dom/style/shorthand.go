package style

// shorthandKind selects the algorithm for setting a shorthand.
type shorthandKind uint8

const (
	fanOut     shorthandKind = iota // one value copied to every longhand
	fourSided                       // 1-4 values, CSS box-side rule
	borderAll                       // width/style/color, copied to all sides
	borderSide                      // width/style/color for a single side
	flexTriple                      // grow, shrink, basis in fixed order
	background                      // color, image, repeat, attachment, position
)

// composeKind selects how a shorthand is read back from its longhands.
type composeKind uint8

const (
	uniformGroup composeKind = iota // join, gated by the first longhand
	allEqual                        // every side has to agree
	sideTriple                      // width, style and color present
	triple                          // all three present
)

type shorthand struct {
	name      string
	longhands []string
	kind      shorthandKind
	compose   composeKind
}

func sides(prefix, suffix string) []string {
	r := make([]string, 4)
	for i, d := range fourDirs {
		r[i] = p(prefix, suffix, d)
	}
	return r
}

func corners() []string {
	r := make([]string, 4)
	for i, c := range fourCorners {
		r[i] = p("border", "radius", c)
	}
	return r
}

func borderOf(side string) []string {
	return []string{
		p("border", "width", side),
		p("border", "style", side),
		p("border", "color", side),
	}
}

func allBorders() []string {
	var r []string
	for _, d := range fourDirs {
		r = append(r, borderOf(d)...)
	}
	return r
}

// shorthands is the expansion table: it maps every shorthand to the ordered
// list of longhands it controls. It is the single source of truth for
// reading, setting and removing shorthands and must not be modified.
var shorthands = map[string]shorthand{
	"margin":        {"margin", sides("margin", ""), fourSided, uniformGroup},
	"padding":       {"padding", sides("padding", ""), fourSided, uniformGroup},
	"border-width":  {"border-width", sides("border", "width"), fanOut, uniformGroup},
	"border-style":  {"border-style", sides("border", "style"), fanOut, uniformGroup},
	"border-color":  {"border-color", sides("border", "color"), fanOut, uniformGroup},
	"border-radius": {"border-radius", corners(), fourSided, uniformGroup},
	"border":        {"border", allBorders(), borderAll, allEqual},
	"border-top":    {"border-top", borderOf("top"), borderSide, sideTriple},
	"border-right":  {"border-right", borderOf("right"), borderSide, sideTriple},
	"border-bottom": {"border-bottom", borderOf("bottom"), borderSide, sideTriple},
	"border-left":   {"border-left", borderOf("left"), borderSide, sideTriple},
	"flex":          {"flex", []string{"flex-grow", "flex-shrink", "flex-basis"}, flexTriple, triple},
	"background": {"background", []string{"background-color", "background-image",
		"background-repeat", "background-attachment", "background-position"}, background, uniformGroup},
}

// Longhands returns the longhand properties a shorthand expands to, in
// canonical order. For names which are not shorthands, ok is false.
// The returned slice is a copy.
func Longhands(name string) (longhands []string, ok bool) {
	sh, ok := shorthands[canonicalName(name)]
	if !ok {
		return nil, false
	}
	return append([]string(nil), sh.longhands...), true
}

// IsShorthand is a predicate for shorthand property names.
func IsShorthand(name string) bool {
	_, ok := shorthands[canonicalName(name)]
	return ok
}

// Shorthands returns the names of all shorthand properties known.
func Shorthands() []string {
	names := make([]string, 0, len(shorthands))
	for name := range shorthands {
		names = append(names, name)
	}
	return names
}
