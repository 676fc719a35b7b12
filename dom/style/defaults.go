package style

import "github.com/npillmayer/cssdecl/maybe"

// Initial values as defined by the CSS specifications. They are used when
// a shorthand omits a component and the declaration has been configured
// to reset omitted components (see ResetOmitted).
//
// Values "currentcolor" and "transparent" are kept symbolic, as we do not
// resolve colors.
var initialValues = map[string]string{
	"margin-top":                 "0",
	"margin-right":               "0",
	"margin-bottom":              "0",
	"margin-left":                "0",
	"padding-top":                "0",
	"padding-right":              "0",
	"padding-bottom":             "0",
	"padding-left":               "0",
	"border-top-width":           "medium",
	"border-right-width":         "medium",
	"border-bottom-width":        "medium",
	"border-left-width":          "medium",
	"border-top-style":           "none",
	"border-right-style":         "none",
	"border-bottom-style":        "none",
	"border-left-style":          "none",
	"border-top-color":           "currentcolor",
	"border-right-color":         "currentcolor",
	"border-bottom-color":        "currentcolor",
	"border-left-color":          "currentcolor",
	"border-top-left-radius":     "0",
	"border-top-right-radius":    "0",
	"border-bottom-right-radius": "0",
	"border-bottom-left-radius":  "0",
	"background-color":           "transparent",
	"background-image":           "none",
	"background-repeat":          "repeat",
	"background-attachment":      "scroll",
	"background-position":        "0% 0%",
	"flex-grow":                  "0",
	"flex-shrink":                "1",
	"flex-basis":                 "auto",
	"width":                      "auto",
	"height":                     "auto",
	"min-width":                  "auto",
	"min-height":                 "auto",
	"max-width":                  "none",
	"max-height":                 "none",
	"top":                        "auto",
	"right":                      "auto",
	"bottom":                     "auto",
	"left":                       "auto",
	"display":                    "inline",
	"position":                   "static",
	"float":                      "none",
	"clear":                      "none",
	"clip":                       "auto",
	"visibility":                 "visible",
	"border-collapse":            "separate",
	"font-size":                  "medium",
	"z-index":                    "auto",
	"order":                      "0",
	"opacity":                    "1",
}

// InitialValue returns the CSS initial value for a longhand property, if
// known.
func InitialValue(longhand string) maybe.Maybe[string] {
	v, ok := initialValues[canonicalName(longhand)]
	return maybe.From(v, ok)
}
