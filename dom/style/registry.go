package style

import (
	"github.com/npillmayer/cssdecl/css"
)

// grammars is the validator registry: every longhand property with a
// dedicated value grammar. Properties not listed here are admitted
// verbatim (see css.Verbatim).
var grammars = map[string]css.Validator{
	"color":       css.Color,
	"flood-color": css.Color,

	"border-top-color":    css.Color,
	"border-right-color":  css.Color,
	"border-bottom-color": css.Color,
	"border-left-color":   css.Color,

	"border-top-width":    css.BorderWidth,
	"border-right-width":  css.BorderWidth,
	"border-bottom-width": css.BorderWidth,
	"border-left-width":   css.BorderWidth,

	"border-top-style":    css.BorderStyle,
	"border-right-style":  css.BorderStyle,
	"border-bottom-style": css.BorderStyle,
	"border-left-style":   css.BorderStyle,

	"border-top-left-radius":     css.Measurement,
	"border-top-right-radius":    css.Measurement,
	"border-bottom-right-radius": css.Measurement,
	"border-bottom-left-radius":  css.Measurement,

	"border-collapse": css.BorderCollapse,
	"clear":           css.Clear,
	"clip":            css.Clip,
	"float":           css.Float,
	"css-float":       css.Float,

	"flex-grow":   css.Integer,
	"flex-shrink": css.Integer,
	"flex-basis":  css.FlexBasis,
	"order":       css.Integer,
	"z-index":     css.ZIndex,
	"opacity":     css.Number,

	"font-size": css.FontSize,

	"top":    css.MeasurementOrAuto,
	"right":  css.MeasurementOrAuto,
	"bottom": css.MeasurementOrAuto,
	"left":   css.MeasurementOrAuto,

	"width":      css.SizeOrAuto,
	"height":     css.SizeOrAuto,
	"min-width":  css.SizeOrAuto,
	"min-height": css.SizeOrAuto,
	"max-width":  css.Either(css.Keywords("none"), css.Measurement),
	"max-height": css.Either(css.Keywords("none"), css.Measurement),

	"padding-top":    css.Padding,
	"padding-right":  css.Padding,
	"padding-bottom": css.Padding,
	"padding-left":   css.Padding,

	"margin-top":    css.Margin,
	"margin-right":  css.Margin,
	"margin-bottom": css.Margin,
	"margin-left":   css.Margin,

	"display":    css.Display,
	"position":   css.Position,
	"visibility": css.Visibility,

	"background-color":      css.Color,
	"background-image":      css.BackgroundImage,
	"background-repeat":     css.BackgroundRepeat,
	"background-attachment": css.BackgroundAttachment,
	"background-position":   css.BackgroundPosition,
}

// grammarFor returns the bare value grammar of a longhand, i.e. without
// the CSS-wide keywords. Shorthand components are matched against it.
func grammarFor(longhand string) css.Validator {
	if v, ok := grammars[longhand]; ok {
		return v
	}
	return css.Verbatim
}

// validatorFor returns the validator used for setting a longhand directly.
func validatorFor(longhand string) css.Validator {
	if v, ok := grammars[longhand]; ok {
		return css.OrGlobal(v)
	}
	return css.Verbatim
}

// Validate runs the validator registered for a longhand property on a raw
// value. It returns the canonical value and true, or false if the value is
// not admitted.
func Validate(longhand string, raw string) (string, bool) {
	return validatorFor(canonicalName(longhand))(raw).Get()
}
