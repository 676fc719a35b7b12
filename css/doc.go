/*
Package css provides validators for CSS property values.

CSS properties are plentyful and some of them are complicated.
This package shields clients from the textual nature of CSS values: every
value grammar is implemented as a Validator, a pure function which either
admits a raw value (returning its canonical form) or rejects it.

	css.Color("  RED ")            // => Just("red")
	css.Measurement("1.50PX")      // => Just("1.5px")
	css.Measurement("-1px")        // => Nothing
	css.Integer("0")               // => Just("0")

Validators are tolerant to case and surrounding whitespace, and always emit
lower case, single-spaced output. Values are lexed with the CSS tokenizer
of github.com/tdewolff/parse, so functional notation like `rgb(1, 2, 3)`
is never torn apart.

There is no unit conversion and no color-space math: a value is checked
syntactically and re-printed canonically, nothing more.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package css

// see
// https://developer.mozilla.org/en-US/docs/Web/CSS/Reference#dom-css_cssom
