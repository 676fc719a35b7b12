/*
Package cssom provides interfaces for stylesheets and style rules.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML. We do not
implement a CSS parser of our own. Stylesheet parsing is de-coupled by
introducing interfaces StyleSheet and Rule; concrete implementations may
be found in sub-packages (see package douceuradapter).

Every Rule exposes its declaration block as a style.Declaration, i.e.
with values validated and shorthands expanded into longhands, in the same
way as inline styles are handled. Selectors are kept as raw text; there
is no selector matching and no cascade.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom
