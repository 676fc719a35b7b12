/*
Package dom connects CSS declaration blocks to HTML documents.

Status

Early draft—API may change frequently. Please stay patient.

Overview

HTML elements may carry a style attribute, which holds a CSS declaration
block:

	<p style="margin: 1px 2px; COLOR: Red">

Package dom wraps such attributes into a CSSStyle, which implements
w3cdom.CSSStyleDeclaration on top of a style.Declaration. Every mutation
through the CSSStyle is written back to the attribute in canonical form.
Declaration blocks of stylesheet rules are wrapped the same way, without
an attribute to write to.

HTML trees are the ones of golang.org/x/net/html.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'cssdecl.dom'
func tracer() tracing.Trace {
	return tracing.Select("cssdecl.dom")
}
