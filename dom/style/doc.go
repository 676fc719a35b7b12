/*
Package style manages CSS declaration blocks.

A declaration block, as found in a style attribute or in the body of a
style rule, is a list of properties like

	color: Red; margin: 1PX 2px; border: solid 1px #ABC !important

Package style turns it into a set of validated longhand properties with
canonical values:

	color: red
	margin-top: 1px, margin-right: 2px, margin-bottom: 1px, margin-left: 2px
	border-top-width: 1px, border-top-style: solid, border-top-color: #abc, …

Shorthand properties are never stored. Reading a shorthand reconstructs it
from its longhands, if they compose to a valid shorthand value.

Processing is permissive: malformed declarations and values which the
property's grammar does not admit are dropped silently, without affecting
the rest of the block.

Status

Properties without a dedicated value grammar are stored verbatim.
There is no cascade and no computation of values.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style
