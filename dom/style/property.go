package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cssdecl/css"
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'cssdecl.style'
func tracer() tracing.Trace {
	return tracing.Select("cssdecl.style")
}

// StoredValue is a validated value for a longhand CSS property. For example,
// with
//
//	margin: 1PX auto
//
// four stored values will be created, one of them being
//
//	StoredValue{ Name: "margin-top", Value: "1px" }
//
// Value is always the output of the property's validator, never raw user
// input.
type StoredValue struct {
	Name      string
	Value     string
	Important bool
}

func (sv StoredValue) String() string {
	if sv.Important {
		return sv.Name + ": " + sv.Value + " !important;"
	}
	return sv.Name + ": " + sv.Value + ";"
}

// KeyValue is a container for a (longhand) property key and its value.
type KeyValue struct {
	Key   string
	Value string
}

// SplitCompoundProperty splits up a four-sided shortcut property into its
// individual components. Returns a slice of key-value pairs representing the
// individual (fine grained) style properties.
// Example:
//
//	SplitCompoundProperty("padding", "3px")
//
// will return
//
//	"padding-top"    => "3px"
//	"padding-right"  => "3px"
//	"padding-bottom" => "3px"
//	"padding-left"   => "3px"
//
// Four-sided shortcuts are margin, padding and border-radius. Every
// component has to be admitted by the grammar of the longhands; values are
// returned in canonical form.
func SplitCompoundProperty(key string, value string) ([]KeyValue, error) {
	key = canonicalName(key)
	sh, ok := shorthands[key]
	if !ok || sh.kind != fourSided {
		return nil, fmt.Errorf("not recognized as compound property: %s", key)
	}
	grammar := grammarFor(sh.longhands[0])
	fields := css.Tokenize(value)
	for i, f := range fields {
		v, ok := grammar(f).Get()
		if !ok {
			return nil, fmt.Errorf("value %q not admitted for %s", f, key)
		}
		fields[i] = v
	}
	return feazeCompound4(key, sh.longhands, fields)
}

// CSS logic to distribute individual values from compound shortcuts is as
// follows: https://www.w3schools.com/css/css_border.asp
func feazeCompound4(key string, dirs []string, fields []string) ([]KeyValue, error) {
	l := len(fields)
	if l == 0 || l > 4 {
		return nil, fmt.Errorf("expecting 1-4 values for %s", key)
	}
	r := make([]KeyValue, 4)
	r[0] = KeyValue{dirs[0], fields[0]}
	if l >= 2 {
		r[1] = KeyValue{dirs[1], fields[1]}
		if l >= 3 {
			r[2] = KeyValue{dirs[2], fields[2]}
			if l == 4 {
				r[3] = KeyValue{dirs[3], fields[3]}
			} else {
				r[3] = KeyValue{dirs[3], fields[1]}
			}
		} else {
			r[2] = KeyValue{dirs[2], fields[0]}
			r[3] = KeyValue{dirs[3], fields[1]}
		}
	} else {
		r[1] = KeyValue{dirs[1], fields[0]}
		r[2] = KeyValue{dirs[2], fields[0]}
		r[3] = KeyValue{dirs[3], fields[0]}
	}
	return r, nil
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}
var fourCorners = [4]string{"top-left", "top-right", "bottom-right", "bottom-left"}

func p(prefix string, suffix string, tag string) string {
	if suffix == "" {
		return prefix + "-" + tag
	}
	if prefix == "" {
		return tag + "-" + suffix
	}
	return prefix + "-" + tag + "-" + suffix
}

// canonicalName folds a property name to lower case. Custom properties
// (`--my-prop`) are case-sensitive and stay untouched.
func canonicalName(name string) string {
	name = strings.TrimSpace(name)
	if strings.HasPrefix(name, "--") {
		return name
	}
	return strings.ToLower(name)
}
