package style

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/cssdecl/result"
)

// Declared is a single declaration as written in a declaration list,
// before any validation.
type Declared struct {
	Name      string
	Value     string
	Important bool
}

// Errors reported for declarations which are dropped.
var (
	ErrMissingColon = errors.New("missing colon")
	ErrEmptyName    = errors.New("empty property name")
	ErrEmptyValue   = errors.New("empty property value")
)

// ParseDeclarations splits a declaration list like
//
//	"color: red; margin: 0 !important"
//
// into declarations. There is no CSS tokenization: chunks are separated by
// ';', and name and value by the first ':' of a chunk, so that values like
// URLs may contain colons. Empty chunks are skipped silently; malformed
// chunks are reported as errors (wrapping one of ErrMissingColon,
// ErrEmptyName or ErrEmptyValue) and must be ignored by clients.
//
// Property names are not case-folded here.
func ParseDeclarations(text string, opts Options) []result.Result[Declared] {
	var decls []result.Result[Declared]
	for _, chunk := range strings.Split(text, ";") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		decls = append(decls, parseDeclaration(chunk, opts))
	}
	return decls
}

func parseDeclaration(chunk string, opts Options) result.Result[Declared] {
	colon := strings.IndexByte(chunk, ':')
	if colon < 0 {
		return result.Err[Declared](fmt.Errorf("declaration %q: %w", chunk, ErrMissingColon))
	}
	name := strings.TrimSpace(chunk[:colon])
	if name == "" {
		return result.Err[Declared](fmt.Errorf("declaration %q: %w", chunk, ErrEmptyName))
	}
	value, important := splitImportant(strings.TrimSpace(chunk[colon+1:]), opts.StrictImportant)
	if value == "" {
		return result.Err[Declared](fmt.Errorf("declaration %q: %w", chunk, ErrEmptyValue))
	}
	return result.Ok(Declared{Name: name, Value: value, Important: important})
}

const importantSuffix = " !important"

// splitImportant strips a trailing priority marker from a (trimmed) value.
func splitImportant(value string, strict bool) (string, bool) {
	if strict {
		if strings.HasSuffix(value, importantSuffix) {
			return strings.TrimSpace(strings.TrimSuffix(value, importantSuffix)), true
		}
		return value, false
	}
	bang := strings.LastIndexByte(value, '!')
	if bang < 0 || !strings.EqualFold(strings.TrimSpace(value[bang+1:]), "important") {
		return value, false
	}
	return strings.TrimSpace(value[:bang]), true
}
