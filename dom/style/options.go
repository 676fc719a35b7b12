package style

import "github.com/npillmayer/schuko"

// Configuration keys understood by OptionsFromConfig.
const (
	ConfStrictImportant = "cssdecl.important.strict"
	ConfResetOmitted    = "cssdecl.shorthand.reset"
)

// Options control the two places where CSS processing has to pick a
// compatibility target.
type Options struct {
	// StrictImportant recognizes only the exact suffix " !important".
	// Otherwise the priority marker is matched case-insensitively and
	// whitespace around '!' is optional.
	StrictImportant bool
	// ResetOmitted resets longhands which a shorthand value does not mention
	// to their initial value (browser semantics). Otherwise they keep their
	// previous value.
	ResetOmitted bool
}

// Option is a functional option for NewDeclaration.
type Option func(*Options)

// StrictImportant sets Options.StrictImportant.
func StrictImportant(strict bool) Option {
	return func(o *Options) {
		o.StrictImportant = strict
	}
}

// ResetOmitted sets Options.ResetOmitted.
func ResetOmitted(reset bool) Option {
	return func(o *Options) {
		o.ResetOmitted = reset
	}
}

// OptionsFromConfig reads options from an application configuration.
// Keys not set in conf leave the defaults untouched.
func OptionsFromConfig(conf schuko.Configuration) Option {
	return func(o *Options) {
		if conf == nil {
			return
		}
		if conf.IsSet(ConfStrictImportant) {
			o.StrictImportant = conf.GetBool(ConfStrictImportant)
		}
		if conf.IsSet(ConfResetOmitted) {
			o.ResetOmitted = conf.GetBool(ConfResetOmitted)
		}
	}
}

func makeOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
