/*
Package result implements a result type for computations which may fail.

The declaration parser reports every chunk of a declaration list as a
Result: either Ok with the parsed declaration or Err with the reason why
the chunk has been dropped. Clients usually ignore the errors, as CSS
processing is permissive, but they are handy for tracing and tests.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package result

import "github.com/npillmayer/cssdecl/maybe"

type Result[T any] interface {
	Match() Matcher[T]
	IsOk() bool
	Error() error
}

type result[T any] struct {
	value T
	err   error
}

func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

func (r result[T]) IsOk() bool {
	return r.err == nil
}

// Error returns the failure of r or nil.
func (r result[T]) Error() error {
	return r.err
}

// ToMaybe drops the error of a failed result.
func ToMaybe[T any](r Result[T]) maybe.Maybe[T] {
	var v T
	switch m := r.Match(); m {
	case m.Ok(&v):
		return maybe.Just(v)
	}
	return maybe.Nothing[T]()
}

// --- Matching --------------------------------------------------------------

type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
