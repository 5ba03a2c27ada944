/*
Package result implements a type for the outcome of a computation that
may fail.

Unit converters in csskit report their answers as Result values, which keeps
conversion failures from turning into panics or sentinel numbers. Modelled
after Elm's Result.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package result

// Result is either Ok(value) or Err(error).
type Result[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Failure() error
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps a failure. A nil error is replaced by ErrUnknown.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = ErrUnknown
	}
	return result[T]{err: err}
}

// ErrUnknown is the error of an Err constructed without a cause.
var ErrUnknown = unknownError{}

type unknownError struct{}

func (unknownError) Error() string { return "unknown error" }

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

func (r result[T]) WithDefault(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

// Failure returns the failure of r, or nil for Ok.
func (r result[T]) Failure() error {
	return r.err
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
		if v != nil {
			*v = rm.r.value
		}
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		if err != nil {
			*err = rm.r.err
		}
		return rm
	}
	return nil
}
