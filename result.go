// Copyright (c) 2022-present nxtlo. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sain

import "fmt"

// Result represents either success (Ok) carrying a value of type T, or
// failure (Err) carrying an error value of type E.
//
// Like [Option], Result is an immutable plain struct, comparable whenever
// both type arguments are. E is unconstrained: error values need not
// implement the error interface, though they commonly do.
type Result[T, E any] struct {
	ok   T
	err  E
	isOk bool
}

// Ok creates a successful Result containing value.
func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{ok: value, isOk: true}
}

// Err creates a failed Result containing err.
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

// IsOk reports whether the Result is a success.
func (r Result[T, E]) IsOk() bool { return r.isOk }

// IsErr reports whether the Result is a failure.
func (r Result[T, E]) IsErr() bool { return !r.isOk }

// IsOkAnd reports whether the Result is a success matching pred.
func (r Result[T, E]) IsOkAnd(pred func(T) bool) bool {
	return r.isOk && pred(r.ok)
}

// IsErrAnd reports whether the Result is a failure matching pred.
func (r Result[T, E]) IsErrAnd(pred func(E) bool) bool {
	return !r.isOk && pred(r.err)
}

// Get returns the success value and true, or the zero value and false.
func (r Result[T, E]) Get() (T, bool) {
	return r.ok, r.isOk
}

// GetErr returns the error value and true, or the zero value and false.
func (r Result[T, E]) GetErr() (E, bool) {
	if r.isOk {
		var zero E
		return zero, false
	}
	return r.err, true
}

// Unwrap returns the success value.
// Panics if the Result is a failure.
func (r Result[T, E]) Unwrap() T {
	if !r.isOk {
		panic(fmt.Sprintf("sain: called Result.Unwrap on an Err value: %v", r.err))
	}
	return r.ok
}

// UnwrapErr returns the error value.
// Panics if the Result is a success.
func (r Result[T, E]) UnwrapErr() E {
	if r.isOk {
		panic(fmt.Sprintf("sain: called Result.UnwrapErr on an Ok value: %v", r.ok))
	}
	return r.err
}

// Expect returns the success value.
// Panics with msg if the Result is a failure.
func (r Result[T, E]) Expect(msg string) T {
	if !r.isOk {
		panic(fmt.Sprintf("sain: %s: %v", msg, r.err))
	}
	return r.ok
}

// ExpectErr returns the error value.
// Panics with msg if the Result is a success.
func (r Result[T, E]) ExpectErr(msg string) E {
	if r.isOk {
		panic(fmt.Sprintf("sain: %s: %v", msg, r.ok))
	}
	return r.err
}

// UnwrapUnchecked returns the success value without checking.
//
// Precondition: the Result must be Ok. Calling this on Err is a contract
// breach; the zero value is returned and the bug goes undetected.
func (r Result[T, E]) UnwrapUnchecked() T {
	return r.ok
}

// UnwrapOr returns the success value or def.
func (r Result[T, E]) UnwrapOr(def T) T {
	if r.isOk {
		return r.ok
	}
	return def
}

// UnwrapOrElse returns the success value or computes one from the error.
func (r Result[T, E]) UnwrapOrElse(f func(E) T) T {
	if r.isOk {
		return r.ok
	}
	return f(r.err)
}

// Ok converts the Result into an Option of its success value,
// discarding the error, if any.
func (r Result[T, E]) Ok() Option[T] {
	return optionOf(r.ok, r.isOk)
}

// Err converts the Result into an Option of its error value,
// discarding the success value, if any.
func (r Result[T, E]) Err() Option[E] {
	return optionOf(r.err, !r.isOk)
}

// AndThen returns the failure unchanged, otherwise calls f with the
// success value. Type-changing chains use the package-level
// [AndThenResult].
func (r Result[T, E]) AndThen(f func(T) Result[T, E]) Result[T, E] {
	if !r.isOk {
		return r
	}
	return f(r.ok)
}

// And returns the failure unchanged, otherwise other.
func (r Result[T, E]) And(other Result[T, E]) Result[T, E] {
	if !r.isOk {
		return r
	}
	return other
}

// Or returns the Result if it is a success, otherwise other.
func (r Result[T, E]) Or(other Result[T, E]) Result[T, E] {
	if r.isOk {
		return r
	}
	return other
}

// String implements fmt.Stringer: "Ok(v)" or "Err(e)".
func (r Result[T, E]) String() string {
	if r.isOk {
		return fmt.Sprintf("Ok(%v)", r.ok)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

// MapResult applies f to the success value, if any.
func MapResult[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	if v, ok := r.Get(); ok {
		return Ok[U, E](f(v))
	}
	e, _ := r.GetErr()
	return Err[U, E](e)
}

// MapResultOr applies f to the success value, or returns def.
func MapResultOr[T, U, E any](r Result[T, E], def U, f func(T) U) U {
	if v, ok := r.Get(); ok {
		return f(v)
	}
	return def
}

// MapErr applies f to the error value, if any.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if v, ok := r.Get(); ok {
		return Ok[T, F](v)
	}
	e, _ := r.GetErr()
	return Err[T, F](f(e))
}

// AndThenResult returns the failure unchanged, otherwise calls f with the
// success value and returns the result.
func AndThenResult[T, U, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if v, ok := r.Get(); ok {
		return f(v)
	}
	e, _ := r.GetErr()
	return Err[U, E](e)
}

// MatchResult pattern matches on the Result, calling onOk or onErr.
func MatchResult[T, E, R any](r Result[T, E], onOk func(T) R, onErr func(E) R) R {
	if v, ok := r.Get(); ok {
		return onOk(v)
	}
	e, _ := r.GetErr()
	return onErr(e)
}
