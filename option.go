// Copyright (c) 2022-present nxtlo. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sain

import "fmt"

// Option represents an optional value: either Some(value) or None.
//
// Option is an immutable plain struct and is comparable whenever T is,
// so two Some values compare equal iff their contents do and None equals
// None. Nesting is never flattened implicitly; an Option[Option[T]] stays
// nested until [FlattenOption] is called.
type Option[T any] struct {
	value T
	some  bool
}

// Some creates an Option containing value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, some: true}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// optionOf builds an Option from Go's comma-ok idiom.
func optionOf[T any](value T, ok bool) Option[T] {
	if ok {
		return Some(value)
	}
	return None[T]()
}

// IsSome reports whether the Option contains a value.
func (o Option[T]) IsSome() bool { return o.some }

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool { return !o.some }

// IsSomeAnd reports whether the Option contains a value matching pred.
func (o Option[T]) IsSomeAnd(pred func(T) bool) bool {
	return o.some && pred(o.value)
}

// Get returns the contained value and true, or the zero value and false.
// This is the bridge to Go's comma-ok idiom.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Unwrap returns the contained value.
// Panics if the Option is None.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic("sain: called Option.Unwrap on a None value")
	}
	return o.value
}

// Expect returns the contained value.
// Panics with msg if the Option is None.
func (o Option[T]) Expect(msg string) T {
	if !o.some {
		panic("sain: " + msg)
	}
	return o.value
}

// UnwrapUnchecked returns the contained value without checking presence.
//
// Precondition: the Option must be Some. Calling this on None is a
// contract breach; the zero value is returned and the bug goes undetected.
func (o Option[T]) UnwrapUnchecked() T {
	return o.value
}

// UnwrapOr returns the contained value or def.
func (o Option[T]) UnwrapOr(def T) T {
	if o.some {
		return o.value
	}
	return def
}

// UnwrapOrElse returns the contained value or computes one from f.
func (o Option[T]) UnwrapOrElse(f func() T) T {
	if o.some {
		return o.value
	}
	return f()
}

// UnwrapOrZero returns the contained value or the zero value of T.
func (o Option[T]) UnwrapOrZero() T {
	return o.value
}

// Filter returns the Option unchanged when it contains a value matching
// pred, and None otherwise.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.some && pred(o.value) {
		return o
	}
	return None[T]()
}

// AndThen returns None if the Option is None, otherwise calls f with the
// contained value and returns the result. Type-changing chains use the
// package-level [AndThenOption].
func (o Option[T]) AndThen(f func(T) Option[T]) Option[T] {
	if !o.some {
		return o
	}
	return f(o.value)
}

// And returns None if the Option is None, otherwise other.
func (o Option[T]) And(other Option[T]) Option[T] {
	if !o.some {
		return o
	}
	return other
}

// Or returns the Option if it contains a value, otherwise other.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.some {
		return o
	}
	return other
}

// OrElse returns the Option if it contains a value, otherwise calls f.
func (o Option[T]) OrElse(f func() Option[T]) Option[T] {
	if o.some {
		return o
	}
	return f()
}

// Xor returns whichever of o and other is Some when exactly one is,
// and None otherwise.
func (o Option[T]) Xor(other Option[T]) Option[T] {
	switch {
	case o.some && !other.some:
		return o
	case !o.some && other.some:
		return other
	default:
		return None[T]()
	}
}

// Take moves the value out of the Option, leaving None in its place,
// and returns the previous contents.
func (o *Option[T]) Take() Option[T] {
	prev := *o
	*o = None[T]()
	return prev
}

// Replace stores value in the Option and returns the previous contents.
func (o *Option[T]) Replace(value T) Option[T] {
	prev := *o
	*o = Some(value)
	return prev
}

// Insert stores value in the Option, overwriting any previous contents,
// and returns it.
func (o *Option[T]) Insert(value T) T {
	*o = Some(value)
	return value
}

// GetOrInsert returns the contained value, inserting value first if the
// Option is None.
func (o *Option[T]) GetOrInsert(value T) T {
	if !o.some {
		*o = Some(value)
	}
	return o.value
}

// GetOrInsertWith returns the contained value, inserting the result of f
// first if the Option is None.
func (o *Option[T]) GetOrInsertWith(f func() T) T {
	if !o.some {
		*o = Some(f())
	}
	return o.value
}

// String implements fmt.Stringer: "Some(v)" or "None".
func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// MapOption applies f to the contained value, if any.
func MapOption[T, U any](o Option[T], f func(T) U) Option[U] {
	if v, ok := o.Get(); ok {
		return Some(f(v))
	}
	return None[U]()
}

// MapOptionOr applies f to the contained value, or returns def.
func MapOptionOr[T, U any](o Option[T], def U, f func(T) U) U {
	if v, ok := o.Get(); ok {
		return f(v)
	}
	return def
}

// AndThenOption returns None if o is None, otherwise calls f with the
// contained value and returns the result.
func AndThenOption[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if v, ok := o.Get(); ok {
		return f(v)
	}
	return None[U]()
}

// OkOr converts an Option into a Result, mapping Some(v) to Ok(v) and
// None to Err(err).
func OkOr[T, E any](o Option[T], err E) Result[T, E] {
	if v, ok := o.Get(); ok {
		return Ok[T, E](v)
	}
	return Err[T, E](err)
}

// OkOrElse converts an Option into a Result, mapping Some(v) to Ok(v)
// and None to Err(f()).
func OkOrElse[T, E any](o Option[T], f func() E) Result[T, E] {
	if v, ok := o.Get(); ok {
		return Ok[T, E](v)
	}
	return Err[T, E](f())
}

// ZipOption zips two Options: Some(Pair{a, b}) when both contain values,
// None otherwise.
func ZipOption[A, B any](a Option[A], b Option[B]) Option[Pair[A, B]] {
	av, aok := a.Get()
	bv, bok := b.Get()
	if aok && bok {
		return Some(Pair[A, B]{First: av, Second: bv})
	}
	return None[Pair[A, B]]()
}

// FlattenOption removes one level of nesting. Flattening is always
// explicit; Some(None) flattens to None.
func FlattenOption[T any](o Option[Option[T]]) Option[T] {
	if inner, ok := o.Get(); ok {
		return inner
	}
	return None[T]()
}

// MatchOption pattern matches on the Option, calling onSome or onNone.
func MatchOption[T, R any](o Option[T], onSome func(T) R, onNone func() R) R {
	if v, ok := o.Get(); ok {
		return onSome(v)
	}
	return onNone()
}

// EqualOption reports whether two Options are structurally equal under eq.
// For comparable T, plain == gives the same answer without a comparator.
func EqualOption[T any](a, b Option[T], eq func(T, T) bool) bool {
	av, aok := a.Get()
	bv, bok := b.Get()
	if aok != bok {
		return false
	}
	if !aok {
		return true
	}
	return eq(av, bv)
}
