// Copyright (c) 2022-present nxtlo. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sain

// Terminal consumers. Each one drains its iterator, or early-exits at a
// deterministic point, and leaves it spent; an iterator must not be
// reused after a consumer returns.

// Numeric constrains the element types accepted by [Sum].
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Collect drains it into a new [Vec], pre-reserving capacity from the
// iterator's size hint when one is advertised.
func Collect[T any](it Iterator[T]) Vec[T] {
	lower, _ := sizeHintOf(it)
	v := VecWithCapacity[T](lower)
	v.Extend(it)
	return v
}

// CollectSlice drains it into a new Go slice.
func CollectSlice[T any](it Iterator[T]) []T {
	v := Collect(it)
	return v.Leak()
}

// Fold reduces the iterator to a single value, threading an accumulator
// through f for every item.
func Fold[T, Acc any](it Iterator[T], init Acc, f func(Acc, T) Acc) Acc {
	acc := init
	for {
		item, ok := it.Next().Get()
		if !ok {
			return acc
		}
		acc = f(acc, item)
	}
}

// Reduce folds the iterator using its first item as the initial
// accumulator. None when the iterator is empty.
func Reduce[T any](it Iterator[T], f func(T, T) T) Option[T] {
	first, ok := it.Next().Get()
	if !ok {
		return None[T]()
	}
	return Some(Fold(it, first, f))
}

// Sum adds every item of the iterator. Zero for an empty iterator.
func Sum[T Numeric](it Iterator[T]) T {
	var total T
	return Fold(it, total, func(acc, item T) T { return acc + item })
}

// Count drains the iterator and returns the number of items it yielded.
func Count[T any](it Iterator[T]) int {
	n := 0
	for it.Next().IsSome() {
		n++
	}
	return n
}

// Position returns the zero-based index of the first item matching pred,
// or None when no item matches. Stops pulling at the first match.
func Position[T any](it Iterator[T], pred func(T) bool) Option[int] {
	for i := 0; ; i++ {
		item, ok := it.Next().Get()
		if !ok {
			return None[int]()
		}
		if pred(item) {
			return Some(i)
		}
	}
}

// Find returns the first item matching pred, or None when no item
// matches. Stops pulling at the first match.
func Find[T any](it Iterator[T], pred func(T) bool) Option[T] {
	for {
		item, ok := it.Next().Get()
		if !ok {
			return None[T]()
		}
		if pred(item) {
			return Some(item)
		}
	}
}

// Any reports whether any item matches pred. Stops pulling at the first
// match; false for an empty iterator.
func Any[T any](it Iterator[T], pred func(T) bool) bool {
	return Find(it, pred).IsSome()
}

// All reports whether every item matches pred. Stops pulling at the
// first failure; true for an empty iterator.
func All[T any](it Iterator[T], pred func(T) bool) bool {
	return Find(it, func(item T) bool { return !pred(item) }).IsNone()
}

// ForEach calls f on every item, draining the iterator.
func ForEach[T any](it Iterator[T], f func(T)) {
	for {
		item, ok := it.Next().Get()
		if !ok {
			return
		}
		f(item)
	}
}

// Last drains the iterator and returns its final item, or None when the
// iterator is empty.
func Last[T any](it Iterator[T]) Option[T] {
	last := None[T]()
	for {
		item := it.Next()
		if item.IsNone() {
			return last
		}
		last = item
	}
}

// Nth returns the zero-based n-th item, discarding the items before it,
// or None when the iterator ends first.
func Nth[T any](it Iterator[T], n int) Option[T] {
	if n < 0 {
		return None[T]()
	}
	for ; n > 0; n-- {
		if it.Next().IsNone() {
			return None[T]()
		}
	}
	return it.Next()
}
