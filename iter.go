// Copyright (c) 2022-present nxtlo. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sain

// Iterator is a lazy, pull-based sequence of values of type T.
//
// Next performs at most one state transition: it returns Some(item)
// while the iterator is active, and None once it is exhausted. Every
// iterator constructed by this package is fused — after the first None,
// Next returns None forever and the iterator never reawakens. Foreign
// implementations without that guarantee can be wrapped with [Fuse].
//
// Iterators are single-pass. A terminal consumer ([Collect], [Fold],
// [Sum], ...) drains or early-exits deterministically and leaves the
// iterator spent; it must not be reused afterwards. Dropping an iterator
// mid-sequence is always safe and releases nothing but the adapter's own
// state.
type Iterator[T any] interface {
	Next() Option[T]
}

// SizeHinted is implemented by iterators that can bound the number of
// remaining items: a lower bound and an optional upper bound. Collectors
// consult the hint to pre-reserve capacity. The hint is advisory for
// sizing only — it must never be trusted for correctness.
type SizeHinted interface {
	SizeHint() (lower int, upper Option[int])
}

// sizeHintOf returns the iterator's size hint, or the trivial (0, None)
// when it does not advertise one.
func sizeHintOf[T any](it Iterator[T]) (int, Option[int]) {
	if h, ok := it.(SizeHinted); ok {
		return h.SizeHint()
	}
	return 0, None[int]()
}

// Pair is an ordered pair, yielded by [Zip] and [Enumerate] and used by
// the splitting operations on views.
type Pair[A, B any] struct {
	First  A
	Second B
}

// SliceIter iterates over the elements of a Go slice or a [Slice] view,
// borrowing the underlying storage for its lifetime.
type SliceIter[T any] struct {
	items []T
	pos   int
}

// IterSlice returns an iterator over items. The iterator borrows items;
// the slice must not be mutated while the iterator is live.
func IterSlice[T any](items []T) *SliceIter[T] {
	return &SliceIter[T]{items: items}
}

// Next returns the next element, or None when the slice is exhausted.
func (s *SliceIter[T]) Next() Option[T] {
	if s.pos >= len(s.items) {
		return None[T]()
	}
	item := s.items[s.pos]
	s.pos++
	return Some(item)
}

// SizeHint returns the exact number of remaining elements.
func (s *SliceIter[T]) SizeHint() (int, Option[int]) {
	n := len(s.items) - s.pos
	return n, Some(n)
}

// EmptyIter is an iterator that yields nothing.
type EmptyIter[T any] struct{}

// Empty returns an iterator that is exhausted from the start.
func Empty[T any]() *EmptyIter[T] {
	return &EmptyIter[T]{}
}

// Next always returns None.
func (*EmptyIter[T]) Next() Option[T] {
	return None[T]()
}

// SizeHint returns exactly zero.
func (*EmptyIter[T]) SizeHint() (int, Option[int]) {
	return 0, Some(0)
}

// OnceIter yields a single item, then is exhausted.
type OnceIter[T any] struct {
	item Option[T]
}

// Once returns an iterator yielding item exactly once.
func Once[T any](item T) *OnceIter[T] {
	return &OnceIter[T]{item: Some(item)}
}

// Next returns the item on the first pull and None afterwards.
func (o *OnceIter[T]) Next() Option[T] {
	return o.item.Take()
}

// SizeHint returns the exact number of remaining items.
func (o *OnceIter[T]) SizeHint() (int, Option[int]) {
	if o.item.IsSome() {
		return 1, Some(1)
	}
	return 0, Some(0)
}

// RepeatIter yields the same item a fixed number of times.
type RepeatIter[T any] struct {
	item      T
	remaining int
}

// Repeat returns an iterator yielding item n times.
func Repeat[T any](item T, n int) *RepeatIter[T] {
	return &RepeatIter[T]{item: item, remaining: max(n, 0)}
}

// Next returns the repeated item, or None when the count is spent.
func (r *RepeatIter[T]) Next() Option[T] {
	if r.remaining == 0 {
		return None[T]()
	}
	r.remaining--
	return Some(r.item)
}

// SizeHint returns the exact number of remaining items.
func (r *RepeatIter[T]) SizeHint() (int, Option[int]) {
	return r.remaining, Some(r.remaining)
}

// RangeIter yields consecutive integers in a half-open range.
type RangeIter struct {
	next, stop int
}

// Range returns an iterator over the integers [start, stop).
// Empty when stop <= start.
func Range(start, stop int) *RangeIter {
	return &RangeIter{next: start, stop: max(stop, start)}
}

// Next returns the next integer in the range, or None past the end.
func (r *RangeIter) Next() Option[int] {
	if r.next >= r.stop {
		return None[int]()
	}
	n := r.next
	r.next++
	return Some(n)
}

// SizeHint returns the exact number of remaining integers.
func (r *RangeIter) SizeHint() (int, Option[int]) {
	n := r.stop - r.next
	return n, Some(n)
}
