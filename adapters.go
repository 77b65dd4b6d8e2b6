// Copyright (c) 2022-present nxtlo. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sain

import "fmt"

// Iterator adapters. Each adapter is a concrete generic struct wrapping
// an upstream iterator and holding exactly the state needed to resume.
// Adapters compose into a single terminal pull chain: nothing advances
// until a consumer pulls.

// MapIter transforms each item yielded by an upstream iterator.
type MapIter[T, U any] struct {
	it Iterator[T]
	f  func(T) U
}

// Map returns an iterator applying f to every item of it.
// Pulls upstream once per pull and never buffers.
func Map[T, U any](it Iterator[T], f func(T) U) *MapIter[T, U] {
	return &MapIter[T, U]{it: it, f: f}
}

func (m *MapIter[T, U]) Next() Option[U] {
	return MapOption(m.it.Next(), m.f)
}

// SizeHint delegates to the upstream iterator; mapping preserves length.
func (m *MapIter[T, U]) SizeHint() (int, Option[int]) {
	return sizeHintOf(m.it)
}

// FilterIter discards upstream items failing a predicate.
type FilterIter[T any] struct {
	it   Iterator[T]
	pred func(T) bool
}

// Filter returns an iterator yielding only the items of it matching
// pred. Each pull draws from upstream until an item passes or upstream
// is exhausted.
func Filter[T any](it Iterator[T], pred func(T) bool) *FilterIter[T] {
	return &FilterIter[T]{it: it, pred: pred}
}

func (f *FilterIter[T]) Next() Option[T] {
	for {
		item, ok := f.it.Next().Get()
		if !ok {
			return None[T]()
		}
		if f.pred(item) {
			return Some(item)
		}
	}
}

// SizeHint keeps the upstream upper bound; the lower bound collapses to
// zero since every item may be rejected.
func (f *FilterIter[T]) SizeHint() (int, Option[int]) {
	_, upper := sizeHintOf(f.it)
	return 0, upper
}

// TakeIter yields at most a fixed number of upstream items.
type TakeIter[T any] struct {
	it        Iterator[T]
	remaining int
}

// Take returns an iterator yielding at most n items of it. Once n items
// have been yielded the iterator is exhausted without draining upstream
// further.
func Take[T any](it Iterator[T], n int) *TakeIter[T] {
	return &TakeIter[T]{it: it, remaining: max(n, 0)}
}

func (t *TakeIter[T]) Next() Option[T] {
	if t.remaining == 0 {
		return None[T]()
	}
	item := t.it.Next()
	if item.IsNone() {
		t.remaining = 0
		return item
	}
	t.remaining--
	return item
}

// SizeHint clamps the upstream hint to the remaining count.
func (t *TakeIter[T]) SizeHint() (int, Option[int]) {
	lower, upper := sizeHintOf(t.it)
	lower = min(lower, t.remaining)
	hi := MapOptionOr(upper, t.remaining, func(u int) int { return min(u, t.remaining) })
	return lower, Some(hi)
}

// SkipIter discards a fixed number of leading upstream items.
type SkipIter[T any] struct {
	it      Iterator[T]
	pending int
}

// Skip returns an iterator yielding the items of it after the first n.
func Skip[T any](it Iterator[T], n int) *SkipIter[T] {
	return &SkipIter[T]{it: it, pending: max(n, 0)}
}

func (s *SkipIter[T]) Next() Option[T] {
	for s.pending > 0 {
		s.pending--
		if s.it.Next().IsNone() {
			s.pending = 0
			return None[T]()
		}
	}
	return s.it.Next()
}

// SizeHint lowers both upstream bounds by the pending skip count.
func (s *SkipIter[T]) SizeHint() (int, Option[int]) {
	lower, upper := sizeHintOf(s.it)
	lower = max(lower-s.pending, 0)
	pending := s.pending
	return lower, MapOption(upper, func(u int) int { return max(u-pending, 0) })
}

// TakeWhileIter yields upstream items until the predicate first fails.
type TakeWhileIter[T any] struct {
	it   Iterator[T]
	pred func(T) bool
	done bool
}

// TakeWhile returns an iterator yielding the leading items of it that
// match pred. The first failing item is consumed but not yielded, and
// the iterator is exhausted from then on.
func TakeWhile[T any](it Iterator[T], pred func(T) bool) *TakeWhileIter[T] {
	return &TakeWhileIter[T]{it: it, pred: pred}
}

func (t *TakeWhileIter[T]) Next() Option[T] {
	if t.done {
		return None[T]()
	}
	item, ok := t.it.Next().Get()
	if !ok || !t.pred(item) {
		t.done = true
		return None[T]()
	}
	return Some(item)
}

// DropWhileIter discards upstream items until the predicate first fails.
type DropWhileIter[T any] struct {
	it       Iterator[T]
	pred     func(T) bool
	dropping bool
}

// DropWhile returns an iterator discarding the leading items of it that
// match pred and yielding everything from the first failing item on.
func DropWhile[T any](it Iterator[T], pred func(T) bool) *DropWhileIter[T] {
	return &DropWhileIter[T]{it: it, pred: pred, dropping: true}
}

func (d *DropWhileIter[T]) Next() Option[T] {
	for {
		item, ok := d.it.Next().Get()
		if !ok {
			return None[T]()
		}
		if d.dropping && d.pred(item) {
			continue
		}
		d.dropping = false
		return Some(item)
	}
}

// ChainIter yields one iterator's items, then another's.
type ChainIter[T any] struct {
	first, second Iterator[T]
	state         chainState
}

type chainState uint8

const (
	chainFirst chainState = iota
	chainSecond
	chainDone
)

// Chain returns an iterator yielding every item of first, then every
// item of second. Once first reports exhaustion the switch to second is
// permanent.
func Chain[T any](first, second Iterator[T]) *ChainIter[T] {
	return &ChainIter[T]{first: first, second: second}
}

func (c *ChainIter[T]) Next() Option[T] {
	switch c.state {
	case chainFirst:
		if item := c.first.Next(); item.IsSome() {
			return item
		}
		c.state = chainSecond
		fallthrough
	case chainSecond:
		if item := c.second.Next(); item.IsSome() {
			return item
		}
		c.state = chainDone
	}
	return None[T]()
}

// SizeHint sums the two upstream hints; the upper bound survives only
// when both sides advertise one.
func (c *ChainIter[T]) SizeHint() (int, Option[int]) {
	switch c.state {
	case chainDone:
		return 0, Some(0)
	case chainSecond:
		return sizeHintOf(c.second)
	}
	fl, fu := sizeHintOf(c.first)
	sl, su := sizeHintOf(c.second)
	upper := AndThenOption(fu, func(f int) Option[int] {
		return MapOption(su, func(s int) int { return f + s })
	})
	return fl + sl, upper
}

// EnumerateIter pairs each upstream item with a running index.
type EnumerateIter[T any] struct {
	it    Iterator[T]
	index int
}

// Enumerate returns an iterator yielding Pair{index, item} with a
// zero-based running index.
func Enumerate[T any](it Iterator[T]) *EnumerateIter[T] {
	return &EnumerateIter[T]{it: it}
}

func (e *EnumerateIter[T]) Next() Option[Pair[int, T]] {
	item, ok := e.it.Next().Get()
	if !ok {
		return None[Pair[int, T]]()
	}
	p := Pair[int, T]{First: e.index, Second: item}
	e.index++
	return Some(p)
}

// SizeHint delegates to the upstream iterator.
func (e *EnumerateIter[T]) SizeHint() (int, Option[int]) {
	return sizeHintOf(e.it)
}

// ZipIter yields pairs drawn from two upstream iterators in lockstep.
type ZipIter[A, B any] struct {
	a    Iterator[A]
	b    Iterator[B]
	done bool
}

// Zip returns an iterator yielding Pair{a, b} until either side is
// exhausted. When one side ends, the other is not pulled beyond the item
// already drawn for the unfinished pair.
func Zip[A, B any](a Iterator[A], b Iterator[B]) *ZipIter[A, B] {
	return &ZipIter[A, B]{a: a, b: b}
}

func (z *ZipIter[A, B]) Next() Option[Pair[A, B]] {
	if z.done {
		return None[Pair[A, B]]()
	}
	av, ok := z.a.Next().Get()
	if !ok {
		z.done = true
		return None[Pair[A, B]]()
	}
	bv, ok := z.b.Next().Get()
	if !ok {
		z.done = true
		return None[Pair[A, B]]()
	}
	return Some(Pair[A, B]{First: av, Second: bv})
}

// SizeHint is the pointwise minimum of the two upstream hints.
func (z *ZipIter[A, B]) SizeHint() (int, Option[int]) {
	if z.done {
		return 0, Some(0)
	}
	al, au := sizeHintOf(z.a)
	bl, bu := sizeHintOf(z.b)
	upper := MatchOption(au, func(a int) Option[int] {
		return Some(MapOptionOr(bu, a, func(b int) int { return min(a, b) }))
	}, func() Option[int] {
		return bu
	})
	return min(al, bl), upper
}

// ChunksIter groups upstream items into fixed-size batches.
type ChunksIter[T any] struct {
	it   Iterator[T]
	size int
	done bool
}

// Chunks returns an iterator yielding successive groups of up to size
// items as read-only views; the final group may be shorter. Each group
// owns freshly allocated storage. For zero-copy sub-views of contiguous
// storage use [Slice.Chunks] instead.
// Panics with [ErrInvalidArgument] when size == 0.
func Chunks[T any](it Iterator[T], size int) *ChunksIter[T] {
	if size <= 0 {
		panic(fmt.Errorf("%w: chunk size must be positive, got %d", ErrInvalidArgument, size))
	}
	return &ChunksIter[T]{it: it, size: size}
}

func (c *ChunksIter[T]) Next() Option[Slice[T]] {
	if c.done {
		return None[Slice[T]]()
	}
	group := make([]T, 0, c.size)
	for len(group) < c.size {
		item, ok := c.it.Next().Get()
		if !ok {
			c.done = true
			break
		}
		group = append(group, item)
	}
	if len(group) == 0 {
		return None[Slice[T]]()
	}
	return Some(Slice[T]{items: group})
}

// SizeHint divides the upstream hint by the chunk size, rounding up.
func (c *ChunksIter[T]) SizeHint() (int, Option[int]) {
	if c.done {
		return 0, Some(0)
	}
	lower, upper := sizeHintOf(c.it)
	size := c.size
	ceil := func(n int) int { return (n + size - 1) / size }
	return ceil(lower), MapOption(upper, ceil)
}

// SliceChunksIter yields successive non-overlapping sub-views of a
// contiguous view; see [Slice.Chunks].
type SliceChunksIter[T any] struct {
	rest []T
	size int
}

func (c *SliceChunksIter[T]) Next() Option[Slice[T]] {
	if len(c.rest) == 0 {
		return None[Slice[T]]()
	}
	n := min(c.size, len(c.rest))
	chunk := c.rest[:n:n]
	c.rest = c.rest[n:]
	return Some(Slice[T]{items: chunk})
}

// SizeHint returns the exact number of remaining chunks.
func (c *SliceChunksIter[T]) SizeHint() (int, Option[int]) {
	n := (len(c.rest) + c.size - 1) / c.size
	return n, Some(n)
}

// WindowsIter yields every overlapping fixed-size sub-view of a
// contiguous view; see [Slice.Windows].
type WindowsIter[T any] struct {
	rest []T
	size int
}

func (w *WindowsIter[T]) Next() Option[Slice[T]] {
	if len(w.rest) < w.size {
		w.rest = nil
		return None[Slice[T]]()
	}
	window := w.rest[:w.size:w.size]
	w.rest = w.rest[1:]
	return Some(Slice[T]{items: window})
}

// SizeHint returns the exact number of remaining windows.
func (w *WindowsIter[T]) SizeHint() (int, Option[int]) {
	n := max(len(w.rest)-w.size+1, 0)
	return n, Some(n)
}

// StepByIter yields the first upstream item, then every size-th after it.
type StepByIter[T any] struct {
	it    Iterator[T]
	step  int
	first bool
}

// StepBy returns an iterator yielding the first item of it and then
// every step-th item after it, skipping the rest.
// Panics with [ErrInvalidArgument] when step == 0.
func StepBy[T any](it Iterator[T], step int) *StepByIter[T] {
	if step <= 0 {
		panic(fmt.Errorf("%w: step must be positive, got %d", ErrInvalidArgument, step))
	}
	return &StepByIter[T]{it: it, step: step, first: true}
}

func (s *StepByIter[T]) Next() Option[T] {
	if s.first {
		s.first = false
		return s.it.Next()
	}
	for range s.step - 1 {
		if s.it.Next().IsNone() {
			return None[T]()
		}
	}
	return s.it.Next()
}

// InspectIter calls a function on each item as it passes through.
type InspectIter[T any] struct {
	it Iterator[T]
	f  func(T)
}

// Inspect returns an iterator that yields the items of it unchanged,
// calling f on each one as it is pulled.
func Inspect[T any](it Iterator[T], f func(T)) *InspectIter[T] {
	return &InspectIter[T]{it: it, f: f}
}

func (i *InspectIter[T]) Next() Option[T] {
	item := i.it.Next()
	if v, ok := item.Get(); ok {
		i.f(v)
	}
	return item
}

// SizeHint delegates to the upstream iterator.
func (i *InspectIter[T]) SizeHint() (int, Option[int]) {
	return sizeHintOf(i.it)
}

// FuseIter imposes the fused contract on a foreign iterator.
type FuseIter[T any] struct {
	it   Iterator[T]
	done bool
}

// Fuse wraps it so that once Next reports None, upstream is never pulled
// again. Iterators built by this package are already fused; Fuse exists
// for foreign [Iterator] implementations without that guarantee.
func Fuse[T any](it Iterator[T]) *FuseIter[T] {
	return &FuseIter[T]{it: it}
}

func (f *FuseIter[T]) Next() Option[T] {
	if f.done {
		return None[T]()
	}
	item := f.it.Next()
	if item.IsNone() {
		f.done = true
	}
	return item
}

// SizeHint delegates to the upstream iterator until exhaustion.
func (f *FuseIter[T]) SizeHint() (int, Option[int]) {
	if f.done {
		return 0, Some(0)
	}
	return sizeHintOf(f.it)
}
