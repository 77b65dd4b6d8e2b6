// Copyright (c) 2022-present nxtlo. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sain

import "fmt"

// Slice is a non-owning, read-only view over a contiguous sub-range of a
// buffer's storage. It is a (range, length) pair: copying a Slice copies
// the view, never the elements.
//
// A Slice borrows its storage. It must not outlive a reallocation of the
// owning [Vec]; see the package documentation for the borrowing
// discipline.
type Slice[T any] struct {
	items []T
}

// SliceOf creates a read-only view over a Go slice without copying.
// The view aliases items.
func SliceOf[T any](items []T) Slice[T] {
	return Slice[T]{items: items}
}

// Len returns the number of elements in the view.
func (s Slice[T]) Len() int { return len(s.items) }

// IsEmpty reports whether the view covers no elements.
func (s Slice[T]) IsEmpty() bool { return len(s.items) == 0 }

// Get returns the element at index, or None when index is out of range.
func (s Slice[T]) Get(index int) Option[T] {
	if index < 0 || index >= len(s.items) {
		return None[T]()
	}
	return Some(s.items[index])
}

// GetUnchecked returns the element at index without package-level
// validation.
//
// Precondition: index < Len(), verified by the caller.
func (s Slice[T]) GetUnchecked(index int) T {
	return s.items[index]
}

// Index returns the element at index.
// Panics with [IndexError] when index >= Len(); use [Slice.Get] for the
// non-fatal form.
func (s Slice[T]) Index(index int) T {
	boundsCheck(index, len(s.items))
	return s.items[index]
}

// First returns the first element, or None when the view is empty.
func (s Slice[T]) First() Option[T] {
	return s.Get(0)
}

// Last returns the last element, or None when the view is empty.
func (s Slice[T]) Last() Option[T] {
	return s.Get(len(s.items) - 1)
}

// SplitFirst returns the first element paired with a view over the rest,
// or None when the view is empty.
func (s Slice[T]) SplitFirst() Option[Pair[T, Slice[T]]] {
	if len(s.items) == 0 {
		return None[Pair[T, Slice[T]]]()
	}
	return Some(Pair[T, Slice[T]]{
		First:  s.items[0],
		Second: Slice[T]{items: s.items[1:]},
	})
}

// SplitLast returns the last element paired with a view over everything
// before it, or None when the view is empty.
func (s Slice[T]) SplitLast() Option[Pair[T, Slice[T]]] {
	n := len(s.items)
	if n == 0 {
		return None[Pair[T, Slice[T]]]()
	}
	return Some(Pair[T, Slice[T]]{
		First:  s.items[n-1],
		Second: Slice[T]{items: s.items[:n-1]},
	})
}

// SplitAt returns two disjoint views covering [0, mid) and [mid, Len()).
// Concatenating them in order reconstructs the original view exactly.
// Panics with [IndexError] when mid > Len().
func (s Slice[T]) SplitAt(mid int) (Slice[T], Slice[T]) {
	splitCheck(mid, len(s.items))
	return Slice[T]{items: s.items[:mid]}, Slice[T]{items: s.items[mid:]}
}

// SplitAtChecked is the value-returning form of [Slice.SplitAt]:
// None when mid > Len() instead of a panic.
func (s Slice[T]) SplitAtChecked(mid int) Option[Pair[Slice[T], Slice[T]]] {
	if mid < 0 || mid > len(s.items) {
		return None[Pair[Slice[T], Slice[T]]]()
	}
	left, right := s.SplitAt(mid)
	return Some(Pair[Slice[T], Slice[T]]{First: left, Second: right})
}

// Iter returns a lazy iterator over the view's elements, borrowing the
// view for the iterator's lifetime.
func (s Slice[T]) Iter() *SliceIter[T] {
	return IterSlice(s.items)
}

// ToVec copies the view's elements into a new owned [Vec].
func (s Slice[T]) ToVec() Vec[T] {
	return VecFrom(s.items)
}

// Chunks returns an iterator over successive non-overlapping sub-views of
// up to size elements each; the final chunk may be shorter. The chunks
// alias the view's storage.
// Panics with [ErrInvalidArgument] when size == 0.
func (s Slice[T]) Chunks(size int) *SliceChunksIter[T] {
	if size <= 0 {
		panic(fmt.Errorf("%w: chunk size must be positive, got %d", ErrInvalidArgument, size))
	}
	return &SliceChunksIter[T]{rest: s.items, size: size}
}

// Windows returns an iterator over every overlapping sub-view of exactly
// size elements. Yields nothing when size > Len().
// Panics with [ErrInvalidArgument] when size == 0.
func (s Slice[T]) Windows(size int) *WindowsIter[T] {
	if size <= 0 {
		panic(fmt.Errorf("%w: window size must be positive, got %d", ErrInvalidArgument, size))
	}
	return &WindowsIter[T]{rest: s.items, size: size}
}

// Raw returns the underlying Go slice. The returned slice aliases the
// same storage as the view; mutating it through this escape hatch breaks
// the read-only contract.
func (s Slice[T]) Raw() []T {
	return s.items
}

// String implements fmt.Stringer.
func (s Slice[T]) String() string {
	return fmt.Sprintf("Slice%v", s.items)
}

// SliceContains reports whether the view holds an element equal to item.
func SliceContains[T comparable](s Slice[T], item T) bool {
	for _, x := range s.items {
		if x == item {
			return true
		}
	}
	return false
}

// SlicePosition returns the index of the first element equal to item,
// or None.
func SlicePosition[T comparable](s Slice[T], item T) Option[int] {
	for i, x := range s.items {
		if x == item {
			return Some(i)
		}
	}
	return None[int]()
}

// SliceStartsWith reports whether the view begins with needle.
// Every view starts with an empty needle.
func SliceStartsWith[T comparable](s Slice[T], needle []T) bool {
	if len(needle) > len(s.items) {
		return false
	}
	for i, x := range needle {
		if s.items[i] != x {
			return false
		}
	}
	return true
}

// SliceEndsWith reports whether the view ends with needle.
// Every view ends with an empty needle.
func SliceEndsWith[T comparable](s Slice[T], needle []T) bool {
	if len(needle) > len(s.items) {
		return false
	}
	offset := len(s.items) - len(needle)
	for i, x := range needle {
		if s.items[offset+i] != x {
			return false
		}
	}
	return true
}

// SliceEqual reports whether two views hold equal elements in order.
func SliceEqual[T comparable](a, b Slice[T]) bool {
	if len(a.items) != len(b.items) {
		return false
	}
	for i, x := range a.items {
		if b.items[i] != x {
			return false
		}
	}
	return true
}

// SliceMut is a non-owning, mutable view over a contiguous sub-range of a
// buffer's storage.
//
// A SliceMut is an exclusive borrow: no other live view (mutable or not)
// may overlap its range. [SliceMut.SplitAtMut], [SliceMut.SplitFirstMut]
// and [SliceMut.SplitLastMut] are the only sanctioned way to subdivide
// that exclusivity — they partition the range into disjoint halves, and
// the original view must not be used after splitting.
type SliceMut[T any] struct {
	items []T
}

// MutSliceOf creates a mutable view over a Go slice without copying.
// The caller hands exclusive access to items for the view's lifetime.
func MutSliceOf[T any](items []T) SliceMut[T] {
	return SliceMut[T]{items: items}
}

// Len returns the number of elements in the view.
func (s SliceMut[T]) Len() int { return len(s.items) }

// IsEmpty reports whether the view covers no elements.
func (s SliceMut[T]) IsEmpty() bool { return len(s.items) == 0 }

// Get returns the element at index, or None when index is out of range.
func (s SliceMut[T]) Get(index int) Option[T] {
	if index < 0 || index >= len(s.items) {
		return None[T]()
	}
	return Some(s.items[index])
}

// GetUnchecked returns the element at index without package-level
// validation.
//
// Precondition: index < Len(), verified by the caller.
func (s SliceMut[T]) GetUnchecked(index int) T {
	return s.items[index]
}

// Index returns the element at index.
// Panics with [IndexError] when index >= Len().
func (s SliceMut[T]) Index(index int) T {
	boundsCheck(index, len(s.items))
	return s.items[index]
}

// Set overwrites the element at index.
// Panics with [IndexError] when index >= Len().
func (s SliceMut[T]) Set(index int, item T) {
	boundsCheck(index, len(s.items))
	s.items[index] = item
}

// Fill overwrites every element with value in place.
func (s SliceMut[T]) Fill(value T) {
	for i := range s.items {
		s.items[i] = value
	}
}

// FillWith overwrites every element with successive results of f.
func (s SliceMut[T]) FillWith(f func() T) {
	for i := range s.items {
		s.items[i] = f()
	}
}

// Reverse reverses the order of the elements in place.
func (s SliceMut[T]) Reverse() {
	for i, j := 0, len(s.items)-1; i < j; i, j = i+1, j-1 {
		s.items[i], s.items[j] = s.items[j], s.items[i]
	}
}

// Swap exchanges the elements at i and j.
// Panics with [IndexError] on an invalid index.
func (s SliceMut[T]) Swap(i, j int) {
	boundsCheck(i, len(s.items))
	boundsCheck(j, len(s.items))
	s.SwapUnchecked(i, j)
}

// SwapUnchecked exchanges the elements at i and j without validating
// either index.
//
// Precondition: i < Len() and j < Len(), verified by the caller.
func (s SliceMut[T]) SwapUnchecked(i, j int) {
	s.items[i], s.items[j] = s.items[j], s.items[i]
}

// CopyFromSlice overwrites the view's elements with a copy of src.
// Panics with [ErrInvalidArgument] when the lengths differ.
func (s SliceMut[T]) CopyFromSlice(src Slice[T]) {
	if len(src.items) != len(s.items) {
		panic(fmt.Errorf("%w: copy length mismatch: dst %d, src %d",
			ErrInvalidArgument, len(s.items), len(src.items)))
	}
	copy(s.items, src.items)
}

// SplitFirstMut returns a pointer to the first element paired with an
// exclusive view over the rest, or None when the view is empty.
// The receiver is consumed: the split halves now hold the exclusive
// access and the original view must not be used again.
func (s SliceMut[T]) SplitFirstMut() Option[Pair[*T, SliceMut[T]]] {
	if len(s.items) == 0 {
		return None[Pair[*T, SliceMut[T]]]()
	}
	return Some(Pair[*T, SliceMut[T]]{
		First:  &s.items[0],
		Second: SliceMut[T]{items: s.items[1:]},
	})
}

// SplitLastMut returns a pointer to the last element paired with an
// exclusive view over everything before it, or None when the view is
// empty. The receiver is consumed, as with [SliceMut.SplitFirstMut].
func (s SliceMut[T]) SplitLastMut() Option[Pair[*T, SliceMut[T]]] {
	n := len(s.items)
	if n == 0 {
		return None[Pair[*T, SliceMut[T]]]()
	}
	return Some(Pair[*T, SliceMut[T]]{
		First:  &s.items[n-1],
		Second: SliceMut[T]{items: s.items[:n-1]},
	})
}

// SplitAtMut partitions the view into two disjoint exclusive views
// covering [0, mid) and [mid, Len()). The receiver is consumed.
// Panics with [IndexError] when mid > Len().
func (s SliceMut[T]) SplitAtMut(mid int) (SliceMut[T], SliceMut[T]) {
	splitCheck(mid, len(s.items))
	return SliceMut[T]{items: s.items[:mid:mid]}, SliceMut[T]{items: s.items[mid:]}
}

// SplitOffFirst removes the first element from the view in place,
// shrinking the receiver, and returns it. None when the view is empty.
func (s *SliceMut[T]) SplitOffFirst() Option[T] {
	if len(s.items) == 0 {
		return None[T]()
	}
	first := s.items[0]
	s.items = s.items[1:]
	return Some(first)
}

// SplitOffLast removes the last element from the view in place,
// shrinking the receiver, and returns it. None when the view is empty.
func (s *SliceMut[T]) SplitOffLast() Option[T] {
	n := len(s.items)
	if n == 0 {
		return None[T]()
	}
	last := s.items[n-1]
	s.items = s.items[:n-1]
	return Some(last)
}

// Freeze returns a read-only view over the same range, ending the
// exclusive borrow. The mutable view must not be used afterwards.
func (s SliceMut[T]) Freeze() Slice[T] {
	return Slice[T]{items: s.items}
}

// Iter returns a lazy iterator over the view's elements. The view must
// not be mutated while the iterator is live.
func (s SliceMut[T]) Iter() *SliceIter[T] {
	return IterSlice(s.items)
}

// Raw returns the underlying Go slice, aliasing the same storage.
func (s SliceMut[T]) Raw() []T {
	return s.items
}

// String implements fmt.Stringer.
func (s SliceMut[T]) String() string {
	return fmt.Sprintf("SliceMut%v", s.items)
}
