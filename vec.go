// Copyright (c) 2022-present nxtlo. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sain

import "fmt"

// growthFactor is the geometric growth factor for owned buffers.
// Capacity doubles on exhaustion, starting from 1, so pushing k items into
// an empty buffer performs at most ceil(log2(k))+1 reallocations.
const growthFactor = 2

// Vec is an owned, contiguous, growable buffer of elements of type T.
//
// A Vec is singly owned: it is moved or borrowed, never shared. Views
// obtained through [Vec.AsSlice], [Vec.AsMutSlice] or [Vec.SplitAt] alias
// the Vec's storage and are invalidated by any operation that can
// reallocate it (a growing [Vec.Push], [Vec.Insert], [Vec.Reserve]).
// Such views must not be used past the next reallocation; this is an API
// contract, not a runtime check.
//
// The zero value is an empty Vec ready for use.
type Vec[T any] struct {
	items []T
}

// NewVec creates an empty Vec with no allocated capacity.
func NewVec[T any]() Vec[T] {
	return Vec[T]{}
}

// VecWithCapacity creates an empty Vec with capacity for at least
// capacity elements.
func VecWithCapacity[T any](capacity int) Vec[T] {
	return Vec[T]{items: make([]T, 0, capacity)}
}

// VecOf creates a Vec from the given elements.
func VecOf[T any](items ...T) Vec[T] {
	return Vec[T]{items: items}
}

// VecFrom creates a Vec holding a copy of items. The new Vec does not
// alias the argument.
func VecFrom[T any](items []T) Vec[T] {
	owned := make([]T, len(items))
	copy(owned, items)
	return Vec[T]{items: owned}
}

// VecOwning creates a Vec that adopts items as its backing storage
// without copying. Ownership transfers to the Vec; the caller must not
// use items afterwards.
func VecOwning[T any](items []T) Vec[T] {
	return Vec[T]{items: items}
}

// Len returns the number of elements.
func (v *Vec[T]) Len() int { return len(v.items) }

// Cap returns the number of allocated element slots.
// Len() <= Cap() always holds.
func (v *Vec[T]) Cap() int { return cap(v.items) }

// IsEmpty reports whether the Vec holds no elements.
func (v *Vec[T]) IsEmpty() bool { return len(v.items) == 0 }

// grow reallocates so that capacity is at least min, doubling from the
// current capacity (minimum 1).
func (v *Vec[T]) grow(min int) {
	newCap := cap(v.items)
	if newCap == 0 {
		newCap = 1
	}
	for newCap < min {
		newCap *= growthFactor
	}
	if newCap == cap(v.items) {
		return
	}
	next := make([]T, len(v.items), newCap)
	copy(next, v.items)
	v.items = next
}

// Push appends item, growing capacity geometrically when exhausted.
// Amortized O(1).
func (v *Vec[T]) Push(item T) {
	if len(v.items) == cap(v.items) {
		v.grow(len(v.items) + 1)
	}
	v.items = append(v.items, item)
}

// PushWithinCapacity appends item only if spare capacity exists.
// Returns None on success, or Some(item) handing the item back when the
// Vec is full. Never allocates.
func (v *Vec[T]) PushWithinCapacity(item T) Option[T] {
	if len(v.items) == cap(v.items) {
		return Some(item)
	}
	v.items = append(v.items, item)
	return None[T]()
}

// Pop removes and returns the last element, or None if the Vec is empty.
func (v *Vec[T]) Pop() Option[T] {
	n := len(v.items)
	if n == 0 {
		return None[T]()
	}
	item := v.items[n-1]
	var zero T
	v.items[n-1] = zero
	v.items = v.items[:n-1]
	return Some(item)
}

// PopIf removes and returns the last element when it matches pred,
// or None otherwise.
func (v *Vec[T]) PopIf(pred func(T) bool) Option[T] {
	n := len(v.items)
	if n == 0 || !pred(v.items[n-1]) {
		return None[T]()
	}
	return v.Pop()
}

// Insert inserts item at index, shifting subsequent elements right.
// index may equal Len(), appending. Panics with [IndexError] when
// index > Len().
func (v *Vec[T]) Insert(index int, item T) {
	splitCheck(index, len(v.items))
	if len(v.items) == cap(v.items) {
		v.grow(len(v.items) + 1)
	}
	var zero T
	v.items = append(v.items, zero)
	copy(v.items[index+1:], v.items[index:])
	v.items[index] = item
}

// Remove removes and returns the element at index, shifting subsequent
// elements left. Panics with [IndexError] when index >= Len().
func (v *Vec[T]) Remove(index int) T {
	boundsCheck(index, len(v.items))
	item := v.items[index]
	copy(v.items[index:], v.items[index+1:])
	n := len(v.items)
	var zero T
	v.items[n-1] = zero
	v.items = v.items[:n-1]
	return item
}

// SwapRemove removes and returns the element at index by replacing it
// with the last element. O(1) but does not preserve order.
// Panics with [IndexError] when index >= Len().
func (v *Vec[T]) SwapRemove(index int) T {
	boundsCheck(index, len(v.items))
	n := len(v.items)
	item := v.items[index]
	v.items[index] = v.items[n-1]
	var zero T
	v.items[n-1] = zero
	v.items = v.items[:n-1]
	return item
}

// Reserve grows capacity to hold at least additional more elements.
// No-op when spare capacity already suffices.
func (v *Vec[T]) Reserve(additional int) {
	if additional <= 0 || cap(v.items)-len(v.items) >= additional {
		return
	}
	v.grow(len(v.items) + additional)
}

// ShrinkToFit reduces capacity to exactly Len().
func (v *Vec[T]) ShrinkToFit() {
	v.ShrinkTo(0)
}

// ShrinkTo reduces capacity toward minCapacity, never below Len().
// No-op when capacity is already at or below the target.
func (v *Vec[T]) ShrinkTo(minCapacity int) {
	target := max(minCapacity, len(v.items))
	if target >= cap(v.items) {
		return
	}
	next := make([]T, len(v.items), target)
	copy(next, v.items)
	v.items = next
}

// Truncate drops elements beyond newLen. No-op when newLen >= Len().
func (v *Vec[T]) Truncate(newLen int) {
	newLen = max(newLen, 0)
	if newLen >= len(v.items) {
		return
	}
	var zero T
	for i := newLen; i < len(v.items); i++ {
		v.items[i] = zero
	}
	v.items = v.items[:newLen]
}

// Clear drops every element, keeping allocated capacity.
func (v *Vec[T]) Clear() {
	v.Truncate(0)
}

// Swap exchanges the elements at i and j.
// Panics with [IndexError] on an invalid index.
func (v *Vec[T]) Swap(i, j int) {
	boundsCheck(i, len(v.items))
	boundsCheck(j, len(v.items))
	v.SwapUnchecked(i, j)
}

// SwapUnchecked exchanges the elements at i and j without validating
// either index.
//
// Precondition: i < Len() and j < Len(), verified by the caller.
func (v *Vec[T]) SwapUnchecked(i, j int) {
	v.items[i], v.items[j] = v.items[j], v.items[i]
}

// Fill overwrites every element with value in place.
func (v *Vec[T]) Fill(value T) {
	for i := range v.items {
		v.items[i] = value
	}
}

// Extend appends every item yielded by it, pre-reserving capacity from
// the iterator's size hint when one is advertised.
func (v *Vec[T]) Extend(it Iterator[T]) {
	lower, _ := sizeHintOf(it)
	if lower > 0 {
		v.Reserve(lower)
	}
	for {
		item, ok := it.Next().Get()
		if !ok {
			return
		}
		v.Push(item)
	}
}

// ExtendSlice appends a copy of every element of items.
func (v *Vec[T]) ExtendSlice(items []T) {
	v.Reserve(len(items))
	v.items = append(v.items, items...)
}

// Retain keeps only the elements matching pred, in order, in place.
func (v *Vec[T]) Retain(pred func(T) bool) {
	kept := v.items[:0]
	for _, item := range v.items {
		if pred(item) {
			kept = append(kept, item)
		}
	}
	var zero T
	for i := len(kept); i < len(v.items); i++ {
		v.items[i] = zero
	}
	v.items = kept
}

// DedupBy removes consecutive elements for which same reports equality,
// keeping the first of each run.
func (v *Vec[T]) DedupBy(same func(a, b T) bool) {
	if len(v.items) < 2 {
		return
	}
	kept := v.items[:1]
	for _, item := range v.items[1:] {
		if !same(kept[len(kept)-1], item) {
			kept = append(kept, item)
		}
	}
	var zero T
	for i := len(kept); i < len(v.items); i++ {
		v.items[i] = zero
	}
	v.items = kept
}

// DedupVec removes consecutive equal elements from v, keeping the first
// of each run.
func DedupVec[T comparable](v *Vec[T]) {
	v.DedupBy(func(a, b T) bool { return a == b })
}

// Get returns the element at index, or None when index is out of range.
func (v *Vec[T]) Get(index int) Option[T] {
	if index < 0 || index >= len(v.items) {
		return None[T]()
	}
	return Some(v.items[index])
}

// GetUnchecked returns the element at index without package-level
// validation.
//
// Precondition: index < Len(), verified by the caller.
func (v *Vec[T]) GetUnchecked(index int) T {
	return v.items[index]
}

// Set overwrites the element at index.
// Panics with [IndexError] when index >= Len().
func (v *Vec[T]) Set(index int, item T) {
	boundsCheck(index, len(v.items))
	v.items[index] = item
}

// First returns the first element, or None when empty.
func (v *Vec[T]) First() Option[T] {
	return v.Get(0)
}

// Last returns the last element, or None when empty.
func (v *Vec[T]) Last() Option[T] {
	return v.Get(len(v.items) - 1)
}

// SplitAt returns two disjoint views covering [0, mid) and [mid, Len()).
// Panics with [IndexError] when mid > Len(). The views alias the Vec's
// storage and die on its next reallocation.
func (v *Vec[T]) SplitAt(mid int) (Slice[T], Slice[T]) {
	splitCheck(mid, len(v.items))
	return Slice[T]{items: v.items[:mid]}, Slice[T]{items: v.items[mid:]}
}

// SplitOff transfers ownership of the tail [at, Len()) into a new Vec,
// shrinking the receiver to [0, at) in place.
// Panics with [IndexError] when at > Len().
func (v *Vec[T]) SplitOff(at int) Vec[T] {
	splitCheck(at, len(v.items))
	tail := make([]T, len(v.items)-at)
	copy(tail, v.items[at:])
	v.Truncate(at)
	return Vec[T]{items: tail}
}

// AsSlice returns a read-only view over the whole Vec.
func (v *Vec[T]) AsSlice() Slice[T] {
	return Slice[T]{items: v.items}
}

// AsMutSlice returns an exclusive mutable view over the whole Vec.
// No other view over the Vec may be live while it is in use.
func (v *Vec[T]) AsMutSlice() SliceMut[T] {
	return SliceMut[T]{items: v.items}
}

// Leak releases the backing storage to the caller as a plain Go slice,
// leaving the Vec empty. Ownership transfers out; the Vec no longer
// aliases the returned slice.
func (v *Vec[T]) Leak() []T {
	out := v.items
	v.items = nil
	return out
}

// Iter returns a lazy iterator over the Vec's elements, borrowing the
// Vec for the iterator's lifetime. The Vec must not be mutated while
// the iterator is live.
func (v *Vec[T]) Iter() *SliceIter[T] {
	return IterSlice(v.items)
}

// Clone returns a deep copy of the Vec with capacity equal to Len().
func (v *Vec[T]) Clone() Vec[T] {
	return VecFrom(v.items)
}

// String implements fmt.Stringer.
func (v Vec[T]) String() string {
	return fmt.Sprintf("Vec%v", v.items)
}
