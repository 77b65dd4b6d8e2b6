// Copyright (c) 2022-present nxtlo. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sain

import (
	"fmt"
	"unicode/utf8"
)

// Bytes is an immutable, owned byte buffer.
//
// Construction copies or adopts its input (documented per constructor);
// after construction the contents never change, so sub-views produced by
// [Bytes.SplitAt] may safely share storage.
type Bytes struct {
	inner []byte
}

// BytesFromStr creates a Bytes holding the UTF-8 encoding of s.
// The string's bytes are copied.
func BytesFromStr(s string) Bytes {
	return Bytes{inner: []byte(s)}
}

// BytesFrom creates a Bytes holding a copy of b.
func BytesFrom(b []byte) Bytes {
	owned := make([]byte, len(b))
	copy(owned, b)
	return Bytes{inner: owned}
}

// BytesOwning creates a Bytes that adopts b as its backing storage
// without copying. The caller must not mutate b afterwards, or the
// immutability contract is broken.
func BytesOwning(b []byte) Bytes {
	return Bytes{inner: b}
}

// Len returns the number of bytes.
func (b Bytes) Len() int { return len(b.inner) }

// IsEmpty reports whether the buffer holds no bytes.
func (b Bytes) IsEmpty() bool { return len(b.inner) == 0 }

// Get returns the byte at index, or None when index is out of range.
func (b Bytes) Get(index int) Option[byte] {
	if index < 0 || index >= len(b.inner) {
		return None[byte]()
	}
	return Some(b.inner[index])
}

// Index returns the byte at index.
// Panics with [IndexError] when index >= Len().
func (b Bytes) Index(index int) byte {
	boundsCheck(index, len(b.inner))
	return b.inner[index]
}

// AsSlice returns a read-only view over the whole buffer.
func (b Bytes) AsSlice() Slice[byte] {
	return Slice[byte]{items: b.inner}
}

// Iter returns a lazy iterator over the buffer's bytes.
func (b Bytes) Iter() *SliceIter[byte] {
	return IterSlice(b.inner)
}

// Chars returns a lazy iterator decoding the buffer as UTF-8, one rune
// per pull. A malformed sub-sequence yields Err([ErrInvalidEncoding]) for
// that element, consumes one byte, and decoding continues — a single bad
// byte does not abort the sequence.
func (b Bytes) Chars() *CharsIter {
	return &CharsIter{rest: b.inner}
}

// TryToStr decodes the buffer as UTF-8 text.
// Returns Err([ErrInvalidEncoding]) when the buffer is not valid UTF-8.
func (b Bytes) TryToStr() Result[string, error] {
	if !utf8.Valid(b.inner) {
		return Err[string, error](ErrInvalidEncoding)
	}
	return Ok[string, error](string(b.inner))
}

// ToStr decodes the buffer as UTF-8 text.
//
// Precondition: the buffer must be valid UTF-8. Panics with
// [ErrInvalidEncoding] otherwise; use [Bytes.TryToStr] for the value-based
// form.
func (b Bytes) ToStr() string {
	if !utf8.Valid(b.inner) {
		panic(ErrInvalidEncoding)
	}
	return string(b.inner)
}

// SplitAt returns two sub-buffers sharing the receiver's storage and
// covering [0, mid) and [mid, Len()). Sharing is safe because Bytes is
// immutable. Panics with [IndexError] when mid > Len().
func (b Bytes) SplitAt(mid int) (Bytes, Bytes) {
	splitCheck(mid, len(b.inner))
	return Bytes{inner: b.inner[:mid:mid]}, Bytes{inner: b.inner[mid:]}
}

// SplitOff transfers ownership of the tail [at, Len()) into a new Bytes,
// shrinking the receiver to [0, at) in place.
// Panics with [IndexError] when at > Len().
func (b *Bytes) SplitOff(at int) Bytes {
	splitCheck(at, len(b.inner))
	tail := make([]byte, len(b.inner)-at)
	copy(tail, b.inner[at:])
	b.inner = b.inner[:at:at]
	return Bytes{inner: tail}
}

// ToMut copies the buffer into a new mutable [BytesMut].
func (b Bytes) ToMut() BytesMut {
	return BytesMut{inner: VecFrom(b.inner)}
}

// Clone returns a copy of the buffer with its own storage.
func (b Bytes) Clone() Bytes {
	return BytesFrom(b.inner)
}

// Equal reports whether two buffers hold the same bytes.
func (b Bytes) Equal(other Bytes) bool {
	return string(b.inner) == string(other.inner)
}

// String implements fmt.Stringer with a lossy decode: malformed bytes
// render as the replacement character. Use [Bytes.TryToStr] for strict
// decoding.
func (b Bytes) String() string {
	return string(b.inner)
}

// BytesMut is a mutable, growable, owned byte buffer: the byte
// specialization of [Vec] with text and fill operations.
//
// It follows the same ownership, capacity and view-invalidation model as
// [Vec]. The zero value is an empty buffer ready for use.
type BytesMut struct {
	inner Vec[byte]
}

// NewBytesMut creates an empty buffer with no allocated capacity.
func NewBytesMut() BytesMut {
	return BytesMut{}
}

// BytesMutWithCapacity creates an empty buffer with capacity for at
// least capacity bytes.
func BytesMutWithCapacity(capacity int) BytesMut {
	return BytesMut{inner: VecWithCapacity[byte](capacity)}
}

// BytesMutFromStr creates a buffer holding a copy of the UTF-8 encoding
// of s.
func BytesMutFromStr(s string) BytesMut {
	return BytesMut{inner: VecOwning([]byte(s))}
}

// ZeroedBytes creates a buffer of n zero bytes.
func ZeroedBytes(n int) BytesMut {
	return BytesMut{inner: VecOwning(make([]byte, n))}
}

// Len returns the number of bytes.
func (b *BytesMut) Len() int { return b.inner.Len() }

// Cap returns the number of allocated byte slots.
func (b *BytesMut) Cap() int { return b.inner.Cap() }

// IsEmpty reports whether the buffer holds no bytes.
func (b *BytesMut) IsEmpty() bool { return b.inner.IsEmpty() }

// Put appends a single byte, growing geometrically when capacity is
// exhausted.
func (b *BytesMut) Put(c byte) {
	b.inner.Push(c)
}

// PutStr appends the UTF-8 encoding of s.
func (b *BytesMut) PutStr(s string) {
	b.inner.ExtendSlice([]byte(s))
}

// PutRune appends the UTF-8 encoding of r.
func (b *BytesMut) PutRune(r rune) {
	b.inner.Reserve(utf8.UTFMax)
	b.inner.items = utf8.AppendRune(b.inner.items, r)
}

// PutBytes appends a copy of src.
func (b *BytesMut) PutBytes(src []byte) {
	b.inner.ExtendSlice(src)
}

// Extend appends every byte yielded by it, pre-reserving capacity from
// the iterator's size hint when one is advertised.
func (b *BytesMut) Extend(it Iterator[byte]) {
	b.inner.Extend(it)
}

// Pop removes and returns the last byte, or None when empty.
func (b *BytesMut) Pop() Option[byte] {
	return b.inner.Pop()
}

// Insert inserts c at index, shifting subsequent bytes right.
// Panics with [IndexError] when index > Len().
func (b *BytesMut) Insert(index int, c byte) {
	b.inner.Insert(index, c)
}

// Remove removes and returns the byte at index.
// Panics with [IndexError] when index >= Len().
func (b *BytesMut) Remove(index int) byte {
	return b.inner.Remove(index)
}

// Get returns the byte at index, or None when index is out of range.
func (b *BytesMut) Get(index int) Option[byte] {
	return b.inner.Get(index)
}

// Replace overwrites the byte at index and returns the previous value.
// Panics with [IndexError] when index >= Len().
func (b *BytesMut) Replace(index int, c byte) byte {
	boundsCheck(index, b.inner.Len())
	prev := b.inner.items[index]
	b.inner.items[index] = c
	return prev
}

// Swap exchanges the bytes at i and j.
// Panics with [IndexError] on an invalid index.
func (b *BytesMut) Swap(i, j int) {
	b.inner.Swap(i, j)
}

// Fill overwrites every byte with value.
func (b *BytesMut) Fill(value byte) {
	b.inner.Fill(value)
}

// Zero overwrites every byte with zero.
func (b *BytesMut) Zero() {
	b.inner.Fill(0)
}

// Truncate drops bytes beyond newLen. No-op when newLen >= Len().
func (b *BytesMut) Truncate(newLen int) {
	b.inner.Truncate(newLen)
}

// Clear drops every byte, keeping allocated capacity.
func (b *BytesMut) Clear() {
	b.inner.Clear()
}

// Reserve grows capacity to hold at least additional more bytes.
func (b *BytesMut) Reserve(additional int) {
	b.inner.Reserve(additional)
}

// ShrinkToFit reduces capacity to exactly Len().
func (b *BytesMut) ShrinkToFit() {
	b.inner.ShrinkToFit()
}

// ShrinkTo reduces capacity toward minCapacity, never below Len().
func (b *BytesMut) ShrinkTo(minCapacity int) {
	b.inner.ShrinkTo(minCapacity)
}

// SplitOffMut transfers ownership of the tail [at, Len()) into a new
// BytesMut, shrinking the receiver to [0, at) in place.
// Panics with [IndexError] when at > Len().
func (b *BytesMut) SplitOffMut(at int) BytesMut {
	return BytesMut{inner: b.inner.SplitOff(at)}
}

// SplitAt returns two disjoint read-only views covering [0, mid) and
// [mid, Len()). The views alias the buffer's storage and die on its next
// reallocation. Panics with [IndexError] when mid > Len().
func (b *BytesMut) SplitAt(mid int) (Slice[byte], Slice[byte]) {
	return b.inner.SplitAt(mid)
}

// AsSlice returns a read-only view over the whole buffer.
func (b *BytesMut) AsSlice() Slice[byte] {
	return b.inner.AsSlice()
}

// AsMutSlice returns an exclusive mutable view over the whole buffer.
func (b *BytesMut) AsMutSlice() SliceMut[byte] {
	return b.inner.AsMutSlice()
}

// Iter returns a lazy iterator over the buffer's bytes. The buffer must
// not be mutated while the iterator is live.
func (b *BytesMut) Iter() *SliceIter[byte] {
	return b.inner.Iter()
}

// Chars returns a lazy iterator decoding the buffer as UTF-8; see
// [Bytes.Chars]. The buffer must not be mutated while the iterator is
// live.
func (b *BytesMut) Chars() *CharsIter {
	return &CharsIter{rest: b.inner.items}
}

// TryToStr decodes the buffer as UTF-8 text, copying the bytes.
// Returns Err([ErrInvalidEncoding]) when the buffer is not valid UTF-8.
func (b *BytesMut) TryToStr() Result[string, error] {
	if !utf8.Valid(b.inner.items) {
		return Err[string, error](ErrInvalidEncoding)
	}
	return Ok[string, error](string(b.inner.items))
}

// Freeze transfers ownership of the contents into an immutable [Bytes],
// leaving the receiver empty.
func (b *BytesMut) Freeze() Bytes {
	return Bytes{inner: b.inner.Leak()}
}

// Clone returns a deep copy of the buffer.
func (b *BytesMut) Clone() BytesMut {
	return BytesMut{inner: b.inner.Clone()}
}

// String implements fmt.Stringer with a lossy decode, like
// [Bytes.String].
func (b BytesMut) String() string {
	return string(b.inner.items)
}

// CharsIter lazily decodes a byte sequence as UTF-8 runes.
// Each element is a Result: a malformed sub-sequence produces
// Err([ErrInvalidEncoding]) and decoding resumes at the next byte.
type CharsIter struct {
	rest []byte
}

// Next decodes and returns the next rune, or None when the bytes are
// exhausted.
func (c *CharsIter) Next() Option[Result[rune, error]] {
	if len(c.rest) == 0 {
		return None[Result[rune, error]]()
	}
	r, size := utf8.DecodeRune(c.rest)
	if r == utf8.RuneError && size <= 1 {
		c.rest = c.rest[1:]
		return Some(Err[rune, error](fmt.Errorf("%w: malformed byte", ErrInvalidEncoding)))
	}
	c.rest = c.rest[size:]
	return Some(Ok[rune, error](r))
}

// SizeHint reports at least one rune per remaining byte cluster and at
// most one rune per remaining byte.
func (c *CharsIter) SizeHint() (int, Option[int]) {
	if len(c.rest) == 0 {
		return 0, Some(0)
	}
	return (len(c.rest) + utf8.UTFMax - 1) / utf8.UTFMax, Some(len(c.rest))
}
