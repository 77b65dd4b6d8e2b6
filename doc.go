// Copyright (c) 2022-present nxtlo. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sain provides a small Rust-flavored standard-collections runtime:
// optional and fallible value algebras, an owned growable buffer, borrowed
// views with safe splitting, a byte buffer specialization, and a lazy
// pull-based iterator engine.
//
// # Design Philosophy
//
// sain provides:
//   - Two-case value algebras ([Option], [Result]) as the single channel for
//     "found nothing" and "operation failed" — no sentinel values, no panics
//     for expected outcomes
//   - Owned contiguous storage ([Vec], [BytesMut]) with explicit, inspectable
//     capacity policy
//   - Non-owning views ([Slice], [SliceMut]) whose split operations partition
//     ranges into disjoint halves by construction
//   - A fused, single-pass iterator engine built from monomorphized generic
//     adapters with package-level composition
//
// # Value Algebras
//
// [Option] signals presence or absence; [Result] signals success or failure.
// Both are immutable plain structs, comparable whenever their type arguments
// are. Methods cover same-type combinators; type-changing combinators are
// package-level functions (Go methods cannot introduce type parameters):
//
//   - [Some], [None], [Ok], [Err]: Constructors
//   - [Option.Unwrap], [Result.Unwrap]: Checked extraction (panic on misuse)
//   - [MapOption], [AndThenOption], [MapResult], [AndThenResult]: Combinators
//   - [OkOr], [OkOrElse]: Option → Result conversion
//   - [MatchOption], [MatchResult]: Pattern matching
//
// # Ownership and Borrowing
//
// A [Vec] is singly owned. Views produced by [Vec.AsSlice], [Vec.SplitAt]
// and friends alias the Vec's storage and are invalidated by any mutation
// that can reallocate it (a growing push, insert, reserve). This discipline
// is an API contract enforced by construction and documentation, not by
// runtime scanning — exactly one owner, views die before the next growth.
//
// A [SliceMut] is an exclusive borrow. [SliceMut.SplitAtMut],
// [SliceMut.SplitFirstMut] and [SliceMut.SplitLastMut] are the only
// sanctioned way to subdivide that exclusivity: they partition the range
// into disjoint sub-views, and the original view must not be used after
// splitting.
//
// # Error Taxonomy
//
// Expected absence and failure travel as values. Caller bugs are fatal:
//
//   - [ErrIndexOutOfBounds]: Access or split beyond the valid range (panic,
//     carried by [IndexError])
//   - [ErrInvalidArgument]: Structurally invalid input, e.g. zero-sized
//     chunking (panic)
//   - [ErrInvalidEncoding]: Malformed byte-to-text decode (value-based,
//     inside a [Result])
//
// The "unchecked" family ([Option.UnwrapUnchecked], [Vec.SwapUnchecked],
// [Slice.GetUnchecked], ...) documents its precondition and performs no
// validation; violating the precondition is a contract breach.
//
// # Iterator Engine
//
// [Iterator] is a single-method pull interface: Next returns
// Option[T]. Every iterator in this package is fused — once Next reports
// absence it reports absence forever. Adapters are concrete generic structs
// holding exactly the state needed to resume:
//
//   - [Map], [Filter], [Take], [Skip], [TakeWhile], [DropWhile]: Element-wise
//   - [Chain], [Zip], [Enumerate]: Sequence combination
//   - [Chunks], [StepBy], [Inspect], [Fuse]: Structure and instrumentation
//
// Terminal consumers drain deterministically and leave the iterator spent:
//
//   - [Collect], [CollectSlice]: Build a new [Vec] or Go slice, pre-reserving
//     from the iterator's size hint when one is advertised via [SizeHinted]
//   - [Fold], [Reduce], [Sum], [Count]: Aggregation
//   - [Position], [Find], [Any], [All], [Last], [Nth]: Search
//
// # Concurrency Model
//
// Everything here is single-threaded and synchronous. Iteration advances
// only when pulled; dropping an iterator mid-sequence is always safe and
// releases nothing but the adapter's own state. There are no locks because
// there is no concurrent mutation to arbitrate — the model relies on
// single ownership and non-overlapping borrows.
//
// # Example
//
//	v := sain.VecOf(1, 2, 3)
//	v.Push(4)
//
//	left, right := v.SplitAt(2) // [1 2] [3 4]
//	sum := sain.Sum(sain.Chain[int](left.Iter(), right.Iter()))
//	// sum == 10
//
//	evens := sain.Collect(sain.Filter[int](v.Iter(), func(x int) bool {
//		return x%2 == 0
//	}))
//	// evens == Vec[2 4]
package sain
