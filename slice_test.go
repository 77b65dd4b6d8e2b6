// Copyright (c) 2022-present nxtlo. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nxtlo/sain"
)

func TestSliceBasics(t *testing.T) {
	s := sain.SliceOf([]int{1, 2, 3})
	assert.Equal(t, 3, s.Len())
	assert.False(t, s.IsEmpty())
	assert.True(t, sain.SliceOf([]int{}).IsEmpty())

	assert.Equal(t, sain.Some(2), s.Get(1))
	assert.True(t, s.Get(3).IsNone())
	assert.True(t, s.Get(-1).IsNone())
	assert.Equal(t, 3, s.GetUnchecked(2))
	assert.Equal(t, 1, s.Index(0))
	requirePanicsOutOfBounds(t, func() { s.Index(3) })

	assert.Equal(t, sain.Some(1), s.First())
	assert.Equal(t, sain.Some(3), s.Last())
}

func TestSliceSplitFirst(t *testing.T) {
	s := sain.SliceOf([]int{1, 2, 3})
	split, ok := s.SplitFirst().Get()
	require.True(t, ok)
	assert.Equal(t, 1, split.First)
	assert.Equal(t, []int{2, 3}, split.Second.Raw())

	empty := sain.SliceOf([]int{})
	assert.True(t, empty.SplitFirst().IsNone())
}

func TestSliceSplitLast(t *testing.T) {
	s := sain.SliceOf([]int{1, 2, 3})
	split, ok := s.SplitLast().Get()
	require.True(t, ok)
	assert.Equal(t, 3, split.First)
	assert.Equal(t, []int{1, 2}, split.Second.Raw())

	assert.True(t, sain.SliceOf([]int{}).SplitLast().IsNone())
}

func TestSliceSplitAtCompleteness(t *testing.T) {
	items := []int{10, 20, 30, 40, 50}
	s := sain.SliceOf(items)
	for mid := 0; mid <= len(items); mid++ {
		left, right := s.SplitAt(mid)
		require.Equal(t, mid, left.Len())
		require.Equal(t, len(items)-mid, right.Len())
		rejoined := append(append([]int{}, left.Raw()...), right.Raw()...)
		require.Equal(t, items, rejoined)
	}
	requirePanicsOutOfBounds(t, func() { s.SplitAt(6) })
}

func TestSliceSplitAtChecked(t *testing.T) {
	s := sain.SliceOf([]int{1, 2, 3})
	halves, ok := s.SplitAtChecked(1).Get()
	require.True(t, ok)
	assert.Equal(t, []int{1}, halves.First.Raw())
	assert.Equal(t, []int{2, 3}, halves.Second.Raw())

	assert.True(t, s.SplitAtChecked(4).IsNone())
	assert.True(t, s.SplitAtChecked(-1).IsNone())
}

func TestSliceChunks(t *testing.T) {
	s := sain.SliceOf([]int{1, 2, 3, 4, 5})
	chunks := s.Chunks(2)

	first, _ := chunks.Next().Get()
	assert.Equal(t, []int{1, 2}, first.Raw())
	second, _ := chunks.Next().Get()
	assert.Equal(t, []int{3, 4}, second.Raw())
	third, _ := chunks.Next().Get()
	assert.Equal(t, []int{5}, third.Raw())

	assert.True(t, chunks.Next().IsNone())
	assert.True(t, chunks.Next().IsNone())

	requirePanicsInvalidArgument(t, func() { s.Chunks(0) })
}

func TestSliceWindows(t *testing.T) {
	s := sain.SliceOf([]int{1, 2, 3, 4})
	got := sain.CollectSlice[sain.Slice[int]](s.Windows(2))
	require.Len(t, got, 3)
	assert.Equal(t, []int{1, 2}, got[0].Raw())
	assert.Equal(t, []int{2, 3}, got[1].Raw())
	assert.Equal(t, []int{3, 4}, got[2].Raw())

	assert.True(t, sain.SliceOf([]int{1}).Windows(2).Next().IsNone())
	requirePanicsInvalidArgument(t, func() { s.Windows(0) })
}

func TestSliceToVecCopies(t *testing.T) {
	backing := []int{1, 2}
	v := sain.SliceOf(backing).ToVec()
	backing[0] = 99
	assert.Equal(t, sain.Some(1), v.Get(0))
}

func TestSliceSearchHelpers(t *testing.T) {
	s := sain.SliceOf([]int{1, 2, 3})
	assert.True(t, sain.SliceContains(s, 2))
	assert.False(t, sain.SliceContains(s, 9))
	assert.Equal(t, sain.Some(1), sain.SlicePosition(s, 2))
	assert.True(t, sain.SlicePosition(s, 9).IsNone())

	assert.True(t, sain.SliceStartsWith(s, []int{1, 2}))
	assert.True(t, sain.SliceStartsWith(s, nil))
	assert.False(t, sain.SliceStartsWith(s, []int{2}))
	assert.True(t, sain.SliceEndsWith(s, []int{2, 3}))
	assert.False(t, sain.SliceEndsWith(s, []int{1, 2, 3, 4}))

	assert.True(t, sain.SliceEqual(s, sain.SliceOf([]int{1, 2, 3})))
	assert.False(t, sain.SliceEqual(s, sain.SliceOf([]int{1, 2})))
}

func TestSliceMutSetAndFill(t *testing.T) {
	backing := []int{1, 2, 3}
	m := sain.MutSliceOf(backing)

	m.Set(0, 9)
	assert.Equal(t, 9, backing[0]) // writes reach the owner's storage
	requirePanicsOutOfBounds(t, func() { m.Set(3, 0) })

	m.Fill(5)
	assert.Equal(t, []int{5, 5, 5}, backing)

	n := 0
	m.FillWith(func() int { n++; return n })
	assert.Equal(t, []int{1, 2, 3}, backing)
}

func TestSliceMutReverseSwap(t *testing.T) {
	backing := []int{1, 2, 3, 4}
	m := sain.MutSliceOf(backing)
	m.Reverse()
	assert.Equal(t, []int{4, 3, 2, 1}, backing)

	m.Swap(0, 3)
	assert.Equal(t, []int{1, 3, 2, 4}, backing)
	requirePanicsOutOfBounds(t, func() { m.Swap(0, 4) })
}

func TestSliceMutCopyFromSlice(t *testing.T) {
	backing := []int{0, 0, 0}
	m := sain.MutSliceOf(backing)
	m.CopyFromSlice(sain.SliceOf([]int{7, 8, 9}))
	assert.Equal(t, []int{7, 8, 9}, backing)

	requirePanicsInvalidArgument(t, func() {
		m.CopyFromSlice(sain.SliceOf([]int{1}))
	})
}

func TestSliceMutSplitFirstMut(t *testing.T) {
	backing := []int{1, 2, 3}
	split, ok := sain.MutSliceOf(backing).SplitFirstMut().Get()
	require.True(t, ok)

	*split.First = 10
	split.Second.Set(0, 20)
	assert.Equal(t, []int{10, 20, 3}, backing)

	assert.True(t, sain.MutSliceOf([]int{}).SplitFirstMut().IsNone())
}

func TestSliceMutSplitLastMut(t *testing.T) {
	backing := []int{1, 2, 3}
	split, ok := sain.MutSliceOf(backing).SplitLastMut().Get()
	require.True(t, ok)

	*split.First = 30
	split.Second.Set(0, 10)
	assert.Equal(t, []int{10, 2, 30}, backing)

	assert.True(t, sain.MutSliceOf([]int{}).SplitLastMut().IsNone())
}

func TestSliceMutSplitAtMutDisjoint(t *testing.T) {
	backing := []int{1, 2, 3, 4}
	left, right := sain.MutSliceOf(backing).SplitAtMut(2)
	require.Equal(t, 2, left.Len())
	require.Equal(t, 2, right.Len())

	// the halves partition the range: writes land in disjoint storage
	left.Fill(0)
	right.Fill(9)
	assert.Equal(t, []int{0, 0, 9, 9}, backing)

	requirePanicsOutOfBounds(t, func() { sain.MutSliceOf(backing).SplitAtMut(5) })
}

func TestSliceMutSplitOff(t *testing.T) {
	backing := []int{1, 2, 3}
	m := sain.MutSliceOf(backing)

	assert.Equal(t, sain.Some(1), m.SplitOffFirst())
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, sain.Some(3), m.SplitOffLast())
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, sain.Some(2), m.SplitOffFirst())
	assert.True(t, m.SplitOffFirst().IsNone())
	assert.True(t, m.SplitOffLast().IsNone())
}

func TestSliceMutFreeze(t *testing.T) {
	backing := []int{1, 2}
	s := sain.MutSliceOf(backing).Freeze()
	assert.Equal(t, []int{1, 2}, s.Raw())
}

func TestSliceIterBorrowsView(t *testing.T) {
	s := sain.SliceOf([]int{1, 2, 3})
	it := s.Iter()
	assert.Equal(t, sain.Some(1), it.Next())
	assert.Equal(t, sain.Some(2), it.Next())
	assert.Equal(t, sain.Some(3), it.Next())
	assert.True(t, it.Next().IsNone())
}
