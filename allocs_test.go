// Copyright (c) 2022-present nxtlo. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sain_test

import (
	"testing"

	"github.com/nxtlo/sain"
)

func TestOptionAllocationFree(t *testing.T) {
	o := sain.Some(42)
	allocs := testing.AllocsPerRun(100, func() {
		_ = sain.MapOption(o, func(x int) int { return x + 1 }).UnwrapOr(0)
	})
	if allocs > 0 {
		t.Errorf("MapOption+UnwrapOr allocs = %v; want 0", allocs)
	}
}

func TestResultAllocationFree(t *testing.T) {
	r := sain.Ok[int, string](42)
	allocs := testing.AllocsPerRun(100, func() {
		_ = sain.MapResult(r, func(x int) int { return x * 2 }).UnwrapOr(0)
	})
	if allocs > 0 {
		t.Errorf("MapResult+UnwrapOr allocs = %v; want 0", allocs)
	}
}

func TestVecPushPopWithinCapacityAllocationFree(t *testing.T) {
	v := sain.VecWithCapacity[int](8)
	allocs := testing.AllocsPerRun(100, func() {
		v.Push(1)
		_ = v.Pop()
	})
	if allocs > 0 {
		t.Errorf("Push+Pop within capacity allocs = %v; want 0", allocs)
	}
}

func TestSliceSplitAtAllocationFree(t *testing.T) {
	s := sain.SliceOf(make([]int, 64))
	allocs := testing.AllocsPerRun(100, func() {
		left, right := s.SplitAt(32)
		_, _ = left.Len(), right.Len()
	})
	if allocs > 0 {
		t.Errorf("SplitAt allocs = %v; want 0", allocs)
	}
}
