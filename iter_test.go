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

// countingIter wraps an upstream iterator and records how many times it
// was pulled, for short-circuit assertions.
type countingIter[T any] struct {
	it    sain.Iterator[T]
	pulls int
}

func (c *countingIter[T]) Next() sain.Option[T] {
	c.pulls++
	return c.it.Next()
}

// reawakeningIter violates the fused contract on purpose: it yields
// nothing, then 42 on the pull after that.
type reawakeningIter struct {
	calls int
}

func (r *reawakeningIter) Next() sain.Option[int] {
	r.calls++
	if r.calls == 2 {
		return sain.Some(42)
	}
	return sain.None[int]()
}

func TestIterSources(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, sain.CollectSlice[int](sain.IterSlice([]int{1, 2, 3})))
	assert.Empty(t, sain.CollectSlice[int](sain.Empty[int]()))
	assert.Equal(t, []int{7}, sain.CollectSlice[int](sain.Once(7)))
	assert.Equal(t, []int{9, 9, 9}, sain.CollectSlice[int](sain.Repeat(9, 3)))
	assert.Equal(t, []int{2, 3, 4}, sain.CollectSlice[int](sain.Range(2, 5)))
	assert.Empty(t, sain.CollectSlice[int](sain.Range(5, 2)))
}

func TestIterSourcesAreFused(t *testing.T) {
	iters := map[string]sain.Iterator[int]{
		"slice":  sain.IterSlice([]int{1}),
		"empty":  sain.Empty[int](),
		"once":   sain.Once(1),
		"repeat": sain.Repeat(1, 1),
		"range":  sain.Range(0, 1),
	}
	for name, it := range iters {
		for it.Next().IsSome() {
		}
		for i := range 3 {
			require.True(t, it.Next().IsNone(), "%s reawoke on pull %d past exhaustion", name, i)
		}
	}
}

func TestMap(t *testing.T) {
	doubled := sain.Map[int](sain.IterSlice([]int{1, 2, 3}), func(x int) int { return x * 2 })
	assert.Equal(t, []int{2, 4, 6}, sain.CollectSlice[int](doubled))

	lens := sain.Map(sain.IterSlice([]string{"a", "bb"}), func(s string) int { return len(s) })
	assert.Equal(t, []int{1, 2}, sain.CollectSlice[int](lens))
}

func TestMapPullsOncePerPull(t *testing.T) {
	upstream := &countingIter[int]{it: sain.IterSlice([]int{1, 2, 3})}
	m := sain.Map[int](upstream, func(x int) int { return x })
	m.Next()
	assert.Equal(t, 1, upstream.pulls)
	m.Next()
	assert.Equal(t, 2, upstream.pulls)
}

func TestFilter(t *testing.T) {
	even := sain.Filter[int](sain.Range(0, 10), func(x int) bool { return x%2 == 0 })
	assert.Equal(t, []int{0, 2, 4, 6, 8}, sain.CollectSlice[int](even))

	none := sain.Filter[int](sain.Range(0, 10), func(int) bool { return false })
	assert.True(t, none.Next().IsNone())
	assert.True(t, none.Next().IsNone())
}

func TestTakeBound(t *testing.T) {
	// Count(Take(it, n)) == min(n, upstream length)
	for _, tc := range []struct{ n, upstream, want int }{
		{0, 5, 0}, {3, 5, 3}, {5, 5, 5}, {8, 5, 5},
	} {
		it := sain.Take[int](sain.Range(0, tc.upstream), tc.n)
		require.Equal(t, tc.want, sain.Count[int](it), "take(%d) over %d items", tc.n, tc.upstream)
	}
}

func TestTakeDoesNotDrainUpstream(t *testing.T) {
	upstream := &countingIter[int]{it: sain.Range(0, 100)}
	taken := sain.Take[int](upstream, 2)
	assert.Equal(t, 2, sain.Count[int](taken))
	// two yielded pulls only; exhaustion comes from the take counter
	assert.Equal(t, 2, upstream.pulls)
	assert.True(t, taken.Next().IsNone())
	assert.Equal(t, 2, upstream.pulls)
}

func TestSkip(t *testing.T) {
	assert.Equal(t, []int{3, 4}, sain.CollectSlice[int](sain.Skip[int](sain.Range(0, 5), 3)))
	assert.Empty(t, sain.CollectSlice[int](sain.Skip[int](sain.Range(0, 3), 5)))
}

func TestTakeWhileDropWhile(t *testing.T) {
	tw := sain.TakeWhile[int](sain.IterSlice([]int{1, 2, 9, 1}), func(x int) bool { return x < 5 })
	assert.Equal(t, []int{1, 2}, sain.CollectSlice[int](tw))
	assert.True(t, tw.Next().IsNone())

	dw := sain.DropWhile[int](sain.IterSlice([]int{1, 2, 9, 1}), func(x int) bool { return x < 5 })
	assert.Equal(t, []int{9, 1}, sain.CollectSlice[int](dw))
}

func TestChain(t *testing.T) {
	c := sain.Chain[int](sain.IterSlice([]int{1, 2}), sain.IterSlice([]int{3, 4}))
	assert.Equal(t, []int{1, 2, 3, 4}, sain.CollectSlice[int](c))

	// the switch to the second iterator is permanent
	c2 := sain.Chain[int](sain.Empty[int](), sain.Once(1))
	assert.Equal(t, sain.Some(1), c2.Next())
	assert.True(t, c2.Next().IsNone())
	assert.True(t, c2.Next().IsNone())
}

func TestEnumerate(t *testing.T) {
	e := sain.Enumerate[string](sain.IterSlice([]string{"a", "b"}))
	assert.Equal(t, sain.Some(sain.Pair[int, string]{First: 0, Second: "a"}), e.Next())
	assert.Equal(t, sain.Some(sain.Pair[int, string]{First: 1, Second: "b"}), e.Next())
	assert.True(t, e.Next().IsNone())
}

func TestZip(t *testing.T) {
	z := sain.Zip[int, string](sain.IterSlice([]int{1, 2, 3}), sain.IterSlice([]string{"a", "b"}))
	assert.Equal(t, sain.Some(sain.Pair[int, string]{First: 1, Second: "a"}), z.Next())
	assert.Equal(t, sain.Some(sain.Pair[int, string]{First: 2, Second: "b"}), z.Next())
	assert.True(t, z.Next().IsNone())
	assert.True(t, z.Next().IsNone())
}

func TestZipShortCircuit(t *testing.T) {
	long := &countingIter[int]{it: sain.Range(0, 100)}
	z := sain.Zip[int, string](long, sain.IterSlice([]string{"a"}))
	sain.Count[sain.Pair[int, string]](z)
	// one pull for the pair, one already-pulled item for the failed pair
	assert.Equal(t, 2, long.pulls)
}

func TestChunksAdapter(t *testing.T) {
	chunks := sain.Chunks[int](sain.IterSlice([]int{1, 2, 3, 4, 5}), 2)

	first, _ := chunks.Next().Get()
	assert.Equal(t, []int{1, 2}, first.Raw())
	second, _ := chunks.Next().Get()
	assert.Equal(t, []int{3, 4}, second.Raw())
	third, _ := chunks.Next().Get()
	assert.Equal(t, []int{5}, third.Raw())
	assert.True(t, chunks.Next().IsNone())
	assert.True(t, chunks.Next().IsNone())

	requirePanicsInvalidArgument(t, func() { sain.Chunks[int](sain.Empty[int](), 0) })
}

func TestStepBy(t *testing.T) {
	assert.Equal(t, []int{0, 3, 6, 9}, sain.CollectSlice[int](sain.StepBy[int](sain.Range(0, 10), 3)))
	assert.Equal(t, []int{0, 1, 2}, sain.CollectSlice[int](sain.StepBy[int](sain.Range(0, 3), 1)))
	requirePanicsInvalidArgument(t, func() { sain.StepBy[int](sain.Empty[int](), 0) })
}

func TestInspect(t *testing.T) {
	var seen []int
	it := sain.Inspect[int](sain.Range(1, 4), func(x int) { seen = append(seen, x) })
	assert.Equal(t, 6, sain.Sum[int](it))
	assert.Equal(t, []int{1, 2, 3}, seen)
}

func TestFuseTamesForeignIterator(t *testing.T) {
	raw := &reawakeningIter{}
	assert.True(t, raw.Next().IsNone())
	assert.True(t, raw.Next().IsSome()) // reawakens without Fuse

	fused := sain.Fuse[int](&reawakeningIter{})
	assert.True(t, fused.Next().IsNone())
	assert.True(t, fused.Next().IsNone())
	assert.True(t, fused.Next().IsNone())
}

func TestAdapterStackStaysFused(t *testing.T) {
	it := sain.Map[int](
		sain.Filter[int](
			sain.Chain[int](sain.IterSlice([]int{1, 2}), sain.Range(3, 5)),
			func(x int) bool { return x%2 == 1 },
		),
		func(x int) int { return x * 10 },
	)
	assert.Equal(t, []int{10, 30}, sain.CollectSlice[int](it))
	for range 3 {
		require.True(t, it.Next().IsNone())
	}
}

func TestCollectPreReserves(t *testing.T) {
	v := sain.Collect[int](sain.Range(0, 64))
	assert.Equal(t, 64, v.Len())
	assert.Equal(t, 64, v.Cap()) // exact-size hint, single allocation
}

func TestCollectUnknownHint(t *testing.T) {
	upstream := &countingIter[int]{it: sain.Range(0, 10)}
	v := sain.Collect[int](upstream)
	assert.Equal(t, 10, v.Len())
}

func TestFold(t *testing.T) {
	total := sain.Fold(sain.Range(1, 5), 0, func(acc, x int) int { return acc + x })
	assert.Equal(t, 10, total)

	concat := sain.Fold(sain.IterSlice([]string{"a", "b"}), "", func(acc, s string) string { return acc + s })
	assert.Equal(t, "ab", concat)

	assert.Equal(t, -1, sain.Fold(sain.Empty[int](), -1, func(acc, x int) int { return acc + x }))
}

func TestReduce(t *testing.T) {
	maxed := sain.Reduce(sain.IterSlice([]int{3, 9, 4}), func(a, b int) int { return max(a, b) })
	assert.Equal(t, sain.Some(9), maxed)
	assert.True(t, sain.Reduce(sain.Empty[int](), func(a, b int) int { return a }).IsNone())
}

func TestSum(t *testing.T) {
	assert.Equal(t, 45, sain.Sum[int](sain.Range(0, 10)))
	assert.Equal(t, 0, sain.Sum[int](sain.Empty[int]()))
	assert.InDelta(t, 1.5, sain.Sum[float64](sain.IterSlice([]float64{0.5, 1.0})), 1e-9)
}

func TestCount(t *testing.T) {
	assert.Equal(t, 10, sain.Count[int](sain.Range(0, 10)))
	assert.Equal(t, 0, sain.Count[int](sain.Empty[int]()))
}

func TestPosition(t *testing.T) {
	it := sain.IterSlice([]int{5, 6, 7})
	assert.Equal(t, sain.Some(1), sain.Position[int](it, func(x int) bool { return x == 6 }))
	// the consumer early-exited; the iterator resumes where it stopped
	assert.Equal(t, sain.Some(7), it.Next())

	assert.True(t, sain.Position[int](sain.Empty[int](), func(int) bool { return true }).IsNone())
}

func TestFindAnyAll(t *testing.T) {
	gt5 := func(x int) bool { return x > 5 }
	assert.Equal(t, sain.Some(6), sain.Find[int](sain.Range(0, 10), gt5))
	assert.True(t, sain.Find[int](sain.Range(0, 3), gt5).IsNone())

	assert.True(t, sain.Any[int](sain.Range(0, 10), gt5))
	assert.False(t, sain.Any[int](sain.Range(0, 3), gt5))
	assert.False(t, sain.Any[int](sain.Empty[int](), gt5))

	assert.True(t, sain.All[int](sain.Range(6, 10), gt5))
	assert.False(t, sain.All[int](sain.Range(4, 10), gt5))
	assert.True(t, sain.All[int](sain.Empty[int](), gt5))
}

func TestAllShortCircuits(t *testing.T) {
	upstream := &countingIter[int]{it: sain.Range(0, 100)}
	assert.False(t, sain.All[int](upstream, func(x int) bool { return x < 1 }))
	assert.Equal(t, 2, upstream.pulls)
}

func TestForEach(t *testing.T) {
	var got []int
	sain.ForEach(sain.Range(0, 3), func(x int) { got = append(got, x) })
	assert.Equal(t, []int{0, 1, 2}, got)
}

func TestLastNth(t *testing.T) {
	assert.Equal(t, sain.Some(9), sain.Last[int](sain.Range(0, 10)))
	assert.True(t, sain.Last[int](sain.Empty[int]()).IsNone())

	assert.Equal(t, sain.Some(3), sain.Nth[int](sain.Range(0, 10), 3))
	assert.True(t, sain.Nth[int](sain.Range(0, 3), 5).IsNone())
	assert.True(t, sain.Nth[int](sain.Range(0, 3), -1).IsNone())
}

// The split-then-chain scenario: a grown buffer split into views whose
// chained iteration reproduces the original contents.
func TestSplitChainCollectScenario(t *testing.T) {
	v := sain.VecOf(1, 2, 3)
	v.Push(4)

	left, right := v.SplitAt(2)
	require.Equal(t, []int{1, 2}, left.Raw())
	require.Equal(t, []int{3, 4}, right.Raw())

	rejoined := sain.Collect[int](sain.Chain[int](left.Iter(), right.Iter()))
	assert.Equal(t, []int{1, 2, 3, 4}, rejoined.AsSlice().Raw())
}
