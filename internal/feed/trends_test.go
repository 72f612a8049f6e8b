package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixed clock helper for deterministic decay
type fakeClock struct {
	at time.Time
}

func (c *fakeClock) now() time.Time          { return c.at }
func (c *fakeClock) advance(d time.Duration) { c.at = c.at.Add(d) }

func newTestTracker(t *testing.T) (*TrendTracker, *fakeClock) {
	t.Helper()

	clock := &fakeClock{at: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)}
	tracker := NewTrendTracker(DefaultConfig())
	tracker.SetClock(clock.now)

	return tracker, clock
}

func TestMomentumAccumulatesByEventWeight(t *testing.T) {
	tracker, _ := newTestTracker(t)

	tracker.Record("item-1", KindView)  // +0.1
	tracker.Record("item-1", KindUse)   // +0.5
	tracker.Record("item-1", KindRemix) // +2.0
	tracker.Record("item-1", KindShare) // +1.5

	assert.InDelta(t, 4.1, tracker.Momentum("item-1"), 1e-9)
}

func TestMomentumNonIncreasingBetweenEvents(t *testing.T) {
	tracker, clock := newTestTracker(t)

	tracker.Record("item-1", KindRemix)
	prev := tracker.Momentum("item-1")

	for range 20 {
		clock.advance(3 * time.Minute)
		current := tracker.Momentum("item-1")
		assert.LessOrEqual(t, current, prev, "pure decay must never increase momentum")
		prev = current
	}
}

func TestPositiveEventStrictlyIncreasesMomentum(t *testing.T) {
	tracker, clock := newTestTracker(t)

	tracker.Record("item-1", KindView)
	clock.advance(time.Minute)
	before := tracker.Momentum("item-1")

	tracker.Record("item-1", KindUse)
	assert.Greater(t, tracker.Momentum("item-1"), before)
}

func TestSkipCannotPushMomentumNegative(t *testing.T) {
	tracker, _ := newTestTracker(t)

	tracker.Record("item-1", KindView) // 0.1
	tracker.Record("item-1", KindSkip) // -0.3, clamped

	assert.Equal(t, 0.0, tracker.Momentum("item-1"))
}

func TestEntriesEvictedBelowEpsilon(t *testing.T) {
	tracker, clock := newTestTracker(t)

	tracker.Record("item-1", KindView) // 0.1

	// 0.99^x < 0.01/0.1 needs x ≈ 230 units
	clock.advance(300 * time.Minute)

	assert.Equal(t, 0.0, tracker.Momentum("item-1"))
	assert.Empty(t, tracker.Trending(10))
}

func TestViralAmplificationFiresOncePerCrossing(t *testing.T) {
	tracker, _ := newTestTracker(t)

	tracker.Record("item-1", KindRemix) // momentum 2.0

	// remix rate 15/100 = 0.15 crosses the 0.10 threshold
	rate, momentum, crossed := tracker.CheckViral("item-1", 100, 15)
	require.True(t, crossed)
	require.InDelta(t, 0.15, rate, 1e-9)
	require.InDelta(t, 4.0, momentum, 1e-9)

	// repeated checks on the same crossing never amplify again
	for range 5 {
		_, momentum, crossed = tracker.CheckViral("item-1", 100, 15)
		assert.False(t, crossed)
		assert.InDelta(t, 4.0, momentum, 1e-9)
	}
}

func TestSkipTrafficCannotRearmAmplification(t *testing.T) {
	tracker, _ := newTestTracker(t)

	tracker.Record("item-1", KindRemix)

	_, _, crossed := tracker.CheckViral("item-1", 100, 15)
	require.True(t, crossed)

	// heavy skip traffic drives momentum to zero while the remix rate
	// stays above the threshold; the crossing state must survive
	for range 20 {
		tracker.Record("item-1", KindSkip)
	}

	require.Equal(t, 0.0, tracker.Momentum("item-1"))

	_, _, crossed = tracker.CheckViral("item-1", 100, 15)
	assert.False(t, crossed, "same crossing must not amplify twice")
}

func TestBelowThresholdNeverAmplifies(t *testing.T) {
	tracker, _ := newTestTracker(t)

	tracker.Record("item-1", KindUse)

	// remix rate 5/100 = 0.05 stays under the threshold
	for range 5 {
		_, _, crossed := tracker.CheckViral("item-1", 100, 5)
		assert.False(t, crossed)
	}

	assert.InDelta(t, 0.5, tracker.Momentum("item-1"), 1e-9)
}

func TestReCrossingAmplifiesAgain(t *testing.T) {
	tracker, _ := newTestTracker(t)

	tracker.Record("item-1", KindRemix)

	_, _, crossed := tracker.CheckViral("item-1", 100, 15)
	require.True(t, crossed)

	// rate falls back under the threshold, re-arming the item
	_, _, crossed = tracker.CheckViral("item-1", 300, 15)
	require.False(t, crossed)

	// a genuine second crossing amplifies once more
	_, _, crossed = tracker.CheckViral("item-1", 300, 40)
	assert.True(t, crossed)
}

func TestZeroUsageShortCircuitsRatio(t *testing.T) {
	tracker, _ := newTestTracker(t)

	rate, _, crossed := tracker.CheckViral("item-1", 0, 50)
	assert.Equal(t, 0.0, rate)
	assert.False(t, crossed)
}

func TestUnknownKindIgnored(t *testing.T) {
	tracker, _ := newTestTracker(t)

	tracker.Record("item-1", EventKind("bookmark"))
	assert.Equal(t, 0.0, tracker.Momentum("item-1"))
}

func TestTrendingOrderedByMomentum(t *testing.T) {
	tracker, _ := newTestTracker(t)

	tracker.Record("cold", KindView)
	tracker.Record("warm", KindUse)
	tracker.Record("hot", KindRemix)

	top := tracker.Trending(2)
	require.Len(t, top, 2)
	assert.Equal(t, "hot", top[0].ItemID)
	assert.Equal(t, "warm", top[1].ItemID)
}

func TestShardsIsolatePerItemState(t *testing.T) {
	tracker, clock := newTestTracker(t)

	tracker.Record("item-a", KindRemix)
	clock.advance(time.Minute)
	tracker.Record("item-b", KindUse)

	// touching item-b must not decay item-a beyond its own elapsed time
	a := tracker.Momentum("item-a")
	assert.InDelta(t, 2.0*0.99, a, 1e-9)
	assert.InDelta(t, 0.5, tracker.Momentum("item-b"), 1e-9)
}
