package feed

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotFormula(t *testing.T) {
	injector := NewExplorationInjector(DefaultConfig())

	cases := []struct {
		target int
		want   int
	}{
		{1, 2},
		{5, 2},
		{10, 2}, // round(1.0) = 1, floored to 2
		{20, 2},
		{25, 3}, // round(2.5) = 3 (half away from zero)
		{30, 3},
		{50, 5},
		{100, 10},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, injector.Slots(tc.target), "target=%d", tc.target)
	}
}

func feedOf(n int) []CandidateItem {
	out := make([]CandidateItem, n)
	for i := range out {
		out[i] = CandidateItem{ID: fmt.Sprintf("ranked-%d", i)}
	}

	return out
}

func TestInjectOverwritesWhenFull(t *testing.T) {
	injector := NewExplorationInjector(DefaultConfig())
	rng := rand.New(rand.NewSource(42))

	extras := []CandidateItem{{ID: "explore-0"}, {ID: "explore-1"}}
	out := injector.Inject(feedOf(10), 10, extras, rng)

	require.Len(t, out, 10, "overwrite must not change length")

	injected := 0
	for _, item := range out {
		if item.ID == "explore-0" || item.ID == "explore-1" {
			injected++
		}
	}

	// both extras land unless the second draw hits the first's slot
	assert.GreaterOrEqual(t, injected, 1)
	assert.LessOrEqual(t, injected, 2)
}

func TestInjectAppendsWhenShort(t *testing.T) {
	injector := NewExplorationInjector(DefaultConfig())
	rng := rand.New(rand.NewSource(42))

	extras := []CandidateItem{{ID: "explore-0"}, {ID: "explore-1"}}
	out := injector.Inject(feedOf(3), 10, extras, rng)

	require.Len(t, out, 5)
	assert.Equal(t, "explore-0", out[3].ID)
	assert.Equal(t, "explore-1", out[4].ID)
}

func TestInjectDeterministicUnderSeed(t *testing.T) {
	injector := NewExplorationInjector(DefaultConfig())
	extras := []CandidateItem{{ID: "explore-0"}, {ID: "explore-1"}}

	first := injector.Inject(feedOf(10), 10, extras, rand.New(rand.NewSource(7)))
	second := injector.Inject(feedOf(10), 10, extras, rand.New(rand.NewSource(7)))

	assert.Equal(t, first, second)
}

func TestInjectOutputNeverExceedsTarget(t *testing.T) {
	injector := NewExplorationInjector(DefaultConfig())
	rng := rand.New(rand.NewSource(1))

	for _, feedLen := range []int{0, 1, 5, 9, 10} {
		for _, extraLen := range []int{0, 1, 2, 5} {
			extras := make([]CandidateItem, extraLen)
			for i := range extras {
				extras[i] = CandidateItem{ID: fmt.Sprintf("explore-%d", i)}
			}

			out := injector.Inject(feedOf(feedLen), 10, extras, rng)
			assert.LessOrEqual(t, len(out), 10, "feedLen=%d extraLen=%d", feedLen, extraLen)
		}
	}
}
