package feed

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoredList(items ...CandidateItem) []ScoredCandidate {
	out := make([]ScoredCandidate, len(items))
	for i, item := range items {
		// descending scores so input order is score order
		out[i] = ScoredCandidate{Score: float64(len(items) - i), Item: item}
	}

	return out
}

func TestDiversityCapsPerCreator(t *testing.T) {
	filter := NewDiversityFilter(DefaultConfig())

	var items []CandidateItem
	for i := range 6 {
		items = append(items, CandidateItem{
			ID:        fmt.Sprintf("item-%d", i),
			CreatorID: "prolific",
			Category:  fmt.Sprintf("cat-%d", i),
		})
	}

	out := filter.Filter(scoredList(items...), 10)
	assert.Len(t, out, 2, "creator cap is 2")
}

func TestDiversityCapsPerCategory(t *testing.T) {
	filter := NewDiversityFilter(DefaultConfig())

	var items []CandidateItem
	for i := range 8 {
		items = append(items, CandidateItem{
			ID:        fmt.Sprintf("item-%d", i),
			CreatorID: fmt.Sprintf("creator-%d", i),
			Category:  "technical",
		})
	}

	out := filter.Filter(scoredList(items...), 10)
	assert.Len(t, out, 5, "category cap is 5")
}

func TestDiversityPreservesScoreOrder(t *testing.T) {
	filter := NewDiversityFilter(DefaultConfig())

	items := []CandidateItem{
		{ID: "a", CreatorID: "c1", Category: "technical"},
		{ID: "b", CreatorID: "c1", Category: "creative"},
		{ID: "c", CreatorID: "c1", Category: "business"}, // creator cap hit, dropped
		{ID: "d", CreatorID: "c2", Category: "business"},
	}

	out := filter.Filter(scoredList(items...), 10)
	require.Len(t, out, 3)
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "b", out[1].ID)
	assert.Equal(t, "d", out[2].ID)
}

func TestDiversityStopsAtTargetCount(t *testing.T) {
	filter := NewDiversityFilter(DefaultConfig())

	var items []CandidateItem
	for i := range 20 {
		items = append(items, CandidateItem{
			ID:        fmt.Sprintf("item-%d", i),
			CreatorID: fmt.Sprintf("creator-%d", i),
			Category:  fmt.Sprintf("cat-%d", i),
		})
	}

	out := filter.Filter(scoredList(items...), 7)
	assert.Len(t, out, 7)
}

func TestDiversityPropertyNeverExceedsCaps(t *testing.T) {
	cfg := DefaultConfig()
	filter := NewDiversityFilter(cfg)

	// adversarial input: few creators and categories, many items
	var items []CandidateItem
	for i := range 100 {
		items = append(items, CandidateItem{
			ID:        fmt.Sprintf("item-%d", i),
			CreatorID: fmt.Sprintf("creator-%d", i%3),
			Category:  fmt.Sprintf("cat-%d", i%2),
		})
	}

	out := filter.Filter(scoredList(items...), 50)

	creators := make(map[string]int)
	categories := make(map[string]int)

	for _, item := range out {
		creators[item.CreatorID]++
		categories[item.Category]++
	}

	for creator, n := range creators {
		assert.LessOrEqual(t, n, cfg.MaxPerCreator, "creator %s over cap", creator)
	}

	for cat, n := range categories {
		assert.LessOrEqual(t, n, cfg.MaxPerCategory, "category %s over cap", cat)
	}
}
