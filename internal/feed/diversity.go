package feed

// DiversityFilter caps per-creator and per-category repetition in a
// score-sorted candidate list. The pass is greedy and order-preserving:
// a candidate over a cap is dropped, never deferred, so ties keep input
// (score) order.
type DiversityFilter struct {
	maxPerCreator  int
	maxPerCategory int
}

func NewDiversityFilter(cfg Config) *DiversityFilter {
	return &DiversityFilter{
		maxPerCreator:  cfg.MaxPerCreator,
		maxPerCategory: cfg.MaxPerCategory,
	}
}

// Filter accepts candidates in order until targetCount are selected or
// the input is exhausted. Input must be sorted descending by score.
func (f *DiversityFilter) Filter(sorted []ScoredCandidate, targetCount int) []CandidateItem {
	selected := make([]CandidateItem, 0, targetCount)
	creatorCounts := make(map[string]int)
	categoryCounts := make(map[string]int)

	for _, sc := range sorted {
		if len(selected) >= targetCount {
			break
		}

		if creatorCounts[sc.Item.CreatorID] >= f.maxPerCreator {
			continue
		}

		if categoryCounts[sc.Item.Category] >= f.maxPerCategory {
			continue
		}

		selected = append(selected, sc.Item)
		creatorCounts[sc.Item.CreatorID]++
		categoryCounts[sc.Item.Category]++
	}

	return selected
}
