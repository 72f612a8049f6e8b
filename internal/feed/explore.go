package feed

import (
	"math"
	"math/rand"
)

// ExplorationInjector mixes externally curated, non-personalized items
// into a ranked feed. When the feed is already full each exploration item
// overwrites a uniformly random position, evicting whatever ranked item
// sat there. That lossiness is deliberate policy (serendipity over strict
// precision), kept tunable through Config rather than "fixed".
type ExplorationInjector struct {
	fraction float64
	minSlots int
}

func NewExplorationInjector(cfg Config) *ExplorationInjector {
	return &ExplorationInjector{
		fraction: cfg.ExplorationFraction,
		minSlots: cfg.MinExplorationSlots,
	}
}

// Slots returns how many exploration candidates a feed of targetCount
// should carry: max(minSlots, round(fraction*targetCount)).
func (e *ExplorationInjector) Slots(targetCount int) int {
	slots := int(math.Round(e.fraction * float64(targetCount)))
	if slots < e.minSlots {
		slots = e.minSlots
	}

	return slots
}

// Inject places exploration items into the feed: random overwrite while
// the feed is at targetCount, append while below. Output length is
// min(targetCount, resulting length). The rand source is injected so
// placement is reproducible under test.
func (e *ExplorationInjector) Inject(feed []CandidateItem, targetCount int, extras []CandidateItem, rng *rand.Rand) []CandidateItem {
	for _, item := range extras {
		if len(feed) >= targetCount {
			feed[rng.Intn(targetCount)] = item
		} else {
			feed = append(feed, item)
		}
	}

	if len(feed) > targetCount {
		feed = feed[:targetCount]
	}

	return feed
}
