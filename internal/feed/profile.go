package feed

import (
	"math"
)

// affinity EMA parameters: affinity = affinity*(1-alpha) + weight*alpha.
// Recent events dominate, old ones fade but never fully vanish.
const (
	affinityAlpha = 0.1

	// per-kind affinity contributions; view and share shape other
	// traits but do not move category affinity
	weightUse   = 1.0
	weightRemix = 2.0
	weightSkip  = -0.5
)

// appetite assumed for users with no history, set high so cold-start
// feeds favor exploration
const coldStartAppetite = 0.9

// ProfileBuilder derives a UserProfile from an event log snapshot.
// Building is pure: the same snapshot always yields the same profile.
type ProfileBuilder struct {
	log *EventLog
}

func NewProfileBuilder(log *EventLog) *ProfileBuilder {
	return &ProfileBuilder{log: log}
}

// builds the profile for a user from their current event history
func (b *ProfileBuilder) Build(userID string) UserProfile {
	events, exposures := b.log.Snapshot(userID)
	return BuildProfile(userID, events, exposures)
}

// BuildProfile derives a profile from an explicit event slice, assumed
// chronological. Exposed separately so scoring can be tested without an
// event log.
func BuildProfile(userID string, events []InteractionEvent, exposures map[string]int) UserProfile {
	profile := UserProfile{
		UserID:       userID,
		Affinities:   make(map[string]float64),
		CategorySeen: make(map[string]int),
	}

	for cat, n := range exposures {
		profile.CategorySeen[cat] = n
	}

	if len(events) == 0 {
		profile.ExplorationAppetite = coldStartAppetite
		return profile
	}

	uses := 0
	categories := make(map[string]struct{})

	for _, ev := range events {
		categories[ev.Category] = struct{}{}
		profile.HourActivity[ev.Timestamp.UTC().Hour()]++

		switch ev.Kind {
		case KindUse:
			uses++
			applyAffinity(profile.Affinities, ev.Category, weightUse)
		case KindRemix:
			applyAffinity(profile.Affinities, ev.Category, weightRemix)
		case KindSkip:
			applyAffinity(profile.Affinities, ev.Category, weightSkip)
		case KindView, KindShare:
			// counted above for activity and variety only
		}
	}

	profile.SkillLevel = skillLevel(uses)
	profile.ExplorationAppetite = explorationAppetite(len(categories))

	return profile
}

func applyAffinity(affinities map[string]float64, category string, weight float64) {
	affinities[category] = affinities[category]*(1-affinityAlpha) + weight*affinityAlpha
}

// skill grows asymptotically toward 1 with usage volume; 20 uses puts a
// user at 0.5
func skillLevel(uses int) float64 {
	return 1.0 - 1.0/(1.0+float64(uses)/20.0)
}

// appetite grows with the variety of categories a user touches. A user
// active in a single category sits near the floor; spanning all five
// labels saturates toward 1.
func explorationAppetite(categoryCount int) float64 {
	appetite := 0.2 + 0.6*(1.0-math.Exp(-float64(categoryCount-1)/2.0))
	return math.Min(appetite, 1.0)
}
