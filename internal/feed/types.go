// Package feed implements the promptpad ranking engine: multi-signal
// candidate scoring, per-user profiles derived from interaction history,
// decayed trend momentum with viral detection, diversity capping, and
// exploration injection.
package feed

import (
	"time"
)

// EventKind classifies a user interaction with a prompt.
type EventKind string

const (
	KindView  EventKind = "view"
	KindUse   EventKind = "use"
	KindRemix EventKind = "remix"
	KindSkip  EventKind = "skip"
	KindShare EventKind = "share"
)

// reports whether the kind is one the engine understands.
// Unknown kinds are ignored on record, not rejected.
func (k EventKind) Valid() bool {
	switch k {
	case KindView, KindUse, KindRemix, KindSkip, KindShare:
		return true
	}

	return false
}

// CandidateItem is a read-only snapshot of a prompt taken from the item
// store for one ranking pass. The engine never mutates store state through
// it; counters and momentum reflect the store at fetch time.
type CandidateItem struct {
	ID                 string    `json:"id"`
	CreatorID          string    `json:"creator_id"`
	Template           string    `json:"template"`
	Category           string    `json:"category"`
	EffectivenessScore float64   `json:"effectiveness_score"`
	UsageCount         int       `json:"usage_count"`
	RemixCount         int       `json:"remix_count"`
	UniqueUserCount    int       `json:"unique_user_count"`
	TrendingMomentum   float64   `json:"trending_momentum"`
	CreatedAt          time.Time `json:"created_at"`
}

// InteractionEvent is an immutable record of one user action, appended to
// the per-user event log.
type InteractionEvent struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	ItemID    string            `json:"item_id"`
	Kind      EventKind         `json:"kind"`
	Category  string            `json:"category"`
	Timestamp time.Time         `json:"timestamp"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// UserProfile aggregates a user's history into the signals the scorer
// consumes. Profiles are derived fresh from the event log on every feed
// request and never stored.
type UserProfile struct {
	UserID string

	// per-category EMA affinity, can go negative under repeated skips
	Affinities map[string]float64

	// prior feed exposures per category, feeds the novelty signal
	CategorySeen map[string]int

	// [0,1], monotonic in usage volume
	SkillLevel float64

	// [0,1], monotonic in category variety; defaults high for new users
	ExplorationAppetite float64

	// interaction counts per hour of day (UTC)
	HourActivity [24]int
}

// ScoredCandidate pairs a candidate with its utility score for one pass.
type ScoredCandidate struct {
	Score float64
	Item  CandidateItem
}

// ViralCrossing describes an item whose remix rate first exceeded the
// configured threshold, reported once per crossing.
type ViralCrossing struct {
	ItemID    string
	CreatorID string
	RemixRate float64
	Momentum  float64
	At        time.Time
}

// TrendingItem is a momentum snapshot entry returned by Trending.
type TrendingItem struct {
	ItemID   string  `json:"item_id"`
	Momentum float64 `json:"momentum"`
}
