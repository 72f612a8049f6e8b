package feed

import (
	"context"
	"errors"
)

var (
	// ErrUpstreamUnavailable wraps failures of external collaborators
	// (item store, exploration source). The engine performs no retries;
	// retry policy belongs to the calling service layer.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrItemNotFound is returned by ItemStore implementations when an
	// item identifier resolves to nothing.
	ErrItemNotFound = errors.New("item not found")
)

// ItemStore is the engine's view of the prompt store. Implementations own
// persistence, lineage and counters; the engine only reads snapshots and
// reports engagement.
type ItemStore interface {
	// returns ranking candidates for a user, newest and most effective first
	FetchCandidates(ctx context.Context, userID string, limit int) ([]CandidateItem, error)

	// returns a single item snapshot, ErrItemNotFound when absent
	GetItem(ctx context.Context, itemID string) (*CandidateItem, error)

	// returns a creator trust score in [0,1]; implementations return
	// ErrItemNotFound for unknown creators and the engine substitutes
	// the configured neutral value
	GetCreatorTrust(ctx context.Context, creatorID string) (float64, error)

	// increments the item's usage/remix/unique-user counters for an event
	RecordEngagement(ctx context.Context, itemID, userID string, kind EventKind) error
}

// ExplorationSource supplies pre-vetted, non-personalized items for the
// injector's serendipity slots.
type ExplorationSource interface {
	SampleHighQuality(ctx context.Context, n int) ([]CandidateItem, error)
}

// Categorizer maps a raw template to one of a fixed label set. The engine
// treats it as a pure function; unmatched input must map to "general".
type Categorizer interface {
	Categorize(template string) string
}
