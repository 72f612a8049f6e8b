package feed

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/davidkimai/promptpad/internal/logger"
	"github.com/google/uuid"
)

// Engine composes the scorer, profile builder, trend tracker, diversity
// filter and exploration injector behind the two operations the core
// exposes: GetFeed and RecordInteraction.
//
// GetFeed runs synchronously: profile read, trend read, score, filter,
// inject. RecordInteraction mutates the per-user event log and the
// sharded trend map; both scope their locking to the user or item being
// touched, so concurrent requests for different users never contend.
// Feed reads may race interaction writes; a feed that is stale by one
// event is acceptable.
type Engine struct {
	cfg Config

	store       ItemStore
	exploration ExplorationSource
	categorizer Categorizer

	log       *EventLog
	profiles  *ProfileBuilder
	scorer    *Scorer
	diversity *DiversityFilter
	injector  *ExplorationInjector
	tracker   *TrendTracker

	// invoked synchronously on each first threshold crossing
	onViral func(ViralCrossing)

	// rand.Rand is not safe for concurrent use
	rngMu sync.Mutex
	rng   *rand.Rand

	now func() time.Time
}

// creates an engine after validating the ranking configuration
func NewEngine(cfg Config, store ItemStore, exploration ExplorationSource, categorizer Categorizer) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid feed config: %w", err)
	}

	if store == nil {
		return nil, fmt.Errorf("item store is required")
	}

	if exploration == nil {
		return nil, fmt.Errorf("exploration source is required")
	}

	if categorizer == nil {
		return nil, fmt.Errorf("categorizer is required")
	}

	log := NewEventLog(cfg.MaxEventsPerUser)

	return &Engine{
		cfg:         cfg,
		store:       store,
		exploration: exploration,
		categorizer: categorizer,
		log:         log,
		profiles:    NewProfileBuilder(log),
		scorer:      NewScorer(cfg),
		diversity:   NewDiversityFilter(cfg),
		injector:    NewExplorationInjector(cfg),
		tracker:     NewTrendTracker(cfg),
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // placement jitter, not security
		now:         time.Now,
	}, nil
}

// registers a callback fired once per viral threshold crossing
func (e *Engine) OnViral(fn func(ViralCrossing)) {
	e.onViral = fn
}

// BuildProfile exposes the derived profile for a user, mainly for the
// profile inspection endpoint and tests.
func (e *Engine) BuildProfile(userID string) UserProfile {
	return e.profiles.Build(userID)
}

// Trending returns the current top-momentum items.
func (e *Engine) Trending(n int) []TrendingItem {
	return e.tracker.Trending(n)
}

// GetFeed assembles a personalized, diversity-capped, exploration-mixed
// feed of at most count items. Item store or exploration source failures
// are reported as ErrUpstreamUnavailable; the engine never retries.
func (e *Engine) GetFeed(ctx context.Context, userID string, count int) ([]CandidateItem, error) {
	if count < 1 {
		return nil, fmt.Errorf("count must be >= 1, got %d", count)
	}

	profile := e.profiles.Build(userID)

	candidates, err := e.store.FetchCandidates(ctx, userID, count*e.cfg.OverfetchFactor)
	if err != nil {
		return nil, fmt.Errorf("fetch candidates: %w: %w", ErrUpstreamUnavailable, err)
	}

	now := e.now()
	trustByCreator := make(map[string]float64)

	scored := make([]ScoredCandidate, 0, len(candidates))

	for _, item := range candidates {
		if item.Category == "" {
			item.Category = e.categorizer.Categorize(item.Template)
		}

		// momentum snapshot from the live tracker, not the store
		item.TrendingMomentum = e.tracker.Momentum(item.ID)

		trust, ok := trustByCreator[item.CreatorID]
		if !ok {
			trust = e.creatorTrust(ctx, item.CreatorID)
			trustByCreator[item.CreatorID] = trust
		}

		scored = append(scored, ScoredCandidate{
			Score: e.scorer.Score(item, profile, trust, now),
			Item:  item,
		})
	}

	// stable sort keeps fetch order for equal scores
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	diverse := e.diversity.Filter(scored, count)

	extras, err := e.exploration.SampleHighQuality(ctx, e.injector.Slots(count))
	if err != nil {
		return nil, fmt.Errorf("sample exploration candidates: %w: %w", ErrUpstreamUnavailable, err)
	}

	for i := range extras {
		if extras[i].Category == "" {
			extras[i].Category = e.categorizer.Categorize(extras[i].Template)
		}
	}

	e.rngMu.Lock()
	final := e.injector.Inject(diverse, count, extras, e.rng)
	e.rngMu.Unlock()

	// served items count as category exposures for the novelty signal
	for _, item := range final {
		e.log.AddExposure(userID, item.Category)
	}

	return final, nil
}

// RecordInteraction folds one user action into profile and trend state.
// Unknown kinds are ignored without error. A missing item is tolerated
// (the event still shapes the user's log); an unreachable store is not.
func (e *Engine) RecordInteraction(ctx context.Context, userID, itemID string, kind EventKind, metadata map[string]string) error {
	if !kind.Valid() {
		logger.Debug("ignoring unknown interaction kind",
			"kind", string(kind),
			"user_id", userID,
			"item_id", itemID,
		)

		return nil
	}

	item, err := e.store.GetItem(ctx, itemID)
	if err != nil && !errors.Is(err, ErrItemNotFound) {
		return fmt.Errorf("load item: %w: %w", ErrUpstreamUnavailable, err)
	}

	category := "general"
	if item != nil {
		category = item.Category
		if category == "" {
			category = e.categorizer.Categorize(item.Template)
		}

		// counter updates are best-effort; momentum and the event log
		// still advance when the store write fails
		if err := e.store.RecordEngagement(ctx, itemID, userID, kind); err != nil {
			logger.ErrorErr(err, "failed to record engagement",
				"item_id", itemID,
				"kind", string(kind),
			)
		}
	}

	e.log.Append(InteractionEvent{
		ID:        uuid.New().String(),
		UserID:    userID,
		ItemID:    itemID,
		Kind:      kind,
		Category:  category,
		Timestamp: e.now(),
		Metadata:  metadata,
	})

	e.tracker.Record(itemID, kind)

	if item == nil {
		return nil
	}

	// evaluate the remix ratio including the event just recorded
	usage, remix := item.UsageCount, item.RemixCount

	switch kind {
	case KindUse:
		usage++
	case KindRemix:
		remix++
	}

	rate, momentum, crossed := e.tracker.CheckViral(itemID, usage, remix)
	if crossed {
		logger.Info("viral threshold crossed",
			"item_id", itemID,
			"remix_rate", rate,
			"momentum", momentum,
		)

		if e.onViral != nil {
			e.onViral(ViralCrossing{
				ItemID:    itemID,
				CreatorID: item.CreatorID,
				RemixRate: rate,
				Momentum:  momentum,
				At:        e.now(),
			})
		}
	}

	return nil
}

// resolves creator trust, substituting the neutral default for unknown
// creators or lookup failures
func (e *Engine) creatorTrust(ctx context.Context, creatorID string) float64 {
	trust, err := e.store.GetCreatorTrust(ctx, creatorID)
	if err != nil {
		if !errors.Is(err, ErrItemNotFound) {
			logger.Debug("creator trust lookup failed, using neutral",
				"creator_id", creatorID,
				"error", err,
			)
		}

		return e.cfg.NeutralTrust
	}

	return clamp01(trust)
}
