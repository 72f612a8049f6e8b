package feed

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// in-memory ItemStore / ExplorationSource test double
type fakeStore struct {
	items       map[string]*CandidateItem
	trust       map[string]float64
	exploration []CandidateItem

	engagements []string

	failFetch  bool
	failGet    bool
	failSample bool
}

var errStoreDown = errors.New("connection refused")

func (f *fakeStore) FetchCandidates(_ context.Context, _ string, limit int) ([]CandidateItem, error) {
	if f.failFetch {
		return nil, errStoreDown
	}

	var out []CandidateItem
	for _, item := range f.items {
		out = append(out, *item)
	}

	if len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (f *fakeStore) GetItem(_ context.Context, itemID string) (*CandidateItem, error) {
	if f.failGet {
		return nil, errStoreDown
	}

	item, ok := f.items[itemID]
	if !ok {
		return nil, ErrItemNotFound
	}

	snapshot := *item
	return &snapshot, nil
}

func (f *fakeStore) GetCreatorTrust(_ context.Context, creatorID string) (float64, error) {
	trust, ok := f.trust[creatorID]
	if !ok {
		return 0, ErrItemNotFound
	}

	return trust, nil
}

func (f *fakeStore) RecordEngagement(_ context.Context, itemID, _ string, kind EventKind) error {
	f.engagements = append(f.engagements, itemID+"/"+string(kind))

	if item, ok := f.items[itemID]; ok {
		switch kind {
		case KindUse:
			item.UsageCount++
		case KindRemix:
			item.RemixCount++
		}
	}

	return nil
}

func (f *fakeStore) SampleHighQuality(_ context.Context, n int) ([]CandidateItem, error) {
	if f.failSample {
		return nil, errStoreDown
	}

	if len(f.exploration) > n {
		return f.exploration[:n], nil
	}

	return f.exploration, nil
}

type staticCategorizer struct{}

func (staticCategorizer) Categorize(string) string { return "general" }

func newTestEngine(t *testing.T, store *fakeStore) *Engine {
	t.Helper()

	engine, err := NewEngine(DefaultConfig(), store, store, staticCategorizer{})
	require.NoError(t, err)

	engine.now = func() time.Time {
		return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	}
	engine.tracker.SetClock(engine.now)

	return engine
}

func storeWithItems(n int) *fakeStore {
	store := &fakeStore{
		items: make(map[string]*CandidateItem),
		trust: map[string]float64{},
	}

	for i := range n {
		id := fmt.Sprintf("item-%d", i)
		store.items[id] = &CandidateItem{
			ID:                 id,
			CreatorID:          fmt.Sprintf("creator-%d", i),
			Template:           "write a story about...",
			Category:           fmt.Sprintf("cat-%d", i%7),
			EffectivenessScore: 0.5 + float64(i%5)/10,
			UsageCount:         10 + i,
			UniqueUserCount:    5 + i,
			CreatedAt:          time.Date(2026, 7, 20+i%10, 0, 0, 0, 0, time.UTC),
		}
	}

	store.exploration = []CandidateItem{
		{ID: "explore-0", CreatorID: "curator", Category: "general"},
		{ID: "explore-1", CreatorID: "curator", Category: "general"},
	}

	return store
}

func TestNewEngineRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Weights.Novelty = 0.9

	store := storeWithItems(1)
	_, err := NewEngine(cfg, store, store, staticCategorizer{})
	assert.Error(t, err)
}

func TestGetFeedLengthBounded(t *testing.T) {
	engine := newTestEngine(t, storeWithItems(50))

	out, err := engine.GetFeed(context.Background(), "user-1", 20)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(out), 20)
	assert.NotEmpty(t, out)
}

func TestGetFeedRejectsZeroCount(t *testing.T) {
	engine := newTestEngine(t, storeWithItems(5))

	_, err := engine.GetFeed(context.Background(), "user-1", 0)
	assert.Error(t, err)
}

func TestGetFeedIncludesExplorationWhenShort(t *testing.T) {
	// only 3 ranked candidates for a 20-item request: exploration items
	// must be appended, not overwritten
	engine := newTestEngine(t, storeWithItems(3))

	out, err := engine.GetFeed(context.Background(), "user-1", 20)
	require.NoError(t, err)

	ids := make(map[string]bool)
	for _, item := range out {
		ids[item.ID] = true
	}

	assert.True(t, ids["explore-0"])
	assert.True(t, ids["explore-1"])
}

func TestGetFeedUpstreamFailureSurfaced(t *testing.T) {
	store := storeWithItems(5)
	store.failFetch = true
	engine := newTestEngine(t, store)

	_, err := engine.GetFeed(context.Background(), "user-1", 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestGetFeedExplorationFailureSurfaced(t *testing.T) {
	store := storeWithItems(5)
	store.failSample = true
	engine := newTestEngine(t, store)

	_, err := engine.GetFeed(context.Background(), "user-1", 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestGetFeedRecordsExposures(t *testing.T) {
	engine := newTestEngine(t, storeWithItems(30))

	_, err := engine.GetFeed(context.Background(), "user-1", 10)
	require.NoError(t, err)

	profile := engine.BuildProfile("user-1")
	total := 0
	for _, n := range profile.CategorySeen {
		total += n
	}

	assert.Positive(t, total, "served items must count as exposures")
}

func TestRecordInteractionUnknownKindIgnored(t *testing.T) {
	store := storeWithItems(3)
	engine := newTestEngine(t, store)

	err := engine.RecordInteraction(context.Background(), "user-1", "item-0", EventKind("bookmark"), nil)
	require.NoError(t, err)
	assert.Empty(t, store.engagements, "unknown kinds must not mutate state")

	events, _ := engine.log.Snapshot("user-1")
	assert.Empty(t, events)
}

func TestRecordInteractionMissingItemTolerated(t *testing.T) {
	engine := newTestEngine(t, storeWithItems(1))

	err := engine.RecordInteraction(context.Background(), "user-1", "ghost", KindUse, nil)
	require.NoError(t, err)

	// the event still shapes the profile and momentum
	events, _ := engine.log.Snapshot("user-1")
	require.Len(t, events, 1)
	assert.Equal(t, "general", events[0].Category)
	assert.Positive(t, engine.tracker.Momentum("ghost"))
}

func TestRecordInteractionStoreDownSurfaced(t *testing.T) {
	store := storeWithItems(1)
	store.failGet = true
	engine := newTestEngine(t, store)

	err := engine.RecordInteraction(context.Background(), "user-1", "item-0", KindUse, nil)
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestRecordInteractionUpdatesCounters(t *testing.T) {
	store := storeWithItems(2)
	engine := newTestEngine(t, store)

	require.NoError(t, engine.RecordInteraction(context.Background(), "user-1", "item-0", KindUse, nil))
	require.NoError(t, engine.RecordInteraction(context.Background(), "user-2", "item-0", KindRemix, nil))

	assert.Equal(t, []string{"item-0/use", "item-0/remix"}, store.engagements)
}

func TestViralCallbackFiresExactlyOnce(t *testing.T) {
	store := storeWithItems(1)
	store.items["item-0"].UsageCount = 100
	store.items["item-0"].RemixCount = 14 // next remix crosses 0.10

	engine := newTestEngine(t, store)

	var crossings []ViralCrossing
	engine.OnViral(func(v ViralCrossing) { crossings = append(crossings, v) })

	require.NoError(t, engine.RecordInteraction(context.Background(), "user-1", "item-0", KindRemix, nil))
	require.Len(t, crossings, 1)
	assert.Equal(t, "item-0", crossings[0].ItemID)
	assert.InDelta(t, 0.15, crossings[0].RemixRate, 1e-9)

	// further remixes stay over the threshold but never re-fire
	for i := range 5 {
		user := fmt.Sprintf("user-%d", i+2)
		require.NoError(t, engine.RecordInteraction(context.Background(), user, "item-0", KindRemix, nil))
	}

	assert.Len(t, crossings, 1)
}

func TestFeedReflectsRecordedAffinity(t *testing.T) {
	store := storeWithItems(0)
	store.items["tech"] = &CandidateItem{
		ID: "tech", CreatorID: "c1", Category: "technical",
		EffectivenessScore: 0.5, UsageCount: 10, UniqueUserCount: 5,
		CreatedAt: time.Date(2026, 7, 25, 0, 0, 0, 0, time.UTC),
	}
	store.items["biz"] = &CandidateItem{
		ID: "biz", CreatorID: "c2", Category: "business",
		EffectivenessScore: 0.5, UsageCount: 10, UniqueUserCount: 5,
		CreatedAt: time.Date(2026, 7, 25, 0, 0, 0, 0, time.UTC),
	}

	engine := newTestEngine(t, store)

	// equal items except the user's demonstrated technical preference
	for range 5 {
		require.NoError(t, engine.RecordInteraction(context.Background(), "user-1", "tech", KindUse, nil))
	}

	// request more than the ranked pool holds so exploration appends
	// instead of overwriting ranked slots
	out, err := engine.GetFeed(context.Background(), "user-1", 4)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "tech", out[0].ID)
}
