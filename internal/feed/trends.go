package feed

import (
	"hash/fnv"
	"math"
	"sort"
	"sync"
	"time"
)

// per-kind momentum contributions
var eventWeights = map[EventKind]float64{
	KindView:  0.1,
	KindUse:   0.5,
	KindRemix: 2.0,
	KindShare: 1.5,
	KindSkip:  -0.3,
}

const trendShardCount = 16

// TrendTracker maintains decayed per-item momentum and detects viral
// threshold crossings. State is sharded by item identifier so concurrent
// writers only contend when touching items on the same shard; there is no
// global lock and no background goroutine. Decay is computed lazily from
// each entry's last-update timestamp whenever the entry is read or
// written.
type TrendTracker struct {
	cfg    Config
	shards [trendShardCount]trendShard

	// injectable clock for tests
	now func() time.Time
}

type trendShard struct {
	mu    sync.Mutex
	items map[string]*trendEntry
}

type trendEntry struct {
	momentum   float64
	lastUpdate time.Time

	// set on the amplified crossing, cleared when the remix rate falls
	// back under the threshold so a later re-crossing amplifies again
	amplified bool
}

func NewTrendTracker(cfg Config) *TrendTracker {
	t := &TrendTracker{cfg: cfg, now: time.Now}

	for i := range t.shards {
		t.shards[i].items = make(map[string]*trendEntry)
	}

	return t
}

// overrides the tracker's clock; tests only
func (t *TrendTracker) SetClock(now func() time.Time) {
	t.now = now
}

func (t *TrendTracker) shard(itemID string) *trendShard {
	h := fnv.New32a()
	h.Write([]byte(itemID)) //nolint:errcheck,gosec // fnv never fails
	return &t.shards[h.Sum32()%trendShardCount]
}

// applies lazy decay to an entry; caller holds the shard lock.
// Returns false when the entry decayed below epsilon and should go.
// Amplified entries are kept regardless so crossing state survives until
// the remix rate drops back under the threshold.
func (t *TrendTracker) decay(e *trendEntry, now time.Time) bool {
	elapsed := now.Sub(e.lastUpdate)
	if elapsed > 0 {
		units := float64(elapsed) / float64(t.cfg.DecayUnit)
		e.momentum *= math.Pow(t.cfg.DecayFactor, units)
		e.lastUpdate = now
	}

	return e.momentum >= t.cfg.Epsilon || e.amplified
}

// Record folds one interaction into the item's momentum. Negative-weight
// events can never push momentum below zero.
func (t *TrendTracker) Record(itemID string, kind EventKind) {
	weight, ok := eventWeights[kind]
	if !ok {
		return
	}

	now := t.now()
	s := t.shard(itemID)

	s.mu.Lock()
	defer s.mu.Unlock()

	e, exists := s.items[itemID]
	if !exists {
		if weight <= 0 {
			return
		}

		s.items[itemID] = &trendEntry{momentum: weight, lastUpdate: now}
		return
	}

	t.decay(e, now)
	e.momentum += weight

	if e.momentum < 0 {
		e.momentum = 0
	}

	// amplified entries survive eviction so crossing state is not lost
	if e.momentum < t.cfg.Epsilon && !e.amplified {
		delete(s.items, itemID)
	}
}

// Momentum returns the item's current (decayed) momentum, zero for
// unknown or evicted items.
func (t *TrendTracker) Momentum(itemID string) float64 {
	now := t.now()
	s := t.shard(itemID)

	s.mu.Lock()
	defer s.mu.Unlock()

	e, exists := s.items[itemID]
	if !exists {
		return 0
	}

	if !t.decay(e, now) {
		delete(s.items, itemID)
		return 0
	}

	return e.momentum
}

// CheckViral evaluates the item's remix rate against the viral threshold
// and amplifies its momentum exactly once per crossing. usageCount of
// zero short-circuits to a zero rate. Returns the rate, the momentum
// after any amplification, and whether this call amplified.
func (t *TrendTracker) CheckViral(itemID string, usageCount, remixCount int) (rate, momentum float64, crossed bool) {
	if usageCount > 0 {
		rate = float64(remixCount) / float64(usageCount)
	}

	now := t.now()
	s := t.shard(itemID)

	s.mu.Lock()
	defer s.mu.Unlock()

	e, exists := s.items[itemID]
	if !exists {
		// nothing to amplify, but remember the crossing state so a
		// later momentum gain does not double-fire for this crossing
		if rate > t.cfg.ViralRemixThreshold {
			s.items[itemID] = &trendEntry{lastUpdate: now, amplified: true}
			return rate, 0, true
		}

		return rate, 0, false
	}

	t.decay(e, now)

	if rate > t.cfg.ViralRemixThreshold {
		if !e.amplified {
			e.momentum *= t.cfg.ViralAmplification
			e.amplified = true
			return rate, e.momentum, true
		}

		return rate, e.momentum, false
	}

	// below threshold again: arm for the next crossing
	e.amplified = false

	if e.momentum < t.cfg.Epsilon {
		momentum = e.momentum
		delete(s.items, itemID)
		return rate, momentum, false
	}

	return rate, e.momentum, false
}

// Trending returns the n highest-momentum items across all shards,
// applying decay as it reads.
func (t *TrendTracker) Trending(n int) []TrendingItem {
	now := t.now()
	var out []TrendingItem

	for i := range t.shards {
		s := &t.shards[i]
		s.mu.Lock()

		for id, e := range s.items {
			if !t.decay(e, now) {
				delete(s.items, id)
				continue
			}

			out = append(out, TrendingItem{ItemID: id, Momentum: e.momentum})
		}

		s.mu.Unlock()
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Momentum > out[j].Momentum
	})

	if n > 0 && len(out) > n {
		out = out[:n]
	}

	return out
}
