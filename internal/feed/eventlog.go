package feed

import (
	"sync"
)

// EventLog holds per-user interaction history in memory. Contention is
// scoped to the user being touched: a read lock on the outer map locates
// the user's log, a per-user mutex guards appends and snapshots. Readers
// racing a writer may observe a log that is stale by one event, which the
// ranking pass tolerates.
type EventLog struct {
	mu    sync.RWMutex
	users map[string]*userLog

	// oldest events beyond this are discarded per user
	maxEvents int
}

type userLog struct {
	mu        sync.Mutex
	events    []InteractionEvent
	exposures map[string]int // feed impressions per category
}

// creates an event log retaining at most maxEvents per user
func NewEventLog(maxEvents int) *EventLog {
	return &EventLog{
		users:     make(map[string]*userLog),
		maxEvents: maxEvents,
	}
}

// returns the user's log, creating it on first touch
func (l *EventLog) userLog(userID string) *userLog {
	l.mu.RLock()
	ul, ok := l.users[userID]
	l.mu.RUnlock()

	if ok {
		return ul
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// re-check under the write lock
	if ul, ok = l.users[userID]; ok {
		return ul
	}

	ul = &userLog{exposures: make(map[string]int)}
	l.users[userID] = ul

	return ul
}

// appends an event to the user's log, dropping the oldest half once the
// retention cap is exceeded
func (l *EventLog) Append(event InteractionEvent) {
	ul := l.userLog(event.UserID)

	ul.mu.Lock()
	defer ul.mu.Unlock()

	ul.events = append(ul.events, event)

	if l.maxEvents > 0 && len(ul.events) > l.maxEvents {
		keep := l.maxEvents / 2
		trimmed := make([]InteractionEvent, keep)
		copy(trimmed, ul.events[len(ul.events)-keep:])
		ul.events = trimmed
	}
}

// counts a feed impression against a category for the novelty signal
func (l *EventLog) AddExposure(userID, category string) {
	ul := l.userLog(userID)

	ul.mu.Lock()
	defer ul.mu.Unlock()

	ul.exposures[category]++
}

// returns a copy of the user's events (chronological) and category
// exposure counts; both are safe for the caller to retain
func (l *EventLog) Snapshot(userID string) ([]InteractionEvent, map[string]int) {
	l.mu.RLock()
	ul, ok := l.users[userID]
	l.mu.RUnlock()

	if !ok {
		return nil, map[string]int{}
	}

	ul.mu.Lock()
	defer ul.mu.Unlock()

	events := make([]InteractionEvent, len(ul.events))
	copy(events, ul.events)

	exposures := make(map[string]int, len(ul.exposures))
	for cat, n := range ul.exposures {
		exposures[cat] = n
	}

	return events, exposures
}
