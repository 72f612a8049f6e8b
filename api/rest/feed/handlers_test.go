package feed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidkimai/promptpad/internal/feed"
)

type stubStore struct {
	items []feed.CandidateItem
	down  bool
}

var errDown = errors.New("connection refused")

func (s *stubStore) FetchCandidates(_ context.Context, _ string, limit int) ([]feed.CandidateItem, error) {
	if s.down {
		return nil, errDown
	}

	if len(s.items) > limit {
		return s.items[:limit], nil
	}

	return s.items, nil
}

func (s *stubStore) GetItem(_ context.Context, itemID string) (*feed.CandidateItem, error) {
	if s.down {
		return nil, errDown
	}

	for _, item := range s.items {
		if item.ID == itemID {
			snapshot := item
			return &snapshot, nil
		}
	}

	return nil, feed.ErrItemNotFound
}

func (s *stubStore) GetCreatorTrust(_ context.Context, _ string) (float64, error) {
	return 0.5, nil
}

func (s *stubStore) RecordEngagement(_ context.Context, _, _ string, _ feed.EventKind) error {
	return nil
}

func (s *stubStore) SampleHighQuality(_ context.Context, n int) ([]feed.CandidateItem, error) {
	if s.down {
		return nil, errDown
	}

	if len(s.items) > n {
		return s.items[:n], nil
	}

	return s.items, nil
}

type stubCategorizer struct{}

func (stubCategorizer) Categorize(string) string { return "general" }

func newTestRouter(t *testing.T, store *stubStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine, err := feed.NewEngine(feed.DefaultConfig(), store, store, stubCategorizer{})
	require.NoError(t, err)

	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"), engine)

	return router
}

func seededStore() *stubStore {
	store := &stubStore{}

	for i, id := range []string{"p1", "p2", "p3", "p4", "p5"} {
		store.items = append(store.items, feed.CandidateItem{
			ID:                 id,
			CreatorID:          "creator-" + id,
			Template:           "analyze this",
			Category:           "analytical",
			EffectivenessScore: 0.8,
			UsageCount:         10 + i,
			UniqueUserCount:    5,
			CreatedAt:          time.Now().Add(-time.Duration(i) * time.Hour),
		})
	}

	return store
}

func TestGetFeedHandlerOK(t *testing.T) {
	router := newTestRouter(t, seededStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/feed?user_id=u1&count=3", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp FeedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "u1", resp.UserID)
	assert.LessOrEqual(t, resp.Count, 3)
	assert.Len(t, resp.Items, resp.Count)
}

func TestGetFeedHandlerRequiresUserID(t *testing.T) {
	router := newTestRouter(t, seededStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/feed", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetFeedHandlerRejectsBadCount(t *testing.T) {
	router := newTestRouter(t, seededStore())

	for _, count := range []string{"0", "-3", "abc"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/feed?user_id=u1&count="+count, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "count=%s", count)
	}
}

func TestGetFeedHandlerUpstreamDown(t *testing.T) {
	store := seededStore()
	store.down = true
	router := newTestRouter(t, store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/feed?user_id=u1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "upstream_unavailable", resp["error"])
}

func TestRecordInteractionHandlerRecorded(t *testing.T) {
	router := newTestRouter(t, seededStore())

	body, _ := json.Marshal(InteractionRequest{
		UserID:   "u1",
		PromptID: "p1",
		Kind:     "use",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/interactions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp InteractionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "recorded", resp.Status)
}

func TestRecordInteractionHandlerUnknownKindAccepted(t *testing.T) {
	router := newTestRouter(t, seededStore())

	body, _ := json.Marshal(InteractionRequest{
		UserID:   "u1",
		PromptID: "p1",
		Kind:     "bookmark",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/interactions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusAccepted, w.Code)

	var resp InteractionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ignored", resp.Status)
	assert.Equal(t, "bookmark", resp.Kind)
}

func TestRecordInteractionHandlerValidation(t *testing.T) {
	router := newTestRouter(t, seededStore())

	// missing prompt_id
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/interactions", bytes.NewReader([]byte(`{"user_id":"u1","kind":"use"}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecordInteractionHandlerUpstreamDown(t *testing.T) {
	store := seededStore()
	store.down = true
	router := newTestRouter(t, store)

	body, _ := json.Marshal(InteractionRequest{
		UserID:   "u1",
		PromptID: "p1",
		Kind:     "use",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/interactions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGetProfileHandler(t *testing.T) {
	router := newTestRouter(t, seededStore())

	// record a use, then the profile should show the affinity
	body, _ := json.Marshal(InteractionRequest{UserID: "u1", PromptID: "p1", Kind: "use"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/interactions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/feed/profile?user_id=u1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp ProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "u1", resp.UserID)
	assert.Positive(t, resp.Affinities["analytical"])
}
