package feed

import (
	"github.com/davidkimai/promptpad/internal/feed"
)

// FeedResponse wraps one assembled feed page
type FeedResponse struct {
	UserID string               `json:"user_id"`
	Count  int                  `json:"count"`
	Items  []feed.CandidateItem `json:"items"`
}

// InteractionRequest is the body of POST /interactions
type InteractionRequest struct {
	UserID   string            `json:"user_id" binding:"required,max=100"`
	PromptID string            `json:"prompt_id" binding:"required,max=100"`
	Kind     string            `json:"kind" binding:"required,max=20"`
	Metadata map[string]string `json:"metadata,omitempty" binding:"max=20"`
}

// InteractionResponse reports what happened to a submitted interaction
type InteractionResponse struct {
	Status string `json:"status"` // "recorded" or "ignored"
	Kind   string `json:"kind"`
}

// ProfileResponse exposes the derived profile for inspection
type ProfileResponse struct {
	UserID              string             `json:"user_id"`
	Affinities          map[string]float64 `json:"affinities"`
	SkillLevel          float64            `json:"skill_level"`
	ExplorationAppetite float64            `json:"exploration_appetite"`
	HourActivity        [24]int            `json:"hour_activity"`
}
