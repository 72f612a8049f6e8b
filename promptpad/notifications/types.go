package notifications

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Service struct {
	db *pgxpool.Pool
}

// notification types
const (
	TypePromptViral = "prompt_viral"
)

type Notification struct {
	ID        string         `json:"id"`
	CreatorID string         `json:"creator_id"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Body      string         `json:"body"`
	Data      map[string]any `json:"data,omitempty"`
	Read      bool           `json:"read"`
	CreatedAt time.Time      `json:"created_at"`
}

type CreateRequest struct {
	CreatorID string
	Type      string
	Title     string
	Body      string
	Data      map[string]any
}
