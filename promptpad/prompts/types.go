package prompts

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/davidkimai/promptpad/internal/residue"
)

type Repository struct {
	db          *pgxpool.Pool
	categorizer Categorizer
	analyzer    TemplateAnalyzer
}

// Categorizer buckets a template into a category label.
type Categorizer interface {
	Categorize(template string) string
}

// TemplateAnalyzer extracts the stickiness signals stored alongside a
// prompt at creation time.
type TemplateAnalyzer interface {
	Analyze(template string) residue.Analysis
}

type Prompt struct {
	ID         string   `json:"id"`
	CreatorID  string   `json:"creator_id"`
	Title      string   `json:"title"`
	Template   string   `json:"template"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags,omitempty"`
	IsPublic   bool     `json:"is_public"`
	ParentID   *string  `json:"parent_id,omitempty"` // set on forks
	Generation int      `json:"generation"`          // 0 for originals

	EffectivenessScore float64 `json:"effectiveness_score"`
	HookPattern        string  `json:"hook_pattern,omitempty"`
	HookScore          float64 `json:"hook_score"`

	ViewCount       int `json:"view_count"`
	UsageCount      int `json:"usage_count"`
	RemixCount      int `json:"remix_count"`
	ShareCount      int `json:"share_count"`
	UniqueUserCount int `json:"unique_user_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreatePromptRequest struct {
	Title    string   `json:"title" binding:"required,max=200"`
	Template string   `json:"template" binding:"required,max=20000"`
	Category string   `json:"category,omitempty" binding:"max=50"`
	Tags     []string `json:"tags,omitempty" binding:"max=20,dive,max=50"` // max 20 tags, each max 50 chars
	IsPublic bool     `json:"is_public"`
}

type ForkPromptRequest struct {
	Title    *string `json:"title,omitempty" binding:"omitempty,max=200"`
	Template *string `json:"template,omitempty" binding:"omitempty,max=20000"`
}

type ListFilter struct {
	Category  string // exact label match
	CreatorID string // restrict to one creator
}
