package prompts

import (
	"github.com/davidkimai/promptpad/api/rest/pagination"
	"github.com/davidkimai/promptpad/promptpad/prompts"
)

// CreateRequest is the body of POST /prompts. There is no account layer;
// callers identify the creator explicitly.
type CreateRequest struct {
	CreatorID string                      `json:"creator_id" binding:"required,max=100"`
	Prompt    prompts.CreatePromptRequest `json:"prompt" binding:"required"`
}

// ForkRequest is the body of POST /prompts/:id/fork
type ForkRequest struct {
	CreatorID string  `json:"creator_id" binding:"required,max=100"`
	Title     *string `json:"title,omitempty" binding:"omitempty,max=200"`
	Template  *string `json:"template,omitempty" binding:"omitempty,max=20000"`
}

// ListResponse wraps a list of prompts with pagination
type ListResponse struct {
	Prompts    []prompts.Prompt `json:"prompts"`
	Pagination pagination.Meta  `json:"pagination"`
}

// LineageResponse holds the fork chain, oldest generation first
type LineageResponse struct {
	Lineage []prompts.Prompt `json:"lineage"`
}
