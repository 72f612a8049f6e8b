package prompts

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/davidkimai/promptpad/api/rest/pagination"
	"github.com/davidkimai/promptpad/internal/errors"
	"github.com/davidkimai/promptpad/internal/feed"
	"github.com/davidkimai/promptpad/internal/logger"
	"github.com/davidkimai/promptpad/promptpad/prompts"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// CreatePromptHandler publishes a new prompt
func CreatePromptHandler(promptRepo *prompts.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		prompt, err := promptRepo.Create(c.Request.Context(), req.CreatorID, req.Prompt)
		if err != nil {
			errors.InternalError(c, "failed to create prompt", err)
			return
		}

		c.JSON(http.StatusCreated, prompt)
	}
}

// GetPromptHandler returns a single prompt by ID
func GetPromptHandler(promptRepo *prompts.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		promptID := c.Param("id")

		prompt, err := promptRepo.Get(c.Request.Context(), promptID)
		if err != nil {
			if stderrors.Is(err, prompts.ErrPromptNotFound) {
				errors.NotFound(c, "prompt")
				return
			}

			errors.InternalError(c, "failed to get prompt", err)
			return
		}

		c.JSON(http.StatusOK, prompt)
	}
}

// ListPromptsHandler lists public prompts with optional category and
// creator filters
func ListPromptsHandler(promptRepo *prompts.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := pagination.FromQuery(c, defaultListLimit, maxListLimit)

		filter := prompts.ListFilter{
			Category:  c.Query("category"),
			CreatorID: c.Query("creator_id"),
		}

		promptList, total, err := promptRepo.List(c.Request.Context(), filter, params.Limit, params.Offset)
		if err != nil {
			errors.InternalError(c, "failed to list prompts", err)
			return
		}

		if promptList == nil {
			promptList = []prompts.Prompt{}
		}

		c.JSON(http.StatusOK, ListResponse{
			Prompts:    promptList,
			Pagination: pagination.NewMeta(params, total),
		})
	}
}

// ForkPromptHandler copies a public prompt into the forker's collection.
// A fork is a remix, so the interaction also feeds the trend tracker.
func ForkPromptHandler(promptRepo *prompts.Repository, engine *feed.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		promptID := c.Param("id")

		var req ForkRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		fork, err := promptRepo.Fork(c.Request.Context(), promptID, req.CreatorID, prompts.ForkPromptRequest{
			Title:    req.Title,
			Template: req.Template,
		})
		if err != nil {
			if stderrors.Is(err, prompts.ErrPromptNotFound) {
				errors.NotFound(c, "prompt")
				return
			}

			errors.InternalError(c, "failed to fork prompt", err)
			return
		}

		// the fork itself succeeded; trend bookkeeping failure is not
		// worth failing the request over
		if err := engine.RecordInteraction(c.Request.Context(), req.CreatorID, promptID, feed.KindRemix, nil); err != nil {
			logger.ErrorErr(err, "failed to record remix interaction",
				"prompt_id", promptID,
			)
		}

		c.JSON(http.StatusCreated, fork)
	}
}

// GetLineageHandler returns the fork chain for a prompt
func GetLineageHandler(promptRepo *prompts.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		promptID := c.Param("id")

		chain, err := promptRepo.Lineage(c.Request.Context(), promptID)
		if err != nil {
			if stderrors.Is(err, prompts.ErrPromptNotFound) {
				errors.NotFound(c, "prompt")
				return
			}

			errors.InternalError(c, "failed to load lineage", err)
			return
		}

		c.JSON(http.StatusOK, LineageResponse{Lineage: chain})
	}
}
