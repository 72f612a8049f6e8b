package feed

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/davidkimai/promptpad/internal/errors"
	"github.com/davidkimai/promptpad/internal/feed"
)

const (
	defaultFeedCount = 20
	maxFeedCount     = 100
)

// GetFeedHandler assembles a personalized feed page for a user
func GetFeedHandler(engine *feed.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("user_id")
		if userID == "" {
			errors.BadRequest(c, "user_id is required", nil)
			return
		}

		count := defaultFeedCount
		if raw, ok := c.GetQuery("count"); ok {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				errors.BadRequest(c, "count must be a positive integer", err)
				return
			}

			count = min(parsed, maxFeedCount)
		}

		items, err := engine.GetFeed(c.Request.Context(), userID, count)
		if err != nil {
			if stderrors.Is(err, feed.ErrUpstreamUnavailable) {
				errors.UpstreamUnavailable(c, "prompt store unavailable", err)
				return
			}

			errors.InternalError(c, "failed to assemble feed", err)
			return
		}

		c.JSON(http.StatusOK, FeedResponse{
			UserID: userID,
			Count:  len(items),
			Items:  items,
		})
	}
}

// RecordInteractionHandler folds one user action into the engine.
// Unknown kinds are accepted and ignored rather than rejected, so
// clients can ship new event types before the server understands them.
func RecordInteractionHandler(engine *feed.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req InteractionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		kind := feed.EventKind(req.Kind)
		if !kind.Valid() {
			c.JSON(http.StatusAccepted, InteractionResponse{
				Status: "ignored",
				Kind:   req.Kind,
			})
			return
		}

		err := engine.RecordInteraction(c.Request.Context(), req.UserID, req.PromptID, kind, req.Metadata)
		if err != nil {
			if stderrors.Is(err, feed.ErrUpstreamUnavailable) {
				errors.UpstreamUnavailable(c, "prompt store unavailable", err)
				return
			}

			errors.InternalError(c, "failed to record interaction", err)
			return
		}

		c.JSON(http.StatusCreated, InteractionResponse{
			Status: "recorded",
			Kind:   req.Kind,
		})
	}
}

// GetProfileHandler exposes the derived user profile for inspection
func GetProfileHandler(engine *feed.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("user_id")
		if userID == "" {
			errors.BadRequest(c, "user_id is required", nil)
			return
		}

		profile := engine.BuildProfile(userID)

		c.JSON(http.StatusOK, ProfileResponse{
			UserID:              profile.UserID,
			Affinities:          profile.Affinities,
			SkillLevel:          profile.SkillLevel,
			ExplorationAppetite: profile.ExplorationAppetite,
			HourActivity:        profile.HourActivity,
		})
	}
}
