package trending

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/davidkimai/promptpad/internal/errors"
	"github.com/davidkimai/promptpad/internal/feed"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// GetTrendingHandler returns the current momentum leaders
func GetTrendingHandler(engine *feed.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := defaultLimit
		if raw, ok := c.GetQuery("limit"); ok {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				errors.BadRequest(c, "limit must be a positive integer", err)
				return
			}

			limit = min(parsed, maxLimit)
		}

		items := engine.Trending(limit)
		if items == nil {
			items = []feed.TrendingItem{}
		}

		c.JSON(http.StatusOK, Response{Items: items})
	}
}
