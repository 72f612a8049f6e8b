package trending

import (
	"github.com/gin-gonic/gin"

	"github.com/davidkimai/promptpad/internal/feed"
)

func RegisterRoutes(router *gin.RouterGroup, engine *feed.Engine) {
	router.GET("/trending", GetTrendingHandler(engine))
}
