package feed

import (
	"github.com/gin-gonic/gin"

	"github.com/davidkimai/promptpad/internal/feed"
)

func RegisterRoutes(router *gin.RouterGroup, engine *feed.Engine) {
	router.GET("/feed", GetFeedHandler(engine))
	router.GET("/feed/profile", GetProfileHandler(engine))
	router.POST("/interactions", RecordInteractionHandler(engine))
}
