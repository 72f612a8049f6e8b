package prompts

import (
	"github.com/gin-gonic/gin"

	"github.com/davidkimai/promptpad/internal/feed"
	"github.com/davidkimai/promptpad/promptpad/prompts"
)

func RegisterRoutes(router *gin.RouterGroup, promptRepo *prompts.Repository, engine *feed.Engine) {
	promptsGroup := router.Group("/prompts")
	{
		promptsGroup.GET("", ListPromptsHandler(promptRepo))
		promptsGroup.POST("", CreatePromptHandler(promptRepo))
		promptsGroup.GET("/:id", GetPromptHandler(promptRepo))
		promptsGroup.GET("/:id/lineage", GetLineageHandler(promptRepo))
		promptsGroup.POST("/:id/fork", ForkPromptHandler(promptRepo, engine))
	}
}
