package notifications

import (
	"github.com/gin-gonic/gin"

	"github.com/davidkimai/promptpad/promptpad/notifications"
)

func RegisterRoutes(router *gin.RouterGroup, svc *notifications.Service) {
	notificationsGroup := router.Group("/notifications")
	{
		notificationsGroup.GET("", ListHandler(svc))
		notificationsGroup.GET("/unread-count", UnreadCountHandler(svc))
		notificationsGroup.POST("/read-all", MarkAllReadHandler(svc))
		notificationsGroup.POST("/:id/read", MarkReadHandler(svc))
	}
}
