package notifications

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/davidkimai/promptpad/internal/errors"
	"github.com/davidkimai/promptpad/promptpad/notifications"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

// ListHandler returns a creator's notifications, newest first.
// unread=true filters to unread entries only.
func ListHandler(svc *notifications.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		creatorID := c.Query("creator_id")
		if creatorID == "" {
			errors.BadRequest(c, "creator_id is required", nil)
			return
		}

		limit := defaultListLimit
		if l := c.Query("limit"); l != "" {
			if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 && parsed <= maxListLimit {
				limit = parsed
			}
		}

		unreadOnly := c.Query("unread") == "true"

		notifs, err := svc.ListForCreator(c.Request.Context(), creatorID, limit, unreadOnly)
		if err != nil {
			errors.InternalError(c, "failed to fetch notifications", err)
			return
		}

		if notifs == nil {
			notifs = []notifications.Notification{}
		}

		// unread count is decoration; a failed count never fails the list
		unreadCount, err := svc.GetUnreadCount(c.Request.Context(), creatorID)
		if err != nil {
			unreadCount = 0
		}

		c.JSON(http.StatusOK, ListResponse{
			Notifications: notifs,
			UnreadCount:   unreadCount,
		})
	}
}

// MarkReadHandler marks a single notification as read
func MarkReadHandler(svc *notifications.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		creatorID := c.Query("creator_id")
		if creatorID == "" {
			errors.BadRequest(c, "creator_id is required", nil)
			return
		}

		notificationID := c.Param("id")

		if err := svc.MarkRead(c.Request.Context(), creatorID, notificationID); err != nil {
			errors.InternalError(c, "failed to mark notification as read", err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// MarkAllReadHandler marks every notification for the creator as read
func MarkAllReadHandler(svc *notifications.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		creatorID := c.Query("creator_id")
		if creatorID == "" {
			errors.BadRequest(c, "creator_id is required", nil)
			return
		}

		if err := svc.MarkAllRead(c.Request.Context(), creatorID); err != nil {
			errors.InternalError(c, "failed to mark notifications as read", err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// UnreadCountHandler returns the creator's unread notification count
func UnreadCountHandler(svc *notifications.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		creatorID := c.Query("creator_id")
		if creatorID == "" {
			errors.BadRequest(c, "creator_id is required", nil)
			return
		}

		count, err := svc.GetUnreadCount(c.Request.Context(), creatorID)
		if err != nil {
			errors.InternalError(c, "failed to get unread count", err)
			return
		}

		c.JSON(http.StatusOK, UnreadCountResponse{Count: count})
	}
}
