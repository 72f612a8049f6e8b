package notifications

import (
	"github.com/davidkimai/promptpad/promptpad/notifications"
)

// ListResponse wraps a creator's notifications with their unread count
type ListResponse struct {
	Notifications []notifications.Notification `json:"notifications"`
	UnreadCount   int                          `json:"unread_count"`
}

// UnreadCountResponse carries just the unread counter
type UnreadCountResponse struct {
	Count int `json:"count"`
}
