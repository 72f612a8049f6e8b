package trending

import (
	"github.com/davidkimai/promptpad/internal/feed"
)

// Response wraps a momentum snapshot
type Response struct {
	Items []feed.TrendingItem `json:"items"`
}
