// Package tui is a terminal browser for the promptpad feed: it renders a
// user's ranked feed and the live trending list against the REST API and
// lets the user send interactions back.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// represents the current state of the TUI
type AppState int

const (
	StateWelcome AppState = iota
	StateFeed
	StateTrending
)

// main TUI application model
type Model struct {
	state  AppState
	width  int
	height int
	err    error

	welcome  *Welcome
	feed     *FeedModel
	trending *TrendingModel

	client *Client
	userID string
}

// sent when an error occurs
type ErrorMsg struct {
	err error
}

// sent to transition to the feed view for a user
type EnterFeedMsg struct {
	UserID string
}

// welcome screen model: asks for the user identity to browse as
type Welcome struct {
	input textinput.Model
}

// one rendered feed entry
type FeedItem struct {
	ID                 string    `json:"id"`
	CreatorID          string    `json:"creator_id"`
	Template           string    `json:"template"`
	Category           string    `json:"category"`
	EffectivenessScore float64   `json:"effectiveness_score"`
	UsageCount         int       `json:"usage_count"`
	RemixCount         int       `json:"remix_count"`
	TrendingMomentum   float64   `json:"trending_momentum"`
	CreatedAt          time.Time `json:"created_at"`
}

// feed browser model
type FeedModel struct {
	viewport   viewport.Model
	spinner    spinner.Model
	items      []FeedItem
	cursor     int
	isFetching bool
	status     string
	ready      bool
	width      int
	height     int
}

// one rendered trending entry
type TrendingItem struct {
	ItemID   string  `json:"item_id"`
	Momentum float64 `json:"momentum"`
}

// trending list model
type TrendingModel struct {
	spinner    spinner.Model
	items      []TrendingItem
	isFetching bool
	width      int
	height     int
}

// sent when a feed page arrives
type FeedLoadedMsg struct {
	items []FeedItem
}

// sent when the trending snapshot arrives
type TrendingLoadedMsg struct {
	items []TrendingItem
}

// sent after an interaction is accepted by the server
type InteractionRecordedMsg struct {
	promptID string
	kind     string
}
