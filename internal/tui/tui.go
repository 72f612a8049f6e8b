package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func NewApp() *Model {
	return &Model{
		state:    StateWelcome,
		welcome:  NewWelcome(),
		feed:     NewFeedModel(),
		trending: NewTrendingModel(),
		client:   NewClient(),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// only quit from the welcome screen, not from the browsing views
		if msg.String() == "ctrl+c" && m.state == StateWelcome {
			return m, tea.Quit
		}

		// in feed or trending, ctrl+c goes back to welcome
		if msg.String() == "ctrl+c" && m.state != StateWelcome {
			m.state = StateWelcome
			m.err = nil
			return m, nil
		}

		// t toggles between the feed and the trending list
		if msg.String() == "t" && m.state == StateFeed {
			m.state = StateTrending
			m.trending.isFetching = true
			return m, tea.Batch(m.trending.Init(), m.client.LoadTrendingCmd(trendingLimit))
		}
		if msg.String() == "t" && m.state == StateTrending {
			m.state = StateFeed
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.feed, _ = m.feed.Update(msg, m.client, m.userID)
		m.trending, _ = m.trending.Update(msg, m.client)
		return m, nil

	case ErrorMsg:
		m.err = msg.err
		return m, nil

	case EnterFeedMsg:
		m.state = StateFeed
		m.userID = msg.UserID
		m.feed.isFetching = true
		return m, tea.Batch(m.feed.Init(), m.client.LoadFeedCmd(m.userID))
	}

	switch m.state {
	case StateWelcome:
		return m.updateWelcome(msg)

	case StateFeed:
		return m.updateFeed(msg)

	case StateTrending:
		return m.updateTrending(msg)

	default:
		return m, nil
	}
}

func (m *Model) View() string {
	if m.err != nil {
		return errorView(m.err)
	}

	switch m.state {
	case StateWelcome:
		return m.welcome.View()

	case StateFeed:
		return m.feed.View()

	case StateTrending:
		return m.trending.View()

	default:
		return "Unknown state"
	}
}

func (m *Model) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.welcome, cmd = m.welcome.Update(msg)

	return m, cmd
}

func (m *Model) updateFeed(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.feed, cmd = m.feed.Update(msg, m.client, m.userID)

	return m, cmd
}

func (m *Model) updateTrending(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.trending, cmd = m.trending.Update(msg, m.client)

	return m, cmd
}

func errorView(err error) string {
	return fmt.Sprintf("\n  Error: %v\n\n  Press Ctrl+C to exit\n", err)
}
