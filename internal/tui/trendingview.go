package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// entries shown in the trending view
const trendingLimit = 10

func NewTrendingModel() *TrendingModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &TrendingModel{
		spinner: sp,
	}
}

func (t *TrendingModel) Init() tea.Cmd {
	return t.spinner.Tick
}

func (t *TrendingModel) Update(msg tea.Msg, client *Client) (*TrendingModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		t.width = msg.Width
		t.height = msg.Height
		return t, nil

	case TrendingLoadedMsg:
		t.items = msg.items
		t.isFetching = false
		return t, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		t.spinner, cmd = t.spinner.Update(msg)
		return t, cmd

	case tea.KeyMsg:
		if msg.String() == "R" && !t.isFetching {
			t.isFetching = true
			return t, tea.Batch(t.spinner.Tick, client.LoadTrendingCmd(trendingLimit))
		}
	}

	return t, nil
}

func (t *TrendingModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("trending now"))
	b.WriteString("\n")

	if t.isFetching {
		b.WriteString(fmt.Sprintf("  %s loading\n", t.spinner.View()))
	} else if len(t.items) == 0 {
		b.WriteString(itemStyle.Render("nothing is trending yet"))
		b.WriteString("\n")
	} else {
		for i, item := range t.items {
			bar := momentumBar(item.Momentum)

			b.WriteString(itemStyle.Render(fmt.Sprintf(
				"%2d. %-30s %s %s",
				i+1,
				truncate(item.ItemID, 30),
				momentumStyle.Render(bar),
				statStyle.Render(fmt.Sprintf("%.1f", item.Momentum)),
			)))
			b.WriteString("\n")
		}
	}

	b.WriteString(helpStyle.Render("  R refresh | t feed | ctrl+c back"))

	return b.String()
}

// renders momentum as a simple bar, capped at 20 cells
func momentumBar(momentum float64) string {
	cells := min(int(momentum), 20)
	if cells < 1 {
		cells = 1
	}

	return strings.Repeat("█", cells)
}
