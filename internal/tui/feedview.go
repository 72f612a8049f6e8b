package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

func NewFeedModel() *FeedModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &FeedModel{
		spinner: sp,
	}
}

func (f *FeedModel) Init() tea.Cmd {
	return f.spinner.Tick
}

func (f *FeedModel) Update(msg tea.Msg, client *Client, userID string) (*FeedModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.width = msg.Width
		f.height = msg.Height

		if !f.ready {
			f.viewport = viewport.New(msg.Width, msg.Height-6)
			f.ready = true
		} else {
			f.viewport.Width = msg.Width
			f.viewport.Height = msg.Height - 6
		}

		f.refreshContent()
		return f, nil

	case FeedLoadedMsg:
		f.items = msg.items
		f.cursor = 0
		f.isFetching = false
		f.status = fmt.Sprintf("%d prompts", len(f.items))
		f.refreshContent()
		return f, nil

	case InteractionRecordedMsg:
		f.status = fmt.Sprintf("%s recorded for %s", msg.kind, msg.promptID)
		f.refreshContent()
		return f, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		f.spinner, cmd = f.spinner.Update(msg)
		return f, cmd

	case tea.KeyMsg:
		if f.isFetching {
			return f, nil
		}

		switch msg.String() {
		case "j", "down":
			if f.cursor < len(f.items)-1 {
				f.cursor++
				f.refreshContent()
			}

		case "k", "up":
			if f.cursor > 0 {
				f.cursor--
				f.refreshContent()
			}

		case "g":
			f.cursor = 0
			f.refreshContent()

		case "u", "s", "r", "v":
			if item, ok := f.selected(); ok {
				kind := map[string]string{
					"u": "use", "s": "skip", "r": "remix", "v": "view",
				}[msg.String()]

				return f, client.RecordInteractionCmd(userID, item.ID, kind)
			}

		case "R":
			f.isFetching = true
			f.status = "refreshing"
			return f, tea.Batch(f.spinner.Tick, client.LoadFeedCmd(userID))
		}
	}

	var cmd tea.Cmd
	f.viewport, cmd = f.viewport.Update(msg)

	return f, cmd
}

func (f *FeedModel) selected() (FeedItem, bool) {
	if f.cursor < 0 || f.cursor >= len(f.items) {
		return FeedItem{}, false
	}

	return f.items[f.cursor], true
}

func (f *FeedModel) refreshContent() {
	if !f.ready {
		return
	}

	f.viewport.SetContent(f.renderItems())
}

func (f *FeedModel) renderItems() string {
	if len(f.items) == 0 {
		return itemStyle.Render("nothing in the feed yet")
	}

	var b strings.Builder

	for i, item := range f.items {
		line := fmt.Sprintf("%s  %s",
			categoryStyle.Render(fmt.Sprintf("[%s]", item.Category)),
			truncate(item.Template, 60),
		)

		stats := statStyle.Render(fmt.Sprintf(
			"by %s | eff %.2f | used %d | remixed %d",
			item.CreatorID,
			item.EffectivenessScore,
			item.UsageCount,
			item.RemixCount,
		))

		if item.TrendingMomentum > 0 {
			stats += momentumStyle.Render(fmt.Sprintf(" | momentum %.1f", item.TrendingMomentum))
		}

		if i == f.cursor {
			b.WriteString(itemSelectedStyle.Render("> " + line))
		} else {
			b.WriteString(itemStyle.Render(line))
		}

		b.WriteString("\n")
		b.WriteString(itemStyle.Render("  " + stats))
		b.WriteString("\n\n")
	}

	return b.String()
}

func (f *FeedModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("your feed"))
	b.WriteString("\n")

	if f.isFetching {
		b.WriteString(fmt.Sprintf("  %s loading\n", f.spinner.View()))
	} else if f.ready {
		b.WriteString(f.viewport.View())
		b.WriteString("\n")
	}

	if f.status != "" {
		b.WriteString(statusStyle.Render("  " + f.status))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("  j/k move | u use | r remix | s skip | v view | R refresh | t trending | ctrl+c back"))

	return b.String()
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")

	if len(s) <= n {
		return s
	}

	return s[:n-3] + "..."
}
