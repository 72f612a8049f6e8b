package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func NewWelcome() *Welcome {
	input := textinput.New()
	input.Placeholder = "who are you browsing as?"
	input.CharLimit = 100
	input.Width = 40
	input.Focus()

	return &Welcome{input: input}
}

func (w *Welcome) Update(msg tea.Msg) (*Welcome, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			userID := strings.TrimSpace(w.input.Value())
			if userID == "" {
				return w, nil
			}

			return w, func() tea.Msg {
				return EnterFeedMsg{UserID: userID}
			}
		}
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)

	return w, cmd
}

func (w *Welcome) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(logo))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("personalized prompt feed"))
	b.WriteString("\n\n")
	b.WriteString(promptStyle.Render("  user id: "))
	b.WriteString(inputStyle.Render(w.input.View()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("  enter to browse, ctrl+c to quit"))
	b.WriteString("\n")

	return b.String()
}
