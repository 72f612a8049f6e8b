package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorWhite     = lipgloss.Color("#FFFFFF")
	colorLightGray = lipgloss.Color("#CCCCCC")
	colorGray      = lipgloss.Color("#888888")
	colorDarkGray  = lipgloss.Color("#444444")
	colorPurple    = lipgloss.Color("#8524a6")
	colorGreen     = lipgloss.Color("#00FF00")
	colorYellow    = lipgloss.Color("#FFFF00")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite).
			Align(lipgloss.Center).
			MarginTop(1).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			Align(lipgloss.Center).
			MarginBottom(2)

	itemStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			PaddingLeft(2)

	itemSelectedStyle = lipgloss.NewStyle().
				Foreground(colorWhite).
				Bold(true).
				PaddingLeft(2)

	categoryStyle = lipgloss.NewStyle().
			Foreground(colorPurple).
			Bold(true)

	momentumStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	statStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Italic(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(colorLightGray)

	inputStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDarkGray).
			Italic(true).
			MarginTop(1)
)

const logo = `
  ██████╗ ██████╗  ██████╗ ███╗   ███╗██████╗ ████████╗██████╗  █████╗ ██████╗
  ██╔══██╗██╔══██╗██╔═══██╗████╗ ████║██╔══██╗╚══██╔══╝██╔══██╗██╔══██╗██╔══██╗
  ██████╔╝██████╔╝██║   ██║██╔████╔██║██████╔╝   ██║   ██████╔╝███████║██║  ██║
  ██╔═══╝ ██╔══██╗██║   ██║██║╚██╔╝██║██╔═══╝    ██║   ██╔═══╝ ██╔══██║██║  ██║
  ██║     ██║  ██║╚██████╔╝██║ ╚═╝ ██║██║        ██║   ██║     ██║  ██║██████╔╝
  ╚═╝     ╚═╝  ╚═╝ ╚═════╝ ╚═╝     ╚═╝╚═╝        ╚═╝   ╚═╝     ╚═╝  ╚═╝╚═════╝
`
