package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// UI styles and layout settings
// Color palette "Blue Moon" from https://gogh-co.github.io/Gogh/
const (
	colorGray     = "#353b52"
	colorWhite    = "#ffffff"
	colorGreen    = "#acfab4"
	colorGreenDim = "#b4c4b4"
	colorRed      = "#e61f44"
	colorPurple   = "#b9a3eb"
	colorBlue     = "#89ddff"
	colorYellow   = "#ffcc66"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color(colorBlue)).
			Background(lipgloss.Color(colorGray)).
			Padding(0, 2).Align(lipgloss.Center)
	subtitleStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color(colorBlue))
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorGray)).
			Background(lipgloss.Color(colorGreen))
	dangerSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(colorGray)).
				Background(lipgloss.Color(colorRed))
	inactiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorWhite))
	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorGreenDim)).
			Strikethrough(true)
	localStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorYellow))
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorRed))
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorBlue))
	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorPurple))
	activeTabStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color(colorGray)).
			Background(lipgloss.Color(colorBlue)).
			Padding(0, 1)
	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorWhite)).
			Padding(0, 1)
	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorGray))
)
