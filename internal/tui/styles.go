package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorWhite     = lipgloss.Color("#FFFFFF")
	colorLightGray = lipgloss.Color("#CCCCCC")
	colorGray      = lipgloss.Color("#888888")
	colorDarkGray  = lipgloss.Color("#444444")
	colorPurple    = lipgloss.Color("#764ba2")
	colorIndigo    = lipgloss.Color("#667eea")
	colorGreen     = lipgloss.Color("#2ecc71")
	colorRed       = lipgloss.Color("#e74c3c")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite).
			Background(colorPurple).
			Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			MarginBottom(1)

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite).
			MarginBottom(1)

	navKeyStyle = lipgloss.NewStyle().
			Foreground(colorIndigo).
			Bold(true)

	navItemStyle = lipgloss.NewStyle().
			Foreground(colorLightGray)

	navActiveStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true).
			Underline(true)

	navBarStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(colorDarkGray).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Width(14)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorWhite)

	cardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorGray).
			Padding(1, 2)

	infoStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Italic(true)

	successStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDarkGray).
			MarginTop(1)

	focusedPromptStyle = lipgloss.NewStyle().Foreground(colorIndigo)
	blurredPromptStyle = lipgloss.NewStyle().Foreground(colorDarkGray)
)

const logo = `
 ┌─┐┌─┐┌─┐┌┬┐┌┬┐┌─┐┌─┐
 ├┤ │ ││ │ │││││├─┤├─┘
 └  └─┘└─┘─┴┘┴ ┴┴ ┴┴
`
