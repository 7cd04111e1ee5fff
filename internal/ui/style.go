package ui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("#7C3AED")
	accentColor  = lipgloss.Color("#34D399")
	warnColor    = lipgloss.Color("#F59E0B")

	bgDark   = lipgloss.Color("#0F172A")
	bgMedium = lipgloss.Color("#1E293B")
	bgLight  = lipgloss.Color("#334155")

	textPrimary   = lipgloss.Color("#F8FAFC")
	textSecondary = lipgloss.Color("#CBD5E1")
	textMuted     = lipgloss.Color("#64748B")
)

// Styles for the dashboard sections
var (
	appStyle = lipgloss.NewStyle().
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Background(primaryColor).
			Foreground(textPrimary).
			Bold(true).
			Padding(0, 2)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(textSecondary).
			MarginBottom(1)

	filterLabelStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true)

	filterBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(bgLight).
			Padding(0, 1).
			MarginRight(1)

	focusedFilterBoxStyle = filterBoxStyle.Copy().
				BorderForeground(primaryColor)

	sectionTitleStyle = lipgloss.NewStyle().
				Foreground(accentColor).
				Bold(true)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(bgLight).
			Padding(0, 1).
			MarginRight(1)

	warningStyle = lipgloss.NewStyle().
			Foreground(warnColor).
			Bold(true)

	emptyStateStyle = lipgloss.NewStyle().
			Foreground(textMuted).
			Italic(true)

	statusBarStyle = lipgloss.NewStyle().
			Background(bgMedium).
			Foreground(textSecondary).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2)
)
