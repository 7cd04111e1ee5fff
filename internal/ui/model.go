package ui

import (
	"fmt"
	"strings"

	"explorer.himalayandata.org/internal/app"
	"explorer.himalayandata.org/internal/himalaya"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type focusArea int

const (
	focusYears focusArea = iota
	focusNations
	focusLeader
	focusTable
	focusAreaCount
)

// gridColumns is the subset of expedition columns shown in the main table,
// matching the summary view of the dashboard. The detail panes show the
// rest.
var gridColumns = []string{"expid", "peakid", "year", "host", "leaders", "nation"}

var gridColumnWidths = map[string]int{
	"expid":   9,
	"peakid":  7,
	"year":    5,
	"host":    12,
	"leaders": 26,
	"nation":  14,
}

// Model is the terminal dashboard: three filter inputs, the expedition
// grid, and the detail panes for the selected expedition. Every interaction
// re-runs the pure filter; selecting a row runs the relational lookup. The
// widget's cursor state is reduced to zero-or-one expedition key before the
// core is consulted.
type Model struct {
	app *app.Application

	yearInput   textinput.Model
	nationInput textinput.Model
	leaderInput textinput.Model
	grid        table.Model
	help        help.Model
	keys        keyMap

	focus     focusArea
	filtered  himalaya.Table
	detail    himalaya.DetailBundle
	hasDetail bool
	showHelp  bool

	width  int
	height int
}

func NewModel(application *app.Application) Model {
	yearInput := newFilterInput("e.g. 2005, 2006")
	nationInput := newFilterInput("e.g. Nepal, UK")
	leaderInput := newFilterInput("search leaders")
	yearInput.Focus()

	grid := table.New(
		table.WithColumns(gridTableColumns()),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(primaryColor).
		BorderBottom(true).
		Bold(true).
		Foreground(primaryColor)
	s.Selected = s.Selected.
		Foreground(bgDark).
		Background(accentColor).
		Bold(false)
	grid.SetStyles(s)

	m := Model{
		app:         application,
		yearInput:   yearInput,
		nationInput: nationInput,
		leaderInput: leaderInput,
		grid:        grid,
		help:        help.New(),
		keys:        keys,
		focus:       focusYears,
	}
	m.applyFilters()
	return m
}

func newFilterInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 128
	ti.Width = 24
	return ti
}

func gridTableColumns() []table.Column {
	columns := make([]table.Column, len(gridColumns))
	for i, col := range gridColumns {
		columns[i] = table.Column{Title: col, Width: gridColumnWidths[col]}
	}
	return columns
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.Reload):
			m.app.DataManager.Reset()
			m.app.DataManager.LoadAll()
			m.applyFilters()
			return m, nil

		case key.Matches(msg, m.keys.NextField):
			m.cycleFocus(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevField):
			m.cycleFocus(-1)
			return m, nil

		case key.Matches(msg, m.keys.Select):
			if m.focus == focusTable {
				m.selectCurrentRow()
				return m, nil
			}

		case key.Matches(msg, m.keys.Clear):
			m.clearSelection()
			return m, nil
		}
	}

	return m.updateFocused(msg)
}

// updateFocused routes the message to whichever widget has focus. Filter
// keystrokes re-run the filter immediately; it is pure and cheap, so no
// debouncing is needed.
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusYears:
		m.yearInput, cmd = m.yearInput.Update(msg)
		m.applyFilters()
	case focusNations:
		m.nationInput, cmd = m.nationInput.Update(msg)
		m.applyFilters()
	case focusLeader:
		m.leaderInput, cmd = m.leaderInput.Update(msg)
		m.applyFilters()
	case focusTable:
		m.grid, cmd = m.grid.Update(msg)
	}
	return m, cmd
}

func (m *Model) cycleFocus(delta int) {
	m.focus = (m.focus + focusArea(delta) + focusAreaCount) % focusAreaCount

	m.yearInput.Blur()
	m.nationInput.Blur()
	m.leaderInput.Blur()
	m.grid.Blur()

	switch m.focus {
	case focusYears:
		m.yearInput.Focus()
	case focusNations:
		m.nationInput.Focus()
	case focusLeader:
		m.leaderInput.Focus()
	case focusTable:
		m.grid.Focus()
	}
}

// applyFilters recomputes the filtered expedition table from the current
// input values and drops any stale selection.
func (m *Model) applyFilters() {
	spec := himalaya.FilterSpec{
		Years:       parseListInput(m.yearInput.Value()),
		Nations:     parseListInput(m.nationInput.Value()),
		LeaderQuery: m.leaderInput.Value(),
	}
	m.filtered = himalaya.FilterExpeditions(m.app.DataManager.Expeditions(), spec)
	m.grid.SetRows(gridRows(m.filtered))
	m.clearSelection()
}

// selectCurrentRow reduces the grid cursor to a single expedition key and
// resolves its detail bundle.
func (m *Model) selectCurrentRow() {
	cursor := m.grid.Cursor()
	if cursor < 0 || cursor >= len(m.filtered.Rows) {
		return
	}
	expID := m.filtered.Rows[cursor]["expid"]
	m.detail = himalaya.Detail(expID, m.app.DataManager.Tables())
	m.hasDetail = true
}

func (m *Model) clearSelection() {
	m.detail = himalaya.DetailBundle{}
	m.hasDetail = false
}

// parseListInput splits a comma-separated filter value into its entries,
// dropping surrounding whitespace and empty items.
func parseListInput(s string) []string {
	var values []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	return values
}

func gridRows(t himalaya.Table) []table.Row {
	rows := make([]table.Row, len(t.Rows))
	for i, row := range t.Rows {
		cells := make(table.Row, len(gridColumns))
		for j, col := range gridColumns {
			cells[j] = row[col]
		}
		rows[i] = cells
	}
	return rows
}

func (m Model) View() string {
	var sections []string

	sections = append(sections, m.renderHeader())
	if warnings := m.app.DataManager.Warnings(); len(warnings) > 0 {
		sections = append(sections, renderWarnings(warnings))
	}
	sections = append(sections, m.renderFilters())
	sections = append(sections, m.renderGrid())

	if m.hasDetail {
		sections = append(sections, m.renderDetail())
	} else {
		sections = append(sections, emptyStateStyle.Render(
			"Select an expedition from the table above to view details"))
	}

	sections = append(sections, m.renderStatusBar())

	if m.showHelp {
		sections = append(sections, m.renderHelp())
	}

	return appStyle.Render(strings.Join(sections, "\n"))
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("Himalayan Expedition Data Explorer")
	subtitle := subtitleStyle.Render("Explore expedition data from the Himalayan Database")
	return title + "\n" + subtitle
}

func renderWarnings(warnings []himalaya.Warning) string {
	names := make([]string, len(warnings))
	for i, w := range warnings {
		names[i] = w.Table
	}
	return warningStyle.Render(fmt.Sprintf("⚠ data unavailable: %s", strings.Join(names, ", ")))
}

func (m Model) renderFilters() string {
	boxes := []string{
		renderFilterBox("Years", m.yearInput.View(), m.focus == focusYears),
		renderFilterBox("Nations", m.nationInput.View(), m.focus == focusNations),
		renderFilterBox("Leader", m.leaderInput.View(), m.focus == focusLeader),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func renderFilterBox(label, input string, focused bool) string {
	style := filterBoxStyle
	if focused {
		style = focusedFilterBoxStyle
	}
	return style.Render(filterLabelStyle.Render(label) + "\n" + input)
}

func (m Model) renderGrid() string {
	header := sectionTitleStyle.Render(
		fmt.Sprintf("Expeditions (%d)", len(m.filtered.Rows)))
	return header + "\n" + m.grid.View()
}

func (m Model) renderStatusBar() string {
	parts := []string{
		fmt.Sprintf("env: %s", m.app.Config.Env),
		fmt.Sprintf("expeditions: %d", len(m.filtered.Rows)),
		"tab: switch · enter: details · ctrl+h: help",
	}
	return statusBarStyle.Render(strings.Join(parts, "  |  "))
}

func (m Model) renderHelp() string {
	helpText := m.help.FullHelpView([][]key.Binding{
		{
			m.keys.NextField,
			m.keys.PrevField,
			m.keys.Select,
			m.keys.Clear,
			m.keys.Reload,
			m.keys.Help,
			m.keys.Quit,
		},
	})
	return helpStyle.Render(helpText)
}
