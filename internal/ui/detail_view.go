package ui

import (
	"fmt"
	"strings"

	"explorer.himalayandata.org/internal/himalaya"

	"github.com/charmbracelet/lipgloss"
)

// renderDetail renders the detail bundle for the selected expedition:
// the expedition's own fields, its members, its target peak, and its
// references. Missing sections render an explicit placeholder so the detail
// view always has the same shape.
func (m Model) renderDetail() string {
	bundle := m.detail

	if !bundle.Found {
		return paneStyle.Render(
			sectionTitleStyle.Render("Expedition Details") + "\n" +
				emptyStateStyle.Render(fmt.Sprintf("expedition %q not found", bundle.Key)))
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		renderExpeditionPane(bundle.Expedition),
		renderPeakPane(bundle),
	)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top,
		renderMembersPane(bundle.Members),
		renderReferencesPane(bundle.References),
	)
	return top + "\n" + bottom
}

func renderExpeditionPane(exp himalaya.Row) string {
	lines := []string{
		sectionTitleStyle.Render("Expedition " + strings.ToUpper(exp["expid"])),
		fieldLine("Year", exp["year"]),
		fieldLine("Host", exp["host"]),
		fieldLine("Nation", exp["nation"]),
		fieldLine("Leaders", exp["leaders"]),
		fieldLine("Sponsor", exp["sponsor"]),
		fieldLine("Highpoint", exp["highpoint"]),
		fieldLine("Deaths", exp["hdeaths"]),
	}
	return paneStyle.Render(strings.Join(lines, "\n"))
}

func renderPeakPane(bundle himalaya.DetailBundle) string {
	title := sectionTitleStyle.Render("Peak")
	if !bundle.PeakFound {
		return paneStyle.Render(title + "\n" + emptyStateStyle.Render("No peak details found"))
	}

	peak := bundle.Peak
	lines := []string{
		title,
		fieldLine("Name", peak["pkname"]),
		fieldLine("Alt name", peak["pkname2"]),
		fieldLine("Location", peak["location"]),
		fieldLine("Height (m)", peak["heightm"]),
	}
	return paneStyle.Render(strings.Join(lines, "\n"))
}

func renderMembersPane(members []himalaya.Row) string {
	title := sectionTitleStyle.Render(fmt.Sprintf("Members (%d)", len(members)))
	if len(members) == 0 {
		return paneStyle.Render(title + "\n" + emptyStateStyle.Render("No members data found"))
	}

	lines := []string{title}
	for _, member := range members {
		name := joinName(member["fname"], member["lname"])
		lines = append(lines, fmt.Sprintf("%-24s %-14s %-3s %-4s %s",
			name, member["citizenship"], member["sex"], member["age"], member["status"]))
		if member["deathtype"] != himalaya.Sentinel {
			lines = append(lines, emptyStateStyle.Render(
				fmt.Sprintf("  died: %s", member["deathtype"])))
		}
	}
	return paneStyle.Render(strings.Join(lines, "\n"))
}

func renderReferencesPane(references []himalaya.Row) string {
	title := sectionTitleStyle.Render(fmt.Sprintf("References (%d)", len(references)))
	if len(references) == 0 {
		return paneStyle.Render(title + "\n" + emptyStateStyle.Render("No references found"))
	}

	lines := []string{title}
	for _, ref := range references {
		lines = append(lines, fmt.Sprintf("%s - %s, %s (%s)",
			ref["ryear"], ref["rauthor"], ref["rtitle"], ref["rpublisher"]))
	}
	return paneStyle.Render(strings.Join(lines, "\n"))
}

func fieldLine(label, value string) string {
	return filterLabelStyle.Render(fmt.Sprintf("%-11s", label)) + " " + value
}

// joinName builds a display name from the name-part columns, skipping
// sentinel parts so an unknown first or last name does not render as "N/A
// Smith".
func joinName(first, last string) string {
	var parts []string
	if first != himalaya.Sentinel {
		parts = append(parts, first)
	}
	if last != himalaya.Sentinel {
		parts = append(parts, last)
	}
	if len(parts) == 0 {
		return himalaya.Sentinel
	}
	return strings.Join(parts, " ")
}
