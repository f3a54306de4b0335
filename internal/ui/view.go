package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"pdfdoctor/internal/guide"
	"pdfdoctor/internal/report"
)

func (m model) View() string {
	if m.quitting {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(renderBanner([]string{
		AccentBold().Render("pdfdoctor") + " · Poppler dependency check",
		"host: " + m.goos + " (" + guide.Heading(m.goos) + ")",
	}))
	sb.WriteString("\n")

	if m.showGuide {
		sb.WriteString(m.guide.View())
		sb.WriteString("\n")
		sb.WriteString(m.statusBar())
		return zone.Scan(sb.String())
	}

	if m.checking && len(m.summary.Results) == 0 {
		sb.WriteString(fmt.Sprintf(" %s checking %d tool(s)…\n", m.spin.View(), len(m.tools)))
	} else {
		sb.WriteString(m.table.View())
		sb.WriteString("\n\n")
		sb.WriteString(m.detail())
	}
	sb.WriteString("\n")
	sb.WriteString(m.statusBar())
	return zone.Scan(sb.String())
}

// detail renders the selected tool's result or remediation hint.
func (m model) detail() string {
	e, ok := m.selected()
	if !ok {
		return ""
	}
	label := report.StatusLabel(e)
	head := statusStyle(label).Render(label) + " " + e.Tool
	var body string
	switch {
	case e.RemediationHint != "":
		body = e.RemediationHint
	case e.Found:
		body = fmt.Sprintf("%s\nsource: %s · %dms", e.VersionInfo, e.Source, e.DurationMS)
	}
	return hintBox(m.width).Render(head + "\n" + body)
}

func (m model) statusBar() string {
	left := zone.Mark(zoneRecheck, Button("r recheck")) + " " + zone.Mark(zoneGuide, Button("g guide"))
	var state string
	switch {
	case m.checking:
		state = m.spin.View() + " checking"
	case m.summary.OK(false):
		state = statusStyle("OK").Render("ready")
	default:
		state = statusStyle("MISSING").Render(fmt.Sprintf("%d required missing", m.summary.RequiredMissing))
	}
	right := state
	if !m.updatedAt.IsZero() {
		right += " · " + m.updatedAt.Format("15:04:05")
	}
	right += " · q quit "
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + StatusBarBase().Render(strings.Repeat(" ", gap)+right)
}
