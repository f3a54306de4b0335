package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"pdfdoctor/internal/report"
)

const (
	zoneRecheck = "btn.recheck"
	zoneGuide   = "btn.guide"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			if zone.Get(zoneRecheck).InBounds(msg) {
				return m.recheck()
			}
			if zone.Get(zoneGuide).InBounds(msg) {
				return m.toggleGuide()
			}
		}
		if m.showGuide {
			var cmd tea.Cmd
			m.guide, cmd = m.guide.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetColumns(columns(msg.Width))
		m.guide.Width = msg.Width
		m.guide.Height = guideHeight(msg.Height)
		if m.needGuide() {
			return m, renderGuideCmd(m.goos, msg.Width)
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "esc":
			if m.showGuide {
				m.showGuide = false
				return m, nil
			}
			m.quitting = true
			return m, tea.Quit
		case "r":
			return m.recheck()
		case "g":
			return m.toggleGuide()
		}
		var cmd tea.Cmd
		if m.showGuide {
			m.guide, cmd = m.guide.Update(msg)
		} else {
			m.table, cmd = m.table.Update(msg)
		}
		return m, cmd
	case resultsMsg:
		m.checking = false
		m.updatedAt = msg.at
		m.summary = report.NewSummary(m.tools, msg.results)
		m.table.SetRows(rows(m.summary))
		return m, nil
	case guideMsg:
		m.guideWidth = msg.width
		m.guide.SetContent(msg.out)
		m.guide.GotoTop()
		return m, nil
	case spinner.TickMsg:
		if !m.checking {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) recheck() (tea.Model, tea.Cmd) {
	if m.checking {
		return m, nil
	}
	m.checking = true
	return m, tea.Batch(m.spin.Tick, checkAllCmd(m.tools, m.opts))
}

func (m model) toggleGuide() (tea.Model, tea.Cmd) {
	m.showGuide = !m.showGuide
	if m.needGuide() {
		return m, renderGuideCmd(m.goos, m.width)
	}
	return m, nil
}

// needGuide reports whether the visible guide must be (re)rendered.
func (m model) needGuide() bool {
	return m.showGuide && (m.guideWidth == 0 || m.guideWidth != m.width)
}

func guideHeight(h int) int {
	if h-6 < 5 {
		return 5
	}
	return h - 6
}
