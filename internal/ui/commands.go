package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pdfdoctor/internal/deps"
	"pdfdoctor/internal/guide"
)

// checkAllCmd runs the checks one after another off the UI goroutine.
func checkAllCmd(list []deps.ToolInfo, opts deps.Options) tea.Cmd {
	return func() tea.Msg {
		res := deps.CheckAll(context.Background(), list, opts)
		return resultsMsg{results: res, at: time.Now()}
	}
}

func renderGuideCmd(goos string, width int) tea.Cmd {
	return func() tea.Msg {
		return guideMsg{out: guide.Render(guide.Section(goos), width), width: width}
	}
}
