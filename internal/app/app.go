package app

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"pdfdoctor/internal/deps"
	"pdfdoctor/internal/ui"
)

// Start runs the dashboard and returns any error.
func Start(list []deps.ToolInfo, opts deps.Options) error {
	// Initialize global bubblezone manager for mouse-aware zones.
	zone.NewGlobal()
	if _, err := tea.NewProgram(ui.InitialModel(list, opts), tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
		return err
	}
	return nil
}
