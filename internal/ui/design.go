package ui

import "github.com/charmbracelet/lipgloss"

// Design centralizes the TUI color palette and common styles.
//
// Palette is based on Vitesse Dark Soft:
// https://github.com/antfu/vscode-theme-vitesse/blob/main/themes/vitesse-dark-soft.json
type designTheme struct {
	Primary lipgloss.Color // #4d9375
	Yellow  lipgloss.Color // #e6cc77
	Cyan    lipgloss.Color // #5eaab5
	Red     lipgloss.Color // #cb7676

	Text      lipgloss.Color
	Secondary lipgloss.Color
	Border    lipgloss.Color

	// Text on accent backgrounds (e.g., buttons/chips)
	OnAccent lipgloss.Color

	BarFG lipgloss.AdaptiveColor
	BarBG lipgloss.AdaptiveColor
}

// Vitesse defines the current global design theme for the TUI.
var Vitesse = designTheme{
	Primary: lipgloss.Color("#4d9375"),
	Yellow:  lipgloss.Color("#e6cc77"),
	Cyan:    lipgloss.Color("#5eaab5"),
	Red:     lipgloss.Color("#cb7676"),

	Text:      lipgloss.Color("#dbd7caee"),
	Secondary: lipgloss.Color("#bfbaaa"),
	Border:    lipgloss.Color("#3a3a3a"),

	OnAccent: lipgloss.Color("#222"),

	BarFG: lipgloss.AdaptiveColor{Light: "#343433", Dark: "#bfbaaa"},
	BarBG: lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#222"},
}

// AccentBold returns a bold style using the primary accent color.
func AccentBold() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(Vitesse.Primary)
}

// StatusBarBase returns the base style for the status bar background/foreground.
func StatusBarBase() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Vitesse.BarFG).Background(Vitesse.BarBG)
}

// Button renders a small accent button label with consistent styling.
func Button(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(Vitesse.OnAccent).Background(Vitesse.Primary).Padding(0, 1).Render(s)
}

// statusStyle colors a status word from report.StatusLabel.
func statusStyle(label string) lipgloss.Style {
	switch label {
	case "OK":
		return lipgloss.NewStyle().Foreground(Vitesse.Primary).Bold(true)
	case "OLD", "SKIP":
		return lipgloss.NewStyle().Foreground(Vitesse.Yellow).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(Vitesse.Red).Bold(true)
}

func hintBox(width int) lipgloss.Style {
	w := width - 2
	if w < 20 {
		w = 20
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Vitesse.Border).
		Foreground(Vitesse.Text).
		Padding(0, 1).
		Width(w)
}
