package ui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// renderBanner draws lines inside a rounded box sized to the widest line.
func renderBanner(lines []string) string {
	max := 0
	for _, ln := range lines {
		if w := xansi.StringWidth(ln); w > max {
			max = w
		}
	}
	var sb strings.Builder
	sb.WriteString("╭" + strings.Repeat("─", max+2) + "╮\n")
	for _, ln := range lines {
		sb.WriteString("│ ")
		sb.WriteString(ln)
		if pad := max - xansi.StringWidth(ln); pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
		sb.WriteString(" │\n")
	}
	sb.WriteString("╰" + strings.Repeat("─", max+2) + "╯\n")
	return sb.String()
}
