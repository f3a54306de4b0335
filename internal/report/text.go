package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#4d9375")).Bold(true)
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#e6cc77")).Bold(true)
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#cb7676")).Bold(true)
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#bfbaaa"))
)

// StatusLabel returns a short status word for an entry.
func StatusLabel(e Entry) string {
	switch {
	case e.Found && e.Kind == "outdated":
		return "OLD"
	case e.Found:
		return "OK"
	case e.Required:
		return "MISSING"
	default:
		return "SKIP"
	}
}

func styleFor(label string) lipgloss.Style {
	switch label {
	case "OK":
		return okStyle
	case "OLD", "SKIP":
		return warnStyle
	}
	return errStyle
}

// WriteText writes an aligned table followed by remediation hints for
// every tool that needs attention. color enables lipgloss styling.
func WriteText(w io.Writer, s Summary, color bool) error {
	paint := func(st lipgloss.Style, v string) string {
		if !color {
			return v
		}
		return st.Render(v)
	}

	toolW := runewidth.StringWidth("TOOL")
	for _, e := range s.Results {
		if n := runewidth.StringWidth(e.Tool); n > toolW {
			toolW = n
		}
	}
	const statusW = 8
	var sb strings.Builder
	for _, e := range s.Results {
		label := StatusLabel(e)
		sb.WriteString(paint(styleFor(label), runewidth.FillRight(label, statusW)))
		sb.WriteString(runewidth.FillRight(e.Tool, toolW+2))
		detail := e.VersionInfo
		if !e.Found {
			detail = e.Error
		}
		sb.WriteString(detail)
		if e.Path != "" && e.Found {
			sb.WriteString(paint(dimStyle, "  "+e.Path))
		}
		sb.WriteString("\n")
	}
	// the install steps are shared by all poppler tools; print each body once
	seen := map[string]bool{}
	for _, e := range s.Results {
		if e.RemediationHint == "" {
			continue
		}
		head, body, _ := strings.Cut(e.RemediationHint, "\n")
		sb.WriteString("\n")
		sb.WriteString(paint(styleFor(StatusLabel(e)), head))
		sb.WriteString("\n")
		if body == "" || seen[body] {
			continue
		}
		seen[body] = true
		for _, ln := range strings.Split(body, "\n") {
			sb.WriteString("  " + strings.TrimLeft(ln, " ") + "\n")
		}
	}
	sb.WriteString(fmt.Sprintf("\nSummary: %d tool(s), %d found, %d missing (%d required)\n",
		len(s.Results), s.Found, s.Missing, s.RequiredMissing))
	_, err := io.WriteString(w, sb.String())
	return err
}
