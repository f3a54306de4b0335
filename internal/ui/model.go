package ui

import (
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"pdfdoctor/internal/deps"
	"pdfdoctor/internal/report"
)

// Model for TUI
type model struct {
	tools     []deps.ToolInfo
	opts      deps.Options
	goos      string
	summary   report.Summary
	checking  bool
	updatedAt time.Time
	quitting  bool

	spin  spinner.Model
	table table.Model

	// guide pane
	showGuide  bool
	guide      viewport.Model
	guideWidth int

	width  int
	height int
}

func initialModel(list []deps.ToolInfo, opts deps.Options) model {
	goos := opts.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = AccentBold()

	t := table.New(
		table.WithColumns(columns(80)),
		table.WithFocused(true),
		table.WithHeight(len(list)+1),
	)
	st := table.DefaultStyles()
	st.Header = st.Header.Foreground(Vitesse.Secondary).BorderForeground(Vitesse.Border).BorderBottom(true).Bold(true)
	st.Selected = st.Selected.Foreground(Vitesse.OnAccent).Background(Vitesse.Primary).Bold(false)
	t.SetStyles(st)

	return model{
		tools:    list,
		opts:     opts,
		goos:     goos,
		checking: true,
		spin:     sp,
		table:    t,
		guide:    viewport.New(80, 20),
	}
}

// InitialModel is the public constructor used by the app package.
func InitialModel(list []deps.ToolInfo, opts deps.Options) tea.Model {
	return initialModel(list, opts)
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, checkAllCmd(m.tools, m.opts))
}

func columns(width int) []table.Column {
	if width <= 0 {
		width = 80
	}
	status, tool := 9, 12
	rest := width - status - tool - 8
	if rest < 30 {
		rest = 30
	}
	return []table.Column{
		{Title: "STATUS", Width: status},
		{Title: "TOOL", Width: tool},
		{Title: "VERSION", Width: rest / 2},
		{Title: "PATH", Width: rest - rest/2},
	}
}

// rows converts the summary into table rows. Status is plain text; the
// table applies its own selection styling.
func rows(s report.Summary) []table.Row {
	out := make([]table.Row, 0, len(s.Results))
	for _, e := range s.Results {
		detail := e.VersionInfo
		if !e.Found {
			detail = e.Kind
		}
		out = append(out, table.Row{report.StatusLabel(e), e.Tool, detail, e.Path})
	}
	return out
}

// selected returns the entry under the table cursor.
func (m model) selected() (report.Entry, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.summary.Results) {
		return report.Entry{}, false
	}
	return m.summary.Results[i], true
}
