package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"pdfdoctor/internal/deps"
)

func init() { zone.NewGlobal() }

func testTools() []deps.ToolInfo {
	return []deps.ToolInfo{
		{ID: deps.ToolPdftoppm, Binaries: []string{"pdftoppm"}, Required: true},
		{ID: deps.ToolPdfinfo, Binaries: []string{"pdfinfo"}, Required: true},
	}
}

func loaded(t *testing.T) model {
	t.Helper()
	m := initialModel(testTools(), deps.Options{GOOS: "darwin"})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	next, _ = next.Update(resultsMsg{at: time.Now(), results: []deps.CheckResult{
		{ToolName: "pdftoppm", OS: "darwin", Err: deps.ErrExecutableNotFound, RemediationHint: deps.Remediation("darwin", "", "pdftoppm")},
		{ToolName: "pdfinfo", OS: "darwin", Found: true, VersionInfo: "pdfinfo version 24.02.0", Path: "/opt/homebrew/bin/pdfinfo"},
	}})
	return next.(model)
}

func TestUpdate_Results(t *testing.T) {
	m := loaded(t)
	if m.checking {
		t.Fatalf("checking should end after results")
	}
	if got := len(m.table.Rows()); got != 2 {
		t.Fatalf("expected 2 rows, got %d", got)
	}
	if m.summary.RequiredMissing != 1 {
		t.Fatalf("unexpected summary %+v", m.summary)
	}
	v := m.View()
	for _, want := range []string{"pdftoppm", "pdfinfo version 24.02.0", "brew install poppler", "1 required missing"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestUpdate_Keys(t *testing.T) {
	m := loaded(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if !next.(model).checking || cmd == nil {
		t.Fatalf("r should start a re-check")
	}
	// a second r while checking is ignored
	if _, cmd := next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}); cmd != nil {
		t.Fatalf("re-check should not stack")
	}

	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	if !next.(model).showGuide || cmd == nil {
		t.Fatalf("g should open the guide and render it")
	}
	next, _ = next.Update(guideMsg{out: "rendered guide", width: 100})
	if !strings.Contains(next.View(), "rendered guide") {
		t.Fatalf("guide content not shown")
	}
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if next.(model).showGuide {
		t.Fatalf("esc should close the guide")
	}

	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !next.(model).quitting || cmd == nil {
		t.Fatalf("q should quit")
	}
}

func TestUpdate_Navigation(t *testing.T) {
	m := loaded(t)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	e, ok := next.(model).selected()
	if !ok || e.Tool != "pdfinfo" {
		t.Fatalf("down should select pdfinfo, got %+v", e)
	}
	if !strings.Contains(next.View(), "/opt/homebrew/bin/pdfinfo") {
		t.Fatalf("detail should show the found tool")
	}
}
